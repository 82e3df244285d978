package ds

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShipType(t *testing.T) {
	for _, valid := range []string{"TRANSPORT", "MILITARY", "MERCHANT"} {
		parsed, ok := ParseShipType(valid)
		assert.True(t, ok)
		assert.Equal(t, ShipType(valid), parsed)
	}
	for _, invalid := range []string{"", "CRUISER", "transport", "Military"} {
		_, ok := ParseShipType(invalid)
		assert.False(t, ok, "shipType=%q", invalid)
	}
}

func TestShipMarshalJSON(t *testing.T) {
	prodDate := time.Date(3000, time.January, 1, 0, 0, 0, 0, time.UTC)
	ship := Ship{
		ID:       1,
		Name:     "Galaxy",
		Planet:   "Earth",
		ShipType: ShipTypeMerchant,
		ProdDate: prodDate,
		IsUsed:   true,
		Speed:    0.55,
		CrewSize: 50,
		Rating:   1.1,
	}

	raw, err := json.Marshal(ship)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, float64(prodDate.UnixMilli()), got["prodDate"])
	assert.Equal(t, "MERCHANT", got["shipType"])
	// пустой photoUrl не сериализуется
	assert.NotContains(t, got, "photoUrl")
}

func TestShipSortColumn(t *testing.T) {
	cases := map[ShipSort]string{
		ShipSortID:     "id",
		ShipSortSpeed:  "speed",
		ShipSortDate:   "prod_date",
		ShipSortRating: "rating",
	}
	for sort, column := range cases {
		c, ok := sort.Column()
		assert.True(t, ok)
		assert.Equal(t, column, c)
	}
	_, ok := ShipSort("NAME").Column()
	assert.False(t, ok)
}

func TestShipFilterCacheKey(t *testing.T) {
	assert.Equal(t, "", ShipFilter{}.CacheKey())

	name := "Gal"
	minCrew := 5
	used := true
	f := ShipFilter{Name: &name, IsUsed: &used, MinCrewSize: &minCrew}
	key := f.CacheKey()
	assert.Equal(t, "name=Gal|isUsed=true|minCrewSize=5", key)

	// ключ детерминирован
	assert.Equal(t, key, f.CacheKey())
}
