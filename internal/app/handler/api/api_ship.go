package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"space_ships/internal/app/ds"
	"space_ships/internal/app/utils"
)

type ShipHandler struct {
	Repository interface {
		ListShips(filter ds.ShipFilter, order ds.ShipSort, pageNumber int, pageSize int) ([]ds.Ship, error)
		CountShipsCached(filter ds.ShipFilter) (int64, error)
		GetShip(id int) (ds.Ship, error)
		CreateShip(ship *ds.Ship) error
		UpdateShip(ship *ds.Ship) error
		DeleteShip(id int) error
	}
	MinioClient *minio.Client
	MinioBucket string
}

// shipRequest - тело create/update; nil-поле при обновлении означает "не менять"
type shipRequest struct {
	Name     *string  `json:"name"`
	Planet   *string  `json:"planet"`
	ShipType *string  `json:"shipType"`
	ProdDate *int64   `json:"prodDate"`
	IsUsed   *bool    `json:"isUsed"`
	Speed    *float64 `json:"speed"`
	CrewSize *int     `json:"crewSize"`
}

// validate - присутствующие поля проверяются всегда, при create обязательны все
// поля кроме isUsed
func (req *shipRequest) validate(create bool) error {
	if create {
		if req.Name == nil || req.Planet == nil || req.ShipType == nil ||
			req.ProdDate == nil || req.Speed == nil || req.CrewSize == nil {
			return errors.New("missing required ship fields")
		}
	}
	if req.Name != nil && !utils.IsStringValid(*req.Name) {
		return errors.New("invalid name")
	}
	if req.Planet != nil && !utils.IsStringValid(*req.Planet) {
		return errors.New("invalid planet")
	}
	if req.ShipType != nil {
		if _, ok := ds.ParseShipType(*req.ShipType); !ok {
			return fmt.Errorf("invalid shipType %q", *req.ShipType)
		}
	}
	if req.ProdDate != nil && !utils.IsProdDateValid(time.UnixMilli(*req.ProdDate).UTC()) {
		return errors.New("invalid prodDate")
	}
	if req.Speed != nil && !utils.IsSpeedValid(*req.Speed) {
		return errors.New("invalid speed")
	}
	if req.CrewSize != nil && !utils.IsCrewSizeValid(*req.CrewSize) {
		return errors.New("invalid crewSize")
	}
	return nil
}

type shipListQuery struct {
	ds.ShipFilter
	Order      *ds.ShipSort `form:"order"`
	PageNumber int          `form:"pageNumber,default=0"`
	PageSize   int          `form:"pageSize,default=3"`
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": err.Error(),
	})
}

func internalError(c *gin.Context, err error) {
	logrus.Error(err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": err.Error(),
	})
}

func shipID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		badRequest(c, errors.New("invalid ship ID"))
		return 0, false
	}
	return id, true
}

func validateFilter(c *gin.Context, filter ds.ShipFilter) bool {
	if filter.ShipType != nil && !filter.ShipType.Valid() {
		badRequest(c, fmt.Errorf("invalid shipType %q", *filter.ShipType))
		return false
	}
	return true
}

// GetShipsAPI - GET /rest/ships - страница списка кораблей
// @Summary List ships
// @Description Filtered, sorted and paginated list of ships
// @Tags ships
// @Produce json
// @Param name query string false "Substring of the ship name"
// @Param planet query string false "Substring of the planet name"
// @Param shipType query string false "TRANSPORT, MILITARY or MERCHANT"
// @Param after query int false "Minimal prodDate, ms since epoch, inclusive"
// @Param before query int false "Maximal prodDate, ms since epoch, exclusive"
// @Param isUsed query bool false "Used flag"
// @Param minSpeed query number false "Minimal speed, inclusive"
// @Param maxSpeed query number false "Maximal speed, inclusive"
// @Param minCrewSize query int false "Minimal crew size, inclusive"
// @Param maxCrewSize query int false "Maximal crew size, inclusive"
// @Param minRating query number false "Minimal rating, inclusive"
// @Param maxRating query number false "Maximal rating, inclusive"
// @Param order query string false "Sort field: ID, SPEED, DATE or RATING"
// @Param pageNumber query int false "Zero-based page number" default(0)
// @Param pageSize query int false "Page size" default(3)
// @Success 200 {array} ds.Ship
// @Failure 400 {object} object "error: message"
// @Router /rest/ships [get]
func (h *ShipHandler) GetShipsAPI(c *gin.Context) {
	var query shipListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}
	if !validateFilter(c, query.ShipFilter) {
		return
	}
	order := ds.ShipSort("")
	if query.Order != nil {
		if _, ok := query.Order.Column(); !ok {
			badRequest(c, fmt.Errorf("invalid order %q", *query.Order))
			return
		}
		order = *query.Order
	}
	if query.PageNumber < 0 || query.PageSize <= 0 {
		badRequest(c, errors.New("invalid page parameters"))
		return
	}

	ships, err := h.Repository.ListShips(query.ShipFilter, order, query.PageNumber, query.PageSize)
	if err != nil {
		internalError(c, err)
		return
	}
	if ships == nil {
		ships = make([]ds.Ship, 0)
	}
	c.JSON(http.StatusOK, ships)
}

// GetShipsCountAPI - GET /rest/ships/count - число кораблей по фильтру
// @Summary Count ships
// @Description Count of ships matching the same criteria as the list
// @Tags ships
// @Produce json
// @Success 200 {integer} int
// @Failure 400 {object} object "error: message"
// @Router /rest/ships/count [get]
func (h *ShipHandler) GetShipsCountAPI(c *gin.Context) {
	var filter ds.ShipFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, err)
		return
	}
	if !validateFilter(c, filter) {
		return
	}

	count, err := h.Repository.CountShipsCached(filter)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

// GetShipAPI - GET /rest/ships/:id - один корабль
// @Summary Get a ship
// @Tags ships
// @Produce json
// @Param id path int true "Ship ID"
// @Success 200 {object} ds.Ship
// @Failure 400 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Router /rest/ships/{id} [get]
func (h *ShipHandler) GetShipAPI(c *gin.Context) {
	id, ok := shipID(c)
	if !ok {
		return
	}

	ship, err := h.Repository.GetShip(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "ship not found",
			})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, ship)
}

// CreateShipAPI - POST /rest/ships - создание корабля
// @Summary Create a ship
// @Description Validates all fields, computes the rating and stores the ship
// @Tags ships
// @Accept json
// @Produce json
// @Param ship body object{name=string,planet=string,shipType=string,prodDate=int,isUsed=bool,speed=number,crewSize=int} true "Ship fields"
// @Success 200 {object} ds.Ship
// @Failure 400 {object} object "error: message"
// @Router /rest/ships [post]
func (h *ShipHandler) CreateShipAPI(c *gin.Context) {
	var req shipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := req.validate(true); err != nil {
		badRequest(c, err)
		return
	}

	shipType, _ := ds.ParseShipType(*req.ShipType)
	ship := ds.Ship{
		Name:     *req.Name,
		Planet:   *req.Planet,
		ShipType: shipType,
		ProdDate: time.UnixMilli(*req.ProdDate).UTC(),
		Speed:    *req.Speed,
		CrewSize: *req.CrewSize,
	}
	// isUsed по умолчанию false
	if req.IsUsed != nil {
		ship.IsUsed = *req.IsUsed
	}
	// Рейтинг всегда считается на сервере
	ship.Rating = utils.CalculateRating(ship.Speed, ship.IsUsed, ship.ProdDate)

	if err := h.Repository.CreateShip(&ship); err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, ship)
}

// UpdateShipAPI - POST /rest/ships/:id - частичное обновление корабля
// @Summary Update a ship
// @Description Merges supplied fields onto the stored ship and recomputes the rating
// @Tags ships
// @Accept json
// @Produce json
// @Param id path int true "Ship ID"
// @Param ship body object{name=string,planet=string,shipType=string,prodDate=int,isUsed=bool,speed=number,crewSize=int} true "Fields to change"
// @Success 200 {object} ds.Ship
// @Failure 400 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Router /rest/ships/{id} [post]
func (h *ShipHandler) UpdateShipAPI(c *gin.Context) {
	id, ok := shipID(c)
	if !ok {
		return
	}

	var req shipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := req.validate(false); err != nil {
		badRequest(c, err)
		return
	}

	ship, err := h.Repository.GetShip(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "ship not found",
			})
			return
		}
		internalError(c, err)
		return
	}

	// Переносим только присланные поля
	if req.Name != nil {
		ship.Name = *req.Name
	}
	if req.Planet != nil {
		ship.Planet = *req.Planet
	}
	if req.ShipType != nil {
		shipType, _ := ds.ParseShipType(*req.ShipType)
		ship.ShipType = shipType
	}
	if req.ProdDate != nil {
		ship.ProdDate = time.UnixMilli(*req.ProdDate).UTC()
	}
	if req.IsUsed != nil {
		ship.IsUsed = *req.IsUsed
	}
	if req.Speed != nil {
		ship.Speed = *req.Speed
	}
	if req.CrewSize != nil {
		ship.CrewSize = *req.CrewSize
	}
	ship.Rating = utils.CalculateRating(ship.Speed, ship.IsUsed, ship.ProdDate)

	if err := h.Repository.UpdateShip(&ship); err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, ship)
}

// DeleteShipAPI - DELETE /rest/ships/:id - удаление корабля
// @Summary Delete a ship
// @Tags ships
// @Produce json
// @Param id path int true "Ship ID"
// @Success 200 {object} object "message: string"
// @Failure 400 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Router /rest/ships/{id} [delete]
func (h *ShipHandler) DeleteShipAPI(c *gin.Context) {
	id, ok := shipID(c)
	if !ok {
		return
	}

	if err := h.Repository.DeleteShip(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "ship not found",
			})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "ship deleted",
	})
}

// AddShipImageAPI - POST /rest/ships/:id/image - загрузка изображения корабля
// @Summary Upload a ship image
// @Tags ships
// @Accept mpfd
// @Produce json
// @Param id path int true "Ship ID"
// @Param file formData file true "Image file"
// @Success 200 {object} object "ship_id, photo_url"
// @Failure 400 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Router /rest/ships/{id}/image [post]
func (h *ShipHandler) AddShipImageAPI(c *gin.Context) {
	id, ok := shipID(c)
	if !ok {
		return
	}
	if h.MinioClient == nil {
		internalError(c, errors.New("minio client not available"))
		return
	}

	ship, err := h.Repository.GetShip(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "ship not found",
			})
			return
		}
		internalError(c, err)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		file, header, err = c.Request.FormFile("image")
		if err != nil {
			badRequest(c, errors.New("no image file provided"))
			return
		}
	}
	defer file.Close()

	newFileName := uuid.New().String() + filepath.Ext(header.Filename)
	objectName := "img/" + newFileName

	_, err = h.MinioClient.PutObject(
		context.Background(),
		h.MinioBucket,
		objectName,
		file,
		header.Size,
		minio.PutObjectOptions{
			ContentType: header.Header.Get("Content-Type"),
		},
	)
	if err != nil {
		internalError(c, err)
		return
	}

	// Прежнее изображение больше не нужно
	if ship.PhotoURL != "" {
		oldFileName := ship.PhotoURL
		if strings.Contains(oldFileName, "/") {
			parts := strings.Split(oldFileName, "/")
			oldFileName = parts[len(parts)-1]
		}
		h.MinioClient.RemoveObject(context.Background(), h.MinioBucket, "img/"+oldFileName, minio.RemoveObjectOptions{})
	}

	ship.PhotoURL = newFileName
	if err := h.Repository.UpdateShip(&ship); err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ship_id":   id,
		"photo_url": newFileName,
	})
}
