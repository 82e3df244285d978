package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"

	"space_ships/internal/app/handler/api"
	"space_ships/internal/app/repository"
)

type Handler struct {
	Repository     *repository.Repository
	ShipAPIHandler *api.ShipHandler
}

func NewHandler(rep *repository.Repository, minioClient *minio.Client, minioBucket string) *Handler {
	return &Handler{
		Repository: rep,
		ShipAPIHandler: &api.ShipHandler{
			Repository:  rep,
			MinioClient: minioClient,
			MinioBucket: minioBucket,
		},
	}
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	// Префикс /rest сохранен для совместимости клиентов
	rest := router.Group("/rest")
	{
		rest.GET("/ships", h.ShipAPIHandler.GetShipsAPI)
		rest.GET("/ships/count", h.ShipAPIHandler.GetShipsCountAPI)
		rest.GET("/ships/:id", h.ShipAPIHandler.GetShipAPI)
		rest.POST("/ships", h.ShipAPIHandler.CreateShipAPI)
		rest.POST("/ships/:id", h.ShipAPIHandler.UpdateShipAPI)
		rest.DELETE("/ships/:id", h.ShipAPIHandler.DeleteShipAPI)
		rest.POST("/ships/:id/image", h.ShipAPIHandler.AddShipImageAPI)
	}
}
