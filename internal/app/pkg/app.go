package pkg

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"space_ships/internal/app/config"
	"space_ships/internal/app/handler"
)

type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.Handler
}

func NewApp(cfg *config.Config, router *gin.Engine, h *handler.Handler) *Application {
	return &Application{
		Config:  cfg,
		Router:  router,
		Handler: h,
	}
}

func (a *Application) RunApp() {
	a.Handler.SetupRoutes(a.Router)

	addr := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	logrus.Infof("server listening on %s", addr)
	if err := a.Router.Run(addr); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
