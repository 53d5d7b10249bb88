package routes

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ac-registry/internal/controllers"
	"ac-registry/internal/services"
)

func runQueryRouter(api *echo.Group, queryService services.QueryServiceInterface, location *time.Location, logger *zap.Logger) {
	queryCtrl := controllers.NewQueryController(queryService, location, logger)

	api.GET("/query/dashboard", queryCtrl.GetDashboard)
	api.GET("/query/export", queryCtrl.Export)
}
