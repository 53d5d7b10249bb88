package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ac-registry/internal/controllers"
	"ac-registry/internal/services"
)

func runLocationRouter(api *echo.Group, locationService services.LocationServiceInterface, logger *zap.Logger) {
	locationCtrl := controllers.NewLocationController(locationService, logger)
	optionsCtrl := controllers.NewOptionsController(locationService, logger)

	api.GET("/locations", locationCtrl.GetLocations)
	api.POST("/locations", locationCtrl.CreateLocation)
	api.GET("/options", optionsCtrl.GetOptions)
}
