package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ac-registry/internal/controllers"
	"ac-registry/internal/services"
)

func runEquipmentRouter(
	api *echo.Group,
	equipmentService services.EquipmentServiceInterface,
	interventionService services.InterventionServiceInterface,
	importService services.ImportJobServiceInterface,
	logger *zap.Logger,
) {
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, interventionService, logger)
	importCtrl := controllers.NewImportController(importService, logger)

	api.GET("/equipment", equipmentCtrl.GetEquipments)
	api.POST("/equipment", equipmentCtrl.CreateEquipment)
	api.PUT("/equipment/:id", equipmentCtrl.UpdateEquipment)
	api.GET("/equipment/patrimony/:patrimony", equipmentCtrl.FindByPatrimony)
	api.GET("/equipment/patrimony/:patrimony/interventions", equipmentCtrl.GetInterventions)

	api.POST("/equipment/import", importCtrl.Import)
	api.GET("/equipment/import/template", importCtrl.Template)
	api.GET("/equipment/import/:id", importCtrl.Status)
}
