package routes

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ac-registry/internal/controllers"
	"ac-registry/internal/services"
)

func runInterventionRouter(
	api *echo.Group,
	interventionService services.InterventionServiceInterface,
	location *time.Location,
	logger *zap.Logger,
) {
	interventionCtrl := controllers.NewInterventionController(interventionService, location, logger)
	agendaCtrl := controllers.NewAgendaController(interventionService, logger)

	api.GET("/interventions", interventionCtrl.GetInterventions)
	api.POST("/interventions", interventionCtrl.CreateIntervention)
	api.GET("/interventions/:id", interventionCtrl.FindIntervention)

	// Rotas da agenda
	api.GET("/intervencoes/agendadas", agendaCtrl.GetScheduled)
	api.POST("/intervencoes/registrar", agendaCtrl.Register)
}
