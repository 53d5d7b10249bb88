package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ac-registry/internal/dto"
	"ac-registry/internal/services"
	"ac-registry/pkg/constants"
	"ac-registry/pkg/utils"
)

// OptionsController publica as tabelas de valores dos formulários e filtros.
type OptionsController struct {
	locationService services.LocationServiceInterface
	logger          *zap.Logger
}

func NewOptionsController(locationService services.LocationServiceInterface, logger *zap.Logger) *OptionsController {
	return &OptionsController{locationService: locationService, logger: logger}
}

func (c *OptionsController) GetOptions(ctx echo.Context) error {
	locations, err := c.locationService.List(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, dto.OptionsDTO{
		InterventionTypes: constants.InterventionTypes,
		Categories:        constants.EquipmentCategories,
		Voltages:          constants.Voltages,
		Colors:            constants.Colors,
		Locations:         locations,
	}, "Opções obtidas com sucesso", http.StatusOK)
}
