package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ac-registry/internal/dto"
	"ac-registry/internal/services"
	apperrors "ac-registry/pkg/errors"
	"ac-registry/pkg/utils"
)

type LocationController struct {
	locationService services.LocationServiceInterface
	logger          *zap.Logger
}

func NewLocationController(locationService services.LocationServiceInterface, logger *zap.Logger) *LocationController {
	return &LocationController{locationService: locationService, logger: logger}
}

func (c *LocationController) GetLocations(ctx echo.Context) error {
	list, err := c.locationService.List(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, list, "Locais obtidos com sucesso", http.StatusOK)
}

func (c *LocationController) CreateLocation(ctx echo.Context) error {
	var d dto.CreateLocationDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Dados inválidos", err, nil), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.locationService.Create(ctx.Request().Context(), d.Name)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Local "+res.Name+" adicionado com sucesso.", http.StatusCreated)
}
