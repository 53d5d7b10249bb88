package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ac-registry/internal/dto"
	"ac-registry/internal/services"
	apperrors "ac-registry/pkg/errors"
	"ac-registry/pkg/types"
	"ac-registry/pkg/utils"
)

type InterventionController struct {
	interventionService services.InterventionServiceInterface
	location            *time.Location
	logger              *zap.Logger
}

func NewInterventionController(
	interventionService services.InterventionServiceInterface,
	location *time.Location,
	logger *zap.Logger,
) *InterventionController {
	return &InterventionController{interventionService: interventionService, location: location, logger: logger}
}

func (c *InterventionController) GetInterventions(ctx echo.Context) error {
	values := ctx.Request().URL.Query()
	limit, offset, page := utils.ParsePaginationParams(values)
	filter := types.Filter{
		Patrimony: strings.TrimSpace(values.Get("patrimony")),
		Types:     utils.ParseListParam(values, "types"),
		Limit:     limit,
		Offset:    offset,
		Page:      page,
	}

	if df := values.Get("date_from"); df != "" {
		t, err := utils.ParseFlexibleDate(df, c.location)
		if err != nil {
			return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Data inicial inválida", err, nil), c.logger)
		}
		from := utils.StartOfDay(t)
		filter.DateFrom = &from
	}
	if dt := values.Get("date_to"); dt != "" {
		t, err := utils.ParseFlexibleDate(dt, c.location)
		if err != nil {
			return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Data final inválida", err, nil), c.logger)
		}
		to := utils.EndOfDay(t)
		filter.DateTo = &to
	}

	list, total, err := c.interventionService.List(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessListResponse(ctx, list, "Intervenções obtidas com sucesso", total, page, limit)
}

func (c *InterventionController) CreateIntervention(ctx echo.Context) error {
	var d dto.CreateInterventionDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Dados inválidos", err, nil), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.interventionService.Create(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Intervenção registrada com sucesso.", http.StatusCreated)
}

func (c *InterventionController) FindIntervention(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		c.logger.Error("FindIntervention: ID inválido", zap.String("id", ctx.Param("id")), zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de ID inválido", err, nil), c.logger)
	}

	res, err := c.interventionService.FindByID(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Intervenção encontrada", http.StatusOK)
}
