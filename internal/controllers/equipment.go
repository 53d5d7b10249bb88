package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ac-registry/internal/dto"
	"ac-registry/internal/services"
	apperrors "ac-registry/pkg/errors"
	"ac-registry/pkg/types"
	"ac-registry/pkg/utils"
)

type EquipmentController struct {
	equipmentService    services.EquipmentServiceInterface
	interventionService services.InterventionServiceInterface
	logger              *zap.Logger
}

func NewEquipmentController(
	equipmentService services.EquipmentServiceInterface,
	interventionService services.InterventionServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService:    equipmentService,
		interventionService: interventionService,
		logger:              logger,
	}
}

func (c *EquipmentController) GetEquipments(ctx echo.Context) error {
	values := ctx.Request().URL.Query()
	limit, offset, page := utils.ParsePaginationParams(values)
	filter := types.Filter{
		Search:    strings.TrimSpace(values.Get("search")),
		Patrimony: strings.TrimSpace(values.Get("patrimony")),
		Limit:     limit,
		Offset:    offset,
		Page:      page,
	}

	list, total, err := c.equipmentService.List(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessListResponse(ctx, list, "Equipamentos obtidos com sucesso", total, page, limit)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	var d dto.CreateEquipmentDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Dados inválidos", err, nil), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.Create(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Equipamento "+res.Patrimony+" cadastrado com sucesso.", http.StatusCreated)
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		c.logger.Error("UpdateEquipment: ID inválido", zap.String("id", ctx.Param("id")), zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de ID inválido", err, nil), c.logger)
	}

	var d dto.UpdateEquipmentDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Dados inválidos", err, nil), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.Update(ctx.Request().Context(), id, d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Equipamento "+res.Patrimony+" atualizado com sucesso.", http.StatusOK)
}

// FindByPatrimony devolve o equipamento com local atual e histórico.
func (c *EquipmentController) FindByPatrimony(ctx echo.Context) error {
	patrimony := strings.TrimSpace(ctx.Param("patrimony"))
	res, err := c.equipmentService.Details(ctx.Request().Context(), patrimony)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Equipamento encontrado", http.StatusOK)
}

func (c *EquipmentController) GetInterventions(ctx echo.Context) error {
	patrimony := strings.TrimSpace(ctx.Param("patrimony"))
	list, err := c.interventionService.ListByPatrimony(ctx.Request().Context(), patrimony)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, list, "Intervenções obtidas com sucesso", http.StatusOK)
}
