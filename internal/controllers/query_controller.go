package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ac-registry/internal/query"
	"ac-registry/internal/services"
	apperrors "ac-registry/pkg/errors"
	"ac-registry/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type QueryController struct {
	queryService services.QueryServiceInterface
	location     *time.Location
	logger       *zap.Logger
}

func NewQueryController(queryService services.QueryServiceInterface, location *time.Location, logger *zap.Logger) *QueryController {
	return &QueryController{queryService: queryService, location: location, logger: logger}
}

// GetDashboard - indicadores e lista filtrada.
// /api/query/dashboard?patrimony=AC0&types=reserva,movimentacao&locations=Sala 101&from=2024-01-01&to=31/01/2024&split_years=true
func (c *QueryController) GetDashboard(ctx echo.Context) error {
	values := ctx.Request().URL.Query()
	criteria, err := c.parseCriteria(values)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var splitYears *bool
	if raw := values.Get("split_years"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Valor inválido para split_years", err, nil), c.logger)
		}
		splitYears = &v
	}

	c.logger.Debug("Consulta do painel", zap.Any("criteria", criteria))

	res, err := c.queryService.Dashboard(ctx.Request().Context(), criteria, splitYears)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Consulta realizada com sucesso", http.StatusOK)
}

// Export gera o relatório das intervenções filtradas em CSV (padrão) ou XLSX.
func (c *QueryController) Export(ctx echo.Context) error {
	values := ctx.Request().URL.Query()
	criteria, err := c.parseCriteria(values)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	format := strings.ToLower(values.Get("format"))
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de exportação inválido: use csv ou xlsx", nil, nil), c.logger)
	}

	list, err := c.queryService.Filter(ctx.Request().Context(), criteria)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var buf bytes.Buffer
	contentType := "text/csv; charset=utf-8"
	if format == "xlsx" {
		contentType = xlsxContentType
		err = services.WriteInterventionsXLSX(&buf, list, c.location)
	} else {
		err = services.WriteInterventionsCSV(&buf, list, c.location)
	}
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "Erro ao gerar o relatório", err, nil), c.logger)
	}

	fileName := fmt.Sprintf("consulta_%s.%s", time.Now().In(c.location).Format("2006-01-02"), format)
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	return ctx.Blob(http.StatusOK, contentType, buf.Bytes())
}

func (c *QueryController) parseCriteria(values url.Values) (query.Criteria, error) {
	criteria := query.Criteria{
		Patrimony: strings.TrimSpace(values.Get("patrimony")),
		Types:     utils.ParseListParam(values, "types"),
		Locations: utils.ParseListParam(values, "locations"),
		Brand:     strings.TrimSpace(values.Get("brand")),
		Power:     strings.TrimSpace(values.Get("power")),
	}

	if raw := values.Get("from"); raw != "" {
		t, err := utils.ParseFlexibleDate(raw, c.location)
		if err != nil {
			return criteria, apperrors.NewHttpError(http.StatusBadRequest, "Data inicial inválida", err, nil)
		}
		criteria.From = &t
	}
	if raw := values.Get("to"); raw != "" {
		t, err := utils.ParseFlexibleDate(raw, c.location)
		if err != nil {
			return criteria, apperrors.NewHttpError(http.StatusBadRequest, "Data final inválida", err, nil)
		}
		criteria.To = &t
	}
	return criteria, nil
}
