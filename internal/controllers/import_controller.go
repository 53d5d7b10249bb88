package controllers

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ac-registry/internal/services"
	apperrors "ac-registry/pkg/errors"
	"ac-registry/pkg/utils"
)

const maxImportFileSize = 10 << 20

type ImportController struct {
	importService services.ImportJobServiceInterface
	logger        *zap.Logger
}

func NewImportController(importService services.ImportJobServiceInterface, logger *zap.Logger) *ImportController {
	return &ImportController{importService: importService, logger: logger}
}

// Import recebe a planilha no campo "file". Com mode=sync responde com o resultado;
// caso contrário devolve 202 e o id para acompanhar o progresso.
func (c *ImportController) Import(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, apperrors.ErrUnsupportedFile.Error(), nil, nil),
			c.logger,
		)
	}
	if fileHeader.Size > maxImportFileSize {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusRequestEntityTooLarge, "Arquivo muito grande (máximo 10 MB).", nil,
				map[string]interface{}{"size": fileHeader.Size}),
			c.logger,
		)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "Erro ao processar o arquivo", err, nil), c.logger)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxImportFileSize))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "Erro ao ler o arquivo", err, nil), c.logger)
	}

	reqCtx := ctx.Request().Context()
	if ctx.QueryParam("mode") == "sync" {
		result, err := c.importService.Run(reqCtx, fileHeader.Filename, data)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		return utils.SuccessResponse(ctx, result, "Importação concluída", http.StatusOK)
	}

	job, err := c.importService.Start(reqCtx, fileHeader.Filename, data)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, job, "Importação iniciada", http.StatusAccepted)
}

func (c *ImportController) Status(ctx echo.Context) error {
	job, err := c.importService.Status(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, job, "Status da importação", http.StatusOK)
}

func (c *ImportController) Template(ctx echo.Context) error {
	data, err := services.ImportTemplateCSV()
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "Erro ao gerar o template", err, nil), c.logger)
	}
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename=template_equipamentos.csv")
	return ctx.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}
