package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "ac-registry/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

type PaginationMeta struct {
	TotalCount uint64 `json:"total_count"`
	TotalPages uint64 `json:"total_pages"`
	Page       uint64 `json:"page"`
	Limit      uint64 `json:"limit"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{Status: true, Body: body, Message: message})
}

// SuccessListResponse embrulha a lista com os metadados de paginação.
func SuccessListResponse(ctx echo.Context, list interface{}, message string, total, page, limit uint64) error {
	var totalPages uint64
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	body := map[string]interface{}{
		"list": list,
		"pagination": PaginationMeta{
			TotalCount: total,
			TotalPages: totalPages,
			Page:       page,
			Limit:      limit,
		},
	}
	return ctx.JSON(http.StatusOK, &HTTPResponse{Status: true, Body: body, Message: message})
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}

		response := map[string]interface{}{
			"status":  false,
			"message": httpErr.Message,
		}
		return c.JSON(httpErr.Code, response)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("Campo '%s' falhou na regra '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": "Erro de validação: " + strings.Join(msgs, "; "),
		})
	}

	var inputErr *apperrors.InvalidInputError
	if errors.As(err, &inputErr) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"status": false, "message": inputErr.Message})
	}

	if code, ok := StatusForError(err); ok {
		return c.JSON(code, map[string]interface{}{"status": false, "message": err.Error()})
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"status":  false,
		"message": "Erro interno do servidor",
	})
}

// StatusForError mapeia os erros de domínio conhecidos para códigos HTTP.
func StatusForError(err error) (int, bool) {
	switch {
	case errors.Is(err, apperrors.ErrPatrimonyTaken), errors.Is(err, apperrors.ErrPatrimonyTakenByOther):
		return http.StatusConflict, true
	case errors.Is(err, apperrors.ErrEquipmentNotFound),
		errors.Is(err, apperrors.ErrInterventionNotFound),
		errors.Is(err, apperrors.ErrImportNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, apperrors.ErrInvalidImportFile),
		errors.Is(err, apperrors.ErrUnsupportedFile):
		return http.StatusBadRequest, true
	}
	return 0, false
}
