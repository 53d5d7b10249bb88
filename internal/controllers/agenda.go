package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ac-registry/internal/dto"
	"ac-registry/internal/services"
	apperrors "ac-registry/pkg/errors"
	"ac-registry/pkg/utils"
)

const (
	msgScheduledError    = "Erro ao buscar intervenções agendadas."
	msgRegisterError     = "Erro ao registrar intervenção."
	msgRegisterSucceeded = "Intervenção registrada com sucesso."
)

// AgendaController atende as rotas usadas pela agenda. As respostas não usam o
// envelope padrão: a agenda espera um array puro ou {"message"} / {"error"}.
type AgendaController struct {
	interventionService services.InterventionServiceInterface
	logger              *zap.Logger
}

func NewAgendaController(interventionService services.InterventionServiceInterface, logger *zap.Logger) *AgendaController {
	return &AgendaController{interventionService: interventionService, logger: logger}
}

func (c *AgendaController) GetScheduled(ctx echo.Context) error {
	events, err := c.interventionService.Scheduled(ctx.Request().Context())
	if err != nil {
		c.logger.Error("Erro ao buscar intervenções agendadas", zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": msgScheduledError})
	}
	if events == nil {
		events = []dto.ScheduledEventDTO{}
	}
	return ctx.JSON(http.StatusOK, events)
}

func (c *AgendaController) Register(ctx echo.Context) error {
	var req dto.RegisterInterventionRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "Dados inválidos."})
	}

	if _, err := c.interventionService.Create(ctx.Request().Context(), req.ToCreateDTO()); err != nil {
		if msg, ok := clientErrorMessage(err); ok {
			return ctx.JSON(http.StatusBadRequest, map[string]string{"error": msg})
		}
		c.logger.Error("Erro ao registrar intervenção", zap.String("patrimony", req.Patrimony), zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": msgRegisterError})
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": msgRegisterSucceeded})
}

// clientErrorMessage separa os erros causados pelos dados enviados dos erros de armazenamento.
func clientErrorMessage(err error) (string, bool) {
	var inputErr *apperrors.InvalidInputError
	if errors.As(err, &inputErr) {
		return inputErr.Message, true
	}
	if _, ok := utils.StatusForError(err); ok {
		return err.Error(), true
	}
	return "", false
}
