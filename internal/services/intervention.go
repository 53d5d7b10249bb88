package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"ac-registry/internal/dto"
	"ac-registry/internal/entities"
	"ac-registry/internal/events"
	"ac-registry/internal/repositories"
	"ac-registry/pkg/constants"
	apperrors "ac-registry/pkg/errors"
	"ac-registry/pkg/eventbus"
	"ac-registry/pkg/types"
	"ac-registry/pkg/utils"
)

type InterventionServiceInterface interface {
	List(ctx context.Context, filter types.Filter) ([]entities.Intervention, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.Intervention, error)
	ListByPatrimony(ctx context.Context, patrimony string) ([]entities.Intervention, error)
	Create(ctx context.Context, d dto.CreateInterventionDTO) (*entities.Intervention, error)
	Scheduled(ctx context.Context) ([]dto.ScheduledEventDTO, error)
}

type InterventionService struct {
	interventionRepo repositories.InterventionRepositoryInterface
	equipmentRepo    repositories.EquipmentRepositoryInterface
	bus              *eventbus.Bus
	location         *time.Location
	now              func() time.Time
	logger           *zap.Logger
}

func NewInterventionService(
	interventionRepo repositories.InterventionRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	bus *eventbus.Bus,
	location *time.Location,
	logger *zap.Logger,
) *InterventionService {
	return &InterventionService{
		interventionRepo: interventionRepo,
		equipmentRepo:    equipmentRepo,
		bus:              bus,
		location:         location,
		now:              time.Now,
		logger:           logger,
	}
}

func (s *InterventionService) List(ctx context.Context, filter types.Filter) ([]entities.Intervention, uint64, error) {
	return s.interventionRepo.List(ctx, filter)
}

func (s *InterventionService) FindByID(ctx context.Context, id uint64) (*entities.Intervention, error) {
	return s.interventionRepo.FindByID(ctx, id)
}

func (s *InterventionService) ListByPatrimony(ctx context.Context, patrimony string) ([]entities.Intervention, error) {
	if _, err := s.equipmentRepo.FindByPatrimony(ctx, nil, patrimony); err != nil {
		return nil, err
	}
	return s.interventionRepo.ListByPatrimony(ctx, patrimony)
}

func (s *InterventionService) Create(ctx context.Context, d dto.CreateInterventionDTO) (*entities.Intervention, error) {
	iv, err := s.interventionFromDTO(d)
	if err != nil {
		return nil, err
	}
	if err := validateInterventionRules(iv); err != nil {
		return nil, err
	}

	if _, err := s.equipmentRepo.FindByPatrimony(ctx, nil, iv.Patrimony); err != nil {
		if !errors.Is(err, apperrors.ErrEquipmentNotFound) {
			s.logger.Error("Erro ao buscar equipamento", zap.String("patrimony", iv.Patrimony), zap.Error(err))
		}
		return nil, err
	}

	created, err := s.interventionRepo.Create(ctx, nil, iv)
	if err != nil {
		s.logger.Error("Erro ao adicionar intervenção", zap.String("patrimony", iv.Patrimony), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Intervenção registrada",
		zap.Uint64("id", created.ID),
		zap.String("patrimony", created.Patrimony),
		zap.String("type", created.Type.String()),
	)
	s.bus.Publish(ctx, events.InterventionSavedEvent{ID: created.ID, Patrimony: created.Patrimony, Type: created.Type.String()})
	return created, nil
}

// Scheduled - intervenções a partir de hoje (00:00 no fuso configurado), para a agenda.
func (s *InterventionService) Scheduled(ctx context.Context) ([]dto.ScheduledEventDTO, error) {
	from := utils.StartOfDay(s.now().In(s.location))

	list, err := s.interventionRepo.ListScheduled(ctx, from)
	if err != nil {
		s.logger.Error("Erro ao buscar intervenções agendadas", zap.Error(err))
		return nil, err
	}

	out := make([]dto.ScheduledEventDTO, 0, len(list))
	for _, iv := range list {
		out = append(out, dto.ScheduledEventDTO{
			ID:                 "intervention-" + strconv.FormatUint(iv.ID, 10),
			Type:               iv.Type.String(),
			Description:        iv.Description.Ptr(),
			ScheduledDate:      iv.StartDate.In(s.location).Format(time.RFC3339),
			BaseInterventionID: iv.Patrimony,
		})
	}
	return out, nil
}

func (s *InterventionService) interventionFromDTO(d dto.CreateInterventionDTO) (entities.Intervention, error) {
	iv := entities.Intervention{
		Patrimony:   strings.TrimSpace(d.Patrimony),
		Type:        constants.InterventionType(d.Type),
		Description: trimNull(d.Description),
		Origin:      trimNull(d.Origin),
		Destination: trimNull(d.Destination),
		Responsible: trimNull(d.Responsible),
		Notes:       trimNull(d.Notes),
	}
	if d.Cost.Valid {
		iv.Cost = d.Cost.Float64
	}

	if strings.TrimSpace(d.StartDate) == "" {
		iv.StartDate = s.now()
	} else {
		t, err := utils.ParseFlexibleDate(d.StartDate, s.location)
		if err != nil {
			return iv, apperrors.NewInvalidInputError("Data de início inválida: %s", d.StartDate)
		}
		iv.StartDate = t
	}

	if strings.TrimSpace(d.EndDate) != "" {
		t, err := utils.ParseFlexibleDate(d.EndDate, s.location)
		if err != nil {
			return iv, apperrors.NewInvalidInputError("Data de término inválida: %s", d.EndDate)
		}
		iv.EndDate = null.TimeFrom(t)
	}
	return iv, nil
}

// validateInterventionRules aplica as regras por tipo que o formulário exige.
func validateInterventionRules(iv entities.Intervention) error {
	if !constants.IsValidInterventionType(iv.Type.String()) {
		return apperrors.NewInvalidInputError("Tipo de intervenção inválido: %s", iv.Type)
	}
	if iv.Cost < 0 {
		return apperrors.NewInvalidInputError("O custo não pode ser negativo.")
	}
	if iv.EndDate.Valid && iv.EndDate.Time.Before(iv.StartDate) {
		return apperrors.NewInvalidInputError("A data de término não pode ser anterior à data de início.")
	}

	switch iv.Type {
	case constants.InterventionReservation:
		if !iv.EndDate.Valid {
			return apperrors.NewInvalidInputError("Reservas exigem data de término.")
		}
	case constants.InterventionRelocation:
		if !iv.Origin.Valid || !iv.Destination.Valid {
			return apperrors.NewInvalidInputError("Movimentações exigem local de origem e de destino.")
		}
	case constants.InterventionUninstall:
		if !iv.Origin.Valid {
			return apperrors.NewInvalidInputError("Desinstalações exigem o local de origem.")
		}
	}
	return nil
}
