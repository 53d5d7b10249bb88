package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"ac-registry/internal/dto"
	"ac-registry/internal/entities"
	"ac-registry/internal/events"
	"ac-registry/internal/query"
	"ac-registry/internal/repositories"
	apperrors "ac-registry/pkg/errors"
	"ac-registry/pkg/eventbus"
	"ac-registry/pkg/types"
	"ac-registry/pkg/utils"
)

type EquipmentServiceInterface interface {
	List(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	Create(ctx context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error)
	Update(ctx context.Context, id uint64, d dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	Details(ctx context.Context, patrimony string) (*dto.EquipmentDetailsDTO, error)
}

type EquipmentService struct {
	equipmentRepo    repositories.EquipmentRepositoryInterface
	interventionRepo repositories.InterventionRepositoryInterface
	txManager        repositories.TxManagerInterface
	bus              *eventbus.Bus
	location         *time.Location
	logger           *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	interventionRepo repositories.InterventionRepositoryInterface,
	txManager repositories.TxManagerInterface,
	bus *eventbus.Bus,
	location *time.Location,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepo:    equipmentRepo,
		interventionRepo: interventionRepo,
		txManager:        txManager,
		bus:              bus,
		location:         location,
		logger:           logger,
	}
}

func (s *EquipmentService) List(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	return s.equipmentRepo.List(ctx, filter)
}

// Create é o caminho único de cadastro: formulário, API e importação passam por aqui.
func (s *EquipmentService) Create(ctx context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	entity, err := equipmentFromDTO(d, s.location)
	if err != nil {
		return nil, err
	}

	exists, err := s.equipmentRepo.ExistsByPatrimony(ctx, nil, entity.Patrimony, 0)
	if err != nil {
		s.logger.Error("Erro ao verificar patrimônio", zap.String("patrimony", entity.Patrimony), zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrPatrimonyTaken
	}

	created, err := s.equipmentRepo.Create(ctx, nil, entity)
	if err != nil {
		if !errors.Is(err, apperrors.ErrPatrimonyTaken) {
			s.logger.Error("Erro ao adicionar equipamento", zap.String("patrimony", entity.Patrimony), zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("Equipamento cadastrado", zap.Uint64("id", created.ID), zap.String("patrimony", created.Patrimony))
	s.bus.Publish(ctx, events.EquipmentSavedEvent{ID: created.ID, Patrimony: created.Patrimony, Created: true})
	return created, nil
}

func (s *EquipmentService) Update(ctx context.Context, id uint64, d dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	entity, err := equipmentFromDTO(dto.CreateEquipmentDTO(d), s.location)
	if err != nil {
		return nil, err
	}
	entity.ID = id

	var updated *entities.Equipment
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := s.equipmentRepo.FindByID(ctx, tx, id); err != nil {
			return err
		}

		taken, err := s.equipmentRepo.ExistsByPatrimony(ctx, tx, entity.Patrimony, id)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrPatrimonyTakenByOther
		}

		updated, err = s.equipmentRepo.Update(ctx, tx, entity)
		return err
	})
	if err != nil {
		if _, known := utils.StatusForError(err); !known {
			s.logger.Error("Erro ao atualizar equipamento", zap.Uint64("id", id), zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("Equipamento atualizado", zap.Uint64("id", id), zap.String("patrimony", updated.Patrimony))
	s.bus.Publish(ctx, events.EquipmentSavedEvent{ID: updated.ID, Patrimony: updated.Patrimony})
	return updated, nil
}

// Details devolve o equipamento com histórico, local atual e status.
func (s *EquipmentService) Details(ctx context.Context, patrimony string) (*dto.EquipmentDetailsDTO, error) {
	eq, err := s.equipmentRepo.FindByPatrimony(ctx, nil, patrimony)
	if err != nil {
		return nil, err
	}

	history, err := s.interventionRepo.ListByPatrimony(ctx, patrimony)
	if err != nil {
		s.logger.Error("Erro ao buscar intervenções", zap.String("patrimony", patrimony), zap.Error(err))
		return nil, err
	}

	return &dto.EquipmentDetailsDTO{
		Equipment:       eq,
		CurrentLocation: query.CurrentLocation(*eq, history),
		Active:          query.IsActive(*eq, history),
		Interventions:   history,
	}, nil
}

// equipmentFromDTO normaliza o formulário: textos vazios viram NULL, data vazia fica zero (NOW() no banco).
func equipmentFromDTO(d dto.CreateEquipmentDTO, loc *time.Location) (entities.Equipment, error) {
	e := entities.Equipment{
		Patrimony:    strings.TrimSpace(d.Patrimony),
		Brand:        trimNull(d.Brand),
		Model:        trimNull(d.Model),
		SerialNumber: trimNull(d.SerialNumber),
		InitialPlace: strings.TrimSpace(d.InitialLocation),
		Weight:       d.Weight,
		Color:        trimNull(d.Color),
		Power:        d.Power,
		Capacity:     d.Capacity,
		Voltage:      trimNull(d.Voltage),
		Category:     trimNull(d.Category),
		Notes:        trimNull(d.Notes),
	}

	if strings.TrimSpace(d.EntryDate) != "" {
		t, err := utils.ParseFlexibleDate(d.EntryDate, loc)
		if err != nil {
			return e, apperrors.NewInvalidInputError("Data de entrada inválida: %s", d.EntryDate)
		}
		e.EntryDate = t
	}
	return e, nil
}

func trimNull(s null.String) null.String {
	if !s.Valid {
		return s
	}
	v := strings.TrimSpace(s.String)
	return null.NewString(v, v != "")
}
