package controllers

import (
	"context"

	"ac-registry/internal/dto"
	"ac-registry/internal/entities"
	"ac-registry/internal/query"
	apperrors "ac-registry/pkg/errors"
	"ac-registry/pkg/types"
)

type fakeEquipmentService struct {
	createErr error
	created   []dto.CreateEquipmentDTO
	filter    types.Filter
	list      []entities.Equipment
}

func (f *fakeEquipmentService) List(_ context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	f.filter = filter
	return f.list, uint64(len(f.list)), nil
}

func (f *fakeEquipmentService) Create(_ context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, d)
	return &entities.Equipment{ID: uint64(len(f.created)), Patrimony: d.Patrimony, InitialPlace: d.InitialLocation}, nil
}

func (f *fakeEquipmentService) Update(_ context.Context, id uint64, d dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &entities.Equipment{ID: id, Patrimony: d.Patrimony, InitialPlace: d.InitialLocation}, nil
}

func (f *fakeEquipmentService) Details(_ context.Context, patrimony string) (*dto.EquipmentDetailsDTO, error) {
	for i := range f.list {
		if f.list[i].Patrimony == patrimony {
			return &dto.EquipmentDetailsDTO{Equipment: f.list[i], CurrentLocation: f.list[i].InitialPlace, Active: true}, nil
		}
	}
	return nil, apperrors.ErrEquipmentNotFound
}

type fakeInterventionService struct {
	scheduled    []dto.ScheduledEventDTO
	scheduledErr error
	createErr    error
	created      []dto.CreateInterventionDTO
	filter       types.Filter
}

func (f *fakeInterventionService) List(_ context.Context, filter types.Filter) ([]entities.Intervention, uint64, error) {
	f.filter = filter
	return []entities.Intervention{}, 0, nil
}

func (f *fakeInterventionService) FindByID(_ context.Context, id uint64) (*entities.Intervention, error) {
	if id != 1 {
		return nil, apperrors.ErrInterventionNotFound
	}
	return &entities.Intervention{ID: 1, Patrimony: "AC001"}, nil
}

func (f *fakeInterventionService) ListByPatrimony(_ context.Context, _ string) ([]entities.Intervention, error) {
	return []entities.Intervention{}, nil
}

func (f *fakeInterventionService) Create(_ context.Context, d dto.CreateInterventionDTO) (*entities.Intervention, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, d)
	return &entities.Intervention{ID: uint64(len(f.created)), Patrimony: d.Patrimony}, nil
}

func (f *fakeInterventionService) Scheduled(_ context.Context) ([]dto.ScheduledEventDTO, error) {
	return f.scheduled, f.scheduledErr
}

type fakeQueryService struct {
	criteria   query.Criteria
	splitYears *bool
	list       []entities.Intervention
}

func (f *fakeQueryService) Dashboard(_ context.Context, criteria query.Criteria, splitYears *bool) (*dto.DashboardDTO, error) {
	f.criteria = criteria
	f.splitYears = splitYears
	return &dto.DashboardDTO{Criteria: criteria, Interventions: f.list, Count: len(f.list)}, nil
}

func (f *fakeQueryService) Filter(_ context.Context, criteria query.Criteria) ([]entities.Intervention, error) {
	f.criteria = criteria
	return f.list, nil
}

func (f *fakeQueryService) Invalidate(_ context.Context) error { return nil }

type fakeImportService struct {
	runFile   string
	startFile string
	data      []byte
}

func (f *fakeImportService) Start(_ context.Context, fileName string, data []byte) (*dto.ImportJobDTO, error) {
	f.startFile, f.data = fileName, data
	return &dto.ImportJobDTO{ID: "8a3c5c0e-4f55-4b8e-9d4c-2f0d1b7c9e11", FileName: fileName}, nil
}

func (f *fakeImportService) Run(_ context.Context, fileName string, data []byte) (*dto.ImportResultDTO, error) {
	f.runFile, f.data = fileName, data
	return &dto.ImportResultDTO{Success: 1, Errors: []dto.ImportRowError{}, Total: 1}, nil
}

func (f *fakeImportService) Status(_ context.Context, _ string) (*dto.ImportJobDTO, error) {
	return nil, apperrors.ErrImportNotFound
}

type fakeLocationService struct {
	locations []entities.Location
}

func (f *fakeLocationService) List(_ context.Context) ([]entities.Location, error) {
	return f.locations, nil
}

func (f *fakeLocationService) Create(_ context.Context, name string) (*entities.Location, error) {
	if name == "" {
		return nil, apperrors.NewInvalidInputError("O nome do local é obrigatório.")
	}
	loc := entities.Location{ID: uint64(len(f.locations) + 1), Name: name}
	f.locations = append(f.locations, loc)
	return &loc, nil
}
