package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"ac-registry/internal/entities"
	"ac-registry/internal/repositories"
	apperrors "ac-registry/pkg/errors"
)

type LocationServiceInterface interface {
	List(ctx context.Context) ([]entities.Location, error)
	Create(ctx context.Context, name string) (*entities.Location, error)
}

type LocationService struct {
	locationRepo repositories.LocationRepositoryInterface
	logger       *zap.Logger
}

func NewLocationService(locationRepo repositories.LocationRepositoryInterface, logger *zap.Logger) *LocationService {
	return &LocationService{locationRepo: locationRepo, logger: logger}
}

func (s *LocationService) List(ctx context.Context) ([]entities.Location, error) {
	return s.locationRepo.List(ctx)
}

// Create devolve o local já existente quando o nome se repete.
func (s *LocationService) Create(ctx context.Context, name string) (*entities.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewInvalidInputError("O nome do local é obrigatório.")
	}

	loc, err := s.locationRepo.Create(ctx, nil, name)
	if err != nil {
		s.logger.Error("Erro ao adicionar local", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	return loc, nil
}
