package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ac-registry/internal/dto"
	"ac-registry/internal/repositories"
	apperrors "ac-registry/pkg/errors"
)

const (
	importJobKeyPrefix = "import:job:"
	importJobTTL       = 24 * time.Hour
)

type ImportJobServiceInterface interface {
	// Start valida o arquivo e dispara a importação em segundo plano.
	Start(ctx context.Context, fileName string, data []byte) (*dto.ImportJobDTO, error)
	// Run importa de forma síncrona e devolve o resultado.
	Run(ctx context.Context, fileName string, data []byte) (*dto.ImportResultDTO, error)
	Status(ctx context.Context, id string) (*dto.ImportJobDTO, error)
}

// ImportJobService guarda o progresso de cada importação no Redis para consulta por id.
type ImportJobService struct {
	importer *EquipmentImporter
	cache    repositories.CacheRepositoryInterface
	logger   *zap.Logger
}

func NewImportJobService(importer *EquipmentImporter, cache repositories.CacheRepositoryInterface, logger *zap.Logger) *ImportJobService {
	return &ImportJobService{importer: importer, cache: cache, logger: logger}
}

func (s *ImportJobService) Run(ctx context.Context, fileName string, data []byte) (*dto.ImportResultDTO, error) {
	records, err := s.importer.Parse(fileName, data)
	if err != nil {
		return nil, err
	}
	return s.importer.Import(ctx, records, nil), nil
}

func (s *ImportJobService) Start(ctx context.Context, fileName string, data []byte) (*dto.ImportJobDTO, error) {
	records, err := s.importer.Parse(fileName, data)
	if err != nil {
		return nil, err
	}

	job := &dto.ImportJobDTO{ID: uuid.NewString(), FileName: fileName}
	if err := s.save(ctx, job); err != nil {
		s.logger.Error("Erro ao registrar importação", zap.String("job", job.ID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Importação iniciada",
		zap.String("job", job.ID),
		zap.String("file", fileName),
		zap.Int("rows", len(records)),
	)

	// Sem cancelamento: a importação segue mesmo que o cliente desconecte.
	go s.run(context.WithoutCancel(ctx), *job, records)

	return job, nil
}

func (s *ImportJobService) run(ctx context.Context, job dto.ImportJobDTO, records []ImportRecord) {
	defer func() {
		if p := recover(); p != nil {
			s.logger.Error("Pânico durante a importação", zap.String("job", job.ID), zap.Any("panic", p))
			job.Done = true
			job.Error = "Erro inesperado durante a importação."
			s.saveQuietly(ctx, &job)
		}
	}()

	result := s.importer.Import(ctx, records, func(percent int) {
		job.Progress = percent
		s.saveQuietly(ctx, &job)
	})

	job.Progress = 100
	job.Done = true
	job.Result = result
	s.saveQuietly(ctx, &job)
}

func (s *ImportJobService) Status(ctx context.Context, id string) (*dto.ImportJobDTO, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrImportNotFound
	}

	raw, err := s.cache.Get(ctx, importJobKeyPrefix+id)
	if errors.Is(err, repositories.ErrCacheMiss) {
		return nil, apperrors.ErrImportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar importação: %w", err)
	}

	var job dto.ImportJobDTO
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		return nil, fmt.Errorf("estado da importação ilegível: %w", err)
	}
	return &job, nil
}

func (s *ImportJobService) save(ctx context.Context, job *dto.ImportJobDTO) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, importJobKeyPrefix+job.ID, payload, importJobTTL)
}

func (s *ImportJobService) saveQuietly(ctx context.Context, job *dto.ImportJobDTO) {
	if err := s.save(ctx, job); err != nil {
		s.logger.Warn("Não foi possível atualizar o progresso da importação", zap.String("job", job.ID), zap.Error(err))
	}
}
