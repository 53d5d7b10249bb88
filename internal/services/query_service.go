package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"ac-registry/internal/dto"
	"ac-registry/internal/entities"
	"ac-registry/internal/events"
	"ac-registry/internal/query"
	"ac-registry/internal/repositories"
	"ac-registry/pkg/eventbus"
)

const (
	snapshotGenerationKey = "query:snapshot:gen"
	snapshotKeyPrefix     = "query:snapshot:"
)

type QueryServiceInterface interface {
	Dashboard(ctx context.Context, criteria query.Criteria, splitYears *bool) (*dto.DashboardDTO, error)
	Filter(ctx context.Context, criteria query.Criteria) ([]entities.Intervention, error)
	Invalidate(ctx context.Context) error
}

// QueryService carrega o snapshot completo (equipamentos + intervenções) pela conexão
// de leitura, guarda no Redis e filtra/agrega em memória a cada requisição.
type QueryService struct {
	equipmentRepo    repositories.EquipmentRepositoryInterface
	interventionRepo repositories.InterventionRepositoryInterface
	cache            repositories.CacheRepositoryInterface
	ttl              time.Duration
	location         *time.Location
	splitYears       bool
	logger           *zap.Logger
}

func NewQueryService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	interventionRepo repositories.InterventionRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	ttl time.Duration,
	location *time.Location,
	splitYears bool,
	logger *zap.Logger,
) *QueryService {
	return &QueryService{
		equipmentRepo:    equipmentRepo,
		interventionRepo: interventionRepo,
		cache:            cache,
		ttl:              ttl,
		location:         location,
		splitYears:       splitYears,
		logger:           logger,
	}
}

// Subscribe liga a invalidação do snapshot às escritas.
func (s *QueryService) Subscribe(bus *eventbus.Bus) {
	invalidate := func(ctx context.Context, _ eventbus.Event) error {
		return s.Invalidate(ctx)
	}
	bus.Subscribe(events.EquipmentSavedName, invalidate)
	bus.Subscribe(events.InterventionSavedName, invalidate)
}

func (s *QueryService) Dashboard(ctx context.Context, criteria query.Criteria, splitYears *bool) (*dto.DashboardDTO, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	split := s.splitYears
	if splitYears != nil {
		split = *splitYears
	}

	filtered := query.FilterInterventions(snap.Interventions, snap.Index(), criteria)
	equipment := query.FilterEquipment(snap.Equipment, criteria)

	stats := query.Aggregate(filtered, equipment, query.Options{
		SplitYears: split,
		Location:   s.location,
		History:    snap.Interventions,
	})

	return &dto.DashboardDTO{
		Criteria:      criteria,
		Stats:         stats,
		Interventions: filtered,
		Count:         len(filtered),
		LoadedAt:      snap.LoadedAt,
	}, nil
}

// Filter devolve as intervenções filtradas, usadas pela exportação.
func (s *QueryService) Filter(ctx context.Context, criteria query.Criteria) ([]entities.Intervention, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return query.FilterInterventions(snap.Interventions, snap.Index(), criteria), nil
}

// Invalidate troca a geração e descarta o snapshot anterior. Um leitor que ainda
// grave na geração antiga não é visto por ninguém e expira pelo TTL.
func (s *QueryService) Invalidate(ctx context.Context) error {
	previous, _ := s.snapshotKey(ctx)
	if _, err := s.cache.Incr(ctx, snapshotGenerationKey); err != nil {
		return fmt.Errorf("erro ao invalidar snapshot: %w", err)
	}
	if previous != "" {
		if err := s.cache.Del(ctx, previous); err != nil {
			s.logger.Warn("Não foi possível remover o snapshot anterior", zap.Error(err))
		}
	}
	s.logger.Debug("Snapshot de consultas invalidado")
	return nil
}

func (s *QueryService) snapshot(ctx context.Context) (*query.Snapshot, error) {
	key, cacheOK := s.snapshotKey(ctx)

	if cacheOK {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			var snap query.Snapshot
			if err := json.Unmarshal([]byte(cached), &snap); err == nil {
				s.logger.Debug("Snapshot obtido do cache", zap.String("key", key))
				return &snap, nil
			}
			s.logger.Warn("Snapshot em cache ilegível, recarregando", zap.String("key", key))
		} else if !errors.Is(err, repositories.ErrCacheMiss) {
			s.logger.Warn("Cache indisponível, lendo do banco", zap.Error(err))
			cacheOK = false
		}
	}

	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if cacheOK {
		if payload, err := json.Marshal(snap); err == nil {
			if err := s.cache.Set(ctx, key, payload, s.ttl); err != nil {
				s.logger.Warn("Não foi possível gravar o snapshot no cache", zap.Error(err))
			}
		}
	}
	return snap, nil
}

func (s *QueryService) snapshotKey(ctx context.Context) (string, bool) {
	gen, err := s.cache.Get(ctx, snapshotGenerationKey)
	switch {
	case errors.Is(err, repositories.ErrCacheMiss):
		gen = "0"
	case err != nil:
		s.logger.Warn("Cache indisponível, lendo do banco", zap.Error(err))
		return "", false
	}
	return snapshotKeyPrefix + gen, true
}

// load lê equipamentos e intervenções em paralelo.
func (s *QueryService) load(ctx context.Context) (*query.Snapshot, error) {
	var (
		wg            sync.WaitGroup
		equipment     []entities.Equipment
		interventions []entities.Intervention
		errEq, errIv  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		equipment, errEq = s.equipmentRepo.ListAll(ctx)
	}()
	go func() {
		defer wg.Done()
		interventions, errIv = s.interventionRepo.ListAll(ctx)
	}()
	wg.Wait()

	if err := errors.Join(errEq, errIv); err != nil {
		s.logger.Error("Erro ao carregar dados das consultas", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Snapshot de consultas carregado",
		zap.Int("equipment", len(equipment)),
		zap.Int("interventions", len(interventions)),
	)
	return query.NewSnapshot(equipment, interventions, time.Now()), nil
}
