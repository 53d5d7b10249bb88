package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"ac-registry/internal/entities"
	"ac-registry/internal/repositories"
	apperrors "ac-registry/pkg/errors"
	"ac-registry/pkg/types"
)

// Repositórios em memória para os testes de serviço.

type fakeEquipmentRepo struct {
	mu           sync.Mutex
	items        []entities.Equipment
	nextID       uint64
	listAllCalls int
}

func (r *fakeEquipmentRepo) List(_ context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Equipment, 0)
	for _, e := range r.items {
		if filter.Search == "" || strings.Contains(strings.ToLower(e.Patrimony), strings.ToLower(filter.Search)) {
			out = append(out, e)
		}
	}
	return out, uint64(len(out)), nil
}

func (r *fakeEquipmentRepo) ListAll(_ context.Context) ([]entities.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listAllCalls++
	return append([]entities.Equipment(nil), r.items...), nil
}

func (r *fakeEquipmentRepo) FindByID(_ context.Context, _ pgx.Tx, id uint64) (*entities.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.items {
		if e.ID == id {
			e := e
			return &e, nil
		}
	}
	return nil, apperrors.ErrEquipmentNotFound
}

func (r *fakeEquipmentRepo) FindByPatrimony(_ context.Context, _ pgx.Tx, patrimony string) (*entities.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.items {
		if e.Patrimony == patrimony {
			e := e
			return &e, nil
		}
	}
	return nil, apperrors.ErrEquipmentNotFound
}

func (r *fakeEquipmentRepo) ExistsByPatrimony(_ context.Context, _ pgx.Tx, patrimony string, excludeID uint64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.items {
		if e.Patrimony == patrimony && e.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEquipmentRepo) Create(_ context.Context, _ pgx.Tx, e entities.Equipment) (*entities.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.Patrimony == e.Patrimony {
			return nil, apperrors.ErrPatrimonyTaken
		}
	}
	r.nextID++
	e.ID = r.nextID
	if e.EntryDate.IsZero() {
		e.EntryDate = time.Now()
	}
	r.items = append(r.items, e)
	return &e, nil
}

func (r *fakeEquipmentRepo) Update(_ context.Context, _ pgx.Tx, e entities.Equipment) (*entities.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == e.ID {
			r.items[i] = e
			return &e, nil
		}
	}
	return nil, apperrors.ErrEquipmentNotFound
}

type fakeInterventionRepo struct {
	mu           sync.Mutex
	items        []entities.Intervention
	nextID       uint64
	listAllCalls int
}

func (r *fakeInterventionRepo) List(_ context.Context, _ types.Filter) ([]entities.Intervention, uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entities.Intervention(nil), r.items...), uint64(len(r.items)), nil
}

func (r *fakeInterventionRepo) ListAll(_ context.Context) ([]entities.Intervention, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listAllCalls++
	return append([]entities.Intervention(nil), r.items...), nil
}

func (r *fakeInterventionRepo) ListByPatrimony(_ context.Context, patrimony string) ([]entities.Intervention, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Intervention, 0)
	for _, iv := range r.items {
		if iv.Patrimony == patrimony {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (r *fakeInterventionRepo) ListScheduled(_ context.Context, from time.Time) ([]entities.Intervention, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Intervention, 0)
	for _, iv := range r.items {
		if !iv.StartDate.Before(from) {
			out = append(out, iv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (r *fakeInterventionRepo) FindByID(_ context.Context, id uint64) (*entities.Intervention, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, iv := range r.items {
		if iv.ID == id {
			iv := iv
			return &iv, nil
		}
	}
	return nil, apperrors.ErrInterventionNotFound
}

func (r *fakeInterventionRepo) Create(_ context.Context, _ pgx.Tx, iv entities.Intervention) (*entities.Intervention, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	iv.ID = r.nextID
	iv.CreatedAt = time.Now()
	r.items = append(r.items, iv)
	return &iv, nil
}

type fakeLocationRepo struct {
	mu      sync.Mutex
	items   []entities.Location
	creates int
}

func (r *fakeLocationRepo) List(_ context.Context) ([]entities.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entities.Location(nil), r.items...), nil
}

func (r *fakeLocationRepo) Create(_ context.Context, _ pgx.Tx, name string) (*entities.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	for _, l := range r.items {
		if l.Name == name {
			l := l
			return &l, nil
		}
	}
	l := entities.Location{ID: uint64(len(r.items) + 1), Name: name, CreatedAt: time.Now()}
	r.items = append(r.items, l)
	return &l, nil
}

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(_ context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeCache struct {
	mu   sync.Mutex
	data map[string]string
	sets int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	switch v := value.(type) {
	case []byte:
		c.data[key] = string(v)
	default:
		c.data[key] = fmt.Sprint(v)
	}
	return nil
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return "", repositories.ErrCacheMiss
	}
	return v, nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *fakeCache) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int64
	fmt.Sscan(c.data[key], &n)
	n++
	c.data[key] = fmt.Sprint(n)
	return n, nil
}
