package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ac-registry/internal/entities"
)

const locationTable = "locais"

type LocationRepositoryInterface interface {
	List(ctx context.Context) ([]entities.Location, error)
	// Create é idempotente: devolve o local existente quando o nome já está cadastrado.
	Create(ctx context.Context, tx pgx.Tx, name string) (*entities.Location, error)
}

type locationRepository struct {
	storage *pgxpool.Pool
}

func NewLocationRepository(storage *pgxpool.Pool) LocationRepositoryInterface {
	return &locationRepository{storage: storage}
}

func (r *locationRepository) getQuerier(tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	return r.storage
}

func (r *locationRepository) List(ctx context.Context) ([]entities.Location, error) {
	query, args, err := psql.Select("id, nome, created_at").From(locationTable).OrderBy("nome ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao montar listagem de locais: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar locais: %w", err)
	}
	defer rows.Close()

	list := make([]entities.Location, 0)
	for rows.Next() {
		var l entities.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler locais: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func (r *locationRepository) Create(ctx context.Context, tx pgx.Tx, name string) (*entities.Location, error) {
	name = strings.TrimSpace(name)

	// DO UPDATE sem efeito para que RETURNING devolva a linha também no conflito.
	query, args, err := psql.Insert(locationTable).
		Columns("nome").
		Values(name).
		Suffix("ON CONFLICT (nome) DO UPDATE SET nome = EXCLUDED.nome RETURNING id, nome, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao montar inserção de local: %w", err)
	}

	var l entities.Location
	if err := r.getQuerier(tx).QueryRow(ctx, query, args...).Scan(&l.ID, &l.Name, &l.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao criar local %q: %w", name, err)
	}
	return &l, nil
}
