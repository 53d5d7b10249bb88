package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"ac-registry/internal/entities"
	"ac-registry/pkg/constants"
	apperrors "ac-registry/pkg/errors"
	"ac-registry/pkg/types"
)

const (
	interventionTable  = "intervencoes"
	interventionFields = "id, patrimonio, tipo, descricao, data_inicio, data_termino, local_origem, local_destino, custo, responsavel, observacoes, created_at"
)

type InterventionRepositoryInterface interface {
	List(ctx context.Context, filter types.Filter) ([]entities.Intervention, uint64, error)
	ListAll(ctx context.Context) ([]entities.Intervention, error)
	ListByPatrimony(ctx context.Context, patrimony string) ([]entities.Intervention, error)
	ListScheduled(ctx context.Context, from time.Time) ([]entities.Intervention, error)
	FindByID(ctx context.Context, id uint64) (*entities.Intervention, error)
	Create(ctx context.Context, tx pgx.Tx, iv entities.Intervention) (*entities.Intervention, error)
}

type interventionRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewInterventionRepository(storage *pgxpool.Pool, logger *zap.Logger) InterventionRepositoryInterface {
	return &interventionRepository{storage: storage, logger: logger}
}

func (r *interventionRepository) getQuerier(tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	return r.storage
}

func scanIntervention(row pgx.Row) (*entities.Intervention, error) {
	var (
		iv   entities.Intervention
		kind string
	)
	err := row.Scan(
		&iv.ID, &iv.Patrimony, &kind, &iv.Description, &iv.StartDate, &iv.EndDate,
		&iv.Origin, &iv.Destination, &iv.Cost, &iv.Responsible, &iv.Notes, &iv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInterventionNotFound
		}
		return nil, fmt.Errorf("erro ao ler intervenções: %w", err)
	}
	iv.Type = constants.InterventionType(kind)
	return &iv, nil
}

func (r *interventionRepository) query(ctx context.Context, builder sq.SelectBuilder) ([]entities.Intervention, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao montar consulta de intervenções: %w", err)
	}
	r.logger.Debug("Consultando intervenções", zap.String("query", query), zap.Any("args", args))

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar intervenções: %w", err)
	}
	defer rows.Close()

	list := make([]entities.Intervention, 0)
	for rows.Next() {
		iv, err := scanIntervention(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *iv)
	}
	return list, rows.Err()
}

func applyInterventionFilter(builder sq.SelectBuilder, filter types.Filter) sq.SelectBuilder {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"patrimonio": pattern},
			sq.ILike{"descricao": pattern},
			sq.ILike{"responsavel": pattern},
		})
	}
	if filter.Patrimony != "" {
		builder = builder.Where(sq.ILike{"patrimonio": "%" + filter.Patrimony + "%"})
	}
	if len(filter.Types) > 0 {
		builder = builder.Where(sq.Eq{"tipo": filter.Types})
	}
	if filter.DateFrom != nil {
		builder = builder.Where(sq.GtOrEq{"data_inicio": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		builder = builder.Where(sq.LtOrEq{"data_inicio": *filter.DateTo})
	}
	return builder
}

func (r *interventionRepository) List(ctx context.Context, filter types.Filter) ([]entities.Intervention, uint64, error) {
	countQuery, countArgs, err := applyInterventionFilter(psql.Select("COUNT(*)").From(interventionTable), filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao montar contagem de intervenções: %w", err)
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar intervenções: %w", err)
	}
	if total == 0 {
		return []entities.Intervention{}, 0, nil
	}

	builder := applyInterventionFilter(psql.Select(interventionFields).From(interventionTable), filter).
		OrderBy("data_inicio DESC", "id DESC")
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit).Offset(filter.Offset)
	}

	list, err := r.query(ctx, builder)
	return list, total, err
}

func (r *interventionRepository) ListAll(ctx context.Context) ([]entities.Intervention, error) {
	return r.query(ctx, psql.Select(interventionFields).From(interventionTable).OrderBy("data_inicio DESC", "id DESC"))
}

// ListByPatrimony - histórico do equipamento, mais recente primeiro.
func (r *interventionRepository) ListByPatrimony(ctx context.Context, patrimony string) ([]entities.Intervention, error) {
	return r.query(ctx, psql.Select(interventionFields).
		From(interventionTable).
		Where(sq.Eq{"patrimonio": patrimony}).
		OrderBy("data_inicio DESC", "id DESC"))
}

// ListScheduled - intervenções com início a partir de from, em ordem cronológica.
func (r *interventionRepository) ListScheduled(ctx context.Context, from time.Time) ([]entities.Intervention, error) {
	return r.query(ctx, psql.Select(interventionFields).
		From(interventionTable).
		Where(sq.GtOrEq{"data_inicio": from}).
		OrderBy("data_inicio ASC", "id ASC"))
}

func (r *interventionRepository) FindByID(ctx context.Context, id uint64) (*entities.Intervention, error) {
	query, args, err := psql.Select(interventionFields).From(interventionTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao montar busca de intervenção: %w", err)
	}
	return scanIntervention(r.storage.QueryRow(ctx, query, args...))
}

func (r *interventionRepository) Create(ctx context.Context, tx pgx.Tx, iv entities.Intervention) (*entities.Intervention, error) {
	query, args, err := psql.Insert(interventionTable).
		Columns("patrimonio", "tipo", "descricao", "data_inicio", "data_termino", "local_origem",
			"local_destino", "custo", "responsavel", "observacoes", "created_at").
		Values(iv.Patrimony, string(iv.Type), iv.Description, iv.StartDate, iv.EndDate, iv.Origin,
			iv.Destination, iv.Cost, iv.Responsible, iv.Notes, sq.Expr("NOW()")).
		Suffix("RETURNING " + interventionFields).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao montar inserção de intervenção: %w", err)
	}
	return scanIntervention(r.getQuerier(tx).QueryRow(ctx, query, args...))
}
