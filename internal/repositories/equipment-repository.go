package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"ac-registry/internal/entities"
	apperrors "ac-registry/pkg/errors"
	"ac-registry/pkg/types"
)

const (
	equipmentTable  = "equipamentos"
	equipmentFields = "id, patrimonio, marca, modelo, numero_serie, local_inicial, peso, cor, potencia, capacidade, voltagem, tipo, observacoes, data_entrada, created_at, updated_at"
)

// Colunas pesquisadas pelo parâmetro search da listagem.
var equipmentSearchColumns = []string{"patrimonio", "marca", "modelo", "numero_serie", "local_inicial"}

type EquipmentRepositoryInterface interface {
	List(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	ListAll(ctx context.Context) ([]entities.Equipment, error)
	FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error)
	FindByPatrimony(ctx context.Context, tx pgx.Tx, patrimony string) (*entities.Equipment, error)
	ExistsByPatrimony(ctx context.Context, tx pgx.Tx, patrimony string, excludeID uint64) (bool, error)
	Create(ctx context.Context, tx pgx.Tx, e entities.Equipment) (*entities.Equipment, error)
	Update(ctx context.Context, tx pgx.Tx, e entities.Equipment) (*entities.Equipment, error)
}

type equipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &equipmentRepository{storage: storage, logger: logger}
}

func (r *equipmentRepository) getQuerier(tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	return r.storage
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.Patrimony, &e.Brand, &e.Model, &e.SerialNumber, &e.InitialPlace,
		&e.Weight, &e.Color, &e.Power, &e.Capacity, &e.Voltage, &e.Category, &e.Notes,
		&e.EntryDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("erro ao ler equipamentos: %w", err)
	}
	return &e, nil
}

func (r *equipmentRepository) collect(rows pgx.Rows) ([]entities.Equipment, error) {
	defer rows.Close()

	list := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *e)
	}
	return list, rows.Err()
}

func applyEquipmentFilter(builder sq.SelectBuilder, filter types.Filter) sq.SelectBuilder {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		conditions := sq.Or{}
		for _, col := range equipmentSearchColumns {
			conditions = append(conditions, sq.ILike{col: pattern})
		}
		builder = builder.Where(conditions)
	}
	if filter.Patrimony != "" {
		builder = builder.Where(sq.ILike{"patrimonio": "%" + filter.Patrimony + "%"})
	}
	return builder
}

func (r *equipmentRepository) List(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	countQuery, countArgs, err := applyEquipmentFilter(psql.Select("COUNT(*)").From(equipmentTable), filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao montar contagem de equipamentos: %w", err)
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar equipamentos: %w", err)
	}
	if total == 0 {
		return []entities.Equipment{}, 0, nil
	}

	builder := applyEquipmentFilter(psql.Select(equipmentFields).From(equipmentTable), filter).
		OrderBy("patrimonio ASC")
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit).Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao montar listagem de equipamentos: %w", err)
	}
	r.logger.Debug("Listando equipamentos", zap.String("query", query), zap.Any("args", args))

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar equipamentos: %w", err)
	}
	list, err := r.collect(rows)
	return list, total, err
}

func (r *equipmentRepository) ListAll(ctx context.Context) ([]entities.Equipment, error) {
	query, args, err := psql.Select(equipmentFields).From(equipmentTable).OrderBy("patrimonio ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao montar listagem de equipamentos: %w", err)
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar equipamentos: %w", err)
	}
	return r.collect(rows)
}

func (r *equipmentRepository) findOne(ctx context.Context, q Querier, where sq.Eq) (*entities.Equipment, error) {
	query, args, err := psql.Select(equipmentFields).From(equipmentTable).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao montar busca de equipamento: %w", err)
	}
	return scanEquipment(q.QueryRow(ctx, query, args...))
}

func (r *equipmentRepository) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error) {
	return r.findOne(ctx, r.getQuerier(tx), sq.Eq{"id": id})
}

func (r *equipmentRepository) FindByPatrimony(ctx context.Context, tx pgx.Tx, patrimony string) (*entities.Equipment, error) {
	return r.findOne(ctx, r.getQuerier(tx), sq.Eq{"patrimonio": patrimony})
}

// ExistsByPatrimony ignora o equipamento excludeID (0 = nenhum), usado na edição.
func (r *equipmentRepository) ExistsByPatrimony(ctx context.Context, tx pgx.Tx, patrimony string, excludeID uint64) (bool, error) {
	builder := psql.Select("1").From(equipmentTable).Where(sq.Eq{"patrimonio": patrimony}).Limit(1)
	if excludeID != 0 {
		builder = builder.Where(sq.NotEq{"id": excludeID})
	}
	query, args, err := builder.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao montar verificação de patrimônio: %w", err)
	}

	var exists bool
	if err := r.getQuerier(tx).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("erro ao verificar patrimônio: %w", err)
	}
	return exists, nil
}

func (r *equipmentRepository) Create(ctx context.Context, tx pgx.Tx, e entities.Equipment) (*entities.Equipment, error) {
	entryDate := interface{}(sq.Expr("NOW()"))
	if !e.EntryDate.IsZero() {
		entryDate = e.EntryDate
	}

	query, args, err := psql.Insert(equipmentTable).
		Columns("patrimonio", "marca", "modelo", "numero_serie", "local_inicial", "peso", "cor",
			"potencia", "capacidade", "voltagem", "tipo", "observacoes", "data_entrada", "created_at", "updated_at").
		Values(e.Patrimony, e.Brand, e.Model, e.SerialNumber, e.InitialPlace, e.Weight, e.Color,
			e.Power, e.Capacity, e.Voltage, e.Category, e.Notes, entryDate, sq.Expr("NOW()"), sq.Expr("NOW()")).
		Suffix("RETURNING " + equipmentFields).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao montar inserção de equipamento: %w", err)
	}

	created, err := scanEquipment(r.getQuerier(tx).QueryRow(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrPatrimonyTaken
		}
		return nil, err
	}
	return created, nil
}

func (r *equipmentRepository) Update(ctx context.Context, tx pgx.Tx, e entities.Equipment) (*entities.Equipment, error) {
	builder := psql.Update(equipmentTable).
		Set("patrimonio", e.Patrimony).
		Set("marca", e.Brand).
		Set("modelo", e.Model).
		Set("numero_serie", e.SerialNumber).
		Set("local_inicial", e.InitialPlace).
		Set("peso", e.Weight).
		Set("cor", e.Color).
		Set("potencia", e.Power).
		Set("capacidade", e.Capacity).
		Set("voltagem", e.Voltage).
		Set("tipo", e.Category).
		Set("observacoes", e.Notes).
		Set("updated_at", sq.Expr("NOW()"))
	if !e.EntryDate.IsZero() {
		builder = builder.Set("data_entrada", e.EntryDate)
	}

	query, args, err := builder.Where(sq.Eq{"id": e.ID}).Suffix("RETURNING " + equipmentFields).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao montar atualização de equipamento: %w", err)
	}

	updated, err := scanEquipment(r.getQuerier(tx).QueryRow(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrPatrimonyTakenByOther
		}
		return nil, err
	}
	return updated, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
