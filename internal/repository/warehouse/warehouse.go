package warehouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"storefront/internal/entities"
	"storefront/internal/repository"
	warehouseservice "storefront/internal/service/warehouse"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const warehouseColumns = `id, name, phone, address, city, state, pincode, created_at, updated_at`

type WarehouseDB struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Phone     string    `db:"phone"`
	Address   string    `db:"address"`
	City      string    `db:"city"`
	State     string    `db:"state"`
	Pincode   string    `db:"pincode"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func ToDomain(db WarehouseDB) *entities.Warehouse {
	return &entities.Warehouse{
		ID:        db.ID,
		Name:      db.Name,
		Phone:     db.Phone,
		Address:   db.Address,
		City:      db.City,
		State:     db.State,
		Pincode:   db.Pincode,
		CreatedAt: db.CreatedAt,
		UpdatedAt: db.UpdatedAt,
	}
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, warehouseModify entities.WarehouseModify) (int64, error) {
	query := `
	INSERT INTO warehouses (name, phone, address, city, state, pincode)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		warehouseModify.Name,
		warehouseModify.Phone,
		warehouseModify.Address,
		warehouseModify.City,
		warehouseModify.State,
		warehouseModify.Pincode,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, warehouseservice.ErrConflict
		}
		return 0, fmt.Errorf("unexpected warehouse repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, warehouseModify entities.WarehouseModify) (*entities.Warehouse, error) {
	builder := qb.Update("warehouses")

	if warehouseModify.Name != nil {
		builder = builder.Set("name", warehouseModify.Name)
	}
	if warehouseModify.Phone != nil {
		builder = builder.Set("phone", warehouseModify.Phone)
	}
	if warehouseModify.Address != nil {
		builder = builder.Set("address", warehouseModify.Address)
	}
	if warehouseModify.City != nil {
		builder = builder.Set("city", warehouseModify.City)
	}
	if warehouseModify.State != nil {
		builder = builder.Set("state", warehouseModify.State)
	}
	if warehouseModify.Pincode != nil {
		builder = builder.Set("pincode", warehouseModify.Pincode)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": warehouseModify.ID}).
		Suffix("RETURNING " + warehouseColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected warehouse repository update error: %w", err)
	}

	model, err := r.scanOne(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, warehouseservice.ErrWarehouseNotFound
		}
		return nil, fmt.Errorf("unexpected warehouse repository update error: %w", err)
	}

	return ToDomain(model), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected warehouse repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return warehouseservice.ErrWarehouseNotFound
	}
	return nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses ORDER BY name`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected warehouse repository getall error: %w", err)
	}
	defer rows.Close()

	warehouses := make([]entities.Warehouse, 0, 4)
	for rows.Next() {
		model, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected warehouse repository getall error: %w", err)
		}
		warehouses = append(warehouses, *ToDomain(model))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected warehouse repository getall error: %w", err)
	}

	return warehouses, nil
}

func (r *Repository) scanOne(row pgx.Row) (WarehouseDB, error) {
	var model WarehouseDB
	err := row.Scan(
		&model.ID,
		&model.Name,
		&model.Phone,
		&model.Address,
		&model.City,
		&model.State,
		&model.Pincode,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	return model, err
}
