package advertisement

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"storefront/internal/entities"
	advertisementservice "storefront/internal/service/advertisement"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const adColumns = `id, title, images, active, start_date, end_date, created_at, updated_at`

type AdvertisementDB struct {
	ID        int64      `db:"id"`
	Title     string     `db:"title"`
	Images    []string   `db:"images"`
	Active    bool       `db:"active"`
	StartDate *time.Time `db:"start_date"`
	EndDate   *time.Time `db:"end_date"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

func ToDomain(db AdvertisementDB) *entities.Advertisement {
	return &entities.Advertisement{
		ID:        db.ID,
		Title:     db.Title,
		Images:    db.Images,
		Active:    db.Active,
		StartDate: db.StartDate,
		EndDate:   db.EndDate,
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

func (r *Repository) Create(ctx context.Context, adModify entities.AdvertisementModify) (int64, error) {
	query := `
	INSERT INTO advertisements (title, images, active, start_date, end_date)
	VALUES ($1, COALESCE($2, '{}'), COALESCE($3, true), $4, $5)
	RETURNING id`

	var images []string
	if adModify.Images != nil {
		images = *adModify.Images
	}

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		adModify.Title,
		images,
		adModify.Active,
		adModify.StartDate,
		adModify.EndDate,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected advertisement repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, adModify entities.AdvertisementModify) (*entities.Advertisement, error) {
	builder := qb.Update("advertisements")

	if adModify.Title != nil {
		builder = builder.Set("title", adModify.Title)
	}
	if adModify.Images != nil {
		builder = builder.Set("images", *adModify.Images)
	}
	if adModify.Active != nil {
		builder = builder.Set("active", adModify.Active)
	}
	if adModify.StartDate != nil {
		builder = builder.Set("start_date", adModify.StartDate)
	}
	if adModify.EndDate != nil {
		builder = builder.Set("end_date", adModify.EndDate)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": adModify.ID}).
		Suffix("RETURNING " + adColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected advertisement repository update error: %w", err)
	}

	model, err := r.scanOne(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, advertisementservice.ErrAdvertisementNotFound
		}
		return nil, fmt.Errorf("unexpected advertisement repository update error: %w", err)
	}

	return ToDomain(model), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM advertisements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected advertisement repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return advertisementservice.ErrAdvertisementNotFound
	}
	return nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Advertisement, error) {
	query := `SELECT ` + adColumns + ` FROM advertisements ORDER BY created_at DESC`
	return r.getList(ctx, query)
}

// GetActive отдает баннеры для витрины: активные и попадающие в окно показа.
// Открытые границы окна трактуются как без ограничения.
func (r *Repository) GetActive(ctx context.Context, now time.Time) ([]entities.Advertisement, error) {
	query := `
	SELECT ` + adColumns + `
	FROM advertisements
	WHERE active = true
	  AND (start_date IS NULL OR start_date <= $1)
	  AND (end_date IS NULL OR end_date >= $1)
	ORDER BY created_at DESC`
	return r.getList(ctx, query, now)
}

func (r *Repository) getList(ctx context.Context, query string, args ...interface{}) ([]entities.Advertisement, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected advertisement repository getlist error: %w", err)
	}
	defer rows.Close()

	ads := make([]entities.Advertisement, 0, 4)
	for rows.Next() {
		model, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected advertisement repository getlist error: %w", err)
		}
		ads = append(ads, *ToDomain(model))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected advertisement repository getlist error: %w", err)
	}

	return ads, nil
}

func (r *Repository) scanOne(row pgx.Row) (AdvertisementDB, error) {
	var model AdvertisementDB
	err := row.Scan(
		&model.ID,
		&model.Title,
		&model.Images,
		&model.Active,
		&model.StartDate,
		&model.EndDate,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	return model, err
}
