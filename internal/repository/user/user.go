package user

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"storefront/internal/entities"
	"storefront/internal/repository"
	authservice "storefront/internal/service/auth"
	userservice "storefront/internal/service/user"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = `id, name, email, password_hash, COALESCE(phone, ''), role, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateUser(ctx context.Context, user entities.User) (int64, error) {
	query := `
	INSERT INTO users (name, email, password_hash, phone, role)
	VALUES ($1, $2, $3, NULLIF($4, ''), $5)
	RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.Role.String(),
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, authservice.ErrEmailTaken
		}
		return 0, fmt.Errorf("unexpected user repository createuser error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	userModel, err := r.scanUser(r.querier.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, authservice.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getuserbyemail error: %w", err)
	}

	return ToDomain(userModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	userModel, err := r.scanUser(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, userservice.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyid error: %w", err)
	}

	return ToDomain(userModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0, 8)
	for rows.Next() {
		userModel, err := r.scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
		}
		users = append(users, *ToDomain(userModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
	}

	return users, nil
}

func (r *Repository) Update(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	builder := qb.Update("users")

	if userModify.Name != nil {
		builder = builder.Set("name", userModify.Name)
	}
	if userModify.Phone != nil {
		builder = builder.Set("phone", sq.Expr("NULLIF(?, '')", *userModify.Phone))
	}

	builder = builder.
		Where(sq.Eq{"id": userModify.ID}).
		Suffix("RETURNING " + userColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	userModel, err := r.scanUser(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, userservice.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	return ToDomain(userModel), nil
}

func (r *Repository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1 WHERE email = $2`

	tag, err := r.querier.Exec(ctx, query, passwordHash, email)
	if err != nil {
		return fmt.Errorf("unexpected user repository updatepassword error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return authservice.ErrUserNotFound
	}
	return nil
}

func (r *Repository) GetAddresses(ctx context.Context, userID int64) ([]entities.Address, error) {
	query := `
	SELECT id, user_id, full_name, phone, line, city, state, postal_code
	FROM addresses
	WHERE user_id = $1
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository getaddresses error: %w", err)
	}
	defer rows.Close()

	addresses := make([]entities.Address, 0, 2)
	for rows.Next() {
		var model AddressDB
		err := rows.Scan(
			&model.ID,
			&model.UserID,
			&model.FullName,
			&model.Phone,
			&model.Line,
			&model.City,
			&model.State,
			&model.PostalCode,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository getaddresses error: %w", err)
		}
		addresses = append(addresses, AddressToDomain(model))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user repository getaddresses error: %w", err)
	}

	return addresses, nil
}

func (r *Repository) AddAddress(ctx context.Context, address entities.Address) (int64, error) {
	query := `
	INSERT INTO addresses (user_id, full_name, phone, line, city, state, postal_code)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		address.UserID,
		address.FullName,
		address.Phone,
		address.Line,
		address.City,
		address.State,
		address.PostalCode,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected user repository addaddress error: %w", err)
	}

	return id, nil
}

func (r *Repository) DeleteAddress(ctx context.Context, userID, addressID int64) error {
	query := `DELETE FROM addresses WHERE id = $1 AND user_id = $2`

	tag, err := r.querier.Exec(ctx, query, addressID, userID)
	if err != nil {
		return fmt.Errorf("unexpected user repository deleteaddress error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return userservice.ErrAddressNotFound
	}
	return nil
}

// SaveOTP перезаписывает предыдущий код для адреса, активен только последний.
func (r *Repository) SaveOTP(ctx context.Context, otp entities.OTPCode) error {
	query := `
	INSERT INTO otp_codes (email, code, expires_at, verified)
	VALUES ($1, $2, $3, false)
	ON CONFLICT (email)
	DO UPDATE SET code = EXCLUDED.code, expires_at = EXCLUDED.expires_at, verified = false`

	_, err := r.querier.Exec(ctx, query, otp.Email, otp.Code, otp.ExpiresAt)
	if err != nil {
		return fmt.Errorf("unexpected user repository saveotp error: %w", err)
	}
	return nil
}

func (r *Repository) GetOTP(ctx context.Context, email string) (*entities.OTPCode, error) {
	query := `SELECT email, code, expires_at, verified FROM otp_codes WHERE email = $1`

	var model OTPCodeDB
	err := r.querier.QueryRow(ctx, query, email).Scan(
		&model.Email,
		&model.Code,
		&model.ExpiresAt,
		&model.Verified,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, authservice.ErrOTPNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getotp error: %w", err)
	}

	return OTPToDomain(model), nil
}

func (r *Repository) MarkOTPVerified(ctx context.Context, email string) error {
	query := `UPDATE otp_codes SET verified = true WHERE email = $1`

	tag, err := r.querier.Exec(ctx, query, email)
	if err != nil {
		return fmt.Errorf("unexpected user repository markotpverified error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return authservice.ErrOTPNotFound
	}
	return nil
}

func (r *Repository) DeleteOTP(ctx context.Context, email string) error {
	_, err := r.querier.Exec(ctx, `DELETE FROM otp_codes WHERE email = $1`, email)
	if err != nil {
		return fmt.Errorf("unexpected user repository deleteotp error: %w", err)
	}
	return nil
}

func (r *Repository) DeleteExpiredOTPs(ctx context.Context) (int64, error) {
	tag, err := r.querier.Exec(ctx, `DELETE FROM otp_codes WHERE expires_at < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("unexpected user repository deleteexpiredotps error: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) scanUser(row pgx.Row) (UserDB, error) {
	var model UserDB
	err := row.Scan(
		&model.ID,
		&model.Name,
		&model.Email,
		&model.PasswordHash,
		&model.Phone,
		&model.Role,
		&model.CreatedAt,
	)
	return model, err
}
