package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"
	"storefront/internal/entities"
)

const (
	bcryptCost = 12
	otpTTL     = 10 * time.Minute
	otpDigits  = 6
)

type Auth struct {
	repository Repository
	tokens     TokenIssuer
	mailer     Mailer
}

func New(repository Repository, tokens TokenIssuer, mailer Mailer) *Auth {
	return &Auth{
		repository: repository,
		tokens:     tokens,
		mailer:     mailer,
	}
}

type Session struct {
	Token string
	User  entities.User
}

func (s *Auth) Signup(ctx context.Context, name, email, password, phone string) (*Session, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !isValidPassword(password) {
		return nil, ErrInvalidPassword
	}
	if phone != "" && !isValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := entities.User{
		Name:         name,
		Email:        normalizeEmail(email),
		PasswordHash: string(hash),
		Phone:        phone,
		Role:         entities.RoleUser,
	}

	id, err := s.repository.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	user.ID = id

	token, err := s.tokens.Issue(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &Session{Token: token, User: user}, nil
}

func (s *Auth) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, ErrMissingRequiredFields
	}

	user, err := s.repository.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrWrongCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrWrongCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &Session{Token: token, User: *user}, nil
}

// SendOTP генерирует шестизначный код сброса пароля и отправляет его
// на почту. Повторный запрос перезаписывает предыдущий код.
func (s *Auth) SendOTP(ctx context.Context, email string) error {
	if !isValidEmail(email) {
		return ErrInvalidEmail
	}
	email = normalizeEmail(email)

	if _, err := s.repository.GetUserByEmail(ctx, email); err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	code, err := generateOTP()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}

	otp := entities.OTPCode{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().UTC().Add(otpTTL),
	}
	if err := s.repository.SaveOTP(ctx, otp); err != nil {
		return fmt.Errorf("save otp: %w", err)
	}

	if err := s.mailer.SendOTP(ctx, email, code); err != nil {
		return fmt.Errorf("send otp: %w", err)
	}
	return nil
}

func (s *Auth) VerifyOTP(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return ErrMissingRequiredFields
	}
	email = normalizeEmail(email)

	otp, err := s.repository.GetOTP(ctx, email)
	if err != nil {
		return fmt.Errorf("get otp: %w", err)
	}
	if time.Now().UTC().After(otp.ExpiresAt) {
		return ErrOTPExpired
	}
	if otp.Code != code {
		return ErrOTPMismatch
	}

	if err := s.repository.MarkOTPVerified(ctx, email); err != nil {
		return fmt.Errorf("mark otp verified: %w", err)
	}
	return nil
}

// ResetPassword меняет пароль только после verify-otp и гасит код,
// чтобы им нельзя было воспользоваться повторно.
func (s *Auth) ResetPassword(ctx context.Context, email, newPassword string) error {
	if email == "" || newPassword == "" {
		return ErrMissingRequiredFields
	}
	if !isValidPassword(newPassword) {
		return ErrInvalidPassword
	}
	email = normalizeEmail(email)

	otp, err := s.repository.GetOTP(ctx, email)
	if err != nil {
		return fmt.Errorf("get otp: %w", err)
	}
	if !otp.Verified {
		return ErrOTPNotVerified
	}
	if time.Now().UTC().After(otp.ExpiresAt) {
		return ErrOTPExpired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repository.UpdatePassword(ctx, email, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if err := s.repository.DeleteOTP(ctx, email); err != nil {
		return fmt.Errorf("delete otp: %w", err)
	}
	return nil
}

// CleanupExpiredOTPs вызывается фоновой задачей.
func (s *Auth) CleanupExpiredOTPs(ctx context.Context) (int64, error) {
	deleted, err := s.repository.DeleteExpiredOTPs(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete expired otps: %w", err)
	}
	return deleted, nil
}

func generateOTP() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < otpDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
