package user

import "time"

type UserDB struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Phone        string    `db:"phone"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type AddressDB struct {
	ID         int64  `db:"id"`
	UserID     int64  `db:"user_id"`
	FullName   string `db:"full_name"`
	Phone      string `db:"phone"`
	Line       string `db:"line"`
	City       string `db:"city"`
	State      string `db:"state"`
	PostalCode string `db:"postal_code"`
}

type OTPCodeDB struct {
	Email     string    `db:"email"`
	Code      string    `db:"code"`
	ExpiresAt time.Time `db:"expires_at"`
	Verified  bool      `db:"verified"`
}
