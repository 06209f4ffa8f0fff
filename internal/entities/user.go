package entities

import "time"

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Role         RoleType
	CreatedAt    time.Time
}

type RoleType string

const (
	RoleUser  RoleType = "user"
	RoleAdmin RoleType = "admin"
)

func (r RoleType) String() string {
	return string(r)
}

type Address struct {
	ID         int64
	UserID     int64
	FullName   string
	Phone      string
	Line       string
	City       string
	State      string
	PostalCode string
}

type UserModify struct {
	ID    *int64
	Name  *string
	Phone *string
}

type OTPCode struct {
	Email     string
	Code      string
	ExpiresAt time.Time
	Verified  bool
}
