package entities

import "time"

type Review struct {
	ID        int64
	ProductID int64
	UserID    int64
	UserName  string
	Rating    int32
	Comment   string
	Images    []string
	CreatedAt time.Time
}
