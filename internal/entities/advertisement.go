package entities

import "time"

type Advertisement struct {
	ID        int64
	Title     string
	Images    []string
	Active    bool
	StartDate *time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AdvertisementModify struct {
	ID        *int64
	Title     *string
	Images    *[]string
	Active    *bool
	StartDate *time.Time
	EndDate   *time.Time
}
