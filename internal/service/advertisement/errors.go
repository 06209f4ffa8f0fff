package advertisement

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidTitle          = errors.New("invalid title")
	ErrInvalidDateWindow     = errors.New("start date after end date")

	ErrAdvertisementNotFound = errors.New("advertisement not found")
)
