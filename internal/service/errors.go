package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrInvalidSortOption rejects a view-state write carrying an unknown
	// sort option.
	ErrInvalidSortOption = errors.New("invalid sort option")

	// ErrInvalidDate rejects a date value not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date value")
)
