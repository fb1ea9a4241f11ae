package util

import "errors"

var (
	ErrInvalidDay         = errors.New("day out of range [1, 21]")
	ErrStorageUnavailable = errors.New("progress storage unavailable")
	ErrDayNotFound        = errors.New("curriculum day not found")
	ErrNoUpload           = errors.New("no solution uploaded for this day")
	ErrInvalidSolution    = errors.New("solution must be a Python source file")
)
