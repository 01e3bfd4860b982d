package domain

import "errors"

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrDuplicateBooking = errors.New("booking already exists")
	ErrStorage          = errors.New("storage failure")
)
