package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAmountColumn marks a table without any recognizable amount header.
	ErrNoAmountColumn = errors.New("no amount column found")
	// ErrInvalidConfiguration blocks bill computation when the billing inputs are out of range.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrUnsupportedFormat is returned for uploads whose extension cannot be read.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrSessionNotFound is returned when a billing session id is unknown.
	ErrSessionNotFound = errors.New("session not found")

	// ErrTooManySessions is returned when the session limit is reached.
	ErrTooManySessions = errors.New("too many open sessions")
)

// Rejection reports an upload that was skipped because no amount column could be resolved.
type Rejection struct {
	Source string `json:"source"`
	Reason string `json:"reason"`
}

// NewRejection builds the rejection for a table from source with no amount column.
func NewRejection(source string) Rejection {
	return Rejection{Source: source, Reason: ErrNoAmountColumn.Error()}
}

func (r Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Source, r.Reason)
}

func (r Rejection) Unwrap() error {
	return ErrNoAmountColumn
}
