// Package apperr holds the error kinds shared by every layer of the trade core.
//
// Repositories declare their own sentinels wrapping one of these kinds; the
// HTTP layer only ever inspects kinds via errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrNotFound              = errors.New("not found")
	ErrConflict              = errors.New("conflict")
	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrStorage               = errors.New("storage failure")
)

var kinds = []error{
	ErrInvalidArgument,
	ErrNotFound,
	ErrConflict,
	ErrInsufficientInventory,
	ErrStorage,
}

// Invalid builds an ErrInvalidArgument with a human readable reason.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Kind returns the error kind carried by err, or nil if it carries none.
func Kind(err error) error {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}

	return nil
}

// Storage tags err as ErrStorage unless it already carries a kind.
func Storage(err error) error {
	if err == nil {
		return nil
	}

	if Kind(err) != nil {
		return err
	}

	return fmt.Errorf("%w: %w", ErrStorage, err)
}
