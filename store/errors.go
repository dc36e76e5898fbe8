package store

import (
	"errors"
	"fmt"
)

// Sentinel errors for the store package.
var (
	// ErrMalformed indicates the database file is present but could not be
	// parsed, or parsed to a layout with non-empty UnsupportedCauses. This
	// is a hard error: unlike a missing file, a malformed one is data the
	// user cares about.
	ErrMalformed = errors.New("store: malformed database file")
)

func storeErrorf(op string, err error) error {
	return fmt.Errorf("store: %s: %w", op, err)
}
