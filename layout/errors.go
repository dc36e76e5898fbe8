package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for the layout package.
var (
	// ErrBadEdidHeader indicates an EDID block is missing the fixed 8-byte
	// header 00 FF FF FF FF FF FF 00 at bytes 0..8.
	ErrBadEdidHeader = errors.New("layout: invalid EDID header")

	// ErrEdidTooShort indicates an EDID block is shorter than the 16 bytes
	// required to read the header and the identifier.
	ErrEdidTooShort = errors.New("layout: EDID block too short")

	// ErrUnsupportedLayout indicates From classified a layout whose
	// UnsupportedCauses is non-empty where the caller required a supported
	// one (used by the store on deserialization, see store.ErrMalformed).
	ErrUnsupportedLayout = errors.New("layout: unsupported layout")
)

func layoutErrorf(op string, err error) error {
	return fmt.Errorf("layout: %s: %w", op, err)
}
