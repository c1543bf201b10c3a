package font

import (
	"errors"
	"fmt"
)

// Sentinel errors for font package.
var (
	// ErrNoCommon is returned when a descriptor has no usable line height.
	ErrNoCommon = errors.New("font: descriptor has no common line height")

	// ErrNoGlyphs is returned when a descriptor defines no characters.
	ErrNoGlyphs = errors.New("font: descriptor defines no glyphs")

	// ErrUnknownFormat is returned for descriptor files of an unsupported type.
	ErrUnknownFormat = errors.New("font: unknown descriptor format")
)

// ParseError reports a malformed descriptor line.
type ParseError struct {
	Line int
	Tag  string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("font: line %d (%s): %v", e.Line, e.Tag, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
