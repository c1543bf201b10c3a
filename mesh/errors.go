package mesh

import (
	"errors"
	"fmt"
)

// ErrNotRenderable is matched by every NotRenderableError.
var ErrNotRenderable = errors.New("mesh: not renderable")

// Reason says why a mesh could not be built.
type Reason int

// Not-renderable reasons.
const (
	ReasonNoFontStyle Reason = iota + 1
	ReasonNoDescription
	ReasonInvalidScale
	ReasonInvalidLineHeight
	ReasonTooManyGlyphs
)

func (r Reason) String() string {
	switch r {
	case ReasonNoFontStyle:
		return "no font style"
	case ReasonNoDescription:
		return "no font description"
	case ReasonInvalidScale:
		return "invalid scale"
	case ReasonInvalidLineHeight:
		return "invalid line height"
	case ReasonTooManyGlyphs:
		return "too many glyphs"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// NotRenderableError reports a state in which there is nothing to draw.
// It is not a failure of the caller; the text is skipped for the frame.
type NotRenderableError struct {
	Reason Reason
}

func (e *NotRenderableError) Error() string {
	return "mesh: not renderable: " + e.Reason.String()
}

// Is makes errors.Is(err, ErrNotRenderable) hold.
func (e *NotRenderableError) Is(target error) bool {
	return target == ErrNotRenderable
}

func notRenderable(r Reason) error {
	return &NotRenderableError{Reason: r}
}
