package layout

import "fmt"

// Align specifies horizontal line alignment within the layout width.
type Align int

const (
	// AlignLeft starts every line at the origin (default).
	AlignLeft Align = iota
	// AlignCenter centers each line within MaxWidth.
	AlignCenter
	// AlignRight ends each line at origin + MaxWidth.
	AlignRight
	// AlignJustified is reserved. Lines are placed at x = 0.
	AlignJustified
)

var alignNames = [...]string{
	AlignLeft:      "LEFT",
	AlignCenter:    "CENTER",
	AlignRight:     "RIGHT",
	AlignJustified: "JUSTIFIED",
}

// String returns the serialized name of the alignment.
func (a Align) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return "UNKNOWN"
	}
	return alignNames[a]
}

// MarshalText implements encoding.TextMarshaler.
func (a Align) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(alignNames) {
		return nil, fmt.Errorf("layout: invalid alignment %d", int(a))
	}
	return []byte(alignNames[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Align) UnmarshalText(b []byte) error {
	s := string(b)
	for i, name := range alignNames {
		if name == s {
			*a = Align(i)
			return nil
		}
	}
	return fmt.Errorf("layout: unknown alignment %q", s)
}

// LineStart returns the pen x at which a line of the given width begins.
func (a Align) LineStart(originX, maxWidth, lineWidth float64) float64 {
	switch a {
	case AlignLeft:
		return originX
	case AlignCenter:
		return originX + maxWidth/2 - lineWidth/2
	case AlignRight:
		return originX + maxWidth - lineWidth
	default:
		// TODO: justified layout (Knuth-Plass) once inter-word glue is tracked per line.
		return 0
	}
}
