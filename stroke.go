package msdftext

// DefaultStrokeMaxSize is the raw stroke size that maps to the widest
// outline the shader can draw.
const DefaultStrokeMaxSize = 10

// Stroke is an outline around glyphs. Size is a raw value in
// [0, MaxSize]; the shader receives it normalized.
type Stroke struct {
	Color   RGBA    `yaml:"color" json:"color"`
	Size    float64 `yaml:"size" json:"size"`
	MaxSize float64 `yaml:"maxSize" json:"maxSize"`
}

// NewStroke returns a stroke of the given color and size with the default
// maximum size.
func NewStroke(c RGBA, size float64) Stroke {
	return Stroke{Color: c, Size: size, MaxSize: DefaultStrokeMaxSize}
}

// DropShadow is a blurred copy of the glyphs drawn behind them.
//
// Offset is raw, in [-RawMaxOffset, RawMaxOffset] per axis; the Stroke
// size controls the shadow smoothing.
type DropShadow struct {
	Offset       Vec2   `yaml:"offset" json:"offset"`
	Stroke       Stroke `yaml:"stroke" json:"stroke"`
	RawMaxOffset Vec2   `yaml:"rawMaxOffset" json:"rawMaxOffset"`
}

// NewDropShadow returns a black, unshifted, sharp drop shadow.
func NewDropShadow() DropShadow {
	return DropShadow{
		Stroke:       NewStroke(Black, 0),
		RawMaxOffset: V2(10, 10),
	}
}
