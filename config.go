package msdftext

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/msdftext/layout"
)

// ConfigFile is the conventional name of the optional configuration file.
const ConfigFile = "msdftext.yaml"

// Config holds the defaults new texts start from.
type Config struct {
	MaxWidth             float64          `yaml:"maxWidth"`
	Gamma                float64          `yaml:"gamma"`
	Color                string           `yaml:"color"`
	WordWrap             bool             `yaml:"wordWrap"`
	CharacterWrap        bool             `yaml:"characterWrap"`
	Align                layout.Align     `yaml:"align"`
	Stroke               StrokeConfig     `yaml:"stroke"`
	DropShadow           DropShadowConfig `yaml:"dropShadow"`
	InitialGlyphCapacity int              `yaml:"initialGlyphCapacity"`
}

// StrokeConfig configures the default outline.
type StrokeConfig struct {
	Enabled bool    `yaml:"enabled"`
	Color   string  `yaml:"color"`
	Size    float64 `yaml:"size"`
	MaxSize float64 `yaml:"maxSize"`
}

// DropShadowConfig configures the default drop shadow.
type DropShadowConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Color     string  `yaml:"color"`
	Size      float64 `yaml:"size"`
	MaxSize   float64 `yaml:"maxSize"`
	Offset    Vec2    `yaml:"offset"`
	MaxOffset Vec2    `yaml:"maxOffset"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		MaxWidth:      500,
		Gamma:         2.0,
		Color:         "#a43820",
		WordWrap:      true,
		CharacterWrap: true,
		Align:         layout.AlignLeft,
		Stroke: StrokeConfig{
			Enabled: true,
			Color:   "#ff0000",
			MaxSize: DefaultStrokeMaxSize,
		},
		DropShadow: DropShadowConfig{
			Enabled:   true,
			Color:     "#000000",
			MaxSize:   DefaultStrokeMaxSize,
			MaxOffset: V2(10, 10),
		},
		InitialGlyphCapacity: 64,
	}
}

// LoadConfig reads a YAML configuration file. A missing file yields
// DefaultConfig; fields absent from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	for _, s := range []string{c.Color, c.Stroke.Color, c.DropShadow.Color} {
		if _, err := ParseHex(s); err != nil {
			return err
		}
	}
	if c.InitialGlyphCapacity < 0 {
		return fmt.Errorf("msdftext: initialGlyphCapacity must not be negative, got %d", c.InitialGlyphCapacity)
	}
	if c.Stroke.MaxSize <= 0 || c.DropShadow.MaxSize <= 0 {
		return errors.New("msdftext: stroke maxSize must be positive")
	}
	return nil
}

// stroke returns the configured outline. Colors were validated.
func (c Config) stroke() Stroke {
	col, _ := ParseHex(c.Stroke.Color)
	return Stroke{Color: col, Size: c.Stroke.Size, MaxSize: c.Stroke.MaxSize}
}

func (c Config) dropShadow() DropShadow {
	col, _ := ParseHex(c.DropShadow.Color)
	return DropShadow{
		Offset:       c.DropShadow.Offset,
		Stroke:       Stroke{Color: col, Size: c.DropShadow.Size, MaxSize: c.DropShadow.MaxSize},
		RawMaxOffset: c.DropShadow.MaxOffset,
	}
}

func (c Config) color() RGBA {
	col, _ := ParseHex(c.Color)
	return col
}
