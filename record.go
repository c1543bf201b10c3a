package msdftext

import (
	"context"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/msdftext/font"
	"github.com/gogpu/msdftext/layout"
)

// Record is the serialized state of a Text. The atlas is stored by path
// and resolved again on restore.
type Record struct {
	Name              string            `yaml:"name,omitempty" json:"name,omitempty"`
	Position          Vec2              `yaml:"position" json:"position"`
	FontStyle         *font.StyleRecord `yaml:"fontStyle,omitempty" json:"fontStyle,omitempty"`
	FontPath          string            `yaml:"fontPath,omitempty" json:"fontPath,omitempty"`
	Text              string            `yaml:"text" json:"text"`
	WordWrap          bool              `yaml:"wordWrap" json:"wordWrap"`
	CharacterWrap     bool              `yaml:"characterWrap" json:"characterWrap"`
	AlignType         layout.Align      `yaml:"alignType" json:"alignType"`
	MaxWidth          float64           `yaml:"maxWidth" json:"maxWidth"`
	Color             RGBA              `yaml:"color" json:"color"`
	Gamma             float64           `yaml:"gamma" json:"gamma"`
	StrokeEnabled     bool              `yaml:"strokeEnabled" json:"strokeEnabled"`
	Stroke            Stroke            `yaml:"stroke" json:"stroke"`
	DropShadowEnabled bool              `yaml:"dropShadowEnabled" json:"dropShadowEnabled"`
	DropShadow        DropShadow        `yaml:"dropShadow" json:"dropShadow"`
	Debug             bool              `yaml:"debug" json:"debug"`
	TextureSrc        string            `yaml:"textureSrc,omitempty" json:"textureSrc,omitempty"`
}

// Record returns the serialized state of t.
func (t *Text) Record() Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec := Record{
		Name:              t.Name(),
		Position:          t.Position(),
		FontPath:          t.fontPath,
		Text:              t.text,
		WordWrap:          t.wordWrap,
		CharacterWrap:     t.characterWrap,
		AlignType:         t.align,
		MaxWidth:          t.maxWidth,
		Color:             t.color,
		Gamma:             t.gamma,
		StrokeEnabled:     t.strokeEnabled,
		Stroke:            t.stroke,
		DropShadowEnabled: t.dropShadowEnabled,
		DropShadow:        t.dropShadow,
		Debug:             t.debug,
		TextureSrc:        t.textureSrc,
	}
	if t.style != nil {
		sr := t.style.Record()
		rec.FontStyle = &sr
	}
	return rec
}

// Restore creates a Text from rec. All fields are applied first; the atlas
// is then loaded from rec.TextureSrc through the TextureSource given in
// opts. The returned text is usable even when that load fails, in which
// case the error is returned alongside it.
func Restore(ctx context.Context, g Graphics, rec Record, opts ...Option) (*Text, error) {
	t := NewText(g, opts...)

	t.SetName(rec.Name)
	t.SetPosition(rec.Position)

	t.mu.Lock()
	if rec.FontStyle != nil {
		t.style = font.RestoreStyle(*rec.FontStyle)
		t.reported = nil
	}
	t.fontPath = rec.FontPath
	t.text = rec.Text
	t.wordWrap = rec.WordWrap
	t.characterWrap = rec.CharacterWrap
	t.align = rec.AlignType
	t.maxWidth = rec.MaxWidth
	t.color = rec.Color
	t.gamma = rec.Gamma
	t.strokeEnabled = rec.StrokeEnabled
	t.stroke = rec.Stroke
	t.dropShadowEnabled = rec.DropShadowEnabled
	t.dropShadow = rec.DropShadow
	t.debug = rec.Debug
	t.mu.Unlock()

	if rec.TextureSrc == "" {
		return t, nil
	}
	return t, t.SetTextureSrc(ctx, rec.TextureSrc)
}

// MarshalRecordYAML encodes rec as YAML.
func MarshalRecordYAML(rec Record) ([]byte, error) {
	return yaml.Marshal(rec)
}

// UnmarshalRecordYAML decodes a YAML record.
func UnmarshalRecordYAML(data []byte) (Record, error) {
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}
