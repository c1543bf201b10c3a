package msdftext

import "github.com/gogpu/msdftext/font"

// Option configures a Text during creation.
//
// Example:
//
//	t := msdftext.NewText(g,
//	    msdftext.WithConfig(cfg),
//	    msdftext.WithFontSource(loader),
//	    msdftext.WithText("Hello"))
type Option func(*textOptions)

// textOptions holds optional configuration for Text creation.
type textOptions struct {
	config   Config
	name     string
	text     string
	style    *font.Style
	texture  Texture
	textures TextureSource
	fonts    FontSource
}

// defaultOptions returns the default text options.
func defaultOptions() textOptions {
	return textOptions{config: DefaultConfig()}
}

// WithConfig sets the defaults the text starts from. An invalid config is
// ignored and DefaultConfig is used.
func WithConfig(cfg Config) Option {
	return func(o *textOptions) {
		if cfg.Validate() == nil {
			o.config = cfg
		}
	}
}

// WithName sets the object name.
func WithName(name string) Option {
	return func(o *textOptions) {
		o.name = name
	}
}

// WithText sets the initial string.
func WithText(s string) Option {
	return func(o *textOptions) {
		o.text = s
	}
}

// WithFontStyle sets the initial font style.
func WithFontStyle(s *font.Style) Option {
	return func(o *textOptions) {
		o.style = s
	}
}

// WithTexture sets the initial atlas texture.
func WithTexture(tex Texture) Option {
	return func(o *textOptions) {
		o.texture = tex
	}
}

// WithTextureSource sets where SetTextureSrc resolves paths.
func WithTextureSource(src TextureSource) Option {
	return func(o *textOptions) {
		o.textures = src
	}
}

// WithFontSource sets where SetFontPath loads fonts from.
func WithFontSource(src FontSource) Option {
	return func(o *textOptions) {
		o.fonts = src
	}
}
