package msdftext

import "errors"

var (
	// ErrUnloaded is returned by loads that complete after Unload.
	ErrUnloaded = errors.New("msdftext: text was unloaded")

	// ErrNoTextureSource is returned by SetTextureSrc when no
	// TextureSource was configured.
	ErrNoTextureSource = errors.New("msdftext: no texture source")

	// ErrNoFontSource is returned by SetFontPath when no FontSource was
	// configured.
	ErrNoFontSource = errors.New("msdftext: no font source")

	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("msdftext: invalid color")

	// ErrNilProvider is returned by NewGraphics for a nil provider.
	ErrNilProvider = errors.New("msdftext: device provider is nil")

	// ErrNoHAL is returned by NewGraphics when the provider does not
	// expose a hal.Device and hal.Queue.
	ErrNoHAL = errors.New("msdftext: provider does not expose HAL device and queue")

	// ErrNoTargetFormat is returned by NewGraphics when neither the caller
	// nor the provider names a render target format.
	ErrNoTargetFormat = errors.New("msdftext: no render target format")
)
