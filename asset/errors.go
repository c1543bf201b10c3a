package asset

import "errors"

var (
	// ErrNoDevice is returned when a texture is requested from a Loader
	// created without a GPU device.
	ErrNoDevice = errors.New("asset: loader has no device")

	// ErrInvalidPath is returned for paths that are not valid fs.FS paths.
	ErrInvalidPath = errors.New("asset: invalid path")

	// ErrEmptyImage is returned when uploading an image with no pixels.
	ErrEmptyImage = errors.New("asset: image is empty")
)
