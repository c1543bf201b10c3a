package asset

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"path"
	"strings"

	"github.com/gogpu/msdftext/font"
)

// FontResult is a parsed font with its atlas.
type FontResult struct {
	// Path is the descriptor path.
	Path  string
	Style *font.Style
	// Image is the first atlas page.
	Image image.Image
	// Texture is the uploaded atlas; nil when the loader has no device.
	Texture Texture
}

// LoadFont reads the descriptor at p (".fnt"/".txt" BMFont or ".json"
// msdf-atlas-gen) and its first atlas page, which is resolved relative
// to the descriptor. Descriptors that name no page use the descriptor
// path with a ".png" extension. The page image is aliased by the font key.
func (l *Loader) LoadFont(ctx context.Context, p string) (*FontResult, error) {
	data, err := l.LoadFile(ctx, p, "")
	if err != nil {
		return nil, err
	}
	desc, err := font.Parse(p, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("asset: parse font %s: %w", p, err)
	}
	page := atlasPath(p, desc)
	img, err := l.LoadImage(ctx, page, desc.Key())
	if err != nil {
		return nil, fmt.Errorf("asset: load atlas of %s: %w", p, err)
	}

	res := &FontResult{
		Path:  p,
		Style: font.NewStyle(desc, desc.Size),
		Image: img,
	}
	if l.device != nil {
		tex, err := l.TextureFromPath(ctx, page)
		if err != nil {
			return nil, err
		}
		res.Texture = tex
	}
	return res, nil
}

func atlasPath(p string, desc *font.Description) string {
	p = path.Clean("/" + p)
	if len(desc.Pages) == 0 {
		return strings.TrimSuffix(p, path.Ext(p)) + ".png"
	}
	return path.Join(path.Dir(p), desc.Pages[0])
}
