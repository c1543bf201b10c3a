// Package msdftext draws text with multi-channel signed distance field
// (MSDF) font atlases on the GoGPU stack.
//
// # Overview
//
// A [Text] lays out a string with a pre-baked font ([font.Style]),
// builds one textured quad per visible glyph ([mesh.Builder]) and draws
// it with a shader that reconstructs sharp edges from the distance field
// at any scale. The shader also draws an optional outline and drop
// shadow.
//
// # Quick Start
//
//	loader := asset.NewLoader(os.DirFS("assets"), asset.WithDevice(device, queue))
//
//	t := msdftext.NewText(g, msdftext.WithFontSource(loader))
//	if ok, err := t.SetFontPath(ctx, "fonts/open_sans.fnt"); !ok {
//	    log.Fatal(err)
//	}
//	t.SetText("Hello, MSDF")
//	t.SetPosition(msdftext.V2(32, 32))
//
//	// per frame, inside a render pass
//	err := t.Render(delta, msdftext.Frame{Pass: pass, Camera: camera})
//
// # Layout
//
// Lines break at '\n' and, once a line reaches MaxWidth, at the last
// whitespace (word wrap) or right before the overflowing character
// (character wrap). Lines are aligned left, centered or right within
// MaxWidth. Kerning moves glyphs but is not considered when breaking.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// The position is applied by both the mesh and the model matrix, so
// cameras are expected to account for it.
//
// # Logging
//
// Nothing is logged by default. See [SetLogger].
package msdftext
