// Command msdftext lays out text with an MSDF font and reports the lines
// and glyph mesh it produces. It can also print the text shader as GLSL ES
// and the serialized record of the text.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/msdftext"
	"github.com/gogpu/msdftext/asset"
	"github.com/gogpu/msdftext/layout"
	"github.com/gogpu/msdftext/shader"
)

func main() {
	var (
		fontPath   = flag.String("font", "", "font descriptor (.fnt or .json); the atlas must sit next to it")
		text       = flag.String("text", "Hello, MSDF", "text to lay out")
		width      = flag.Float64("width", 500, "layout width, <= 0 disables wrapping")
		size       = flag.Float64("size", 0, "font size, 0 uses the atlas size")
		align      = flag.String("align", "LEFT", "LEFT, CENTER or RIGHT")
		wordWrap   = flag.Bool("wordwrap", true, "break lines at whitespace")
		charWrap   = flag.Bool("charwrap", true, "break lines between characters")
		configPath = flag.String("config", msdftext.ConfigFile, "optional YAML config")
		printGLSL  = flag.Bool("glsl", false, "print the shader as GLSL ES 3.00")
		printRec   = flag.Bool("record", false, "print the text record as YAML")
		verbose    = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		msdftext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *printGLSL {
		for _, entry := range []string{shader.VertexEntryPoint, shader.FragmentEntryPoint} {
			src, err := shader.TranslateGLSL(entry)
			if err != nil {
				log.Fatalf("Failed to translate %s: %v", entry, err)
			}
			fmt.Printf("// %s\n%s\n", entry, src)
		}
		if *fontPath == "" {
			return
		}
	}

	if *fontPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := msdftext.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Explicit flags override the config file.
	var alignErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.MaxWidth = *width
		case "align":
			alignErr = cfg.Align.UnmarshalText([]byte(*align))
		case "wordwrap":
			cfg.WordWrap = *wordWrap
		case "charwrap":
			cfg.CharacterWrap = *charWrap
		}
	})
	if alignErr != nil {
		log.Fatal(alignErr)
	}

	loader := asset.NewLoader(os.DirFS(filepath.Dir(*fontPath)))
	txt := msdftext.NewText(nil, msdftext.WithConfig(cfg))

	// Without a device there is no atlas texture, so the style is applied
	// directly instead of through SetFontPath.
	res, err := loader.LoadFont(context.Background(), filepath.Base(*fontPath))
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	if *size > 0 {
		res.Style.SetFontSize(*size)
	}
	txt.SetFontStyle(res.Style)
	txt.SetText(*text)

	if err := report(txt, res.Style.Scale()); err != nil {
		log.Fatal(err)
	}

	if *printRec {
		data, err := msdftext.MarshalRecordYAML(txt.Record())
		if err != nil {
			log.Fatalf("Failed to encode record: %v", err)
		}
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatal(err)
		}
	}
}

func report(txt *msdftext.Text, scale float64) error {
	style := txt.FontStyle()
	lines := layout.MeasureText(style, txt.Text(), txt.MaxWidth(), txt.WordWrap(), txt.CharacterWrap())

	fmt.Printf("font %q scale %.3f, %d line(s), align %s, width %g\n",
		style.Description().Face, scale, len(lines), txt.Align(), txt.MaxWidth())
	for i, l := range lines {
		fmt.Printf("%3d  %8.2f  %q\n", i, l.Width, string(l.Chars))
	}
	if missing := layout.Unknown(style, txt.Text()); len(missing) > 0 {
		fmt.Printf("missing glyphs: %q\n", string(missing))
	}

	m, err := txt.Mesh()
	if err != nil {
		return fmt.Errorf("build mesh: %w", err)
	}
	fmt.Printf("%d glyph(s), %d vertex bytes, %d texcoord bytes, %d index bytes\n",
		m.GlyphCount(), len(m.VertexBytes()), len(m.TexCoordBytes()), len(m.IndexBytes()))
	return nil
}
