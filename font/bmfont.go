package font

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultSpread is the SDF range assumed when a descriptor does not state one.
// It matches the 4-texel unit hard-wired into the MSDF text shader.
const DefaultSpread = 4.0

// ParseBMFont parses an AngelCode BMFont text descriptor, as written by
// Hiero and msdf-bmfont. Unknown tags are ignored. Numeric fields that fail
// to parse are logged and skipped, matching how generators in the wild emit
// the occasional odd value.
func ParseBMFont(r io.Reader) (*Description, error) {
	d := NewDescription()
	var padding float64

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		tag, kv := splitTag(scanner.Text())
		switch tag {
		case "info":
			d.Face = kv["face"]
			d.Size = numField(kv, "size", tag, lineNo)
			padding = maxPadding(kv["padding"])
		case "common":
			d.LineHeight = numField(kv, "lineHeight", tag, lineNo)
			d.Base = numField(kv, "base", tag, lineNo)
			d.ScaleW = int(numField(kv, "scaleW", tag, lineNo))
			d.ScaleH = int(numField(kv, "scaleH", tag, lineNo))
		case "page":
			id := int(numField(kv, "id", tag, lineNo))
			for len(d.Pages) <= id {
				d.Pages = append(d.Pages, "")
			}
			d.Pages[id] = kv["file"]
		case "char":
			g, err := parseChar(kv)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Tag: tag, Err: err}
			}
			d.AddGlyph(g)
		case "kerning":
			first := rune(numField(kv, "first", tag, lineNo))
			second := rune(numField(kv, "second", tag, lineNo))
			d.SetKerning(first, second, numField(kv, "amount", tag, lineNo))
		case "distanceField":
			d.Spread = numField(kv, "distanceRange", tag, lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("font: read descriptor: %w", err)
	}

	if d.Spread <= 0 {
		d.Spread = padding
	}
	if d.Spread <= 0 {
		d.Spread = DefaultSpread
	}
	if d.LineHeight <= 0 {
		return d, ErrNoCommon
	}
	if len(d.Chars) == 0 {
		return d, ErrNoGlyphs
	}

	slogger().Debug("font: parsed descriptor",
		"face", d.Face, "size", d.Size, "glyphs", len(d.Chars), "kernings", len(d.kernings))
	return d, nil
}

// parseChar reads a char tag. The id is mandatory; other fields default to 0.
func parseChar(kv map[string]string) (Glyph, error) {
	idStr, ok := kv["id"]
	if !ok {
		return Glyph{}, fmt.Errorf("missing id")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return Glyph{}, fmt.Errorf("bad id %q: %w", idStr, err)
	}
	g := Glyph{ID: rune(id)}
	for key, dst := range map[string]*float64{
		"x":        &g.X,
		"y":        &g.Y,
		"width":    &g.Width,
		"height":   &g.Height,
		"xoffset":  &g.XOffset,
		"yoffset":  &g.YOffset,
		"xadvance": &g.XAdvance,
	} {
		v, ok := kv[key]
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			slogger().Warn("font: skipping char field", "id", id, "field", key, "value", v)
			continue
		}
		*dst = f
	}
	if p, ok := kv["page"]; ok {
		g.Page, _ = strconv.Atoi(p)
	}
	return g, nil
}

// numField returns kv[key] as a float, or 0 if absent or malformed.
func numField(kv map[string]string, key, tag string, line int) float64 {
	v, ok := kv[key]
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slogger().Warn("font: failed to parse field", "tag", tag, "line", line, "field", key, "value", v)
		return 0
	}
	return f
}

// maxPadding returns the largest of the comma separated padding values.
func maxPadding(s string) float64 {
	var m float64
	for _, p := range strings.Split(s, ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err == nil && f > m {
			m = f
		}
	}
	return m
}

// splitTag splits a descriptor line into its tag and key=value fields.
// Quoted values may contain spaces; quotes are stripped.
func splitTag(line string) (string, map[string]string) {
	line = strings.TrimSpace(line)
	tag, rest, _ := strings.Cut(line, " ")
	kv := make(map[string]string)

	for rest != "" {
		rest = strings.TrimLeft(rest, " \t")
		key, after, ok := strings.Cut(rest, "=")
		if !ok {
			break
		}
		key = strings.TrimSpace(key)
		if strings.HasPrefix(after, "\"") {
			val, tail, _ := strings.Cut(after[1:], "\"")
			kv[key] = val
			rest = tail
			continue
		}
		val, tail, _ := strings.Cut(after, " ")
		kv[key] = val
		rest = tail
	}
	return tag, kv
}
