package layout

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Metrics supplies scaled per-character advances.
// The boolean is false for characters the font has no glyph for.
type Metrics interface {
	Advance(r rune) (float64, bool)
}

// Line is one laid-out line of text.
type Line struct {
	// Width is the sum of advances, excluding trailing whitespace.
	Width float64

	// Chars are the characters of the line in order, including
	// characters the font has no glyph for.
	Chars []rune
}

// MeasureText breaks text into lines no wider than maxWidth.
//
// Advances come from m and ignore kerning. When a character would push the
// line past maxWidth, wordWrap breaks at the last whitespace of the line and
// carries the rest over; otherwise characterWrap breaks right before the
// character; with neither, the line overflows. '\n' always starts a new
// line. A maxWidth <= 0 disables width based breaking.
//
// Unknown characters stay in Line.Chars and add no width. The input is
// NFC-normalized first so decomposed sequences match precomposed glyphs.
// The empty string yields a single empty line.
func MeasureText(m Metrics, text string, maxWidth float64, wordWrap, characterWrap bool) []Line {
	b := &breaker{m: m}

	for _, r := range norm.NFC.String(text) {
		if r == '\n' {
			b.flush()
			continue
		}
		adv := b.advance(r)

		if maxWidth > 0 && len(b.chars) > 0 && b.width+adv > maxWidth {
			switch i := b.lastSpace(); {
			case wordWrap && unicode.IsSpace(r):
				// The whitespace that overflows ends the line and is consumed.
				b.flush()
				continue
			case wordWrap && i > 0:
				b.breakAt(i)
				if characterWrap && len(b.chars) > 0 && b.width+adv > maxWidth {
					b.flush()
				}
			case characterWrap:
				b.flush()
			}
		}

		b.chars = append(b.chars, r)
		b.advs = append(b.advs, adv)
		b.width += adv
	}
	b.flush()

	return b.lines
}

// Unknown returns the distinct characters of text that m has no glyph
// for, in order of first appearance. Line breaks are not reported.
func Unknown(m Metrics, text string) []rune {
	var out []rune
	seen := make(map[rune]bool)
	for _, r := range norm.NFC.String(text) {
		if r == '\n' || seen[r] {
			continue
		}
		if _, ok := m.Advance(r); !ok {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}

// breaker accumulates the current line.
type breaker struct {
	m     Metrics
	lines []Line
	chars []rune
	advs  []float64
	width float64
}

func (b *breaker) advance(r rune) float64 {
	adv, ok := b.m.Advance(r)
	if !ok {
		return 0
	}
	return adv
}

// lastSpace returns the index of the last whitespace in the line, or -1.
func (b *breaker) lastSpace() int {
	for i := len(b.chars) - 1; i >= 0; i-- {
		if unicode.IsSpace(b.chars[i]) {
			return i
		}
	}
	return -1
}

// breakAt emits chars[:i] as a line, drops the whitespace at i and keeps
// the remainder as the start of the next line.
func (b *breaker) breakAt(i int) {
	b.emit(b.chars[:i], b.advs[:i])

	rest := append([]rune(nil), b.chars[i+1:]...)
	restAdv := append([]float64(nil), b.advs[i+1:]...)
	b.chars, b.advs, b.width = rest, restAdv, 0
	for _, a := range restAdv {
		b.width += a
	}
}

// flush emits the current line, even when empty.
func (b *breaker) flush() {
	b.emit(b.chars, b.advs)
	b.chars, b.advs, b.width = nil, nil, 0
}

func (b *breaker) emit(chars []rune, advs []float64) {
	end := len(chars)
	for end > 0 && unicode.IsSpace(chars[end-1]) {
		end--
	}
	var w float64
	for _, a := range advs[:end] {
		w += a
	}
	b.lines = append(b.lines, Line{
		Width: w,
		Chars: append([]rune(nil), chars...),
	})
}
