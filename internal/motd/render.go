package motd

import (
	"math/rand/v2"
	"strings"
	"unicode"
)

// Metrics is the measurement of a text run on a Surface.
type Metrics struct {
	Width float64
	// Descent is the distance the run's ink reaches below the baseline,
	// positive downwards.
	Descent float64
}

// Surface is the drawing capability a line is rendered onto.
type Surface interface {
	SetFillColor(hex string)
	SetFont(v Variant)
	MeasureText(text string) Metrics
	FillRect(x, y, w, h float64)
	FillText(text string, x, y float64)
}

// Rand is the random source used for obfuscated text.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Layout constants, in pixels, for a 40px pixel font.
const (
	// Runs whose descent exceeds this are drawn with the fallback font.
	fallbackDescent = -8
	fallbackLift    = 29

	barHeight       = 4
	strikeOffset    = 40
	underlineOffset = 21

	italicNudge         = 6
	italicFallbackNudge = 9
	fallbackNudge       = 2
	italicAdvance       = 5
)

// Printable ASCII range used for obfuscated glyphs.
const (
	obfuscateMin = 33
	obfuscateMax = 126
)

// Renderer draws tokenized MOTD lines onto a Surface.
type Renderer struct {
	tables *CodeTables
	rand   Rand
}

// NewRenderer creates a renderer. A nil rnd uses the process wide source.
func NewRenderer(tables *CodeTables, rnd Rand) *Renderer {
	if tables == nil {
		tables = Default
	}
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Renderer{tables: tables, rand: rnd}
}

// DrawLine draws one tokenized line with its baseline at y, starting at x.
// Style state lives only for the duration of the call.
func (r *Renderer) DrawLine(s Surface, line []Fragment, x, y float64) {
	state := NewStyleState()
	font := VariantNormal
	s.SetFont(font)

	for _, f := range line {
		if hex, ok := r.apply(state, f); ok {
			s.SetFillColor(hex)
		}
		if state.Variant != font {
			font = state.Variant
			s.SetFont(font)
		}

		if f.Text == "" {
			continue
		}

		text := f.Text
		if state.Has(DecorationObfuscated) {
			text = Obfuscate(text, r.rand)
		}

		m := s.MeasureText(text)
		fallback := m.Descent > fallbackDescent

		if state.Has(DecorationStrikethrough) {
			s.FillRect(x, y-strikeOffset, m.Width, barHeight)
		}
		if state.Has(DecorationUnderlined) {
			s.FillRect(x, y-underlineOffset, m.Width, barHeight)
		}

		textX, textY := x, y
		switch {
		case state.Italic() && fallback:
			textX -= italicFallbackNudge
		case state.Italic():
			textX -= italicNudge
		case fallback:
			textX -= fallbackNudge
		}
		if fallback {
			textY -= fallbackLift
		}
		s.FillText(text, textX, textY)

		x += m.Width
		if state.Italic() {
			x += italicAdvance
		}
	}
}

// apply updates state for fragment f and returns the fill color to set,
// if any.
func (r *Renderer) apply(state *StyleState, f Fragment) (string, bool) {
	return r.tables.Apply(state, f)
}

// Obfuscate replaces every non-whitespace character of text with a random
// printable ASCII character. Whitespace is kept in place.
func Obfuscate(text string, rnd Rand) string {
	if rnd == nil {
		rnd = globalRand{}
	}
	var sb strings.Builder
	sb.Grow(len(text))
	for _, c := range text {
		if unicode.IsSpace(c) {
			sb.WriteRune(c)
			continue
		}
		sb.WriteByte(byte(obfuscateMin + rnd.IntN(obfuscateMax-obfuscateMin+1)))
	}
	return sb.String()
}
