package motd

// Variant is the font variant of a text run. Variants are mutually
// exclusive: the last one applied wins.
type Variant int

const (
	VariantNormal Variant = iota
	VariantBold
	VariantItalic
)

func (v Variant) String() string {
	switch v {
	case VariantBold:
		return "bold"
	case VariantItalic:
		return "italic"
	default:
		return "normal"
	}
}

// Decoration is a set of cumulative text decorations.
type Decoration uint8

const (
	DecorationUnderlined Decoration = 1 << iota
	DecorationStrikethrough
	DecorationObfuscated
)

// StyleState is the style of one visual line while it is being drawn.
type StyleState struct {
	// Fill is the last color applied on this line, empty until a color
	// code is seen.
	Fill        string
	Variant     Variant
	Decorations Decoration
}

// NewStyleState returns a state with the normal variant and no decorations.
func NewStyleState() *StyleState {
	return &StyleState{}
}

// Reset returns the font variant to normal and clears all decorations.
// The fill color is kept.
func (s *StyleState) Reset() {
	s.Variant = VariantNormal
	s.Decorations = 0
}

// ApplyColor sets the fill color.
func (s *StyleState) ApplyColor(hex string) {
	s.Fill = hex
}

// ApplyFormat applies a format name from the format table. Unknown names,
// including the empty name of an unrecognised code, are ignored.
func (s *StyleState) ApplyFormat(name string) {
	switch name {
	case FormatBold:
		s.Variant = VariantBold
	case FormatItalic:
		s.Variant = VariantItalic
	case FormatUnderlined:
		s.Decorations |= DecorationUnderlined
	case FormatStrikethrough:
		s.Decorations |= DecorationStrikethrough
	case FormatObfuscated:
		s.Decorations |= DecorationObfuscated
	case FormatReset:
		s.Reset()
	}
}

// Has reports whether decoration d is active.
func (s *StyleState) Has(d Decoration) bool {
	return s.Decorations&d != 0
}

// Italic reports whether the italic variant is active.
func (s *StyleState) Italic() bool {
	return s.Variant == VariantItalic
}

// Apply updates state for fragment f and returns the hex color the
// fragment selected, if any. A literal space resets font and decorations
// whatever its code.
func (t *CodeTables) Apply(state *StyleState, f Fragment) (string, bool) {
	var (
		hex string
		ok  bool
	)
	if f.IsColor {
		if hex, ok = t.Hex(f.Code); ok {
			state.ApplyColor(hex)
		}
	} else {
		state.ApplyFormat(f.Code)
	}
	if f.Text == " " {
		state.Reset()
	}
	return hex, ok
}
