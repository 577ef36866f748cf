package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// NamedIcon is one of the symbolic icons the interface draws itself.
type NamedIcon string

// Symbolic icons. IconCircle is the fallback for unknown names.
const (
	IconHeart   NamedIcon = "heart"
	IconMoon    NamedIcon = "moon"
	IconBaby    NamedIcon = "baby"
	IconDroplet NamedIcon = "droplet"
	IconCircle  NamedIcon = "circle"
)

// Icon is either a literal glyph (usually an emoji) or a named icon. It is
// resolved once, when the owning type is created.
type Icon struct {
	Glyph string
	Named NamedIcon
}

// GlyphIcon returns an icon rendered as the literal glyph g.
func GlyphIcon(g string) Icon {
	return Icon{Glyph: g}
}

// ParseIcon resolves s: anything containing a non-ASCII rune is a glyph, a
// known symbolic name is a named icon and everything else becomes the circle.
func ParseIcon(s string) Icon {
	s = strings.TrimSpace(s)
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return Icon{Glyph: s}
		}
	}

	switch n := NamedIcon(strings.ToLower(s)); n {
	case IconHeart, IconMoon, IconBaby, IconDroplet:
		return Icon{Named: n}
	}
	return Icon{Named: IconCircle}
}

// IsGlyph reports whether the icon is a literal glyph.
func (i Icon) IsGlyph() bool {
	return i.Glyph != ""
}

// String returns the glyph or the symbolic name.
func (i Icon) String() string {
	if i.IsGlyph() {
		return i.Glyph
	}
	if i.Named == "" {
		return string(IconCircle)
	}
	return string(i.Named)
}

// MarshalText implements encoding.TextMarshaler.
func (i Icon) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Icon) UnmarshalText(text []byte) error {
	if !utf8.Valid(text) {
		return fmt.Errorf("%w: icon is not valid UTF-8", ErrInvalidFormat)
	}
	*i = ParseIcon(string(text))
	return nil
}
