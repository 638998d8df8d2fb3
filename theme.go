package cvf

import (
	"sort"
	"strings"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B int
}

// Hex renders the color as uppercase RRGGBB without a leading '#'.
func (c RGB) Hex() string {
	const digits = "0123456789ABCDEF"
	b := [6]byte{
		digits[(c.R>>4)&0xf], digits[c.R&0xf],
		digits[(c.G>>4)&0xf], digits[c.G&0xf],
		digits[(c.B>>4)&0xf], digits[c.B&0xf],
	}
	return string(b[:])
}

// PDFFontPref names the fontconfig patterns used to locate a Unicode
// face for the page renderer, plus the core font family used when
// discovery fails.
type PDFFontPref struct {
	Regular string
	Bold    string
	Italic  string
	Core    string
}

// Theme is a named bundle of visual attributes shared by all
// renderers. Values are immutable; adding a theme is a data change.
type Theme struct {
	name        string
	description string

	Primary   RGB
	Secondary RGB
	Accent    RGB

	// FontFamily is the word-processor font family.
	FontFamily string
	// PDFFont is the page renderer's font preference.
	PDFFont PDFFontPref
}

// Name returns the style name the theme was registered under.
func (t Theme) Name() string { return t.name }

// Description returns a one-line summary for style listings.
func (t Theme) Description() string { return t.description }

// Built-in style names.
const (
	StyleProfessional = "professional"
	StyleModern       = "modern"
	StyleElegant      = "elegant"
	StyleMinimal      = "minimal"
)

// DefaultStyle is the fallback style for unknown names.
const DefaultStyle = StyleProfessional

var liberationSans = PDFFontPref{
	Regular: "Liberation Sans:style=Regular",
	Bold:    "Liberation Sans:style=Bold",
	Italic:  "Liberation Sans:style=Italic",
	Core:    "Helvetica",
}

var liberationSerif = PDFFontPref{
	Regular: "Liberation Serif:style=Regular",
	Bold:    "Liberation Serif:style=Bold",
	Italic:  "Liberation Serif:style=Italic",
	Core:    "Times",
}

var builtinThemes = map[string]Theme{
	StyleProfessional: {
		name:        StyleProfessional,
		description: "Clean and traditional - ideal for corporate roles",
		Primary:     RGB{0x2c, 0x3e, 0x50},
		Secondary:   RGB{0x7f, 0x8c, 0x8d},
		Accent:      RGB{0x34, 0x98, 0xdb},
		FontFamily:  "Calibri",
		PDFFont:     liberationSans,
	},
	StyleModern: {
		name:        StyleModern,
		description: "Bold colors and contemporary layout - for creative industries",
		Primary:     RGB{0x1a, 0x1a, 0x2e},
		Secondary:   RGB{0x4a, 0x4a, 0x4a},
		Accent:      RGB{0xe9, 0x45, 0x60},
		FontFamily:  "Arial",
		PDFFont:     liberationSans,
	},
	StyleElegant: {
		name:        StyleElegant,
		description: "Refined typography with subtle accents - for executive positions",
		Primary:     RGB{0x2d, 0x34, 0x36},
		Secondary:   RGB{0x63, 0x6e, 0x72},
		Accent:      RGB{0x6c, 0x5c, 0xe7},
		FontFamily:  "Times New Roman",
		PDFFont:     liberationSerif,
	},
	StyleMinimal: {
		name:        StyleMinimal,
		description: "Simple black and white - maximum readability",
		Primary:     RGB{0x00, 0x00, 0x00},
		Secondary:   RGB{0x55, 0x55, 0x55},
		Accent:      RGB{0x00, 0x00, 0x00},
		FontFamily:  "Calibri",
		PDFFont:     liberationSans,
	},
}

// AvailableStyles returns the built-in style names, sorted.
func AvailableStyles() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by style name.
func ThemeByName(name string) (Theme, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// ThemeOrDefault resolves a style name, falling back to the
// professional preset for unknown or empty names. It never fails.
func ThemeOrDefault(name string) Theme {
	if theme, ok := ThemeByName(name); ok {
		return theme
	}
	return builtinThemes[DefaultStyle]
}
