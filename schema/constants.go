package schema

// Custom string types for type safety.
type (
	// CardStyle represents the visual layout of a rendered panel.
	CardStyle string

	// Theme represents the color palette of a rendered panel.
	Theme string
)

// All card styles supported.
const (
	NeofetchStyle CardStyle = "neofetch"
	TerminalStyle CardStyle = "terminal"
	BothStyles    CardStyle = "both" // default
)

// All themes supported.
const (
	DarkTheme  Theme = "dark"
	LightTheme Theme = "light"
	BothThemes Theme = "both" // default
)

// ValidCardStyles lists all valid card styles.
var ValidCardStyles = map[CardStyle]struct{}{
	NeofetchStyle: {},
	TerminalStyle: {},
	BothStyles:    {},
}

// ValidThemes lists all valid themes.
var ValidThemes = map[Theme]struct{}{
	DarkTheme:  {},
	LightTheme: {},
	BothThemes: {},
}

// Styles returns the concrete styles a flag value expands to.
func (s CardStyle) Styles() []CardStyle {
	if s == BothStyles {
		return []CardStyle{NeofetchStyle, TerminalStyle}
	}
	return []CardStyle{s}
}

// Themes returns the concrete themes a flag value expands to.
func (t Theme) Themes() []Theme {
	if t == BothThemes {
		return []Theme{DarkTheme, LightTheme}
	}
	return []Theme{t}
}
