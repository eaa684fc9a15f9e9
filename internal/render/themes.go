package render

import "github.com/octoprofile/octoprofile/schema"

// neofetchPalette holds the colors of the neofetch-style panel.
type neofetchPalette struct {
	bg        string
	text      string
	key       string
	value     string
	add       string
	del       string
	separator string
	green     string
	red       string
}

// terminalPalette holds the colors of the terminal-style panel.
type terminalPalette struct {
	bg         string
	terminalBg string
	border     string
	text       string
	prompt     string
	cursor     string
	green      string
	red        string
	yellow     string
	blue       string
	gray       string
}

// neofetchPalettes maps themes to neofetch panel colors.
var neofetchPalettes = map[schema.Theme]neofetchPalette{
	schema.DarkTheme: {
		bg:        "#0d1117",
		text:      "#c9d1d9",
		key:       "#ffa657",
		value:     "#a5d6ff",
		add:       "#3fb950",
		del:       "#f85149",
		separator: "#c9d1d9",
		green:     "#238636",
		red:       "#da3633",
	},
	schema.LightTheme: {
		bg:        "#f6f8fa",
		text:      "#24292f",
		key:       "#953800",
		value:     "#0a3069",
		add:       "#1a7f37",
		del:       "#cf222e",
		separator: "#24292f",
		green:     "#1a7f37",
		red:       "#cf222e",
	},
}

// terminalPalettes maps themes to terminal panel colors.
var terminalPalettes = map[schema.Theme]terminalPalette{
	schema.DarkTheme: {
		bg:         "#0d1117",
		terminalBg: "#161b22",
		border:     "#30363d",
		text:       "#e6edf3",
		prompt:     "#7c3aed",
		cursor:     "#f0f6fc",
		green:      "#2ea043",
		red:        "#da3633",
		yellow:     "#fb8500",
		blue:       "#2f81f7",
		gray:       "#8b949e",
	},
	schema.LightTheme: {
		bg:         "#ffffff",
		terminalBg: "#f6f8fa",
		border:     "#d0d7de",
		text:       "#24292f",
		prompt:     "#8250df",
		cursor:     "#24292f",
		green:      "#1f883d",
		red:        "#cf222e",
		yellow:     "#d1242f",
		blue:       "#0969da",
		gray:       "#656d76",
	},
}
