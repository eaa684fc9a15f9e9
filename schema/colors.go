package schema

// DefaultLanguageColor is used when neither the API nor the fallback table
// knows a color for a language.
const DefaultLanguageColor = "#858585"

// languageColors is a fallback palette matching GitHub's linguist colors.
// The API response color wins whenever it is present.
var languageColors = map[string]string{
	"Python":           "#3572A5",
	"JavaScript":       "#f1e05a",
	"TypeScript":       "#2b7489",
	"Java":             "#b07219",
	"C":                "#555555",
	"C++":              "#f34b7d",
	"C#":               "#239120",
	"Go":               "#00ADD8",
	"Rust":             "#dea584",
	"Ruby":             "#701516",
	"PHP":              "#4F5D95",
	"Swift":            "#ffac45",
	"Kotlin":           "#F18E33",
	"Scala":            "#c22d40",
	"Shell":            "#89e051",
	"PowerShell":       "#012456",
	"HTML":             "#e34c26",
	"CSS":              "#563d7c",
	"SCSS":             "#c6538c",
	"Vue":              "#2c3e50",
	"Svelte":           "#ff3e00",
	"Dart":             "#00B4AB",
	"R":                "#198CE7",
	"MATLAB":           "#e16737",
	"Jupyter Notebook": "#DA5B0B",
	"Dockerfile":       "#384d54",
	"YAML":             "#cb171e",
	"JSON":             "#292929",
	"XML":              "#0060ac",
	"Markdown":         "#083fa1",
	"TeX":              "#3D6117",
	"Vim script":       "#199f4b",
	"Emacs Lisp":       "#c065db",
	"Lua":              "#000080",
	"Perl":             "#0298c3",
	"Haskell":          "#5e5086",
	"Clojure":          "#db5855",
	"F#":               "#b845fc",
	"OCaml":            "#3be133",
	"Erlang":           "#B83998",
	"Elixir":           "#6e4a7e",
	"Crystal":          "#000100",
	"Nim":              "#ffc200",
	"Zig":              "#ec915c",
	"Assembly":         "#6E4C13",
	"SQL":              "#e38c00",
	"PLpgSQL":          "#336790",
	"Makefile":         "#427819",
	"CMake":            "#DA3434",
	"Batchfile":        "#C1F12E",
	"Objective-C":      "#438eff",
	"D":                "#ba595e",
	"Pascal":           "#E3F171",
	"Fortran":          "#4d41b1",
	"Ada":              "#02f88c",
	"Scheme":           "#1e4aec",
	"Common Lisp":      "#3fb68b",
	"Racket":           "#3c5caa",
	"Groovy":           "#e69f56",
	"Julia":            "#a270ba",
	"Elm":              "#60B5CC",
	"PureScript":       "#1D222D",
	"CoffeeScript":     "#244776",
}

// LanguageColor resolves a display color for a language, preferring the
// API-provided color over the fallback palette.
func LanguageColor(name, apiColor string) string {
	if apiColor != "" {
		return apiColor
	}
	if c, ok := languageColors[name]; ok {
		return c
	}
	return DefaultLanguageColor
}
