package render

import (
	"fmt"

	"github.com/octoprofile/octoprofile/schema"
)

// Card renders the statistics object into one SVG document for the given
// style and theme. The report and profile are read-only inputs.
func Card(style schema.CardStyle, theme schema.Theme, report *schema.Report, profile *schema.UserProfile, topN int) (string, error) {
	switch style {
	case schema.NeofetchStyle:
		return NeofetchCard(report, profile, theme), nil
	case schema.TerminalStyle:
		return TerminalCard(report, profile, theme, topN), nil
	}
	return "", fmt.Errorf("unknown card style %q", style)
}
