package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/octoprofile/octoprofile/schema"
)

// Layout constants of the neofetch panel.
const (
	panelColumns = 68 // fixed column budget of every text line
	svgWidth     = 1000
	lineHeight   = 22
	asciiHeight  = 460
	topMargin    = 35
	barWidth     = 500
	maxBarLangs  = 6
)

// contentLine is one row of the panel. A "GAP" key adds vertical spacing and
// a key starting with an em dash renders as a section rule.
type contentLine struct {
	key   string
	value string
}

const gapKey = "GAP"

// asciiMark is the left-hand glyph of the panel.
var asciiMark = []string{
	`            @@@@@@@@`,
	`         @@@        @@@`,
	`       @@              @@`,
	`      @@   @@@    @@@   @@`,
	`     @@   @@@@@  @@@@@   @@`,
	`     @@    @@@    @@@    @@`,
	`     @@                  @@`,
	`     @@     @@    @@     @@`,
	`      @@     @@@@@@     @@`,
	`       @@              @@`,
	`    @@@  @@          @@  @@@`,
	`    @@@    @@@@@@@@@@    @@@`,
	`      @@@@            @@@@`,
	`          @@@@@@@@@@@@`,
}

// uptimeString formats the account age the way neofetch reports uptime.
func uptimeString(createdAt, now time.Time) string {
	days := int(now.Sub(createdAt).Hours() / 24)
	if days < 0 {
		days = 0
	}
	years := days / 365
	months := (days % 365) / 30
	rest := (days % 365) % 30
	return fmt.Sprintf("%d years, %d months, %d days", years, months, rest)
}

// profileContent defines the rows of the panel in display order.
func profileContent(report *schema.Report, profile *schema.UserProfile) []contentLine {
	host := profile.Company
	if host == "" {
		host = "GitHub"
	}

	var topLangs []string
	for _, lang := range report.TopLanguages(4) {
		topLangs = append(topLangs, lang.Name)
	}
	langSummary := strings.Join(topLangs, ", ")
	if langSummary == "" {
		langSummary = "N/A"
	}

	lines := []contentLine{
		{"Uptime", uptimeString(profile.CreatedAt, time.Now())},
		{"Host", host},
	}
	if profile.Location != "" {
		lines = append(lines, contentLine{"Location", profile.Location})
	}
	lines = append(lines,
		contentLine{gapKey, ""},
		contentLine{"Languages.Programming", langSummary},
	)
	if profile.MostUsedLanguage != "" {
		lines = append(lines, contentLine{"Languages.MostUsed", profile.MostUsedLanguage})
	}

	var contact []contentLine
	if profile.Email != "" {
		contact = append(contact, contentLine{"Email", profile.Email})
	}
	if profile.Website != "" {
		contact = append(contact, contentLine{"Website", profile.Website})
	}
	if profile.Twitter != "" {
		contact = append(contact, contentLine{"Twitter", "@" + profile.Twitter})
	}
	if len(contact) > 0 {
		lines = append(lines, contentLine{gapKey, ""}, contentLine{"— Contact ", ""})
		lines = append(lines, contact...)
	}

	lines = append(lines,
		contentLine{gapKey, ""},
		contentLine{"— GitHub Stats ", ""},
		contentLine{"Repos", fmt.Sprintf("%d {Contributed: %d} | Stars: %s",
			profile.PublicRepos, profile.ContributedRepos, humanize.Comma(int64(profile.TotalStars)))},
		contentLine{"Commits", fmt.Sprintf("%s | Followers: %s",
			humanize.Comma(int64(report.TotalCommits)), humanize.Comma(int64(profile.Followers)))},
		contentLine{"Lines of Code", fmt.Sprintf("%s ( %s++,  %s-- )",
			humanize.Comma(int64(report.NetLines())),
			humanize.Comma(int64(report.TotalAdditions)),
			humanize.Comma(int64(report.TotalDeletions)))},
	)
	return lines
}

// headerLine builds the "Name -—- @login -———-—-" rule at exactly
// panelColumns columns, truncating overlong names.
func headerLine(name, login string) string {
	fixed := " -—- @" + login + " -"
	end := "—-—-"

	budget := panelColumns - Width(fixed) - Width(end)
	name = Truncate(name, budget)

	dashes := panelColumns - Width(name) - Width(fixed) - Width(end)
	if dashes < 0 {
		dashes = 0
	}
	return name + fixed + strings.Repeat("—", dashes) + end
}

// styledLine formats one key/value row to exactly panelColumns columns,
// filling the middle with dots and wrapping the parts in styling tspans.
func styledLine(key, value string) string {
	if strings.HasPrefix(key, "—") || strings.HasPrefix(key, "-") {
		rule := key + strings.Repeat("—", panelColumns-Width(key))
		return fmt.Sprintf(`<tspan class="separator">%s</tspan>`, escape(rule))
	}

	keyPart := ". " + key + ":"
	dots := panelColumns - Width(keyPart) - Width(value) - 1
	if dots < 1 {
		// Overlong value: reserve one dot and truncate with the ellipsis.
		value = Truncate(value, panelColumns-Width(keyPart)-2)
		dots = 1
	}
	return fmt.Sprintf(`. <tspan class="key">%s</tspan>: %s<tspan class="value"> %s</tspan>`,
		escape(key), strings.Repeat(".", dots), escape(value))
}

// NeofetchCard renders the neofetch-style panel as an SVG document.
func NeofetchCard(report *schema.Report, profile *schema.UserProfile, theme schema.Theme) string {
	p := neofetchPalettes[theme]
	content := profileContent(report, profile)
	languages := report.TopLanguages(maxBarLangs)

	// Height follows the line count so the panel never clips.
	textLines := 0
	gapLines := 0
	for _, line := range content {
		if line.key == gapKey {
			gapLines++
		} else {
			textLines++
		}
	}
	totalLines := 1 + textLines + gapLines + len(languages)
	contentHeight := topMargin + 25 + totalLines*lineHeight + 10 + 35 + 15
	svgHeight := max(asciiHeight+topMargin, contentHeight) + 20

	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version='1.0' encoding='UTF-8'?>
<svg xmlns="http://www.w3.org/2000/svg" font-family="monospace" width="%dpx" height="%dpx" font-size="14px">
<style>
.key {fill: %s; font-weight: bold;}
.value {fill: %s;}
.addColor {fill: %s;}
.delColor {fill: %s;}
.separator {fill: %s;}
text, tspan {white-space: pre;}
</style>
<rect width="%dpx" height="%dpx" fill="%s" rx="15"/>`,
		svgWidth, svgHeight, p.key, p.value, p.add, p.del, p.separator, svgWidth, svgHeight, p.bg)

	// Left-hand ASCII mark.
	const asciiX = 60
	fmt.Fprintf(&b, "\n<text x=\"%d\" y=\"30\" fill=\"%s\">", asciiX, p.text)
	for i, row := range asciiMark {
		fmt.Fprintf(&b, "\n    <tspan x=\"%d\" y=\"%d\">%s</tspan>", asciiX, 80+i*26, escape(row))
	}
	b.WriteString("\n</text>")

	// Main content column.
	const xMain = 400
	y := topMargin
	fmt.Fprintf(&b, "\n<text x=\"%d\" y=\"%d\" fill=\"%s\" font-size=\"14px\">\n<tspan x=\"%d\" y=\"%d\">%s</tspan>\n</text>",
		xMain, y, p.text, xMain, y, escape(headerLine(profile.DisplayName(), profile.Login)))
	y += 25

	for _, line := range content {
		if line.key == gapKey {
			y += lineHeight
			continue
		}
		fmt.Fprintf(&b, "\n<text x=\"%d\" y=\"%d\" fill=\"%s\" font-size=\"14px\">\n<tspan x=\"%d\" y=\"%d\">%s</tspan>\n</text>",
			xMain, y, p.text, xMain, y, styledLine(line.key, line.value))
		y += lineHeight
	}

	// Language bar: proportional segment widths, tiny segments skipped.
	if len(languages) > 0 {
		fmt.Fprintf(&b, "\n<g transform=\"translate(%d, %d)\">", xMain, y)
		x := 0.0
		for _, lang := range report.Languages {
			segment := lang.Percent / 100 * barWidth
			if segment < 1 {
				continue
			}
			fmt.Fprintf(&b, `<rect x="%.1f" y="0" width="%.1f" height="10" fill="%s" rx="1"/>`, x, segment, lang.Color)
			x += segment
		}
		b.WriteString("</g>")
		y += 35

		for _, lang := range languages {
			detail := fmt.Sprintf(`  <tspan style="fill:%s">●</tspan> <tspan class="key">%s</tspan>: <tspan class="value">%.1f%%</tspan> <tspan class="value">%s commits</tspan> <tspan class="value">(+%s -%s)</tspan>`,
				lang.Color, escape(lang.Name), lang.Percent,
				humanize.Comma(int64(lang.WeightedCommits)),
				humanize.Comma(int64(lang.WeightedAdditions)),
				humanize.Comma(int64(lang.WeightedDeletions)))
			fmt.Fprintf(&b, "\n<text x=\"%d\" y=\"%d\" fill=\"%s\" font-size=\"14px\">\n<tspan x=\"%d\" y=\"%d\">%s</tspan>\n</text>",
				xMain, y, p.text, xMain, y, detail)
			y += lineHeight
		}
	}

	b.WriteString("\n</svg>")
	return b.String()
}
