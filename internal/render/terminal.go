package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/octoprofile/octoprofile/schema"
)

// Layout constants of the terminal panel.
const (
	termWidth      = 800
	termLineHeight = 14
	termContentY   = 70
	termTextX      = 40
	innerColumns   = 65 // columns between the left border and the closing bar
	termFontFamily = "SF Mono, Monaco, Inconsolata, Roboto Mono, monospace"
)

// termLine is one row of terminal text, optionally carrying a language dot
// overlaid on the leading bullet.
type termLine struct {
	text     string
	color    string
	bold     bool
	dotColor string
}

// boxRow pads a bordered row to the fixed inner width and closes it.
func boxRow(text string) string {
	return PadRight(text, innerColumns) + "│"
}

// boxRule builds a horizontal border with the given corner and fill runes.
func boxRule(left, fill, right string) string {
	return left + strings.Repeat(fill, innerColumns-Width(left)) + right
}

// terminalRows lays out the full panel content in display order.
func terminalRows(report *schema.Report, profile *schema.UserProfile, p terminalPalette, topN int) []termLine {
	rows := []termLine{
		{text: boxRule("┌─ GitHub Stats ", "─", "┐"), color: p.border, bold: true},
		{text: boxRow("│"), color: p.border},
	}

	userRow := fmt.Sprintf("│  %s (@%s) - Joined %d", profile.DisplayName(), profile.Login, profile.CreatedAt.Year())
	rows = append(rows, termLine{text: boxRow(userRow), color: p.text})
	if profile.Bio != "" {
		rows = append(rows, termLine{text: boxRow("│  " + Truncate(profile.Bio, 53)), color: p.gray})
	}
	if profile.Location != "" {
		rows = append(rows, termLine{text: boxRow("│  " + Truncate(profile.Location, 53)), color: p.gray})
	}
	rows = append(rows, termLine{text: boxRow("│"), color: p.border})

	rows = append(rows,
		termLine{text: boxRow("│  Repository Stats:"), color: p.blue, bold: true},
		termLine{text: boxRow(fmt.Sprintf("│     Public Repos: %d │ Total Stars: %d │ Forks: %d",
			profile.PublicRepos, profile.TotalStars, profile.TotalForks)), color: p.text},
		termLine{text: boxRow(fmt.Sprintf("│     Followers: %d │ Following: %d",
			profile.Followers, profile.Following)), color: p.text},
		termLine{text: boxRow("│"), color: p.border},
	)

	rows = append(rows,
		termLine{text: boxRow("│  Contribution Stats:"), color: p.green, bold: true},
		termLine{text: boxRow(fmt.Sprintf("│     Commits: %s │ Issues: %d │ PRs: %d",
			humanize.Comma(int64(report.TotalCommits)), profile.TotalIssues, profile.TotalPullRequests)), color: p.text},
		termLine{text: boxRow(fmt.Sprintf("│     Reviews: %d │ Repositories: %d",
			profile.TotalReviews, report.RepoCount)), color: p.text},
		termLine{text: boxRow("│"), color: p.border},
	)

	rows = append(rows,
		termLine{text: boxRow("│  Language Analysis (by commit percentage):"), color: p.yellow, bold: true},
		termLine{text: boxRow("│  " + strings.Repeat("═", 59)), color: p.border},
	)
	for _, lang := range report.TopLanguages(topN) {
		row := fmt.Sprintf("│  ● %s %s commits (%.1f%%)",
			lang.Name, humanize.Comma(int64(lang.WeightedCommits)), lang.Percent)
		rows = append(rows, termLine{text: boxRow(row), color: p.text, dotColor: lang.Color})
	}

	if report.TotalAdditions > 0 {
		net := report.NetLines()
		netColor, netSign := p.green, "+"
		if net < 0 {
			netColor, netSign = p.red, ""
		}
		rows = append(rows,
			termLine{text: boxRow("│"), color: p.border},
			termLine{text: boxRow("│  Code Statistics:"), color: p.blue, bold: true},
			termLine{text: boxRow(fmt.Sprintf("│     Lines Added: %s │ Deleted: %s",
				humanize.Comma(int64(report.TotalAdditions)), humanize.Comma(int64(report.TotalDeletions)))), color: p.text},
			termLine{text: boxRow(fmt.Sprintf("│     Net Change: %s%s lines", netSign, humanize.Comma(int64(net)))), color: netColor},
		)
	}

	rows = append(rows,
		termLine{text: boxRow("│"), color: p.border},
		termLine{text: boxRule("└", "─", "┘"), color: p.border, bold: true},
	)
	return rows
}

// TerminalCard renders the terminal-style panel as an SVG document.
func TerminalCard(report *schema.Report, profile *schema.UserProfile, theme schema.Theme, topN int) string {
	p := terminalPalettes[theme]
	rows := terminalRows(report, profile, p, topN)

	prompt := fmt.Sprintf("%s@github:~$ # Generated on %s",
		profile.Login, time.Now().UTC().Format("2006-01-02 15:04:05 UTC"))
	rows = append(rows, termLine{text: prompt, color: p.prompt})

	height := termContentY + len(rows)*termLineHeight + 30

	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version='1.0' encoding='UTF-8'?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" style="background-color: transparent;">
<rect width="%d" height="%d" fill="%s" rx="6"/>
<rect x="20" y="20" width="%d" height="%d" fill="%s" stroke="%s" stroke-width="1" rx="6"/>
<rect x="20" y="20" width="%d" height="30" fill="%s" rx="6"/>`,
		termWidth, height, termWidth, height, p.bg,
		termWidth-40, height-40, p.terminalBg, p.border,
		termWidth-40, p.border)

	// Traffic-light window buttons.
	for i, c := range []string{"#ff5f56", "#ffbd2e", "#27ca3f"} {
		fmt.Fprintf(&b, "\n<circle cx=\"%d\" cy=\"35\" r=\"4\" fill=\"%s\"/>", 35+i*15, c)
	}
	fmt.Fprintf(&b, "\n<text x=\"%d\" y=\"40\" font-family=\"%s\" font-size=\"12\" fill=\"%s\" text-anchor=\"middle\" font-weight=\"500\">%s</text>",
		termWidth/2, termFontFamily, p.text, escape(profile.Login+"@github:~$ github-stats"))

	y := termContentY
	for _, row := range rows {
		weight := "400"
		if row.bold {
			weight = "600"
		}
		fmt.Fprintf(&b, "\n<text x=\"%d\" y=\"%d\" font-family=\"%s\" font-size=\"11\" fill=\"%s\" font-weight=\"%s\">%s</text>",
			termTextX, y, termFontFamily, row.color, weight, escape(row.text))
		if row.dotColor != "" {
			fmt.Fprintf(&b, "\n<circle cx=\"45\" cy=\"%d\" r=\"3\" fill=\"%s\"/>", y-4, row.dotColor)
		}
		y += termLineHeight
	}

	// Blinking cursor after the prompt line.
	cursorX := termTextX + len(prompt)*6
	fmt.Fprintf(&b, "\n<rect x=\"%d\" y=\"%d\" width=\"8\" height=\"12\" fill=\"%s\">\n<animate attributeName=\"opacity\" values=\"1;0;1\" dur=\"1.5s\" repeatCount=\"indefinite\"/>\n</rect>",
		cursorX, y-termLineHeight-12, p.cursor)

	b.WriteString("\n</svg>")
	return b.String()
}
