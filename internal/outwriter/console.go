package outwriter

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/octoprofile/octoprofile/internal/contract"
	"github.com/octoprofile/octoprofile/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"
)

// Console section colors.
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	sectionColor = color.New(color.FgBlue, color.Bold)
	mutedColor   = color.New(color.FgHiBlack)
)

const (
	maxBarColumns = 40
	topRepoRows   = 5
	yearlyTopN    = 3
)

// consoleWidth returns the usable terminal width, honoring the --width
// override and falling back to a conservative default when detection fails.
func consoleWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detected, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detected <= 0 {
		return 80 // Conservative default for narrow terminals and CI
	}
	return detected
}

// WriteConsoleReport prints the full analysis report to stdout.
func WriteConsoleReport(report *schema.Report, profile *schema.UserProfile, cfg *contract.Config) error {
	color.NoColor = !cfg.UseColors
	w := os.Stdout

	writeSummary(w, report, profile)
	if err := writeLanguageTable(w, report, cfg); err != nil {
		return err
	}
	writeDistribution(w, report, cfg)
	if cfg.ShowYearly {
		writeYearlyBreakdown(w, report)
	}
	writeTopRepositories(w, report)
	return nil
}

// writeSummary prints the header block with profile and run totals.
func writeSummary(w io.Writer, report *schema.Report, profile *schema.UserProfile) {
	fmt.Fprintf(w, "\n%s\n", titleColor.Sprintf("📊 GitHub Statistics for %s (@%s)", profile.DisplayName(), profile.Login))
	fmt.Fprintf(w, "%s\n", mutedColor.Sprintf("   %s to %s",
		report.Period.From.Format(contract.DateFormat), report.Period.To.Format(contract.DateFormat)))

	fmt.Fprintf(w, "\n   Commits:      %s\n", humanize.Comma(int64(report.TotalCommits)))
	fmt.Fprintf(w, "   Repositories: %d\n", report.RepoCount)
	fmt.Fprintf(w, "   Languages:    %d\n", len(report.Languages))
	if report.TotalAdditions > 0 || report.TotalDeletions > 0 {
		fmt.Fprintf(w, "   Lines:        %s / %s (net %s)\n",
			contract.AddColor.Sprintf("%s++", humanize.Comma(int64(report.TotalAdditions))),
			contract.DelColor.Sprintf("%s--", humanize.Comma(int64(report.TotalDeletions))),
			humanize.Comma(int64(report.NetLines())))
	}
}

// writeLanguageTable prints the ranked per-language table.
func writeLanguageTable(w io.Writer, report *schema.Report, cfg *contract.Config) error {
	if len(report.Languages) == 0 {
		fmt.Fprintf(w, "\n%s\n", contract.WarnColor.Sprint("No commits found in the analysis window."))
		return nil
	}

	fmt.Fprintf(w, "\n%s\n", sectionColor.Sprint("Languages (weighted by repository byte share)"))

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Language", "Commits", "Weighted", "Share", "Bytes", "Repos"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, lang := range report.TopLanguages(cfg.TopN) {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			lang.Name,
			humanize.Comma(int64(lang.Commits)),
			fmt.Sprintf("%.1f", lang.WeightedCommits),
			fmt.Sprintf("%.1f%%", lang.Percent),
			humanize.Bytes(uint64(lang.Bytes)),
			fmt.Sprintf("%d", lang.RepoCount),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeDistribution prints proportional block-character bars per language.
func writeDistribution(w io.Writer, report *schema.Report, cfg *contract.Config) {
	langs := report.TopLanguages(cfg.TopN)
	if len(langs) == 0 {
		return
	}

	barColumns := consoleWidth(cfg) - 40
	if barColumns > maxBarColumns {
		barColumns = maxBarColumns
	}
	if barColumns < 10 {
		barColumns = 10
	}

	nameWidth := 0
	for _, lang := range langs {
		if len(lang.Name) > nameWidth {
			nameWidth = len(lang.Name)
		}
	}

	fmt.Fprintf(w, "\n%s\n", sectionColor.Sprint("Distribution"))
	for _, lang := range langs {
		filled := int(lang.Percent / 100 * float64(barColumns))
		if filled < 1 && lang.Percent > 0 {
			filled = 1
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barColumns-filled)
		fmt.Fprintf(w, "   %-*s %s %5.1f%%\n", nameWidth, lang.Name, bar, lang.Percent)
	}
}

// writeYearlyBreakdown prints per-year commit totals with the leading
// languages of each year.
func writeYearlyBreakdown(w io.Writer, report *schema.Report) {
	if len(report.YearlyCommits) == 0 {
		return
	}

	years := make([]int, 0, len(report.YearlyCommits))
	for year := range report.YearlyCommits {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	fmt.Fprintf(w, "\n%s\n", sectionColor.Sprint("Yearly breakdown"))
	for _, year := range years {
		fmt.Fprintf(w, "   %d: %s commits", year, humanize.Comma(int64(report.YearlyCommits[year])))
		if top := topYearLanguages(report.YearlyLanguages[year], yearlyTopN); len(top) > 0 {
			fmt.Fprintf(w, " (%s)", strings.Join(top, ", "))
		}
		fmt.Fprintln(w)
	}
}

// topYearLanguages ranks one year's weighted language map, name ascending on
// ties so output is stable across runs.
func topYearLanguages(weights map[string]float64, n int) []string {
	type pair struct {
		name   string
		weight float64
	}
	pairs := make([]pair, 0, len(weights))
	for name, weight := range weights {
		pairs = append(pairs, pair{name, weight})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].weight != pairs[j].weight {
			return pairs[i].weight > pairs[j].weight
		}
		return pairs[i].name < pairs[j].name
	})
	if n > len(pairs) {
		n = len(pairs)
	}
	names := make([]string, 0, n)
	for _, p := range pairs[:n] {
		names = append(names, p.name)
	}
	return names
}

// writeTopRepositories prints the most active repositories.
func writeTopRepositories(w io.Writer, report *schema.Report) {
	if len(report.Repositories) == 0 {
		return
	}

	rows := topRepoRows
	if rows > len(report.Repositories) {
		rows = len(report.Repositories)
	}

	fmt.Fprintf(w, "\n%s\n", sectionColor.Sprint("Top repositories"))
	for _, repo := range report.Repositories[:rows] {
		fmt.Fprintf(w, "   %-40s %s commits", repo.NameWithOwner, humanize.Comma(int64(repo.Commits)))
		if repo.PrimaryLang != "" {
			fmt.Fprintf(w, "  %s", mutedColor.Sprint(repo.PrimaryLang))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}
