package core

import (
	"math"
	"sort"

	"github.com/octoprofile/octoprofile/schema"
)

// BuildReport finalizes a summary into the statistics object consumed by the
// renderers. Percentages are derived here from the current totals; they are
// never stored upstream, so they cannot drift from the underlying counts.
//
// Ordering is deterministic: languages sort by weighted commits descending,
// ties broken by name ascending. Repositories sort by raw commits
// descending, ties broken by nameWithOwner ascending.
func BuildReport(login string, period schema.Period, sum *Summary) *schema.Report {
	report := &schema.Report{
		Login:           login,
		Period:          period,
		TotalCommits:    sum.TotalCommits,
		TotalAdditions:  sum.TotalAdditions,
		TotalDeletions:  sum.TotalDeletions,
		RepoCount:       sum.RepoCount(),
		YearlyCommits:   sum.YearlyCommits,
		YearlyLanguages: sum.YearlyLanguages,
	}

	// Zero total commits yields an empty language mapping, not a division
	// error.
	if sum.TotalCommits > 0 {
		for _, ls := range sum.Languages {
			report.Languages = append(report.Languages, schema.LanguageReport{
				Name:              ls.Name,
				Color:             languageColor(ls),
				Commits:           ls.Commits,
				WeightedCommits:   ls.WeightedCommits,
				Percent:           ls.WeightedCommits / float64(sum.TotalCommits) * 100,
				Additions:         ls.Additions,
				Deletions:         ls.Deletions,
				WeightedAdditions: int(math.Round(ls.WeightedAdditions)),
				WeightedDeletions: int(math.Round(ls.WeightedDeletions)),
				Bytes:             ls.Bytes,
				RepoCount:         ls.RepoCount(),
			})
		}
		sort.Slice(report.Languages, func(i, j int) bool {
			a, b := report.Languages[i], report.Languages[j]
			if a.WeightedCommits != b.WeightedCommits {
				return a.WeightedCommits > b.WeightedCommits
			}
			return a.Name < b.Name
		})
	}

	for _, entry := range sum.repoActivity {
		report.Repositories = append(report.Repositories, *entry)
	}
	sort.Slice(report.Repositories, func(i, j int) bool {
		a, b := report.Repositories[i], report.Repositories[j]
		if a.Commits != b.Commits {
			return a.Commits > b.Commits
		}
		return a.NameWithOwner < b.NameWithOwner
	})

	return report
}

// languageColor falls back to the palette for accumulators that never saw an
// API color.
func languageColor(ls *schema.LanguageStat) string {
	return schema.LanguageColor(ls.Name, ls.Color)
}
