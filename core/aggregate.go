// Package core holds the aggregation fold and the run orchestration for
// octoprofile. The fold is pure: given the same record sequence and filter
// it always produces the same summary, independent of any network access.
package core

import (
	"github.com/octoprofile/octoprofile/schema"
)

// Filter decides which raw records take part in aggregation. A filtered
// record contributes nothing to any total.
type Filter struct {
	ExcludeForks   bool
	ExcludePrivate bool
	MinCommits     int
}

// Keep reports whether a record survives the filter.
func (f Filter) Keep(r schema.RepoActivity) bool {
	if f.ExcludeForks && r.IsFork {
		return false
	}
	if f.ExcludePrivate && r.IsPrivate {
		return false
	}
	return r.Commits >= f.MinCommits
}

// Summary is the result of folding raw records. Run-level totals are sums of
// raw (not weighted) counts across non-filtered records, so they match what
// an auditor would compute from the visible per-repository numbers.
type Summary struct {
	Languages map[string]*schema.LanguageStat

	TotalCommits   int
	TotalAdditions int
	TotalDeletions int

	YearlyCommits   map[int]int
	YearlyLanguages map[int]map[string]float64

	repos        map[string]struct{}
	repoActivity map[string]*schema.RepoReport
}

// NewSummary returns an empty summary.
func NewSummary() *Summary {
	return &Summary{
		Languages:       make(map[string]*schema.LanguageStat),
		YearlyCommits:   make(map[int]int),
		YearlyLanguages: make(map[int]map[string]float64),
		repos:           make(map[string]struct{}),
		repoActivity:    make(map[string]*schema.RepoReport),
	}
}

// RepoCount returns the number of distinct non-filtered repositories.
func (s *Summary) RepoCount() int {
	return len(s.repos)
}

// Aggregate folds a sequence of raw records into one summary.
func Aggregate(records []schema.RepoActivity, filter Filter) *Summary {
	sum := NewSummary()
	for _, r := range records {
		sum.apply(r, filter)
	}
	return sum
}

// apply folds one record into the summary.
func (s *Summary) apply(r schema.RepoActivity, filter Filter) {
	if !filter.Keep(r) {
		return
	}

	s.TotalCommits += r.Commits
	s.TotalAdditions += r.Lines.Additions
	s.TotalDeletions += r.Lines.Deletions
	s.YearlyCommits[r.Year] += r.Commits
	s.repos[r.NameWithOwner] = struct{}{}
	s.applyRepo(r)

	// Unweighted bucket: the record's full raw counts go to the primary
	// language, even when that language is absent from the byte breakdown.
	if r.PrimaryLang != "" {
		ls := s.language(r.PrimaryLang, r.PrimaryColor)
		ls.Commits += r.Commits
		ls.Additions += r.Lines.Additions
		ls.Deletions += r.Lines.Deletions
		ls.MarkRepo(r.NameWithOwner)
	}

	// Weighted bucket: distribute the raw counts across the declared
	// languages in exact proportion to byte share. Zero declared bytes
	// means no weighted attribution at all.
	if r.TotalBytes <= 0 {
		return
	}
	for _, slice := range r.Languages {
		share := float64(slice.Bytes) / float64(r.TotalBytes)
		ls := s.language(slice.Name, slice.Color)
		ls.WeightedCommits += share * float64(r.Commits)
		ls.WeightedAdditions += share * float64(r.Lines.Additions)
		ls.WeightedDeletions += share * float64(r.Lines.Deletions)
		ls.Bytes += slice.Bytes
		ls.MarkRepo(r.NameWithOwner)

		yearly, ok := s.YearlyLanguages[r.Year]
		if !ok {
			yearly = make(map[string]float64)
			s.YearlyLanguages[r.Year] = yearly
		}
		yearly[slice.Name] += share * float64(r.Commits)
	}
}

// applyRepo merges one record into the per-repository rollup, keyed by
// nameWithOwner so multiple year slices of one repository collapse.
func (s *Summary) applyRepo(r schema.RepoActivity) {
	entry, ok := s.repoActivity[r.NameWithOwner]
	if !ok {
		entry = &schema.RepoReport{
			NameWithOwner: r.NameWithOwner,
			PrimaryLang:   r.PrimaryLang,
			IsFork:        r.IsFork,
			IsPrivate:     r.IsPrivate,
		}
		s.repoActivity[r.NameWithOwner] = entry
	}
	entry.Commits += r.Commits
	entry.Additions += r.Lines.Additions
	entry.Deletions += r.Lines.Deletions
}

// language returns the accumulator for a language, creating it on first use.
// The first non-empty color seen wins.
func (s *Summary) language(name, color string) *schema.LanguageStat {
	ls, ok := s.Languages[name]
	if !ok {
		ls = &schema.LanguageStat{Name: name}
		s.Languages[name] = ls
	}
	if ls.Color == "" && color != "" {
		ls.Color = color
	}
	return ls
}
