// Package schema has configs, models and shared constants for all parts of octoprofile.
package schema

import "time"

// LineStats holds line-level change counts attributed to the target user
// for one repository over one fetch window.
type LineStats struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
}

// Net returns additions minus deletions.
func (l LineStats) Net() int {
	return l.Additions - l.Deletions
}

// LanguageSlice is one (language, bytes) entry of a repository's composition.
type LanguageSlice struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Bytes int64  `json:"bytes"`
}

// RepoActivity is the raw record for one repository within one year slice.
// It is produced by the fetcher and consumed exactly once by the aggregator.
type RepoActivity struct {
	NameWithOwner string          `json:"name_with_owner"`
	Owner         string          `json:"owner"`
	Name          string          `json:"name"`
	Year          int             `json:"year"`
	Commits       int             `json:"commits"`
	IsFork        bool            `json:"is_fork"`
	IsPrivate     bool            `json:"is_private"`
	PrimaryLang   string          `json:"primary_language"`
	PrimaryColor  string          `json:"primary_language_color"`
	Languages     []LanguageSlice `json:"languages"`
	TotalBytes    int64           `json:"total_bytes"`
	Lines         LineStats       `json:"lines"`
}

// LanguageStat accumulates per-language counters across all records.
//
// Commits/Additions/Deletions are the unweighted buckets, fed only by
// primary-language attribution. WeightedCommits and friends are fed by
// byte-share attribution across a repository's full language breakdown.
// The two bucket families serve different display purposes and are never
// reconciled into one number.
type LanguageStat struct {
	Name              string  `json:"name"`
	Color             string  `json:"color"`
	Commits           int     `json:"commits"`
	WeightedCommits   float64 `json:"weighted_commits"`
	Additions         int     `json:"additions"`
	Deletions         int     `json:"deletions"`
	WeightedAdditions float64 `json:"weighted_additions"`
	WeightedDeletions float64 `json:"weighted_deletions"`
	Bytes             int64   `json:"bytes"`

	// repos tracks distinct contributing repositories; only its size is exported.
	repos map[string]struct{}
}

// MarkRepo records a contributing repository for this language.
func (s *LanguageStat) MarkRepo(nameWithOwner string) {
	if s.repos == nil {
		s.repos = make(map[string]struct{})
	}
	s.repos[nameWithOwner] = struct{}{}
}

// RepoCount returns the number of distinct repositories seen for this language.
func (s *LanguageStat) RepoCount() int {
	return len(s.repos)
}

// Period is the half-open historical window a run covers.
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// LanguageReport is one finalized per-language row of a Report. Percent
// fields are derived from the run totals when the report is built and are
// never stored independently of their source counts.
type LanguageReport struct {
	Name              string  `json:"name"`
	Color             string  `json:"color"`
	Commits           int     `json:"commits"`
	WeightedCommits   float64 `json:"weighted_commits"`
	Percent           float64 `json:"percent"`
	Additions         int     `json:"additions"`
	Deletions         int     `json:"deletions"`
	WeightedAdditions int     `json:"weighted_additions"`
	WeightedDeletions int     `json:"weighted_deletions"`
	Bytes             int64   `json:"bytes"`
	RepoCount         int     `json:"repo_count"`
}

// RepoReport is one finalized per-repository row of a Report.
type RepoReport struct {
	NameWithOwner string `json:"name_with_owner"`
	Commits       int    `json:"commits"`
	Additions     int    `json:"additions"`
	Deletions     int    `json:"deletions"`
	PrimaryLang   string `json:"primary_language"`
	IsFork        bool   `json:"is_fork"`
	IsPrivate     bool   `json:"is_private"`
}

// Report is the finalized statistics object handed to the renderers.
type Report struct {
	Login          string           `json:"login"`
	Period         Period           `json:"period"`
	TotalCommits   int              `json:"total_commits"`
	TotalAdditions int              `json:"total_additions"`
	TotalDeletions int              `json:"total_deletions"`
	RepoCount      int              `json:"repo_count"`
	Languages      []LanguageReport `json:"languages"`
	Repositories   []RepoReport     `json:"repositories"`

	// YearlyCommits maps calendar year to raw commit count.
	YearlyCommits map[int]int `json:"yearly_commits"`

	// YearlyLanguages maps calendar year to weighted commits per language.
	YearlyLanguages map[int]map[string]float64 `json:"yearly_languages"`
}

// NetLines returns the run-level net line change.
func (r *Report) NetLines() int {
	return r.TotalAdditions - r.TotalDeletions
}

// TopLanguages returns up to n leading language rows.
func (r *Report) TopLanguages(n int) []LanguageReport {
	if n > len(r.Languages) {
		n = len(r.Languages)
	}
	return r.Languages[:n]
}

// UserProfile holds the raw profile fields shown on the rendered panels.
type UserProfile struct {
	Login             string    `json:"login"`
	Name              string    `json:"name"`
	Bio               string    `json:"bio"`
	Company           string    `json:"company"`
	Location          string    `json:"location"`
	Email             string    `json:"email"`
	Website           string    `json:"website"`
	Twitter           string    `json:"twitter"`
	CreatedAt         time.Time `json:"created_at"`
	Followers         int       `json:"followers"`
	Following         int       `json:"following"`
	PublicRepos       int       `json:"public_repos"`
	ContributedRepos  int       `json:"contributed_repos"`
	StarredRepos      int       `json:"starred_repos"`
	TotalStars        int       `json:"total_stars"`
	TotalForks        int       `json:"total_forks"`
	TotalIssues       int       `json:"total_issues"`
	TotalPullRequests int       `json:"total_pull_requests"`
	TotalReviews      int       `json:"total_reviews"`
	MostUsedLanguage  string    `json:"most_used_language"`
}

// DisplayName returns the profile name, falling back to the login.
func (u *UserProfile) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Login
}
