package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/octoprofile/octoprofile/internal/contract"
	"github.com/octoprofile/octoprofile/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher serves canned per-year records and can fail selected years.
type fakeFetcher struct {
	records    map[int][]schema.RepoActivity
	failYears  map[int]bool
	failLines  bool
	lineCalls  int
	lineResult schema.LineStats
}

func (f *fakeFetcher) ResolveUser(_ context.Context, login string) (*schema.UserProfile, error) {
	if login == "ghost" {
		return nil, errors.New("user ghost not found")
	}
	return &schema.UserProfile{Login: login, Name: "The Octocat"}, nil
}

func (f *fakeFetcher) Contributions(_ context.Context, _ string, year int, _, _ time.Time) ([]schema.RepoActivity, error) {
	if f.failYears[year] {
		return nil, errors.New("rate limited")
	}
	return f.records[year], nil
}

func (f *fakeFetcher) RepoLineStats(_ context.Context, _, _, _ string, _, _ time.Time) (schema.LineStats, error) {
	f.lineCalls++
	if f.failLines {
		return schema.LineStats{}, errors.New("history unavailable")
	}
	return f.lineResult, nil
}

func yearRecord(year, commits int) schema.RepoActivity {
	return schema.RepoActivity{
		NameWithOwner: "octocat/project",
		Owner:         "octocat",
		Name:          "project",
		Year:          year,
		Commits:       commits,
		PrimaryLang:   "Go",
		TotalBytes:    100,
		Languages:     []schema.LanguageSlice{{Name: "Go", Bytes: 100}},
	}
}

func runnerConfig() *contract.Config {
	return &contract.Config{
		Login:      "octocat",
		StartTime:  time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, time.June, 30, 23, 59, 59, 0, time.UTC),
		LineCounts: false,
		TopN:       contract.DefaultTopLanguages,
	}
}

// TestCollectRecordsPartialFailure verifies a failing middle year is skipped
// while the surrounding years still contribute.
func TestCollectRecordsPartialFailure(t *testing.T) {
	fetcher := &fakeFetcher{
		records: map[int][]schema.RepoActivity{
			2022: {yearRecord(2022, 5)},
			2023: {yearRecord(2023, 7)},
			2024: {yearRecord(2024, 3)},
		},
		failYears: map[int]bool{2023: true},
	}

	records := CollectRecords(context.Background(), runnerConfig(), fetcher)

	require.Len(t, records, 2)
	sum := Aggregate(records, Filter{})
	assert.Equal(t, 8, sum.TotalCommits)
	assert.NotContains(t, sum.YearlyCommits, 2023)
}

func TestCollectRecordsLineStats(t *testing.T) {
	private := yearRecord(2023, 2)
	private.NameWithOwner = "octocat/secret"
	private.IsPrivate = true

	fetcher := &fakeFetcher{
		records: map[int][]schema.RepoActivity{
			2023: {yearRecord(2023, 5), private},
		},
		lineResult: schema.LineStats{Additions: 40, Deletions: 10},
	}

	cfg := runnerConfig()
	cfg.StartTime = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	cfg.EndTime = time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)
	cfg.LineCounts = true

	records := CollectRecords(context.Background(), cfg, fetcher)

	require.Len(t, records, 2)
	// Only the public repository is queried for line stats.
	assert.Equal(t, 1, fetcher.lineCalls)
	assert.Equal(t, 40, records[0].Lines.Additions)
	assert.Zero(t, records[1].Lines.Additions)
}

// TestCollectRecordsLineStatsFailure verifies a failed history query leaves
// the record with zero line stats instead of dropping it.
func TestCollectRecordsLineStatsFailure(t *testing.T) {
	fetcher := &fakeFetcher{
		records: map[int][]schema.RepoActivity{
			2023: {yearRecord(2023, 5)},
		},
		failLines: true,
	}

	cfg := runnerConfig()
	cfg.StartTime = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	cfg.EndTime = time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)
	cfg.LineCounts = true

	records := CollectRecords(context.Background(), cfg, fetcher)

	require.Len(t, records, 1)
	assert.Equal(t, 5, records[0].Commits)
	assert.Zero(t, records[0].Lines.Additions)
}

func TestBuildRunReportUnresolvableUser(t *testing.T) {
	cfg := runnerConfig()
	cfg.Login = "ghost"

	_, _, err := buildRunReport(context.Background(), cfg, &fakeFetcher{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestBuildRunReportEndToEnd(t *testing.T) {
	fetcher := &fakeFetcher{
		records: map[int][]schema.RepoActivity{
			2022: {yearRecord(2022, 5)},
			2023: {yearRecord(2023, 7)},
			2024: {yearRecord(2024, 3)},
		},
	}

	profile, report, err := buildRunReport(context.Background(), runnerConfig(), fetcher)
	require.NoError(t, err)

	assert.Equal(t, "The Octocat", profile.Name)
	assert.Equal(t, 15, report.TotalCommits)
	assert.Equal(t, 1, report.RepoCount)
	require.Len(t, report.Languages, 1)
	assert.InDelta(t, 100.0, report.Languages[0].Percent, 1e-9)
}
