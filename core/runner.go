package core

import (
	"context"
	"fmt"
	"time"

	"github.com/octoprofile/octoprofile/internal/contract"
	"github.com/octoprofile/octoprofile/internal/outwriter"
	"github.com/octoprofile/octoprofile/internal/render"
	"github.com/octoprofile/octoprofile/schema"
)

// Fetcher is the upstream query boundary the run orchestration depends upon.
// *gh.Client is the production implementation.
type Fetcher interface {
	ResolveUser(ctx context.Context, login string) (*schema.UserProfile, error)
	Contributions(ctx context.Context, login string, year int, from, to time.Time) ([]schema.RepoActivity, error)
	RepoLineStats(ctx context.Context, owner, name, login string, from, to time.Time) (schema.LineStats, error)
}

// CollectRecords fetches raw records for every calendar-year slice of the
// configured window. A failed year slice is downgraded to a warning and
// skipped; successful slices are preserved. When line counts are enabled,
// each non-private repository gets one extra history query per year, and a
// failure there leaves that record's line stats at zero.
func CollectRecords(ctx context.Context, cfg *contract.Config, fetcher Fetcher) []schema.RepoActivity {
	ranges := contract.YearRanges(cfg.StartTime, cfg.EndTime)
	fmt.Printf("📅 Fetching data across %d year slice(s)...\n", len(ranges))

	var records []schema.RepoActivity
	for _, yr := range ranges {
		fmt.Printf("  🔄 Fetching %d (%s to %s)\n", yr.Year,
			yr.From.Format(contract.DateFormat), yr.To.Format(contract.DateFormat))

		yearRecords, err := fetcher.Contributions(ctx, cfg.Login, yr.Year, yr.From, yr.To)
		if err != nil {
			contract.LogWarn(fmt.Sprintf("skipping %d", yr.Year), err)
			continue
		}

		if cfg.LineCounts {
			for i := range yearRecords {
				record := &yearRecords[i]
				if record.IsPrivate {
					continue
				}
				stats, err := fetcher.RepoLineStats(ctx, record.Owner, record.Name, cfg.Login, yr.From, yr.To)
				if err != nil {
					contract.LogWarn(fmt.Sprintf("no line counts for %s", record.NameWithOwner), err)
					continue
				}
				record.Lines = stats
			}
		}
		records = append(records, yearRecords...)
	}
	return records
}

// buildRunReport runs the shared fetch and aggregate phases.
func buildRunReport(ctx context.Context, cfg *contract.Config, fetcher Fetcher) (*schema.UserProfile, *schema.Report, error) {
	fmt.Printf("🔄 Resolving user %s...\n", cfg.Login)
	profile, err := fetcher.ResolveUser(ctx, cfg.Login)
	if err != nil {
		return nil, nil, err
	}

	records := CollectRecords(ctx, cfg, fetcher)
	summary := Aggregate(records, Filter{
		ExcludeForks:   cfg.ExcludeForks,
		ExcludePrivate: cfg.ExcludePrivate,
		MinCommits:     cfg.MinCommits,
	})
	period := schema.Period{From: cfg.StartTime, To: cfg.EndTime}
	report := BuildReport(profile.Login, period, summary)

	fmt.Printf("✅ Aggregated %d commits across %d repositories (%d languages)\n",
		report.TotalCommits, report.RepoCount, len(report.Languages))
	return profile, report, nil
}

// exportReport writes the optional structured-data artifacts.
func exportReport(cfg *contract.Config, report *schema.Report) error {
	if cfg.JSONFile != "" {
		if err := outwriter.WriteReportJSON(report, cfg.JSONFile); err != nil {
			return fmt.Errorf("failed to write JSON report: %w", err)
		}
	}
	if cfg.ParquetFile != "" {
		if err := outwriter.WriteReportParquet(report, cfg.ParquetFile); err != nil {
			return fmt.Errorf("failed to write Parquet report: %w", err)
		}
	}
	return nil
}

// ExecuteGenerate runs the full pipeline and writes one SVG per requested
// style and theme combination.
func ExecuteGenerate(ctx context.Context, cfg *contract.Config, fetcher Fetcher) error {
	profile, report, err := buildRunReport(ctx, cfg, fetcher)
	if err != nil {
		return err
	}

	for _, style := range cfg.Style.Styles() {
		for _, theme := range cfg.Theme.Themes() {
			doc, err := render.Card(style, theme, report, profile, cfg.TopN)
			if err != nil {
				return err
			}
			path := cfg.SVGPath(style, theme)
			if err := outwriter.WriteSVG(doc, path); err != nil {
				return err
			}
			fmt.Printf("🎨 Wrote %s\n", path)
		}
	}

	return exportReport(cfg, report)
}

// ExecuteReport runs the fetch and aggregate phases and prints the console
// analysis instead of writing SVGs.
func ExecuteReport(ctx context.Context, cfg *contract.Config, fetcher Fetcher) error {
	profile, report, err := buildRunReport(ctx, cfg, fetcher)
	if err != nil {
		return err
	}

	if err := outwriter.WriteConsoleReport(report, profile, cfg); err != nil {
		return err
	}
	return exportReport(cfg, report)
}
