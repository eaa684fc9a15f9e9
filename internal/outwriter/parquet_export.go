package outwriter

import (
	"fmt"
	"os"
	"time"

	"github.com/octoprofile/octoprofile/schema"
	"github.com/parquet-go/parquet-go"
)

// LanguageRecord is one per-language row of a run, flattened for Parquet
// export. The schema is derived from the struct tags.
type LanguageRecord struct {
	// Login is the analyzed GitHub username
	Login string `parquet:"login,snappy"`

	// PeriodFrom is the inclusive start of the analysis window
	PeriodFrom time.Time `parquet:"period_from,snappy"`

	// PeriodTo is the inclusive end of the analysis window
	PeriodTo time.Time `parquet:"period_to,snappy"`

	// Language is the language name
	Language string `parquet:"language,snappy"`

	// Commits is the unweighted commit count attributed via primary language
	Commits int32 `parquet:"commits,snappy"`

	// WeightedCommits is the byte-share weighted commit count
	WeightedCommits float64 `parquet:"weighted_commits,snappy"`

	// Percent is the weighted share of the run total
	Percent float64 `parquet:"percent,snappy"`

	// Additions and Deletions are raw line counts from primary attribution
	Additions int32 `parquet:"additions,snappy"`
	Deletions int32 `parquet:"deletions,snappy"`

	// Bytes is the cumulative byte size seen for this language
	Bytes int64 `parquet:"bytes,snappy"`

	// RepoCount is the number of distinct repositories contributing
	RepoCount int32 `parquet:"repo_count,snappy"`
}

// WriteReportParquet writes the per-language rows of a report to a Parquet
// file using struct schema inference.
func WriteReportParquet(report *schema.Report, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	rows := make([]LanguageRecord, 0, len(report.Languages))
	for _, lang := range report.Languages {
		rows = append(rows, LanguageRecord{
			Login:           report.Login,
			PeriodFrom:      report.Period.From,
			PeriodTo:        report.Period.To,
			Language:        lang.Name,
			Commits:         int32(lang.Commits),
			WeightedCommits: lang.WeightedCommits,
			Percent:         lang.Percent,
			Additions:       int32(lang.Additions),
			Deletions:       int32(lang.Deletions),
			Bytes:           lang.Bytes,
			RepoCount:       int32(lang.RepoCount),
		})
	}

	writer := parquet.NewGenericWriter[LanguageRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}

	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", outputPath)
	return nil
}
