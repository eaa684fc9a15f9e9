// Package outwriter has output and writer logic for SVG cards, structured
// exports and the console report.
package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/octoprofile/octoprofile/internal/contract"
	"github.com/octoprofile/octoprofile/schema"
)

// WriteSVG writes a rendered SVG document to the given path.
func WriteSVG(doc string, path string) error {
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write SVG: %w", err)
	}
	return nil
}

// writeWithFile handles the common pattern of opening a file, writing to it,
// and cleaning up. An empty path writes to stdout.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// WriteReportJSON writes the full report as indented JSON.
func WriteReportJSON(report *schema.Report, outputFile string) error {
	return writeWithFile(outputFile, func(w io.Writer) error {
		return writeJSON(w, report)
	}, "Wrote JSON")
}
