// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs a whole Moby-to-IPA conversion: load the pronunciation
// file, transliterate every entry, and write the table.
package convert

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/pdiddy/moby-ipa/internal/dictionary"
	"github.com/pdiddy/moby-ipa/internal/moby"
	"github.com/pdiddy/moby-ipa/pkg/types"
)

// Converter turns one dictionary entry into an output row.
// *moby.Transliterator implements it.
type Converter interface {
	Row(e types.Entry) types.Row
}

// Summary holds counts from one conversion run.
type Summary struct {
	InputBytes    int64
	Lines         int
	Rows          int
	Malformed     int
	Duplicates    int
	UnknownTokens int
	Unterminated  int
}

// HasWarnings reports whether any diagnostic was raised during the run.
func (s Summary) HasWarnings() bool {
	return s.Malformed > 0 || s.UnknownTokens > 0 || s.Unterminated > 0
}

// Rows converts entries in order.
func Rows(c Converter, entries []types.Entry) []types.Row {
	rows := make([]types.Row, len(entries))
	for i, e := range entries {
		rows[i] = c.Row(e)
	}
	return rows
}

// Load reads and transliterates cfg.Input without writing anything. A
// missing or unreadable input, an unsupported charset, or (with cfg.Strict)
// a malformed line is an error.
func Load(cfg types.ConvertConfig, log *slog.Logger) ([]types.Row, Summary, error) {
	cfg = cfg.WithDefaults()
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("reading input: %w", err)
	}
	summary := Summary{InputBytes: int64(len(data))}

	r, err := dictionary.Decode(bytes.NewReader(data), cfg.Encoding)
	if err != nil {
		return nil, summary, err
	}

	dict, stats, err := dictionary.Load(r, dictionary.LoadOptions{Strict: cfg.Strict, Log: log})
	if err != nil {
		return nil, summary, fmt.Errorf("loading %s: %w", cfg.Input, err)
	}
	summary.Lines = stats.Lines
	summary.Malformed = stats.Malformed
	summary.Duplicates = stats.Duplicates

	tr := moby.NewTransliterator(log)
	rows := Rows(tr, dict.Entries())
	summary.Rows = len(rows)
	summary.UnknownTokens = tr.Stats().UnknownTokens
	summary.Unterminated = tr.Stats().Unterminated

	return rows, summary, nil
}

// Run converts cfg.Input into cfg.Output. Diagnostics go to log; a one-line
// summary goes to w. Besides the errors of Load, an unsupported output
// format or a failed write aborts the run.
func Run(cfg types.ConvertConfig, log *slog.Logger, w io.Writer) (Summary, error) {
	cfg = cfg.WithDefaults()
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	format, err := dictionary.ParseFormat(string(cfg.Format))
	if err != nil {
		return Summary{}, err
	}

	rows, summary, err := Load(cfg, log)
	if err != nil {
		return summary, err
	}

	var out bytes.Buffer
	if err := dictionary.Write(&out, rows, format); err != nil {
		return summary, err
	}
	if err := writeFile(cfg.Output, out.Bytes()); err != nil {
		return summary, err
	}

	log.Info("conversion finished",
		slog.String("input", cfg.Input),
		slog.String("output", cfg.Output),
		slog.Int("rows", summary.Rows),
	)
	fmt.Fprintf(w, "converted %s (%s, %s lines) -> %s: %s rows, %d malformed, %d duplicate, %d unknown symbols, %d unterminated\n",
		cfg.Input, humanize.Bytes(uint64(summary.InputBytes)), humanize.Comma(int64(summary.Lines)),
		cfg.Output, humanize.Comma(int64(summary.Rows)),
		summary.Malformed, summary.Duplicates, summary.UnknownTokens, summary.Unterminated)

	return summary, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
