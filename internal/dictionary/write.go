// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dictionary

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/moby-ipa/pkg/types"
)

// ParseFormat validates an output format name. Empty selects csv.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return types.FormatCSV, nil
	case types.FormatCSV, types.FormatYAML, types.FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use csv, yaml, or json", s)
	}
}

// Write serializes rows to w in the given format, preserving row order.
func Write(w io.Writer, rows []types.Row, format types.OutputFormat) error {
	switch format {
	case types.FormatCSV, "":
		return writeCSV(w, rows)
	case types.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case types.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// writeCSV emits one `"word","ipa","pos"` record per row. Fields are quoted
// but embedded quotes and commas are written as is.
func writeCSV(w io.Writer, rows []types.Row) error {
	bw := bufio.NewWriter(w)
	for _, r := range rows {
		if _, err := fmt.Fprintf(bw, "\"%s\",\"%s\",\"%s\"\n", r.Word, r.IPA, r.PartOfSpeech); err != nil {
			return fmt.Errorf("writing row %q: %w", r.Word, err)
		}
	}
	return bw.Flush()
}
