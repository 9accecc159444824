// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/moby-ipa/internal/dictionary"
	"github.com/pdiddy/moby-ipa/pkg/types"
)

const exportLimit = 1 << 30

// Export writes the rows matching opts to path in the given format. An empty
// opts exports every row.
func (s *Store) Export(ctx context.Context, path string, format types.OutputFormat, opts LookupOptions) (int, error) {
	opts.MaxResults = exportLimit
	rows, err := s.Lookup(ctx, opts)
	if err != nil {
		return 0, fmt.Errorf("querying for export: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("creating export directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := dictionary.Write(f, rows, format); err != nil {
		return 0, err
	}
	return len(rows), f.Close()
}
