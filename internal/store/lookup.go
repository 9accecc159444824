// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/moby-ipa/pkg/types"
)

// LookupOptions holds parameters for pronunciation queries.
type LookupOptions struct {
	// Word matches the cleaned word exactly, or as a prefix when Prefix is set.
	Word string

	// Prefix switches Word to prefix matching.
	Prefix bool

	// PartOfSpeech filters by tag.
	PartOfSpeech string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no terms or filters.
func (o LookupOptions) IsEmpty() bool {
	return o.Word == "" && o.PartOfSpeech == ""
}

// Lookup returns stored rows matching opts in source then file order.
func (s *Store) Lookup(ctx context.Context, opts LookupOptions) ([]types.Row, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT word, ipa, part_of_speech FROM pronunciations WHERE 1=1`)

	if opts.Word != "" {
		if opts.Prefix {
			qb.WriteString(` AND word LIKE ? ESCAPE '\'`)
			args = append(args, escapeLike(opts.Word)+"%")
		} else {
			qb.WriteString(` AND word = ?`)
			args = append(args, opts.Word)
		}
	}
	if opts.PartOfSpeech != "" {
		qb.WriteString(` AND part_of_speech = ?`)
		args = append(args, opts.PartOfSpeech)
	}

	qb.WriteString(` ORDER BY source, position LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying pronunciations: %w", err)
	}
	defer rows.Close()

	var results []types.Row
	for rows.Next() {
		var r types.Row
		if err := rows.Scan(&r.Word, &r.IPA, &r.PartOfSpeech); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
