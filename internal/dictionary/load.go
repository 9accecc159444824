// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dictionary

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// ErrMalformedLine marks a non-blank line with no space between key and
// encoding.
var ErrMalformedLine = errors.New("malformed line")

// LoadOptions controls how a pronunciation file is parsed.
type LoadOptions struct {
	// Strict makes Load fail on the first malformed line. Otherwise the
	// line is skipped and logged.
	Strict bool

	// Log receives malformed-line and duplicate-key diagnostics. Nil
	// discards them.
	Log *slog.Logger
}

// LoadStats holds counts from parsing one pronunciation file.
type LoadStats struct {
	Lines      int
	Blank      int
	Malformed  int
	Duplicates int
}

// Decode wraps r so that it yields UTF-8 text decoded from the named IANA
// charset (e.g. "ISO-8859-1", "UTF-8").
func Decode(r io.Reader, charset string) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return nil, fmt.Errorf("looking up charset %q: %w", charset, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("charset %q is not supported", charset)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// Load reads the whole of r and parses one entry per line. Each line is
// split at its first space into a raw key and a Moby encoding. A repeated
// key overwrites the earlier encoding. Blank lines are ignored.
func Load(r io.Reader, opts LoadOptions) (*Dictionary, LoadStats, error) {
	log := opts.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("reading dictionary: %w", err)
	}

	var (
		stats LoadStats
		dict  = New()
	)

	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return dict, stats, nil
	}

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			stats.Blank++
			continue
		}
		stats.Lines++

		entry, err := parseLine(line)
		if err != nil {
			if opts.Strict {
				return nil, stats, fmt.Errorf("line %d: %w", i+1, err)
			}
			stats.Malformed++
			log.Warn("skipping malformed line",
				slog.Int("line", i+1),
				slog.String("text", line),
			)
			continue
		}

		if dict.Set(entry.key, entry.encoding) {
			stats.Duplicates++
			log.Debug("duplicate key replaced",
				slog.Int("line", i+1),
				slog.String("word", entry.key),
			)
		}
	}

	return dict, stats, nil
}

type rawEntry struct {
	key, encoding string
}

func parseLine(line string) (rawEntry, error) {
	key, encoding, found := strings.Cut(line, " ")
	if !found {
		return rawEntry{}, fmt.Errorf("%w: no space separator in %q", ErrMalformedLine, line)
	}
	return rawEntry{key: key, encoding: encoding}, nil
}
