// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package moby

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pdiddy/moby-ipa/pkg/types"
)

// Stats counts diagnostics raised by a Transliterator.
type Stats struct {
	UnknownTokens int
	Unterminated  int
}

// Transliterator converts Moby strings to IPA, reporting unknown symbols and
// unterminated escapes to its logger. It is not safe for concurrent use.
type Transliterator struct {
	log   *slog.Logger
	stats Stats
}

// NewTransliterator returns a Transliterator that reports diagnostics to log.
// A nil log discards them.
func NewTransliterator(log *slog.Logger) *Transliterator {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Transliterator{log: log}
}

// Stats returns the diagnostics counted so far.
func (t *Transliterator) Stats() Stats {
	return t.stats
}

// Transliterate renders encoded as IPA. Each token is looked up in the
// symbol table and the renderings are joined with no separator. A token
// missing from the table renders as Unknown. word names the dictionary entry
// in diagnostics only.
func (t *Transliterator) Transliterate(encoded, word string) string {
	tokens, rest := Tokenize(encoded)

	var b strings.Builder
	for _, tok := range tokens {
		ipa, ok := Lookup(tok)
		if !ok {
			t.stats.UnknownTokens++
			t.log.Warn("unknown moby symbol",
				slog.String("token", string(tok)),
				slog.Bool("escape", tok.IsEscape()),
				slog.String("word", word),
			)
			ipa = Unknown
		}
		b.WriteString(ipa)
	}

	if rest != "" {
		t.stats.Unterminated++
		t.log.Warn("unterminated moby escape dropped",
			slog.String("token", rest),
			slog.String("word", word),
		)
	}

	return b.String()
}

// Row converts a dictionary entry into an output row.
func (t *Transliterator) Row(e types.Entry) types.Row {
	return types.Row{
		Word:         CleanWord(e.Key),
		IPA:          t.Transliterate(e.Encoding, e.Key),
		PartOfSpeech: PartOfSpeech(e.Key),
	}
}

// PartOfSpeech returns the tag carried by a raw dictionary key: everything
// from the first "/" to the end, with every "/" removed. Keys without a "/"
// have no tag.
func PartOfSpeech(rawKey string) string {
	_, tag, found := strings.Cut(rawKey, "/")
	if !found {
		return ""
	}
	return strings.ReplaceAll(tag, "/", "")
}

// CleanWord strips the part-of-speech suffix from a raw key and turns
// underscores into spaces: "can_not/v/" becomes "can not".
func CleanWord(rawKey string) string {
	word, _, _ := strings.Cut(rawKey, "/")
	return strings.ReplaceAll(word, "_", " ")
}
