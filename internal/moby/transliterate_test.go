// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package moby

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/moby-ipa/pkg/types"
)

func bufferLogger(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestLookup(t *testing.T) {
	tests := []struct {
		token Token
		want  string
	}{
		{"/&/", "æ"},
		{"/eI/", "eɪ"},
		{"/tS/", "ʧ"},
		{"/dZ/", "ʤ"},
		{"/N/", "ŋ"},
		{"/T/", "θ"},
		{"/D/", "ð"},
		{"/@r/", "ɜr"},
		{"/hw/", "w"},
		{"/x/", "k"},
		{"@", "ə"},
		{"'", "ˈ"},
		{",", "ˌ"},
		{"_", " "},
		{"-", " "},
		{"Z", "ʐ"},
		{"0", "œ"},
		{"3", "ɜ"},
	}

	for _, tt := range tests {
		t.Run(string(tt.token), func(t *testing.T) {
			got, ok := Lookup(tt.token)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	upper, ok := Lookup("V")
	require.True(t, ok)
	lower, ok := Lookup("v")
	require.True(t, ok)
	assert.Equal(t, "v", upper)
	assert.Equal(t, upper, lower)

	// Distinct entries, distinct renderings.
	lowerA, _ := Lookup("a")
	upperA, _ := Lookup("A")
	assert.Equal(t, "æ", lowerA)
	assert.Equal(t, "ɑ", upperA)

	_, ok = Lookup("/e/")
	assert.False(t, ok)
	_, ok = Lookup("&")
	assert.False(t, ok)
}

func TestSymbols(t *testing.T) {
	syms := Symbols()
	assert.Len(t, syms, 77)
	for i := 1; i < len(syms); i++ {
		assert.Less(t, syms[i-1].Moby, syms[i].Moby)
	}
}

func TestTransliterate(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		want    string
	}{
		{"empty", "", ""},
		{"venerate", "'v/E/n/@/,r/eI/t", "ˈvɛnəˌreɪt"},
		{"hello", "h/@/'l/oU/", "həˈloʊ"},
		{"church", "/tS//@r//tS/", "ʧɜrʧ"},
		{"compound", "k/A/r_p/@/'r/E/t", "kɑr pəˈrɛt"},
		{"V and v agree", "Vv", "vv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransliterator(nil)
			assert.Equal(t, tt.want, tr.Transliterate(tt.encoded, tt.name))
			assert.Zero(t, tr.Stats())
		})
	}
}

func TestTransliterateConcatenatesRenderings(t *testing.T) {
	tr := NewTransliterator(nil)
	for _, pair := range [][2]Token{{"b", "/eI/"}, {"'", "/oU/"}, {"/S/", "n"}} {
		a, _ := Lookup(pair[0])
		b, _ := Lookup(pair[1])
		got := tr.Transliterate(string(pair[0])+string(pair[1]), "pair")
		assert.Equal(t, a+b, got)
	}
}

func TestTransliterateUnknownSymbol(t *testing.T) {
	log, buf := bufferLogger(t)
	tr := NewTransliterator(log)

	got := tr.Transliterate("/&xyz/k", "test")

	assert.Equal(t, "?k", got)
	assert.Equal(t, 1, tr.Stats().UnknownTokens)
	assert.Contains(t, buf.String(), "unknown moby symbol")
	assert.Contains(t, buf.String(), "word=test")
	assert.Contains(t, buf.String(), "token=/&xyz/")
}

func TestTransliterateUnterminatedEscape(t *testing.T) {
	log, buf := bufferLogger(t)
	tr := NewTransliterator(log)

	got := tr.Transliterate("k/eI", "cake")

	assert.Equal(t, "k", got)
	assert.Equal(t, 1, tr.Stats().Unterminated)
	assert.Contains(t, buf.String(), "unterminated")
	assert.Contains(t, buf.String(), "word=cake")
}

func TestRowEndToEnd(t *testing.T) {
	log, buf := bufferLogger(t)
	tr := NewTransliterator(log)

	row := tr.Row(types.Entry{Key: "alpha/n/", Encoding: "&l/f/@"})

	// Bare "&" and "/f/" are not in the table.
	assert.Equal(t, types.Row{Word: "alpha", IPA: "?l?ə", PartOfSpeech: "n"}, row)
	assert.Equal(t, 2, tr.Stats().UnknownTokens)
	assert.Contains(t, buf.String(), "word=alpha/n/")
}

func TestPartOfSpeech(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"venerate/v/", "v"},
		{"cat", ""},
		{"can_not/v/", "v"},
		{"record/n/v/", "nv"},
		{"odd/", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, PartOfSpeech(tt.key))
		})
	}
}

func TestCleanWord(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"can_not/v/", "can not"},
		{"cat", "cat"},
		{"venerate/v/", "venerate"},
		{"ad_hoc", "ad hoc"},
		{"/n/", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanWord(tt.key))
		})
	}
}
