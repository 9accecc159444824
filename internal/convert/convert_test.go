// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/moby-ipa/internal/dictionary"
	"github.com/pdiddy/moby-ipa/pkg/types"
)

// fakeConverter implements Converter for testing. It echoes the raw key and
// encoding so tests can check ordering without the symbol table.
type fakeConverter struct {
	calls int
}

func (f *fakeConverter) Row(e types.Entry) types.Row {
	f.calls++
	return types.Row{Word: e.Key, IPA: e.Encoding}
}

// writeInput writes content to a Latin-1 input file and returns its path.
func writeInput(t *testing.T, dir string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, "mobypron.unc")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestRows(t *testing.T) {
	conv := &fakeConverter{}
	entries := []types.Entry{{Key: "b", Encoding: "2"}, {Key: "a", Encoding: "1"}}

	rows := Rows(conv, entries)

	assert.Equal(t, 2, conv.calls)
	assert.Equal(t, []types.Row{{Word: "b", IPA: "2"}, {Word: "a", IPA: "1"}}, rows)
}

func TestRun(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeInput(t, tmpDir, []byte(
		"venerate/v/ 'v/E/n/@/,r/eI/t\n"+
			"alpha/n/ &l/f/@\n"+
			"can_not/v/ k/&/n_n/A/t\n"+
			"caf\xe9 k/&/'f/eI/\n"))
	output := filepath.Join(tmpDir, "out", "word_to_ipa.csv")

	var logBuf, out bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logBuf, nil))

	summary, err := Run(types.ConvertConfig{Input: input, Output: output}, log, &out)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Rows)
	assert.Equal(t, 2, summary.UnknownTokens)
	assert.True(t, summary.HasWarnings())
	assert.Contains(t, out.String(), "4 rows")
	assert.Contains(t, logBuf.String(), "word=alpha/n/")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	want := "\"venerate\",\"ˈvɛnəˌreɪt\",\"v\"\n" +
		"\"alpha\",\"?l?ə\",\"n\"\n" +
		"\"can not\",\"kæn nɑt\",\"v\"\n" +
		"\"café\",\"kæˈfeɪ\",\"\"\n"
	assert.Equal(t, want, string(data))
}

func TestRunIsIdempotent(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeInput(t, tmpDir, []byte("b b/&/t\na /eI/\nb b/O/t\n"))
	output := filepath.Join(tmpDir, "word_to_ipa.csv")
	cfg := types.ConvertConfig{Input: input, Output: output}

	_, err := Run(cfg, nil, &bytes.Buffer{})
	require.NoError(t, err)
	first, err := os.ReadFile(output)
	require.NoError(t, err)

	_, err = Run(cfg, nil, &bytes.Buffer{})
	require.NoError(t, err)
	second, err := os.ReadFile(output)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// Duplicate "b" keeps its first position with the last encoding.
	assert.Equal(t, "\"b\",\"bɔt\",\"\"\n\"a\",\"eɪ\",\"\"\n", string(first))
}

func TestRunMalformedLinePolicy(t *testing.T) {
	tests := []struct {
		name    string
		strict  bool
		wantErr bool
	}{
		{"skip and warn", false, false},
		{"strict aborts", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			input := writeInput(t, tmpDir, []byte("cat k/&/t\nbroken\n"))
			output := filepath.Join(tmpDir, "out.csv")

			summary, err := Run(types.ConvertConfig{Input: input, Output: output, Strict: tt.strict}, nil, &bytes.Buffer{})
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, dictionary.ErrMalformedLine)
				_, statErr := os.Stat(output)
				assert.True(t, os.IsNotExist(statErr), "no output on abort")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, summary.Malformed)
			assert.Equal(t, 1, summary.Rows)
		})
	}
}

func TestRunFormats(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeInput(t, tmpDir, []byte("cat k/&/t\n"))

	for _, format := range []types.OutputFormat{types.FormatYAML, types.FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			output := filepath.Join(tmpDir, "out."+string(format))
			_, err := Run(types.ConvertConfig{Input: input, Output: output, Format: format}, nil, &bytes.Buffer{})
			require.NoError(t, err)

			data, err := os.ReadFile(output)
			require.NoError(t, err)
			assert.Contains(t, string(data), "kæt")
		})
	}
}

func TestRunErrors(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeInput(t, tmpDir, []byte("cat k/&/t\n"))
	output := filepath.Join(tmpDir, "out.csv")

	tests := []struct {
		name    string
		cfg     types.ConvertConfig
		wantMsg string
	}{
		{"missing input", types.ConvertConfig{Input: filepath.Join(tmpDir, "nope"), Output: output}, "reading input"},
		{"bad charset", types.ConvertConfig{Input: input, Output: output, Encoding: "klingon"}, "charset"},
		{"bad format", types.ConvertConfig{Input: input, Output: output, Format: "xml"}, "unsupported format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(tt.cfg, nil, &bytes.Buffer{})
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantMsg), "error %q", err)
		})
	}
}

func TestLoadDoesNotWrite(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeInput(t, tmpDir, []byte("cat k/&/t\ndog d/O/g\n"))
	output := filepath.Join(tmpDir, "never.csv")

	rows, summary, err := Load(types.ConvertConfig{Input: input, Output: output}, nil)
	require.NoError(t, err)

	assert.Equal(t, []types.Row{{Word: "cat", IPA: "kæt"}, {Word: "dog", IPA: "dɔg"}}, rows)
	assert.Equal(t, int64(20), summary.InputBytes)
	assert.False(t, summary.HasWarnings())
	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}
