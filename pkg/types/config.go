// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects the serialization of the converted table.
type OutputFormat string

const (
	// FormatCSV writes quoted, comma-separated records: "word","ipa","pos".
	FormatCSV  OutputFormat = "csv"
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
)

// Default paths and encoding for a conversion run.
const (
	DefaultInput    = "data/mobypron.unc"
	DefaultOutput   = "data/word_to_ipa.csv"
	DefaultEncoding = "ISO-8859-1"
	DefaultDB       = "data/pronunciations.db"
)

// LogConfig controls diagnostic output.
type LogConfig struct {
	// Level is one of debug, info, warn, error (case-insensitive). Default info.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "text" (default) or "json".
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// ConvertConfig holds settings for a dictionary conversion run.
type ConvertConfig struct {
	// Input is the path of the Moby pronunciation file.
	Input string `json:"input" yaml:"input" mapstructure:"input"`

	// Output is the path of the converted table.
	Output string `json:"output" yaml:"output" mapstructure:"output"`

	// Encoding is the IANA charset name of the input (default ISO-8859-1).
	Encoding string `json:"encoding" yaml:"encoding" mapstructure:"encoding"`

	// Format selects csv, yaml, or json output.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	// Strict aborts the run on the first malformed line instead of
	// skipping it with a warning.
	Strict bool `json:"strict" yaml:"strict" mapstructure:"strict"`
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c ConvertConfig) WithDefaults() ConvertConfig {
	if c.Input == "" {
		c.Input = DefaultInput
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Encoding == "" {
		c.Encoding = DefaultEncoding
	}
	if c.Format == "" {
		c.Format = FormatCSV
	}
	return c
}

// StoreConfig holds settings for the pronunciation store.
type StoreConfig struct {
	// DB is the path of the SQLite database file.
	DB string `json:"db" yaml:"db" mapstructure:"db"`

	// MaxResults limits lookup results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}
