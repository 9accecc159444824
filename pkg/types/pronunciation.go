// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Entry is one line of a Moby pronunciation file: the raw word key and its
// encoded pronunciation, split at the first space.
type Entry struct {
	// Key is the raw word as it appears in the source, including any
	// part-of-speech suffix (e.g. "venerate/v/") and underscores for spaces.
	Key string `json:"key" yaml:"key"`

	// Encoding is the Moby-notation pronunciation (e.g. "'vEn/@/,r/eI/t").
	Encoding string `json:"encoding" yaml:"encoding"`
}

// Row is one converted record of the output table.
type Row struct {
	// Word is the key with the part-of-speech suffix removed and underscores
	// replaced by spaces.
	Word string `json:"word" yaml:"word"`

	// IPA is the concatenated IPA rendering of every Moby token.
	IPA string `json:"ipa" yaml:"ipa"`

	// PartOfSpeech is the key's "/.../" suffix with slashes stripped, or empty.
	PartOfSpeech string `json:"part_of_speech" yaml:"part_of_speech"`
}

// Symbol pairs a Moby token with its IPA rendering.
type Symbol struct {
	Moby string `json:"moby" yaml:"moby"`
	IPA  string `json:"ipa" yaml:"ipa"`
}
