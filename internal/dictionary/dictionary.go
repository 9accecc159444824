// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dictionary reads Moby pronunciation files and writes converted
// pronunciation tables.
package dictionary

import "github.com/pdiddy/moby-ipa/pkg/types"

// Dictionary maps raw word keys to Moby encodings and remembers the order in
// which keys were first seen. Setting an existing key replaces its encoding
// but keeps its position.
type Dictionary struct {
	keys   []string
	values map[string]string
}

// New returns an empty Dictionary.
func New() *Dictionary {
	return &Dictionary{values: make(map[string]string)}
}

// Set stores encoding under key and reports whether an earlier value was
// replaced.
func (d *Dictionary) Set(key, encoding string) bool {
	_, replaced := d.values[key]
	if !replaced {
		d.keys = append(d.keys, key)
	}
	d.values[key] = encoding
	return replaced
}

// Get returns the encoding stored under key.
func (d *Dictionary) Get(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Len returns the number of distinct keys.
func (d *Dictionary) Len() int {
	return len(d.keys)
}

// Entries returns the entries in first-seen key order.
func (d *Dictionary) Entries() []types.Entry {
	entries := make([]types.Entry, len(d.keys))
	for i, k := range d.keys {
		entries[i] = types.Entry{Key: k, Encoding: d.values[k]}
	}
	return entries
}
