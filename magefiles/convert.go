//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Convert builds the CLI and converts data/mobypron.unc to data/word_to_ipa.csv.
func Convert() error {
	mg.Deps(Build)
	return sh.RunV("bin/moby-ipa", "convert")
}
