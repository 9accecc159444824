// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package moby

import (
	"sort"

	"github.com/pdiddy/moby-ipa/pkg/types"
)

// Unknown is the rendering of a token missing from the symbol table.
const Unknown = "?"

// symbols maps Moby tokens, bare or "/.../" escaped, to IPA. Lookup is case
// sensitive. The map is never written after package initialization.
var symbols = map[string]string{
	// Vowels.
	"/&/":   "æ",
	"/(@)/": "ɛ",
	"/[@]/": "ɛ",
	"/A/":   "ɑ",
	"/eI/":  "eɪ",
	"/@/":   "ə",
	"@":     "ə",
	"/-/":   "ə",
	"/E/":   "ɛ",
	"i":     "i",
	"/i/":   "i",
	"/I/":   "ɪ",
	"/aI/":  "aɪ",
	"/Oi/":  "ɔɪ",
	"/AU/":  "aʊ",
	"/O/":   "ɔ",
	"O":     "ɔ",
	"o":     "ɔ",
	"/oU/":  "oʊ",
	"u":     "u",
	"/u/":   "u",
	"/U/":   "ʊ",
	"/@r/":  "ɜr",
	"A":     "ɑ",
	"/y/":   "u",
	"Y":     "u",
	"/ju/":  "ju",
	"a":     "æ",
	"e":     "ɛ",
	"U":     "ʌ",
	"/Ou/":  "ɔ",
	"0":     "œ",
	"/OE/":  "œ",
	"3":     "ɜ",

	// Consonants.
	"b":    "b",
	"/b/":  "b",
	"/tS/": "ʧ",
	"d":    "d",
	"/d/":  "d",
	"f":    "f",
	"g":    "g",
	"h":    "h",
	"/hw/": "w",
	"/dZ/": "ʤ",
	"k":    "k",
	"l":    "l",
	"m":    "m",
	"/N/":  "ŋ",
	"n":    "n",
	"p":    "p",
	"r":    "r",
	"/S/":  "ʃ",
	"s":    "s",
	"/T/":  "θ",
	"/D/":  "ð",
	"t":    "t",
	"v":    "v",
	"V":    "v",
	"w":    "w",
	"j":    "j",
	"/j/":  "j",
	"/Z/":  "ʒ",
	"z":    "z",
	"N":    "n",
	"R":    "r",
	"/x/":  "k",
	"/z/":  "z",
	"c":    "s",
	"W":    "w",
	"Z":    "ʐ",
	"S":    "s",
	"x":    "x",

	// Stress and separators.
	"'": "ˈ", // primary stress
	",": "ˌ", // secondary stress
	"_": " ",
	" ": " ",
	"-": " ",
}

// Lookup returns the IPA rendering of a Moby token and whether the token is
// in the table.
func Lookup(token Token) (string, bool) {
	ipa, ok := symbols[string(token)]
	return ipa, ok
}

// Symbols returns a copy of the symbol table sorted by Moby token.
func Symbols() []types.Symbol {
	out := make([]types.Symbol, 0, len(symbols))
	for moby, ipa := range symbols {
		out = append(out, types.Symbol{Moby: moby, IPA: ipa})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Moby < out[j].Moby })
	return out
}
