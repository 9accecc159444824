// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package moby transliterates Moby pronunciation notation into IPA.
// A Moby pronunciation is a run of single-character symbols and
// "/.../"-delimited escape sequences; each is looked up in a fixed symbol
// table and the IPA renderings are concatenated.
package moby

import "strings"

// escape delimits multi-character Moby symbols, e.g. "/eI/".
const escape = '/'

// Token is one atomic Moby symbol: a single character or a complete escape
// sequence including both delimiters.
type Token string

// IsEscape reports whether t is a "/.../" escape sequence.
func (t Token) IsEscape() bool {
	return len(t) >= 2 && t[0] == escape && t[len(t)-1] == escape
}

// Tokenize splits encoded into tokens in a single left-to-right scan. The
// tokens concatenate back to encoded, except that an escape still open at the
// end of the input is not emitted; it is returned as unterminated instead.
func Tokenize(encoded string) (tokens []Token, unterminated string) {
	var (
		inEscape bool
		buf      strings.Builder
	)

	for _, r := range encoded {
		switch {
		case !inEscape && r != escape:
			tokens = append(tokens, Token(string(r)))
		case !inEscape:
			inEscape = true
			buf.WriteRune(r)
		default:
			buf.WriteRune(r)
			if r == escape {
				tokens = append(tokens, Token(buf.String()))
				buf.Reset()
				inEscape = false
			}
		}
	}

	return tokens, buf.String()
}
