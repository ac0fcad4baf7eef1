// Package vuid locates VUID string literals in source text, including literals that a code formatter split across two lines.
package vuid

import (
	"strings"

	"github.com/n2code/vuidcheck/internal/record"
)

const (
	// Prefix starts every identifier.
	Prefix = "VUID-"
	// Marker is an opening quote followed by Prefix, i.e. the start of an identifier string literal.
	Marker = `"` + Prefix
	// brokenSuffix ends a literal the formatter cut after a dash.
	brokenSuffix = `-"`
	// boundaryCharacters are stripped from both ends of a token to obtain the identifier.
	boundaryCharacters = `,;(){}"`
)

var commentOpeners = []string{"//", "/*"}

// Canonicalize strips the enumerated boundary characters (comma, semicolon, parentheses, braces, quote) from both ends of a token.
func Canonicalize(token string) record.Identifier {
	return record.Identifier(strings.Trim(token, boundaryCharacters))
}

// ContainsMarker is a cheap pre-filter for Extract.
func ContainsMarker(line string) bool {
	return strings.Contains(line, Marker)
}

// Extract returns all identifiers referenced by whitespace-delimited tokens containing the marker, in line order.
func Extract(line string) (ids []record.Identifier) {
	if !ContainsMarker(line) {
		return nil
	}
	for _, token := range strings.Fields(line) {
		if strings.Contains(token, Marker) {
			ids = append(ids, Canonicalize(token))
		}
	}
	return
}

// IsCommentLine reports whether the line starts with a comment opener after trimming. Trailing comments are not detected.
func IsCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, opener := range commentOpeners {
		if strings.HasPrefix(trimmed, opener) {
			return true
		}
	}
	return false
}

// endsWithBrokenIdentifier is true if the last token is an identifier literal which was cut off after a dash.
func endsWithBrokenIdentifier(line string) bool {
	if !ContainsMarker(line) {
		return false
	}
	tokens := strings.Fields(line)
	last := tokens[len(tokens)-1]
	return strings.HasPrefix(last, Marker) && strings.HasSuffix(last, brokenSuffix)
}
