package vuid

import (
	"strings"
	"unicode"
)

// Reflow rejoins identifier literals that a formatter broke across two physical lines:
//
//	"VUID-vkCmdDraw-"
//	    "None-00001"
//
// It carries a pending fragment from one line to the next and must not be shared between files.
// The zero value is ready to use.
type Reflow struct {
	pending    string
	hasPending bool
}

// Feed takes the next physical line and returns the logical line to process.
// If complete is false the line ends in a broken identifier and was retained; nothing must be extracted from it.
func (r *Reflow) Feed(line string) (logical string, complete bool) {
	if r.hasPending {
		line = r.pending + strings.TrimPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), `"`)
		r.pending, r.hasPending = "", false
	}
	if endsWithBrokenIdentifier(line) {
		r.pending = strings.TrimSuffix(strings.TrimRightFunc(line, unicode.IsSpace), `"`)
		r.hasPending = true
		return "", false
	}
	return line, true
}

// Pending reports whether a fragment is waiting for its continuation.
// At the end of a file such a fragment is dropped.
func (r *Reflow) Pending() bool {
	return r.hasPending
}

// Reset drops a pending fragment. Call it at the end of every file.
func (r *Reflow) Reset() {
	r.pending, r.hasPending = "", false
}
