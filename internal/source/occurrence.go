package source

import (
	"fmt"
	"sort"

	"github.com/n2code/vuidcheck/internal/record"
)

// Occurrence is one appearance of an identifier in a scanned file.
type Occurrence struct {
	Identifier record.Identifier
	File       string
	Line       int //1-based
}

// Location renders the occurrence as "file,line".
func (o Occurrence) Location() string {
	return fmt.Sprintf("%s,%d", o.File, o.Line)
}

// Occurrences indexes all appearances by identifier, preserving scan order per identifier.
type Occurrences struct {
	byIdentifier map[record.Identifier][]Occurrence
	repeated     int //occurrences beyond the first of each identifier
}

// NewOccurrences creates an empty index.
func NewOccurrences() *Occurrences {
	return &Occurrences{byIdentifier: make(map[record.Identifier][]Occurrence)}
}

// Add records the next occurrence of its identifier.
func (o *Occurrences) Add(occurrence Occurrence) {
	if len(o.byIdentifier[occurrence.Identifier]) > 0 {
		o.repeated++
	}
	o.byIdentifier[occurrence.Identifier] = append(o.byIdentifier[occurrence.Identifier], occurrence)
}

// Count is the number of occurrences of id, zero if it was never found.
func (o *Occurrences) Count(id record.Identifier) int {
	return len(o.byIdentifier[id])
}

// Locations returns the occurrences of id in scan order.
func (o *Occurrences) Locations(id record.Identifier) []Occurrence {
	return o.byIdentifier[id]
}

// Unique is the number of distinct identifiers found.
func (o *Occurrences) Unique() int {
	return len(o.byIdentifier)
}

// Repeated is the number of occurrences beyond the first one of every identifier.
func (o *Occurrences) Repeated() int {
	return o.repeated
}

// Identifiers returns the set of distinct identifiers found.
func (o *Occurrences) Identifiers() map[record.Identifier]struct{} {
	ids := make(map[record.Identifier]struct{}, len(o.byIdentifier))
	for id := range o.byIdentifier {
		ids[id] = struct{}{}
	}
	return ids
}

// Sorted lists all identifiers in lexical order.
func (o *Occurrences) Sorted() []record.Identifier {
	ids := make([]record.Identifier, 0, len(o.byIdentifier))
	for id := range o.byIdentifier {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
