// Package reconcile compares the identifier sets of database, specification, source and tests.
// It performs no I/O.
package reconcile

import (
	"sort"

	"github.com/n2code/vuidcheck/internal/record"
	"github.com/n2code/vuidcheck/internal/source"
	"github.com/n2code/vuidcheck/internal/testindex"
	"github.com/n2code/vuidcheck/internal/vuid"
)

// RecordStore is the part of the database a reconciliation reads.
type RecordStore interface {
	Count() int
	Identifiers() map[record.Identifier]struct{}
	Implemented() map[record.Identifier]struct{}
	UnimplementedImplicit() map[record.Identifier]struct{}
	InvalidFlags() map[record.Identifier]record.ImplementedFlag
	IdentifierToTests() map[record.Identifier][]string
}

// Inputs are the loaded artifacts to compare.
type Inputs struct {
	Database RecordStore
	Spec     map[record.Identifier]struct{}
	Source   *source.Occurrences
	Tests    testindex.Index
}

// Options tune which findings are reported.
type Options struct {
	// AllowedDuplicates are identifiers legitimately used at several locations, quoted or bare.
	AllowedDuplicates []string
}

// Reconcile runs every comparison, none of them short-circuits the others.
func Reconcile(in Inputs, options Options) (report Report) {
	implemented := in.Database.Implemented()
	known := in.Database.Identifiers()
	identifierToTests := in.Database.IdentifierToTests()
	used := in.Source.Identifiers()

	report.Statistics = Statistics{
		Records:               in.Database.Count(),
		Implemented:           len(implemented),
		UnimplementedImplicit: len(in.Database.UnimplementedImplicit()),
		WithTests:             len(identifierToTests),
		SpecIdentifiers:       len(in.Spec),
		SourceIdentifiers:     in.Source.Unique(),
		SourceRepeated:        in.Source.Repeated(),
		TestIdentifiers:       in.Tests.Unique(),
	}

	for id, flag := range in.Database.InvalidFlags() {
		report.InvalidFlags = append(report.InvalidFlags, InvalidFlag{Identifier: id, Flag: flag})
	}
	sort.Slice(report.InvalidFlags, func(i, j int) bool {
		return report.InvalidFlags[i].Identifier < report.InvalidFlags[j].Identifier
	})

	report.MissingFromDatabase = difference(in.Spec, known)
	report.MissingFromSpec = difference(known, in.Spec)
	report.ImplementedNotFound = difference(implemented, used)
	report.FoundNotClaimed = difference(used, implemented)

	allowed := make(map[record.Identifier]struct{}, len(options.AllowedDuplicates))
	for _, entry := range options.AllowedDuplicates {
		allowed[vuid.Canonicalize(entry)] = struct{}{}
	}
	for _, id := range in.Source.Sorted() {
		if _, ok := allowed[id]; ok || in.Source.Count(id) < 2 {
			continue
		}
		report.Duplicates = append(report.Duplicates, Duplicate{Identifier: id, Locations: in.Source.Locations(id)})
	}

	unchecked := make(map[string][]record.Identifier)
	for _, id := range sortedKeys(identifierToTests) {
		for _, test := range identifierToTests[id] {
			switch {
			case !in.Tests.Has(test):
				report.BadTestNames = append(report.BadTestNames, BadTestName{Test: test, Identifier: id})
			case !in.Tests.References(test, id):
				unchecked[test] = append(unchecked[test], id)
			}
		}
	}
	sort.SliceStable(report.BadTestNames, func(i, j int) bool {
		return report.BadTestNames[i].Test < report.BadTestNames[j].Test
	})
	for _, test := range sortedKeys(unchecked) {
		report.TestsMissingIdentifier = append(report.TestsMissingIdentifier, UncheckedIdentifiers{Test: test, Identifiers: unchecked[test]})
	}
	return
}

// difference lists the members of a which are not in b, sorted.
func difference(a map[record.Identifier]struct{}, b map[record.Identifier]struct{}) (onlyInA []record.Identifier) {
	for id := range a {
		if _, found := b[id]; !found {
			onlyInA = append(onlyInA, id)
		}
	}
	sort.Slice(onlyInA, func(i, j int) bool { return onlyInA[i] < onlyInA[j] })
	return
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
