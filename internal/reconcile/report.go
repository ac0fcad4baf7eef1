package reconcile

import (
	"github.com/n2code/vuidcheck/internal/record"
	"github.com/n2code/vuidcheck/internal/source"
)

// InvalidFlag is a database record whose implemented field is neither Y nor N.
type InvalidFlag struct {
	Identifier record.Identifier
	Flag       record.ImplementedFlag
}

// Duplicate is an identifier used at more than one location in source.
type Duplicate struct {
	Identifier record.Identifier
	Locations  []source.Occurrence
}

// BadTestName is a test claimed by the database for an identifier but not declared in any test file.
type BadTestName struct {
	Test       string
	Identifier record.Identifier
}

// UncheckedIdentifiers lists the identifiers a test is claimed to cover but never references.
type UncheckedIdentifiers struct {
	Test        string
	Identifiers []record.Identifier
}

// Statistics are the counts behind the verbose summary.
type Statistics struct {
	Records               int
	Implemented           int
	UnimplementedImplicit int
	WithTests             int
	SpecIdentifiers       int
	SourceIdentifiers     int
	SourceRepeated        int
	TestIdentifiers       int
}

// Report is the outcome of a consistency check. All lists are sorted.
type Report struct {
	Statistics Statistics

	InvalidFlags        []InvalidFlag
	MissingFromDatabase []record.Identifier //declared by the specification only
	MissingFromSpec     []record.Identifier //listed in the database only
	ImplementedNotFound []record.Identifier //claimed implemented but absent from source
	FoundNotClaimed     []record.Identifier //present in source but not claimed implemented
	BadTestNames        []BadTestName

	//advisory
	Duplicates             []Duplicate
	TestsMissingIdentifier []UncheckedIdentifiers
}

// DatabaseMatchesSpec is true if database and specification list the same identifiers.
func (r Report) DatabaseMatchesSpec() bool {
	return len(r.MissingFromDatabase) == 0 && len(r.MissingFromSpec) == 0
}

// SourceMatchesDatabase is true if exactly the identifiers claimed implemented were found in source.
func (r Report) SourceMatchesDatabase() bool {
	return len(r.ImplementedNotFound) == 0 && len(r.FoundNotClaimed) == 0
}

// Failed is true if any hard inconsistency was found. Advisories never fail a report.
func (r Report) Failed() bool {
	return len(r.InvalidFlags) > 0 ||
		!r.DatabaseMatchesSpec() ||
		!r.SourceMatchesDatabase() ||
		len(r.BadTestNames) > 0
}
