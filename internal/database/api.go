package database

import (
	"github.com/n2code/vuidcheck/internal/record"
	"go.uber.org/zap"
)

// Api is a read-only view of a loaded validation error database.
type Api interface {
	// LoadFromLocalFile replaces all records with the contents of the given database file.
	// Malformed lines are skipped and returned as format errors, err is reserved for I/O failures.
	LoadFromLocalFile(path string) (formatErrors []*record.FormatError, err error)
	// Count is the number of distinct identifiers loaded.
	Count() int
	Identifiers() map[record.Identifier]struct{}
	// Implemented holds the identifiers whose flag is exactly Y.
	Implemented() map[record.Identifier]struct{}
	// UnimplementedImplicit holds unimplemented identifiers whose note marks them as implicitly checked.
	UnimplementedImplicit() map[record.Identifier]struct{}
	// InvalidFlags maps identifiers to flags that are neither Y nor N.
	InvalidFlags() map[record.Identifier]record.ImplementedFlag
	// IdentifierToTests lists the claimed tests per identifier, omitting records without tests.
	IdentifierToTests() map[record.Identifier][]string
	// File is the path of the last loaded database file.
	File() string
}

// MakeRuntimeDatabase creates an empty in-memory database. A nil logger discards diagnostics.
func MakeRuntimeDatabase(logger *zap.Logger) Api {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &database{
		records: make(map[record.Identifier]record.Record),
		log:     logger,
	}
}
