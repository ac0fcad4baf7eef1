package database

import "github.com/n2code/vuidcheck/internal/record"

func (db *database) Count() int {
	return len(db.records)
}

func (db *database) File() string {
	return db.file
}

func (db *database) Identifiers() map[record.Identifier]struct{} {
	return db.selectIdentifiers(func(record.Record) bool { return true })
}

func (db *database) Implemented() map[record.Identifier]struct{} {
	return db.selectIdentifiers(record.Record.IsImplemented)
}

func (db *database) UnimplementedImplicit() map[record.Identifier]struct{} {
	return db.selectIdentifiers(record.Record.IsUnimplementedImplicit)
}

func (db *database) InvalidFlags() map[record.Identifier]record.ImplementedFlag {
	invalid := make(map[record.Identifier]record.ImplementedFlag)
	for id, rec := range db.records {
		if !rec.Implemented.IsValid() {
			invalid[id] = rec.Implemented
		}
	}
	return invalid
}

func (db *database) IdentifierToTests() map[record.Identifier][]string {
	tests := make(map[record.Identifier][]string)
	for id, rec := range db.records {
		if names := rec.Tests(); names != nil {
			tests[id] = names
		}
	}
	return tests
}

func (db *database) selectIdentifiers(include func(record.Record) bool) map[record.Identifier]struct{} {
	selection := make(map[record.Identifier]struct{})
	for id, rec := range db.records {
		if include(rec) {
			selection[id] = struct{}{}
		}
	}
	return selection
}
