package record

import "strings"

// IsValid is false for anything but the exact values Y and N.
func (f ImplementedFlag) IsValid() bool {
	return f == Implemented || f == NotImplemented
}

// IsImplemented is true if the check is claimed to be implemented in source.
func (r Record) IsImplemented() bool {
	return r.Implemented == Implemented
}

// IsUnimplementedImplicit reports checks that are not claimed as implemented but noted as implicit.
func (r Record) IsUnimplementedImplicit() bool {
	return !r.IsImplemented() && strings.Contains(r.Note, implicitMarker)
}

// HasTests is false if the test field holds one of the sentinels (case-insensitive).
func (r Record) HasTests() bool {
	switch strings.ToLower(r.TestNames) {
	case unknownTest, noTest, notTestable:
		return false
	}
	return true
}

// Tests splits the test field into names. Records without tests (see HasTests) yield nil.
func (r Record) Tests() []string {
	if !r.HasTests() {
		return nil
	}
	names := strings.Split(r.TestNames, testNameDivider)
	for i, name := range names {
		names[i] = strings.TrimSpace(name)
	}
	return names
}
