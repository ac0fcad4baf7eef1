package record

import (
	"fmt"
	"strings"
)

// FormatError describes a database line that does not split into FieldCount fields.
type FormatError struct {
	File   string
	Line   int
	Fields int
	Text   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s:%d: bad database line doesn't have %d elements (found %d): %s", e.File, e.Line, FieldCount, e.Fields, e.Text)
}

// IsSkippable reports whether a trimmed database line carries no record (empty or comment).
func IsSkippable(trimmedLine string) bool {
	return trimmedLine == "" || strings.HasPrefix(trimmedLine, "#")
}

// ParseLine turns a trimmed database line into a Record.
// Positional information of a returned *FormatError is left for the caller to fill in.
func ParseLine(line string) (Record, error) {
	fields := strings.Split(line, FieldDelimiter)
	if len(fields) != FieldCount {
		return Record{}, &FormatError{Fields: len(fields), Text: line}
	}
	return Record{
		EnumName:    fields[0],
		Implemented: ImplementedFlag(fields[1]),
		TestNames:   fields[2],
		Api:         fields[3],
		Identifier:  Identifier(fields[4]),
		SpecTag:     fields[5],
		ErrorText:   fields[6],
		Note:        fields[7],
	}, nil
}
