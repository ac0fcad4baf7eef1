package source

import (
	"fmt"
	"strings"
)

// MissingGeneratedSourceError is returned if generated files cannot be found in any candidate build directory.
type MissingGeneratedSourceError struct {
	Missing  []string
	Searched []string
}

func (e *MissingGeneratedSourceError) Error() string {
	return fmt.Sprintf("unable to locate generated source %s in any of the directories %s",
		strings.Join(e.Missing, ", "), strings.Join(e.Searched, ", "))
}
