package output

import (
	"fmt"
	"io"
)

// Class decides whether and where a printed line appears.
type Class int

const (
	Required Class = iota //pass/fail summary and hard failures, always shown
	Error                 //diagnosis, goes to the diagnosis writer
	Normal                //context that is shown by default
	Verbose               //statistics and advisories
)

// Printer writes the classes it was created with and silently drops all others.
type Printer struct {
	classes    map[Class]bool
	terminal   io.Writer
	diagnosis  io.Writer
	useEscapes bool
}

// NewPrinterTo creates a printer for the given classes. Error output goes to diagnosis, everything else to terminal.
func NewPrinterTo(include []Class, allowEscapes bool, terminal io.Writer, diagnosis io.Writer) (p Printer) {
	p = Printer{
		classes:    map[Class]bool{},
		terminal:   terminal,
		diagnosis:  diagnosis,
		useEscapes: allowEscapes,
	}
	for _, class := range include {
		p.classes[class] = true
	}
	return
}

// Includes reports whether output of the class is shown at all.
func (p Printer) Includes(class Class) bool {
	return p.classes[class]
}

// Out formats like Sprintf and writes to the writer of the class.
func (p Printer) Out(class Class, format string, values ...interface{}) {
	if !p.classes[class] {
		return
	}
	target := &p.terminal
	if class == Error {
		target = &p.diagnosis
	}
	fmt.Fprint(*target, p.Sprintf(format, values...))
}

// Sprintf formats like fmt.Sprintf but renders SgrModifier values as empty strings if escapes are not allowed.
func (p Printer) Sprintf(format string, values ...interface{}) string {
	if !p.useEscapes {
		filtered := make([]interface{}, len(values))
		for i, value := range values {
			if _, isModifier := value.(SgrModifier); isModifier {
				filtered[i] = ""
			} else {
				filtered[i] = value
			}
		}
		values = filtered
	}
	return fmt.Sprintf(format, values...)
}
