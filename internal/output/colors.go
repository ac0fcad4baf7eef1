package output

// SgrModifier is a terminal escape sequence (Select Graphic Rendition).
// The Printer drops modifiers when escapes are not allowed.
type SgrModifier string

const (
	Reset  SgrModifier = "\x1B[0m"
	Dim    SgrModifier = "\x1B[2m"
	Red    SgrModifier = "\x1B[0;31m"
	Green  SgrModifier = "\x1B[0;32m"
	Yellow SgrModifier = "\x1B[1;33m"
)

func (m SgrModifier) String() string {
	return string(m)
}
