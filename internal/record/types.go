package record

// Identifier is a VUID string such as VUID-vkCmdDraw-None-00001, the join key across all artifacts.
type Identifier string

type ImplementedFlag string

const (
	Implemented    ImplementedFlag = "Y"
	NotImplemented ImplementedFlag = "N"
)

// FieldDelimiter separates the fields of a database line.
const FieldDelimiter = "~^~"

// FieldCount is the number of fields every database line must have.
const FieldCount = 8

const (
	unknownTest     = "unknown"
	noTest          = "none"
	notTestable     = "nottestable"
	testNameDivider = ","
	implicitMarker  = "implicit"
)

// Record is one declared check of the database, never mutated after parsing.
type Record struct {
	EnumName    string
	Implemented ImplementedFlag //raw value as found in the database
	TestNames   string          //comma-joined or one of the sentinels "unknown", "none", "nottestable"
	Api         string
	Identifier  Identifier
	SpecTag     string //"core" or extension tag
	ErrorText   string
	Note        string
}
