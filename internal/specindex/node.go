package specindex

// Kind is the shape of a Node.
type Kind int

const (
	Scalar Kind = iota
	Object
	Array
)

// Node is one value of a structured document. Exactly one group of fields is meaningful depending on Kind.
type Node struct {
	Kind     Kind
	Value    string  //Scalar: textual value
	Null     bool    //Scalar: explicit null
	Entries  []Entry //Object: entries in document order
	Elements []*Node //Array
}

// Entry is one key of an object.
type Entry struct {
	Key   string
	Value *Node
}

// IsEmpty is true for null, the empty string, empty objects and empty arrays.
func (n *Node) IsEmpty() bool {
	if n == nil {
		return true
	}
	switch n.Kind {
	case Object:
		return len(n.Entries) == 0
	case Array:
		return len(n.Elements) == 0
	default:
		return n.Null || n.Value == ""
	}
}
