package output

import (
	"strings"

	"github.com/disiqueira/gotree/v3"
)

// VisualTree renders labelled paths as an indented tree, sharing common path prefixes.
type VisualTree struct {
	tree  gotree.Tree
	nodes map[string]gotree.Tree
}

const pathKeySeparator = "\x00"

// NewVisualTree creates a tree with only the root label.
func NewVisualTree(rootLabel string) VisualTree {
	return VisualTree{tree: gotree.New(rootLabel), nodes: make(map[string]gotree.Tree)}
}

func (t VisualTree) getNode(labels []string) (node gotree.Tree) {
	if len(labels) == 0 {
		return t.tree
	}
	key := strings.Join(labels, pathKeySeparator)
	node = t.nodes[key]
	if node == nil {
		parent := t.getNode(labels[:len(labels)-1])
		node = parent.Add(labels[len(labels)-1])
		t.nodes[key] = node
	}
	return
}

// InsertPath adds the chain of labels below the root, reusing already present intermediate nodes.
// The final label is always added as a new leaf.
func (t VisualTree) InsertPath(labels ...string) {
	if len(labels) == 0 {
		return
	}
	parent := t.getNode(labels[:len(labels)-1])
	parent.Add(labels[len(labels)-1])
}

// Render draws the tree with box characters, one node per line.
func (t VisualTree) Render() string {
	return t.tree.Print()
}
