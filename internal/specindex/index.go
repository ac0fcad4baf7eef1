// Package specindex collects all VUIDs defined by the specification's valid usage document.
package specindex

import (
	"errors"
	"fmt"
	"iter"
	"os"

	"github.com/n2code/vuidcheck/internal/record"
	"go.uber.org/zap"
)

// IdentifierKey is the object key whose values are collected anywhere in the document.
const IdentifierKey = "vuid"

var (
	ErrNotFound      = errors.New("specification document not found")
	ErrEmptyDocument = errors.New("specification document is empty")
)

type Index struct {
	file        string
	identifiers map[record.Identifier]struct{}
}

// Load reads and indexes the document at path.
func Load(path string, logger *zap.Logger) (*Index, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading specification failed: %w", err)
	}
	root, err := Decode(path, content)
	if err != nil {
		return nil, fmt.Errorf("parsing specification %s failed: %w", path, err)
	}
	if root.IsEmpty() {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDocument, path)
	}

	index := FromDocument(root)
	index.file = path
	logger.Debug("specification indexed", zap.String("file", path), zap.Int("vuids", len(index.identifiers)))
	return index, nil
}

// FromDocument builds an index of an already decoded document.
func FromDocument(root *Node) *Index {
	index := &Index{identifiers: make(map[record.Identifier]struct{})}
	for id := range ExtractIdentifiers(root) {
		index.identifiers[record.Identifier(id)] = struct{}{}
	}
	return index
}

// ExtractIdentifiers yields the value of every IdentifierKey entry in depth-first document order.
// Each iteration walks the tree again.
func ExtractIdentifiers(root *Node) iter.Seq[string] {
	return func(yield func(string) bool) {
		walk(root, yield)
	}
}

func walk(node *Node, yield func(string) bool) bool {
	if node == nil {
		return true
	}
	switch node.Kind {
	case Object:
		for _, entry := range node.Entries {
			if entry.Key == IdentifierKey {
				if entry.Value != nil && entry.Value.Kind == Scalar && !entry.Value.Null {
					if !yield(entry.Value.Value) {
						return false
					}
				}
				continue
			}
			if !walk(entry.Value, yield) {
				return false
			}
		}
	case Array:
		for _, element := range node.Elements {
			if !walk(element, yield) {
				return false
			}
		}
	}
	return true
}

// Identifiers is the set of distinct identifiers in the document.
func (i *Index) Identifiers() map[record.Identifier]struct{} {
	return i.identifiers
}

// Count is the number of distinct identifiers.
func (i *Index) Count() int {
	return len(i.identifiers)
}

// File is the path the index was loaded from, empty for FromDocument.
func (i *Index) File() string {
	return i.file
}
