// Package testindex correlates test declarations in test sources with the VUIDs referenced in their bodies.
package testindex

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/n2code/vuidcheck/internal/record"
	"github.com/n2code/vuidcheck/internal/vuid"
	"go.uber.org/zap"
)

const nameTrimCharacters = " \t{)"

// Index maps every declared test name to the identifiers referenced in its body, in order of appearance.
// A declared test without any reference maps to an empty list.
type Index map[string][]record.Identifier

// Has reports whether a test of the given name was declared.
func (i Index) Has(name string) bool {
	_, declared := i[name]
	return declared
}

// References reports whether the named test references the identifier anywhere in its body.
func (i Index) References(name string, id record.Identifier) bool {
	for _, referenced := range i[name] {
		if referenced == id {
			return true
		}
	}
	return false
}

// Unique counts the distinct identifiers referenced by any test.
func (i Index) Unique() int {
	seen := make(map[record.Identifier]struct{})
	for _, ids := range i {
		for _, id := range ids {
			seen[id] = struct{}{}
		}
	}
	return len(seen)
}

// Names lists all declared tests sorted by name.
func (i Index) Names() []string {
	names := make([]string, 0, len(i))
	for name := range i {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func triggers(groups []string) []string {
	list := make([]string, len(groups))
	for n, group := range groups {
		list[n] = "TEST_F(" + group
	}
	return list
}

// parser holds the state of one file and is discarded at its end.
type parser struct {
	index          Index
	triggers       []string
	reflow         vuid.Reflow
	current        string
	hasCurrent     bool
	nameOnNextLine bool
	discarded      int
}

func (p *parser) declare(name string) {
	p.index[name] = []record.Identifier{} //re-declaration starts over
	p.current, p.hasCurrent = name, true
}

func (p *parser) isDeclaration(line string) bool {
	for _, trigger := range p.triggers {
		if strings.Contains(line, trigger) {
			return true
		}
	}
	return false
}

func (p *parser) feed(line string) {
	if vuid.IsCommentLine(line) {
		return
	}
	line, complete := p.reflow.Feed(line)
	if !complete {
		return
	}

	if p.isDeclaration(line) {
		p.nameOnNextLine = false //a declaration always supersedes a pending name
		name := ""
		if _, afterComma, found := strings.Cut(line, ","); found {
			name = strings.Trim(afterComma, nameTrimCharacters)
		}
		if name == "" {
			p.nameOnNextLine = true
			return
		}
		p.declare(name)
	} else if p.nameOnNextLine {
		p.nameOnNextLine = false
		p.declare(strings.Trim(line, nameTrimCharacters))
	}

	for _, id := range vuid.Extract(line) {
		if !p.hasCurrent {
			p.discarded++
			continue
		}
		p.index[p.current] = append(p.index[p.current], id)
	}
}

// Parse reads all test files in order. A test is declared by a line containing TEST_F(<group> for any of the groups;
// its name follows the first comma or, if absent there, is the entire next line.
func Parse(files []string, groups []string, logger *zap.Logger) (Index, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	index := make(Index)
	for _, path := range files {
		if err := parseFile(path, index, triggers(groups), logger); err != nil {
			return nil, err
		}
	}
	return index, nil
}

func parseFile(path string, index Index, triggers []string, logger *zap.Logger) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading tests failed: %w", err)
	}
	defer file.Close()

	p := parser{index: index, triggers: triggers}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		p.feed(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading tests from %s failed: %w", path, err)
	}
	if p.discarded > 0 {
		logger.Debug("identifiers outside of any test ignored", zap.String("file", path), zap.Int("count", p.discarded))
	}
	logger.Debug("tests parsed", zap.String("file", path), zap.Int("tests", len(index)))
	return nil
}
