// Package source finds all VUIDs used by the validation layer source code.
package source

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/n2code/vuidcheck/internal/vuid"
	"go.uber.org/zap"
)

const maxLineLength = 4 * 1024 * 1024 //generated sources contain very long lines

// Generated describes sources produced by the build which live in one of several possible build directories.
type Generated struct {
	Files        []string
	Directories  []string //candidates in order of preference, relative to the root
	Subdirectory string   //location of the files inside a build directory
}

// Config lists what a Scanner reads.
type Config struct {
	Root      string   //base for all relative paths
	Files     []string //always scanned, in order
	Generated Generated
}

// Scanner finds identifier occurrences in layer sources.
type Scanner struct {
	config Config
	log    *zap.Logger
}

// NewScanner anchors a relative Root at the working directory. A nil logger discards diagnostics.
func NewScanner(config Config, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if root, err := filepath.Abs(config.Root); err == nil {
		config.Root = root //resolved paths stay valid if passed back into Scan
	}
	return &Scanner{config: config, log: logger}
}

func (s *Scanner) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.config.Root, path)
}

// Resolve lists the files to scan: the configured files followed by the located generated files.
// A generated file is taken from the first candidate directory containing it.
func (s *Scanner) Resolve() ([]string, error) {
	paths := make([]string, 0, len(s.config.Files)+len(s.config.Generated.Files))
	for _, file := range s.config.Files {
		paths = append(paths, s.resolve(file))
	}

	var missing []string
	for _, generated := range s.config.Generated.Files {
		found := false
		for _, dir := range s.config.Generated.Directories {
			candidate := s.resolve(filepath.Join(dir, s.config.Generated.Subdirectory, generated))
			if stat, err := os.Stat(candidate); err == nil && stat.Mode().IsRegular() {
				s.log.Debug("located generated source", zap.String("file", candidate))
				paths = append(paths, candidate)
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, generated)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingGeneratedSourceError{Missing: missing, Searched: s.config.Generated.Directories}
	}
	return paths, nil
}

// Scan records every identifier occurrence in the given files, in file and line order.
// Relative paths are taken relative to the configured root.
func (s *Scanner) Scan(paths []string) (*Occurrences, error) {
	occurrences := NewOccurrences()
	for _, path := range paths {
		if err := scanFile(s.resolve(path), occurrences, s.log); err != nil {
			return nil, err
		}
	}
	s.log.Debug("sources scanned", zap.Int("files", len(paths)), zap.Int("unique", occurrences.Unique()), zap.Int("repeated", occurrences.Repeated()))
	return occurrences, nil
}

func scanFile(path string, occurrences *Occurrences, logger *zap.Logger) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("scanning source failed: %w", err)
	}
	defer file.Close()

	var reflow vuid.Reflow //never shared between files
	found := 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if vuid.IsCommentLine(line) {
			continue
		}
		logical, complete := reflow.Feed(line)
		if !complete {
			continue
		}
		for _, id := range vuid.Extract(logical) {
			occurrences.Add(Occurrence{Identifier: id, File: path, Line: lineNumber})
			found++
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanning source %s failed: %w", path, err)
	}
	if reflow.Pending() {
		logger.Debug("dropping broken identifier at end of file", zap.String("file", path))
	}
	logger.Debug("source scanned", zap.String("file", path), zap.Int("lines", lineNumber), zap.Int("vuids", found))
	return nil
}
