package database

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/n2code/vuidcheck/internal/record"
	"go.uber.org/zap"
)

const maxLineLength = 1024 * 1024

func (db *database) LoadFromLocalFile(path string) (formatErrors []*record.FormatError, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("loading database failed: %w", err)
		}
	}()

	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	db.records = make(map[record.Identifier]record.Record)
	db.file = path

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if record.IsSkippable(line) {
			continue
		}
		rec, parseErr := record.ParseLine(line)
		if parseErr != nil {
			var formatErr *record.FormatError
			if !errors.As(parseErr, &formatErr) {
				return nil, parseErr
			}
			formatErr.File = path
			formatErr.Line = lineNumber
			db.log.Warn("skipping malformed database line",
				zap.String("file", path),
				zap.Int("line", lineNumber),
				zap.Int("fields", formatErr.Fields))
			formatErrors = append(formatErrors, formatErr)
			continue
		}
		if _, exists := db.records[rec.Identifier]; exists {
			db.log.Debug("database line overrides earlier record", zap.String("vuid", string(rec.Identifier)), zap.Int("line", lineNumber))
		}
		db.records[rec.Identifier] = rec //last one wins
	}
	if err = scanner.Err(); err != nil {
		return
	}

	db.log.Debug("database loaded",
		zap.String("file", path),
		zap.Int("records", len(db.records)),
		zap.Int("malformed", len(formatErrors)))
	return
}
