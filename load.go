package vuidcheck

import (
	"path/filepath"
	"strings"

	"github.com/n2code/vuidcheck/internal/database"
	out "github.com/n2code/vuidcheck/internal/output"
	"github.com/n2code/vuidcheck/internal/reconcile"
	"github.com/n2code/vuidcheck/internal/source"
	"github.com/n2code/vuidcheck/internal/specindex"
	"github.com/n2code/vuidcheck/internal/testindex"
	"go.uber.org/zap"
)

func (c *checker) Load() error {
	c.loaded = false
	s := c.settings
	c.log.Debug("loading artifacts", zap.String("root", s.Root), zap.String("config", s.File()))

	db := database.MakeRuntimeDatabase(c.log)
	formatErrors, err := db.LoadFromLocalFile(s.Resolve(s.Database))
	if err != nil {
		return newCommandError("database load error", err)
	}
	c.db, c.formatErrors = db, formatErrors
	c.Print(out.Verbose, "Found %d total VUIDs in database\n", db.Count())
	c.Print(out.Verbose, "Found %d VUIDs in database marked as implemented\n", len(db.Implemented()))
	c.Print(out.Verbose, "Found %d VUIDs in database marked as having a test implemented\n", len(db.IdentifierToTests()))

	specPath := s.Resolve(s.Spec)
	c.spec, err = specindex.Load(specPath, c.log)
	if err != nil {
		return newCommandError("specification load error", err)
	}
	c.Print(out.Normal, "Found %d unique error vuids in %s file.\n", c.spec.Count(), filepath.Base(c.spec.File()))

	scanner := source.NewScanner(source.Config{
		Root:  s.Root,
		Files: s.Sources,
		Generated: source.Generated{
			Files:        s.Generated.Files,
			Directories:  s.Generated.Directories,
			Subdirectory: s.Generated.Subdirectory,
		},
	}, c.log)
	paths, err := scanner.Resolve()
	if err != nil {
		return newCommandError("source lookup error", err)
	}
	c.occurrences, err = scanner.Scan(paths)
	if err != nil {
		return newCommandError("source scan error", err)
	}
	c.Print(out.Verbose, "Found %d unique implemented checks and %d are duplicated at least once\n", c.occurrences.Unique(), c.occurrences.Repeated())
	c.Print(out.Normal, "Found %d unique error vuids in validation source code files.\n", c.occurrences.Unique())

	testFiles := s.ResolveAll(s.Tests.Files)
	c.tests, err = testindex.Parse(testFiles, s.Tests.Groups, c.log)
	if err != nil {
		return newCommandError("test parse error", err)
	}
	displayTestFiles := make([]string, len(testFiles))
	for i, file := range testFiles {
		displayTestFiles[i] = c.displayablePath(file)
	}
	c.Print(out.Normal, "Found %d unique error vuids in test %s %s.\n", c.tests.Unique(), out.Plural(testFiles, "file", "files"), strings.Join(displayTestFiles, ", "))

	c.loaded = true
	return nil
}

func (c *checker) Reconcile() (reconcile.Report, error) {
	if !c.loaded {
		return reconcile.Report{}, ErrNotLoaded
	}
	return reconcile.Reconcile(reconcile.Inputs{
		Database: c.db,
		Spec:     c.spec.Identifiers(),
		Source:   c.occurrences,
		Tests:    c.tests,
	}, reconcile.Options{AllowedDuplicates: c.settings.AllowedDuplicates}), nil
}

func (c *checker) Run() error {
	if err := c.Load(); err != nil {
		c.Print(out.Error, "%s%s%s\n", out.Red, err, out.Reset)
		return err
	}
	report, err := c.Reconcile()
	if err != nil {
		return err
	}
	c.PrintReport(report)
	if report.Failed() {
		return ErrInconsistent
	}
	return nil
}
