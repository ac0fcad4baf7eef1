package vuidcheck

import (
	"github.com/n2code/vuidcheck/internal/config"
	"github.com/n2code/vuidcheck/internal/reconcile"
)

// Checker cross-checks the validation error database against the valid usage specification, the layer source code, and the layer tests.
// A handle is retrieved using New.
type Checker interface {

	// Load reads all four artifacts. Malformed database lines are tolerated and kept for the report,
	// everything else that cannot be read is fatal.
	// Summary lines on what was found are printed during the load.
	Load() error

	// Reconcile compares the loaded artifacts. It fails with ErrNotLoaded unless Load succeeded before.
	Reconcile() (reconcile.Report, error)

	// PrintReport outputs the given report, advisories and statistics only in verbose mode.
	PrintReport(report reconcile.Report)

	// Run loads, reconciles, and prints the report.
	// The error is ErrInconsistent if the report contains failures, a *CommandError if loading failed.
	// Either has been reported to the configured outputs already.
	Run() error
}

// New creates a checker for the artifacts located by the given settings.
func New(settings *config.Settings, createConfig CreateConfig) Checker {
	return makeChecker(settings, createConfig)
}
