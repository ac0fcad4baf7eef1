package vuidcheck

import (
	"fmt"
	"path/filepath"
	"strings"

	out "github.com/n2code/vuidcheck/internal/output"
	"github.com/n2code/vuidcheck/internal/reconcile"
	"github.com/n2code/vuidcheck/internal/record"
)

const listIndent = 4

func (c *checker) PrintReport(report reconcile.Report) {
	stats := report.Statistics
	if c.verbose {
		c.Print(out.Verbose, "Validation Statistics\n")
	} else {
		c.Print(out.Normal, "Validation/Documentation Consistency Test\n")
	}
	c.Print(out.Verbose, " Database file includes %d unique checks\n", stats.Records)
	c.Print(out.Verbose, " %s file declares %d unique checks\n", c.specName(), stats.SpecIdentifiers)

	if len(c.formatErrors) > 0 {
		c.Print(out.Required, "%s %d malformed database %s skipped (%s):%s\n", out.Yellow, len(c.formatErrors), out.Plural(c.formatErrors, "line was", "lines were"), c.displayablePath(c.db.File()), out.Reset)
		for _, formatError := range c.formatErrors {
			c.Print(out.Required, "%s    %s%s\n", out.Yellow, formatError, out.Reset)
		}
	}

	if len(report.InvalidFlags) > 0 {
		c.Print(out.Required, "%sThe following checks have an invalid check_implemented flag (must be '%s' or '%s'):%s\n", out.Red, record.Implemented, record.NotImplemented, out.Reset)
		for _, invalid := range report.InvalidFlags {
			c.Print(out.Required, "%s    %s has check_implemented flag '%s'%s\n", out.Red, invalid.Identifier, invalid.Flag, out.Reset)
		}
	}

	if report.DatabaseMatchesSpec() {
		c.Print(out.Verbose, "%s  Database and %s match, GREAT!%s\n", out.Green, c.specName(), out.Reset)
	} else {
		c.Print(out.Required, "%s  Uh oh, Database doesn't match %s file :(%s\n", out.Red, c.specName(), out.Reset)
		c.printFailureList(fmt.Sprintf("The following checks are in %s but missing from database:", c.specName()), report.MissingFromDatabase)
		c.printFailureList(fmt.Sprintf("The following checks are in database but aren't declared in the %s file:", c.specName()), report.MissingFromSpec)
	}

	c.Print(out.Verbose, " Database file claims that %d checks (%s) are implemented in source.\n", stats.Implemented, out.Percent(stats.Implemented, stats.Records))
	if stats.UnimplementedImplicit > 0 {
		covered := stats.Implemented + stats.UnimplementedImplicit
		c.Print(out.Verbose, " Database file claims %d implicit checks (%s) that are not implemented.\n", stats.UnimplementedImplicit, out.Percent(stats.UnimplementedImplicit, stats.Records))
		c.Print(out.Verbose, " If all implicit checks are handled by parameter validation this is a total of %d (%s) checks covered.\n", covered, out.Percent(covered, stats.Records))
	}
	if report.SourceMatchesDatabase() {
		c.Print(out.Verbose, "%s  All claimed Database implemented checks have been found in source, and no source checks aren't claimed in Database, GREAT!%s\n", out.Green, out.Reset)
	} else {
		c.Print(out.Required, "%s  Uh oh, Database claimed implemented don't match Source :(%s\n", out.Red, out.Reset)
		c.printFailureList(fmt.Sprintf("The following %d checks are claimed to be implemented in Database, but weren't found in source:", len(report.ImplementedNotFound)), report.ImplementedNotFound)
		c.printFailureList("The following checks are implemented in source, but not claimed to be in Database:", report.FoundNotClaimed)
	}

	if len(report.Duplicates) > 0 && c.printer.Includes(out.Verbose) {
		c.Print(out.Verbose, "%s  Note that some checks are used multiple times. These may be good candidates for new valid usage spec language.%s\n", out.Yellow, out.Reset)
		c.Print(out.Verbose, "%s  Here is a list of each check used multiple times with its number of uses:%s\n", out.Yellow, out.Reset)
		for _, duplicate := range report.Duplicates {
			tree := out.NewVisualTree(fmt.Sprintf("%s: %d uses in file,line:", duplicate.Identifier, len(duplicate.Locations)))
			for _, location := range duplicate.Locations {
				location.File = c.displayablePath(location.File)
				tree.InsertPath(location.Location())
			}
			c.printTree(out.Yellow, tree)
		}
	}

	if len(report.TestsMissingIdentifier) > 0 && c.printer.Includes(out.Verbose) {
		c.Print(out.Verbose, "%s  \nThe following tests do not use their reported vuids to check for the validation error. You may want to update these to pass the expected vuid text to SetDesiredFailureMsg:%s\n", out.Yellow, out.Reset)
		for _, test := range report.TestsMissingIdentifier {
			tree := out.NewVisualTree(fmt.Sprintf("Testname %s does not explicitly check for these ids:", test.Test))
			for _, id := range test.Identifiers {
				tree.InsertPath(string(id))
			}
			c.printTree(out.Yellow, tree)
		}
	}

	c.Print(out.Verbose, " Database file claims that %d checks have tests written.\n", stats.WithTests)
	if len(report.BadTestNames) == 0 {
		c.Print(out.Verbose, "%s  All claimed tests have valid names. That's good!%s\n", out.Green, out.Reset)
	} else {
		c.Print(out.Required, "%s  The following testnames in Database appear to be invalid:%s\n", out.Red, out.Reset)
		for _, bad := range report.BadTestNames {
			c.Print(out.Required, "%s   %q (claimed for %s)%s\n", out.Red, bad.Test, bad.Identifier, out.Reset)
		}
	}
}

func (c *checker) specName() string {
	return filepath.Base(c.settings.Spec)
}

func (c *checker) printFailureList(title string, ids []record.Identifier) {
	if len(ids) == 0 {
		return
	}
	c.Print(out.Required, "%s   %s%s\n", out.Red, title, out.Reset)
	for _, id := range ids {
		c.Print(out.Required, "%s%s%s\n", out.Red, out.Indent(listIndent, string(id)), out.Reset)
	}
}

func (c *checker) printTree(color out.SgrModifier, tree out.VisualTree) {
	c.Print(out.Verbose, "%s%s%s\n", color, out.Indent(3, strings.TrimSuffix(tree.Render(), "\n")), out.Reset)
}
