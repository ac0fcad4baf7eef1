package vuidcheck

import (
	"io"
	"os"

	"github.com/n2code/vuidcheck/internal/config"
	"github.com/n2code/vuidcheck/internal/database"
	"github.com/n2code/vuidcheck/internal/output"
	"github.com/n2code/vuidcheck/internal/record"
	"github.com/n2code/vuidcheck/internal/source"
	"github.com/n2code/vuidcheck/internal/specindex"
	"github.com/n2code/vuidcheck/internal/testindex"
	"go.uber.org/zap"
)

type VerbosityLevel int

const (
	DefaultVerbosity VerbosityLevel = iota //pass/fail summary, discrepancies and artifact summaries
	VerboseMode                            //statistics, confirmations, and advisories on top
)

// CreateConfig holds the switches that concern all calls to the checker API.
// The zero value is a sensible default writing to stdout/stderr without colors.
type CreateConfig struct {
	Verbosity    VerbosityLevel
	AllowEscapes bool        //color the report
	Logger       *zap.Logger //nil means no diagnostic logging
	Out          io.Writer   //report, stdout if nil
	ErrOut       io.Writer   //error output, stderr if nil
}

type checker struct {
	settings *config.Settings
	printer  output.Printer
	log      *zap.Logger
	verbose  bool
	wd       string

	loaded       bool
	db           database.Api
	formatErrors []*record.FormatError
	spec         *specindex.Index
	occurrences  *source.Occurrences
	tests        testindex.Index
}

func makeChecker(settings *config.Settings, createConfig CreateConfig) (instance *checker) {
	instance = &checker{settings: settings, log: createConfig.Logger, wd: mustGetwd()}
	if instance.log == nil {
		instance.log = zap.NewNop()
	}
	out, errOut := createConfig.Out, createConfig.ErrOut
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	classes := []output.Class{output.Required, output.Error, output.Normal}
	if createConfig.Verbosity == VerboseMode {
		instance.verbose = true
		classes = append(classes, output.Verbose)
	}
	instance.printer = output.NewPrinterTo(classes, createConfig.AllowEscapes, out, errOut)
	return
}

func (c *checker) Print(class output.Class, format string, values ...interface{}) {
	c.printer.Out(class, format, values...)
}
