package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/n2code/vuidcheck"
	"github.com/n2code/vuidcheck/cmd/vuidcheck/flags"
	"github.com/n2code/vuidcheck/internal/config"
	"github.com/n2code/vuidcheck/internal/logging"
	"github.com/spf13/cobra"
)

type CliRequest struct {
	verbose bool
}

func newCommand(request *CliRequest, ran *bool) *cobra.Command {
	var verboseFlag bool
	command := &cobra.Command{
		Use:   "vuidcheck [" + flags.VerboseArgument + "]",
		Short: "Check the validation error database against specification, layer source, and tests",
		Long: `Cross-checks the validation error database of the validation layers against
the valid usage identifiers (VUIDs) declared by the specification, the VUIDs
used in the layer source code, and the tests claimed to cover them.

Only the pass/fail summary and discrepancies are printed unless verbose mode
is enabled, which adds statistics and advisories. The exit code is 0 if all
artifacts are consistent and 1 otherwise.

Artifact locations can be adjusted in an optional vuidcheck.yaml in the
working directory or in ./scripts.`,
		Args:          cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs:     []string{flags.VerboseArgument},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			request.verbose = verboseFlag || len(args) == 1
			*ran = true
			return nil
		},
	}
	command.Flags().BoolVarP(&verboseFlag, flags.Verbose, flags.VerboseShort, false, "Output statistics and advisories (same as the verbose argument)")
	return command
}

func parseArgs(args []string, out io.Writer, errOut io.Writer) (request *CliRequest, exitCode int) {
	request = &CliRequest{}
	ran := false
	command := newCommand(request, &ran)
	command.SetArgs(args)
	command.SetOut(out)
	command.SetErr(errOut)

	if err := command.Execute(); err != nil {
		fmt.Fprintf(errOut, "%s\nUsage help: vuidcheck -h\n", err)
		return nil, 2
	}
	if !ran { //help was requested
		return nil, 0
	}
	return request, 0
}

func (rq *CliRequest) execute(out io.Writer, errOut io.Writer, allowEscapes bool) error {
	logger, err := logging.New(rq.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	settings, err := config.Load()
	if err != nil {
		return err
	}

	createConfig := vuidcheck.CreateConfig{
		AllowEscapes: allowEscapes,
		Logger:       logger,
		Out:          out,
		ErrOut:       errOut,
	}
	if rq.verbose {
		createConfig.Verbosity = vuidcheck.VerboseMode
	}
	return vuidcheck.New(settings, createConfig).Run()
}

func main() {
	rq, rc := parseArgs(os.Args[1:], os.Stdout, os.Stderr)
	if rc != 0 || rq == nil {
		os.Exit(rc)
	}
	if err := rq.execute(os.Stdout, os.Stderr, allowEscapeSequences()); err != nil {
		var commandError *vuidcheck.CommandError
		if !errors.Is(err, vuidcheck.ErrInconsistent) && !errors.As(err, &commandError) { //checker reported those already
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
	os.Exit(0)
}
