package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/mathdemo/internal/demo"
	"github.com/roach88/mathdemo/internal/mathutil"
)

// runDemo executes the walkthrough and renders it in the configured format.
//
// A square-root guard violation is not a command failure: text output skips
// the line, structured output reports an E001 error response, and the exit
// code stays 0 either way.
func runDemo(opts *RootOptions, cmd *cobra.Command) error {
	configureLogging(cmd.ErrOrStderr(), opts.Verbose)

	runIDs := opts.RunIDs
	if runIDs == nil {
		runIDs = UUIDv7Generator{}
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
		TraceID:   runIDs.Generate(),
	}
	formatter.VerboseLog("Run %s", formatter.TraceID)
	slog.Debug("demo starting", "run_id", formatter.TraceID, "format", opts.Format)

	script := demo.DefaultScript()
	if opts.Script != nil {
		script = *opts.Script
	}

	if opts.Format == "text" {
		if _, err := script.Run(formatter.Writer, formatter.GetErrWriter()); err != nil {
			return WrapExitError(ExitFailure, "failed to write output", err)
		}
		return nil
	}

	report := script.Compute(formatter.GetErrWriter())
	if !report.Root.OK {
		err := formatter.Error(ErrCodeNegativeInput, mathutil.ErrNegativeInput.Error(), report)
		if err != nil {
			return WrapExitError(ExitFailure, "failed to write output", err)
		}
		return nil
	}

	if err := formatter.Success(report); err != nil {
		return WrapExitError(ExitFailure, "failed to write output", err)
	}
	return nil
}
