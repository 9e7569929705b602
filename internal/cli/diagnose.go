package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trackloop/trackloop/pkg/layoutfile"
	"github.com/trackloop/trackloop/pkg/track"
)

// diagnoseOpts holds the command-line flags for the diagnose command.
type diagnoseOpts struct {
	file   string // TOML layout file with a pieces list
	output string // output file path (stdout if empty)
	asJSON bool   // emit JSON instead of the text report
}

// diagnoseCommand creates the diagnose command.
func (c *CLI) diagnoseCommand() *cobra.Command {
	opts := diagnoseOpts{}

	cmd := &cobra.Command{
		Use:   "diagnose [piece-sequence]",
		Short: "Measure how far a fixed piece sequence is from closing",
		Long: `Lay out a fixed piece sequence and measure how far its endpoint is
from its start, in position and in direction.

The sequence comes either from inline labels or a TOML layout file:

  trackloop diagnose "s2 aR aR aR aL aR"
  trackloop diagnose --file sequence.toml

A sequence closes when the positional gap is below 0.01 length units and
the angular gap is below 0.001 radians.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := loadSequence(opts.file, args)
			if err != nil {
				return err
			}
			return c.runDiagnose(cmd.Context(), kinds, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "TOML layout file with a pieces list")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "emit the diagnosis as JSON")

	return cmd
}

// loadSequence resolves the piece sequence from --file or the inline arg.
func loadSequence(file string, args []string) ([]track.Kind, error) {
	switch {
	case file != "" && len(args) > 0:
		return nil, fmt.Errorf("provide either an inline sequence or --file, not both")
	case file != "":
		return layoutfile.ReadSequence(file)
	case len(args) == 1:
		return layoutfile.ParseSequenceSpec(args[0])
	default:
		return nil, fmt.Errorf("provide a piece sequence (e.g. \"s2 aR aR\") or --file")
	}
}

// runDiagnose diagnoses the sequence and writes the report.
func (c *CLI) runDiagnose(ctx context.Context, kinds []track.Kind, opts diagnoseOpts) error {
	ctx = withLogger(ctx, c.Logger)

	// Diagnosis is a single geometry pass; no cache involved.
	runner := c.newRunner(true)
	defer runner.Close()

	diag, err := runner.Diagnose(ctx, kinds)
	if err != nil {
		return err
	}

	if opts.asJSON || opts.output != "" {
		return writeResult(diag, opts.output)
	}

	fmt.Println(diag.Text())
	printNewline()
	if diag.Closed {
		printSuccess("Sequence closes into a continuous loop")
	} else {
		printWarning("Sequence does not close")
	}
	return nil
}
