package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/trackloop/trackloop/pkg/layoutfile"
	"github.com/trackloop/trackloop/pkg/pipeline"
	"github.com/trackloop/trackloop/pkg/report"
	"github.com/trackloop/trackloop/pkg/track"
)

// searchOpts holds the command-line flags for the search command.
type searchOpts struct {
	file        string // TOML layout file with an [inventory] table
	output      string // output file path (stdout if empty)
	asJSON      bool   // emit JSON instead of text lines
	noCache     bool   // disable result caching
	refresh     bool   // bypass cached results
	interactive bool   // browse layouts in a TUI
}

// searchCommand creates the search command.
func (c *CLI) searchCommand() *cobra.Command {
	opts := searchOpts{}

	cmd := &cobra.Command{
		Use:   "search [inventory-spec]",
		Short: "Enumerate every distinct closed layout buildable from an inventory",
		Long: `Enumerate every distinct closed layout buildable from a piece inventory.

The inventory comes either from an inline spec or a TOML layout file:

  trackloop search "s1=2,aR=12"
  trackloop search --file layout.toml

Layouts that are rotations or mirror images of an already-reported layout
are suppressed. Results are cached locally; use --refresh to recompute.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			supply, err := loadInventory(opts.file, args)
			if err != nil {
				return err
			}
			return c.runSearch(cmd.Context(), supply, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "TOML layout file with an [inventory] table")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "emit layouts as JSON")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached results")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse layouts interactively")

	return cmd
}

// loadInventory resolves the piece inventory from --file or the inline arg.
func loadInventory(file string, args []string) (map[track.Kind]int, error) {
	switch {
	case file != "" && len(args) > 0:
		return nil, fmt.Errorf("provide either an inline spec or --file, not both")
	case file != "":
		return layoutfile.ReadInventory(file)
	case len(args) == 1:
		return layoutfile.ParseInventorySpec(args[0])
	default:
		return nil, fmt.Errorf("provide an inventory spec (e.g. \"s1=2,aR=12\") or --file")
	}
}

// runSearch executes the search and writes the results.
func (c *CLI) runSearch(ctx context.Context, supply map[track.Kind]int, opts searchOpts) error {
	ctx = withLogger(ctx, c.Logger)

	runner := c.newRunner(opts.noCache)
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Searching closed layouts...")
	spinner.Start()

	res, err := runner.Search(ctx, supply, pipeline.SearchOptions{Refresh: opts.refresh})
	if err != nil {
		spinner.StopWithError("Search failed")
		return err
	}
	spinner.Stop()

	if opts.asJSON || opts.output != "" {
		return writeResult(res.Layouts, opts.output)
	}
	if opts.interactive {
		return browseLayouts(res.Layouts)
	}

	if len(res.Layouts) == 0 {
		printWarning("No closed layout can be built from this inventory")
		return nil
	}
	for _, l := range res.Layouts {
		fmt.Println(l.Text())
	}
	printNewline()
	printStats(res.Stats.Pieces, res.Stats.Solutions, res.CacheHit)
	return nil
}

// writeResult serializes v as JSON to path (stdout if empty).
func writeResult(v any, path string) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return report.WriteJSON(out, v)
}

// nopCloser wraps an io.Writer with a no-op Close method, making os.Stdout
// compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for path, or stdout when path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
