// Package cli provides the command-line interface for tinge.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/colourlab/tinge/internal/colour"
	"github.com/colourlab/tinge/internal/image"
	"github.com/colourlab/tinge/internal/version"
)

// options carries the flag values for one invocation.
type options struct {
	maxColours      int
	seed            int64
	randomSeed      bool
	terminalColours bool
	maxBrightness   bool
	noPalette       bool
	verbose         bool
}

// NewRootCmd builds the root command. A fresh command is built per call
// so invocations (and tests) never share flag state.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tinge <image>",
		Short: "Find the dominant colours in an image",
		Long: `Tinge finds the dominant colours in an image and prints them as
coloured swatches with their hex codes.

It reads a single image (PNG, JPEG, GIF, WebP, TIFF or BMP; animated
GIFs contribute a selection of frames), clusters the pixels in a
perceptually uniform colour space, and prints one line per distinct
resulting colour.

Examples:
  # Print the five dominant colours of an image
  tinge wallpaper.jpg

  # Print a single colour, hex code only
  tinge --max-colours=1 --no-palette wallpaper.jpg

  # Snap the colours onto the standard 16-colour terminal palette
  tinge --terminal-colours wallpaper.jpg

  # Reproducible output for scripting
  tinge --seed=123456789 wallpaper.jpg`,
		Version:      version.Short(),
		SilenceUsage: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return &UsageError{Err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	cmd.SetVersionTemplate(version.String() + "\n")
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	bindFlags(cmd.Flags(), opts)
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command. The returned error maps to the process
// exit status via ExitCode.
func Execute() error {
	return NewRootCmd().Execute()
}

// bindFlags registers the configuration surface on a flag set.
func bindFlags(fs *pflag.FlagSet, opts *options) {
	fs.IntVarP(&opts.maxColours, "max-colours", "c", 5, "number of colours to find (at least 1)")
	fs.Int64Var(&opts.seed, "seed", 0, "seed for the clustering step")
	fs.BoolVar(&opts.randomSeed, "random-seed", false, "draw a fresh clustering seed on every run")
	fs.BoolVar(&opts.terminalColours, "terminal-colours", false, "snap colours onto the standard 16-colour terminal palette")
	fs.BoolVar(&opts.maxBrightness, "max-brightness", false, "with --terminal-colours, prefer the bright half of the palette")
	fs.BoolVar(&opts.noPalette, "no-palette", false, "print hex codes without coloured swatches")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose diagnostics on stderr")
}

// run executes the whole pipeline: sample, cluster, optionally snap onto
// the terminal palette, render. All output is printed only after the
// pipeline completes; failures produce no output on stdout.
func run(cmd *cobra.Command, opts *options, path string) error {
	if opts.maxColours < 1 {
		return &UsageError{Err: fmt.Errorf("invalid value %d for --max-colours: must be at least 1", opts.maxColours)}
	}

	logger := hclog.NewNullLogger()
	if opts.verbose {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "tinge",
			Level:  hclog.Debug,
			Output: cmd.ErrOrStderr(),
		})
	}

	// The terminal palette has exactly 16 entries; clustering must
	// produce at least that many candidates to cover it.
	count := opts.maxColours
	if opts.terminalColours && count < colour.TerminalPaletteSize {
		count = colour.TerminalPaletteSize
	}

	samples, err := image.Samples(path)
	if err != nil {
		return err
	}
	logger.Debug("sampled image", "path", path, "samples", len(samples))

	mode := colour.SeedModeManual
	if opts.randomSeed {
		mode = colour.SeedModeRandom
	}
	seed := colour.ChooseSeed(mode, opts.seed)
	logger.Debug("clustering", "count", count, "seed", seed)

	palette, err := colour.NewExtractor(seed).Extract(samples, count)
	if err != nil {
		return err
	}
	logger.Debug("extracted colours", "count", palette.Len())

	colours := palette.Colours
	if opts.terminalColours {
		colours = colour.SnapToTerminal(colours, opts.maxBrightness)
		logger.Debug("snapped to terminal palette", "count", len(colours))
	}

	out := cmd.OutOrStdout()
	for _, line := range colour.RenderSwatches(colours, opts.noPalette) {
		fmt.Fprintln(out, line)
	}
	return nil
}

// newVersionCmd builds the version subcommand.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
