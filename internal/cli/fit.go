package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slidesmith/slidesmith/pkg/autofit"
)

// fitOpts holds the command-line flags for the fit command.
type fitOpts struct {
	strategy string  // fitting strategy: smart, shrink_font, multi_column, split_slides
	fontSize int     // preferred font size in points (0 = engine default)
	width    float64 // container width in inches
	height   float64 // container height in inches
	segments bool    // print the resulting text segments
}

// fitCommand creates the fit command for analyzing text against a container.
func (c *CLI) fitCommand() *cobra.Command {
	opts := fitOpts{
		width:  9.0,
		height: 5.5,
	}

	cmd := &cobra.Command{
		Use:   "fit [file]",
		Short: "Analyze text and report the auto-fit decision",
		Long: `Fit reads text from a file (or stdin with "-") and reports how the
auto-fit engine would place it: the chosen strategy, font size, column
count, and slide count. Use --segments to see the split text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFit(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "", "fitting strategy: smart (default), shrink_font, multi_column, split_slides")
	cmd.Flags().IntVar(&opts.fontSize, "font-size", 0, "preferred font size in points")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "container width in inches")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "container height in inches")
	cmd.Flags().BoolVar(&opts.segments, "segments", false, "print the resulting text segments")

	return cmd
}

func (c *CLI) runFit(cmd *cobra.Command, path string, opts *fitOpts) error {
	text, err := readSource(path)
	if err != nil {
		return err
	}

	strategy, err := autofit.ParseStrategy(opts.strategy)
	if err != nil {
		return err
	}

	ctx := withLogger(cmd.Context(), c.Logger)
	engine := autofit.NewDefault()
	container := autofit.DefaultContainer(opts.width, opts.height)

	res, err := engine.Fit(ctx, text, container, strategy, opts.fontSize)
	if err != nil {
		return err
	}

	metrics := engine.Analyze(text)
	printKeyValue("Strategy", string(res.Strategy))
	printKeyValue("Font size", fmt.Sprintf("%dpt", res.FontSize))
	if res.Columns > 1 {
		printKeyValue("Columns", fmt.Sprintf("%d (%.1fin wide)", res.Columns, res.ColumnWidth))
	}
	if res.SlidesNeeded > 1 {
		printKeyValue("Slides", fmt.Sprintf("%d", res.SlidesNeeded))
	}
	printKeyValue("Text", fmt.Sprintf("%d chars, %d paragraphs", metrics.CharCount, metrics.ParagraphCount))
	printNewline()
	printInfo("%s", res.Recommendation)

	if opts.segments {
		for i, segment := range res.TextSegments {
			printNewline()
			printDetail("--- segment %d ---", i+1)
			for _, line := range strings.Split(segment, "\n") {
				printDetail("%s", line)
			}
		}
	}
	return nil
}
