// Package main provides the CLI entry point for stylus-go.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mpitools/stylus-go/pkg/stylus"
	"github.com/spf13/cobra"
)

var (
	inputStylus    bool
	existingStylus bool
	mappingPath    string
	quiet          bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stylus input.xlsx input_sheet output.xlsx output_sheet [existing.xlsx existing_sheet]",
		Short: "Format and merge asset portfolios into the Stylus layout",
		Long: `stylus-go reformats raw asset-portfolio worksheets into the Stylus
portfolio layout. With four arguments it formats the input worksheet into
the output worksheet; with six it first joins the input into an existing
portfolio, appending new assets and updating weights on matching ones.
The output workbook and worksheet must already exist.`,
		Args: validateArgs,
		RunE: run,
	}

	rootCmd.Flags().BoolVar(&inputStylus, "stylus", false, "Input worksheet is already Stylus-formatted")
	rootCmd.Flags().BoolVar(&existingStylus, "existing-stylus", false, "Existing worksheet is Stylus-formatted")
	rootCmd.Flags().StringVar(&mappingPath, "mapping", "", "YAML column-alias file for raw input headers")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 4 && len(args) != 6 {
		return fmt.Errorf("expected 4 or 6 arguments, got %d", len(args))
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	var progress io.Writer = os.Stderr
	if quiet {
		progress = nil
	}

	opts := stylus.Options{
		InputPath:      args[0],
		InputSheet:     args[1],
		OutputPath:     args[2],
		OutputSheet:    args[3],
		InputStylus:    inputStylus,
		ExistingStylus: existingStylus,
		MappingPath:    mappingPath,
		Progress:       progress,
	}
	if len(args) == 6 {
		opts.ExistingPath = args[4]
		opts.ExistingSheet = args[5]
	}

	if err := stylus.Run(opts); err != nil {
		return fmt.Errorf("formatting failed: %w", err)
	}
	return nil
}
