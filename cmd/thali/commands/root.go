package commands

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/spektr-org/thali/loader"
)

// ============================================================================
// THALI CLI — Describe, summarise, search and bill a menu file
// ============================================================================

const version = "0.1.0"

var (
	filePath    string
	inputFormat string
	format      string
	outFile     string
)

// Execute builds the command tree and runs it.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "thali",
		Short: "Describe, summarise, search and bill thali menus",
		Long: `Thali reads a menu file (JSON, YAML, CSV or a JS array literal) and
runs one of the menu operations over its records.

Examples:
  thali describe --file menu.json --format text
  thali stats --file menu.yml --format pretty
  thali search dal --file menu.csv --format csv --out dal.csv
  thali receipt "Ravi" --file menu.js`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&filePath, "file", "f", "", "path to menu file")
	root.PersistentFlags().StringVar(&inputFormat, "input-format", "", "menu file format: json, yaml, csv, js (default: from extension)")
	root.PersistentFlags().StringVar(&format, "format", "json", "output format: json, pretty, text, csv")
	root.PersistentFlags().StringVar(&outFile, "out", "", "write output to file instead of stdout")

	root.AddCommand(describeCmd(), statsCmd(), searchCmd(), receiptCmd(), versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "thali %s\n", version)
			return nil
		},
	}
}

// loadMenu reads the --file menu using --input-format when given.
func loadMenu() ([]any, error) {
	if filePath == "" {
		return nil, fmt.Errorf("--file is required")
	}

	var opts []loader.Option
	if inputFormat != "" {
		f, err := loader.ParseFormat(inputFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, loader.WithFormat(f))
	}

	thalis, err := loader.Load(filePath, opts...)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d thalis from %s", len(thalis), filePath)
	return thalis, nil
}

// withOutput runs write against stdout or the --out file.
func withOutput(cmd *cobra.Command, write func(w io.Writer) error) error {
	if outFile == "" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	log.Printf("Output written to %s", outFile)
	return nil
}
