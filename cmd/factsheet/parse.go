package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fundlens/factsheet"
)

var (
	parsePDF    string
	parseOut    string
	parseIndent bool
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a factsheet PDF into a JSON record",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := factsheet.Open(parsePDF).Parse()
		if err != nil {
			return fmt.Errorf("parse %s: %w", parsePDF, err)
		}

		out := os.Stdout
		if parseOut != "" && parseOut != "-" {
			f, err := os.Create(parseOut)
			if err != nil {
				return fmt.Errorf("create %s: %w", parseOut, err)
			}
			defer f.Close()
			out = f
		}

		enc := json.NewEncoder(out)
		if parseIndent {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	},
}

func init() {
	parseCmd.Flags().StringVar(&parsePDF, "pdf", "", "path to the factsheet PDF")
	parseCmd.Flags().StringVar(&parseOut, "out", "-", "output path, or - for stdout")
	parseCmd.Flags().BoolVar(&parseIndent, "indent", false, "pretty-print the JSON output")
	parseCmd.MarkFlagRequired("pdf")
	rootCmd.AddCommand(parseCmd)
}
