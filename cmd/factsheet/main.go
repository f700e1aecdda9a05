// Command factsheet parses mutual fund factsheet PDFs into structured
// JSON, either as a one-shot CLI or as an HTTP service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "factsheet",
	Short: "Parse mutual fund factsheet PDFs into structured JSON",
	Long: `factsheet turns fund factsheet PDFs into a structured record:
page content in reading order (headings, paragraphs, tables, chart
placeholders) plus a flat fund metadata summary (name, category, AUM,
expense ratios, benchmarks, managers).

Run "factsheet parse" for one-shot conversion, or "factsheet serve" to
expose the parser over HTTP.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
