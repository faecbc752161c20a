package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gophb/internal/records"
)

var (
	recordTypes []string
	recordLimit int
)

var recordsCmd = &cobra.Command{
	Use:   "records <file.csv>",
	Short: "Load a CSV table into typed records",
	Long: `Load a CSV file with a header row. Headers are reduced to
upper-case ASCII with underscores ("Window Type" becomes WINDOW_TYPE),
and columns listed with --type are coerced to int or float.

A file that is not valid CSV is reported and yields no records.

Examples:
  gophb records frames.csv
  gophb records frames.csv --type "U_VALUE: float" --type "QTY: int"`,
	Args: cobra.ExactArgs(1),
	RunE: runRecords,
}

func init() {
	rootCmd.AddCommand(recordsCmd)

	recordsCmd.Flags().StringArrayVarP(&recordTypes, "type", "t", nil, "Column type as \"HEADER: int|float|str\" (repeatable)")
	recordsCmd.Flags().IntVarP(&recordLimit, "limit", "l", 20, "Rows to print (0 for all)")
}

func runRecords(cmd *cobra.Command, args []string) error {
	t, err := records.Load(args[0], recordTypes, log)
	if err != nil {
		return err
	}

	banner("RECORDS - " + args[0])
	if len(t.Records) == 0 {
		fmt.Println("  No records loaded.")
		fmt.Println()
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  %s\n", strings.Join(t.Headers, "\t"))
	for i, r := range t.Records {
		if recordLimit > 0 && i == recordLimit {
			break
		}
		cells := make([]string, len(t.Headers))
		for j, h := range t.Headers {
			if r[h] == nil {
				cells[j] = "-"
				continue
			}
			cells[j] = r.Text(h)
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(cells, "\t"))
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  %d records, %d columns\n\n", len(t.Records), len(t.Headers))
	return nil
}
