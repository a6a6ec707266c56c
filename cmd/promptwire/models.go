package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// modelsCmd lists the models in the limits table.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List known model limits",
	Long: `List the models in the limits table with their context window and
maximum output sizes. Entries double as name prefixes: a dated model
release matches its family entry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := limitsTable()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "MODEL\tCONTEXT\tMAX OUTPUT")
		for _, name := range table.Names() {
			ml, ok := table.Lookup(name)
			if !ok {
				continue
			}
			fmt.Fprintf(w, "%s\t%d\t%d\n", name, ml.ContextWindow, ml.MaxOutput)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
