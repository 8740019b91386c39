package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/passagequiz/internal/qtype"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the supported question types",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-20s  %-20s  %s\n", "ID", "Label", "English")
		for _, t := range qtype.All() {
			fmt.Fprintf(out, "%-20s  %-20s  %s\n", t, t.Label(), t.EnglishName())
		}
	},
}
