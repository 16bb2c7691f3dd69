package commands

import (
	"nlrbdata/cmd/nlrb-cli/globals"

	"github.com/spf13/cobra"
)

var caseJson bool

func init() {
	caseCmd.Flags().BoolVar(&caseJson, "json", false, "Print the case as JSON instead of tables.")
	rootCmd.AddCommand(caseCmd)
}

var caseCmd = &cobra.Command{
	Use:   "case <case number> [--json]",
	Short: "Fetches a single case with its docket, allegations and participants.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := globals.Get(cmd.Context()).Client

		detail, err := client.GetCase(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if caseJson {
			return writeJson(cmd.OutOrStdout(), detail)
		}
		renderCase(cmd.OutOrStdout(), detail)
		return nil
	},
}
