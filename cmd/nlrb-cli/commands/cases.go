package commands

import (
	"log/slog"
	"nlrbdata/cmd/nlrb-cli/globals"
	"time"

	"github.com/spf13/cobra"
)

var casesSearch searchFlags
var casesJson bool

func init() {
	casesSearch.register(casesCmd)
	casesCmd.Flags().BoolVar(&casesJson, "json", false, "Print the cases as JSON instead of a table.")
	rootCmd.AddCommand(casesCmd)
}

var casesCmd = &cobra.Command{
	Use:   "cases [--from <date> --to <date>] [--company <name>] [--json]",
	Short: "Lists every case matching the search, walking all listing pages.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := casesSearch.params()
		if err != nil {
			return err
		}

		client := globals.Get(cmd.Context()).Client

		t1 := time.Now()
		cases, err := client.GetCaseList(cmd.Context(), params)
		if err != nil {
			return err
		}
		slog.Info("listed cases", "count", len(cases), "seconds", time.Since(t1).Seconds())

		if casesJson {
			return writeCasesJson(cmd.OutOrStdout(), cases)
		}
		renderCases(cmd.OutOrStdout(), cases)
		return nil
	},
}
