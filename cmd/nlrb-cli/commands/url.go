package commands

import (
	"fmt"
	"nlrbdata/cmd/nlrb-cli/globals"
	"nlrbdata/lib/scrapers/nlrb"

	"github.com/spf13/cobra"
)

var urlSearch searchFlags
var urlPage int

func init() {
	urlSearch.register(urlCmd)
	urlCmd.Flags().IntVar(&urlPage, "page", 0, "The zero-based listing page.")
	rootCmd.AddCommand(urlCmd)
}

var urlCmd = &cobra.Command{
	Use:   "url [--from <date> --to <date>] [--company <name>] [--page <n>]",
	Short: "Prints the search listing url without fetching it.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := urlSearch.params()
		if err != nil {
			return err
		}
		params.Page = urlPage

		client := globals.Get(cmd.Context()).Client
		fmt.Fprintln(cmd.OutOrStdout(), nlrb.CaseListUrl(client.BaseUrl.String(), params))
		return nil
	},
}
