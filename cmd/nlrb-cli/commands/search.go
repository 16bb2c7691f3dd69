package commands

import (
	"fmt"
	"nlrbdata/lib/scrapers/nlrb"
	"time"

	"github.com/spf13/cobra"
)

const dateFlagLayout = "2006-01-02"

type searchFlags struct {
	from    string
	to      string
	company string
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "Only cases filed on or after this date (YYYY-MM-DD), needs --to.")
	cmd.Flags().StringVar(&f.to, "to", "", "Only cases filed on or before this date (YYYY-MM-DD), needs --from.")
	cmd.Flags().StringVar(&f.company, "company", "", "Only cases matching this company name.")
	cmd.MarkFlagsRequiredTogether("from", "to")
}

func (f *searchFlags) params() (nlrb.SearchParams, error) {
	params := nlrb.SearchParams{Company: f.company}
	if f.from == "" && f.to == "" {
		return params, nil
	}

	start, err := time.Parse(dateFlagLayout, f.from)
	if err != nil {
		return params, fmt.Errorf("--from: %w", err)
	}
	end, err := time.Parse(dateFlagLayout, f.to)
	if err != nil {
		return params, fmt.Errorf("--to: %w", err)
	}
	params.Dates = &nlrb.DateRange{Start: start, End: end}
	return params, nil
}
