package nlrb

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// the site accepts several filters (f[0], f[1], ...) but only one is ever sent
const dateFilterIndex = 0
const dateFilterLayout = "01/02/2006"

type DateRange struct {
	Start time.Time
	End   time.Time
}

type SearchParams struct {
	// optional, filters on the date the case was filed
	Dates *DateRange
	// optional, appended to the search path
	Company string
	// zero-based, page 0 does not add a page parameter
	Page int
}

// escape percent-encodes every reserved character, spaces become %20.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// CaseListUrl builds the search listing url, it does not validate its input.
func CaseListUrl(baseUrl string, params SearchParams) string {
	var link strings.Builder
	link.WriteString(strings.TrimSuffix(baseUrl, "/"))
	link.WriteString("/search/cases/")

	if params.Company != "" {
		link.WriteString(escape(params.Company))
	}

	link.WriteString("?")

	if params.Dates != nil {
		filter := fmt.Sprintf(
			"date:%s to %s",
			params.Dates.Start.Format(dateFilterLayout),
			params.Dates.End.Format(dateFilterLayout),
		)
		fmt.Fprintf(&link, "&f[%d]=%s", dateFilterIndex, escape(filter))
	}

	if params.Page > 0 {
		fmt.Fprintf(&link, "&page=%d", params.Page)
	}

	return link.String()
}

func CaseUrl(baseUrl string, caseId string) string {
	return strings.TrimSuffix(baseUrl, "/") + "/case/" + caseId
}
