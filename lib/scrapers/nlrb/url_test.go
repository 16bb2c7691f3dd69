package nlrb

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCaseListUrl(t *testing.T) {
	dates := &DateRange{Start: date(2017, 1, 1), End: date(2017, 8, 24)}

	testCases := []struct {
		params   SearchParams
		expected string
	}{
		{
			params:   SearchParams{},
			expected: "https://www.nlrb.gov/search/cases/?",
		},
		{
			params:   SearchParams{Dates: dates},
			expected: "https://www.nlrb.gov/search/cases/?&f[0]=date%3A01%2F01%2F2017%20to%2008%2F24%2F2017",
		},
		{
			params:   SearchParams{Company: "Acme Widgets"},
			expected: "https://www.nlrb.gov/search/cases/Acme%20Widgets?",
		},
		{
			params:   SearchParams{Company: "Tom & Jerry's/Co?", Page: 3},
			expected: "https://www.nlrb.gov/search/cases/Tom%20%26%20Jerry%27s%2FCo%3F?&page=3",
		},
		{
			params:   SearchParams{Dates: dates, Company: "Acme", Page: 1},
			expected: "https://www.nlrb.gov/search/cases/Acme?&f[0]=date%3A01%2F01%2F2017%20to%2008%2F24%2F2017&page=1",
		},
		{
			params:   SearchParams{Page: 0},
			expected: "https://www.nlrb.gov/search/cases/?",
		},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, CaseListUrl(DefaultBaseUrl, test.params))
		// the builder has no hidden state
		require.Equal(t, test.expected, CaseListUrl(DefaultBaseUrl, test.params))
	}
}

func TestCaseListUrlDateQuery(t *testing.T) {
	link := CaseListUrl(DefaultBaseUrl, SearchParams{
		Dates: &DateRange{Start: date(2017, 1, 1), End: date(2017, 8, 24)},
	})
	_, query, found := strings.Cut(link, "?")
	require.True(t, found)
	require.Equal(t, "&f[0]=date%3A01%2F01%2F2017%20to%2008%2F24%2F2017", query)
}

func TestCaseListUrlEscapesCompany(t *testing.T) {
	const reserved = ":/?#[]@!$&'()*+,;= "

	link := CaseListUrl("http://localhost:8080/", SearchParams{Company: "Acme " + reserved})
	path := strings.TrimPrefix(link, "http://localhost:8080/search/cases/")
	segment := strings.TrimSuffix(path, "?")

	require.False(t, strings.ContainsAny(segment, reserved), segment)

	unescaped, err := url.PathUnescape(segment)
	require.NoError(t, err)
	require.Equal(t, "Acme "+reserved, unescaped)
}

func TestCaseUrl(t *testing.T) {
	require.Equal(t, "https://www.nlrb.gov/case/29-CA-207813", CaseUrl(DefaultBaseUrl, "29-CA-207813"))
	require.Equal(t, "http://127.0.0.1:1234/case/x", CaseUrl("http://127.0.0.1:1234/", "x"))
}
