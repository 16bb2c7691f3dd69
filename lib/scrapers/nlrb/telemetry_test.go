package nlrb

import (
	"context"
	"log"
	"nlrbdata/lib/telemetry"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

var testTelemetry telemetry.TestTelemetry

func TestMain(m *testing.M) {
	var err error
	testTelemetry, err = telemetry.SetupForTesting("nlrbdata.lib.scrapers.nlrb")
	if err != nil {
		log.Fatal(err)
	}
	code := m.Run()
	err = testTelemetry.Shutdown(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(code)
}

func TestGetCaseListTelemetry(t *testing.T) {
	ctx := context.Background()
	site := newFixtureSite(t, "listing_page0.html", "listing_page1.html")
	client := newTestClient(t, site, &sleepRecorder{})

	pagesBefore, err := testTelemetry.CounterValue(ctx, "nlrb.pages_fetched")
	require.NoError(t, err)
	casesBefore, err := testTelemetry.CounterValue(ctx, "nlrb.cases_parsed")
	require.NoError(t, err)

	cases, err := client.GetCaseList(ctx, SearchParams{})
	require.NoError(t, err)
	require.Len(t, cases, 5)

	pagesAfter, err := testTelemetry.CounterValue(ctx, "nlrb.pages_fetched")
	require.NoError(t, err)
	casesAfter, err := testTelemetry.CounterValue(ctx, "nlrb.cases_parsed")
	require.NoError(t, err)

	// the page count request is fetched too
	require.Equal(t, int64(3), pagesAfter-pagesBefore)
	require.Equal(t, int64(5), casesAfter-casesBefore)

	spans := testTelemetry.EndedSpanNames()
	require.Contains(t, spans, "client:GetCaseList")
	require.Contains(t, spans, "client:GetPageCount")
	require.Contains(t, spans, "client:Fetch")
}
