package nlrb

import (
	"nlrbdata/lib/telemetry"

	"go.opentelemetry.io/otel/metric"
)

var tracer = telemetry.Tracer("nlrbdata.lib.scrapers.nlrb")
var meter = telemetry.Meter("nlrbdata.lib.scrapers.nlrb")

var pagesFetched, _ = meter.Int64Counter(
	"nlrb.pages_fetched",
	metric.WithDescription("Pages fetched from the NLRB website."),
)
var casesParsed, _ = meter.Int64Counter(
	"nlrb.cases_parsed",
	metric.WithDescription("Case summaries and details parsed."),
)
