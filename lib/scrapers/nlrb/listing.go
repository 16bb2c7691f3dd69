package nlrb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"nlrbdata/lib/htmlutil"
	"nlrbdata/lib/textutil"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const statusDateSeparator = " on "

// ParseCaseList parses every search result of a listing page, in document order.
func ParseCaseList(r io.Reader) ([]CaseSummary, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	items := doc.Find("li.search-result")
	cases := make([]CaseSummary, 0, items.Length())
	for i := range items.Nodes {
		summary, err := parseCaseListItem(items.Eq(i))
		if err != nil {
			return nil, fmt.Errorf("search result %d: %w", i, err)
		}
		cases = append(cases, summary)
	}
	return cases, nil
}

func parseCaseListItem(li *goquery.Selection) (CaseSummary, error) {
	title := li.Find(".title").First()
	if title.Length() == 0 {
		return CaseSummary{}, fmt.Errorf("%w: .title", ErrMissingElement)
	}
	link := title
	if goquery.NodeName(title) != "a" {
		link = title.Find("a").First()
	}
	href, ok := link.Attr("href")
	if !ok {
		return CaseSummary{}, fmt.Errorf("%w: .title a[href]", ErrMissingElement)
	}

	summary := CaseSummary{
		Title: htmlutil.SelectionText(title),
		Url:   href,
	}

	li.Find(".label").Each(func(_ int, label *goquery.Selection) {
		key := textutil.LabelKey(htmlutil.SelectionText(label))
		if key == "" {
			return
		}
		value := textutil.AfterLabel(htmlutil.SelectionText(label.Parent()))
		summary.setLabel(key, value)
	})

	err := splitStatus(&summary)
	if err != nil {
		return CaseSummary{}, err
	}
	splitRegion(&summary)

	return summary, nil
}

// splitStatus splits "Closed on January 5, 2018" into its type and date.
func splitStatus(s *CaseSummary) error {
	pos := strings.LastIndex(s.Status, statusDateSeparator)
	if pos <= 0 {
		return nil
	}

	dateText := strings.TrimSpace(s.Status[pos+len(statusDateSeparator):])
	// the site prints calendar dates, keep them zone independent
	date, err := dateparse.ParseIn(dateText, time.UTC)
	if err != nil {
		return fmt.Errorf("status date %q: %w", dateText, err)
	}

	s.StatusType = strings.TrimSpace(s.Status[:pos])
	s.StatusDate = &date
	return nil
}

// splitRegion splits "05, Brooklyn, NY" into the region number and city.
func splitRegion(s *CaseSummary) {
	if s.RegionAssigned == "" {
		return
	}
	number, city, _ := strings.Cut(s.RegionAssigned, ",")
	s.RegionNumber = strings.TrimSpace(number)
	s.RegionCity = strings.TrimSpace(city)
}

// GetCaseList walks every listing page matching `params` in ascending
// order. params.Page is ignored.
func (c *Client) GetCaseList(ctx context.Context, params SearchParams) ([]CaseSummary, error) {
	ctx, span := tracer.Start(ctx, "client:GetCaseList")
	defer span.End()

	params.Page = 0
	pageCount, err := c.GetPageCount(ctx, CaseListUrl(c.baseUrl(), params))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to get page count")
		return nil, fmt.Errorf("page count: %w", err)
	}
	slog.InfoContext(ctx, "listing case pages", "pages", pageCount, "company", params.Company)

	cases := []CaseSummary{}
	for page := 0; page < pageCount; page++ {
		params.Page = page
		link := CaseListUrl(c.baseUrl(), params)

		body, err := c.Fetch(ctx, link)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch listing page")
			return nil, fmt.Errorf("listing page %d: %w", page, err)
		}

		summaries, err := ParseCaseList(strings.NewReader(body))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to parse listing page")
			return nil, fmt.Errorf("listing page %d: %w", page, err)
		}
		casesParsed.Add(ctx, int64(len(summaries)))

		slog.DebugContext(ctx, "fetched listing page", "page", page, "items", len(summaries))
		cases = append(cases, summaries...)
	}

	span.SetAttributes(
		attribute.Int("page_count", pageCount),
		attribute.Int("case_count", len(cases)),
	)
	return cases, nil
}
