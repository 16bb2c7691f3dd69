package nlrb

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const pageMarker = "?page="

// PageCount reads the page number of the last "?page=" link in a listing
// page, which the pagination widget points at the final page. A page
// without pagination has a single page.
func PageCount(body string) (int, error) {
	pos := strings.LastIndex(body, pageMarker)
	if pos == -1 {
		return 1, nil
	}

	start := pos + len(pageMarker)
	end := start
	for end < len(body) && body[end] >= '0' && body[end] <= '9' {
		end++
	}
	if end == start {
		return 0, fmt.Errorf("no page number after %q at offset %d", pageMarker, pos)
	}

	return strconv.Atoi(body[start:end])
}

func (c *Client) GetPageCount(ctx context.Context, link string) (int, error) {
	ctx, span := tracer.Start(ctx, "client:GetPageCount")
	defer span.End()

	body, err := c.Fetch(ctx, link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return 0, err
	}

	count, err := PageCount(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read page count")
		return 0, err
	}
	span.SetAttributes(attribute.Int("page_count", count))

	return count, nil
}
