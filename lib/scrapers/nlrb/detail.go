package nlrb

import (
	"context"
	"fmt"
	"io"
	"nlrbdata/lib/htmlutil"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	caseNumberClass   = "views-label-case"
	cityClass         = "views-label-city"
	dateFiledClass    = "views-label-date-filed"
	regionClass       = "views-label-dispute-region"
	statusClass       = "views-label-status"
	closeMethodClass  = "views-label-close-method"
	docketClass       = "view-docket-activity"
	participantsClass = "view-participants"
	allegationsClass  = "view-allegations"
)

// labelValue reads the element right after the last element of `class`,
// earlier ones belong to summaries the page repeats.
// found is false only when there is no such label.
func labelValue(doc *goquery.Document, class string) (value string, found bool, err error) {
	label := doc.Find("." + class).Last()
	if label.Length() == 0 {
		return "", false, nil
	}
	next := label.Next()
	if next.Length() == 0 {
		return "", true, fmt.Errorf("%w: value after .%s", ErrMissingElement, class)
	}
	return htmlutil.SelectionText(next), true, nil
}

func requiredLabelValue(doc *goquery.Document, class string) (string, error) {
	value, found, err := labelValue(doc, class)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("%w: .%s", ErrMissingElement, class)
	}
	return value, nil
}

func tableIn(doc *goquery.Document, class string) (Table, error) {
	container := doc.Find("." + class).Last()
	if container.Length() == 0 {
		return Table{}, fmt.Errorf("%w: .%s", ErrMissingElement, class)
	}
	// pagers and filters are rendered as tables ahead of the data
	return ExtractTable(container.Find("table").Last()), nil
}

// ParseCase parses a case detail page.
func ParseCase(r io.Reader) (CaseDetail, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return CaseDetail{}, err
	}

	var detail CaseDetail
	required := []struct {
		class string
		out   *string
	}{
		{class: caseNumberClass, out: &detail.CaseNumber},
		{class: cityClass, out: &detail.City},
		{class: dateFiledClass, out: &detail.DateFiled},
		{class: regionClass, out: &detail.Region},
		{class: statusClass, out: &detail.Status},
	}
	for _, field := range required {
		*field.out, err = requiredLabelValue(doc, field.class)
		if err != nil {
			return CaseDetail{}, err
		}
	}

	closeReason, found, err := labelValue(doc, closeMethodClass)
	if err != nil {
		return CaseDetail{}, err
	}
	if found {
		detail.CloseReason = &closeReason
	}

	detail.Docket, err = tableIn(doc, docketClass)
	if err != nil {
		return CaseDetail{}, err
	}

	detail.Allegations = []string{}
	doc.Find("." + allegationsClass).Last().Find(".field-content").Each(func(_ int, s *goquery.Selection) {
		detail.Allegations = append(detail.Allegations, htmlutil.SelectionText(s))
	})

	detail.Participants, err = tableIn(doc, participantsClass)
	if err != nil {
		return CaseDetail{}, err
	}

	return detail, nil
}

func (c *Client) GetCase(ctx context.Context, caseId string) (CaseDetail, error) {
	ctx, span := tracer.Start(ctx, "client:GetCase")
	defer span.End()
	span.SetAttributes(attribute.String("case_id", caseId))

	body, err := c.Fetch(ctx, CaseUrl(c.baseUrl(), caseId))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return CaseDetail{}, err
	}

	detail, err := ParseCase(strings.NewReader(body))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse case page")
		return CaseDetail{}, fmt.Errorf("case %s: %w", caseId, err)
	}
	casesParsed.Add(ctx, 1)

	return detail, nil
}
