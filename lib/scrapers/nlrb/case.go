package nlrb

import (
	"slices"
	"time"
)

// CaseSummary is one search result of a listing page.
type CaseSummary struct {
	Title string `json:"title"`
	Url   string `json:"url"`

	CaseNumber     string `json:"case_number,omitempty"`
	DateFiled      string `json:"date_filed,omitempty"`
	Location       string `json:"location,omitempty"`
	Status         string `json:"status,omitempty"`
	RegionAssigned string `json:"region_assigned,omitempty"`

	// set only when Status reads "<type> on <date>"
	StatusType string     `json:"status_type,omitempty"`
	StatusDate *time.Time `json:"status_date,omitempty"`

	// set only when RegionAssigned is present
	RegionNumber string `json:"region_number,omitempty"`
	RegionCity   string `json:"region_city,omitempty"`

	// labels that have no field of their own, keyed like "employees_involved"
	Extra map[string]string `json:"extra,omitempty"`
	// keys of every label found on the page, including empty ones
	Labels []string `json:"labels,omitempty"`
}

func (s *CaseSummary) setLabel(key, value string) {
	if !slices.Contains(s.Labels, key) {
		s.Labels = append(s.Labels, key)
	}
	switch key {
	case "case_number":
		s.CaseNumber = value
	case "date_filed":
		s.DateFiled = value
	case "location":
		s.Location = value
	case "status":
		s.Status = value
	case "region_assigned":
		s.RegionAssigned = value
	default:
		if s.Extra == nil {
			s.Extra = map[string]string{}
		}
		s.Extra[key] = value
	}
}

func (s CaseSummary) knownLabels() map[string]string {
	return map[string]string{
		"case_number":     s.CaseNumber,
		"date_filed":      s.DateFiled,
		"location":        s.Location,
		"status":          s.Status,
		"region_assigned": s.RegionAssigned,
	}
}

// Fields flattens the summary into a single key -> value mapping holding
// only the keys that were found on the page, empty values included.
func (s CaseSummary) Fields() map[string]any {
	fields := map[string]any{}
	known := s.knownLabels()
	for _, key := range s.Labels {
		if value, ok := known[key]; ok {
			fields[key] = value
			continue
		}
		fields[key] = s.Extra[key]
	}
	// summaries built by hand have no Labels
	for key, value := range known {
		if value != "" {
			fields[key] = value
		}
	}
	for key, value := range s.Extra {
		fields[key] = value
	}

	fields["title"] = s.Title
	fields["url"] = s.Url
	if s.StatusDate != nil {
		fields["status_type"] = s.StatusType
		fields["status_date"] = *s.StatusDate
	}
	if _, ok := fields["region_assigned"]; ok {
		fields["region_number"] = s.RegionNumber
		fields["region_city"] = s.RegionCity
	}
	return fields
}

// Table is a table as rendered on a case page. The zero value is the
// empty table.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// CaseDetail is everything read from a single case page.
type CaseDetail struct {
	CaseNumber string `json:"case_number"`
	City       string `json:"city"`
	DateFiled  string `json:"date_filed"`
	Region     string `json:"region"`
	Status     string `json:"status"`
	// nil when the case page has no close method
	CloseReason *string `json:"close_reason"`

	Docket       Table    `json:"docket"`
	Allegations  []string `json:"allegations"`
	Participants Table    `json:"participants"`
}
