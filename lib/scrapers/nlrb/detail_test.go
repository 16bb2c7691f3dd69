package nlrb

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseCase(t *testing.T) {
	detail, err := ParseCase(openFixture(t, "case.html"))
	require.NoError(t, err)

	closeReason := "Withdrawal Non-adjusted"
	expected := CaseDetail{
		CaseNumber:  "29-CA-207813",
		City:        "Brooklyn",
		DateFiled:   "10/12/2017",
		Region:      "Region 29, Brooklyn, New York",
		Status:      "Closed",
		CloseReason: &closeReason,
		Docket: Table{
			Columns: []string{"Date", "Document", "Issued/Filed By"},
			Rows: [][]string{
				{"01/05/2018", "Withdrawal Request", "Charging Party"},
				{"10/12/2017", "Charge Against Employer", "Charging Party"},
			},
		},
		Allegations: []string{
			"8(a)(1) Coercive Statements (Threats, Promises of Benefits, etc.)",
			"8(a)(3) Discharge of Employee",
		},
		Participants: Table{
			Columns: []string{"Participant", "Address", "Phone"},
			Rows: [][]string{
				{"Charging Party Individual", "Charging Party Individual", ""},
				{"Employer Acme Widgets, Inc.", "1 Main St Brooklyn, NY 11201", "(718)555-0100"},
			},
		},
	}

	if diff := cmp.Diff(expected, detail); diff != "" {
		t.Fatalf("case detail mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCaseOptionalSections(t *testing.T) {
	detail, err := ParseCase(openFixture(t, "case_minimal.html"))
	require.NoError(t, err)

	require.Equal(t, "13-RC-200001", detail.CaseNumber)
	require.Equal(t, "Open", detail.Status)
	require.Nil(t, detail.CloseReason)
	require.NotNil(t, detail.Allegations)
	require.Empty(t, detail.Allegations)
	require.True(t, detail.Docket.Empty())
	require.Equal(t, Table{}, detail.Docket)
	require.Equal(t, Table{}, detail.Participants)
}

func TestParseCaseRepeatedElements(t *testing.T) {
	detail, err := ParseCase(openFixture(t, "case_duplicates.html"))
	require.NoError(t, err)

	expected := CaseDetail{
		CaseNumber: "29-CA-1",
		City:       "Scranton",
		DateFiled:  "02/14/2018",
		Region:     "Region 04, Philadelphia, Pennsylvania",
		Status:     "Open",
		Docket: Table{
			Columns: []string{"Date", "Document"},
			Rows:    [][]string{{"02/14/2018", "Charge Against Employer"}},
		},
		Allegations: []string{"8(a)(1) Coercive Rules"},
		Participants: Table{
			Columns: []string{"Participant"},
			Rows:    [][]string{{"Employer Keystone Hospital"}},
		},
	}

	if diff := cmp.Diff(expected, detail); diff != "" {
		t.Fatalf("case detail mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCaseMissingRequired(t *testing.T) {
	contents, err := os.ReadFile("testdata/case.html")
	if err != nil {
		t.Fatal(err)
	}
	page := string(contents)

	testCases := []struct {
		name    string
		replace string
		with    string
	}{
		{name: "case number", replace: "views-label-case\"", with: "\""},
		{name: "status", replace: "views-label-status", with: "views-label"},
		{name: "docket container", replace: "view-docket-activity", with: "view-docket"},
		{name: "participants container", replace: "view-participants", with: "view-people"},
		{
			name:    "close method without a value",
			replace: `<span class="field-content">Withdrawal Non-adjusted</span>`,
			with:    "",
		},
	}

	for _, test := range testCases {
		broken := strings.Replace(page, test.replace, test.with, 1)
		require.NotEqual(t, page, broken, test.name)

		_, err := ParseCase(strings.NewReader(broken))
		require.ErrorIs(t, err, ErrMissingElement, test.name)
	}
}
