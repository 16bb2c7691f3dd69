package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestGetText(t *testing.T) {
	doc := parse(t, `<div id="x"><span class="label">Status:</span> Closed <b>on</b> January 5, 2018</div>`)
	node := doc.Find("#x").Nodes[0]

	require.Equal(t, "Status: Closed on January 5, 2018", GetText(node))
	require.Equal(t, "", GetText(nil))
}

func TestClean(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "  Brooklyn,\n\t NY  ", expected: "Brooklyn, NY"},
		{input: "Charge against Employer", expected: "Charge against Employer"},
		{input: "a\u200bb", expected: "ab"},
		{input: "", expected: ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, Clean(test.input))
	}
}

func TestSelectionText(t *testing.T) {
	doc := parse(t, `<ul><li>One</li><li>
		Two
	</li></ul>`)
	require.Equal(t, "One Two", SelectionText(doc.Find("ul")))
	require.Equal(t, "", SelectionText(doc.Find("table")))
}
