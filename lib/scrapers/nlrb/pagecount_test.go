package nlrb

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPageCount(t *testing.T) {
	testCases := []struct {
		body     string
		expected int
	}{
		{body: "", expected: 1},
		{body: "<html><body>no pagination</body></html>", expected: 1},
		{body: `<a href="/search/cases?page=42"`, expected: 42},
		{body: `<a href="/search/cases?page=7&x=1`, expected: 7},
		{body: `?page=3 ?page=12`, expected: 12},
		{body: `<a href="?page=9`, expected: 9},
		{body: `page=5 &page=6`, expected: 1},
	}

	for _, test := range testCases {
		count, err := PageCount(test.body)
		require.NoError(t, err, test.body)
		require.Equal(t, test.expected, count, test.body)
	}
}

func TestPageCountWithoutDigits(t *testing.T) {
	_, err := PageCount(`<a href="?page=last">`)
	require.Error(t, err)

	_, err = PageCount(`?page=`)
	require.Error(t, err)
}

func TestPageCountFixture(t *testing.T) {
	page0, err := os.ReadFile("testdata/listing_page0.html")
	if err != nil {
		t.Fatal(err)
	}
	count, err := PageCount(string(page0))
	require.NoError(t, err)
	require.Equal(t, 2, count)

	page1, err := os.ReadFile("testdata/listing_page1.html")
	if err != nil {
		t.Fatal(err)
	}
	count, err = PageCount(string(page1))
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
