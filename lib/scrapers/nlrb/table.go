package nlrb

import (
	"nlrbdata/lib/htmlutil"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// same limits browsers apply
const (
	maxColspan = 1000
	maxRowspan = 65534
)

// ExtractTable reads a <table> into a Table. The header is taken from
// <thead>, or from a leading row made only of <th> cells. Cells spanning
// several columns or rows are repeated in each of them and short rows are
// padded.
// A missing table or one without data rows gives the empty Table.
func ExtractTable(table *goquery.Selection) Table {
	table = table.First()
	if table.Length() == 0 {
		return Table{}
	}
	owner := table.Nodes[0]

	rows := table.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		closest := tr.Closest("table")
		return closest.Length() > 0 && closest.Nodes[0] == owner
	})

	var columns []string
	var data [][]string
	// rowspans do not reach past their thead/tbody
	carried := map[int]*carriedCell{}
	var group *html.Node
	rows.Each(func(i int, tr *goquery.Selection) {
		if parent := tr.Parent(); parent.Length() > 0 && parent.Nodes[0] != group {
			group = parent.Nodes[0]
			clear(carried)
		}
		cells := tr.ChildrenFiltered("th, td")
		if cells.Length() == 0 {
			return
		}
		row := readRow(cells, carried)

		inHead := tr.ParentsFiltered("thead").Length() > 0
		onlyHeaderCells := cells.Filter("td").Length() == 0
		if columns == nil && len(data) == 0 && (inHead || onlyHeaderCells) {
			columns = row
			return
		}
		if inHead {
			return
		}
		data = append(data, row)
	})

	if len(data) == 0 {
		return Table{}
	}

	width := len(columns)
	for _, row := range data {
		width = max(width, len(row))
	}
	for i, row := range data {
		data[i] = pad(row, width)
	}
	if columns != nil {
		columns = pad(columns, width)
	}

	return Table{Columns: columns, Rows: data}
}

// carriedCell is a cell from an earlier row that still spans `rows` more rows.
type carriedCell struct {
	text string
	rows int
}

func spanAttr(cell *goquery.Selection, name string, limit int) int {
	span, err := strconv.Atoi(cell.AttrOr(name, "1"))
	if err != nil || span < 1 {
		return 1
	}
	return min(span, limit)
}

// readRow reads the cells of a row, placing the cells carried down by
// rowspans at their columns and recording the new ones.
func readRow(cells *goquery.Selection, carried map[int]*carriedCell) []string {
	var row []string
	fillCarried := func() {
		for {
			cell, ok := carried[len(row)]
			if !ok {
				return
			}
			row = append(row, cell.text)
			cell.rows--
			if cell.rows == 0 {
				delete(carried, len(row)-1)
			}
		}
	}

	cells.Each(func(_ int, cell *goquery.Selection) {
		fillCarried()
		text := htmlutil.SelectionText(cell)
		colspan := spanAttr(cell, "colspan", maxColspan)
		rowspan := spanAttr(cell, "rowspan", maxRowspan)
		for i := 0; i < colspan; i++ {
			if rowspan > 1 {
				carried[len(row)] = &carriedCell{text: text, rows: rowspan - 1}
			}
			row = append(row, text)
		}
	})
	fillCarried()
	return row
}

func pad(row []string, width int) []string {
	for len(row) < width {
		row = append(row, "")
	}
	return row
}
