package listing

import "io"

// Column maps an entity to one exported cell.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Table is the flat header + rows form handed to export encoders.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Project turns items into a Table using cols, preserving item order.
func Project[T any](items []T, cols []Column[T]) Table {
	t := Table{
		Headers: make([]string, len(cols)),
		Rows:    make([][]string, 0, len(items)),
	}
	for i, c := range cols {
		t.Headers[i] = c.Header
	}
	for _, item := range items {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = c.Value(item)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Format names an export encoding.
type Format string

const (
	FormatSpreadsheet Format = "xlsx"
	FormatDocument    Format = "pdf"
)

// Encoder writes a Table in one file format. title names the sheet or document.
type Encoder interface {
	Encode(w io.Writer, title string, t Table) error
}
