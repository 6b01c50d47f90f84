package export

import (
	_ "embed"
	"io"
	"strings"

	"adminconsole/internal/listing"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	cellHeight = 7.0
	margin     = 10.0
	fontSize   = 9.0
	fontFamily = "DejaVu"
	ellipsis   = "..."
)

// DejaVu covers Latin, Vietnamese and Cyrillic names; the PDF core fonts only cover cp1252.
var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	regularFont []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	boldFont []byte
)

// Document writes an A4 landscape PDF table; the header row repeats on every page.
type Document struct{}

func newPDF(title string) *fpdf.Fpdf {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddUTF8FontFromBytes(fontFamily, "", regularFont)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", boldFont)
	pdf.SetTitle(title, true)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	return pdf
}

func (Document) Encode(w io.Writer, title string, t listing.Table) error {
	pdf := newPDF(title)
	if err := pdf.Error(); err != nil {
		return errors.Wrap(err, "load pdf font")
	}

	pageWidth, _ := pdf.GetPageSize()
	colWidth := pageWidth - 2*margin
	if n := len(t.Headers); n > 0 {
		colWidth /= float64(n)
	}

	header := func() {
		pdf.SetFont(fontFamily, "B", fontSize)
		pdf.SetFillColor(230, 230, 230)
		for _, h := range t.Headers {
			pdf.CellFormat(colWidth, cellHeight, fit(pdf, h, colWidth), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(fontFamily, "", fontSize)
	}
	pdf.SetHeaderFunc(header)

	pdf.AddPage()
	for _, row := range t.Rows {
		for _, v := range row {
			pdf.CellFormat(colWidth, cellHeight, fit(pdf, v, colWidth), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "write pdf")
	}
	return nil
}

// fit truncates the UTF-8 string s on a rune boundary, adding an ellipsis, so it stays
// inside a cell of width w in the current font.
func fit(pdf *fpdf.Fpdf, s string, w float64) string {
	limit := w - 2*pdf.GetCellMargin()
	if pdf.GetStringWidth(s) <= limit {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+ellipsis) > limit {
		r = r[:len(r)-1]
	}
	return strings.TrimRight(string(r), " ") + ellipsis
}
