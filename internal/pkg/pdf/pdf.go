// Package pdf lays out simple A4 statements: a title, label/value lines and
// ruled tables.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

const (
	fontFamily  = "Helvetica"
	lineHeight  = 7.0
	tableHeight = 6.0
	labelWidth  = 60.0
)

type Document struct {
	pdf *gofpdf.Fpdf
}

// New starts a portrait A4 document whose first page carries title.
func New(title string) *Document {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetAutoPageBreak(true, 15)

	d := &Document{pdf: pdf}
	d.Page(title)
	return d
}

// Page starts a new page with a title.
func (d *Document) Page(title string) {
	d.pdf.AddPage()
	d.pdf.SetFont(fontFamily, "B", 16)
	d.pdf.Cell(0, 10, title)
	d.pdf.Ln(12)
	d.pdf.SetFont(fontFamily, "", 11)
}

func (d *Document) Heading(text string) {
	d.pdf.Ln(3)
	d.pdf.SetFont(fontFamily, "B", 12)
	d.pdf.Cell(0, 8, text)
	d.pdf.Ln(lineHeight + 1)
	d.pdf.SetFont(fontFamily, "", 11)
}

// Line writes a label and its value on one row.
func (d *Document) Line(label, value string) {
	d.pdf.CellFormat(labelWidth, lineHeight, label, "", 0, "L", false, 0, "")
	d.pdf.CellFormat(0, lineHeight, value, "", 1, "L", false, 0, "")
}

// AmountLine writes a label and a right-aligned money amount.
func (d *Document) AmountLine(label string, amount decimal.Decimal) {
	d.pdf.CellFormat(labelWidth*2, lineHeight, label, "", 0, "L", false, 0, "")
	d.pdf.CellFormat(40, lineHeight, Money(amount), "", 1, "R", false, 0, "")
}

// Table draws a bordered table. Columns after the first are right-aligned.
func (d *Document) Table(headers []string, widths []float64, rows [][]string) {
	d.pdf.SetFont(fontFamily, "B", 9)
	for i, h := range headers {
		d.pdf.CellFormat(widths[i], tableHeight, h, "1", 0, "C", false, 0, "")
	}
	d.pdf.Ln(-1)

	d.pdf.SetFont(fontFamily, "", 9)
	for _, row := range rows {
		for i, cell := range row {
			align := "R"
			if i == 0 {
				align = "L"
			}
			d.pdf.CellFormat(widths[i], tableHeight, cell, "1", 0, align, false, 0, "")
		}
		d.pdf.Ln(-1)
	}
	d.pdf.SetFont(fontFamily, "", 11)
}

func (d *Document) Spacer() {
	d.pdf.Ln(lineHeight)
}

// Bytes renders the document.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Money formats an amount as ringgit with two decimals.
func Money(amount decimal.Decimal) string {
	return "RM " + amount.StringFixed(2)
}
