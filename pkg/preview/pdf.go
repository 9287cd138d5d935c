package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/akeil/spritetool"
	"github.com/akeil/spritetool/internal/logging"
)

const (
	sheetImage = "sheet"
	tsFormat   = "2006-01-02 15:04:05"
)

// ContactSheet renders a PDF document with the sheet image on the first page,
// each placement outlined, followed by a table of all placements.
//
// The PDF is written to w.
func ContactSheet(w io.Writer, sheet image.Image, records []spritetool.Placement, title string) error {
	logging.Debug("Render contact sheet %q with %d icons", title, len(records))
	pdf := setupPDF(title)

	var buf bytes.Buffer
	err := png.Encode(&buf, sheet)
	if err != nil {
		return err
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(sheetImage, opts, &buf)

	pdf.AddPage()
	pdf.SetFont("helvetica", "B", 14)
	pdf.CellFormat(0, 20, title, "", 1, "L", false, 0, "")
	pdf.SetFont("helvetica", "", 9)
	b := sheet.Bounds()
	pdf.CellFormat(0, 14, fmt.Sprintf("%d icons, %dx%d px", len(records), b.Dx(), b.Dy()), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	// scale the sheet to the usable page area
	wPage, hPage := pdf.GetPageSize()
	left, _, right, bottom := pdf.GetMargins()
	x0 := left
	y0 := pdf.GetY()
	maxW := wPage - left - right
	maxH := hPage - y0 - bottom - 24
	f := math.Min(maxW/float64(b.Dx()), maxH/float64(b.Dy()))

	pdf.ImageOptions(sheetImage, x0, y0, float64(b.Dx())*f, float64(b.Dy())*f, false, opts, 0, "")

	pdf.SetDrawColor(255, 0, 255)
	pdf.SetLineWidth(0.5)
	for _, p := range records {
		pdf.Rect(x0+float64(p.X)*f, y0+float64(p.Y)*f, float64(p.Width)*f, float64(p.Height)*f, "D")
	}

	placementTable(pdf, records)

	if !pdf.Ok() {
		return pdf.Error()
	}
	return pdf.Output(w)
}

func setupPDF(title string) *gofpdf.Fpdf {
	orientation := "P" // [P]ortrait or [L]andscape
	sizeUnit := "pt"
	fontDir := ""
	pdf := gofpdf.New(orientation, sizeUnit, "A4", fontDir)

	pdf.SetMargins(24, 24, 24) // left, top, right
	pdf.SetAutoPageBreak(true, 32)
	pdf.AliasNbPages("{totalPages}")
	pdf.SetProducer("spritetool", true)
	pdf.SetTitle(title, true)
	created := time.Now().UTC()
	pdf.SetCreationDate(created)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-24)
		pdf.SetFont("helvetica", "", 8)
		pdf.SetTextColor(127, 127, 127)
		pdf.CellFormat(0, 10, fmt.Sprintf("%d / {totalPages}  |  %v  |  %v",
			pdf.PageNo(), title, created.Local().Format(tsFormat)), "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	return pdf
}

func placementTable(pdf *gofpdf.Fpdf, records []spritetool.Placement) {
	pdf.AddPage()
	cols := []struct {
		title string
		width float64
		align string
	}{
		{"#", 40, "R"},
		{"Name", 230, "L"},
		{"X", 60, "R"},
		{"Y", 60, "R"},
		{"Width", 70, "R"},
		{"Height", 70, "R"},
	}

	header := func() {
		pdf.SetFont("helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, c := range cols {
			pdf.CellFormat(c.width, 14, c.title, "1", 0, c.align, true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("helvetica", "", 9)
	}

	header()
	_, hPage := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for i, p := range records {
		if pdf.GetY()+14 > hPage-bottom {
			pdf.AddPage()
			header()
		}
		values := []string{
			fmt.Sprint(i),
			p.Name,
			fmt.Sprint(p.X),
			fmt.Sprint(p.Y),
			fmt.Sprint(p.Width),
			fmt.Sprint(p.Height),
		}
		for j, c := range cols {
			pdf.CellFormat(c.width, 14, values[j], "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}
