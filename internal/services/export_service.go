package services

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/rental-desk/internal/session"
	"github.com/xuri/excelize/v2"
)

//go:embed templates/contract.html
var templateFS embed.FS

type ExportService struct {
	currency string
	contract *template.Template
	now      func() time.Time
}

func NewExportService(currency string) (*ExportService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/contract.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract template: %w", err)
	}
	return &ExportService{currency: currency, contract: tmpl, now: time.Now}, nil
}

// Money formats an amount with thousands separators and the currency code
func (s *ExportService) Money(d decimal.Decimal) string {
	return formatMoney(d, s.currency)
}

// QuotePDF renders a one page quote of the draft
func (s *ExportService) QuotePDF(d session.Draft) ([]byte, string, error) {
	p := d.Preview()

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Rental Quote")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(40, 6, s.now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	info := [][2]string{
		{"Customer:", p.Customer},
		{"Vehicle:", p.Vehicle},
		{"From:", p.StartDate},
		{"To:", p.EndDate},
		{"Rental days:", fmt.Sprintf("%d", p.Summary.Days)},
		{"Payment method:", p.PaymentMethod},
	}
	for _, row := range info {
		pdf.Cell(40, 6, row[0])
		pdf.Cell(120, 6, tr(row[1]))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(224, 224, 224)
	pdf.CellFormat(80, 7, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 7, "Unit price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(45, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, line := range p.Lines {
		label := line.Label
		if line.Note != "" {
			label += " (" + line.Note + ")"
		}
		pdf.CellFormat(80, 7, tr(label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, s.Money(decimal.RequireFromString(line.UnitPrice)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", line.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 7, s.Money(decimal.RequireFromString(line.Amount)), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	sum := p.Summary
	totals := []struct {
		label string
		value decimal.Decimal
		bold  bool
	}{
		{"Vehicle subtotal", sum.VehicleSubtotal, false},
		{"Surcharges", sum.SurchargeTotal, false},
		{"Discount", sum.Discount, false},
		{"Grand total", sum.GrandTotal, true},
		{"Deposit", sum.Deposit, false},
		{"Paid now", sum.PaidNow, false},
		{"Remaining", sum.Remaining, true},
	}
	for _, t := range totals {
		style := ""
		if t.bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.CellFormat(135, 6, t.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(45, 6, s.Money(t.value), "", 1, "R", false, 0, "")
	}

	if p.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(180, 5, tr("Notes: "+p.Notes), "", "L", false)
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), s.filename("quote", d, "pdf"), nil
}

// QuoteXLSX renders the surcharge lines and the summary as a workbook
func (s *ExportService) QuoteXLSX(d session.Draft) ([]byte, string, error) {
	p := d.Preview()

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Quote"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})

	_ = f.SetCellValue(sheet, "A1", "Rental Quote")
	_ = f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	_ = f.SetCellValue(sheet, "A2", "Customer")
	_ = f.SetCellValue(sheet, "B2", p.Customer)
	_ = f.SetCellValue(sheet, "A3", "Vehicle")
	_ = f.SetCellValue(sheet, "B3", p.Vehicle)
	_ = f.SetCellValue(sheet, "A4", "Period")
	_ = f.SetCellValue(sheet, "B4", strings.TrimSpace(p.StartDate+" - "+p.EndDate))

	_ = f.SetSheetRow(sheet, "A6", &[]interface{}{"Item", "Unit price", "Quantity", "Amount", "Note"})
	_ = f.SetCellStyle(sheet, "A6", "E6", headerStyle)

	row := 7
	for _, line := range p.Lines {
		unit, _ := decimal.NewFromString(line.UnitPrice)
		amount, _ := decimal.NewFromString(line.Amount)
		_ = f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &[]interface{}{
			line.Label, unit.InexactFloat64(), line.Quantity, amount.InexactFloat64(), line.Note,
		})
		row++
	}

	row++
	sum := p.Summary
	totals := []struct {
		label string
		value decimal.Decimal
	}{
		{"Vehicle subtotal", sum.VehicleSubtotal},
		{"Surcharges", sum.SurchargeTotal},
		{"Discount", sum.Discount},
		{"Grand total", sum.GrandTotal},
		{"Deposit", sum.Deposit},
		{"Paid now", sum.PaidNow},
		{"Remaining", sum.Remaining},
	}
	for _, t := range totals {
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), t.label)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), t.value.InexactFloat64())
		row++
	}
	_ = f.SetColWidth(sheet, "A", "A", 32)
	_ = f.SetColWidth(sheet, "B", "E", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	return buf.Bytes(), s.filename("quote", d, "xlsx"), nil
}

type contractView struct {
	session.Preview
	PrintedAt       string
	Days            int
	VehicleSubtotal string
	SurchargeTotal  string
	Discount        string
	GrandTotal      string
	GrandWords      string
	Deposit         string
	PaidNow         string
	Remaining       string
}

// ContractHTML renders the printable contract page
func (s *ExportService) ContractHTML(d session.Draft) ([]byte, error) {
	p := d.Preview()
	for i := range p.Lines {
		p.Lines[i].UnitPrice = s.Money(decimal.RequireFromString(p.Lines[i].UnitPrice))
		p.Lines[i].Amount = s.Money(decimal.RequireFromString(p.Lines[i].Amount))
	}
	sum := p.Summary
	view := contractView{
		Preview:         p,
		PrintedAt:       s.now().Format("2006-01-02 15:04"),
		Days:            sum.Days,
		VehicleSubtotal: s.Money(sum.VehicleSubtotal),
		SurchargeTotal:  s.Money(sum.SurchargeTotal),
		Discount:        s.Money(sum.Discount),
		GrandTotal:      s.Money(sum.GrandTotal),
		GrandWords:      AmountInWords(sum.GrandTotal, s.currency),
		Deposit:         s.Money(sum.Deposit),
		PaidNow:         s.Money(sum.PaidNow),
		Remaining:       s.Money(sum.Remaining),
	}

	var buf bytes.Buffer
	if err := s.contract.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// ContractPDF converts the printable contract with wkhtmltopdf, which must
// be installed on the host. Incomplete drafts are refused.
func (s *ExportService) ContractPDF(d session.Draft) ([]byte, string, error) {
	if err := d.Validate(); err != nil {
		return nil, "", translate(err)
	}
	html, err := s.ContractHTML(d)
	if err != nil {
		return nil, "", err
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, "", fmt.Errorf("failed to create pdf generator: %w", err)
	}
	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(html))
	page.Encoding.Set("utf-8")
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, "", fmt.Errorf("failed to create pdf: %w", err)
	}
	return pdfg.Bytes(), s.filename("contract", d, "pdf"), nil
}

func (s *ExportService) filename(kind string, d session.Draft, ext string) string {
	short := d.SessionID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("%s_%s_%s.%s", kind, short, s.now().Format("2006-01-02"), ext)
}

func formatMoney(d decimal.Decimal, currency string) string {
	fixed := d.StringFixed(2)
	fixed = strings.TrimSuffix(fixed, ".00")

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, frac, hasFrac := strings.Cut(fixed, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if hasFrac {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	if currency != "" {
		out += " " + currency
	}
	return out
}
