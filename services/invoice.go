// services/invoice.go
package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"cindrella-backend/models"
	"cindrella-backend/utils"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
)

// Invoice actions
type InvoiceAction string

const (
	ActionOpen  InvoiceAction = "open"  // view the PDF
	ActionPrint InvoiceAction = "print" // PDF asks the viewer to print on open
)

// Business identity printed on every invoice.
const (
	businessName    = "Cindrella The Family Spa"
	businessAddress = "Near IDBI Bank, Queen Place 2nd Floor"
	businessContact = "Mobile: 7440534727 | Email: cindrellathefamilyspa@gmail.com"
	invoiceFooter   = "Thank You! Visit Again"
)

// InvoiceRenderer builds single-page PDF invoices. Rendering never touches
// the store.
type InvoiceRenderer struct {
	outDir string
}

func NewInvoiceRenderer(outDir string) *InvoiceRenderer {
	return &InvoiceRenderer{outDir: outDir}
}

// Render produces the invoice PDF for a bill. The print action embeds the
// viewer-side print request; open does not.
func (r *InvoiceRenderer) Render(bill models.Bill, action InvoiceAction) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %d", bill.ID), true)
	pdf.SetMargins(40, 40, 40)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 80

	// Business header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(43, 106, 83)
	pdf.CellFormat(contentWidth, 24, businessName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(contentWidth, 14, businessAddress, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentWidth, 14, businessContact, "", 1, "L", false, 0, "")
	pdf.Ln(6)
	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(40, pdf.GetY(), pageWidth-40, pdf.GetY())
	pdf.Ln(10)

	// Invoice number: issue date plus a random fragment
	invoiceNo := "INV-" + time.UnixMilli(bill.ID).Format("20060102") + "-" + uuid.New().String()[:8]
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(119, 119, 119)
	pdf.CellFormat(contentWidth, 12, invoiceNo, "", 1, "R", false, 0, "")
	pdf.Ln(4)

	// Client block on the left, schedule block on the right
	half := contentWidth / 2
	top := pdf.GetY()
	pdf.SetTextColor(0, 0, 0)
	writePair := func(label, value string) {
		pdf.SetX(40)
		pdf.SetFont("Helvetica", "B", 10)
		text := label + ": "
		labelWidth := pdf.GetStringWidth(text) + 2
		pdf.CellFormat(labelWidth, 14, text, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(half-labelWidth, 14, value, "", 1, "L", false, 0, "")
	}
	writePair("Client", bill.Client)
	writePair("Phone", bill.Phone)
	writePair("Address", bill.Address)

	pdf.SetY(top)
	pdf.SetFont("Helvetica", "", 10)
	right := func(label, value string) {
		pdf.SetX(40 + half)
		pdf.CellFormat(half, 14, label+": "+value, "", 1, "R", false, 0, "")
	}
	right("Date", utils.FormatDateReadable(bill.Date))
	right("Time", bill.From+" - "+bill.To)
	right("Staff", bill.Staff)
	pdf.Ln(20)

	// Line items: this scope always emits exactly one
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetDrawColor(221, 221, 221)
	pdf.CellFormat(contentWidth*0.7, 20, "Service", "B", 0, "L", false, 0, "")
	pdf.CellFormat(contentWidth*0.3, 20, "Amount", "B", 1, "R", false, 0, "")

	serviceLabel := bill.ServiceName
	if serviceLabel == "" {
		serviceLabel = strconv.Itoa(bill.ServiceID)
	}
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentWidth*0.7, 22, serviceLabel, "", 0, "L", false, 0, "")
	pdf.CellFormat(contentWidth*0.3, 22, formatAmount(bill.Total), "", 1, "R", false, 0, "")
	pdf.Ln(14)

	// Total
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentWidth*0.7, 18, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentWidth*0.15, 18, "Total", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentWidth*0.15, 18, formatAmount(bill.Total), "", 1, "R", false, 0, "")
	pdf.Ln(10)
	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(40, pdf.GetY(), pageWidth-40, pdf.GetY())
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(119, 119, 119)
	pdf.CellFormat(contentWidth, 16, invoiceFooter, "", 1, "C", false, 0, "")

	if action == ActionPrint {
		// jsPDF autoPrint equivalent: the viewer opens its print dialog
		pdf.SetJavascript("print(true);")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice for bill %d: %w", bill.ID, err)
	}
	return buf.Bytes(), nil
}

// RenderToFile writes the rendered invoice under the output directory and
// returns its path. Used by the fire-and-forget render after submit.
func (r *InvoiceRenderer) RenderToFile(bill models.Bill, action InvoiceAction) (string, error) {
	data, err := r.Render(bill, action)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(r.outDir, fmt.Sprintf("invoice-%d.pdf", bill.ID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func formatAmount(v float64) string {
	return "Rs. " + strconv.FormatFloat(v, 'f', -1, 64)
}
