package rendering

import (
	"bytes"
	"fmt"
	"sort"

	"turnover_service/internal/domain/entities"
	"turnover_service/internal/domain/pricing"
	"turnover_service/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
)

var breakdownLabels = []struct{ key, label string }{
	{pricing.KeyBase, "Base clean"},
	{pricing.KeyBedroomsCost, "Bedrooms"},
	{pricing.KeyBathroomsCost, "Bathrooms"},
	{pricing.KeyDeepClean, "Deep clean"},
	{pricing.KeyPremiumLinen, "Premium linen"},
	{pricing.KeyCustomOverride, "Custom price"},
}

// QuotePDFRenderer renders a stored quote as a one page A4 document using the
// built-in Helvetica fonts, so no font files are needed at runtime.
type QuotePDFRenderer struct {
	title string
}

var _ interfaces.IQuoteRenderer = (*QuotePDFRenderer)(nil)

func NewQuotePDFRenderer(serviceName string) *QuotePDFRenderer {
	return &QuotePDFRenderer{title: serviceName}
}

func (r *QuotePDFRenderer) Render(q entities.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Turnover quote "+q.ID, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Turnover clean quote"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Quote %s, %s", q.ID, q.CreatedAt.UTC().Format("02 Jan 2006"))))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Host: %s <%s>", q.HostName, q.Email)))
	pdf.Ln(6)
	if q.Phone != nil {
		pdf.Cell(0, 6, tr("Phone: "+*q.Phone))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, tr(fmt.Sprintf("Property: %s (%d bed, %d bath)",
		q.Property.Address, q.Property.Bedrooms, q.Property.Bathrooms)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(120, 7, "Item")
	pdf.CellFormat(40, 7, "Amount", "", 0, "R", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range breakdownLines(q.Pricing.Breakdown) {
		pdf.Cell(120, 6, tr(line.label))
		pdf.CellFormat(40, 6, money(line.amount, q.Pricing.Currency), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(120, 7, "Total")
	pdf.CellFormat(40, 7, money(q.Pricing.Total, q.Pricing.Currency), "", 0, "R", false, 0, "")
	pdf.Ln(10)

	if q.Notes != nil {
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, tr("Notes: "+*q.Notes), "", "L", false)
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, tr(r.title))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("quote pdf %s: %w", q.ID, err)
	}
	return buf.Bytes(), nil
}

type breakdownLine struct {
	label  string
	amount float64
}

// breakdownLines lists known keys in a fixed order, skipping unselected
// add-ons, then any unknown keys alphabetically.
func breakdownLines(breakdown map[string]float64) []breakdownLine {
	seen := make(map[string]bool, len(breakdown))
	var lines []breakdownLine
	for _, l := range breakdownLabels {
		amount, ok := breakdown[l.key]
		seen[l.key] = true
		if !ok || (amount == 0 && (l.key == pricing.KeyDeepClean || l.key == pricing.KeyPremiumLinen)) {
			continue
		}
		lines = append(lines, breakdownLine{label: l.label, amount: amount})
	}

	var rest []string
	for k := range breakdown {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		lines = append(lines, breakdownLine{label: k, amount: breakdown[k]})
	}
	return lines
}

func money(v float64, currency string) string {
	return fmt.Sprintf("%s %.2f", currency, v)
}
