package output

import (
	"bytes"
	"fmt"

	"github.com/LipeHeitz/pricing-k2/internal/domain"
	"github.com/go-pdf/fpdf"
)

// PDFFormatter renders the client-facing report: summary block, cash
// flow schedule and the investor recovery table.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string      { return "pdf" }
func (p PDFFormatter) Extension() string { return "pdf" }

func (p PDFFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Installment Pricing Simulation", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	summary := []string{
		fmt.Sprintf("Operation: %s    Installments: %d    Principal: %s",
			report.Parameters.OperationType, report.Parameters.Installments,
			FormatCurrency(report.Parameters.Principal)),
		fmt.Sprintf("Optimal payment: %s    Theoretical PMT: %s",
			FormatCurrency(report.OptimalPayment), FormatCurrency(report.TheoreticalPayment)),
		fmt.Sprintf("Gross IRR: %s    Net IRR: %s    Investor IRR: %s",
			FormatPercentBR(report.Table.GrossIRRPercent),
			FormatPercentBR(report.Table.NetIRRPercent),
			FormatPercentBR(report.Recovery.InvestorIRR.Mul(hundred))),
		fmt.Sprintf("Total taxes: %s    Net revenue: %s    IR recovered: %s",
			FormatBRL(report.Table.Totals.TaxesTotal),
			FormatBRL(report.Table.Totals.NetTotal),
			FormatBRL(report.Recovery.TotalRecovered)),
	}
	for _, line := range summary {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	scheduleHeader := []string{"Per", "Gross", "Net", "PIS", "COFINS", "CSSL", "IRPJ"}
	widths := []float64{12, 45, 45, 35, 35, 35, 35}
	p.tableHeader(pdf, scheduleHeader, widths)
	pdf.SetFont("Helvetica", "", 8)
	for _, row := range report.Table.Rows {
		cells := []string{
			fmt.Sprintf("%d", row.Period),
			FormatBRL(row.Gross), FormatBRL(row.Net),
			FormatBRL(row.PIS), FormatBRL(row.COFINS),
			FormatBRL(row.CSSL), FormatBRL(row.IRPJ),
		}
		p.tableRow(pdf, cells, widths)
	}
	pdf.Ln(6)

	recoveryHeader := []string{"Per", "Opening", "Installment", "Recovery", "Closing", "Net"}
	recoveryWidths := []float64{12, 45, 45, 45, 45, 45}
	p.tableHeader(pdf, recoveryHeader, recoveryWidths)
	pdf.SetFont("Helvetica", "", 8)
	for _, row := range report.Recovery.Rows {
		cells := []string{
			fmt.Sprintf("%d", row.Period),
			FormatBRL(row.OpeningBalance), FormatBRL(row.Installment),
			FormatBRL(row.Recovery), FormatBRL(row.ClosingBalance),
			FormatBRL(row.NetRecovery),
		}
		p.tableRow(pdf, cells, recoveryWidths)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p PDFFormatter) tableHeader(pdf *fpdf.Fpdf, cells []string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(27, 54, 93)
	pdf.SetTextColor(255, 255, 255)
	for i, cell := range cells {
		pdf.CellFormat(widths[i], 6, cell, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
}

func (p PDFFormatter) tableRow(pdf *fpdf.Fpdf, cells []string, widths []float64) {
	for i, cell := range cells {
		pdf.CellFormat(widths[i], 5, cell, "1", 0, "R", false, 0, "")
	}
	pdf.Ln(-1)
}
