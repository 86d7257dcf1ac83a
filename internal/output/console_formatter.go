package output

import (
	"bytes"
	"fmt"

	"github.com/LipeHeitz/pricing-k2/internal/domain"
)

// ConsoleFormatter renders the simulation summary, the annotated cash
// flow table and the investor recovery view as fixed-width text.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "INSTALLMENT PRICING SIMULATION")
	fmt.Fprintln(&buf, "==============================")
	fmt.Fprintf(&buf, "Run:                 %s\n", report.RunID)
	fmt.Fprintf(&buf, "Operation:           %s\n", report.Parameters.OperationType)
	fmt.Fprintf(&buf, "Principal:           %s\n", FormatCurrency(report.Parameters.Principal))
	fmt.Fprintf(&buf, "Installments:        %d\n", report.Parameters.Installments)
	fmt.Fprintf(&buf, "Theoretical PMT:     %s\n", FormatCurrency(report.TheoreticalPayment))
	fmt.Fprintf(&buf, "Optimal payment:     %s\n", FormatCurrency(report.OptimalPayment))
	fmt.Fprintf(&buf, "Target net IRR:      %s\n", FormatPercentBR(report.Parameters.TargetRate.Mul(hundred)))
	fmt.Fprintf(&buf, "Achieved net IRR:    %s\n", FormatPercentBR(report.NetIRR.Mul(hundred)))
	fmt.Fprintln(&buf)

	t := report.Table.Totals
	fmt.Fprintln(&buf, "TOTALS")
	fmt.Fprintf(&buf, "  Installments: %d  Gross: %s  Taxes: %s  Net: %s\n",
		t.Installments, FormatBRL(t.GrossTotal), FormatBRL(t.TaxesTotal), FormatBRL(t.NetTotal))
	fmt.Fprintf(&buf, "  PIS: %s  COFINS: %s  CSSL: %s  IRPJ: %s\n",
		FormatBRL(t.TotalPIS), FormatBRL(t.TotalCOFINS), FormatBRL(t.TotalCSSL), FormatBRL(t.TotalIRPJ))
	fmt.Fprintf(&buf, "  Gross IRR: %s  Net IRR: %s\n",
		FormatPercentBR(report.Table.GrossIRRPercent), FormatPercentBR(report.Table.NetIRRPercent))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "CASH FLOW SCHEDULE")
	fmt.Fprintf(&buf, "%4s %18s %18s %14s %14s %14s %14s\n",
		"Per", "Gross", "Net", "PIS", "COFINS", "CSSL", "IRPJ")
	for _, row := range report.Table.Rows {
		fmt.Fprintf(&buf, "%4d %18s %18s %14s %14s %14s %14s\n",
			row.Period,
			FormatBRL(row.Gross), FormatBRL(row.Net),
			FormatBRL(row.PIS), FormatBRL(row.COFINS),
			FormatBRL(row.CSSL), FormatBRL(row.IRPJ))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "INVESTOR RECOVERY")
	fmt.Fprintf(&buf, "  Initial balance: %s  Recovered: %s  Investor IRR: %s\n",
		FormatBRL(report.Recovery.InitialBalance),
		FormatBRL(report.Recovery.TotalRecovered),
		FormatPercentBR(report.Recovery.InvestorIRR.Mul(hundred)))
	fmt.Fprintf(&buf, "%4s %18s %18s %16s %18s %18s\n",
		"Per", "Opening", "Installment", "Recovery", "Closing", "Net")
	for _, row := range report.Recovery.Rows {
		fmt.Fprintf(&buf, "%4d %18s %18s %16s %18s %18s\n",
			row.Period,
			FormatBRL(row.OpeningBalance), FormatBRL(row.Installment),
			FormatBRL(row.Recovery), FormatBRL(row.ClosingBalance),
			FormatBRL(row.NetRecovery))
	}

	return buf.Bytes(), nil
}
