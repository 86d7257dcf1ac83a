package output

import (
	"bytes"
	"fmt"

	"github.com/LipeHeitz/pricing-k2/internal/domain"
)

// ConsoleVerboseFormatter renders the full audit view: every tax base
// alongside the resulting charge, the search inputs and the complete
// recovery roll-forward. Meant for checking a pricing run by hand.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string      { return "console-verbose" }
func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

func (c ConsoleVerboseFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	var buf bytes.Buffer
	p := report.Parameters

	fmt.Fprintln(&buf, "INSTALLMENT PRICING SIMULATION (DETAILED)")
	fmt.Fprintln(&buf, "=========================================")
	fmt.Fprintf(&buf, "Run:                 %s\n", report.RunID)
	fmt.Fprintf(&buf, "Operation:           %s\n", p.OperationType)
	fmt.Fprintf(&buf, "Principal:           %s\n", FormatCurrency(p.Principal))
	fmt.Fprintf(&buf, "Installments:        %d\n", p.Installments)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "ASSUMPTIONS")
	fmt.Fprintf(&buf, "  Target net IRR:     %s per period\n", FormatPercentBR(p.TargetRate.Mul(hundred)))
	fmt.Fprintf(&buf, "  Annual inflation:   %s\n", FormatPercentBR(p.AnnualInflation.Mul(hundred)))
	fmt.Fprintf(&buf, "  PIS / COFINS:       %s / %s\n",
		FormatPercentBR(p.PISRate.Mul(hundred)), FormatPercentBR(p.COFINSRate.Mul(hundred)))
	fmt.Fprintf(&buf, "  IRPJ / CSSL:        %s / %s\n",
		FormatPercentBR(p.IRPJRate.Mul(hundred)), FormatPercentBR(p.CSSLRate.Mul(hundred)))
	fmt.Fprintf(&buf, "  IRPJ surtax:        %s above %s per quarter\n",
		FormatPercentBR(p.IRPJSurtaxRate.Mul(hundred)), FormatCurrency(p.IRPJExemptionThreshold))
	fmt.Fprintf(&buf, "  Recovery rate:      %s\n", FormatPercentBR(p.RecoveryRate.Mul(hundred)))
	fmt.Fprintf(&buf, "  CDI monthly:        %s\n", FormatPercentBR(p.CDIMonthlyRate.Mul(hundred)))
	fmt.Fprintf(&buf, "  Search grid points: %d\n", p.EffectiveGridPoints())
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "PAYMENT SEARCH")
	fmt.Fprintf(&buf, "  Theoretical PMT:  %s\n", FormatCurrency(report.TheoreticalPayment))
	fmt.Fprintf(&buf, "  Optimal payment:  %s\n", FormatCurrency(report.OptimalPayment))
	fmt.Fprintf(&buf, "  Achieved net IRR: %s\n", FormatPercentBR(report.NetIRR.Mul(hundred)))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "CASH FLOW SCHEDULE WITH TAX BASES")
	fmt.Fprintf(&buf, "%4s %16s %16s %12s %12s %14s %12s %14s %14s %12s %12s\n",
		"Per", "Gross", "Net", "PIS", "COFINS",
		"CSSL base", "CSSL", "IRPJ base", "Surtax base", "IRPJ", "Surtax")
	for _, row := range report.Table.Rows {
		fmt.Fprintf(&buf, "%4d %16s %16s %12s %12s %14s %12s %14s %14s %12s %12s\n",
			row.Period,
			FormatBRL(row.Gross), FormatBRL(row.Net),
			FormatBRL(row.PIS), FormatBRL(row.COFINS),
			FormatBRL(row.CSSLBase), FormatBRL(row.CSSL),
			FormatBRL(row.IRPJBase), FormatBRL(row.IRPJSurtaxBase),
			FormatBRL(row.IRPJ), FormatBRL(row.IRPJSurtax))
	}
	fmt.Fprintln(&buf)

	t := report.Table.Totals
	fmt.Fprintln(&buf, "TOTALS")
	fmt.Fprintf(&buf, "  Installments: %d\n", t.Installments)
	fmt.Fprintf(&buf, "  Gross:  %s\n", FormatCurrency(t.GrossTotal))
	fmt.Fprintf(&buf, "  Taxes:  %s  (PIS %s, COFINS %s, CSSL %s, IRPJ %s)\n",
		FormatCurrency(t.TaxesTotal),
		FormatBRL(t.TotalPIS), FormatBRL(t.TotalCOFINS),
		FormatBRL(t.TotalCSSL), FormatBRL(t.TotalIRPJ))
	fmt.Fprintf(&buf, "  Net:    %s\n", FormatCurrency(t.NetTotal))
	fmt.Fprintf(&buf, "  Gross IRR: %s  Net IRR: %s\n",
		FormatPercentBR(report.Table.GrossIRRPercent), FormatPercentBR(report.Table.NetIRRPercent))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "INVESTOR RECOVERY")
	fmt.Fprintf(&buf, "  Initial balance: %s\n", FormatCurrency(report.Recovery.InitialBalance))
	fmt.Fprintf(&buf, "  Total recovered: %s\n", FormatCurrency(report.Recovery.TotalRecovered))
	fmt.Fprintf(&buf, "  Investor IRR:    %s\n", FormatPercentBR(report.Recovery.InvestorIRR.Mul(hundred)))
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
