package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/LipeHeitz/pricing-k2/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CSVFormatter exports the per-period schedule with the full tax
// breakdown, followed by a totals row and the recovery schedule. Values
// use plain decimal points so the file loads into any spreadsheet.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string      { return "csv" }
func (c CSVFormatter) Extension() string { return "csv" }

func (c CSVFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Period", "Gross", "Net", "PIS", "COFINS",
		"CSSLBase", "CSSL", "IRPJBase", "IRPJSurtaxBase", "IRPJ", "IRPJSurtax"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range report.Table.Rows {
		record := []string{
			strconv.Itoa(row.Period),
			row.Gross.StringFixed(2),
			row.Net.StringFixed(2),
			row.PIS.StringFixed(2),
			row.COFINS.StringFixed(2),
			row.CSSLBase.StringFixed(2),
			row.CSSL.StringFixed(2),
			row.IRPJBase.StringFixed(2),
			row.IRPJSurtaxBase.StringFixed(2),
			row.IRPJ.StringFixed(2),
			row.IRPJSurtax.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	t := report.Table.Totals
	summary := [][]string{
		{},
		{"OptimalPayment", report.OptimalPayment.StringFixed(2)},
		{"TheoreticalPayment", report.TheoreticalPayment.StringFixed(2)},
		{"GrossIRRPercent", report.Table.GrossIRRPercent.StringFixed(6)},
		{"NetIRRPercent", report.Table.NetIRRPercent.StringFixed(6)},
		{"TotalPIS", t.TotalPIS.StringFixed(2)},
		{"TotalCOFINS", t.TotalCOFINS.StringFixed(2)},
		{"TotalCSSL", t.TotalCSSL.StringFixed(2)},
		{"TotalIRPJ", t.TotalIRPJ.StringFixed(2)},
		{"GrossTotal", t.GrossTotal.StringFixed(2)},
		{"TaxesTotal", t.TaxesTotal.StringFixed(2)},
		{"NetTotal", t.NetTotal.StringFixed(2)},
		{},
		{"Period", "Opening", "Installment", "Recovery", "Closing", "NetRecovery"},
	}
	for _, record := range summary {
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	for _, row := range report.Recovery.Rows {
		record := []string{
			strconv.Itoa(row.Period),
			row.OpeningBalance.StringFixed(2),
			row.Installment.StringFixed(2),
			row.Recovery.StringFixed(2),
			row.ClosingBalance.StringFixed(2),
			row.NetRecovery.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
