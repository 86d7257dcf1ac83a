package calculation

import (
	"fmt"

	"github.com/LipeHeitz/pricing-k2/internal/domain"
	"github.com/shopspring/decimal"
)

// BuildReport shapes a finalized schedule into the display-ready table:
// per-period rows taken verbatim from the builder plus tax totals,
// parceled gross/net totals and the gross and net IRR as percentages.
// This is a reporting transform only; it never recomputes bases or
// factors.
func BuildReport(schedule *domain.CashFlowSchedule) (*domain.ReportTable, error) {
	rows := make([]domain.PeriodFlow, len(schedule.Periods))
	copy(rows, schedule.Periods)

	totals := domain.ReportTotals{}
	for _, row := range rows {
		totals.TotalPIS = totals.TotalPIS.Add(row.PIS)
		totals.TotalCOFINS = totals.TotalCOFINS.Add(row.COFINS)
		totals.TotalCSSL = totals.TotalCSSL.Add(row.CSSL)
		totals.TotalIRPJ = totals.TotalIRPJ.Add(row.IRPJ)

		if row.Period == 0 {
			continue
		}
		totals.GrossTotal = totals.GrossTotal.Add(row.Gross)
		totals.NetTotal = totals.NetTotal.Add(row.Net)
		totals.TaxesTotal = totals.TaxesTotal.Add(row.PIS).Add(row.COFINS).Add(row.CSSL).Add(row.IRPJ)
		if !row.Gross.IsZero() {
			totals.Installments++
		}
	}

	hundred := decimal.NewFromInt(100)
	grossIRR, err := NetIRR(schedule.GrossFlows())
	if err != nil {
		return nil, fmt.Errorf("gross irr: %w", err)
	}
	netIRR, err := NetIRR(schedule.NetFlows())
	if err != nil {
		return nil, fmt.Errorf("net irr: %w", err)
	}

	return &domain.ReportTable{
		Rows:            rows,
		Totals:          totals,
		GrossIRRPercent: grossIRR.Mul(hundred),
		NetIRRPercent:   netIRR.Mul(hundred),
	}, nil
}
