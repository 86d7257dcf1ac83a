package domain

import (
	"github.com/shopspring/decimal"
)

// PeriodFlow carries the gross and net cash flow of a single period along
// with the full tax breakdown. Period 0 holds the negative principal
// disbursement; the extra settlement period holds zero gross flow and a
// net flow equal to the negative of its own CSSL+IRPJ cost.
type PeriodFlow struct {
	Period int `json:"period"`

	Gross decimal.Decimal `json:"gross"`
	Net   decimal.Decimal `json:"net"`

	PIS    decimal.Decimal `json:"pis"`
	COFINS decimal.Decimal `json:"cofins"`

	CSSLBase       decimal.Decimal `json:"cssl_base"`
	CSSL           decimal.Decimal `json:"cssl"`
	IRPJBase       decimal.Decimal `json:"irpj_base"`
	IRPJSurtaxBase decimal.Decimal `json:"irpj_surtax_base"`
	// IRPJ is the total income-tax cost including the surtax portion;
	// IRPJSurtax repeats the surtax portion on its own.
	IRPJ       decimal.Decimal `json:"irpj"`
	IRPJSurtax decimal.Decimal `json:"irpj_surtax"`
}

// CashFlowSchedule is the full period-by-period reconstruction of a
// candidate payment: periods 0..ExtraIndex inclusive. Schedules are
// built fresh per evaluation and never mutated afterwards.
type CashFlowSchedule struct {
	Installments int          `json:"installments"`
	ExtraIndex   int          `json:"extra_index"`
	Periods      []PeriodFlow `json:"periods"`
}

// GrossFlows returns the gross flow sequence indexed by period.
func (s *CashFlowSchedule) GrossFlows() []decimal.Decimal {
	flows := make([]decimal.Decimal, len(s.Periods))
	for i, p := range s.Periods {
		flows[i] = p.Gross
	}
	return flows
}

// NetFlows returns the net flow sequence indexed by period.
func (s *CashFlowSchedule) NetFlows() []decimal.Decimal {
	flows := make([]decimal.Decimal, len(s.Periods))
	for i, p := range s.Periods {
		flows[i] = p.Net
	}
	return flows
}

// OptimizationResult is the outcome of the payment search: the largest
// payment reproducing the target net IRR, together with the schedule
// rebuilt at that payment.
type OptimizationResult struct {
	OptimalPayment     decimal.Decimal   `json:"optimal_payment"`
	TheoreticalPayment decimal.Decimal   `json:"theoretical_payment"`
	NetIRR             decimal.Decimal   `json:"net_irr"`
	Schedule           *CashFlowSchedule `json:"schedule"`
}

// ReportTotals aggregates the schedule for the report header.
type ReportTotals struct {
	Installments int             `json:"installments"`
	TotalPIS     decimal.Decimal `json:"total_pis"`
	TotalCOFINS  decimal.Decimal `json:"total_cofins"`
	TotalCSSL    decimal.Decimal `json:"total_cssl"`
	TotalIRPJ    decimal.Decimal `json:"total_irpj"`
	GrossTotal   decimal.Decimal `json:"gross_total"`
	TaxesTotal   decimal.Decimal `json:"taxes_total"`
	NetTotal     decimal.Decimal `json:"net_total"`
}

// ReportTable is the display-ready annotated schedule. Rows repeat the
// builder's per-period figures verbatim; any divergence between the two
// is a defect.
type ReportTable struct {
	Rows   []PeriodFlow `json:"rows"`
	Totals ReportTotals `json:"totals"`

	GrossIRRPercent decimal.Decimal `json:"gross_irr_percent"`
	NetIRRPercent   decimal.Decimal `json:"net_irr_percent"`
}

// RecoveryRow is one period of the investor-side roll-forward.
type RecoveryRow struct {
	Period         int             `json:"period"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Installment    decimal.Decimal `json:"installment"`
	Recovery       decimal.Decimal `json:"recovery"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	NetRecovery    decimal.Decimal `json:"net_recovery"`
}

// RecoverySchedule is the investor-side view: the installment stream
// compounded at the CDI rate with partial income-tax recovery.
type RecoverySchedule struct {
	Rows           []RecoveryRow   `json:"rows"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	TotalRecovered decimal.Decimal `json:"total_recovered"`
	InvestorIRR    decimal.Decimal `json:"investor_irr"`
}

// SimulationReport bundles everything a presentation layer needs for one
// pricing run.
type SimulationReport struct {
	RunID      string               `json:"run_id"`
	Parameters SimulationParameters `json:"parameters"`

	TheoreticalPayment decimal.Decimal `json:"theoretical_payment"`
	OptimalPayment     decimal.Decimal `json:"optimal_payment"`
	NetIRR             decimal.Decimal `json:"net_irr"`

	Table    *ReportTable      `json:"table"`
	Recovery *RecoverySchedule `json:"recovery"`
}
