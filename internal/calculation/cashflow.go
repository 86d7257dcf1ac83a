package calculation

import (
	"github.com/LipeHeitz/pricing-k2/internal/domain"
	"github.com/shopspring/decimal"
)

// Presumed-profit base factors. Rental income keeps the 32% base at every
// recognition point; purchase operations switch to the sale factors (12%
// CSSL / 8% IRPJ) at the closing recognition point and at settlement.
var (
	factorStandard = decimal.NewFromFloat(0.32)
	factorSaleCSSL = decimal.NewFromFloat(0.12)
	factorSaleIRPJ = decimal.NewFromFloat(0.08)
)

// recognitionFactors returns the CSSL and IRPJ base factors for the
// ordinary recognition period p. This is the single source of truth for
// factor selection; the reporter consumes the builder's output rather
// than re-deriving it.
func recognitionFactors(op domain.OperationType, p, installments int) (cssl, irpj decimal.Decimal) {
	if op == domain.OperationPurchase && p == installments {
		return factorSaleCSSL, factorSaleIRPJ
	}
	return factorStandard, factorStandard
}

// settlementFactors returns the base factors for the extra settlement
// period.
func settlementFactors(op domain.OperationType) (cssl, irpj decimal.Decimal) {
	if op == domain.OperationPurchase {
		return factorSaleCSSL, factorSaleIRPJ
	}
	return factorStandard, factorStandard
}

// BuildSchedule reconstructs the full cash-flow schedule for a candidate
// gross payment: periods 0..ExtraIndex with PIS/COFINS on every
// installment, IRPJ/CSSL on recognition periods over the trailing
// 3-period gross window, and the settlement period carrying only its own
// tax cost. Pure function of its inputs.
func BuildSchedule(grossPayment decimal.Decimal, params *domain.SimulationParameters, cal *TaxCalendar) *domain.CashFlowSchedule {
	periods := make([]domain.PeriodFlow, cal.ExtraIndex+1)
	for i := range periods {
		periods[i].Period = i
	}

	periods[0].Gross = params.Principal.Neg()
	periods[0].Net = params.Principal.Neg()

	escalation := decimal.NewFromInt(1).Add(params.AnnualInflation)
	payment := grossPayment
	for p := 1; p <= cal.Installments; p++ {
		if p > 1 && (p-1)%12 == 0 {
			payment = payment.Mul(escalation)
		}
		row := &periods[p]
		row.Gross = payment
		row.PIS = payment.Mul(params.PISRate).Neg()
		row.COFINS = payment.Mul(params.COFINSRate).Neg()

		if cal.IsRecognitionPeriod(p) {
			csslFactor, irpjFactor := recognitionFactors(cal.Operation, p, cal.Installments)
			applyProfitTaxes(row, trailingGross(periods, p), csslFactor, irpjFactor, params)
		}

		row.Net = row.Gross.Add(row.PIS).Add(row.COFINS).Add(row.CSSL).Add(row.IRPJ)
	}

	// Periods between the last installment and the settlement stay
	// structurally zero. The settlement itself needs 3 periods of trailing
	// history; shorter schedules settle with zero tax.
	if cal.Installments >= 3 {
		extra := &periods[cal.ExtraIndex]
		csslFactor, irpjFactor := settlementFactors(cal.Operation)
		applyProfitTaxes(extra, trailingGross(periods, cal.ExtraIndex), csslFactor, irpjFactor, params)
		extra.Net = extra.CSSL.Add(extra.IRPJ)
	}

	return &domain.CashFlowSchedule{
		Installments: cal.Installments,
		ExtraIndex:   cal.ExtraIndex,
		Periods:      periods,
	}
}

// applyProfitTaxes fills the IRPJ/CSSL fields of a row from the trailing
// gross window: base = window x factor, surtax on the portion of the IRPJ
// base at or above the exemption threshold.
func applyProfitTaxes(row *domain.PeriodFlow, window decimal.Decimal, csslFactor, irpjFactor decimal.Decimal, params *domain.SimulationParameters) {
	row.CSSLBase = window.Mul(csslFactor)
	row.CSSL = row.CSSLBase.Mul(params.CSSLRate).Neg()

	row.IRPJBase = window.Mul(irpjFactor)
	if row.IRPJBase.GreaterThanOrEqual(params.IRPJExemptionThreshold) {
		row.IRPJSurtaxBase = row.IRPJBase.Sub(params.IRPJExemptionThreshold)
	}
	row.IRPJSurtax = row.IRPJSurtaxBase.Mul(params.IRPJSurtaxRate).Neg()
	row.IRPJ = row.IRPJBase.Mul(params.IRPJRate).Neg().Add(row.IRPJSurtax)
}

// trailingGross sums the 3 gross flows immediately preceding period p.
func trailingGross(periods []domain.PeriodFlow, p int) decimal.Decimal {
	sum := decimal.Zero
	for i := p - 3; i < p; i++ {
		sum = sum.Add(periods[i].Gross)
	}
	return sum
}
