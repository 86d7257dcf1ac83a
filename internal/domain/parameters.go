package domain

import (
	"github.com/shopspring/decimal"
)

// OperationType selects which business rules govern the tax treatment of
// the installment stream. Rental operations keep the 32% presumed-profit
// base throughout; purchase operations switch to the sale factors (12%
// CSSL / 8% IRPJ) at closing.
type OperationType string

const (
	OperationRental   OperationType = "rental"
	OperationPurchase OperationType = "purchase"
)

// Valid reports whether the operation type is one of the supported values.
func (o OperationType) Valid() bool {
	return o == OperationRental || o == OperationPurchase
}

// SimulationParameters is the immutable input of a pricing run. All rates
// are fractional (already divided from percentages at the config
// boundary) and all monetary values are in currency units.
type SimulationParameters struct {
	OperationType OperationType   `json:"operation_type"`
	Principal     decimal.Decimal `json:"principal"`
	Installments  int             `json:"installments"`

	// TargetRate is the desired net IRR per period.
	TargetRate decimal.Decimal `json:"target_rate"`
	// AnnualInflation escalates the payment at every 12-period boundary.
	AnnualInflation decimal.Decimal `json:"annual_inflation"`

	PISRate                decimal.Decimal `json:"pis_rate"`
	COFINSRate             decimal.Decimal `json:"cofins_rate"`
	IRPJRate               decimal.Decimal `json:"irpj_rate"`
	CSSLRate               decimal.Decimal `json:"cssl_rate"`
	IRPJExemptionThreshold decimal.Decimal `json:"irpj_exemption_threshold"`
	IRPJSurtaxRate         decimal.Decimal `json:"irpj_surtax_rate"`

	// PaymentMin and PaymentMax override the payment search range. When
	// nil the range defaults to [theoretical PMT, 2x theoretical PMT].
	PaymentMin *decimal.Decimal `json:"payment_min,omitempty"`
	PaymentMax *decimal.Decimal `json:"payment_max,omitempty"`
	// GridPoints is the search grid resolution; zero means the default 101.
	GridPoints int `json:"grid_points,omitempty"`

	// RecoveryRate is the partial income-tax recovery applied on the
	// investor side; CDIMonthlyRate compounds the investor balance.
	RecoveryRate   decimal.Decimal `json:"recovery_rate"`
	CDIMonthlyRate decimal.Decimal `json:"cdi_monthly_rate"`
}

// DefaultGridPoints is the number of payment candidates evaluated when no
// resolution override is given.
const DefaultGridPoints = 101

// EffectiveGridPoints resolves the grid resolution override.
func (p *SimulationParameters) EffectiveGridPoints() int {
	if p.GridPoints > 0 {
		return p.GridPoints
	}
	return DefaultGridPoints
}
