package calculation

import (
	"context"
	"fmt"

	"github.com/LipeHeitz/pricing-k2/internal/domain"
	"github.com/google/uuid"
)

// PricingEngine orchestrates a full pricing run: tax calendar, payment
// search, schedule report and investor-side recovery. All computation is
// pure; the engine only adds logging and the run identifier.
type PricingEngine struct {
	Logger Logger
}

// NewPricingEngine creates an engine with a no-op logger.
func NewPricingEngine() *PricingEngine {
	return &PricingEngine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. A nil logger restores the no-op.
func (pe *PricingEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// Simulate runs the whole pipeline for one set of parameters. Identical
// parameters produce identical numeric output; only the RunID differs
// between calls.
func (pe *PricingEngine) Simulate(ctx context.Context, params *domain.SimulationParameters) (*domain.SimulationReport, error) {
	calendar, err := NewTaxCalendar(params.Installments, params.OperationType)
	if err != nil {
		return nil, err
	}
	pe.Logger.Debugf("tax calendar: %d recognition periods, settlement at %d",
		len(calendar.RecognitionPeriods), calendar.ExtraIndex)

	result, err := Solve(params, calendar)
	if err != nil {
		return nil, fmt.Errorf("payment search: %w", err)
	}
	pe.Logger.Infof("optimal payment %s (theoretical %s), net irr %s",
		result.OptimalPayment.StringFixed(2),
		result.TheoreticalPayment.StringFixed(2),
		result.NetIRR.StringFixed(6))

	table, err := BuildReport(result.Schedule)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	recovery, err := SimulateRecovery(result.Schedule, params)
	if err != nil {
		return nil, fmt.Errorf("recovery simulation: %w", err)
	}

	return &domain.SimulationReport{
		RunID:              uuid.NewString(),
		Parameters:         *params,
		TheoreticalPayment: result.TheoreticalPayment,
		OptimalPayment:     result.OptimalPayment,
		NetIRR:             result.NetIRR,
		Table:              table,
		Recovery:           recovery,
	}, nil
}
