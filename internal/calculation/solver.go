package calculation

import (
	"fmt"
	"math"

	"github.com/LipeHeitz/pricing-k2/internal/domain"
	"github.com/shopspring/decimal"
)

// TheoreticalPayment is the level payment of the standard amortization
// (PRICE) formula at the target rate: principal * r * (1+r)^n / ((1+r)^n - 1).
// It anchors the default search range; the optimal gross payment sits
// above it because of the tax drag.
func TheoreticalPayment(principal, rate decimal.Decimal, installments int) decimal.Decimal {
	n := decimal.NewFromInt(int64(installments))
	if rate.IsZero() {
		return principal.Div(n)
	}
	compound := decimal.NewFromInt(1).Add(rate).Pow(n)
	return principal.Mul(rate).Mul(compound).Div(compound.Sub(decimal.NewFromInt(1)))
}

// Solve searches the payment range for the largest gross payment whose
// net IRR equals the target rate. The objective is evaluated on a uniform
// grid, every adjacent sign change is bracketed and refined by bisection,
// and the largest converged root wins (higher payment maximizes gross
// revenue at the same net IRR). ErrNoRootFound when the grid shows no
// sign change at all.
func Solve(params *domain.SimulationParameters, cal *TaxCalendar) (*domain.OptimizationResult, error) {
	theoretical := TheoreticalPayment(params.Principal, params.TargetRate, cal.Installments)

	lower := theoretical
	upper := theoretical.Mul(decimal.NewFromInt(2))
	if params.PaymentMin != nil {
		lower = *params.PaymentMin
	}
	if params.PaymentMax != nil {
		upper = *params.PaymentMax
	}

	target := params.TargetRate.InexactFloat64()
	objective := func(payment float64) float64 {
		schedule := BuildSchedule(decimal.NewFromFloat(payment), params, cal)
		irr, err := NetIRR(schedule.NetFlows())
		if err != nil {
			// Infeasible candidates count as far below target so the
			// search never crashes on them.
			return -1 - target
		}
		return irr.InexactFloat64() - target
	}

	points := params.EffectiveGridPoints()
	grid := linspace(lower.InexactFloat64(), upper.InexactFloat64(), points)
	values := make([]float64, len(grid))
	for i, p := range grid {
		values[i] = objective(p)
	}

	var roots []float64
	for i := 0; i < len(grid)-1; i++ {
		if values[i]*values[i+1] < 0 {
			if root, ok := bisectPayment(objective, grid[i], grid[i+1]); ok {
				roots = append(roots, root)
			}
		}
	}
	if len(roots) == 0 {
		return nil, fmt.Errorf("%w: range [%s, %s]", ErrNoRootFound, lower.StringFixed(2), upper.StringFixed(2))
	}

	best := roots[0]
	for _, r := range roots[1:] {
		if r > best {
			best = r
		}
	}

	optimal := decimal.NewFromFloat(best)
	schedule := BuildSchedule(optimal, params, cal)
	netIRR, err := NetIRR(schedule.NetFlows())
	if err != nil {
		return nil, fmt.Errorf("net irr at solved payment %s: %w", optimal.StringFixed(2), err)
	}

	return &domain.OptimizationResult{
		OptimalPayment:     optimal,
		TheoreticalPayment: theoretical,
		NetIRR:             netIRR,
		Schedule:           schedule,
	}, nil
}

func linspace(min, max float64, n int) []float64 {
	if n < 2 || min == max {
		return []float64{min}
	}
	grid := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range grid {
		grid[i] = min + float64(i)*step
	}
	grid[n-1] = max
	return grid
}

// bisectPayment refines a bracketed root of the objective. The bracket
// endpoints must have opposite signs.
func bisectPayment(f func(float64) float64, lo, hi float64) (float64, bool) {
	flo := f(lo)
	if !finite(flo) || !finite(f(hi)) {
		return 0, false
	}
	tol := 1e-9 * math.Max(1, math.Abs(hi))
	for i := 0; i < 200 && hi-lo > tol; i++ {
		mid := (lo + hi) / 2
		fmid := f(mid)
		if !finite(fmid) {
			return 0, false
		}
		if fmid == 0 {
			return mid, true
		}
		if flo*fmid < 0 {
			hi = mid
		} else {
			lo = mid
			flo = fmid
		}
	}
	return (lo + hi) / 2, true
}
