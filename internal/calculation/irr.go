package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// NetIRR computes the periodic internal rate of return of a flow
// sequence: the rate r solving sum(flow_t / (1+r)^t) = 0. The root find
// runs in float64 (schedule amounts stay decimal; the polynomial root
// gains nothing from decimal arithmetic) by scanning the rate grid for
// NPV sign changes, bisecting every bracket and keeping the root
// closest to zero. Sequences whose sign alternates more than once have
// several mathematical roots; a schedule ending on a settlement tax
// outflow always has a spurious one below -70%, and only the root
// nearest zero carries the economic rate. Degenerate inputs and failed
// bracketing report ErrNotConverged.
func NetIRR(flows []decimal.Decimal) (decimal.Decimal, error) {
	f := make([]float64, len(flows))
	nonZero := false
	for i, d := range flows {
		f[i] = d.InexactFloat64()
		if f[i] != 0 {
			nonZero = true
		}
	}
	if len(f) < 2 || !nonZero {
		return decimal.Zero, ErrNotConverged
	}
	rate, ok := solveIRR(f)
	if !ok {
		return decimal.Zero, ErrNotConverged
	}
	return decimal.NewFromFloat(rate), nil
}

func npv(flows []float64, rate float64) float64 {
	acc := 0.0
	discount := 1.0
	base := 1 + rate
	for _, f := range flows {
		acc += f / discount
		discount *= base
	}
	return acc
}

// rateGrid covers (-1, 10]: fine steps where NPV moves fastest, coarser
// above 100% per period.
func rateGrid() []float64 {
	grid := []float64{-0.9999}
	for r := -0.99; r <= 1.0+1e-12; r += 0.01 {
		grid = append(grid, r)
	}
	for r := 1.25; r <= 10.0+1e-12; r += 0.25 {
		grid = append(grid, r)
	}
	return grid
}

func solveIRR(flows []float64) (float64, bool) {
	grid := rateGrid()
	var best float64
	found := false
	prev := npv(flows, grid[0])
	for i := 1; i < len(grid); i++ {
		curr := npv(flows, grid[i])
		if !finite(curr) || !finite(prev) {
			prev = curr
			continue
		}
		root := 0.0
		bracketed := false
		switch {
		case prev == 0:
			root, bracketed = grid[i-1], true
		case prev*curr < 0:
			root, bracketed = bisectRate(flows, grid[i-1], grid[i]), true
		}
		if bracketed && (!found || math.Abs(root) < math.Abs(best)) {
			best = root
			found = true
		}
		prev = curr
	}
	return best, found
}

func bisectRate(flows []float64, lo, hi float64) float64 {
	flo := npv(flows, lo)
	for i := 0; i < 200 && hi-lo > 1e-12; i++ {
		mid := (lo + hi) / 2
		fmid := npv(flows, mid)
		if fmid == 0 {
			return mid
		}
		if flo*fmid < 0 {
			hi = mid
		} else {
			lo = mid
			flo = fmid
		}
	}
	return (lo + hi) / 2
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
