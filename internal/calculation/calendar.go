package calculation

import (
	"fmt"

	"github.com/LipeHeitz/pricing-k2/internal/domain"
)

// TaxCalendar determines which periods of a schedule are IRPJ/CSSL
// recognition points and where the trailing settlement period lands.
// Recognition follows the quarterly-in-arrears convention: a tax event at
// every period p with p >= 4 and (p-1) mod 3 == 0.
type TaxCalendar struct {
	Installments int
	Operation    domain.OperationType

	// RecognitionPeriods are the ordinary recognition points, strictly
	// increasing and spaced 3 apart starting at 4, capped at Installments.
	RecognitionPeriods []int

	// ExtraIndex is the trailing settlement period. Rental settles
	// immediately after the last installment; purchase waits for the next
	// aligned quarter boundary, which may skip several periods.
	ExtraIndex int
}

// NewTaxCalendar derives the calendar for a schedule length and operation
// type. Fails with ErrInvalidOperationType for unknown types.
func NewTaxCalendar(installments int, op domain.OperationType) (*TaxCalendar, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOperationType, op)
	}
	if installments < 1 {
		return nil, fmt.Errorf("installment count must be at least 1, got %d", installments)
	}

	var recognition []int
	for p := 4; p <= installments; p++ {
		if (p-1)%3 == 0 {
			recognition = append(recognition, p)
		}
	}

	extra := installments + 1
	if op == domain.OperationPurchase {
		for !isQuarterBoundary(extra) {
			extra++
		}
	}

	return &TaxCalendar{
		Installments:       installments,
		Operation:          op,
		RecognitionPeriods: recognition,
		ExtraIndex:         extra,
	}, nil
}

func isQuarterBoundary(p int) bool {
	return p >= 4 && (p-1)%3 == 0
}

// IsRecognitionPeriod reports whether p is an ordinary recognition point.
func (tc *TaxCalendar) IsRecognitionPeriod(p int) bool {
	for _, m := range tc.RecognitionPeriods {
		if m == p {
			return true
		}
	}
	return false
}

// LastRecognitionPeriod returns the last ordinary recognition point, or 0
// when the schedule is too short to have any.
func (tc *TaxCalendar) LastRecognitionPeriod() int {
	if len(tc.RecognitionPeriods) == 0 {
		return 0
	}
	return tc.RecognitionPeriods[len(tc.RecognitionPeriods)-1]
}
