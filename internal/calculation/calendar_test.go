package calculation

import (
	"testing"

	"github.com/LipeHeitz/pricing-k2/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecognitionPeriodSpacing(t *testing.T) {
	for _, installments := range []int{1, 2, 3, 4, 12, 24, 28, 36, 48, 60, 64} {
		cal, err := NewTaxCalendar(installments, domain.OperationRental)
		require.NoError(t, err)

		for i, p := range cal.RecognitionPeriods {
			assert.GreaterOrEqual(t, p, 4)
			assert.LessOrEqual(t, p, installments)
			assert.Equal(t, 0, (p-1)%3, "period %d must sit on a quarter boundary", p)
			if i > 0 {
				assert.Equal(t, 3, p-cal.RecognitionPeriods[i-1], "periods must be spaced 3 apart")
			}
		}
		if len(cal.RecognitionPeriods) > 0 {
			assert.Equal(t, 4, cal.RecognitionPeriods[0])
		}
		assert.Greater(t, cal.ExtraIndex, installments, "settlement never overlaps an ordinary installment")
	}
}

func TestRentalExtraIndexImmediatelyFollows(t *testing.T) {
	for _, installments := range []int{1, 5, 24, 36, 48, 60} {
		cal, err := NewTaxCalendar(installments, domain.OperationRental)
		require.NoError(t, err)
		assert.Equal(t, installments+1, cal.ExtraIndex)
	}
}

func TestPurchaseExtraIndexAlignsToQuarter(t *testing.T) {
	tests := []struct {
		installments int
		extraIndex   int
	}{
		{28, 31},
		{40, 43},
		{52, 55},
		{64, 67},
		{30, 31},
		{31, 34},
	}
	for _, tt := range tests {
		cal, err := NewTaxCalendar(tt.installments, domain.OperationPurchase)
		require.NoError(t, err)
		assert.Equal(t, tt.extraIndex, cal.ExtraIndex, "installments=%d", tt.installments)
		assert.True(t, isQuarterBoundary(cal.ExtraIndex))
	}
}

func TestInvalidOperationType(t *testing.T) {
	_, err := NewTaxCalendar(36, domain.OperationType("leasing"))
	assert.ErrorIs(t, err, ErrInvalidOperationType)
}

func TestInvalidInstallmentCount(t *testing.T) {
	_, err := NewTaxCalendar(0, domain.OperationRental)
	assert.Error(t, err)
}

func TestLastRecognitionPeriod(t *testing.T) {
	cal, err := NewTaxCalendar(36, domain.OperationRental)
	require.NoError(t, err)
	assert.Equal(t, 34, cal.LastRecognitionPeriod())

	short, err := NewTaxCalendar(3, domain.OperationRental)
	require.NoError(t, err)
	assert.Equal(t, 0, short.LastRecognitionPeriod())
	assert.Empty(t, short.RecognitionPeriods)
}
