package calculation

import (
	"testing"

	"github.com/LipeHeitz/pricing-k2/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryBalanceRollForward(t *testing.T) {
	params := testParameters(domain.OperationRental, 12)
	params.AnnualInflation = decimal.Zero
	cal := mustCalendar(t, params)
	schedule := BuildSchedule(decimal.NewFromInt(10000), params, cal)

	recovery, err := SimulateRecovery(schedule, params)
	require.NoError(t, err)
	require.Len(t, recovery.Rows, 13) // period 0 plus 12 installments

	growth := decimal.NewFromInt(1).Add(params.CDIMonthlyRate)

	first := recovery.Rows[0]
	assert.Equal(t, 0, first.Period)
	assert.True(t, first.Installment.IsZero())
	assert.True(t, first.OpeningBalance.Equal(recovery.InitialBalance))
	assert.True(t, first.ClosingBalance.Equal(recovery.InitialBalance))
	assert.True(t, first.NetRecovery.Equal(params.Principal))

	for i := 1; i < len(recovery.Rows); i++ {
		row := recovery.Rows[i]
		prev := recovery.Rows[i-1]
		assert.True(t, row.OpeningBalance.Equal(prev.ClosingBalance.Mul(growth)),
			"period %d opening must compound the previous closing", row.Period)
		assert.True(t, row.ClosingBalance.Equal(row.OpeningBalance.Add(row.Installment).Add(row.Recovery)),
			"period %d", row.Period)
		assert.True(t, row.Installment.Equal(schedule.Periods[row.Period].Gross.Neg()))
		assert.True(t, row.NetRecovery.Equal(row.Installment.Add(row.Recovery)))
	}

	// The initial balance is the discounted value of the net outflows, so
	// the trajectory closes at zero.
	final := recovery.Rows[len(recovery.Rows)-1]
	assert.InDelta(t, 0, final.ClosingBalance.InexactFloat64(), 1e-6)
}

func TestRentalRecoveryOnEveryInstallment(t *testing.T) {
	params := testParameters(domain.OperationRental, 12)
	cal := mustCalendar(t, params)
	schedule := BuildSchedule(decimal.NewFromInt(10000), params, cal)

	recovery, err := SimulateRecovery(schedule, params)
	require.NoError(t, err)

	for _, row := range recovery.Rows[1:] {
		expected := schedule.Periods[row.Period].Gross.Mul(params.RecoveryRate)
		assert.True(t, row.Recovery.Equal(expected), "period %d", row.Period)
	}
}

func TestPurchaseRecoveryBlackout(t *testing.T) {
	params := testParameters(domain.OperationPurchase, 28)
	cal := mustCalendar(t, params)
	schedule := BuildSchedule(decimal.NewFromInt(10000), params, cal)

	recovery, err := SimulateRecovery(schedule, params)
	require.NoError(t, err)

	for _, row := range recovery.Rows[1:] {
		if row.Period >= 25 { // last 4 installments: 25..28
			assert.True(t, row.Recovery.IsZero(), "period %d must have no recovery", row.Period)
		} else {
			assert.False(t, row.Recovery.IsZero(), "period %d", row.Period)
		}
	}
}

func TestRecoveryInvestorIRR(t *testing.T) {
	params := testParameters(domain.OperationRental, 24)
	cal := mustCalendar(t, params)
	schedule := BuildSchedule(decimal.NewFromInt(55000), params, cal)

	recovery, err := SimulateRecovery(schedule, params)
	require.NoError(t, err)

	// Positive principal followed by net outflows: the headline IRR is
	// well defined and above -100%.
	assert.Greater(t, recovery.InvestorIRR.InexactFloat64(), -1.0)
	assert.True(t, recovery.TotalRecovered.IsPositive())
}

func TestRecoveryDeterministic(t *testing.T) {
	params := testParameters(domain.OperationPurchase, 28)
	cal := mustCalendar(t, params)
	schedule := BuildSchedule(decimal.NewFromFloat(51234.5678), params, cal)

	first, err := SimulateRecovery(schedule, params)
	require.NoError(t, err)
	second, err := SimulateRecovery(schedule, params)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
