package calculation

import (
	"testing"

	"github.com/LipeHeitz/pricing-k2/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReportMirrorsSchedule(t *testing.T) {
	params := testParameters(domain.OperationRental, 12)
	params.Principal = decimal.NewFromInt(100000)
	params.TargetRate = decimal.NewFromFloat(0.02)
	cal := mustCalendar(t, params)

	result, err := Solve(params, cal)
	require.NoError(t, err)

	table, err := BuildReport(result.Schedule)
	require.NoError(t, err)

	// Rows are the builder's periods verbatim.
	require.Len(t, table.Rows, len(result.Schedule.Periods))
	assert.Equal(t, result.Schedule.Periods, table.Rows)

	// Totals are plain sums over the rows.
	sumPIS, sumCOFINS, sumCSSL, sumIRPJ := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	gross, net := decimal.Zero, decimal.Zero
	for _, row := range table.Rows {
		sumPIS = sumPIS.Add(row.PIS)
		sumCOFINS = sumCOFINS.Add(row.COFINS)
		sumCSSL = sumCSSL.Add(row.CSSL)
		sumIRPJ = sumIRPJ.Add(row.IRPJ)
		if row.Period > 0 {
			gross = gross.Add(row.Gross)
			net = net.Add(row.Net)
		}
	}
	assert.True(t, table.Totals.TotalPIS.Equal(sumPIS))
	assert.True(t, table.Totals.TotalCOFINS.Equal(sumCOFINS))
	assert.True(t, table.Totals.TotalCSSL.Equal(sumCSSL))
	assert.True(t, table.Totals.TotalIRPJ.Equal(sumIRPJ))
	assert.True(t, table.Totals.GrossTotal.Equal(gross))
	assert.True(t, table.Totals.NetTotal.Equal(net))
	assert.Equal(t, 12, table.Totals.Installments)

	// Taxes total reconciles gross and net over the installment range.
	assert.True(t, table.Totals.NetTotal.Equal(table.Totals.GrossTotal.Add(table.Totals.TaxesTotal)))
}

func TestBuildReportIRRPercentages(t *testing.T) {
	params := testParameters(domain.OperationRental, 12)
	params.Principal = decimal.NewFromInt(100000)
	params.TargetRate = decimal.NewFromFloat(0.02)
	cal := mustCalendar(t, params)

	result, err := Solve(params, cal)
	require.NoError(t, err)
	table, err := BuildReport(result.Schedule)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, table.NetIRRPercent.InexactFloat64(), 1e-4)
	// Gross IRR exceeds the net: taxes only ever cost.
	assert.True(t, table.GrossIRRPercent.GreaterThan(table.NetIRRPercent))
}
