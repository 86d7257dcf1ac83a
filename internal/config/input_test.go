package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LipeHeitz/pricing-k2/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFullInput(t *testing.T) {
	yml := []byte(`
simulation:
  operation_type: purchase
  principal: 5000000.0
  installments: 28
  target_rate_percent: 2.2
  annual_inflation_percent: 3.5
tax:
  pis_percent: 0.65
  cofins_percent: 3.0
  irpj_percent: 15.0
  cssl_percent: 9.0
  irpj_surtax_percent: 10.0
  irpj_exemption_threshold: 60000.0
search:
  payment_min: 200000.0
  payment_max: 450000.0
  grid_points: 51
recovery:
  recovery_rate_percent: 34.0
  cdi_monthly_percent: 1.1
`)

	params, err := NewInputParser().Parse(yml)
	require.NoError(t, err)

	assert.Equal(t, domain.OperationPurchase, params.OperationType)
	assert.True(t, params.Principal.Equal(decimal.NewFromInt(5000000)))
	assert.Equal(t, 28, params.Installments)
	assert.True(t, params.TargetRate.Equal(decimal.NewFromFloat(0.022)))
	assert.True(t, params.AnnualInflation.Equal(decimal.NewFromFloat(0.035)))
	assert.True(t, params.PISRate.Equal(decimal.NewFromFloat(0.0065)))
	assert.True(t, params.CDIMonthlyRate.Equal(decimal.NewFromFloat(0.011)))
	assert.Equal(t, 51, params.GridPoints)
	require.NotNil(t, params.PaymentMin)
	require.NotNil(t, params.PaymentMax)
	assert.True(t, params.PaymentMin.Equal(decimal.NewFromInt(200000)))
	assert.True(t, params.PaymentMax.Equal(decimal.NewFromInt(450000)))
}

func TestParseAppliesTaxDefaults(t *testing.T) {
	yml := []byte(`
simulation:
  operation_type: rental
  principal: 100000.0
  installments: 12
  target_rate_percent: 2.0
`)

	params, err := NewInputParser().Parse(yml)
	require.NoError(t, err)

	assert.True(t, params.PISRate.Equal(decimal.NewFromFloat(0.0065)))
	assert.True(t, params.COFINSRate.Equal(decimal.NewFromFloat(0.03)))
	assert.True(t, params.IRPJRate.Equal(decimal.NewFromFloat(0.15)))
	assert.True(t, params.CSSLRate.Equal(decimal.NewFromFloat(0.09)))
	assert.True(t, params.IRPJSurtaxRate.Equal(decimal.NewFromFloat(0.10)))
	assert.True(t, params.IRPJExemptionThreshold.Equal(decimal.NewFromInt(60000)))
	assert.True(t, params.RecoveryRate.Equal(decimal.NewFromFloat(0.34)))
	assert.Nil(t, params.PaymentMin)
	assert.Nil(t, params.PaymentMax)
	assert.True(t, params.AnnualInflation.IsZero())
}

func TestParseExplicitZeroTaxesAreKept(t *testing.T) {
	yml := []byte(`
simulation:
  operation_type: rental
  principal: 100000.0
  installments: 12
  target_rate_percent: 2.0
tax:
  pis_percent: 0.0
  cofins_percent: 0.0
`)

	params, err := NewInputParser().Parse(yml)
	require.NoError(t, err)

	assert.True(t, params.PISRate.IsZero())
	assert.True(t, params.COFINSRate.IsZero())
	// Unset fields still fall back.
	assert.True(t, params.IRPJRate.Equal(decimal.NewFromFloat(0.15)))
}

func TestParseRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		yml  string
	}{
		{"bad operation type", `
simulation:
  operation_type: leasing
  principal: 100000.0
  installments: 12
  target_rate_percent: 2.0
`},
		{"zero principal", `
simulation:
  operation_type: rental
  principal: 0.0
  installments: 12
  target_rate_percent: 2.0
`},
		{"zero installments", `
simulation:
  operation_type: rental
  principal: 100000.0
  installments: 0
  target_rate_percent: 2.0
`},
		{"negative tax rate", `
simulation:
  operation_type: rental
  principal: 100000.0
  installments: 12
  target_rate_percent: 2.0
tax:
  cofins_percent: -1.0
`},
		{"inverted search range", `
simulation:
  operation_type: rental
  principal: 100000.0
  installments: 12
  target_rate_percent: 2.0
search:
  payment_min: 5000.0
  payment_max: 1000.0
`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewInputParser().Parse([]byte(tc.yml))
			assert.Error(t, err)
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("simulation: [unclosed"))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simulation.yaml")
	require.NoError(t, os.WriteFile(path, []byte(ExampleYAML), 0o644))

	params, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	example := NewInputParser().CreateExampleParameters()
	assert.Equal(t, example.OperationType, params.OperationType)
	assert.True(t, params.Principal.Equal(example.Principal))
	assert.Equal(t, example.Installments, params.Installments)
	assert.True(t, params.TargetRate.Equal(example.TargetRate))
	assert.True(t, params.CDIMonthlyRate.Equal(example.CDIMonthlyRate))
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
