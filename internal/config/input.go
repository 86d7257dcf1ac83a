package config

import (
	"fmt"
	"os"

	"github.com/LipeHeitz/pricing-k2/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Default Brazilian tax assumptions. YAML values are percentages the way
// users quote them; the parser divides everything down to fractional
// rates before the core ever sees them.
var (
	defaultPISPercent        = 0.65
	defaultCOFINSPercent     = 3.0
	defaultIRPJPercent       = 15.0
	defaultCSSLPercent       = 9.0
	defaultIRPJSurtaxPercent = 10.0
	defaultIRPJThreshold     = 60000.0
	defaultRecoveryPercent   = 34.0
	defaultCDIMonthlyPercent = 1.134762
)

// InputParser handles parsing of simulation input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// fileInput mirrors the YAML layout. Pointer fields distinguish "absent"
// from an explicit zero so defaults only fill real gaps.
type fileInput struct {
	Simulation struct {
		OperationType          string  `yaml:"operation_type"`
		Principal              float64 `yaml:"principal"`
		Installments           int     `yaml:"installments"`
		TargetRatePercent      float64 `yaml:"target_rate_percent"`
		AnnualInflationPercent float64 `yaml:"annual_inflation_percent"`
	} `yaml:"simulation"`
	Tax struct {
		PISPercent             *float64 `yaml:"pis_percent"`
		COFINSPercent          *float64 `yaml:"cofins_percent"`
		IRPJPercent            *float64 `yaml:"irpj_percent"`
		CSSLPercent            *float64 `yaml:"cssl_percent"`
		IRPJSurtaxPercent      *float64 `yaml:"irpj_surtax_percent"`
		IRPJExemptionThreshold *float64 `yaml:"irpj_exemption_threshold"`
	} `yaml:"tax"`
	Search struct {
		PaymentMin *float64 `yaml:"payment_min"`
		PaymentMax *float64 `yaml:"payment_max"`
		GridPoints int      `yaml:"grid_points"`
	} `yaml:"search"`
	Recovery struct {
		RecoveryRatePercent *float64 `yaml:"recovery_rate_percent"`
		CDIMonthlyPercent   *float64 `yaml:"cdi_monthly_percent"`
	} `yaml:"recovery"`
}

// LoadFromFile loads and validates simulation parameters from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.SimulationParameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes YAML bytes into validated simulation parameters.
func (ip *InputParser) Parse(data []byte) (*domain.SimulationParameters, error) {
	var in fileInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	params := &domain.SimulationParameters{
		OperationType:          domain.OperationType(in.Simulation.OperationType),
		Principal:              decimal.NewFromFloat(in.Simulation.Principal),
		Installments:           in.Simulation.Installments,
		TargetRate:             percentToRate(&in.Simulation.TargetRatePercent, 0),
		AnnualInflation:        percentToRate(&in.Simulation.AnnualInflationPercent, 0),
		PISRate:                percentToRate(in.Tax.PISPercent, defaultPISPercent),
		COFINSRate:             percentToRate(in.Tax.COFINSPercent, defaultCOFINSPercent),
		IRPJRate:               percentToRate(in.Tax.IRPJPercent, defaultIRPJPercent),
		CSSLRate:               percentToRate(in.Tax.CSSLPercent, defaultCSSLPercent),
		IRPJSurtaxRate:         percentToRate(in.Tax.IRPJSurtaxPercent, defaultIRPJSurtaxPercent),
		IRPJExemptionThreshold: currencyOrDefault(in.Tax.IRPJExemptionThreshold, defaultIRPJThreshold),
		GridPoints:             in.Search.GridPoints,
		RecoveryRate:           percentToRate(in.Recovery.RecoveryRatePercent, defaultRecoveryPercent),
		CDIMonthlyRate:         percentToRate(in.Recovery.CDIMonthlyPercent, defaultCDIMonthlyPercent),
	}
	if in.Search.PaymentMin != nil {
		v := decimal.NewFromFloat(*in.Search.PaymentMin)
		params.PaymentMin = &v
	}
	if in.Search.PaymentMax != nil {
		v := decimal.NewFromFloat(*in.Search.PaymentMax)
		params.PaymentMax = &v
	}

	if err := ip.ValidateParameters(params); err != nil {
		return nil, fmt.Errorf("parameter validation failed: %w", err)
	}
	return params, nil
}

func percentToRate(percent *float64, fallback float64) decimal.Decimal {
	v := fallback
	if percent != nil {
		v = *percent
	}
	return decimal.NewFromFloat(v).Div(decimal.NewFromInt(100))
}

func currencyOrDefault(value *float64, fallback float64) decimal.Decimal {
	if value != nil {
		return decimal.NewFromFloat(*value)
	}
	return decimal.NewFromFloat(fallback)
}

// ValidateParameters rejects out-of-range inputs at the boundary so the
// core can assume well-formed parameters.
func (ip *InputParser) ValidateParameters(p *domain.SimulationParameters) error {
	if !p.OperationType.Valid() {
		return fmt.Errorf("operation_type must be %q or %q, got %q",
			domain.OperationRental, domain.OperationPurchase, p.OperationType)
	}
	if p.Principal.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("principal must be positive")
	}
	if p.Installments < 1 {
		return fmt.Errorf("installments must be at least 1")
	}
	if p.TargetRate.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return fmt.Errorf("target rate must be greater than -100%%")
	}
	for name, rate := range map[string]decimal.Decimal{
		"pis":         p.PISRate,
		"cofins":      p.COFINSRate,
		"irpj":        p.IRPJRate,
		"cssl":        p.CSSLRate,
		"irpj_surtax": p.IRPJSurtaxRate,
		"recovery":    p.RecoveryRate,
	} {
		if rate.LessThan(decimal.Zero) {
			return fmt.Errorf("%s rate cannot be negative", name)
		}
	}
	if p.IRPJExemptionThreshold.LessThan(decimal.Zero) {
		return fmt.Errorf("irpj exemption threshold cannot be negative")
	}
	if p.GridPoints < 0 {
		return fmt.Errorf("grid_points cannot be negative")
	}
	if p.PaymentMin != nil && p.PaymentMax != nil && p.PaymentMin.GreaterThan(*p.PaymentMax) {
		return fmt.Errorf("payment_min cannot exceed payment_max")
	}
	return nil
}

// CreateExampleParameters returns the reference rental scenario: a 7.6M
// principal over 36 installments targeting 2.4% net per period.
func (ip *InputParser) CreateExampleParameters() *domain.SimulationParameters {
	return &domain.SimulationParameters{
		OperationType:          domain.OperationRental,
		Principal:              decimal.NewFromInt(7600000),
		Installments:           36,
		TargetRate:             decimal.NewFromFloat(0.024),
		AnnualInflation:        decimal.NewFromFloat(0.04),
		PISRate:                decimal.NewFromFloat(0.0065),
		COFINSRate:             decimal.NewFromFloat(0.03),
		IRPJRate:               decimal.NewFromFloat(0.15),
		CSSLRate:               decimal.NewFromFloat(0.09),
		IRPJSurtaxRate:         decimal.NewFromFloat(0.10),
		IRPJExemptionThreshold: decimal.NewFromInt(60000),
		RecoveryRate:           decimal.NewFromFloat(0.34),
		CDIMonthlyRate:         decimal.NewFromFloat(0.01134762),
	}
}

// ExampleYAML is a ready-to-edit input file matching
// CreateExampleParameters.
const ExampleYAML = `# pricing-k2 simulation input
simulation:
  operation_type: rental        # rental | purchase
  principal: 7600000.0
  installments: 36
  target_rate_percent: 2.4      # desired net IRR per period
  annual_inflation_percent: 4.0 # applied at every 12th installment

tax:
  pis_percent: 0.65
  cofins_percent: 3.0
  irpj_percent: 15.0
  cssl_percent: 9.0
  irpj_surtax_percent: 10.0
  irpj_exemption_threshold: 60000.0

search:
  # payment_min: 0.0            # defaults to the theoretical PMT
  # payment_max: 0.0            # defaults to 2x the theoretical PMT
  grid_points: 101

recovery:
  recovery_rate_percent: 34.0
  cdi_monthly_percent: 1.134762
`
