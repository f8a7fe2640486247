package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fin-analyst/internal/aggregate"
	"fin-analyst/internal/growth"
	"fin-analyst/internal/types"
	"fin-analyst/internal/valuation"
)

type Config struct {
	Valuation struct {
		DiscountRate    float64 `yaml:"discount_rate"`
		TerminalGrowth  float64 `yaml:"terminal_growth"`
		ProjectionYears int     `yaml:"projection_years"`
		RequiredReturn  float64 `yaml:"required_return"`
		AAAYield        float64 `yaml:"aaa_yield"`
		MarginThreshold float64 `yaml:"margin_threshold"`
		PE              struct {
			BuyBelow  float64 `yaml:"buy_below"`
			HoldBelow float64 `yaml:"hold_below"`
		} `yaml:"pe"`
		EVEBITDA struct {
			BuyBelow  float64 `yaml:"buy_below"`
			HoldBelow float64 `yaml:"hold_below"`
		} `yaml:"ev_ebitda"`
		PB struct {
			BuyBelow  float64 `yaml:"buy_below"`
			HoldBelow float64 `yaml:"hold_below"`
		} `yaml:"pb"`
		Payback struct {
			BuyYears  int `yaml:"buy_years"`
			HoldYears int `yaml:"hold_years"`
		} `yaml:"payback"`
		Yield struct {
			BuyAbove  float64 `yaml:"buy_above"`
			HoldAbove float64 `yaml:"hold_above"`
		} `yaml:"yield"`
		PEG struct {
			BuyBelow  float64 `yaml:"buy_below"`
			HoldBelow float64 `yaml:"hold_below"`
		} `yaml:"peg"`
	} `yaml:"valuation"`
	Growth struct {
		DefaultRate float64 `yaml:"default_rate"`
	} `yaml:"growth"`
	Aggregate struct {
		TieBreak string `yaml:"tie_break"`
	} `yaml:"aggregate"`
	Snapshots struct {
		Dir string `yaml:"dir"`
	} `yaml:"snapshots"`
}

// Params materializes the valuation parameter set from the config.
func (c *Config) Params() valuation.Params {
	v := c.Valuation
	return valuation.Params{
		DiscountRate:      v.DiscountRate,
		TerminalGrowth:    v.TerminalGrowth,
		ProjectionYears:   v.ProjectionYears,
		RequiredReturn:    v.RequiredReturn,
		AAAYield:          v.AAAYield,
		MarginThreshold:   v.MarginThreshold,
		PEBuyBelow:        v.PE.BuyBelow,
		PEHoldBelow:       v.PE.HoldBelow,
		EVEBITDABuyBelow:  v.EVEBITDA.BuyBelow,
		EVEBITDAHoldBelow: v.EVEBITDA.HoldBelow,
		PBBuyBelow:        v.PB.BuyBelow,
		PBHoldBelow:       v.PB.HoldBelow,
		PaybackBuyYears:   v.Payback.BuyYears,
		PaybackHoldYears:  v.Payback.HoldYears,
		YieldBuyAbove:     v.Yield.BuyAbove,
		YieldHoldAbove:    v.Yield.HoldAbove,
		PEGBuyBelow:       v.PEG.BuyBelow,
		PEGHoldBelow:      v.PEG.HoldBelow,
	}
}

// Policy materializes the aggregation policy.
func (c *Config) Policy() aggregate.Policy {
	p := aggregate.DefaultPolicy()
	if c.Aggregate.TieBreak != "" {
		p.TieBreak = types.Signal(c.Aggregate.TieBreak)
	}
	return p
}

func (c *Config) Validate() error {
	v := c.Valuation
	if v.DiscountRate <= v.TerminalGrowth {
		return fmt.Errorf("valuation.discount_rate (%.4f) must exceed terminal_growth (%.4f)", v.DiscountRate, v.TerminalGrowth)
	}
	if v.ProjectionYears <= 0 {
		return fmt.Errorf("valuation.projection_years must be positive, got %d", v.ProjectionYears)
	}
	if v.MarginThreshold <= 0 || v.MarginThreshold >= 1 {
		return fmt.Errorf("valuation.margin_threshold must be in (0,1), got %.4f", v.MarginThreshold)
	}
	if v.RequiredReturn <= 0 {
		return fmt.Errorf("valuation.required_return must be positive, got %.4f", v.RequiredReturn)
	}
	if v.AAAYield <= 0 {
		return fmt.Errorf("valuation.aaa_yield must be positive, got %.4f", v.AAAYield)
	}
	if v.PE.BuyBelow >= v.PE.HoldBelow {
		return fmt.Errorf("valuation.pe breakpoints out of order: %.2f >= %.2f", v.PE.BuyBelow, v.PE.HoldBelow)
	}
	if v.EVEBITDA.BuyBelow >= v.EVEBITDA.HoldBelow {
		return fmt.Errorf("valuation.ev_ebitda breakpoints out of order: %.2f >= %.2f", v.EVEBITDA.BuyBelow, v.EVEBITDA.HoldBelow)
	}
	if v.PB.BuyBelow >= v.PB.HoldBelow {
		return fmt.Errorf("valuation.pb breakpoints out of order: %.2f >= %.2f", v.PB.BuyBelow, v.PB.HoldBelow)
	}
	if v.Payback.BuyYears >= v.Payback.HoldYears {
		return fmt.Errorf("valuation.payback breakpoints out of order: %d >= %d", v.Payback.BuyYears, v.Payback.HoldYears)
	}
	if v.Yield.BuyAbove <= v.Yield.HoldAbove {
		return fmt.Errorf("valuation.yield breakpoints out of order: %.2f <= %.2f", v.Yield.BuyAbove, v.Yield.HoldAbove)
	}
	if v.PEG.BuyBelow >= v.PEG.HoldBelow {
		return fmt.Errorf("valuation.peg breakpoints out of order: %.2f >= %.2f", v.PEG.BuyBelow, v.PEG.HoldBelow)
	}
	if tb := c.Aggregate.TieBreak; tb != "" && !types.Signal(tb).Votes() {
		return fmt.Errorf("aggregate.tie_break must be BUY, HOLD or SELL, got %q", tb)
	}
	return nil
}

// LoadConfig reads the yaml config, fills unset values from the reference
// defaults and validates the result.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &c, nil
}

// DefaultConfig returns a fully populated config without reading a file.
func DefaultConfig() *Config {
	var c Config
	c.applyDefaults()
	return &c
}

func (c *Config) applyDefaults() {
	d := valuation.DefaultParams()
	v := &c.Valuation
	if v.DiscountRate == 0 {
		v.DiscountRate = d.DiscountRate
	}
	if v.TerminalGrowth == 0 {
		v.TerminalGrowth = d.TerminalGrowth
	}
	if v.ProjectionYears == 0 {
		v.ProjectionYears = d.ProjectionYears
	}
	if v.RequiredReturn == 0 {
		v.RequiredReturn = d.RequiredReturn
	}
	if v.AAAYield == 0 {
		v.AAAYield = d.AAAYield
	}
	if v.MarginThreshold == 0 {
		v.MarginThreshold = d.MarginThreshold
	}
	if v.PE.BuyBelow == 0 {
		v.PE.BuyBelow = d.PEBuyBelow
	}
	if v.PE.HoldBelow == 0 {
		v.PE.HoldBelow = d.PEHoldBelow
	}
	if v.EVEBITDA.BuyBelow == 0 {
		v.EVEBITDA.BuyBelow = d.EVEBITDABuyBelow
	}
	if v.EVEBITDA.HoldBelow == 0 {
		v.EVEBITDA.HoldBelow = d.EVEBITDAHoldBelow
	}
	if v.PB.BuyBelow == 0 {
		v.PB.BuyBelow = d.PBBuyBelow
	}
	if v.PB.HoldBelow == 0 {
		v.PB.HoldBelow = d.PBHoldBelow
	}
	if v.Payback.BuyYears == 0 {
		v.Payback.BuyYears = d.PaybackBuyYears
	}
	if v.Payback.HoldYears == 0 {
		v.Payback.HoldYears = d.PaybackHoldYears
	}
	if v.Yield.BuyAbove == 0 {
		v.Yield.BuyAbove = d.YieldBuyAbove
	}
	if v.Yield.HoldAbove == 0 {
		v.Yield.HoldAbove = d.YieldHoldAbove
	}
	if v.PEG.BuyBelow == 0 {
		v.PEG.BuyBelow = d.PEGBuyBelow
	}
	if v.PEG.HoldBelow == 0 {
		v.PEG.HoldBelow = d.PEGHoldBelow
	}
	if c.Growth.DefaultRate == 0 {
		c.Growth.DefaultRate = growth.DefaultRate
	}
	if c.Snapshots.Dir == "" {
		c.Snapshots.Dir = "snapshots"
	}
}
