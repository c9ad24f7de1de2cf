package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// SimConfig represents the complete simulation configuration
type SimConfig struct {
	Sim    SimSettings   `hcl:"sim,block"`
	Tables []TableConfig `hcl:"table,block"`
}

// SimSettings contains run-level configuration
type SimSettings struct {
	Hands     int    `hcl:"hands,optional"`
	Workers   int    `hcl:"workers,optional"`
	Seed      int64  `hcl:"seed,optional"`
	LogLevel  string `hcl:"log_level,optional"`
	OutputDir string `hcl:"output_dir,optional"`
}

// TableConfig defines one table to simulate
type TableConfig struct {
	Name       string `hcl:"name,label"`
	Seats      int    `hcl:"seats,optional"`
	BuyIn      int    `hcl:"buy_in,optional"`
	SmallBlind int    `hcl:"small_blind"`
	BigBlind   int    `hcl:"big_blind"`
}

// Default returns the default simulation configuration
func Default() *SimConfig {
	return &SimConfig{
		Sim: SimSettings{
			Hands:    1000,
			Workers:  4,
			LogLevel: "info",
		},
		Tables: []TableConfig{
			{
				Name:       "main",
				Seats:      6,
				BuyIn:      1000,
				SmallBlind: 5,
				BigBlind:   10,
			},
		},
	}
}

// Load reads simulation configuration from an HCL file. A missing file yields
// the defaults.
func Load(filename string) (*SimConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg SimConfig
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Sim.Hands == 0 {
		cfg.Sim.Hands = 1000
	}
	if cfg.Sim.Workers == 0 {
		cfg.Sim.Workers = 4
	}
	if cfg.Sim.LogLevel == "" {
		cfg.Sim.LogLevel = "info"
	}
	for i := range cfg.Tables {
		if cfg.Tables[i].Seats == 0 {
			cfg.Tables[i].Seats = 6
		}
		if cfg.Tables[i].BuyIn == 0 {
			cfg.Tables[i].BuyIn = 100 * cfg.Tables[i].BigBlind
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for consistency
func (c *SimConfig) Validate() error {
	if c.Sim.Hands < 1 {
		return fmt.Errorf("sim.hands must be positive, got %d", c.Sim.Hands)
	}
	if c.Sim.Workers < 1 {
		return fmt.Errorf("sim.workers must be positive, got %d", c.Sim.Workers)
	}
	if len(c.Tables) == 0 {
		return fmt.Errorf("at least one table block is required")
	}
	for _, t := range c.Tables {
		if t.Seats < 2 {
			return fmt.Errorf("table %q: seats must be at least 2, got %d", t.Name, t.Seats)
		}
		if t.SmallBlind <= 0 || t.BigBlind < t.SmallBlind {
			return fmt.Errorf("table %q: invalid blinds %d/%d", t.Name, t.SmallBlind, t.BigBlind)
		}
		if t.BuyIn <= 0 {
			return fmt.Errorf("table %q: buy_in must be positive, got %d", t.Name, t.BuyIn)
		}
	}
	return nil
}
