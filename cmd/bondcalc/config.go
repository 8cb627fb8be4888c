package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/danielyekini/FinCraftr/bond"
)

// calcConfig is the optional TOML configuration for solver and risk
// parameters. Zero fields keep the engine defaults.
type calcConfig struct {
	Tolerance     float64 `toml:"tolerance"`
	MaxIterations int     `toml:"max_iterations"`
	InitialGuess  float64 `toml:"initial_guess"`
	Bump          float64 `toml:"bump"`
}

func loadConfig(path string) (calcConfig, error) {
	var cfg calcConfig
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return calcConfig{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// solverConfig merges the file settings over the engine defaults.
func (c calcConfig) solverConfig() bond.SolverConfig {
	cfg := bond.DefaultSolverConfig
	if c.Tolerance > 0 {
		cfg.Tolerance = c.Tolerance
	}
	if c.MaxIterations > 0 {
		cfg.MaxIterations = c.MaxIterations
	}
	if c.InitialGuess > 0 {
		cfg.InitialGuess = c.InitialGuess
	}
	return cfg
}

func (c calcConfig) bump() float64 {
	if c.Bump > 0 {
		return c.Bump
	}
	return bond.DefaultBump
}
