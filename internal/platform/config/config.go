package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	dErrors "policycore/pkg/domain-errors"
)

// Config captures the knobs shared by the CLI and the default wiring.
type Config struct {
	// MaxUnits is the unit-load ceiling used by the default rule set.
	MaxUnits int `env:"POLICY_MAX_UNITS" envDefault:"24"`
	// RequiredCourse is the prerequisite used by the default rule set.
	RequiredCourse string `env:"POLICY_REQUIRED_COURSE" envDefault:"CS101"`
	// PaymentMethod selects the processor used by checkout.
	PaymentMethod string `env:"POLICY_PAYMENT_METHOD" envDefault:"credit_card"`

	LogLevel  string `env:"POLICY_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"POLICY_LOG_FORMAT" envDefault:"text"`
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values no rule set can work with.
func (c Config) Validate() error {
	if c.MaxUnits <= 0 {
		return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("max units must be positive, got %d", c.MaxUnits))
	}
	if strings.TrimSpace(c.RequiredCourse) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "required course cannot be empty")
	}
	return nil
}
