package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Oracle strategies.
const (
	OracleWordlist = "wordlist"
	OracleBreach   = "breach"
	OracleBoth     = "both"
)

// Estimator strategies.
const (
	EstimatorAnalytic = "analytic"
	EstimatorTable    = "table"
	EstimatorPattern  = "pattern"
)

// minGeneratedLength is the shortest generated password accepted from configuration.
const minGeneratedLength = 12

// Config holds runtime settings for the passcheck CLI.
//
// Units: BreachTimeout is a time.Duration, GuessesPerSecond is a rate.
type Config struct {
	OracleMode       string
	WordlistPath     string
	EstimatorMode    string
	BreachEndpoint   string
	BreachTimeout    time.Duration
	GuessesPerSecond float64
	GeneratedLength  int
	LogLevel         string
	Color            bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.OracleMode = OracleWordlist
	c.EstimatorMode = EstimatorAnalytic
	c.BreachEndpoint = "https://api.pwnedpasswords.com"
	c.BreachTimeout = 5 * time.Second
	c.GuessesPerSecond = 1e9
	c.GeneratedLength = 12
	c.LogLevel = "warn"
	c.Color = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	switch c.OracleMode {
	case OracleWordlist, OracleBreach, OracleBoth:
	default:
		result = multierror.Append(result, fmt.Errorf("unknown oracle %q", c.OracleMode))
	}

	switch c.EstimatorMode {
	case EstimatorAnalytic, EstimatorTable, EstimatorPattern:
	default:
		result = multierror.Append(result, fmt.Errorf("unknown estimator %q", c.EstimatorMode))
	}

	if c.OracleMode == OracleBreach || c.OracleMode == OracleBoth {
		if u, err := url.Parse(c.BreachEndpoint); err != nil || u.Scheme == "" || u.Host == "" {
			result = multierror.Append(result, fmt.Errorf("invalid breach endpoint %q", c.BreachEndpoint))
		}
		if c.BreachTimeout <= 0 {
			result = multierror.Append(result, fmt.Errorf("breach timeout must be positive, got %s", c.BreachTimeout))
		}
	}

	if c.GuessesPerSecond <= 0 {
		result = multierror.Append(result, fmt.Errorf("guesses per second must be positive, got %g", c.GuessesPerSecond))
	}

	if c.GeneratedLength < minGeneratedLength {
		result = multierror.Append(result, fmt.Errorf("generated length must be at least %d, got %d", minGeneratedLength, c.GeneratedLength))
	}

	return result.ErrorOrNil()
}
