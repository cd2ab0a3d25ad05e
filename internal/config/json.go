package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/passcheck/internal/flagx"
	"github.com/dmitrijs2005/passcheck/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" apart from a zero value so that a partial file only
// overrides what it mentions.
type JsonConfig struct {
	OracleMode       string          `json:"oracle"`
	WordlistPath     string          `json:"wordlist"`
	EstimatorMode    string          `json:"estimator"`
	BreachEndpoint   string          `json:"breach_endpoint"`
	BreachTimeout    *timex.Duration `json:"breach_timeout"`
	GuessesPerSecond *float64        `json:"guesses_per_second"`
	GeneratedLength  *int            `json:"generated_length"`
	LogLevel         string          `json:"log_level"`
	Color            *bool           `json:"color"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag it does nothing. Read or unmarshal
// errors panic; intended usage is defaults -> parseJson -> parseFlags.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.OracleMode != "" {
		cfg.OracleMode = jc.OracleMode
	}
	if jc.WordlistPath != "" {
		cfg.WordlistPath = jc.WordlistPath
	}
	if jc.EstimatorMode != "" {
		cfg.EstimatorMode = jc.EstimatorMode
	}
	if jc.BreachEndpoint != "" {
		cfg.BreachEndpoint = jc.BreachEndpoint
	}
	if jc.BreachTimeout != nil {
		cfg.BreachTimeout = jc.BreachTimeout.Duration
	}
	if jc.GuessesPerSecond != nil {
		cfg.GuessesPerSecond = *jc.GuessesPerSecond
	}
	if jc.GeneratedLength != nil {
		cfg.GeneratedLength = *jc.GeneratedLength
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.Color != nil {
		cfg.Color = *jc.Color
	}
}
