package shell

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/passcheck/internal/config"
	"github.com/dmitrijs2005/passcheck/internal/estimator"
	"github.com/dmitrijs2005/passcheck/internal/evaluator"
	"github.com/dmitrijs2005/passcheck/internal/generator"
	"github.com/dmitrijs2005/passcheck/internal/logging"
	"github.com/dmitrijs2005/passcheck/internal/oracle"
)

// NewEvaluator builds the engine selected by cfg.
func NewEvaluator(cfg *config.Config, log logging.Logger) (*evaluator.Evaluator, error) {
	o, err := newOracle(cfg, log)
	if err != nil {
		return nil, err
	}
	est, err := newEstimator(cfg)
	if err != nil {
		return nil, err
	}
	return evaluator.New(o, est,
		evaluator.WithGenerator(generator.New(cfg.GeneratedLength)),
		evaluator.WithLogger(log),
	), nil
}

func newOracle(cfg *config.Config, log logging.Logger) (oracle.Oracle, error) {
	words, err := loadWordlist(cfg.WordlistPath)
	if err != nil {
		return nil, err
	}

	breach := func() *oracle.Breach {
		return oracle.NewBreach(cfg.BreachEndpoint,
			oracle.WithTimeout(cfg.BreachTimeout),
			oracle.WithLogger(log.With("component", "breach")),
		)
	}

	switch cfg.OracleMode {
	case config.OracleWordlist:
		return words, nil
	case config.OracleBreach:
		return breach(), nil
	case config.OracleBoth:
		return oracle.Any{words, breach()}, nil
	default:
		return nil, fmt.Errorf("unknown oracle %q", cfg.OracleMode)
	}
}

// loadWordlist reads path, or returns the bundled list when path is empty.
func loadWordlist(path string) (*oracle.Wordlist, error) {
	if path == "" {
		return oracle.DefaultWordlist(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()

	w, err := oracle.ReadWordlist(f)
	if err != nil {
		return nil, fmt.Errorf("read wordlist %s: %w", path, err)
	}
	return w, nil
}

func newEstimator(cfg *config.Config) (estimator.Estimator, error) {
	switch cfg.EstimatorMode {
	case config.EstimatorAnalytic:
		return estimator.NewAnalytic(cfg.GuessesPerSecond), nil
	case config.EstimatorTable:
		return estimator.NewTable(), nil
	case config.EstimatorPattern:
		return estimator.NewPattern(), nil
	default:
		return nil, fmt.Errorf("unknown estimator %q", cfg.EstimatorMode)
	}
}
