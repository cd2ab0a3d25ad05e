package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/passcheck/internal/flagx"
)

// parseFlags populates Config fields from command-line flags (see the
// package doc). Only the flags handled here are kept from os.Args, so the
// -c/-config flag of parseJson does not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-o", "-w", "-e", "-u", "-t", "-r", "-l", "-v"}, "-nocolor")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.OracleMode, "o", cfg.OracleMode, "oracle: wordlist, breach or both")
	fs.StringVar(&cfg.WordlistPath, "w", cfg.WordlistPath, "file of common passwords, one per line (default: bundled list)")
	fs.StringVar(&cfg.EstimatorMode, "e", cfg.EstimatorMode, "estimator: analytic, table or pattern")
	fs.StringVar(&cfg.BreachEndpoint, "u", cfg.BreachEndpoint, "base URL of the breach range API")
	timeout := fs.Int("t", int(cfg.BreachTimeout.Seconds()), "breach lookup timeout (in seconds)")
	fs.Float64Var(&cfg.GuessesPerSecond, "r", cfg.GuessesPerSecond, "assumed attacker guesses per second")
	fs.IntVar(&cfg.GeneratedLength, "l", cfg.GeneratedLength, "length of generated passwords")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level: debug, info, warn, error")
	noColor := fs.Bool("nocolor", !cfg.Color, "disable coloured output")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t has whole-second resolution; keep a finer JSON value unless -t was given
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.BreachTimeout = time.Duration(*timeout) * time.Second
		}
	})
	cfg.Color = !*noColor
}
