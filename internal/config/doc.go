// Package config loads runtime configuration for the passcheck CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-o string   oracle strategy: wordlist, breach or both
//	-w string   common-password file, one per line (default: bundled list)
//	-e string   estimator strategy: analytic, table or pattern
//	-u string   base URL of the breach range API
//	-t int      breach lookup timeout (seconds)
//	-r float    assumed attacker guesses per second
//	-l int      length of generated passwords
//	-v string   log level: debug, info, warn, error
//	-nocolor    disable coloured output
//
// # JSON schema
//
//	{
//	  "oracle": "both",
//	  "wordlist": "/etc/passcheck/words.txt",
//	  "estimator": "analytic",
//	  "breach_endpoint": "https://api.pwnedpasswords.com",
//	  "breach_timeout": "5s",
//	  "guesses_per_second": 1e9,
//	  "generated_length": 16,
//	  "log_level": "info",
//	  "color": true
//	}
//
// This package does not read environment variables; use the JSON file or flags.
package config
