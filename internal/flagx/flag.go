// Package flagx lets several loaders each parse their own subset of os.Args
// with a private flag.FlagSet.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns the arguments of args that belong to the allowed flags,
// keeping their order.
//
// Flags in valued take a value, given either as the next argument
// ("-c conf.json") or inline ("-c=conf.json"). Flags in switches are
// booleans: the argument after them is never consumed.
//
// The result is never nil.
func FilterArgs(args []string, valued []string, switches ...string) []string {
	kinds := make(map[string]bool, len(valued)+len(switches))
	for _, f := range valued {
		kinds[f] = true
	}
	for _, f := range switches {
		kinds[f] = false
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := kinds[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		takesValue, ok := kinds[arg]
		if !ok {
			continue
		}
		filtered = append(filtered, arg)
		if takesValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// JsonConfigFlags returns the config file path given with -c or -config,
// or "" when neither is present. Other arguments are ignored.
func JsonConfigFlags() string {
	var config string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}
