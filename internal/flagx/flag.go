// Package flagx lets several config stages read their own flags out of one
// shared argument list without tripping over each other's flags.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// FilterArgs keeps only the flags named in allowedFlags, with their values.
//
// Both "-c conf.json" and "-c=conf.json" forms are recognised. In the
// separate form, a following token that starts with '-' is not taken as the
// value. Unknown flags and positional arguments are dropped. The result is
// never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}
	return filtered
}

// LookupString returns the value of the last of names (given without the
// leading dash) found in args, or "" if none is present or the value is
// missing.
func LookupString(args []string, names ...string) string {
	dashed := make([]string, len(names))
	for i, n := range names {
		dashed[i] = "-" + n
	}

	var value string
	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, n := range names {
		fs.StringVar(&value, n, "", "")
	}
	_ = fs.Parse(FilterArgs(args, dashed))
	return value
}

// JsonConfigFlags returns the config file path given with -c or -config,
// or "" if there is none.
func JsonConfigFlags() string {
	return LookupString(os.Args[1:], "c", "config")
}
