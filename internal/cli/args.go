package cli

import (
	"strings"

	"github.com/polyroots/polyroots/pkg/errors"
)

// Commands that accept negative numbers ("roots 1 -3 2") run with cobra flag
// parsing disabled and read their flags here, so "-3" is an argument rather
// than an unknown shorthand.

// knownFlags maps each long flag name to whether it takes a value.
var knownFlags = map[string]bool{
	"verbose":  false,
	"help":     false,
	"config":   true,
	"format":   true,
	"no-cache": false,
	"refresh":  false,
	"at":       true,
	"file":     true,
	"mean":     false,
	"median":   false,
	"lower":    false,
	"mode":     false,
}

var shortFlags = map[string]string{
	"v": "verbose",
	"h": "help",
	"o": "format",
}

// globalFlags are accepted by every command.
var globalFlags = []string{"verbose", "help", "config"}

type argSet struct {
	bools      map[string]bool
	values     map[string]string
	positional []string
}

func (a *argSet) bool(name string) bool    { return a.bools[name] }
func (a *argSet) value(name string) string { return a.values[name] }

func (a *argSet) has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// parseArgs splits args into flags and positional values. Only global flags
// and those in allowed are accepted. Everything after "--" is positional.
func parseArgs(args []string, allowed ...string) (*argSet, error) {
	a := &argSet{bools: map[string]bool{}, values: map[string]string{}}
	args = expandShorthands(args)
	permitted := make(map[string]bool, len(globalFlags)+len(allowed))
	for _, name := range append(globalFlags, allowed...) {
		permitted[name] = true
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			a.positional = append(a.positional, args[i+1:]...)
			break
		}

		name, val, hasVal, isFlag := splitFlag(arg)
		if !isFlag {
			a.positional = append(a.positional, arg)
			continue
		}
		takesValue, known := knownFlags[name]
		if !known || !permitted[name] {
			return nil, errors.New(errors.ErrCodeInvalidInput, "unknown flag %s", arg)
		}

		switch {
		case takesValue && !hasVal:
			if i+1 >= len(args) {
				return nil, errors.New(errors.ErrCodeInvalidInput, "flag --%s needs a value", name)
			}
			i++
			a.values[name] = args[i]
		case takesValue:
			a.values[name] = val
		case hasVal:
			return nil, errors.New(errors.ErrCodeInvalidInput, "flag --%s does not take a value", name)
		default:
			a.bools[name] = true
		}
	}
	return a, nil
}

// splitFlag reports whether arg is a flag and returns its long name and any
// inline "=value". Tokens like "-3" are numbers, not flags.
func splitFlag(arg string) (name, val string, hasVal, isFlag bool) {
	switch {
	case strings.HasPrefix(arg, "--") && len(arg) > 2:
		name = arg[2:]
	case len(arg) > 1 && arg[0] == '-':
		if c := arg[1]; c >= '0' && c <= '9' {
			return "", "", false, false
		}
		name = arg[1:]
	default:
		return "", "", false, false
	}

	if before, after, ok := strings.Cut(name, "="); ok {
		name, val, hasVal = before, after, true
	}
	if !strings.HasPrefix(arg, "--") {
		long, ok := shortFlags[name]
		if !ok {
			// Unknown shorthand; keep the dash so the error names it as typed.
			return "-" + name, val, hasVal, true
		}
		name = long
	}
	return name, val, hasVal, true
}

// expandShorthands splits grouped shorthands the way pflag reads them:
// "-vo json" becomes "-v -o json" and "-vojson" becomes "-v -o=json".
// Arguments after "--" are left alone.
func expandShorthands(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		out = append(out, expandGroup(arg)...)
	}
	return out
}

// expandGroup returns arg unchanged unless it is a group of known shorthands.
func expandGroup(arg string) []string {
	if len(arg) < 3 || arg[0] != '-' || arg[1] == '-' || arg[2] == '=' {
		return []string{arg}
	}
	if c := arg[1]; c >= '0' && c <= '9' {
		return []string{arg}
	}

	group := make([]string, 0, len(arg)-1)
	for i := 1; i < len(arg); i++ {
		short := arg[i : i+1]
		long, ok := shortFlags[short]
		if !ok {
			return []string{arg}
		}
		if knownFlags[long] {
			// A value-taking shorthand ends the group; the rest is its value.
			if i+1 == len(arg) {
				return append(group, "-"+short)
			}
			return append(group, "-"+short+"="+strings.TrimPrefix(arg[i+1:], "="))
		}
		group = append(group, "-"+short)
	}
	return group
}

// globalArgs are the global flags found in a raw argument list.
type globalArgs struct {
	verbose bool
	config  string
}

// scanGlobalFlags picks -v/--verbose and --config out of args, ignoring
// everything else.
func scanGlobalFlags(args []string) globalArgs {
	var g globalArgs
	args = expandShorthands(args)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		switch {
		case arg == "-v" || arg == "--verbose":
			g.verbose = true
		case arg == "--config" && i+1 < len(args):
			g.config = args[i+1]
			i++
		case strings.HasPrefix(arg, "--config="):
			g.config = strings.TrimPrefix(arg, "--config=")
		}
	}
	return g
}
