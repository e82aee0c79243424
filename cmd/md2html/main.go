package main

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS for container CPU limits. The logger stays
	// silent unless verbose output was requested: a successful run must
	// write nothing to stdout or stderr.
	if verboseRequested(os.Args[1:], os.Getenv) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args[1:], DefaultEnv()))
}

// verboseRequested peeks at the arguments and environment before flags are
// parsed, so the maxprocs logger can be wired from the start.
func verboseRequested(args []string, getenv func(string) string) bool {
	for _, a := range args {
		if a == "--" {
			break
		}
		if a == "--verbose" {
			return true
		}
	}
	b, err := strconv.ParseBool(getenv("MD2HTML_VERBOSE"))
	return err == nil && b
}
