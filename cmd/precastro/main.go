package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/openastro/precastro/precastro"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	_ = godotenv.Load()
	switch args[1] {
	case "call":
		return callCommand(args[2:])
	case "repl":
		return replCommand(args[2:])
	case "serve":
		return serveCommand(args[2:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

// buildModule assembles the precastro module, wiring in a JPL ephemeris when
// PRECASTRO_EPHEMERIS points at one. The returned cleanup releases it.
func buildModule() (*precastro.Module, func(), error) {
	path := os.Getenv("PRECASTRO_EPHEMERIS")
	if path == "" {
		mod, err := precastro.New()
		return mod, func() {}, err
	}
	eph, err := precastro.OpenEphemeris(path)
	if err != nil {
		return nil, nil, err
	}
	mod, err := precastro.New(precastro.WithEphemeris(eph))
	if err != nil {
		eph.Close()
		return nil, nil, err
	}
	return mod, func() { eph.Close() }, nil
}

func callCommand(args []string) error {
	fs := flag.NewFlagSet("call", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("precastro call: function name required")
	}

	values, err := parseArgValues(remaining[1:])
	if err != nil {
		return err
	}

	mod, cleanup, err := buildModule()
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := mod.Call(context.Background(), remaining[0], values)
	if err != nil {
		return err
	}
	if out := formatResult(result); out != "" {
		fmt.Println(out)
	}
	return nil
}

// formatResult renders a call result for printing; nil results have nothing
// to show and come back empty.
func formatResult(v precastro.Value) string {
	if v.IsNil() {
		return ""
	}
	return v.String()
}

func parseArgValues(raw []string) ([]precastro.Value, error) {
	values := make([]precastro.Value, len(raw))
	for i, s := range raw {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			values[i] = precastro.NewInt(n)
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %q is not numeric", s)
		}
		values[i] = precastro.NewFloat(f)
	}
	return values, nil
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags] [args...]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  call <function> <numeric args...>")
	fmt.Fprintln(os.Stderr, "    invoke one registered function and print the result")
	fmt.Fprintln(os.Stderr, "  repl")
	fmt.Fprintln(os.Stderr, "    interactive session against the registered functions")
	fmt.Fprintln(os.Stderr, "  serve [-addr host:port]")
	fmt.Fprintln(os.Stderr, "    expose the registered functions over HTTP")
	fmt.Fprintln(os.Stderr, "Environment:")
	fmt.Fprintln(os.Stderr, "  PRECASTRO_EPHEMERIS  path to a JPL binary ephemeris (optional)")
	fmt.Fprintln(os.Stderr, "  PRECASTRO_ADDR       default listen address for serve")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
