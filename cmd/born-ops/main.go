// Package main provides the born-ops CLI for evaluating Born's scalar operators.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/prelude/operators"
)

const version = "v0.1.0-dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("born-ops", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a .toml or .yaml config file")
	verbose := fs.Bool("v", false, "enable debug logging")
	fs.Usage = func() {
		usage(fs.Output())
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	logger := newLogger(stderr, *verbose)

	par := operators.DefaultParallelConfig()
	if *configPath != "" {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			logger.Error().Err(err).Str("path", *configPath).Msg("config")
			return err
		}
		par = cfg
		logger.Debug().
			Str("path", *configPath).
			Bool("parallel", par.Enabled).
			Int("workers", par.NumWorkers).
			Int("min_chunk", par.MinChunkSize).
			Msg("config loaded")
	}

	c := &cli{
		reg: operators.NewRegistry(),
		par: par,
		out: stdout,
		log: logger,
	}
	if err := c.dispatch(fs.Args()); err != nil {
		logger.Error().Err(err).Msg("command failed")
		return err
	}
	return nil
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Born operators - scalar prelude for the Born ML Framework")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Usage: born-ops [flags] <command> [args]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version                    Show version")
	fmt.Fprintln(w, "  ops                        List registered operators")
	fmt.Fprintln(w, "  eval <op> <a> [b]          Evaluate an operator")
	fmt.Fprintln(w, "  grad <op> <a> <d>          Chain-rule gradient of a backward operator")
	fmt.Fprintln(w, "  map <op> <xs...>           Apply a unary operator to each value")
	fmt.Fprintln(w, "  zip <op> <xs...> -- <ys...> Apply a binary operator pairwise")
	fmt.Fprintln(w, "  fold sum|prod <xs...>      Reduce values")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Flags:")
}
