package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/born-ml/prelude/operators"
)

var errUsage = errors.New("usage")

type cli struct {
	reg *operators.Registry
	par operators.ParallelConfig
	out io.Writer
	log zerolog.Logger
}

func (c *cli) dispatch(args []string) error {
	if len(args) == 0 {
		usage(c.out)
		return nil
	}

	cmd, rest := args[0], args[1:]
	c.log.Debug().Str("command", cmd).Strs("args", rest).Msg("dispatch")

	switch cmd {
	case "version":
		fmt.Fprintf(c.out, "Born operators %s\n", version)
		return nil
	case "ops":
		return c.ops()
	case "eval":
		return c.eval(rest)
	case "grad":
		return c.grad(rest)
	case "map":
		return c.mapValues(rest)
	case "zip":
		return c.zip(rest)
	case "fold":
		return c.fold(rest)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (c *cli) ops() error {
	for _, name := range c.reg.SupportedOps() {
		fmt.Fprintf(c.out, "%s\t%s\n", name, c.reg.Kind(name))
	}
	return nil
}

func (c *cli) eval(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: eval <op> <a> [b]", errUsage)
	}
	name := args[0]
	xs, err := parseFloats(args[1:])
	if err != nil {
		return err
	}

	switch kind := c.reg.Kind(name); kind {
	case operators.KindUnary:
		if err := wantArgs(name, kind, xs, 1); err != nil {
			return err
		}
		fn, _ := c.reg.Unary(name)
		return c.printFloats(fn(xs[0]))
	case operators.KindBinary:
		if err := wantArgs(name, kind, xs, 2); err != nil {
			return err
		}
		fn, _ := c.reg.Binary(name)
		return c.printFloats(fn(xs[0], xs[1]))
	case operators.KindBackward:
		if err := wantArgs(name, kind, xs, 2); err != nil {
			return err
		}
		fn, _ := c.reg.Backward(name)
		return c.printFloats(fn(xs[0], xs[1]))
	case operators.KindPredicate:
		if err := wantArgs(name, kind, xs, 2); err != nil {
			return err
		}
		fn, _ := c.reg.Predicate(name)
		return c.printBools(fn(xs[0], xs[1]))
	default:
		_, err := c.reg.Unary(name)
		return err
	}
}

func (c *cli) grad(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: grad <op> <a> <d>", errUsage)
	}
	back, err := c.reg.Backward(args[0])
	if err != nil {
		return err
	}
	xs, err := parseFloats(args[1:])
	if err != nil {
		return err
	}
	return c.printFloats(operators.Chain(back)(xs[0], xs[1]))
}

func (c *cli) mapValues(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: map <op> <xs...>", errUsage)
	}
	fn, err := c.reg.Unary(args[0])
	if err != nil {
		return err
	}
	xs, err := parseFloats(args[1:])
	if err != nil {
		return err
	}
	return c.printFloats(operators.ParallelMap(fn, xs, c.par)...)
}

func (c *cli) zip(args []string) error {
	sep := slices.Index(args, "--")
	if sep < 1 {
		return fmt.Errorf("%w: zip <op> <xs...> -- <ys...>", errUsage)
	}
	name := args[0]
	xs, err := parseFloats(args[1:sep])
	if err != nil {
		return err
	}
	ys, err := parseFloats(args[sep+1:])
	if err != nil {
		return err
	}

	switch c.reg.Kind(name) {
	case operators.KindBinary:
		fn, _ := c.reg.Binary(name)
		return c.printFloats(operators.ParallelZipWith(fn, xs, ys, c.par)...)
	case operators.KindBackward:
		fn, _ := c.reg.Backward(name)
		return c.printFloats(operators.BackwardList(fn, xs, ys)...)
	case operators.KindPredicate:
		fn, _ := c.reg.Predicate(name)
		return c.printBools(operators.ParallelZipWith(fn, xs, ys, c.par)...)
	default:
		_, err := c.reg.Binary(name)
		return err
	}
}

func (c *cli) fold(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: fold sum|prod <xs...>", errUsage)
	}
	xs, err := parseFloats(args[1:])
	if err != nil {
		return err
	}
	switch args[0] {
	case "sum":
		return c.printFloats(operators.Sum(xs))
	case "prod":
		return c.printFloats(operators.Prod(xs))
	default:
		return fmt.Errorf("%w: unknown fold %q", errUsage, args[0])
	}
}

func wantArgs(name string, kind operators.Kind, xs []float64, n int) error {
	if len(xs) != n {
		return fmt.Errorf("%w: %s operator %q takes %d argument(s), got %d",
			operators.ErrArity, kind, name, n, len(xs))
	}
	return nil
}

func parseFloats(args []string) ([]float64, error) {
	xs, err := operators.TryMap(func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	}, args)
	if err != nil {
		return nil, fmt.Errorf("parse arguments: %w", err)
	}
	return xs, nil
}

func (c *cli) printFloats(xs ...float64) error {
	_, err := fmt.Fprintln(c.out, strings.Join(operators.Map(formatFloat, xs), " "))
	return err
}

func (c *cli) printBools(bs ...bool) error {
	_, err := fmt.Fprintln(c.out, strings.Join(operators.Map(strconv.FormatBool, bs), " "))
	return err
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
