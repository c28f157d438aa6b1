package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/staticmode/mode"
	"github.com/katalvlaran/staticmode/painter"
)

// Fruit is a category no painter operation accepts.
type Fruit int

const (
	Apple Fruit = iota
	Orange
	Banana
)

func (f Fruit) String() string {
	return [...]string{"apple", "orange", "banana"}[f]
}

var (
	Fruits = mode.NewCategory(Apple, Orange, Banana)
	banana = Fruits.Mode(Banana)
)

type rejection struct {
	label string
	run   func(p *painter.Painter) error
}

// rejections must all fail; each is evaluated at run time so the error can
// be shown instead of aborting init.
var rejections = []rejection{
	{"drawLine(dotted|solid)", func(p *painter.Painter) error {
		e, err := mode.Combine(painter.Dotted, painter.Solid)
		if err != nil {
			return err
		}
		return p.DrawLine(io.Discard, e)
	}},
	{"drawLine(dashed|banana)", func(p *painter.Painter) error {
		e, err := mode.Combine(painter.Dashed, banana)
		if err != nil {
			return err
		}
		return p.DrawLine(io.Discard, e)
	}},
	{"drawRequired(arrows)", func(p *painter.Painter) error {
		return p.DrawRequired(io.Discard, painter.Arrows)
	}},
	{"drawLine(42)", func(p *painter.Painter) error {
		var v any = 42
		if !mode.IsExpr(v) {
			return fmt.Errorf("%v is not a mode expression: %w", v, mode.ErrMalformedExpression)
		}
		return p.DrawLine(io.Discard, v.(mode.Expr))
	}},
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Show that invalid combinations are rejected",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.painter()
			out := cmd.OutOrStdout()
			for _, r := range rejections {
				err := r.run(p)
				if err == nil {
					return fmt.Errorf("check: %s was accepted", r.label)
				}
				a.logger.Info("combination rejected", "case", r.label, "err", err)
				fmt.Fprintf(out, "%s\n  rejected: %v\n", a.label(r.label+":"), err)
			}

			return nil
		},
	}
}
