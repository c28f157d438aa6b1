package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/staticmode/mode"
	"github.com/katalvlaran/staticmode/painter"
)

type scenario struct {
	label string
	expr  mode.Expr
}

// demoScenarios are composed at init: an invalid one would abort the binary
// before any command runs.
var demoScenarios = []scenario{
	{"drawLine(dotted|no_ends)", mode.Must(mode.Combine(painter.Dotted, painter.NoEnds))},
	{"drawLine(dashed|arrows)", mode.Must(mode.Combine(painter.Dashed, painter.Arrows))},
	{"drawLine(solid|circles)", mode.Must(mode.Combine(painter.Solid, painter.Circles))},
	{"drawLine(dashed)", painter.Dashed},
	{"drawLine(arrows)", painter.Arrows},
	{"drawLine()", mode.Empty},
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Draw every canonical line style combination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.painter()
			out := cmd.OutOrStdout()
			for _, s := range demoScenarios {
				if a.cfg.Labels {
					fmt.Fprintln(out, a.label(s.label+":"))
				}
				if err := p.DrawLine(out, s.expr); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
