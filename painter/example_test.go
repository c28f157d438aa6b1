package painter_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/staticmode/mode"
	"github.com/katalvlaran/staticmode/painter"
)

// ExamplePainter_DrawLine reproduces the canonical combinations.
func ExamplePainter_DrawLine() {
	p := painter.New()

	for _, e := range []mode.Expr{
		mode.Must(mode.Combine(painter.Dotted, painter.NoEnds)),
		mode.Must(mode.Combine(painter.Dashed, painter.Arrows)),
		mode.Must(mode.Combine(painter.Solid, painter.Circles)),
		painter.Dashed, // default EndStyle: no_ends
		painter.Arrows, // default LineStyle: solid
		mode.Empty,     // both defaulted
	} {
		if err := p.DrawLine(os.Stdout, e); err != nil {
			fmt.Println("error:", err)
		}
	}

	// Output:
	//  ..........
	// <---------->
	// o__________o
	//  ----------
	// <__________>
	//  __________
}
