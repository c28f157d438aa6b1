package painter

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/staticmode/mode"
)

// Operation names, used as error prefixes.
const (
	OpDrawLine     = "DrawLine"
	OpDrawRequired = "DrawRequired"
	OpConfigure    = "Configure"
)

const (
	// DefaultLength is the number of body glyphs when WithLength is not given.
	DefaultLength = 10
	// MinLength is the smallest accepted line length.
	MinLength = 1
)

var (
	drawLine     = mode.NewContract(OpDrawLine, Accepted)
	drawRequired = mode.NewContract(OpDrawRequired, Accepted, mode.Require(LineStyles))
	configure    = mode.NewContract(OpConfigure, Accepted)
)

// Painter draws horizontal ASCII lines. The line and end styles are chosen
// per call by a mode expression over LineStyles and EndStyles.
// A Painter is immutable and safe for concurrent use.
type Painter struct {
	cfg painterConfig
}

// New creates a Painter with the given options.
func New(opts ...Option) *Painter {
	return &Painter{cfg: newPainterConfig(opts...)}
}

// Line renders e without a trailing newline.
// Unmentioned categories default to Solid and NoEnds.
//
// Errors (all wrap mode.ErrSpecification): malformed expression, duplicate
// category, or a category other than LineStyle and EndStyle.
func (p *Painter) Line(e mode.Expr) (string, error) {
	return p.line(drawLine, e)
}

// DrawLine writes Line(e) followed by a newline to w.
func (p *Painter) DrawLine(w io.Writer, e mode.Expr) error {
	return p.draw(w, drawLine, e)
}

// DrawRequired is DrawLine for callers that must name a line style;
// an expression without one fails with mode.ErrMissingMode.
func (p *Painter) DrawRequired(w io.Writer, e mode.Expr) error {
	return p.draw(w, drawRequired, e)
}

func (p *Painter) draw(w io.Writer, c mode.Contract, e mode.Expr) error {
	s, err := p.line(c, e)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, s+"\n"); err != nil {
		return fmt.Errorf("%s: write: %w", c.Op(), err)
	}

	return nil
}

func (p *Painter) line(c mode.Contract, e mode.Expr) (string, error) {
	if err := c.Check(e); err != nil {
		p.cfg.logger.Debug("mode expression rejected", "op", c.Op(), "expr", fmt.Sprint(e), "err", err)
		return "", err
	}

	return p.render(mode.Resolve(e, Solid), mode.Resolve(e, NoEnds)), nil
}

func (p *Painter) render(line mode.Mode[LineStyle], end mode.Mode[EndStyle]) string {
	var b strings.Builder
	b.WriteString(leftEnds.Get(end))
	b.WriteString(strings.Repeat(bodies.Get(line), p.cfg.length))
	b.WriteString(rightEnds.Get(end))

	return b.String()
}

// Drawer draws one line whose modes were fixed when it was configured.
type Drawer interface {
	// DrawLine writes the line and a newline to w.
	DrawLine(w io.Writer) error
	// Modes returns the effective selection, defaults included.
	Modes() mode.Set
}

// Configure validates e once and returns a Drawer bound to its resolved
// modes. Later draws cannot fail on modes.
func Configure(e mode.Expr, opts ...Option) (Drawer, error) {
	p := New(opts...)
	if err := configure.Check(e); err != nil {
		p.cfg.logger.Debug("mode expression rejected", "op", OpConfigure, "expr", fmt.Sprint(e), "err", err)
		return nil, err
	}

	modes, err := mode.WithDefaults(e, Defaults)
	if err != nil {
		return nil, err
	}
	d := &configured{
		modes: modes,
		text:  p.render(mode.Resolve(modes, Solid), mode.Resolve(modes, NoEnds)) + "\n",
	}
	p.cfg.logger.Debug("drawer configured", "modes", modes.String())

	return d, nil
}

type configured struct {
	modes mode.Set
	text  string
}

func (d *configured) DrawLine(w io.Writer) error {
	if _, err := io.WriteString(w, d.text); err != nil {
		return fmt.Errorf("%s: write: %w", OpDrawLine, err)
	}

	return nil
}

func (d *configured) Modes() mode.Set { return d.modes }
