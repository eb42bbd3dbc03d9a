// Package printer holds the presenters that turn a robot record into a greeting.
// Records never print themselves; new presenters are added here without touching them.
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/aalvaropc/solidbots/internal/domain"
	"github.com/aalvaropc/solidbots/internal/ports"
)

// Greeting is the sentence every presenter is built around.
func Greeting(robot domain.RobotMk2) string {
	return fmt.Sprintf("Hello my name is %s and I am a %s robot", robot.Name(), robot.Type())
}

// RobotPrinter writes the plain greeting, one per line.
type RobotPrinter struct {
	out io.Writer
}

// NewRobotPrinter builds a printer. A nil writer means stdout.
func NewRobotPrinter(out io.Writer) *RobotPrinter {
	if out == nil {
		out = os.Stdout
	}
	return &RobotPrinter{out: out}
}

var _ ports.RobotPresenter = (*RobotPrinter)(nil)

func (p *RobotPrinter) Greet(robot domain.RobotMk2) error {
	if _, err := fmt.Fprintln(p.out, Greeting(robot)); err != nil {
		return presentationError("printer.plain", err)
	}
	return nil
}

// New picks a presenter for style. tmpl is only used by the template style.
func New(style domain.PresenterStyle, out io.Writer, tmpl string) (ports.RobotPresenter, error) {
	switch style {
	case "", domain.StylePlain:
		return NewRobotPrinter(out), nil
	case domain.StyleTemplate:
		p, err := NewTemplatePrinter(out, tmpl)
		if err != nil {
			return nil, err
		}
		return p, nil
	case domain.StyleStyled:
		return NewStyledPrinter(out), nil
	case domain.StyleJSON:
		return NewJSONPrinter(out), nil
	default:
		return nil, &domain.OpError{
			Op:   "printer.new",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%w: unknown presenter style %q", domain.ErrInvalidConfig, style),
		}
	}
}

func presentationError(op string, err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindPresentation, Err: err}
}
