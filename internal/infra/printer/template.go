package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/aalvaropc/solidbots/internal/app/template"
	"github.com/aalvaropc/solidbots/internal/domain"
	"github.com/aalvaropc/solidbots/internal/ports"
)

// TemplatePrinter renders a user supplied greeting template with {{name}} and {{type}}.
type TemplatePrinter struct {
	out  io.Writer
	tmpl string
}

func NewTemplatePrinter(out io.Writer, tmpl string) (*TemplatePrinter, error) {
	if out == nil {
		out = os.Stdout
	}
	if tmpl == "" {
		tmpl = domain.DefaultGreetingTemplate
	}
	if err := template.Validate(tmpl, "name", "type"); err != nil {
		return nil, err
	}
	return &TemplatePrinter{out: out, tmpl: tmpl}, nil
}

var _ ports.RobotPresenter = (*TemplatePrinter)(nil)

func (p *TemplatePrinter) Greet(robot domain.RobotMk2) error {
	s, err := template.RenderString(p.tmpl, map[string]string{
		"name": robot.Name(),
		"type": robot.Type(),
	})
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(p.out, s); err != nil {
		return presentationError("printer.template", err)
	}
	return nil
}
