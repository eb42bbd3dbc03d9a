package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/solidbots/internal/domain"
	"github.com/aalvaropc/solidbots/internal/ports"
)

// StyledPrinter draws the greeting inside a rounded card for terminals.
type StyledPrinter struct {
	out   io.Writer
	card  lipgloss.Style
	title lipgloss.Style
}

func NewStyledPrinter(out io.Writer) *StyledPrinter {
	if out == nil {
		out = os.Stdout
	}
	return &StyledPrinter{
		out: out,
		card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		title: lipgloss.NewStyle().Bold(true),
	}
}

var _ ports.RobotPresenter = (*StyledPrinter)(nil)

func (p *StyledPrinter) Greet(robot domain.RobotMk2) error {
	body := p.title.Render(robot.Name()) + "\n" + Greeting(robot)
	if _, err := fmt.Fprintln(p.out, p.card.Render(body)); err != nil {
		return presentationError("printer.styled", err)
	}
	return nil
}
