package printer

import (
	"io"
	"os"

	json "github.com/goccy/go-json"

	"github.com/aalvaropc/solidbots/internal/domain"
	"github.com/aalvaropc/solidbots/internal/ports"
)

type jsonGreeting struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Greeting string `json:"greeting"`
}

// JSONPrinter emits one JSON object per greeting, for scripts.
type JSONPrinter struct {
	enc *json.Encoder
}

func NewJSONPrinter(out io.Writer) *JSONPrinter {
	if out == nil {
		out = os.Stdout
	}
	return &JSONPrinter{enc: json.NewEncoder(out)}
}

var _ ports.RobotPresenter = (*JSONPrinter)(nil)

func (p *JSONPrinter) Greet(robot domain.RobotMk2) error {
	err := p.enc.Encode(jsonGreeting{
		Name:     robot.Name(),
		Type:     robot.Type(),
		Greeting: Greeting(robot),
	})
	if err != nil {
		return presentationError("printer.json", err)
	}
	return nil
}
