// Package lessons wires the robot illustrations into runnable lessons.
// Each lesson narrates a flawed design, shows the flaw happening, then shows the fix.
package lessons

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aalvaropc/solidbots/internal/domain"
	"github.com/aalvaropc/solidbots/internal/infra/printer"
	"github.com/aalvaropc/solidbots/internal/ports"
)

type Lesson struct {
	ID        string
	Title     string
	Principle string
	Summary   string
	Run       func(ctx context.Context, w io.Writer) error
}

// PresenterFactory builds a presenter writing to w.
type PresenterFactory func(w io.Writer) (ports.RobotPresenter, error)

type Deps struct {
	Network ports.Network
	// NetworkName and NetworkTarget only label the narration.
	NetworkName   string
	NetworkTarget string
	Presenter     PresenterFactory
	Logger        *slog.Logger
}

// Catalog returns the lessons in reading order.
func Catalog(deps Deps) []Lesson {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if deps.Presenter == nil {
		deps.Presenter = func(w io.Writer) (ports.RobotPresenter, error) {
			return printer.NewRobotPrinter(w), nil
		}
	}

	return []Lesson{
		{
			ID:        "substitution",
			Title:     "Heavy robots cannot jump",
			Principle: "Liskov Substitution",
			Summary:   "Split RobotScout so no robot has to fake an operation it cannot perform.",
			Run:       substitutionLesson(deps),
		},
		{
			ID:        "extension",
			Title:     "Broadcasting without rewiring",
			Principle: "Open-Closed",
			Summary:   "Depend on a Network capability so new mechanisms never touch existing code.",
			Run:       extensionLesson(deps),
		},
		{
			ID:        "responsibility",
			Title:     "Robots that do not print themselves",
			Principle: "Single Responsibility",
			Summary:   "Keep the robot record plain and move greeting to a presenter.",
			Run:       responsibilityLesson(deps),
		},
	}
}

// Find looks a lesson up by id, case-insensitively.
func Find(lessons []Lesson, id string) (Lesson, error) {
	want := strings.ToLower(strings.TrimSpace(id))
	for _, l := range lessons {
		if l.ID == want {
			return l, nil
		}
	}
	return Lesson{}, &domain.OpError{
		Op:   "lessons.find",
		Kind: domain.KindNotFound,
		Err:  fmt.Errorf("%w: lesson %q", domain.ErrNotFound, id),
	}
}

func heading(w io.Writer, s string) {
	fmt.Fprintf(w, "\n== %s ==\n", s)
}
