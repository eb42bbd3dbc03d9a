package tui

import (
	"log/slog"

	"github.com/aalvaropc/solidbots/internal/app/lessons"
)

type Deps struct {
	Lessons []lessons.Lesson

	Logger *slog.Logger
	// Debug logs each run start and shows run timings in the lesson card.
	Debug bool
}
