package tui

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/solidbots/internal/app/lessons"
)

const lessonTimeout = 30 * time.Second

func cmdRunLesson(l lessons.Lesson, seq int, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), lessonTimeout)
		defer cancel()

		var buf bytes.Buffer
		start := time.Now()
		err := l.Run(ctx, &buf)
		took := time.Since(start)
		if err != nil {
			log.Error("lesson.failed", "id", l.ID, "run", seq, "err", err)
		} else {
			log.Info("lesson.completed", "id", l.ID, "run", seq, "duration_ms", took.Milliseconds())
		}
		return lessonDoneMsg{id: l.ID, seq: seq, output: buf.String(), took: took, err: err}
	}
}
