package tui

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/solidbots/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if strings.HasPrefix(oe.Op, "lessons.") {
				return "Lesson not found"
			}
			return "Not found"

		case domain.KindBroadcast:
			if oe.Path != "" {
				return "Broadcast to " + oe.Path + " failed"
			}
			return "Broadcast failed (see logs)"

		case domain.KindPresentation:
			return "Could not print greeting"

		case domain.KindJournal:
			if oe.Path != "" {
				return "Journal " + filepath.Base(oe.Path) + " is unreadable"
			}
			return "Journal is unreadable"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			return "Invalid config"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "Lesson timed out"
	}
	return "Unexpected error (see logs)"
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
