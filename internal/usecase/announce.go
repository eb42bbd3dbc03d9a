package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/solidbots/internal/ports"
)

// Announcer sends messages through whichever Network it was given.
type Announcer struct {
	network ports.Network
	logger  *slog.Logger
}

type AnnouncerOption func(*Announcer)

func WithAnnouncerLogger(l *slog.Logger) AnnouncerOption {
	return func(a *Announcer) {
		if l != nil {
			a.logger = l
		}
	}
}

func NewAnnouncer(n ports.Network, opts ...AnnouncerOption) *Announcer {
	a := &Announcer{
		network: n,
		logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Execute broadcasts once. Errors are returned untouched; there is no retry.
func (uc *Announcer) Execute(ctx context.Context, message string) error {
	uc.logger.Debug("announcer.broadcast", "bytes", len(message))
	if err := uc.network.Broadcast(ctx, message); err != nil {
		uc.logger.Error("announcer.broadcast_failed", "err", err)
		return err
	}
	return nil
}
