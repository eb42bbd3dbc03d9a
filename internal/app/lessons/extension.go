package lessons

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aalvaropc/solidbots/internal/domain"
	"github.com/aalvaropc/solidbots/internal/usecase"
)

const rollCall = "All robots, report to HQ"

func extensionLesson(deps Deps) func(context.Context, io.Writer) error {
	return func(ctx context.Context, w io.Writer) error {
		heading(w, "Before: OldNetwork")
		fmt.Fprintf(w, "OldNetwork builds its own HTTP client and POSTs to %s.\n", domain.DefaultEndpoint)
		fmt.Fprintln(w, "Switching to Kafka, a journal or RPC means editing OldNetwork and every caller.")

		heading(w, "After: Network{Broadcast}")
		if deps.Network == nil {
			return &domain.OpError{
				Op:   "lessons.extension",
				Kind: domain.KindInvalidConfig,
				Err:  errors.New("no network configured"),
			}
		}

		name := deps.NetworkName
		if name == "" {
			name = "configured"
		}
		if err := usecase.NewAnnouncer(deps.Network, usecase.WithAnnouncerLogger(deps.Logger)).Execute(ctx, rollCall); err != nil {
			return err
		}
		fmt.Fprintf(w, "announcer broadcast %q through the %s network\n", rollCall, name)
		if deps.NetworkTarget != "" {
			fmt.Fprintf(w, "delivered to %s\n", deps.NetworkTarget)
		}
		fmt.Fprintln(w, "The announcer only knows Network; adding a mechanism adds a type, nothing else.")
		return nil
	}
}
