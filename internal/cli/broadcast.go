package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/solidbots/internal/infra/config"
	"github.com/aalvaropc/solidbots/internal/infra/logger"
	"github.com/aalvaropc/solidbots/internal/usecase"
)

func broadcastCmd(opts *rootOptions) *cobra.Command {
	var network string
	var endpoint string

	c := &cobra.Command{
		Use:   "broadcast <message>",
		Short: "Broadcast a message to robot HQ through a network",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := opts.app.cfg.Network
			if strings.TrimSpace(network) != "" {
				k, err := config.ParseNetwork(network)
				if err != nil {
					return err
				}
				kind = k
			}

			l, err := opts.app.network(kind, endpoint)
			defer func() { _ = l.close() }()
			if err != nil {
				return err
			}

			message := strings.Join(args, " ")
			uc := usecase.NewAnnouncer(l.Network, usecase.WithAnnouncerLogger(logger.Component("announcer")))
			if err := uc.Execute(cmd.Context(), message); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "broadcast sent via %s\n", l.describe())
			return nil
		},
	}

	c.Flags().StringVarP(&network, "network", "n", "", "Network: http|kafka|journal (defaults to config)")
	c.Flags().StringVar(&endpoint, "endpoint", "", "HQ endpoint for the http network (defaults to config)")
	return c
}
