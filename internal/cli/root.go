package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/solidbots/internal/app/lessons"
	"github.com/aalvaropc/solidbots/internal/infra/logger"
	"github.com/aalvaropc/solidbots/internal/ui/tui"
)

type rootOptions struct {
	debug      bool
	configPath string

	app     *appCtx
	cleanup func() error
}

func (o *rootOptions) close() {
	if o.cleanup != nil {
		_ = o.cleanup()
		o.cleanup = nil
	}
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	opts := &rootOptions{}
	cmd := newRootCmd(opts)
	err := cmd.ExecuteContext(ctx)
	opts.close()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "solidbots",
		Short:        "solidbots - robot-sized lessons in object-oriented design",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts.configPath)
			if err != nil {
				return err
			}
			opts.app = app

			cleanup, err := logger.Setup(logger.Config{
				Root:  app.root,
				Debug: opts.debug,
			})
			opts.cleanup = cleanup
			if opts.debug {
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "debug log unavailable: %v\n", err)
				} else {
					fmt.Fprintf(cmd.ErrOrStderr(), "debug log: %s\n", logger.Path())
				}
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			deps, closeNet, err := opts.app.lessonDeps()
			defer func() { _ = closeNet() }()
			if err != nil {
				return err
			}

			return tui.Run(tui.Deps{
				Lessons: lessons.Catalog(deps),
				Logger:  logger.Component("tui"),
				Debug:   opts.debug,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .solidbots/logs/solidbots.log")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to solidbots.yaml (optional; autodetected if omitted)")

	cmd.AddCommand(
		lessonsCmd(),
		lessonCmd(opts),
		broadcastCmd(opts),
		greetCmd(opts),
		journalCmd(opts),
		versionCmd(),
	)
	return cmd
}
