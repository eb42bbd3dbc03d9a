package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/solidbots/internal/app/lessons"
)

func lessonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lessons",
		Short: "List the available lessons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, l := range lessons.Catalog(lessons.Deps{}) {
				fmt.Fprintf(out, "- %-15s %-22s %s\n", l.ID, l.Principle, l.Title)
			}
			return nil
		},
	}
}

func lessonCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lesson <id>",
		Short: "Run a lesson and narrate the before and after designs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, closeNet, err := opts.app.lessonDeps()
			defer func() { _ = closeNet() }()
			if err != nil {
				return err
			}

			l, err := lessons.Find(lessons.Catalog(deps), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n%s\n", l.Title, l.Principle, l.Summary)
			return l.Run(cmd.Context(), out)
		},
	}
}
