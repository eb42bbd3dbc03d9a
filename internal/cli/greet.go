package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/solidbots/internal/domain"
	"github.com/aalvaropc/solidbots/internal/infra/config"
	"github.com/aalvaropc/solidbots/internal/infra/printer"
	"github.com/aalvaropc/solidbots/internal/usecase"
)

func greetCmd(opts *rootOptions) *cobra.Command {
	var name string
	var kind string
	var style string
	var tmpl string

	c := &cobra.Command{
		Use:   "greet",
		Short: "Introduce a robot through a presenter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pc := opts.app.cfg.Presenter
			if strings.TrimSpace(style) != "" {
				st, err := config.ParseStyle(style)
				if err != nil {
					return &domain.OpError{Op: "cli.greet", Kind: domain.KindInvalidConfig, Err: err}
				}
				pc.Style = st
			}
			if tmpl != "" {
				switch {
				case strings.TrimSpace(style) == "":
					pc.Style = domain.StyleTemplate
				case pc.Style != domain.StyleTemplate:
					return &domain.OpError{
						Op:   "cli.greet",
						Kind: domain.KindInvalidConfig,
						Err:  fmt.Errorf("%w: --template needs --style template, got %q", domain.ErrInvalidConfig, pc.Style),
					}
				}
				pc.Template = tmpl
			}

			p, err := printer.New(pc.Style, cmd.OutOrStdout(), pc.Template)
			if err != nil {
				return err
			}
			return usecase.NewIntroducer(p).Execute(domain.NewRobotMk2(name, kind))
		},
	}

	c.Flags().StringVar(&name, "name", "", "Robot name (required)")
	c.Flags().StringVarP(&kind, "type", "t", "scout", "Robot type")
	c.Flags().StringVarP(&style, "style", "s", "", "Presenter: plain|template|styled|json (defaults to config)")
	c.Flags().StringVar(&tmpl, "template", "", "Greeting template using {{name}} and {{type}} (implies --style template)")

	_ = c.MarkFlagRequired("name")
	return c
}
