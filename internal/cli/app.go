package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/solidbots/internal/app/lessons"
	"github.com/aalvaropc/solidbots/internal/domain"
	"github.com/aalvaropc/solidbots/internal/infra/config"
	"github.com/aalvaropc/solidbots/internal/infra/httpclient"
	"github.com/aalvaropc/solidbots/internal/infra/httpnetwork"
	"github.com/aalvaropc/solidbots/internal/infra/journalnetwork"
	"github.com/aalvaropc/solidbots/internal/infra/kafkanetwork"
	"github.com/aalvaropc/solidbots/internal/infra/logger"
	"github.com/aalvaropc/solidbots/internal/infra/printer"
	"github.com/aalvaropc/solidbots/internal/ports"
)

type appCtx struct {
	root string
	cfg  domain.Config
}

func loadApp(configFlag string) (*appCtx, error) {
	if p := strings.TrimSpace(configFlag); p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		cfg, err := config.Load(abs)
		if err != nil {
			return nil, err
		}
		root := filepath.Dir(abs)
		return &appCtx{root: root, cfg: config.AnchorPaths(cfg, root)}, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	root := wd
	if found, ferr := config.FindRoot(wd); ferr == nil {
		root = found
	}

	cfg, err := config.LoadFromRoot(root)
	if err != nil {
		return nil, err
	}
	return &appCtx{root: root, cfg: cfg}, nil
}

// link is a built Network plus where it delivers to. close is never nil.
type link struct {
	ports.Network
	kind   domain.NetworkKind
	target string
	close  func() error
}

func (l link) describe() string {
	if l.target == "" {
		return string(l.kind)
	}
	return fmt.Sprintf("%s (%s)", l.kind, l.target)
}

// network builds the Network variant for kind.
func (a *appCtx) network(kind domain.NetworkKind, endpoint string) (link, error) {
	noop := func() error { return nil }

	switch kind {
	case domain.NetworkHTTP:
		if endpoint == "" {
			endpoint = a.cfg.HQ.Endpoint
		}
		exec := httpclient.NewExecutor(
			httpclient.WithClient(httpclient.New(httpclient.ConfigFor(a.cfg.HQ))),
		)
		n := httpnetwork.New(
			httpnetwork.WithEndpoint(endpoint),
			httpnetwork.WithExecutor(exec),
			httpnetwork.WithLogger(logger.Component("httpnetwork")),
		)
		return link{Network: n, kind: kind, target: n.Endpoint(), close: noop}, nil

	case domain.NetworkKafka:
		w, err := kafkanetwork.NewWriter(a.cfg.Kafka)
		if err != nil {
			return link{close: noop}, err
		}
		return link{Network: kafkanetwork.New(w), kind: kind, target: "topic " + w.Topic, close: w.Close}, nil

	case domain.NetworkJournal:
		n := journalnetwork.New(a.cfg.Journal.Path)
		return link{Network: n, kind: kind, target: n.Path(), close: noop}, nil

	default:
		return link{close: noop}, &domain.OpError{
			Op:   "cli.network",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%w: unsupported network %q", domain.ErrInvalidConfig, kind),
		}
	}
}

func (a *appCtx) presenterFactory() lessons.PresenterFactory {
	style := a.cfg.Presenter.Style
	tmpl := a.cfg.Presenter.Template
	return func(w io.Writer) (ports.RobotPresenter, error) {
		return printer.New(style, w, tmpl)
	}
}

func (a *appCtx) lessonDeps() (lessons.Deps, func() error, error) {
	l, err := a.network(a.cfg.Network, "")
	if err != nil {
		return lessons.Deps{}, l.close, err
	}
	return lessons.Deps{
		Network:       l.Network,
		NetworkName:   string(l.kind),
		NetworkTarget: l.target,
		Presenter:     a.presenterFactory(),
		Logger:        logger.Component("lessons"),
	}, l.close, nil
}
