package httpnetwork

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/solidbots/internal/domain"
	"github.com/aalvaropc/solidbots/internal/infra/httpclient"
	"github.com/aalvaropc/solidbots/internal/ports"
)

// HTTPNetwork broadcasts by POSTing the raw message to a fixed endpoint.
type HTTPNetwork struct {
	endpoint string
	exec     *httpclient.Executor
	logger   *slog.Logger
}

type Option func(*HTTPNetwork)

func WithEndpoint(endpoint string) Option {
	return func(n *HTTPNetwork) {
		if endpoint != "" {
			n.endpoint = endpoint
		}
	}
}

func WithExecutor(exec *httpclient.Executor) Option {
	return func(n *HTTPNetwork) {
		if exec != nil {
			n.exec = exec
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(n *HTTPNetwork) {
		if l != nil {
			n.logger = l
		}
	}
}

func New(opts ...Option) *HTTPNetwork {
	n := &HTTPNetwork{
		endpoint: domain.DefaultEndpoint,
		exec:     httpclient.NewExecutor(),
		logger:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var _ ports.Network = (*HTTPNetwork)(nil)

// Broadcast sends one request. The response is discarded whatever its status.
func (n *HTTPNetwork) Broadcast(ctx context.Context, message string) error {
	req, err := httpclient.BuildBroadcast(ctx, n.endpoint, message)
	if err != nil {
		return err
	}

	d, err := n.exec.Send(ctx, req)
	if err != nil {
		return &domain.OpError{
			Op:   "httpnetwork.broadcast",
			Kind: domain.KindBroadcast,
			Path: n.endpoint,
			Err:  err,
		}
	}

	n.logger.Debug("httpnetwork.broadcast", "endpoint", n.endpoint, "status", d.Status, "duration_ms", d.Duration.Milliseconds())
	return nil
}

// Endpoint reports where broadcasts go.
func (n *HTTPNetwork) Endpoint() string { return n.endpoint }
