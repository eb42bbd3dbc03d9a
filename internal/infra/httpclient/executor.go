package httpclient

import (
	"context"
	"io"
	"net/http"
	"time"
)

// Delivery is what is left of a response once its body has been discarded.
type Delivery struct {
	Status   int
	Duration time.Duration
}

// Executor sends requests and throws the response body away.
type Executor struct {
	client *http.Client
}

// ExecutorOption allows configuring an Executor.
type ExecutorOption func(*Executor)

// WithClient sets a custom HTTP client.
func WithClient(client *http.Client) ExecutorOption {
	return func(e *Executor) {
		if client != nil {
			e.client = client
		}
	}
}

// NewExecutor builds an Executor with a default client.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{client: New(DefaultConfig())}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Send executes the request, drains and closes the body, and reports the status.
func (e *Executor) Send(ctx context.Context, req *http.Request) (Delivery, error) {
	start := time.Now()
	resp, err := e.client.Do(req.WithContext(ctx))
	if err != nil {
		return Delivery{Duration: time.Since(start)}, err
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)
	return Delivery{
		Status:   resp.StatusCode,
		Duration: time.Since(start),
	}, nil
}
