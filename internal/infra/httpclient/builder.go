package httpclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/aalvaropc/solidbots/internal/domain"
)

// BuildBroadcast builds a POST carrying message as a plain text body.
func BuildBroadcast(ctx context.Context, endpoint, message string) (*http.Request, error) {
	u, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Path: endpoint,
			Err:  domain.ErrInvalidEndpoint,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), strings.NewReader(message))
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Path: endpoint,
			Err:  err,
		}
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	return req, nil
}
