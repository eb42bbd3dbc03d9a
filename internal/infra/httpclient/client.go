package httpclient

import (
	"net"
	"net/http"
	"time"

	"github.com/aalvaropc/solidbots/internal/domain"
)

type Config struct {
	// Total timeout for the entire request. A context deadline can still override this.
	Timeout time.Duration

	DialTimeout     time.Duration
	KeepAlive       time.Duration
	TLSHandshake    time.Duration
	ResponseHeader  time.Duration
	IdleConnTimeout time.Duration

	MaxIdleConns int
}

func DefaultConfig() Config {
	return Config{
		Timeout:         30 * time.Second,
		DialTimeout:     5 * time.Second,
		KeepAlive:       30 * time.Second,
		TLSHandshake:    5 * time.Second,
		ResponseHeader:  10 * time.Second,
		IdleConnTimeout: 90 * time.Second,
		MaxIdleConns:    10,
	}
}

// ConfigFor applies the HQ section of the configuration on top of the defaults.
func ConfigFor(hq domain.HQConfig) Config {
	cfg := DefaultConfig()
	if hq.Timeout > 0 {
		cfg.Timeout = hq.Timeout
	}
	return cfg
}

func New(cfg Config) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: cfg.KeepAlive,
	}

	tr := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		MaxIdleConns:    cfg.MaxIdleConns,
		IdleConnTimeout: cfg.IdleConnTimeout,

		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ResponseHeaderTimeout: cfg.ResponseHeader,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
	}
}
