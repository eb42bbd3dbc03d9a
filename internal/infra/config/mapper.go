package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aalvaropc/solidbots/internal/domain"
)

// MapConfig applies the parsed file on top of domain defaults.
func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if s := strings.TrimSpace(y.Network); s != "" {
		kind, err := parseNetwork(s)
		if err != nil {
			return cfg, invalidField(path, "network", err.Error())
		}
		cfg.Network = kind
	}

	if s := strings.TrimSpace(y.HQ.Endpoint); s != "" {
		u, err := url.Parse(s)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return cfg, invalidField(path, "hq.endpoint", "absolute URL required")
		}
		cfg.HQ.Endpoint = s
	}
	if s := strings.TrimSpace(y.HQ.Timeout); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 {
			return cfg, invalidField(path, "hq.timeout", fmt.Sprintf("invalid duration %q", s))
		}
		cfg.HQ.Timeout = d
	}

	if len(y.Kafka.Brokers) > 0 {
		cfg.Kafka.Brokers = append([]string(nil), y.Kafka.Brokers...)
	}
	if s := strings.TrimSpace(y.Kafka.Topic); s != "" {
		cfg.Kafka.Topic = s
	}

	if s := strings.TrimSpace(y.Journal.Path); s != "" {
		cfg.Journal.Path = s
	}

	if s := strings.TrimSpace(y.Presenter.Style); s != "" {
		style, err := ParseStyle(s)
		if err != nil {
			return cfg, invalidField(path, "presenter.style", err.Error())
		}
		cfg.Presenter.Style = style
	}
	if y.Presenter.Template != "" {
		cfg.Presenter.Template = y.Presenter.Template
	}

	return cfg, nil
}

func parseNetwork(s string) (domain.NetworkKind, error) {
	switch k := domain.NetworkKind(strings.ToLower(s)); k {
	case domain.NetworkHTTP, domain.NetworkKafka, domain.NetworkJournal:
		return k, nil
	default:
		return "", fmt.Errorf("unsupported network %q", s)
	}
}

// ParseNetwork validates a network name coming from a flag.
func ParseNetwork(s string) (domain.NetworkKind, error) {
	k, err := parseNetwork(strings.TrimSpace(s))
	if err != nil {
		return "", invalidField("", "network", err.Error())
	}
	return k, nil
}

// ParseStyle validates a presenter style name.
func ParseStyle(s string) (domain.PresenterStyle, error) {
	switch st := domain.PresenterStyle(strings.ToLower(strings.TrimSpace(s))); st {
	case domain.StylePlain, domain.StyleTemplate, domain.StyleStyled, domain.StyleJSON:
		return st, nil
	default:
		return "", fmt.Errorf("unsupported presenter style %q", s)
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
