package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/solidbots/internal/domain"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
solidbots:
  network: http
  hq:
    endpoint: http://localhost:9000/hq
    timeout: 2s
  kafka:
    brokers: [k1:9092, k2:9092]
    topic: fleet
  journal:
    path: /var/tmp/fleet.jsonl
  presenter:
    style: template
    template: "{{name}} ({{type}})"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Network != domain.NetworkHTTP {
		t.Fatalf("expected http network, got %s", cfg.Network)
	}
	if cfg.HQ.Endpoint != "http://localhost:9000/hq" || cfg.HQ.Timeout != 2*time.Second {
		t.Fatalf("unexpected hq config %+v", cfg.HQ)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Topic != "fleet" {
		t.Fatalf("unexpected kafka config %+v", cfg.Kafka)
	}
	if cfg.Journal.Path != "/var/tmp/fleet.jsonl" {
		t.Fatalf("unexpected journal path %s", cfg.Journal.Path)
	}
	if cfg.Presenter.Style != domain.StyleTemplate || cfg.Presenter.Template != "{{name}} ({{type}})" {
		t.Fatalf("unexpected presenter config %+v", cfg.Presenter)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "solidbots:\n  presenter:\n    style: json\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := domain.DefaultConfig()
	if cfg.Network != def.Network || cfg.HQ != def.HQ || cfg.Kafka.Topic != def.Kafka.Topic {
		t.Fatalf("expected defaults to survive, got %+v", cfg)
	}
	if cfg.Presenter.Style != domain.StyleJSON {
		t.Fatalf("expected json style, got %s", cfg.Presenter.Style)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "solidbots: [unterminated\n")
	if _, err := Load(path); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestLoadInvalidFields(t *testing.T) {
	cases := map[string]string{
		"hq.endpoint":     "solidbots:\n  hq:\n    endpoint: robot-hq\n",
		"hq.timeout":      "solidbots:\n  hq:\n    timeout: soon\n",
		"network":         "solidbots:\n  network: carrier-pigeon\n",
		"presenter.style": "solidbots:\n  presenter:\n    style: hologram\n",
	}
	for field, body := range cases {
		t.Run(field, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), body))
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected invalid_config, got %v", err)
			}
			if !strings.Contains(err.Error(), field) {
				t.Fatalf("expected field %s in error, got %v", field, err)
			}
		})
	}
}

func TestLoadFromRootMissingFileUsesDefaults(t *testing.T) {
	root := t.TempDir()
	cfg, err := LoadFromRoot(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(root, domain.DefaultConfig().Journal.Path)
	if cfg.Journal.Path != want {
		t.Fatalf("expected journal anchored at root %s, got %s", want, cfg.Journal.Path)
	}
}

func TestLoadFromRootPropagatesInvalidConfig(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "solidbots:\n  network: smoke-signals\n")
	if _, err := LoadFromRoot(root); err == nil {
		t.Fatalf("expected error")
	}
}
