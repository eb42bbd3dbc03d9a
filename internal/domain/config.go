package domain

import "time"

// NetworkKind selects which Network variant the CLI wires in.
type NetworkKind string

const (
	NetworkHTTP    NetworkKind = "http"
	NetworkKafka   NetworkKind = "kafka"
	NetworkJournal NetworkKind = "journal"
)

// PresenterStyle selects which RobotPresenter the CLI wires in.
type PresenterStyle string

const (
	StylePlain    PresenterStyle = "plain"
	StyleTemplate PresenterStyle = "template"
	StyleStyled   PresenterStyle = "styled"
	StyleJSON     PresenterStyle = "json"
)

// DefaultEndpoint is where robot HQ listens for broadcasts.
const DefaultEndpoint = "https://robot-hq.com"

// DefaultGreetingTemplate renders the same sentence as the plain printer.
const DefaultGreetingTemplate = "Hello my name is {{name}} and I am a {{type}} robot"

// Config represents the solidbots configuration loaded from solidbots.yaml.
type Config struct {
	Network   NetworkKind
	HQ        HQConfig
	Kafka     KafkaConfig
	Journal   JournalConfig
	Presenter PresenterConfig
}

type HQConfig struct {
	Endpoint string
	Timeout  time.Duration
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type JournalConfig struct {
	Path string
}

type PresenterConfig struct {
	Style    PresenterStyle
	Template string
}

// DefaultConfig provides sane defaults if solidbots.yaml is partially missing.
// The journal network is the default so nothing leaves the machine unless asked.
func DefaultConfig() Config {
	return Config{
		Network: NetworkJournal,
		HQ: HQConfig{
			Endpoint: DefaultEndpoint,
			Timeout:  30 * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers: []string{"localhost:9092"},
			Topic:   "robot-broadcasts",
		},
		Journal: JournalConfig{
			Path: ".solidbots/broadcasts.jsonl",
		},
		Presenter: PresenterConfig{
			Style:    StylePlain,
			Template: DefaultGreetingTemplate,
		},
	}
}
