package kafkanetwork

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	sdk "github.com/segmentio/kafka-go"

	"github.com/aalvaropc/solidbots/internal/domain"
	"github.com/aalvaropc/solidbots/internal/ports"
)

// MessageWriter is the part of *kafka.Writer the network needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...sdk.Message) error
}

// NewWriter builds a writer for the configured brokers and topic.
func NewWriter(cfg domain.KafkaConfig) (*sdk.Writer, error) {
	if len(cfg.Brokers) == 0 || strings.TrimSpace(cfg.Topic) == "" {
		return nil, &domain.OpError{
			Op:   "kafkanetwork.writer",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("brokers and topic are required"),
		}
	}
	return &sdk.Writer{
		Addr:         sdk.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &sdk.LeastBytes{},
		RequiredAcks: sdk.RequireOne,
	}, nil
}

// Network publishes each broadcast as one Kafka message keyed by a fresh id.
type Network struct {
	writer MessageWriter
	now    func() time.Time
	newID  func() string
}

type Option func(*Network)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(n *Network) { n.now = now }
}

func WithIDs(newID func() string) Option {
	return func(n *Network) { n.newID = newID }
}

func New(w MessageWriter, opts ...Option) *Network {
	n := &Network{
		writer: w,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var _ ports.Network = (*Network)(nil)

func (n *Network) Broadcast(ctx context.Context, message string) error {
	msg := sdk.Message{
		Key:   []byte(n.newID()),
		Value: []byte(message),
		Time:  n.now().UTC(),
		Headers: []sdk.Header{
			{Key: "content-type", Value: []byte("text/plain")},
		},
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return &domain.OpError{
			Op:   "kafkanetwork.broadcast",
			Kind: domain.KindBroadcast,
			Err:  err,
		}
	}
	return nil
}
