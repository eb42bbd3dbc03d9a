package usecase

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	sdk "github.com/segmentio/kafka-go"

	"github.com/aalvaropc/solidbots/internal/infra/httpnetwork"
	"github.com/aalvaropc/solidbots/internal/infra/journalnetwork"
	"github.com/aalvaropc/solidbots/internal/infra/kafkanetwork"
	"github.com/aalvaropc/solidbots/internal/ports"
)

// --- fakes ---

type recordingNetwork struct {
	msgs []string
}

func (r *recordingNetwork) Broadcast(_ context.Context, message string) error {
	r.msgs = append(r.msgs, message)
	return nil
}

type failingNetwork struct{ err error }

func (f failingNetwork) Broadcast(context.Context, string) error { return f.err }

type fakeKafkaWriter struct {
	msgs []sdk.Message
}

func (f *fakeKafkaWriter) WriteMessages(_ context.Context, msgs ...sdk.Message) error {
	f.msgs = append(f.msgs, msgs...)
	return nil
}

// Each case builds a Network variant plus a way to read back what it sent.
// The Announcer is the same for every row.
func TestAnnouncer_WorksWithEveryNetwork(t *testing.T) {
	const msg = "robots, assemble"

	cases := []struct {
		name  string
		setup func(t *testing.T) (ports.Network, func() []string)
	}{
		{
			name: "http",
			setup: func(t *testing.T) (ports.Network, func() []string) {
				var (
					mu  sync.Mutex
					got []string
				)
				srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					b, _ := io.ReadAll(r.Body)
					mu.Lock()
					got = append(got, string(b))
					mu.Unlock()
					w.WriteHeader(http.StatusNoContent)
				}))
				t.Cleanup(srv.Close)
				return httpnetwork.New(httpnetwork.WithEndpoint(srv.URL)), func() []string {
					mu.Lock()
					defer mu.Unlock()
					return append([]string(nil), got...)
				}
			},
		},
		{
			name: "kafka",
			setup: func(t *testing.T) (ports.Network, func() []string) {
				w := &fakeKafkaWriter{}
				return kafkanetwork.New(w), func() []string {
					out := make([]string, 0, len(w.msgs))
					for _, m := range w.msgs {
						out = append(out, string(m.Value))
					}
					return out
				}
			},
		},
		{
			name: "journal",
			setup: func(t *testing.T) (ports.Network, func() []string) {
				path := filepath.Join(t.TempDir(), "broadcasts.jsonl")
				return journalnetwork.New(path), func() []string {
					recs, err := journalnetwork.Load(path)
					if err != nil {
						t.Fatalf("load journal: %v", err)
					}
					out := make([]string, 0, len(recs))
					for _, r := range recs {
						out = append(out, r.Message)
					}
					return out
				}
			},
		},
		{
			name: "recording",
			setup: func(t *testing.T) (ports.Network, func() []string) {
				r := &recordingNetwork{}
				return r, func() []string { return r.msgs }
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			network, sent := tc.setup(t)

			if err := NewAnnouncer(network).Execute(context.Background(), msg); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := sent()
			if len(got) != 1 || got[0] != msg {
				t.Fatalf("expected [%q], got %q", msg, got)
			}
		})
	}
}

func TestAnnouncer_PropagatesErrorUnchanged(t *testing.T) {
	root := errors.New("no route to hq")
	err := NewAnnouncer(failingNetwork{err: root}).Execute(context.Background(), "x")
	if err != root {
		t.Fatalf("expected the network error itself, got %v", err)
	}
}

func TestAnnouncer_NilLoggerOptionKeepsDefault(t *testing.T) {
	a := NewAnnouncer(&recordingNetwork{}, WithAnnouncerLogger(nil))
	if a.logger == nil {
		t.Fatalf("expected default logger")
	}
}
