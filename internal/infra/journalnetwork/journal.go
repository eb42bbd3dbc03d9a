package journalnetwork

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/aalvaropc/solidbots/internal/domain"
	"github.com/aalvaropc/solidbots/internal/ports"
)

// Network "broadcasts" by appending each message to a JSONL journal on disk.
// It lets the illustrations run offline and leaves a trail that can be read back.
type Network struct {
	path  string
	now   func() time.Time
	newID func() string

	mu sync.Mutex
}

type Option func(*Network)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(n *Network) { n.now = now }
}

func WithIDs(newID func() string) Option {
	return func(n *Network) { n.newID = newID }
}

func New(path string, opts ...Option) *Network {
	n := &Network{
		path:  path,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var _ ports.Network = (*Network)(nil)

func (n *Network) Path() string { return n.path }

func (n *Network) Broadcast(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return &domain.OpError{Op: "journalnetwork.broadcast", Kind: domain.KindBroadcast, Path: n.path, Err: err}
	}

	line, err := json.Marshal(domain.BroadcastRecord{
		ID:      n.newID(),
		Message: message,
		SentAt:  n.now().UTC(),
	})
	if err != nil {
		return &domain.OpError{Op: "journalnetwork.marshal", Kind: domain.KindBroadcast, Path: n.path, Err: err}
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(n.path), 0o755); err != nil {
		return &domain.OpError{Op: "journalnetwork.mkdir", Kind: domain.KindBroadcast, Path: n.path, Err: err}
	}

	f, err := os.OpenFile(n.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return &domain.OpError{Op: "journalnetwork.open", Kind: domain.KindBroadcast, Path: n.path, Err: err}
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return &domain.OpError{Op: "journalnetwork.write", Kind: domain.KindBroadcast, Path: n.path, Err: err}
	}
	return nil
}

// Load reads every record from a journal. A missing journal is empty.
// Records are read line by line with no size limit, since Broadcast accepts
// messages of any length.
func Load(path string) ([]domain.BroadcastRecord, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.BroadcastRecord{}, nil
	}
	if err != nil {
		return nil, &domain.OpError{Op: "journalnetwork.open", Kind: domain.KindJournal, Path: path, Err: err}
	}
	defer f.Close()

	out := []domain.BroadcastRecord{}
	r := bufio.NewReader(f)
	for lineNo := 1; ; lineNo++ {
		raw, rerr := r.ReadBytes('\n')
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return nil, &domain.OpError{Op: "journalnetwork.read", Kind: domain.KindJournal, Path: path, Err: rerr}
		}

		if line := bytes.TrimSpace(raw); len(line) > 0 {
			var rec domain.BroadcastRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, &domain.OpError{
					Op:   "journalnetwork.decode",
					Kind: domain.KindJournal,
					Path: path,
					Err:  fmt.Errorf("line %d: %w", lineNo, err),
				}
			}
			out = append(out, rec)
		}

		if rerr != nil {
			return out, nil
		}
	}
}
