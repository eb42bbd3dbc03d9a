package journalnetwork

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/solidbots/internal/domain"
)

func TestNetwork_AppendsAndLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "broadcasts.jsonl")
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	seq := 0
	n := New(path,
		WithNow(func() time.Time { return at }),
		WithIDs(func() string { seq++; return fmt.Sprintf("b-%d", seq) }),
	)

	for _, msg := range []string{"first", "second"} {
		if err := n.Broadcast(context.Background(), msg); err != nil {
			t.Fatalf("broadcast %q: %v", msg, err)
		}
	}

	recs, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ID != "b-1" || recs[0].Message != "first" || !recs[0].SentAt.Equal(at) {
		t.Fatalf("unexpected first record %+v", recs[0])
	}
	if recs[1].Message != "second" {
		t.Fatalf("unexpected second record %+v", recs[1])
	}
}

func TestNetwork_CancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broadcasts.jsonl")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(path).Broadcast(ctx, "late")
	if !domain.IsKind(err, domain.KindBroadcast) {
		t.Fatalf("expected broadcast error, got %v", err)
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Fatalf("expected no journal to be written")
	}
}

func TestLoad_MissingIsEmpty(t *testing.T) {
	recs, err := Load(filepath.Join(t.TempDir(), "none.jsonl"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no records, got %d", len(recs))
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.jsonl")
	if err := os.WriteFile(path, []byte("{not json}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !domain.IsKind(err, domain.KindJournal) {
		t.Fatalf("expected journal error, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Fatalf("expected line number in %v", err)
	}
}

func TestLoad_LargeMessageRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broadcasts.jsonl")
	n := New(path)

	big := strings.Repeat("beep ", 2<<20/5+1)
	for _, msg := range []string{big, "small"} {
		if err := n.Broadcast(context.Background(), msg); err != nil {
			t.Fatalf("broadcast: %v", err)
		}
	}

	recs, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Message != big {
		t.Fatalf("large message did not round-trip (got %d bytes, want %d)", len(recs[0].Message), len(big))
	}
	if recs[1].Message != "small" {
		t.Fatalf("unexpected second record %+v", recs[1])
	}
}

func TestLoad_TrailingRecordWithoutNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broadcasts.jsonl")
	body := `{"id":"a","message":"one","sent_at":"2024-03-01T09:30:00Z"}` + "\n\n" +
		`{"id":"b","message":"two","sent_at":"2024-03-01T09:31:00Z"}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	recs, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(recs) != 2 || recs[1].ID != "b" {
		t.Fatalf("unexpected records %+v", recs)
	}
}
