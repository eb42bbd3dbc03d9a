package printer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/PaesslerAG/jsonpath"
	json "github.com/goccy/go-json"

	"github.com/aalvaropc/solidbots/internal/domain"
	"github.com/aalvaropc/solidbots/internal/ports"
)

var ada = domain.NewRobotMk2("Ada", "scout")

func TestGreeting(t *testing.T) {
	want := "Hello my name is Ada and I am a scout robot"
	if got := Greeting(ada); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRobotPrinter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRobotPrinter(&buf).Greet(ada); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "Hello my name is Ada and I am a scout robot\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

// Mk1 and the Mk2 printer must say the same thing; only who says it changes.
func TestRobotPrinterMatchesRobotMk1(t *testing.T) {
	var mk1, mk2 bytes.Buffer
	domain.NewRobotMk1("Ada", "scout", &mk1).Greet()
	if err := NewRobotPrinter(&mk2).Greet(ada); err != nil {
		t.Fatal(err)
	}
	if mk1.String() != mk2.String() {
		t.Fatalf("expected identical output, got %q vs %q", mk1.String(), mk2.String())
	}
}

func TestTemplatePrinter(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewTemplatePrinter(&buf, "{{type}} unit {{name}} online")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Greet(ada); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "scout unit Ada online\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestTemplatePrinterDefaultTemplate(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewTemplatePrinter(&buf, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = p.Greet(ada)
	if strings.TrimSpace(buf.String()) != Greeting(ada) {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestTemplatePrinterRejectsUnknownVars(t *testing.T) {
	_, err := NewTemplatePrinter(&bytes.Buffer{}, "Hi {{serial}}")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestStyledPrinter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewStyledPrinter(&buf).Greet(ada); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), Greeting(ada)) {
		t.Fatalf("expected greeting inside card, got:\n%s", buf.String())
	}
}

func TestJSONPrinter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONPrinter(&buf).Greet(ada); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	for path, want := range map[string]string{
		"$.name":     "Ada",
		"$.type":     "scout",
		"$.greeting": Greeting(ada),
	} {
		got, err := jsonpath.Get(path, doc)
		if err != nil {
			t.Fatalf("jsonpath %s: %v", path, err)
		}
		if got != want {
			t.Fatalf("%s: expected %q, got %v", path, want, got)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestPresentersSurfaceWriteErrors(t *testing.T) {
	tp, err := NewTemplatePrinter(failingWriter{}, "")
	if err != nil {
		t.Fatal(err)
	}
	presenters := map[string]ports.RobotPresenter{
		"plain":    NewRobotPrinter(failingWriter{}),
		"template": tp,
		"styled":   NewStyledPrinter(failingWriter{}),
		"json":     NewJSONPrinter(failingWriter{}),
	}
	for name, p := range presenters {
		t.Run(name, func(t *testing.T) {
			if err := p.Greet(ada); !domain.IsKind(err, domain.KindPresentation) {
				t.Fatalf("expected presentation error, got %v", err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	for _, style := range []domain.PresenterStyle{"", domain.StylePlain, domain.StyleTemplate, domain.StyleStyled, domain.StyleJSON} {
		if _, err := New(style, &bytes.Buffer{}, ""); err != nil {
			t.Fatalf("style %q: unexpected error %v", style, err)
		}
	}
	if _, err := New("hologram", &bytes.Buffer{}, ""); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config for unknown style, got %v", err)
	}
}
