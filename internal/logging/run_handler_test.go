package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestRunHandlerAddsSessionAndCommand(t *testing.T) {
	var buf bytes.Buffer
	handler := newRunHandler(slog.NewJSONHandler(&buf, nil), Run{SessionID: "session-abc", Command: "libris shell"})

	slog.New(handler).With("extra", "value").Info("test message")

	output := buf.String()
	for _, want := range []string{`"session_id":"session-abc"`, `"invocation":"libris shell"`, `"extra":"value"`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestRunHandlerEmptyRunIsPassThrough(t *testing.T) {
	base := slog.NewJSONHandler(&bytes.Buffer{}, nil)
	if got := newRunHandler(base, Run{SessionID: "  "}); got != slog.Handler(base) {
		t.Fatalf("expected base handler for empty run, got %T", got)
	}
}

func TestRunHandlerNilBase(t *testing.T) {
	if _, ok := newRunHandler(nil, Run{SessionID: "session-123"}).(NoopHandler); !ok {
		t.Error("expected NoopHandler when base is nil")
	}
}

func TestComposeSubject(t *testing.T) {
	tests := []struct {
		book, borrower, want string
	}{
		{"B1", "R1", "book B1 · borrower R1"},
		{"B1", "", "book B1"},
		{"", "R1", "borrower R1"},
		{" ", "", ""},
	}
	for _, tt := range tests {
		if got := composeSubject(tt.book, tt.borrower); got != tt.want {
			t.Errorf("composeSubject(%q, %q) = %q, want %q", tt.book, tt.borrower, got, tt.want)
		}
	}
}
