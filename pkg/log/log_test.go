package log

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestJournalRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")
	if err := Init(dbPath); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer Close()

	if err := Init(dbPath); err == nil {
		t.Fatal("second Init should fail")
	}

	start := time.Now().Add(-time.Second)
	Info().Str("op", "encrypt").Str("in", "0x6f6b").Str("out", "0x0738").Msg("block")
	Info().Str("op", "decrypt").Str("in", "0x0738").Str("out", "0x6f6b").Msg("block")
	Info().Str("op", "encrypt").Str("in", "0xd728").Str("out", "0x24ec").Msg("block")

	entries, err := GetLastNLogs(2)
	if err != nil {
		t.Fatalf("GetLastNLogs failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if !strings.Contains(entries[1].LogData, "0xd728") {
		t.Errorf("newest entry should be last, got %s", entries[1].LogData)
	}

	enc, err := GetLogsByOp("encrypt", 10)
	if err != nil {
		t.Fatalf("GetLogsByOp failed: %v", err)
	}
	if len(enc) != 2 || !strings.Contains(enc[0].LogData, "0x6f6b") {
		t.Fatalf("unexpected encrypt entries: %+v", enc)
	}

	since, err := GetLogsSince(start, 0)
	if err != nil {
		t.Fatalf("GetLogsSince failed: %v", err)
	}
	if len(since) < 3 {
		t.Errorf("expected at least 3 entries since start, got %d", len(since))
	}
	if WritesSinceStart() < 3 {
		t.Errorf("WritesSinceStart = %d", WritesSinceStart())
	}

	if empty, err := GetLastNLogs(0); err != nil || len(empty) != 0 {
		t.Errorf("GetLastNLogs(0) = %v, %v", empty, err)
	}
}

func TestQueriesBeforeInit(t *testing.T) {
	if _, err := GetLastNLogs(5); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("Close without Init: %v", err)
	}
	if err := Init(""); err == nil {
		t.Fatal("Init with empty name should fail")
	}
}

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	Warn().Str("addr", ":7780").Msg("api did not shut down cleanly")
	if !strings.Contains(buf.String(), `"level":"warn"`) {
		t.Fatalf("warn event missing level: %q", buf.String())
	}

	Printf("expanded key %s", "a73b")
	if !strings.Contains(buf.String(), "expanded key a73b") {
		t.Fatalf("console output missing message: %q", buf.String())
	}
}
