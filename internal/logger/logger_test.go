package logger

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(redact bool) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &Logger{SugaredLogger: zap.New(core).Sugar(), redact: redact, salt: "pepper"}, logs
}

func TestLogger_HashesUserID(t *testing.T) {
	l, logs := observed(true)
	l.Info("profile created", "user_id", "u1", "season", "warm-spring")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	got, _ := fields["user_id"].(string)
	if !strings.HasPrefix(got, "hash:") || strings.Contains(got, "u1") {
		t.Errorf("user_id = %q, want hashed value", got)
	}
	if fields["season"] != "warm-spring" {
		t.Errorf("season = %v, want warm-spring", fields["season"])
	}
}

func TestLogger_HashIsStable(t *testing.T) {
	l, _ := observed(true)
	if a, b := l.hashValue("u1"), l.hashValue("u1"); a != b {
		t.Errorf("hash not stable: %s vs %s", a, b)
	}
	if a, b := l.hashValue("u1"), l.hashValue("u2"); a == b {
		t.Errorf("different ids share hash %s", a)
	}
}

func TestLogger_RedactionOff(t *testing.T) {
	l, logs := observed(false)
	l.With("user_id", "u1").Warn("relaxed")

	fields := logs.All()[0].ContextMap()
	if fields["user_id"] != "u1" {
		t.Errorf("user_id = %v, want u1", fields["user_id"])
	}
}

func TestLogger_OddKeyValues(t *testing.T) {
	l, logs := observed(true)
	l.Debug("dangling", "user_id")
	if logs.FilterMessage("dangling").Len() != 1 {
		t.Fatalf("dangling entries = %d, want 1", logs.FilterMessage("dangling").Len())
	}
}

func TestNew_RejectsBadLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("discarded", "k", "v")
	l.Sync()
}
