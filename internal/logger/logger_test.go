package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	Init("warn", "json")
	var buf bytes.Buffer
	std.SetOutput(&buf)
	defer func() { std = nil }()

	Debug("quiet %d", 1)
	Info("quiet %d", 2)
	Warn("loud %d", 3)
	Error("loud %d", 4)

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("below-threshold messages were emitted:\n%s", out)
	}
	for _, want := range []string{"[WARN] loud 3", "[ERROR] loud 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestUninitializedIsSilent(t *testing.T) {
	std = nil
	// Must be a no-op, not a panic.
	Info("dropped")
	Error("dropped")
}
