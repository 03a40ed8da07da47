// Where: cli/internal/infra/ui/console_test.go
// What: Tests for console formatting helpers.
// Why: Keep emoji toggling and block layout stable.
package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleEmojiToggle(t *testing.T) {
	var withEmoji, plain bytes.Buffer
	NewWithEmoji(&withEmoji, true).Success("done")
	NewWithEmoji(&plain, false).Success("done")

	if got := withEmoji.String(); got != "✅ done\n" {
		t.Fatalf("emoji success = %q", got)
	}
	if got := plain.String(); got != "[ok] done\n" {
		t.Fatalf("plain success = %q", got)
	}

	plain.Reset()
	NewWithEmoji(&plain, false).Warn("careful")
	if got := plain.String(); got != "[warn] careful\n" {
		t.Fatalf("plain warn = %q", got)
	}
}

func TestConsoleUIBlock(t *testing.T) {
	var out bytes.Buffer
	NewConsoleUI(&out, true, false).Block("🌱", "Project created", []KeyValue{
		{Key: "Name", Value: "demo"},
		{Key: "License", Value: "MIT"},
	})

	got := out.String()
	if !strings.HasPrefix(got, "\n🌱 Project created\n") {
		t.Fatalf("unexpected header: %q", got)
	}
	if !strings.Contains(got, "   Name:") || !strings.Contains(got, "demo") {
		t.Fatalf("missing item: %q", got)
	}
	if !strings.HasSuffix(got, "\n\n") {
		t.Fatalf("block should end with blank line: %q", got)
	}
}

func TestPlainUIWritesBareLines(t *testing.T) {
	var out bytes.Buffer
	ui := NewPlainUI(&out)
	ui.Warn("✗ boom")
	ui.Info("next")
	if got := out.String(); got != "✗ boom\nnext\n" {
		t.Fatalf("plain output = %q", got)
	}
}
