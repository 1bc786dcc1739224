package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_JSON(t *testing.T) {
	var text, js bytes.Buffer
	logger := New(&text, &js, slog.LevelInfo, "json")

	logger.Info("Recipe created", "recipe_id", "abc")
	logger.Debug("hidden")

	if text.Len() != 0 {
		t.Errorf("json format wrote to text output: %q", text.String())
	}

	lines := strings.Split(strings.TrimSpace(js.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), js.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "Recipe created" || entry["recipe_id"] != "abc" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNew_Text(t *testing.T) {
	var text, js bytes.Buffer
	logger := New(&text, &js, slog.LevelWarn, "text")

	logger.Info("hidden")
	logger.Warn("Request rejected", "status", 404)

	if js.Len() != 0 {
		t.Errorf("text format wrote to json output: %q", js.String())
	}
	out := text.String()
	if strings.Contains(out, "hidden") {
		t.Error("info line should be filtered at warn level")
	}
	if !strings.Contains(out, "Request rejected") {
		t.Errorf("missing warn line: %q", out)
	}
}
