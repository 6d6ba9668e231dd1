package show

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/clockface/internal/cli"
	"github.com/julianstephens/clockface/internal/clock"
	"github.com/julianstephens/clockface/internal/config"
	"github.com/julianstephens/clockface/internal/models"
	"github.com/julianstephens/clockface/internal/settings"
	"github.com/julianstephens/clockface/internal/storage/memory"
)

var monday = time.Date(2026, time.January, 5, 14, 5, 9, 0, time.UTC)

func setupContext(t *testing.T, mutate func(*models.Settings)) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := settings.NewStore(memory.NewStore())
	store.Load(context.Background())
	if mutate != nil {
		s := store.Current()
		mutate(&s)
		if err := store.Save(context.Background(), s); err != nil {
			t.Fatal(err)
		}
		store.Load(context.Background())
	}

	out := &bytes.Buffer{}
	return &cli.Context{
		Settings: store,
		Source:   clock.NewSource(clockwork.NewFakeClockAt(monday)),
		Config:   config.DefaultConfig(),
		Out:      out,
	}, out
}

func TestShowText(t *testing.T) {
	ctx, out := setupContext(t, func(s *models.Settings) { s.ShowAmPm = true })

	if err := (&ShowCmd{Output: "text", Radius: 8}).Run(ctx); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	want := "02:05:09 PM\nMonday, Jan 5\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestShowTextWithoutDate(t *testing.T) {
	ctx, out := setupContext(t, func(s *models.Settings) {
		s.ShowDate = false
		s.ShowDay = false
		s.Is24Hour = true
		s.ShowSeconds = false
	})

	if err := (&ShowCmd{Output: "text", At: "00:00:30"}).Run(ctx); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if out.String() != "00:00\n" {
		t.Errorf("output = %q, want %q", out.String(), "00:00\n")
	}
}

func TestShowAnalogText(t *testing.T) {
	ctx, out := setupContext(t, func(s *models.Settings) { s.IsAnalog = true })

	if err := (&ShowCmd{Output: "text", Radius: 6}).Run(ctx); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 14 {
		t.Fatalf("got %d lines, want 13 face rows and a date line", len(lines))
	}
	if lines[13] != "Monday, Jan 5" {
		t.Errorf("date line = %q", lines[13])
	}
	if strings.Contains(out.String(), "\x1b[") {
		t.Error("output to a buffer should not be coloured")
	}
}

func TestShowJSON(t *testing.T) {
	ctx, out := setupContext(t, nil)

	if err := (&ShowCmd{Output: "json", At: "2026-03-02T09:30:00Z"}).Run(ctx); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	var decoded struct {
		TimeText string          `json:"timeText"`
		DateText string          `json:"dateText"`
		Settings models.Settings `json:"settings"`
	}
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	if decoded.TimeText != "09:30:00" || decoded.DateText != "Monday, Mar 2" {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.Settings != models.DefaultSettings() {
		t.Errorf("settings = %s", decoded.Settings)
	}
}

func TestShowYAML(t *testing.T) {
	ctx, out := setupContext(t, func(s *models.Settings) {
		s.IsAnalog = true
		s.ClockFace = models.FaceMinimal
	})

	if err := (&ShowCmd{Output: "yaml"}).Run(ctx); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	var decoded map[string]interface{}
	if err := yaml.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	analog, ok := decoded["analog"].(map[string]interface{})
	if !ok {
		t.Fatalf("analog missing:\n%s", out.String())
	}
	markers, ok := analog["markers"].([]interface{})
	if !ok || len(markers) != 4 {
		t.Errorf("minimal face should have 4 markers, got %v", analog["markers"])
	}
}

func TestShowInvalidAt(t *testing.T) {
	ctx, _ := setupContext(t, nil)
	if err := (&ShowCmd{Output: "text", At: "teatime"}).Run(ctx); err == nil {
		t.Error("expected error for invalid --at")
	}
}

func TestParseInstant(t *testing.T) {
	now := time.Date(2026, time.July, 4, 8, 0, 0, 0, time.UTC)
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-01-05T14:05:09Z", time.Date(2026, 1, 5, 14, 5, 9, 0, time.UTC)},
		{"23:59:59", time.Date(2026, 7, 4, 23, 59, 59, 0, time.UTC)},
		{"07:15", time.Date(2026, 7, 4, 7, 15, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseInstant(tt.in, now)
		if err != nil {
			t.Fatalf("ParseInstant(%q) error = %v", tt.in, err)
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseInstant(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseInstant("25:00", now); err == nil {
		t.Error("expected error for 25:00")
	}
}
