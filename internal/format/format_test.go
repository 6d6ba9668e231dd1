package format

import (
	"testing"
	"time"

	"github.com/julianstephens/clockface/internal/models"
)

func at(h, m, s int) time.Time {
	return time.Date(2026, time.January, 5, h, m, s, 0, time.Local)
}

func TestFormatTime(t *testing.T) {
	twelve := models.DefaultSettings()
	twelveAmPm := twelve
	twelveAmPm.ShowAmPm = true
	twentyFour := twelve
	twentyFour.Is24Hour = true
	noSeconds := twentyFour
	noSeconds.ShowSeconds = false
	dormantAmPm := twentyFour
	dormantAmPm.ShowAmPm = true
	twelveNoSec := twelveAmPm
	twelveNoSec.ShowSeconds = false

	tests := []struct {
		name     string
		time     time.Time
		settings models.Settings
		want     string
	}{
		{"afternoon 12h with label", at(14, 5, 9), twelveAmPm, "02:05:09 PM"},
		{"afternoon 12h without label", at(14, 5, 9), twelve, "02:05:09"},
		{"midnight 12h", at(0, 0, 0), twelveAmPm, "12:00:00 AM"},
		{"noon 12h", at(12, 0, 0), twelveAmPm, "12:00:00 PM"},
		{"late morning 12h", at(11, 59, 59), twelveAmPm, "11:59:59 AM"},
		{"midnight 24h no seconds", at(0, 0, 30), noSeconds, "00:00"},
		{"afternoon 24h", at(14, 5, 9), twentyFour, "14:05:09"},
		{"label dormant in 24h", at(23, 1, 2), dormantAmPm, "23:01:02"},
		{"12h no seconds", at(21, 30, 0), twelveNoSec, "09:30 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTime(tt.time, tt.settings); got != tt.want {
				t.Errorf("FormatTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatTimeDropsSubsecond(t *testing.T) {
	s := models.DefaultSettings()
	s.Is24Hour = true
	tm := time.Date(2026, 1, 5, 8, 7, 6, 999_000_000, time.UTC)
	if got := FormatTime(tm, s); got != "08:07:06" {
		t.Errorf("FormatTime() = %q, want 08:07:06", got)
	}
}

func TestFormatDate(t *testing.T) {
	monday := at(9, 0, 0) // 2026-01-05 is a Monday

	both := models.DefaultSettings()
	dayOnly := both
	dayOnly.ShowDate = false
	dateOnly := both
	dateOnly.ShowDay = false
	neither := dateOnly
	neither.ShowDate = false

	tests := []struct {
		name     string
		settings models.Settings
		want     string
	}{
		{"day and date", both, "Monday, Jan 5"},
		{"day only", dayOnly, "Monday"},
		{"date only", dateOnly, "Jan 5"},
		{"neither", neither, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(monday, tt.settings); got != tt.want {
				t.Errorf("FormatDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"en", "en"},
		{"en-US", "en"},
		{"de", "de"},
		{"de_AT", "de"},
		{"fr-CA", "fr"},
		{"es-MX", "es"},
		{"", "en"},
		{"ja", "en"},
		{"!!not a tag", "en"},
	}
	for _, tt := range tests {
		if got := NewFormatter(tt.locale).Locale(); got != tt.want {
			t.Errorf("NewFormatter(%q).Locale() = %q, want %q", tt.locale, got, tt.want)
		}
	}
}

func TestFormatterFormatDate(t *testing.T) {
	monday := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	both := models.DefaultSettings()
	dateOnly := both
	dateOnly.ShowDay = false

	tests := []struct {
		locale   string
		settings models.Settings
		want     string
	}{
		{"en", both, "Monday, Mar 2"},
		{"de", both, "Montag, 2. März"},
		{"de", dateOnly, "2. März"},
		{"fr", both, "lundi 2 mars"},
		{"es", both, "lunes, 2 mar"},
		{"es", dateOnly, "2 mar"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			if got := NewFormatter(tt.locale).FormatDate(monday, tt.settings); got != tt.want {
				t.Errorf("FormatDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatterFormatTimeIsLocaleFree(t *testing.T) {
	s := models.DefaultSettings()
	s.ShowAmPm = true
	want := FormatTime(at(14, 5, 9), s)
	for _, locale := range SupportedLocales() {
		if got := NewFormatter(locale).FormatTime(at(14, 5, 9), s); got != want {
			t.Errorf("%s FormatTime() = %q, want %q", locale, got, want)
		}
	}
}
