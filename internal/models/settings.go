package models

import (
	"fmt"
	"strings"

	"github.com/julianstephens/clockface/internal/constants"
)

// ClockFace selects the marker layout of the analog clock
type ClockFace string

const (
	FaceClassic ClockFace = constants.FaceClassic
	FaceModern  ClockFace = constants.FaceModern
	FaceMinimal ClockFace = constants.FaceMinimal
	FaceRoman   ClockFace = constants.FaceRoman
)

// ClockFaces lists every face in menu order.
var ClockFaces = []ClockFace{FaceClassic, FaceModern, FaceMinimal, FaceRoman}

// ParseClockFace converts a face name into a ClockFace.
func ParseClockFace(s string) (ClockFace, error) {
	face := ClockFace(strings.ToLower(strings.TrimSpace(s)))
	if !face.Valid() {
		return "", &InvalidEnumError{Enum: constants.SettingClockFace, Value: s}
	}
	return face, nil
}

// Valid reports whether f is one of the four known faces.
func (f ClockFace) Valid() bool {
	switch f {
	case FaceClassic, FaceModern, FaceMinimal, FaceRoman:
		return true
	}
	return false
}

// Title returns the menu label for the face.
func (f ClockFace) Title() string {
	if f == "" {
		return ""
	}
	return strings.ToUpper(string(f[:1])) + string(f[1:])
}

// Settings represents the clock display options
type Settings struct {
	IsAnalog    bool      `json:"isAnalog" yaml:"isAnalog"`       // analog instead of digital rendering
	ShowDate    bool      `json:"showDate" yaml:"showDate"`       // month and day in the date line
	ShowDay     bool      `json:"showDay" yaml:"showDay"`         // weekday name in the date line
	Is24Hour    bool      `json:"is24Hour" yaml:"is24Hour"`       // 24-hour instead of 12-hour time
	ShowAmPm    bool      `json:"showAmPm" yaml:"showAmPm"`       // AM/PM suffix, only visible in 12-hour mode
	ShowSeconds bool      `json:"showSeconds" yaml:"showSeconds"` // seconds field in digital mode
	ShowHours   bool      `json:"showHours" yaml:"showHours"`     // hour hand and markers in analog mode
	IsDarkMode  bool      `json:"isDarkMode" yaml:"isDarkMode"`   // dark color theme
	ClockFace   ClockFace `json:"clockFace" yaml:"clockFace"`     // analog face style
}

// DefaultSettings returns the record used on first start and whenever the
// persisted one cannot be read.
func DefaultSettings() Settings {
	return Settings{
		IsAnalog:    constants.DefaultIsAnalog,
		ShowDate:    constants.DefaultShowDate,
		ShowDay:     constants.DefaultShowDay,
		Is24Hour:    constants.DefaultIs24Hour,
		ShowAmPm:    constants.DefaultShowAmPm,
		ShowSeconds: constants.DefaultShowSeconds,
		ShowHours:   constants.DefaultShowHours,
		IsDarkMode:  constants.DefaultIsDarkMode,
		ClockFace:   constants.DefaultClockFace,
	}
}

// Validate checks the only non-boolean field.
func (s Settings) Validate() error {
	if !s.ClockFace.Valid() {
		return &InvalidEnumError{Enum: constants.SettingClockFace, Value: string(s.ClockFace)}
	}
	return nil
}

func (s Settings) String() string {
	return fmt.Sprintf("analog=%t date=%t day=%t 24h=%t ampm=%t seconds=%t hours=%t dark=%t face=%s",
		s.IsAnalog, s.ShowDate, s.ShowDay, s.Is24Hour, s.ShowAmPm, s.ShowSeconds, s.ShowHours, s.IsDarkMode, s.ClockFace)
}
