// Package snapshot derives everything a renderer shows for one instant.
package snapshot

import (
	"encoding/json"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/clockface/internal/analog"
	"github.com/julianstephens/clockface/internal/format"
	"github.com/julianstephens/clockface/internal/models"
)

// Snapshot is rebuilt on every tick and discarded after rendering.
type Snapshot struct {
	Time     time.Time       `json:"time" yaml:"time"`
	Settings models.Settings `json:"settings" yaml:"settings"`
	TimeText string          `json:"timeText,omitempty" yaml:"timeText,omitempty"`
	DateText string          `json:"dateText,omitempty" yaml:"dateText,omitempty"`
	Analog   *analog.Face    `json:"analog,omitempty" yaml:"analog,omitempty"`
}

// Take builds the snapshot for t. A nil formatter formats dates in English.
// Settings with an unknown face yield an InvalidEnumError.
func Take(t time.Time, s models.Settings, f *format.Formatter) (Snapshot, error) {
	if f == nil {
		f = format.NewFormatter("")
	}
	snap := Snapshot{
		Time:     t,
		Settings: s,
		DateText: f.FormatDate(t, s),
	}

	if s.IsAnalog {
		face, err := analog.Compute(t, s)
		if err != nil {
			return Snapshot{}, err
		}
		snap.Analog = &face
	} else {
		snap.TimeText = f.FormatTime(t, s)
	}
	return snap, nil
}

// HasDate reports whether the date line should be drawn.
func (s Snapshot) HasDate() bool {
	return s.DateText != ""
}

func (s Snapshot) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

func (s Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
