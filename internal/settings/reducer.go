// Package settings holds the clock settings state: the pure reducer that
// mutates a record and the store that owns the current record and persists it.
package settings

import (
	"github.com/julianstephens/clockface/internal/constants"
	"github.com/julianstephens/clockface/internal/models"
)

// Toggle returns a copy of s with the named boolean field negated.
// No other field changes, so dormant options such as showAmPm in 24-hour
// mode keep their value.
func Toggle(s models.Settings, field models.Field) (models.Settings, error) {
	current, err := s.Bool(field)
	if err != nil {
		return s, err
	}
	return s.WithBool(field, !current)
}

// ToggleByName parses the field name and toggles it.
func ToggleByName(s models.Settings, name string) (models.Settings, error) {
	field, err := models.ParseField(name)
	if err != nil {
		return s, err
	}
	return Toggle(s, field)
}

// SetClockFace assigns the analog face.
func SetClockFace(s models.Settings, face models.ClockFace) (models.Settings, error) {
	if !face.Valid() {
		return s, &models.InvalidEnumError{Enum: constants.SettingClockFace, Value: string(face)}
	}
	s.ClockFace = face
	return s, nil
}
