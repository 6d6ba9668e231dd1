package models

import "github.com/julianstephens/clockface/internal/constants"

// Field names one of the boolean settings
type Field string

const (
	FieldIsAnalog    Field = constants.SettingIsAnalog
	FieldShowDate    Field = constants.SettingShowDate
	FieldShowDay     Field = constants.SettingShowDay
	FieldIs24Hour    Field = constants.SettingIs24Hour
	FieldShowAmPm    Field = constants.SettingShowAmPm
	FieldShowSeconds Field = constants.SettingShowSeconds
	FieldShowHours   Field = constants.SettingShowHours
	FieldIsDarkMode  Field = constants.SettingIsDarkMode
)

// Fields lists the boolean fields in display order.
var Fields = []Field{
	FieldIsAnalog,
	FieldShowHours,
	FieldIs24Hour,
	FieldShowAmPm,
	FieldShowSeconds,
	FieldShowDate,
	FieldShowDay,
	FieldIsDarkMode,
}

var fieldLabels = map[Field]string{
	FieldIsAnalog:    "Analog clock",
	FieldShowHours:   "Show hours",
	FieldIs24Hour:    "24 hours",
	FieldShowAmPm:    "AM/PM",
	FieldShowSeconds: "Seconds",
	FieldShowDate:    "Show date",
	FieldShowDay:     "Show day",
	FieldIsDarkMode:  "Dark mode",
}

// ParseField validates a field name. clockFace is not a boolean field and is rejected.
func ParseField(name string) (Field, error) {
	f := Field(name)
	if _, ok := fieldLabels[f]; !ok {
		return "", &InvalidFieldError{Field: name}
	}
	return f, nil
}

// Label returns the human readable name of the field.
func (f Field) Label() string {
	return fieldLabels[f]
}

// Bool returns the value of a boolean field.
func (s Settings) Bool(f Field) (bool, error) {
	switch f {
	case FieldIsAnalog:
		return s.IsAnalog, nil
	case FieldShowDate:
		return s.ShowDate, nil
	case FieldShowDay:
		return s.ShowDay, nil
	case FieldIs24Hour:
		return s.Is24Hour, nil
	case FieldShowAmPm:
		return s.ShowAmPm, nil
	case FieldShowSeconds:
		return s.ShowSeconds, nil
	case FieldShowHours:
		return s.ShowHours, nil
	case FieldIsDarkMode:
		return s.IsDarkMode, nil
	}
	return false, &InvalidFieldError{Field: string(f)}
}

// WithBool returns a copy of s with a single boolean field replaced.
func (s Settings) WithBool(f Field, v bool) (Settings, error) {
	switch f {
	case FieldIsAnalog:
		s.IsAnalog = v
	case FieldShowDate:
		s.ShowDate = v
	case FieldShowDay:
		s.ShowDay = v
	case FieldIs24Hour:
		s.Is24Hour = v
	case FieldShowAmPm:
		s.ShowAmPm = v
	case FieldShowSeconds:
		s.ShowSeconds = v
	case FieldShowHours:
		s.ShowHours = v
	case FieldIsDarkMode:
		s.IsDarkMode = v
	default:
		return s, &InvalidFieldError{Field: string(f)}
	}
	return s, nil
}
