// Package analog computes hand angles and face markers for the analog clock.
// Angles are in degrees, clockwise from 12 o'clock. Distances are fractions of
// the face radius so any renderer can scale them.
package analog

import (
	"math"
	"time"

	"github.com/julianstephens/clockface/internal/constants"
	"github.com/julianstephens/clockface/internal/models"
)

// Reference face is 96 units in radius.
const faceUnits = 96.0

const (
	MarkerRadius = 44 / faceUnits

	HourHandLength   = 56 / faceUnits
	MinuteHandLength = 80 / faceUnits
	SecondHandLength = 80 / faceUnits

	HourHandWidth   = 4.0
	MinuteHandWidth = 4.0
	SecondHandWidth = 2.0
)

var romanNumerals = [12]string{"XII", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI"}

// Hands holds the three rotations for an instant.
type Hands struct {
	Hour   float64 `json:"hour" yaml:"hour"`
	Minute float64 `json:"minute" yaml:"minute"`
	Second float64 `json:"second" yaml:"second"`
}

// Hand is one drawable hand.
type Hand struct {
	Angle  float64 `json:"angle" yaml:"angle"`
	Length float64 `json:"length" yaml:"length"`
	Width  float64 `json:"width" yaml:"width"`
}

// Marker is one hour marker on the face.
type Marker struct {
	Index       int     `json:"index" yaml:"index"`
	Angle       float64 `json:"angle" yaml:"angle"`
	Radius      float64 `json:"radius" yaml:"radius"`
	Length      float64 `json:"length,omitempty" yaml:"length,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty" yaml:"strokeWidth,omitempty"`
	Opacity     float64 `json:"opacity" yaml:"opacity"`
	Label       string  `json:"label,omitempty" yaml:"label,omitempty"`
	// Rotation undoes Angle so a label glyph stays upright.
	Rotation float64 `json:"rotation,omitempty" yaml:"rotation,omitempty"`
}

// Face is everything needed to draw the analog clock for one instant.
type Face struct {
	Style   models.ClockFace `json:"style" yaml:"style"`
	Hour    *Hand            `json:"hour,omitempty" yaml:"hour,omitempty"`
	Minute  Hand             `json:"minute" yaml:"minute"`
	Second  Hand             `json:"second" yaml:"second"`
	Markers []Marker         `json:"markers" yaml:"markers"`
}

// HandAngles returns the hand rotations for t's wall-clock time. The hour hand
// advances half a degree per minute; seconds do not move the minute hand.
func HandAngles(t time.Time) Hands {
	h, m, s := t.Clock()
	return Hands{
		Hour:   float64(h%12)*30 + float64(m)*0.5,
		Minute: float64(m) * 6,
		Second: float64(s) * 6,
	}
}

type markerStyle struct {
	indices     []int
	length      float64
	strokeWidth float64
	opacity     float64
	roman       bool
}

var allHours = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

var markerStyles = map[models.ClockFace]markerStyle{
	models.FaceClassic: {indices: allHours, length: 12, strokeWidth: 4, opacity: 0.7},
	models.FaceModern:  {indices: allHours, length: 16, strokeWidth: 2, opacity: 0.5},
	models.FaceMinimal: {indices: []int{0, 3, 6, 9}, length: 16, strokeWidth: 4, opacity: 0.7},
	models.FaceRoman:   {indices: allHours, opacity: 0.7, roman: true},
}

// FaceMarkers returns the hour markers drawn for a face style.
func FaceMarkers(face models.ClockFace) ([]Marker, error) {
	style, ok := markerStyles[face]
	if !ok {
		return nil, &models.InvalidEnumError{Enum: constants.SettingClockFace, Value: string(face)}
	}

	markers := make([]Marker, 0, len(style.indices))
	for _, i := range style.indices {
		angle := float64(i) * 30
		m := Marker{
			Index:   i,
			Angle:   angle,
			Radius:  MarkerRadius,
			Opacity: style.opacity,
		}
		if style.roman {
			m.Label = romanNumerals[i]
			m.Rotation = -angle
		} else {
			m.Length = style.length / faceUnits
			m.StrokeWidth = style.strokeWidth
		}
		markers = append(markers, m)
	}
	return markers, nil
}

// Compute builds the face for t. Without showHours the hour hand and the
// markers are omitted.
func Compute(t time.Time, s models.Settings) (Face, error) {
	angles := HandAngles(t)
	face := Face{
		Style:   s.ClockFace,
		Minute:  Hand{Angle: angles.Minute, Length: MinuteHandLength, Width: MinuteHandWidth},
		Second:  Hand{Angle: angles.Second, Length: SecondHandLength, Width: SecondHandWidth},
		Markers: []Marker{},
	}

	markers, err := FaceMarkers(s.ClockFace)
	if err != nil {
		return Face{}, err
	}
	if s.ShowHours {
		face.Hour = &Hand{Angle: angles.Hour, Length: HourHandLength, Width: HourHandWidth}
		face.Markers = markers
	}
	return face, nil
}

// Point converts a polar position on the face into x/y offsets from the
// centre, with y growing downwards as on a screen.
func Point(angle, radius float64) (x, y float64) {
	rad := angle * math.Pi / 180
	return radius * math.Sin(rad), -radius * math.Cos(rad)
}
