// Package format turns an instant and the settings into the digital time line
// and the date line.
package format

import (
	"fmt"
	"time"

	"github.com/julianstephens/clockface/internal/models"
)

// FormatTime renders the digital clock line, e.g. "02:05:09 PM" or "14:05".
func FormatTime(t time.Time, s models.Settings) string {
	h, m, sec := t.Clock()

	label := ""
	if !s.Is24Hour {
		label = "AM"
		if h >= 12 {
			label = "PM"
		}
		h %= 12
		if h == 0 {
			h = 12
		}
	}

	out := fmt.Sprintf("%02d:%02d", h, m)
	if s.ShowSeconds {
		out += fmt.Sprintf(":%02d", sec)
	}
	if s.ShowAmPm && !s.Is24Hour {
		out += " " + label
	}
	return out
}

// FormatDate renders the date line in English: "Monday, Jan 5", "Monday" or
// "Jan 5". It returns "" when both showDay and showDate are off.
func FormatDate(t time.Time, s models.Settings) string {
	return english.formatDate(t, s)
}
