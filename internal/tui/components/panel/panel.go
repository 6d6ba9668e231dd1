// Package panel renders the clock options list.
package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/clockface/internal/models"
)

// Item is one row of the options list. Items without a Field open the face picker.
type Item struct {
	Label string
	Field models.Field
}

// IsFace reports whether the item is the clock face picker.
func (i Item) IsFace() bool {
	return i.Field == ""
}

const faceLabel = "Clock face"

func fieldItem(f models.Field) Item {
	return Item{Label: f.Label(), Field: f}
}

// Items lists the options that apply to s. Analog-only options are hidden in
// digital mode and vice versa; AM/PM is hidden in 24-hour mode.
func Items(s models.Settings) []Item {
	items := []Item{fieldItem(models.FieldIsAnalog)}

	if s.IsAnalog {
		items = append(items,
			fieldItem(models.FieldShowHours),
			Item{Label: faceLabel},
		)
	} else {
		items = append(items, fieldItem(models.FieldIs24Hour))
		if !s.Is24Hour {
			items = append(items, fieldItem(models.FieldShowAmPm))
		}
		items = append(items, fieldItem(models.FieldShowSeconds))
	}

	return append(items,
		fieldItem(models.FieldShowDate),
		fieldItem(models.FieldShowDay),
		fieldItem(models.FieldIsDarkMode),
	)
}

// IndexOf returns the position of the item with the given label, or -1.
func IndexOf(items []Item, label string) int {
	for i, item := range items {
		if item.Label == label {
			return i
		}
	}
	return -1
}

type Styles struct {
	Title    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Value    lipgloss.Style
	Box      lipgloss.Style
}

func value(item Item, s models.Settings) string {
	if item.IsFace() {
		return s.ClockFace.Title()
	}
	on, _ := s.Bool(item.Field)
	if on {
		return "[x]"
	}
	return "[ ]"
}

// Render draws the list with the cursor row highlighted.
func Render(items []Item, cursor int, s models.Settings, styles Styles) string {
	rows := []string{styles.Title.Render("Clock options")}
	for i, item := range items {
		label := fmt.Sprintf("%-14s", item.Label)
		prefix := "  "
		style := styles.Item
		if i == cursor {
			prefix = "> "
			style = styles.Selected
		}
		rows = append(rows, style.Render(prefix+label)+" "+styles.Value.Render(value(item, s)))
	}
	return styles.Box.Render(strings.Join(rows, "\n"))
}
