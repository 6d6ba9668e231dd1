package format

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/julianstephens/clockface/internal/models"
)

type dateTable struct {
	tag      language.Tag
	weekdays [7]string
	months   [12]string
	// dayMonth formats the short date from month name and day of month
	dayMonth func(month string, day int) string
	// join combines weekday and short date
	join func(weekday, date string) string
}

func (d dateTable) formatDate(t time.Time, s models.Settings) string {
	weekday := d.weekdays[t.Weekday()]
	date := d.dayMonth(d.months[t.Month()-1], t.Day())

	switch {
	case s.ShowDay && s.ShowDate:
		return d.join(weekday, date)
	case s.ShowDay:
		return weekday
	case s.ShowDate:
		return date
	}
	return ""
}

var english = dateTable{
	tag:      language.English,
	weekdays: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	months:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	dayMonth: func(month string, day int) string { return fmt.Sprintf("%s %d", month, day) },
	join:     func(weekday, date string) string { return weekday + ", " + date },
}

var german = dateTable{
	tag:      language.German,
	weekdays: [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	months:   [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
	dayMonth: func(month string, day int) string { return fmt.Sprintf("%d. %s", day, month) },
	join:     func(weekday, date string) string { return weekday + ", " + date },
}

var french = dateTable{
	tag:      language.French,
	weekdays: [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	months:   [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	dayMonth: func(month string, day int) string { return fmt.Sprintf("%d %s", day, month) },
	join:     func(weekday, date string) string { return weekday + " " + date },
}

var spanish = dateTable{
	tag:      language.Spanish,
	weekdays: [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
	months:   [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
	dayMonth: func(month string, day int) string { return fmt.Sprintf("%d %s", day, month) },
	join:     func(weekday, date string) string { return weekday + ", " + date },
}

// English must stay first: the matcher falls back to the first entry.
var tables = []dateTable{english, german, french, spanish}

var matcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, len(tables))
	for i, table := range tables {
		tags[i] = table.tag
	}
	return tags
}

// SupportedLocales lists the base languages with their own date tables.
func SupportedLocales() []string {
	out := make([]string, len(tables))
	for i, table := range tables {
		out[i] = table.tag.String()
	}
	return out
}

// Formatter formats dates for one resolved locale. Time formatting is
// locale-free and identical across formatters.
type Formatter struct {
	table dateTable
}

// NewFormatter resolves locale (a BCP 47 tag such as "de-AT" or "fr_CA")
// against the supported tables. Unknown or unparsable locales use English.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	if err != nil {
		return &Formatter{table: english}
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return &Formatter{table: english}
	}
	return &Formatter{table: tables[idx]}
}

// Locale returns the tag of the table in use.
func (f *Formatter) Locale() string {
	return f.table.tag.String()
}

// FormatTime is FormatTime; provided so callers can hold a single formatter.
func (f *Formatter) FormatTime(t time.Time, s models.Settings) string {
	return FormatTime(t, s)
}

// FormatDate renders the date line in the formatter's locale.
func (f *Formatter) FormatDate(t time.Time, s models.Settings) string {
	return f.table.formatDate(t, s)
}
