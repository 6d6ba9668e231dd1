package constants

const (
	// TimeFormat is the format accepted for clock-only instants (HH:MM:SS)
	TimeFormat = "15:04:05"

	// DefaultLocale is used when no locale is configured or the configured one is unsupported
	DefaultLocale = "en"
)
