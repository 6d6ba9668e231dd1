package constants

const (
	// Settings field names, as they appear in the persisted JSON record
	SettingIsAnalog    = "isAnalog"
	SettingShowDate    = "showDate"
	SettingShowDay     = "showDay"
	SettingIs24Hour    = "is24Hour"
	SettingShowAmPm    = "showAmPm"
	SettingShowSeconds = "showSeconds"
	SettingShowHours   = "showHours"
	SettingIsDarkMode  = "isDarkMode"
	SettingClockFace   = "clockFace"

	// Clock faces
	FaceClassic = "classic"
	FaceModern  = "modern"
	FaceMinimal = "minimal"
	FaceRoman   = "roman"

	// Default Settings Values
	DefaultIsAnalog    = false
	DefaultShowDate    = true
	DefaultShowDay     = true
	DefaultIs24Hour    = false
	DefaultShowAmPm    = false
	DefaultShowSeconds = true
	DefaultShowHours   = true
	DefaultIsDarkMode  = false
	DefaultClockFace   = FaceClassic
)
