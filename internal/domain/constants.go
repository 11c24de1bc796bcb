package domain

// Booking window defaults
const (
	DefaultWindowDays = 14
	MinWindowDays     = 1
	MaxWindowDays     = 60
)

// DefaultTimeSlotLabels fixed appointment start times of a business day
var DefaultTimeSlotLabels = []string{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"01:00 PM",
	"02:00 PM",
	"03:00 PM",
}

// Contact validation constants
const (
	DefaultMinPhoneDigits  = 10
	MaxContactFieldLength  = 200
	MaxChatMessageLength   = 2000
	MaxInquiryLength       = 2000
	DefaultChatHistorySize = 20
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
