package domain

import "time"

// NotificationKind is the type of message placed in a session inbox
type NotificationKind string

const (
	NotificationBookingConfirmed NotificationKind = "booking_confirmed"
	NotificationBookingFailed    NotificationKind = "booking_failed"
)

// Notification is a message about a submission outcome delivered to the session inbox
type Notification struct {
	ID             string
	Kind           NotificationKind
	DraftID        string
	ConfirmationID string
	Message        string
	CreatedAt      time.Time
}
