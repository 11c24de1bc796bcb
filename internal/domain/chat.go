package domain

import "time"

// ChatRole is the author of a chat message
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatMessage is a single turn of the assistant conversation
type ChatMessage struct {
	Role      ChatRole
	Text      string
	CreatedAt time.Time
}
