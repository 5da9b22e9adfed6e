package domain

import "time"

// Message is a direct message between two users.
type Message struct {
	ID         int       `json:"id"`
	SenderID   int       `json:"senderId"`
	ReceiverID int       `json:"receiverId"`
	Content    string    `json:"content"`
	Read       bool      `json:"read"`
	SentAt     time.Time `json:"sentAt"`
}
