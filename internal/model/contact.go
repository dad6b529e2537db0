package model

import "time"

// MessageStatus is the moderation state of a contact message.
type MessageStatus string

const (
	StatusUnread  MessageStatus = "unread"
	StatusRead    MessageStatus = "read"
	StatusReplied MessageStatus = "replied"
)

// MessageStatuses lists every allowed status in display order.
var MessageStatuses = []MessageStatus{StatusUnread, StatusRead, StatusReplied}

// Valid reports whether s is one of the allowed statuses.
func (s MessageStatus) Valid() bool {
	switch s {
	case StatusUnread, StatusRead, StatusReplied:
		return true
	}
	return false
}

// ContactMessage represents a message submitted via the contact form.
type ContactMessage struct {
	ID        string        `json:"id" bson:"id"`
	Name      string        `json:"name" bson:"name"`
	Email     string        `json:"email" bson:"email"`
	Subject   string        `json:"subject" bson:"subject"`
	Message   string        `json:"message" bson:"message"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	Status    MessageStatus `json:"status" bson:"status"`
}

// ContactSubmission is the user-supplied part of a contact message.
// Lengths are counted in runes.
type ContactSubmission struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=5,max=200"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

// ContactListOptions carries pagination parameters for listing contact messages.
type ContactListOptions struct {
	Limit int
	Skip  int
}
