package models

import "time"

// MessageStatus is the triage state of a contact message.
type MessageStatus string

const (
	StatusUnread    MessageStatus = "unread"
	StatusRead      MessageStatus = "read"
	StatusResponded MessageStatus = "responded"
)

// statusRank orders statuses; a message only ever moves to an equal or higher rank.
var statusRank = map[MessageStatus]int{
	StatusUnread:    0,
	StatusRead:      1,
	StatusResponded: 2,
}

// Valid reports whether s is a known status.
func (s MessageStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransition reports whether a message in state from may be moved to to.
func CanTransition(from, to MessageStatus) bool {
	f, ok := statusRank[from]
	if !ok {
		return false
	}
	t, ok := statusRank[to]
	if !ok {
		return false
	}
	return t >= f
}

// ContactMessage is a visitor's contact-form submission.
type ContactMessage struct {
	ID          string        `json:"_id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone,omitempty"`
	Message     string        `json:"message"`
	Status      MessageStatus `json:"status"`
	Response    string        `json:"response,omitempty"`
	RespondedAt *time.Time    `json:"respondedAt,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// ContactInput is what an anonymous visitor submits.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// InboxStats summarizes messages by status.
type InboxStats struct {
	Total     int `json:"total"`
	Unread    int `json:"unread"`
	Read      int `json:"read"`
	Responded int `json:"responded"`
}
