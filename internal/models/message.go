// internal/models/message.go
package models

// MessageStatus tracks admin handling of a contact message.
type MessageStatus string

const (
	MessagePending   MessageStatus = "PENDING"
	MessageResponded MessageStatus = "RESPONDED"
	MessageClosed    MessageStatus = "CLOSED"
)

// ContactMessage is a message sent through the contact form, optionally by a
// guest without a session.
type ContactMessage struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Message       string        `json:"message"`
	Status        MessageStatus `json:"status"`
	AdminResponse string        `json:"adminResponse,omitempty"`
	SubmittedAt   string        `json:"submittedAt,omitempty"`
	RespondedAt   string        `json:"respondedAt,omitempty"`
	UserID        *int64        `json:"userId,omitempty"` // nil for guest submissions
}

// NewContactMessage is the payload for POST /api/contact-messages.
type NewContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// MessageResponse is the payload for the admin respond endpoint.
type MessageResponse struct {
	AdminResponse string        `json:"adminResponse"`
	Status        MessageStatus `json:"status,omitempty"`
}
