package service

import "context"

// MailMessage is a single outbound email.
type MailMessage struct {
	To      string `json:"to"`      // Recipient address.
	ToName  string `json:"to_name"` // Recipient display name, used in the header.
	Subject string `json:"subject"` // Subject line.
	HTML    string `json:"html"`    // HTML body.
	Text    string `json:"text"`    // Plain-text alternative body.
}

// MailSender defines the interface for the email transport.
type MailSender interface {
	// Verify performs a connectivity handshake with the transport without
	// sending anything. A failure means delivery should be reported as
	// transient, not attempted.
	Verify(ctx context.Context) error

	// Send delivers one message.
	Send(ctx context.Context, message *MailMessage) error
}
