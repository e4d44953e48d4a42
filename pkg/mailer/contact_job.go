package mailer

import "time"

// ContactJob is the JSON payload put on the RabbitMQ queue when a
// visitor submits the contact form. The email worker renders and
// delivers it via Mailgun.
type ContactJob struct {
	To          string    `json:"to"`
	FromName    string    `json:"from_name"`
	FromEmail   string    `json:"from_email"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}
