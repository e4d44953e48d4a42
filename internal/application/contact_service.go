package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-clean-architecture/pkg/mailer"
)

// JobPublisher queues a message for asynchronous processing. Satisfied
// by *helpers.RabbitPublisher.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// ContactService queues contact-page submissions for the email worker.
// Delivery is asynchronous; the visitor gets an acknowledgement as soon
// as the message is on the queue.
type ContactService struct {
	Publisher JobPublisher
	Recipient string
	Logger    *logrus.Logger
}

func NewContactService(publisher JobPublisher, recipient string, logger *logrus.Logger) *ContactService {
	return &ContactService{Publisher: publisher, Recipient: recipient, Logger: logger}
}

// Submit publishes the validated contact form as a ContactJob.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) error {
	job := mailer.ContactJob{
		To:          s.Recipient,
		FromName:    name,
		FromEmail:   email,
		Message:     message,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.Publisher.PublishJSON(ctx, job); err != nil {
		s.Logger.WithError(err).Warn("contact message publish failed")
		return err
	}
	s.Logger.WithField("from", email).Info("contact message queued")
	return nil
}
