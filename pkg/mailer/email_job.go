package mailer

import (
	"errors"
	"strings"
)

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either Template (with Data) or Subject plus Text/HTML must be set.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "registration_received", "profile_updated", "password_changed"
	Data     map[string]any `json:"data,omitempty"`
}

var ErrInvalidJob = errors.New("invalid email job")

// Validate rejects jobs the worker could never deliver.
func (j EmailJob) Validate() error {
	if strings.TrimSpace(j.To) == "" {
		return errors.Join(ErrInvalidJob, errors.New("missing recipient"))
	}
	if strings.TrimSpace(j.Template) == "" && strings.TrimSpace(j.Subject) == "" {
		return errors.Join(ErrInvalidJob, errors.New("missing template or subject"))
	}
	return nil
}
