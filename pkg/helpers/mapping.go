package helpers

import (
	"fmt"
	"strings"

	"github.com/oksasatya/medlink-api/pkg/mailer"
	mailtpl "github.com/oksasatya/medlink-api/pkg/mailer/templates"
)

// FallbackSubject is used when a job carries neither a rendered subject nor a
// known template.
func FallbackSubject(template string) string {
	switch strings.ToLower(template) {
	case mailtpl.RegistrationReceived:
		return "We received your registration"
	case mailtpl.ProfileUpdated:
		return "Your profile was updated"
	case mailtpl.PasswordChanged:
		return "Your password was changed"
	default:
		return "Notification"
	}
}

func EnsureRecipientAndEmail(job *mailer.EmailJob) {
	if job.Data == nil {
		job.Data = map[string]any{}
	}
	if v, ok := job.Data["Email"]; !ok || fmt.Sprintf("%v", v) == "" {
		job.Data["Email"] = job.To
	}
	if v, ok := job.Data["RecipientEmail"]; !ok || fmt.Sprintf("%v", v) == "" {
		job.Data["RecipientEmail"] = job.To
	}
}

// NormalizeTemplate lower-cases the template name and fills Data["Type"].
func NormalizeTemplate(job *mailer.EmailJob) {
	job.Template = strings.ToLower(strings.TrimSpace(job.Template))
	if job.Template == "" {
		return
	}
	if job.Data == nil {
		job.Data = map[string]any{}
	}
	if v, ok := job.Data["Type"]; !ok || fmt.Sprintf("%v", v) == "" {
		job.Data["Type"] = job.Template
	}
}

// RenderJob resolves the subject and bodies the worker should send.
func RenderJob(job *mailer.EmailJob) (subject, text, html string, err error) {
	EnsureRecipientAndEmail(job)
	NormalizeTemplate(job)

	subject, text, html = job.Subject, job.Text, job.HTML
	if mailtpl.Known(job.Template) {
		subject, text, html, err = mailtpl.Render(job.Template, job.Data)
		if err != nil {
			return "", "", "", err
		}
	}
	if strings.TrimSpace(subject) == "" {
		subject = FallbackSubject(job.Template)
	}
	return subject, text, html, nil
}
