package templates

import (
	"time"
)

// Branding carries the company details every email shows.
type Branding struct {
	CompanyName string
	AppName     string
	SupportURL  string
	LoginURL    string
}

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		d.Time = t.UTC().Format("02 January 2006, 15:04")
	}
}

func WithChanges(fields []string) Option {
	return func(d *EmailData) { d.Changes = fields }
}

// NewBaseEmailData fills the shared fields from b, then applies opts.
func NewBaseEmailData(b Branding, typ, name, email string, opts ...Option) EmailData {
	d := EmailData{
		Name:           name,
		Email:          email,
		RecipientEmail: email,
		Type:           typ,

		CompanyName: b.CompanyName,
		AppName:     b.AppName,
		SupportURL:  b.SupportURL,
		LoginURL:    b.LoginURL,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewRegistrationReceivedData(b Branding, name, email string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(b, RegistrationReceived, name, email, opts...))
}

func NewProfileUpdatedData(b Branding, name, email string, changes []string, opts ...Option) map[string]any {
	opts = append([]Option{WithChanges(changes)}, opts...)
	return ToMap(NewBaseEmailData(b, ProfileUpdated, name, email, opts...))
}

func NewPasswordChangedData(b Branding, name, email string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(b, PasswordChanged, name, email, opts...))
}
