package application

import (
	"context"
	"time"

	"github.com/oksasatya/medlink-api/internal/domain/entity"
	"github.com/oksasatya/medlink-api/pkg/mailer"
	mailtpl "github.com/oksasatya/medlink-api/pkg/mailer/templates"
)

// Notifier enqueues notification emails for the email worker.
// A nil Notifier sends nothing.
type Notifier struct {
	pub   JobPublisher
	brand mailtpl.Branding
	now   func() time.Time
}

func NewNotifier(pub JobPublisher, brand mailtpl.Branding) *Notifier {
	if pub == nil {
		return nil
	}
	return &Notifier{pub: pub, brand: brand, now: time.Now}
}

func (n *Notifier) RegistrationReceived(ctx context.Context, u *entity.User) error {
	if n == nil {
		return nil
	}
	return n.pub.PublishJSON(ctx, mailer.EmailJob{
		To:       u.Email,
		Template: mailtpl.RegistrationReceived,
		Data:     mailtpl.NewRegistrationReceivedData(n.brand, u.FullName(), u.Email, mailtpl.WithTime(n.now())),
	})
}

func (n *Notifier) ProfileUpdated(ctx context.Context, u *entity.User, fields []string) error {
	if n == nil {
		return nil
	}
	return n.pub.PublishJSON(ctx, mailer.EmailJob{
		To:       u.Email,
		Template: mailtpl.ProfileUpdated,
		Data:     mailtpl.NewProfileUpdatedData(n.brand, u.FullName(), u.Email, fields, mailtpl.WithTime(n.now())),
	})
}

func (n *Notifier) PasswordChanged(ctx context.Context, u *entity.User) error {
	if n == nil {
		return nil
	}
	return n.pub.PublishJSON(ctx, mailer.EmailJob{
		To:       u.Email,
		Template: mailtpl.PasswordChanged,
		Data:     mailtpl.NewPasswordChangedData(n.brand, u.FullName(), u.Email, mailtpl.WithTime(n.now())),
	})
}
