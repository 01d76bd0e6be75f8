package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/medlink-api/internal/domain/repository"
	"github.com/oksasatya/medlink-api/pkg/helpers"
)

const sideEffectTimeout = 5 * time.Second

// effects holds the optional collaborators that run after a successful write.
// Their failures are logged and never change the response.
type effects struct {
	cache  repository.ProfileCache
	index  repository.ProfileIndex
	notify *Notifier
	log    logrus.FieldLogger
}

// Option configures the optional collaborators of a service.
type Option func(*effects)

func WithProfileCache(c repository.ProfileCache) Option {
	return func(e *effects) { e.cache = c }
}

func WithProfileIndex(i repository.ProfileIndex) Option {
	return func(e *effects) { e.index = i }
}

func WithNotifier(n *Notifier) Option {
	return func(e *effects) { e.notify = n }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(e *effects) { e.log = l }
}

func newEffects(opts []Option) effects {
	e := effects{log: helpers.NewDiscardLogger()}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// bestEffort runs fn detached from the request's cancellation.
func (e effects) bestEffort(ctx context.Context, what, userID string, fn func(context.Context) error) {
	c, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()
	if err := fn(c); err != nil {
		incr(metricSideEffectErrors)
		helpers.LogWarn(e.log, what+" failed", err, logrus.Fields{"user_id": userID})
	}
}
