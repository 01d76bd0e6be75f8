package application

import (
	"context"
	"time"
)

// PasswordHasher turns plaintext passwords into digests and checks them.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// TokenIssuer signs bearer tokens for a user id.
type TokenIssuer interface {
	Issue(userID string) (string, time.Time, error)
}

// JobPublisher puts a JSON job on a queue.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}
