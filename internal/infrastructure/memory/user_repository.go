// Package memory provides an in-process UserRepository. It backs tests and
// local runs without Postgres, and enforces the same unique-email rule.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/medlink-api/internal/domain/entity"
	"github.com/oksasatya/medlink-api/internal/domain/repository"
)

type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*entity.User
	byEmail map[string]string
	now     func() time.Time
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]string),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(u.Email)
	if _, taken := r.byEmail[key]; taken {
		return repository.ErrDuplicateEmail
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := r.now()
	u.CreatedAt, u.UpdatedAt = now, now

	r.byID[u.ID] = clone(u)
	r.byEmail[key] = u.ID
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return clone(u), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return clone(r.byID[id]), nil
}

func (r *UserRepository) Update(ctx context.Context, id string, patch repository.UserPatch) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	next := clone(cur)
	patch.Apply(next)
	next.UpdatedAt = r.now()
	r.byID[id] = next
	return clone(next), nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id string, hash string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	cur.PasswordHash = hash
	cur.UpdatedAt = r.now()
	return nil
}

// Len returns the number of stored users.
func (r *UserRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

func clone(u *entity.User) *entity.User {
	cp := *u
	cp.Specialization = cloneStrings(u.Specialization)
	cp.Languages = cloneStrings(u.Languages)
	cp.Documents = cloneStrings(u.Documents)
	if u.Availability != nil {
		cp.Availability = append([]entity.Availability(nil), u.Availability...)
	}
	return &cp
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
