package application

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/medlink-api/internal/domain/entity"
	"github.com/oksasatya/medlink-api/internal/domain/repository"
	"github.com/oksasatya/medlink-api/pkg/apperror"
	"github.com/oksasatya/medlink-api/pkg/helpers"
	"github.com/oksasatya/medlink-api/pkg/validation"
)

// ProfileService serves the authenticated user's own profile.
type ProfileService struct {
	repo   repository.UserRepository
	hasher PasswordHasher
	effects
}

func NewProfileService(repo repository.UserRepository, hasher PasswordHasher, opts ...Option) *ProfileService {
	return &ProfileService{repo: repo, hasher: hasher, effects: newEffects(opts)}
}

// GetDashboard returns the profile of the authenticated user, read through the
// cache when one is configured.
func (s *ProfileService) GetDashboard(ctx context.Context, authUserID string) (entity.Profile, error) {
	if s.cache != nil {
		p, ok, err := s.cache.Get(ctx, authUserID)
		if err != nil {
			helpers.LogWarn(s.log, "read profile cache failed", err, logrus.Fields{"user_id": authUserID})
		}
		if ok {
			incr(metricDashboardCacheHit)
			return *p, nil
		}
	}

	u, err := s.findUser(ctx, authUserID)
	if err != nil {
		return entity.Profile{}, err
	}
	p := u.ToProfile()
	s.refreshCache(ctx, p)
	return p, nil
}

// EditUser applies an allow-listed partial update to the caller's own record.
func (s *ProfileService) EditUser(ctx context.Context, authUserID, targetUserID string, in EditInput) (entity.Profile, error) {
	if targetUserID != authUserID {
		return entity.Profile{}, apperror.Authorization("you can only edit your own profile")
	}

	in.normalize()
	patch := in.patch()
	if patch.IsEmpty() {
		return entity.Profile{}, apperror.Validation("no valid fields to update", nil)
	}
	if err := validation.Struct(in); err != nil {
		return entity.Profile{}, apperror.Validation("validation failed", validation.ToDetails(err))
	}
	if patch.Availability != nil {
		if err := validateSlots(*patch.Availability); err != nil {
			return entity.Profile{}, err
		}
	}

	u, err := s.repo.Update(ctx, authUserID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return entity.Profile{}, apperror.NotFound("user not found")
		}
		return entity.Profile{}, apperror.Internal(err, "update user")
	}
	incr(metricProfileEdits)

	p := u.ToProfile()
	s.refreshCache(ctx, p)
	if s.index != nil {
		s.bestEffort(ctx, "index profile", u.ID, func(c context.Context) error { return s.index.Index(c, u) })
	}
	if s.notify != nil {
		fields := patch.Fields()
		s.bestEffort(ctx, "enqueue profile updated email", u.ID, func(c context.Context) error {
			return s.notify.ProfileUpdated(c, u, fields)
		})
	}
	return p, nil
}

// ChangePassword replaces the caller's password after checking the current one.
func (s *ProfileService) ChangePassword(ctx context.Context, authUserID string, in ChangePasswordInput) error {
	if err := validation.Struct(in); err != nil {
		return apperror.Validation("validation failed", validation.ToDetails(err))
	}

	u, err := s.findUser(ctx, authUserID)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(in.CurrentPassword, u.PasswordHash) {
		return apperror.InvalidCredentials()
	}

	hash, err := s.hasher.Hash(in.NewPassword)
	if err != nil {
		return apperror.Internal(err, "hash password")
	}
	if err := s.repo.UpdatePassword(ctx, u.ID, hash); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return apperror.NotFound("user not found")
		}
		return apperror.Internal(err, "update password")
	}
	incr(metricPasswordChanges)
	s.log.WithFields(logrus.Fields{"user_id": u.ID}).Info("password changed")

	if s.notify != nil {
		s.bestEffort(ctx, "enqueue password changed email", u.ID, func(c context.Context) error {
			return s.notify.PasswordChanged(c, u)
		})
	}
	return nil
}

// Search looks up professionals in the directory index. Without an index it
// returns no results.
func (s *ProfileService) Search(ctx context.Context, in SearchInput) ([]entity.DirectoryEntry, error) {
	if s.index == nil {
		return []entity.DirectoryEntry{}, nil
	}
	out, err := s.index.Search(ctx, repository.DirectoryQuery{
		Text:         strings.TrimSpace(in.Query),
		Size:         in.Size,
		ApprovedOnly: in.ApprovedOnly,
	})
	if err != nil {
		return nil, apperror.Internal(err, "search directory")
	}
	return out, nil
}

func (s *ProfileService) findUser(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, apperror.Internal(err, "find user by id")
	}
	return u, nil
}

// refreshCache stores p; when the write fails the old entry is evicted so the
// dashboard never serves a projection older than the store.
func (s *ProfileService) refreshCache(ctx context.Context, p entity.Profile) {
	if s.cache == nil {
		return
	}
	s.bestEffort(ctx, "write profile cache", p.ID, func(c context.Context) error {
		err := s.cache.Set(c, p)
		if err == nil {
			return nil
		}
		if derr := s.cache.Delete(c, p.ID); derr != nil {
			return errors.Wrapf(err, "evict after failed write: %v", derr)
		}
		return err
	})
}
