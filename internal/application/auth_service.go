package application

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/medlink-api/internal/domain/entity"
	"github.com/oksasatya/medlink-api/internal/domain/repository"
	"github.com/oksasatya/medlink-api/pkg/apperror"
	"github.com/oksasatya/medlink-api/pkg/validation"
)

// AuthService handles registration and sign-in.
type AuthService struct {
	repo   repository.UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
	effects
}

func NewAuthService(repo repository.UserRepository, hasher PasswordHasher, tokens TokenIssuer, opts ...Option) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, effects: newEffects(opts)}
}

// SigninResult is returned on a successful sign-in.
type SigninResult struct {
	User      entity.Profile `json:"user"`
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
}

// Signup registers a professional. New accounts always start unapproved.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (entity.Profile, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return entity.Profile{}, err
	}
	if len(in.Availability) == 0 {
		in.Availability = entity.DefaultAvailability()
	}
	if in.Documents == nil {
		in.Documents = []string{}
	}

	_, err := s.repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		incr(metricSignupConflicts)
		return entity.Profile{}, apperror.DuplicateEmail()
	case !errors.Is(err, repository.ErrUserNotFound):
		return entity.Profile{}, apperror.Internal(err, "check existing email")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return entity.Profile{}, apperror.Internal(err, "hash password")
	}

	u := &entity.User{
		ID:                uuid.NewString(),
		Email:             in.Email,
		PasswordHash:      hash,
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		Phone:             in.Phone,
		Country:           in.Country,
		City:              in.City,
		Bio:               in.Bio,
		Locale:            in.Locale,
		Specialization:    in.Specialization,
		YearsOfExperience: *in.YearsOfExperience,
		LicenseNumber:     in.LicenseNumber,
		LicenseCountry:    in.LicenseCountry,
		LicenseFileURL:    in.LicenseFileURL,
		ProfileImageURL:   in.ProfileImageURL,
		Languages:         in.Languages,
		Documents:         in.Documents,
		Availability:      in.Availability,
		Approved:          false,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			incr(metricSignupConflicts)
			return entity.Profile{}, apperror.DuplicateEmail()
		}
		return entity.Profile{}, apperror.Internal(err, "create user")
	}
	incr(metricSignups)
	s.log.WithFields(logrus.Fields{"user_id": u.ID}).Info("user registered")

	if s.index != nil {
		s.bestEffort(ctx, "index profile", u.ID, func(c context.Context) error { return s.index.Index(c, u) })
	}
	if s.notify != nil {
		s.bestEffort(ctx, "enqueue registration email", u.ID, func(c context.Context) error {
			return s.notify.RegistrationReceived(c, u)
		})
	}
	return u.ToProfile(), nil
}

// Signin checks credentials and issues a bearer token. Unknown email and wrong
// password produce the same error.
func (s *AuthService) Signin(ctx context.Context, in SigninInput) (*SigninResult, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validation.Struct(in); err != nil {
		return nil, apperror.Validation("email and password are required", validation.ToDetails(err))
	}

	u, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			incr(metricSigninFailures)
			return nil, apperror.InvalidCredentials()
		}
		return nil, apperror.Internal(err, "find user by email")
	}
	if !s.hasher.Verify(in.Password, u.PasswordHash) {
		incr(metricSigninFailures)
		return nil, apperror.InvalidCredentials()
	}

	token, exp, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, apperror.Internal(err, "issue token")
	}
	incr(metricSignins)
	return &SigninResult{User: u.ToProfile(), Token: token, ExpiresAt: exp}, nil
}
