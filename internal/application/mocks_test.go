package application

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/medlink-api/internal/domain/entity"
	"github.com/oksasatya/medlink-api/internal/domain/repository"
	"github.com/oksasatya/medlink-api/internal/infrastructure/memory"
	"github.com/oksasatya/medlink-api/pkg/helpers"
)

type mockIndex struct{ mock.Mock }

func (m *mockIndex) Index(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockIndex) Search(ctx context.Context, q repository.DirectoryQuery) ([]entity.DirectoryEntry, error) {
	args := m.Called(ctx, q)
	if v, ok := args.Get(0).([]entity.DirectoryEntry); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Get(ctx context.Context, userID string) (*entity.Profile, bool, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*entity.Profile)
	return p, args.Bool(1), args.Error(2)
}

func (m *mockCache) Set(ctx context.Context, p entity.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockCache) Delete(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) PublishJSON(ctx context.Context, body any) error {
	return m.Called(ctx, body).Error(0)
}

// brokenRepo fails every call with err.
type brokenRepo struct{ err error }

func (r brokenRepo) Create(context.Context, *entity.User) error { return r.err }
func (r brokenRepo) FindByID(context.Context, string) (*entity.User, error) {
	return nil, r.err
}
func (r brokenRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, r.err
}
func (r brokenRepo) Update(context.Context, string, repository.UserPatch) (*entity.User, error) {
	return nil, r.err
}
func (r brokenRepo) UpdatePassword(context.Context, string, string) error { return r.err }

// racyRepo hides existing users from FindByEmail so Create hits the unique constraint.
type racyRepo struct {
	*memory.UserRepository
}

func (r racyRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, repository.ErrUserNotFound
}

func testHasher() *helpers.BcryptHasher {
	return helpers.NewBcryptHasher(bcrypt.MinCost)
}

func testTokens() *helpers.JWTManager {
	return helpers.NewJWTManager("test-secret", "medlink-api", time.Hour)
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func validSignup() SignupInput {
	return SignupInput{
		FirstName:         "Ada",
		LastName:          "Lovelace",
		Email:             "ada@example.com",
		Password:          "s3cret-pass",
		Phone:             "+44 20 7946 0000",
		Country:           "UK",
		City:              "London",
		Bio:               "Cardiologist with a taste for engines.",
		Locale:            "en-GB",
		Specialization:    []string{"cardiology"},
		YearsOfExperience: intPtr(12),
		LicenseNumber:     "GMC-123456",
		LicenseCountry:    "UK",
		LicenseFileURL:    "https://files.example.com/license.pdf",
		ProfileImageURL:   "https://files.example.com/ada.png",
		Languages:         []string{"en", "fr"},
		Documents:         []string{"https://files.example.com/cv.pdf"},
		Availability:      []entity.Availability{{Day: "tue", From: "08:30", To: "16:00"}},
	}
}
