package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/medlink-api/internal/domain/entity"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserPatch lists the fields a profile update may change. Nil means "leave as is".
type UserPatch struct {
	FirstName         *string
	LastName          *string
	Phone             *string
	Country           *string
	City              *string
	Bio               *string
	Locale            *string
	Specialization    *[]string
	YearsOfExperience *int
	LicenseNumber     *string
	LicenseCountry    *string
	LicenseFileURL    *string
	ProfileImageURL   *string
	Languages         *[]string
	Documents         *[]string
	Availability      *[]entity.Availability
}

// IsEmpty reports whether no field is set.
func (p UserPatch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// Fields returns the JSON names of the fields set in the patch.
func (p UserPatch) Fields() []string {
	var out []string
	add := func(set bool, name string) {
		if set {
			out = append(out, name)
		}
	}
	add(p.FirstName != nil, "firstName")
	add(p.LastName != nil, "lastName")
	add(p.Phone != nil, "phone")
	add(p.Country != nil, "country")
	add(p.City != nil, "city")
	add(p.Bio != nil, "bio")
	add(p.Locale != nil, "locale")
	add(p.Specialization != nil, "specialization")
	add(p.YearsOfExperience != nil, "yearsOfExperience")
	add(p.LicenseNumber != nil, "licenseNumber")
	add(p.LicenseCountry != nil, "licenseCountry")
	add(p.LicenseFileURL != nil, "licenseFileUrl")
	add(p.ProfileImageURL != nil, "profileImageUrl")
	add(p.Languages != nil, "languages")
	add(p.Documents != nil, "documents")
	add(p.Availability != nil, "availability")
	return out
}

// Apply copies the set fields onto u.
func (p UserPatch) Apply(u *entity.User) {
	setString(&u.FirstName, p.FirstName)
	setString(&u.LastName, p.LastName)
	setString(&u.Phone, p.Phone)
	setString(&u.Country, p.Country)
	setString(&u.City, p.City)
	setString(&u.Bio, p.Bio)
	setString(&u.Locale, p.Locale)
	setString(&u.LicenseNumber, p.LicenseNumber)
	setString(&u.LicenseCountry, p.LicenseCountry)
	setString(&u.LicenseFileURL, p.LicenseFileURL)
	setString(&u.ProfileImageURL, p.ProfileImageURL)
	if p.Specialization != nil {
		u.Specialization = append([]string{}, (*p.Specialization)...)
	}
	if p.Languages != nil {
		u.Languages = append([]string{}, (*p.Languages)...)
	}
	if p.Documents != nil {
		u.Documents = append([]string{}, (*p.Documents)...)
	}
	if p.YearsOfExperience != nil {
		u.YearsOfExperience = *p.YearsOfExperience
	}
	if p.Availability != nil {
		u.Availability = append([]entity.Availability{}, (*p.Availability)...)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// UserRepository defines the persistence operations for user records.
// Lookups return ErrUserNotFound when nothing matches; Create returns
// ErrDuplicateEmail when the email is already taken.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*entity.User, error)
	UpdatePassword(ctx context.Context, id string, hash string) error
}
