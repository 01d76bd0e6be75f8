package application

import (
	"fmt"
	"strings"

	"github.com/oksasatya/medlink-api/internal/domain/entity"
	"github.com/oksasatya/medlink-api/internal/domain/repository"
	"github.com/oksasatya/medlink-api/pkg/apperror"
	"github.com/oksasatya/medlink-api/pkg/validation"
)

// SignupInput is the registration payload. Approval state is not accepted from
// clients and is always false for new accounts.
type SignupInput struct {
	FirstName         string                `json:"firstName" validate:"required,max=100"`
	LastName          string                `json:"lastName" validate:"required,max=100"`
	Email             string                `json:"email" validate:"required,email,max=254"`
	Password          string                `json:"password" validate:"required,pwd"`
	Phone             string                `json:"phone" validate:"required,max=32"`
	Country           string                `json:"country" validate:"required"`
	City              string                `json:"city" validate:"required"`
	Bio               string                `json:"bio" validate:"required,max=2000"`
	Locale            string                `json:"locale" validate:"omitempty,max=16"`
	Specialization    []string              `json:"specialization" validate:"required,min=1,dive,required"`
	YearsOfExperience *int                  `json:"yearsOfExperience" validate:"required,gte=0,lte=80"`
	LicenseNumber     string                `json:"licenseNumber" validate:"required"`
	LicenseCountry    string                `json:"licenseCountry" validate:"required"`
	LicenseFileURL    string                `json:"licenseFileUrl" validate:"omitempty,url"`
	ProfileImageURL   string                `json:"profileImageUrl" validate:"omitempty,url"`
	Languages         []string              `json:"languages" validate:"required,min=1,dive,required"`
	Documents         []string              `json:"documents" validate:"omitempty,dive,required"`
	Availability      []entity.Availability `json:"availability"`
}

func (in *SignupInput) normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Country = strings.TrimSpace(in.Country)
	in.City = strings.TrimSpace(in.City)
	in.Bio = strings.TrimSpace(in.Bio)
	in.Locale = strings.TrimSpace(in.Locale)
	in.LicenseNumber = strings.TrimSpace(in.LicenseNumber)
	in.LicenseCountry = strings.TrimSpace(in.LicenseCountry)
	in.LicenseFileURL = strings.TrimSpace(in.LicenseFileURL)
	in.ProfileImageURL = strings.TrimSpace(in.ProfileImageURL)
	in.Specialization = trimAll(in.Specialization)
	in.Languages = trimAll(in.Languages)
	in.Documents = trimAll(in.Documents)
	in.Availability = entity.TrimAvailability(in.Availability)
}

func (in *SignupInput) validate() error {
	if err := validation.Struct(in); err != nil {
		return apperror.Validation("validation failed", validation.ToDetails(err))
	}
	return validateSlots(in.Availability)
}

// SigninInput carries login credentials.
type SigninInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// EditInput lists the fields a user may change on their own profile. Keys
// outside this struct are dropped when the request body is decoded. Fields
// required at signup may be changed but not blanked.
type EditInput struct {
	FirstName         *string                `json:"firstName" validate:"omitnil,min=1,max=100"`
	LastName          *string                `json:"lastName" validate:"omitnil,min=1,max=100"`
	Phone             *string                `json:"phone" validate:"omitnil,min=1,max=32"`
	Country           *string                `json:"country" validate:"omitnil,min=1"`
	City              *string                `json:"city" validate:"omitnil,min=1"`
	Bio               *string                `json:"bio" validate:"omitnil,min=1,max=2000"`
	Locale            *string                `json:"locale" validate:"omitnil,max=16"`
	Specialization    *[]string              `json:"specialization" validate:"omitnil,min=1,dive,required"`
	YearsOfExperience *int                   `json:"yearsOfExperience" validate:"omitnil,gte=0,lte=80"`
	LicenseNumber     *string                `json:"licenseNumber" validate:"omitnil,min=1"`
	LicenseCountry    *string                `json:"licenseCountry" validate:"omitnil,min=1"`
	LicenseFileURL    *string                `json:"licenseFileUrl"`
	ProfileImageURL   *string                `json:"profileImageUrl"`
	Languages         *[]string              `json:"languages" validate:"omitnil,min=1,dive,required"`
	Documents         *[]string              `json:"documents" validate:"omitnil,dive,required"`
	Availability      *[]entity.Availability `json:"availability"`
}

// normalize trims every set field in place.
func (in *EditInput) normalize() {
	for _, f := range []**string{
		&in.FirstName, &in.LastName, &in.Phone, &in.Country, &in.City, &in.Bio, &in.Locale,
		&in.LicenseNumber, &in.LicenseCountry, &in.LicenseFileURL, &in.ProfileImageURL,
	} {
		*f = trimPtr(*f)
	}
	for _, f := range []**[]string{&in.Specialization, &in.Languages, &in.Documents} {
		if *f != nil {
			s := trimAll(**f)
			if s == nil {
				s = []string{}
			}
			*f = &s
		}
	}
	if in.Availability != nil {
		a := entity.TrimAvailability(*in.Availability)
		if a == nil {
			a = []entity.Availability{}
		}
		in.Availability = &a
	}
}

// patch converts the set fields to a repository patch.
func (in EditInput) patch() repository.UserPatch {
	return repository.UserPatch{
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		Phone:             in.Phone,
		Country:           in.Country,
		City:              in.City,
		Bio:               in.Bio,
		Locale:            in.Locale,
		Specialization:    in.Specialization,
		YearsOfExperience: in.YearsOfExperience,
		LicenseNumber:     in.LicenseNumber,
		LicenseCountry:    in.LicenseCountry,
		LicenseFileURL:    in.LicenseFileURL,
		ProfileImageURL:   in.ProfileImageURL,
		Languages:         in.Languages,
		Documents:         in.Documents,
		Availability:      in.Availability,
	}
}

// ChangePasswordInput is the payload for rotating a password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,pwd"`
}

// SearchInput is a directory lookup.
type SearchInput struct {
	Query        string
	Size         int
	ApprovedOnly bool
}

// validateSlots reports the first bad availability slot with its index and values.
func validateSlots(slots []entity.Availability) error {
	err := entity.ValidateAvailability(slots)
	if err == nil {
		return nil
	}
	slotErr, ok := err.(*entity.SlotError)
	if !ok {
		return apperror.Validation("invalid availability", map[string]string{"availability": err.Error()})
	}
	key := fmt.Sprintf("availability[%d]", slotErr.Index)
	msg := fmt.Sprintf("%s (got day=%q from=%q to=%q)", slotErr.Reason, slotErr.Slot.Day, slotErr.Slot.From, slotErr.Slot.To)
	return apperror.Validation("invalid availability", map[string]string{key: msg})
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func trimAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
