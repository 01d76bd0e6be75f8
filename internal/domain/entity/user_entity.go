package entity

import (
	"time"
)

// User is the aggregate root for the professional directory.
// PasswordHash holds a bcrypt digest and is never serialized.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Country   string `json:"country"`
	City      string `json:"city"`
	Bio       string `json:"bio"`
	Locale    string `json:"locale"`

	Specialization    []string       `json:"specialization"`
	YearsOfExperience int            `json:"yearsOfExperience"`
	LicenseNumber     string         `json:"licenseNumber"`
	LicenseCountry    string         `json:"licenseCountry"`
	LicenseFileURL    string         `json:"licenseFileUrl"`
	ProfileImageURL   string         `json:"profileImageUrl"`
	Languages         []string       `json:"languages"`
	Documents         []string       `json:"documents"`
	Availability      []Availability `json:"availability"`

	// Approved is set by an administrative process outside this API.
	Approved bool `json:"approved"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Profile is the non-secret projection returned by the dashboard.
type Profile struct {
	ID                string         `json:"id"`
	Email             string         `json:"email"`
	FirstName         string         `json:"firstName"`
	LastName          string         `json:"lastName"`
	Phone             string         `json:"phone"`
	Country           string         `json:"country"`
	City              string         `json:"city"`
	Bio               string         `json:"bio"`
	Locale            string         `json:"locale"`
	Specialization    []string       `json:"specialization"`
	YearsOfExperience int            `json:"yearsOfExperience"`
	LicenseNumber     string         `json:"licenseNumber"`
	LicenseCountry    string         `json:"licenseCountry"`
	LicenseFileURL    string         `json:"licenseFileUrl"`
	ProfileImageURL   string         `json:"profileImageUrl"`
	Languages         []string       `json:"languages"`
	Documents         []string       `json:"documents"`
	Availability      []Availability `json:"availability"`
	Approved          bool           `json:"approved"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// ToProfile copies every non-secret field.
func (u *User) ToProfile() Profile {
	return Profile{
		ID:                u.ID,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Phone:             u.Phone,
		Country:           u.Country,
		City:              u.City,
		Bio:               u.Bio,
		Locale:            u.Locale,
		Specialization:    nonNil(u.Specialization),
		YearsOfExperience: u.YearsOfExperience,
		LicenseNumber:     u.LicenseNumber,
		LicenseCountry:    u.LicenseCountry,
		LicenseFileURL:    u.LicenseFileURL,
		ProfileImageURL:   u.ProfileImageURL,
		Languages:         nonNil(u.Languages),
		Documents:         nonNil(u.Documents),
		Availability:      u.Availability,
		Approved:          u.Approved,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

// DirectoryEntry is the public card shown in directory search results.
type DirectoryEntry struct {
	ID                string   `json:"id"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Country           string   `json:"country"`
	City              string   `json:"city"`
	Specialization    []string `json:"specialization"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	Languages         []string `json:"languages"`
	ProfileImageURL   string   `json:"profileImageUrl"`
	Bio               string   `json:"bio"`
	Approved          bool     `json:"approved"`
}

func (u *User) ToDirectoryEntry() DirectoryEntry {
	return DirectoryEntry{
		ID:                u.ID,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Country:           u.Country,
		City:              u.City,
		Specialization:    nonNil(u.Specialization),
		YearsOfExperience: u.YearsOfExperience,
		Languages:         nonNil(u.Languages),
		ProfileImageURL:   u.ProfileImageURL,
		Bio:               u.Bio,
		Approved:          u.Approved,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
