package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/oksasatya/medlink-api/internal/domain/entity"
	"github.com/oksasatya/medlink-api/internal/domain/repository"
)

const uniqueViolation = "23505"

const userColumns = `id, email, password_hash, first_name, last_name, phone, country, city, bio, locale,
	specialization, years_of_experience, license_number, license_country, license_file_url,
	profile_image_url, languages, documents, availability, approved, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts u. An empty ID is filled in here so both stores own id
// generation the same way.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash, first_name, last_name, phone, country, city, bio, locale,
			specialization, years_of_experience, license_number, license_country, license_file_url,
			profile_image_url, languages, documents, availability, approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING created_at, updated_at
	`, insertArgs(u)...)

	if err := row.Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateEmail
		}
		return errors.Wrap(err, "insert user")
	}
	return nil
}

func insertArgs(u *entity.User) []any {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return []any{u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Phone, u.Country, u.City, u.Bio, u.Locale,
		textArray(u.Specialization), u.YearsOfExperience, u.LicenseNumber, u.LicenseCountry, u.LicenseFileURL,
		u.ProfileImageURL, textArray(u.Languages), textArray(u.Documents), availabilityJSON(u.Availability), u.Approved}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrapFind(err, "find user by id")
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = lower($1)`, strings.TrimSpace(email))
	u, err := scanUser(row)
	if err != nil {
		return nil, wrapFind(err, "find user by email")
	}
	return u, nil
}

// Update writes only the columns present in patch and returns the stored row.
func (r *UserRepository) Update(ctx context.Context, id string, patch repository.UserPatch) (*entity.User, error) {
	sets, args := patchAssignments(patch)
	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s, updated_at = now() WHERE id = $%d RETURNING `+userColumns,
		strings.Join(sets, ", "), len(args))

	u, err := scanUser(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, wrapFind(err, "update user")
	}
	return u, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id string, hash string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`, hash, id)
	if err != nil {
		if isInvalidID(err) {
			return repository.ErrUserNotFound
		}
		return errors.Wrap(err, "update password")
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}

func patchAssignments(p repository.UserPatch) ([]string, []any) {
	var (
		sets []string
		args []any
	)
	add := func(column string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if p.FirstName != nil {
		add("first_name", *p.FirstName)
	}
	if p.LastName != nil {
		add("last_name", *p.LastName)
	}
	if p.Phone != nil {
		add("phone", *p.Phone)
	}
	if p.Country != nil {
		add("country", *p.Country)
	}
	if p.City != nil {
		add("city", *p.City)
	}
	if p.Bio != nil {
		add("bio", *p.Bio)
	}
	if p.Locale != nil {
		add("locale", *p.Locale)
	}
	if p.Specialization != nil {
		add("specialization", textArray(*p.Specialization))
	}
	if p.YearsOfExperience != nil {
		add("years_of_experience", *p.YearsOfExperience)
	}
	if p.LicenseNumber != nil {
		add("license_number", *p.LicenseNumber)
	}
	if p.LicenseCountry != nil {
		add("license_country", *p.LicenseCountry)
	}
	if p.LicenseFileURL != nil {
		add("license_file_url", *p.LicenseFileURL)
	}
	if p.ProfileImageURL != nil {
		add("profile_image_url", *p.ProfileImageURL)
	}
	if p.Languages != nil {
		add("languages", textArray(*p.Languages))
	}
	if p.Documents != nil {
		add("documents", textArray(*p.Documents))
	}
	if p.Availability != nil {
		add("availability", availabilityJSON(*p.Availability))
	}
	return sets, args
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Phone, &u.Country,
		&u.City, &u.Bio, &u.Locale, &u.Specialization, &u.YearsOfExperience, &u.LicenseNumber,
		&u.LicenseCountry, &u.LicenseFileURL, &u.ProfileImageURL, &u.Languages, &u.Documents,
		&u.Availability, &u.Approved, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func wrapFind(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
		return repository.ErrUserNotFound
	}
	return errors.Wrap(err, op)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// isInvalidID treats a malformed uuid as a missing row.
func isInvalidID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}

// textArray keeps NOT NULL text[] columns from receiving NULL.
func textArray(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func availabilityJSON(a []entity.Availability) []entity.Availability {
	if a == nil {
		return []entity.Availability{}
	}
	return a
}
