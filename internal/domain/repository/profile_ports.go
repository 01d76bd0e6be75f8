package repository

import (
	"context"

	"github.com/oksasatya/medlink-api/internal/domain/entity"
)

// ProfileCache is a non-authoritative store of dashboard projections.
type ProfileCache interface {
	Get(ctx context.Context, userID string) (*entity.Profile, bool, error)
	Set(ctx context.Context, p entity.Profile) error
	Delete(ctx context.Context, userID string) error
}

// DirectoryQuery is a free-text lookup over indexed professionals.
type DirectoryQuery struct {
	Text         string
	Size         int
	ApprovedOnly bool
}

// ProfileIndex keeps a searchable copy of public profile data.
type ProfileIndex interface {
	Index(ctx context.Context, u *entity.User) error
	Search(ctx context.Context, q DirectoryQuery) ([]entity.DirectoryEntry, error)
}
