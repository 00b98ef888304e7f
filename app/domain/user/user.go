package user

import (
	"context"
	"time"
)

// Profile is the per-student record keyed by the identity provider subject.
// Major is the declared field of study; it gates access to personalized
// routes and seeds video search queries.
type Profile struct {
	ID        uint
	SubjectID string
	Email     string
	Major     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProfileFilter struct {
	SubjectID *string
	Email     *string
}

type ProfileRepository interface {
	Create(ctx context.Context, p *Profile) error
	Update(ctx context.Context, p *Profile) error
	UpdateMajor(ctx context.Context, subjectID string, major string) error
	FindFirst(ctx context.Context, filter ProfileFilter) (*Profile, error)
	FindByFilter(ctx context.Context, filter ProfileFilter) ([]*Profile, error)
}
