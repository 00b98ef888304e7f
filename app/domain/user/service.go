package user

import (
	"fmt"
	"strings"

	"golang.org/x/net/context"
)

type ProfileService struct {
	profilerepo ProfileRepository
}

func NewService(profilerepo ProfileRepository) *ProfileService {
	return &ProfileService{
		profilerepo: profilerepo,
	}
}

func (s *ProfileService) RegisterProfile(ctx context.Context, profile *Profile) (*Profile, error) {
	profile.Email = strings.ToLower(strings.TrimSpace(profile.Email))
	if profile.SubjectID == "" {
		return nil, fmt.Errorf("subject id is required")
	}
	if err := s.profilerepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// FindBySubjectID returns nil without error when no record exists.
func (s *ProfileService) FindBySubjectID(ctx context.Context, subjectID string) (*Profile, error) {
	profiles, err := s.profilerepo.FindByFilter(ctx, ProfileFilter{
		SubjectID: &subjectID,
	})
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, nil
	}
	if len(profiles) != 1 {
		return nil, fmt.Errorf("invalid subject id")
	}
	return profiles[0], nil
}

func (s *ProfileService) FindByEmail(ctx context.Context, email string) (*Profile, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	profiles, err := s.profilerepo.FindByFilter(ctx, ProfileFilter{
		Email: &normalized,
	})
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, nil
	}
	return profiles[0], nil
}

func (s *ProfileService) UpdateMajor(ctx context.Context, subjectID string, major string) error {
	if strings.TrimSpace(major) == "" {
		return fmt.Errorf("major is required")
	}
	return s.profilerepo.UpdateMajor(ctx, subjectID, major)
}
