package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/murayeeto/HornetHelper/app/domain/user"
	"github.com/murayeeto/HornetHelper/app/utils/logger"
)

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrMajorNotSet  = errors.New("major not set")
)

type AuthService struct {
	verifier       TokenVerifier
	profileService *user.ProfileService
}

func NewAuthService(
	verifier TokenVerifier,
	profileService *user.ProfileService,
) *AuthService {
	return &AuthService{
		verifier,
		profileService,
	}
}

// Authenticate verifies the bearer token and resolves the caller's profile.
// A verifier failure, a store failure, and an absent profile record all map
// to ErrInvalidToken; a profile without a declared major maps to
// ErrMajorNotSet.
func (s *AuthService) Authenticate(ctx context.Context, rawToken string) (*Identity, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, ErrMissingToken
	}
	info, err := s.verifier.VerifyToken(ctx, rawToken)
	if err != nil {
		logger.GetLogger().Warnf("token verification failed: %v", err)
		return nil, ErrInvalidToken
	}
	profile, err := s.profileService.FindBySubjectID(ctx, info.Subject)
	if err != nil {
		logger.GetLogger().Errorf("profile lookup failed for subject %s: %v", info.Subject, err)
		return nil, ErrInvalidToken
	}
	if profile == nil {
		return nil, ErrInvalidToken
	}
	if strings.TrimSpace(profile.Major) == "" {
		return nil, ErrMajorNotSet
	}
	email := info.Email
	if email == "" {
		email = profile.Email
	}
	return &Identity{
		SubjectID: info.Subject,
		Email:     email,
		Major:     profile.Major,
	}, nil
}
