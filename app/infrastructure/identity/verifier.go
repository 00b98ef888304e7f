package identity

import (
	"context"
	"fmt"
	"strings"

	oidc "github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"github.com/murayeeto/HornetHelper/app/domain/auth"
	"github.com/murayeeto/HornetHelper/config/environment_variables"
)

const issuerPrefix = "https://securetoken.google.com/"

// NewTokenVerifier selects the configured verifier. Identity verification is
// mandatory: with neither an OIDC project nor a static secret configured the
// process cannot serve protected routes and startup fails.
func NewTokenVerifier() auth.TokenVerifier {
	env := &environment_variables.EnvironmentVariables
	if projectID := strings.TrimSpace(env.GOOGLE_IDENTITY_PROJECT_ID); projectID != "" {
		return NewOIDCVerifier(projectID)
	}
	if len(env.JWT_SECRET) > 0 {
		return NewStaticKeyVerifier(env.JWT_SECRET)
	}
	panic("identity verification not configured: set GOOGLE_IDENTITY_PROJECT_ID or JWT_SECRET")
}

// OIDCVerifier validates Firebase ID tokens against the securetoken issuer
// for the configured project.
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

func NewOIDCVerifier(projectID string) *OIDCVerifier {
	provider, err := oidc.NewProvider(context.Background(), issuerPrefix+projectID)
	if err != nil {
		panic(err)
	}
	return &OIDCVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: projectID}),
	}
}

func (v *OIDCVerifier) VerifyToken(ctx context.Context, rawToken string) (*auth.TokenInfo, error) {
	idToken, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}
	var claims struct {
		Email string `json:"email"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, err
	}
	return &auth.TokenInfo{
		Subject: idToken.Subject,
		Email:   claims.Email,
	}, nil
}

// StaticKeyVerifier validates HS512 tokens signed with a shared secret. Used
// for local development and tests where no identity provider is reachable.
type StaticKeyVerifier struct {
	secret []byte
}

func NewStaticKeyVerifier(secret []byte) *StaticKeyVerifier {
	return &StaticKeyVerifier{secret: secret}
}

type UserClaim struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (v *StaticKeyVerifier) VerifyToken(ctx context.Context, rawToken string) (*auth.TokenInfo, error) {
	token, err := jwt.ParseWithClaims(rawToken, &UserClaim{}, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(*UserClaim)
	if !ok || claims.Subject == "" {
		return nil, fmt.Errorf("invalid token claims")
	}
	return &auth.TokenInfo{
		Subject: claims.Subject,
		Email:   claims.Email,
	}, nil
}

// SignStaticToken issues an HS512 token for the static verifier.
func SignStaticToken(secret []byte, claim UserClaim) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claim)
	return token.SignedString(secret)
}
