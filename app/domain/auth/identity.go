package auth

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
)

const ContextIdentity = "context_identity"

// Identity is the per-request resolved caller. It lives on the gin context
// for the lifetime of the request and is never persisted.
type Identity struct {
	SubjectID string
	Email     string
	Major     string
}

// TokenInfo is what the external identity verifier yields for a valid token.
type TokenInfo struct {
	Subject string
	Email   string
}

// TokenVerifier validates an opaque bearer token.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, rawToken string) (*TokenInfo, error)
}

func GetIdentityFromRequestContext(reqCtx *gin.Context) (*Identity, error) {
	value, ok := reqCtx.Get(ContextIdentity)
	if !ok {
		return nil, fmt.Errorf("identity not found in context")
	}
	identity, ok := value.(*Identity)
	if !ok {
		return nil, fmt.Errorf("invalid identity in context: expected *auth.Identity, got %T", value)
	}
	return identity, nil
}
