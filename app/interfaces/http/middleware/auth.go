package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/murayeeto/HornetHelper/app/domain/auth"
	"github.com/murayeeto/HornetHelper/app/interfaces/http/requests"
	"github.com/murayeeto/HornetHelper/app/interfaces/http/responses"
)

// AuthMiddleware gates protected routes: it extracts the bearer token,
// delegates verification and profile resolution to the auth service, and
// attaches the resolved identity to the request context. Handlers behind it
// can assume a non-empty major.
func AuthMiddleware(authService *auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := requests.GetTokenFromBearer(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Error: "Missing token",
			})
			return
		}

		identity, err := authService.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrMajorNotSet) {
				c.AbortWithStatusJSON(http.StatusForbidden, responses.ErrorResponse{
					Error: "Major not set",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Error: "Invalid token",
			})
			return
		}

		c.Set(auth.ContextIdentity, identity)
		c.Next()
	}
}
