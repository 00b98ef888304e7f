package api

import (
	"github.com/gin-gonic/gin"
	"github.com/murayeeto/HornetHelper/app/domain/auth"
	"github.com/murayeeto/HornetHelper/app/interfaces/http/middleware"
	"github.com/murayeeto/HornetHelper/app/interfaces/http/routes/api/assistant"
	"github.com/murayeeto/HornetHelper/app/interfaces/http/routes/api/catalog"
	"github.com/murayeeto/HornetHelper/app/interfaces/http/routes/api/profile"
	"github.com/murayeeto/HornetHelper/app/interfaces/http/routes/api/video"
)

type APIRoute struct {
	authService    *auth.AuthService
	assistantRoute *assistant.AssistantRoute
	videoRoute     *video.VideoRoute
	profileRoute   *profile.ProfileRoute
	catalogRoute   *catalog.CatalogRoute
}

func NewAPIRoute(
	authService *auth.AuthService,
	assistantRoute *assistant.AssistantRoute,
	videoRoute *video.VideoRoute,
	profileRoute *profile.ProfileRoute,
	catalogRoute *catalog.CatalogRoute,
) *APIRoute {
	return &APIRoute{
		authService,
		assistantRoute,
		videoRoute,
		profileRoute,
		catalogRoute,
	}
}

func (apiRoute *APIRoute) RegisterRouter(router gin.IRouter) {
	apiRouter := router.Group("/api")

	// Public routes
	apiRoute.assistantRoute.RegisterRouter(apiRouter)
	apiRoute.videoRoute.RegisterRouter(apiRouter)
	apiRoute.catalogRoute.RegisterRouter(apiRouter)

	// Routes behind the auth gate
	protected := apiRouter.Group("", middleware.AuthMiddleware(apiRoute.authService))
	apiRoute.profileRoute.RegisterRouter(protected)
	apiRoute.catalogRoute.RegisterProtectedRouter(protected)
}
