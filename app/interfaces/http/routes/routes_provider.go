package routes

import (
	"github.com/google/wire"
	"github.com/murayeeto/HornetHelper/app/interfaces/http/routes/api"
	"github.com/murayeeto/HornetHelper/app/interfaces/http/routes/api/assistant"
	"github.com/murayeeto/HornetHelper/app/interfaces/http/routes/api/catalog"
	"github.com/murayeeto/HornetHelper/app/interfaces/http/routes/api/profile"
	"github.com/murayeeto/HornetHelper/app/interfaces/http/routes/api/video"
)

var RouteProvider = wire.NewSet(
	assistant.NewAssistantRoute,
	video.NewVideoRoute,
	profile.NewProfileRoute,
	catalog.NewCatalogRoute,
	api.NewAPIRoute,
)
