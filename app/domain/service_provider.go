package domain

import (
	"github.com/google/wire"
	"github.com/murayeeto/HornetHelper/app/domain/assistant"
	"github.com/murayeeto/HornetHelper/app/domain/auth"
	"github.com/murayeeto/HornetHelper/app/domain/catalog"
	"github.com/murayeeto/HornetHelper/app/domain/user"
	"github.com/murayeeto/HornetHelper/app/domain/video"
)

var ServiceProvider = wire.NewSet(
	auth.NewAuthService,
	user.NewService,
	assistant.NewAssistantService,
	video.NewVideoService,
	catalog.NewCatalogService,
)
