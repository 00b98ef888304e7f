package infrastructure

import (
	"github.com/google/wire"
	"github.com/murayeeto/HornetHelper/app/infrastructure/identity"
	"github.com/murayeeto/HornetHelper/app/infrastructure/inference"
)

var InfrastructureProvider = wire.NewSet(
	identity.NewTokenVerifier,
	inference.NewCompletionClient,
	inference.NewSearchClient,
)
