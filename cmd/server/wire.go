//go:build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/murayeeto/HornetHelper/app/domain"
	"github.com/murayeeto/HornetHelper/app/infrastructure"
	"github.com/murayeeto/HornetHelper/app/infrastructure/database"
	"github.com/murayeeto/HornetHelper/app/infrastructure/database/repository"
	"github.com/murayeeto/HornetHelper/app/interfaces/http"
	"github.com/murayeeto/HornetHelper/app/interfaces/http/routes"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		database.NewDB,
		repository.RepositoryProvider,
		infrastructure.InfrastructureProvider,
		domain.ServiceProvider,
		routes.RouteProvider,
		http.NewHttpServer,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
