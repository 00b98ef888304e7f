package main

import (
	nethttp "net/http"
	_ "net/http/pprof"

	_ "github.com/grafana/pyroscope-go/godeltaprof/http/pprof"

	"github.com/murayeeto/HornetHelper/app/infrastructure/database"
	apphttp "github.com/murayeeto/HornetHelper/app/interfaces/http"
	"github.com/murayeeto/HornetHelper/app/utils/logger"
	"github.com/murayeeto/HornetHelper/config/environment_variables"
)

type Application struct {
	HttpServer *apphttp.HttpServer
}

func (application *Application) Start() {
	if err := application.HttpServer.Run(); err != nil {
		panic(err)
	}
}

func init() {
	logger.GetLogger()
	environment_variables.EnvironmentVariables.LoadFromEnv()
}

// @title HornetHelper Server
// @version 1.0
// @description API gateway for the HornetHelper study assistant.
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the ID token.
func main() {
	// Expose pprof endpoints for profiling (pull mode)
	go func() {
		if err := nethttp.ListenAndServe("0.0.0.0:6060", nil); err != nil {
			logger.GetLogger().Errorf("pprof server failed: %v", err)
		}
	}()

	application, err := CreateApplication()
	if err != nil {
		panic(err)
	}
	if err := database.Migration(); err != nil {
		panic(err)
	}
	application.Start()
}
