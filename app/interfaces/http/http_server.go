package http

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/murayeeto/HornetHelper/app/interfaces/http/middleware"
	"github.com/murayeeto/HornetHelper/app/interfaces/http/responses"
	"github.com/murayeeto/HornetHelper/app/interfaces/http/routes/api"
	"github.com/murayeeto/HornetHelper/app/utils/logger"
	"github.com/murayeeto/HornetHelper/config/environment_variables"
)

const defaultPort = 8888

type HttpServer struct {
	engine   *gin.Engine
	apiRoute *api.APIRoute
}

func NewHttpServer(apiRoute *api.APIRoute) *HttpServer {
	if os.Getenv("local_dev") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	server := HttpServer{
		gin.New(),
		apiRoute,
	}
	server.engine.Use(middleware.CORS())
	server.engine.Use(middleware.LoggerMiddleware(logger.GetLogger()))
	server.engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error: "Internal server error",
		})
	}))
	server.engine.Use(middleware.TransactionMiddleware())
	server.engine.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(200, "ok")
	})
	server.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error: "Not found",
		})
	})
	return &server
}

func (httpServer *HttpServer) Run() error {
	port := environment_variables.EnvironmentVariables.SERVER_PORT
	if port == 0 {
		port = defaultPort
	}
	root := httpServer.engine.Group("/")
	httpServer.apiRoute.RegisterRouter(root)
	if err := httpServer.engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		return err
	}
	return nil
}
