package gin_interface

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guillaumesimon/albert-news/middleware"
)

type RouteRegistrar interface {
	RegisterRoutes(g gin.IRoutes)
}

// NewRouter mounts the health check and the given controllers. Controllers
// sit behind the SSE headers and, when authHandler is not nil, behind JWT
// auth. Wrong verbs get a 405 listing the allowed ones.
func NewRouter(authHandler middleware.AuthHandler, registrars ...RouteRegistrar) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.HandleMethodNotAllowed = true

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers := []gin.HandlerFunc{middleware.SSEMiddleware()}
	if authHandler != nil {
		handlers = append(handlers, authHandler.AuthMiddleware())
	}
	api := router.Group("/", handlers...)
	for _, registrar := range registrars {
		registrar.RegisterRoutes(api)
	}

	router.NoMethod(methodNotAllowed(router))

	return router
}

func methodNotAllowed(router *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed := make([]string, 0, 1)
		for _, route := range router.Routes() {
			if route.Path == c.Request.URL.Path {
				allowed = append(allowed, route.Method)
			}
		}
		sort.Strings(allowed)

		c.Header("Allow", strings.Join(allowed, ", "))
		c.String(http.StatusMethodNotAllowed, fmt.Sprintf("Method %s Not Allowed", c.Request.Method))
	}
}
