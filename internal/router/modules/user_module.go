package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/taskboard-api/internal/container"
	handlers "github.com/oksasatya/taskboard-api/internal/interface/http"
	"github.com/oksasatya/taskboard-api/internal/interface/middleware"
)

// UserModule wires the user CRUD routes.
// Reads: GET /api/users, GET /api/users/:id, GET /api/users/lookup
// Writes: POST /api/users, DELETE /api/users/:id (cascades tasks)

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()
	readLimiter := middleware.RateLimit(rdb, 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	writeLimiter := middleware.RateLimit(rdb, 60, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.GET("/users", readLimiter, m.Handler.List)
	rg.GET("/users/lookup", readLimiter, m.Handler.Lookup)
	rg.GET("/users/:id", readLimiter, m.Handler.Get)
	rg.POST("/users", writeLimiter, m.Handler.Create)
	rg.DELETE("/users/:id", writeLimiter, m.Handler.Delete)
}
