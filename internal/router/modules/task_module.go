package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/taskboard-api/internal/container"
	handlers "github.com/oksasatya/taskboard-api/internal/interface/http"
	"github.com/oksasatya/taskboard-api/internal/interface/middleware"
)

// TaskModule wires the task CRUD and search routes, plus the per-user task
// listing that hangs off the users path.

type TaskModule struct {
	Handler *handlers.TaskHandler
}

func NewTaskModule(h *handlers.TaskHandler) *TaskModule {
	return &TaskModule{Handler: h}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()
	readLimiter := middleware.RateLimit(rdb, 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	writeLimiter := middleware.RateLimit(rdb, 60, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	searchLimiter := middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.GET("/tasks", readLimiter, m.Handler.List)
	rg.GET("/tasks/search", searchLimiter, m.Handler.Search)
	rg.GET("/tasks/:id", readLimiter, m.Handler.Get)
	rg.POST("/tasks", writeLimiter, m.Handler.Create)
	rg.PUT("/tasks/:id", writeLimiter, m.Handler.Update)
	rg.DELETE("/tasks/:id", writeLimiter, m.Handler.Delete)

	rg.GET("/users/:id/tasks", readLimiter, m.Handler.ListByUser)
}
