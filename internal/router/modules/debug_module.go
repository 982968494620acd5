package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/taskboard-api/internal/interface/middleware"
)

// DebugModule exposes the process expvar counters. Registered only when
// debug metrics are enabled in the config.
type DebugModule struct {
	rdb *redis.Client
}

func NewDebugModule(rdb *redis.Client) *DebugModule {
	return &DebugModule{rdb: rdb}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(m.rdb, 30, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
