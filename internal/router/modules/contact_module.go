package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/yatrarides/booking-api/internal/interface/http"
	"github.com/yatrarides/booking-api/internal/interface/middleware"
)

type ContactModule struct {
	Handler *handlers.ContactHandler
	RDB     *redis.Client
}

func NewContactModule(h *handlers.ContactHandler, rdb *redis.Client) *ContactModule {
	return &ContactModule{Handler: h, RDB: rdb}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	// Private/loopback callers (smoke tests, probes) bypass the limit.
	limiter := middleware.RateLimit(m.RDB, 20, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	rg.POST("/contact", limiter, m.Handler.Submit)
}
