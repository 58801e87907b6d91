package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/yatrarides/booking-api/internal/interface/http"
	"github.com/yatrarides/booking-api/internal/interface/middleware"
	"github.com/yatrarides/booking-api/pkg/helpers"
)

// BookingModule wires booking routes behind the session gate.
// Every route here requires an authenticated principal.
type BookingModule struct {
	Handler *handlers.BookingHandler
	Tokens  *helpers.TokenManager
}

func NewBookingModule(h *handlers.BookingHandler, tokens *helpers.TokenManager) *BookingModule {
	return &BookingModule{Handler: h, Tokens: tokens}
}

func (m *BookingModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.SessionAuth(m.Tokens))
	{
		auth.GET("/bookings", m.Handler.List)
		auth.POST("/bookings", m.Handler.Create)
	}
}
