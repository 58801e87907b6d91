package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yatrarides/booking-api/internal/application"
	"github.com/yatrarides/booking-api/internal/domain/entity"
	"github.com/yatrarides/booking-api/internal/interface/middleware"
	"github.com/yatrarides/booking-api/pkg/response"
	"github.com/yatrarides/booking-api/pkg/validation"
)

type BookingHandler struct {
	Svc    *application.BookingService
	Logger *logrus.Logger
}

func NewBookingHandler(svc *application.BookingService, logger *logrus.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// createBookingRequest deliberately has no userId or status field;
// ownership comes from the session and status always starts Pending.
type createBookingRequest struct {
	CustomerName    string `json:"customerName" binding:"required"`
	PickupLocation  string `json:"pickupLocation" binding:"required"`
	DropoffLocation string `json:"dropoffLocation" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
}

func principalFrom(c *gin.Context) (application.Principal, bool) {
	idVal, ok := c.Get(middleware.CtxUserIDKey)
	if !ok {
		return application.Principal{}, false
	}
	id, ok := idVal.(int64)
	if !ok {
		return application.Principal{}, false
	}
	return application.Principal{UserID: id, Email: c.GetString(middleware.CtxUserEmailKey)}, true
}

func bookingJSON(b entity.Booking) gin.H {
	return gin.H{
		"id":              b.ID,
		"customerName":    b.CustomerName,
		"pickupLocation":  b.PickupLocation,
		"dropoffLocation": b.DropoffLocation,
		"phone":           b.Phone,
		"status":          b.Status,
		"userId":          b.UserID,
		"createdAt":       b.CreatedAt,
	}
}

// Create POST /api/bookings (session required)
func (h *BookingHandler) Create(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "missing session token", nil)
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	b, err := h.Svc.Create(c.Request.Context(), p, application.BookingInput{
		CustomerName:    req.CustomerName,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		Phone:           req.Phone,
	})
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", p.UserID).Error("create booking failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}

	response.Success(c, http.StatusCreated, bookingJSON(*b), "booking created")
}

// List GET /api/bookings (session required). Returns the caller's
// bookings only.
func (h *BookingHandler) List(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "missing session token", nil)
		return
	}

	list, err := h.Svc.ListOwned(c.Request.Context(), p)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", p.UserID).Error("list bookings failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}

	out := make([]gin.H, 0, len(list))
	for _, b := range list {
		out = append(out, bookingJSON(b))
	}
	response.Success(c, http.StatusOK, out, "bookings")
}
