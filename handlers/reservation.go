package handlers

import (
	"errors"
	"net/http"

	"shortlet/models"
	"shortlet/services/reservation"
	"shortlet/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationHandler drives the booking workflow endpoints.
type ReservationHandler struct {
	Svc    reservation.ReservationService
	Logger *zap.Logger
}

func NewReservationHandler(svc reservation.ReservationService, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Svc: svc, Logger: logger}
}

// CheckAvailability handles GET /api/properties/:id/availability. The fence
// is scoped to the viewer: the authenticated user when there is one, the
// client IP otherwise.
func (h *ReservationHandler) CheckAvailability(c *gin.Context) {
	propertyID := c.Param("id")
	checkIn := c.Query("checkIn")
	checkOut := c.Query("checkOut")

	viewerID := c.GetString("userID")
	if viewerID == "" {
		viewerID = c.ClientIP()
	}

	status, err := h.Svc.CheckAvailability(c.Request.Context(), viewerID, propertyID, checkIn, checkOut)
	if err != nil {
		if errors.Is(err, reservation.ErrSuperseded) {
			// A newer check is already in flight; the stale result is dropped.
			c.JSON(http.StatusConflict, gin.H{"superseded": true})
			return
		}
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// Initiate handles POST /api/reservations. Auth has already been checked by
// middleware; validation and the availability gate run before any session is
// created.
func (h *ReservationHandler) Initiate(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation request", err.Error())
		return
	}

	userID := c.GetString("userID")
	email := c.GetString("email")

	session, err := h.Svc.Initiate(c.Request.Context(), userID, email, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// GetSession handles GET /api/reservations/:sessionID.
func (h *ReservationHandler) GetSession(c *gin.Context) {
	session, err := h.Svc.Get(c.Request.Context(), c.GetString("userID"), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectPaymentMethod handles POST /api/reservations/:sessionID/payment-method.
func (h *ReservationHandler) SelectPaymentMethod(c *gin.Context) {
	var input struct {
		Method  models.PaymentMethod `json:"method" binding:"required"`
		Confirm bool                 `json:"confirm"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment method selection", err.Error())
		return
	}

	choice, err := h.Svc.SelectPaymentMethod(c.Request.Context(), c.GetString("userID"), c.Param("sessionID"), input.Method, input.Confirm)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, choice)
}

// Submit handles POST /api/reservations/:sessionID/submit.
func (h *ReservationHandler) Submit(c *gin.Context) {
	outcome, err := h.Svc.Submit(c.Request.Context(), c.GetString("userID"), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"outcome": outcome})
}

// Cancel handles DELETE /api/reservations/:sessionID. Cancelling before
// submit leaves zero bookings created.
func (h *ReservationHandler) Cancel(c *gin.Context) {
	if err := h.Svc.Cancel(c.Request.Context(), c.GetString("userID"), c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// respondError maps workflow errors onto HTTP responses. Payment-init
// failures are presented distinctly from booking failures: a booking may
// already exist unpaid, and the user needs to know that.
func (h *ReservationHandler) respondError(c *gin.Context, err error) {
	var initErr *reservation.PaymentInitError
	if errors.As(err, &initErr) {
		c.JSON(http.StatusBadGateway, gin.H{
			"message":   "Your booking was created, but payment could not be initialized. You can retry payment from your bookings page.",
			"details":   initErr.Err.Error(),
			"bookingId": initErr.BookingID,
		})
		return
	}

	if errors.Is(err, reservation.ErrSessionNotFound) {
		utils.JSONError(c, http.StatusNotFound, "reservation session not found or expired", "")
		return
	}

	var wf *reservation.WorkflowError
	if errors.As(err, &wf) {
		status := http.StatusBadRequest
		switch wf.Code {
		case "availabilityError":
			status = http.StatusConflict
		case "contractViolation":
			status = http.StatusBadGateway
		case "sessionError":
			status = http.StatusConflict
		case "forbidden":
			status = http.StatusForbidden
		}
		utils.JSONError(c, status, wf.Message, "")
		return
	}

	h.Logger.Error("reservation request failed", zap.Error(err))
	utils.JSONError(c, http.StatusBadGateway, "Something went wrong. Please try again.", err.Error())
}
