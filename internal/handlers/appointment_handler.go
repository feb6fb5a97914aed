package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/dto"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/httperr"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/httpresp"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/middleware"
	uc "github.com/Crow-s-Physiotherapy/physio-booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	bookUC       *uc.BookAppointment
	rescheduleUC *uc.RescheduleAppointment
	cancelUC     *uc.CancelAppointment
	getUC        *uc.GetAppointment

	defaultDuration int
}

func NewAppointmentHandler(
	bookUC *uc.BookAppointment,
	rescheduleUC *uc.RescheduleAppointment,
	cancelUC *uc.CancelAppointment,
	getUC *uc.GetAppointment,
	defaultDuration int,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:          bookUC,
		rescheduleUC:    rescheduleUC,
		cancelUC:        cancelUC,
		getUC:           getUC,
		defaultDuration: defaultDuration,
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "The request body could not be parsed.")
		return
	}

	duration := req.DurationMin
	if duration == 0 {
		duration = h.defaultDuration
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), uc.BookInput{
		Form:        req.Form(),
		DurationMin: duration,
		RequestID:   middleware.GetRequestID(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	eventID := c.Param("eventId")

	ap, err := h.getUC.Execute(c.Request.Context(), eventID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// UPDATE (RESCHEDULE)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	eventID := c.Param("eventId")

	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "The request body could not be parsed.")
		return
	}

	duration := req.DurationMin
	if duration == 0 {
		duration = h.defaultDuration
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), uc.RescheduleInput{
		EventID:     eventID,
		Form:        req.Form(),
		DurationMin: duration,
		RequestID:   middleware.GetRequestID(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	eventID := c.Param("eventId")

	ap, err := h.cancelUC.Execute(c.Request.Context(), eventID, middleware.GetRequestID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
