package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/Crow-s-Physiotherapy/physio-booking-api/internal/domain/appointment"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/httperr"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/httpresp"
	uc "github.com/Crow-s-Physiotherapy/physio-booking-api/internal/usecase/appointment"
)

type AvailabilityHandler struct {
	slotsUC *uc.GetAvailableSlots
	checkUC *uc.CheckAvailability

	loc             *time.Location
	defaultDuration int
}

func NewAvailabilityHandler(
	slotsUC *uc.GetAvailableSlots,
	checkUC *uc.CheckAvailability,
	loc *time.Location,
	defaultDuration int,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		slotsUC:         slotsUC,
		checkUC:         checkUC,
		loc:             loc,
		defaultDuration: defaultDuration,
	}
}

// SlotsForDay returns the candidate slots of a single day with availability
// flags.
func (h *AvailabilityHandler) SlotsForDay(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_params", "A date is required.")
		return
	}

	day, err := time.ParseInLocation("2006-01-02", dateStr, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "The date must be YYYY-MM-DD.")
		return
	}

	h.respondSlots(c, day, day)
}

// SlotsForRange returns the candidate slots between two dates, inclusive.
func (h *AvailabilityHandler) SlotsForRange(c *gin.Context) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		httperr.BadRequest(c, "missing_params", "Both from and to dates are required.")
		return
	}

	from, err := time.ParseInLocation("2006-01-02", fromStr, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "The from date must be YYYY-MM-DD.")
		return
	}
	to, err := time.ParseInLocation("2006-01-02", toStr, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "The to date must be YYYY-MM-DD.")
		return
	}
	if to.Before(from) {
		httperr.BadRequest(c, "invalid_range", "The to date precedes the from date.")
		return
	}

	h.respondSlots(c, from, to)
}

// Check answers availability for one explicit interval.
func (h *AvailabilityHandler) Check(c *gin.Context) {
	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" || endStr == "" {
		httperr.BadRequest(c, "missing_params", "Both start and end are required.")
		return
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "start must be RFC 3339.")
		return
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "end must be RFC 3339.")
		return
	}
	if !end.After(start) {
		httperr.BadRequest(c, "invalid_range", "end must be after start.")
		return
	}

	result, err := h.checkUC.Execute(c.Request.Context(), start, end)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, result)
}

func (h *AvailabilityHandler) respondSlots(c *gin.Context, from, to time.Time) {
	duration := h.defaultDuration
	if d := c.Query("duration"); d != "" {
		n, err := strconv.Atoi(d)
		if err != nil {
			httperr.BadRequest(c, "invalid_duration", "duration must be a number of minutes.")
			return
		}
		duration = n
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), from, to, duration)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List[domain.TimeSlot](c, slots)
}
