package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ipgdev/diaconia-api-go/pkg/models"
	"github.com/ipgdev/diaconia-api-go/pkg/scheduler"
)

// SlotView is one slot of the month view, with the labeling resolved.
type SlotView struct {
	SlotID        int    `json:"slot_id"`
	VolunteerID   string `json:"volunteer_id"`
	VolunteerName string `json:"volunteer_name,omitempty"`
	Occupied      bool   `json:"occupied"`
	Arrival       string `json:"arrival"`
	Ceia          bool   `json:"ceia"`
	Label         string `json:"label"`
}

// DayView is one Sunday of the month view.
type DayView struct {
	Date     string                            `json:"date"`
	Ordinal  int                               `json:"ordinal"` // 1-based Sunday number
	Services map[models.ServiceTime][]SlotView `json:"services"`
}

func buildDayView(day *models.DaySchedule, sundayIndex int, names map[string]string) DayView {
	view := DayView{
		Date:     day.Date,
		Ordinal:  sundayIndex + 1,
		Services: make(map[models.ServiceTime][]SlotView, len(models.ServiceTimes)),
	}
	for _, svc := range models.ServiceTimes {
		slots := day.Services[svc]
		views := make([]SlotView, len(slots))
		for i, slot := range slots {
			label := scheduler.LabelFor(sundayIndex, svc, i)
			sv := SlotView{
				SlotID:      slot.SlotID,
				VolunteerID: slot.VolunteerID,
				Occupied:    slot.Occupied(),
				Arrival:     label.Arrival,
				Ceia:        label.Ceia,
				Label:       label.Display(slot.Occupied()),
			}
			if slot.Occupied() {
				name, ok := names[slot.VolunteerID]
				if !ok {
					name = scheduler.UnknownVolunteerName
				}
				sv.VolunteerName = name
			}
			views[i] = sv
		}
		view.Services[svc] = views
	}
	return view
}

// GetMonth returns the rota for one month, lazily initializing missing
// Sundays.
func (h *Handler) GetMonth(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}

	m, sundays, err := h.loadMonth(year, month)
	if err != nil {
		h.Log.Error("load month failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load schedule"})
		return
	}

	volunteers, err := h.Store.Volunteers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load volunteers"})
		return
	}
	names := volunteerNames(volunteers)

	days := make([]DayView, len(sundays))
	for i, sunday := range sundays {
		days[i] = buildDayView(m[scheduler.DateKey(sunday)], i, names)
	}

	c.JSON(http.StatusOK, gin.H{
		"year":              year,
		"month":             int(month),
		"sunday_count":      len(sundays),
		"suggested_minimum": scheduler.SuggestedMinimum(len(sundays)),
		"days":              days,
	})
}

// AssignSlot applies one slot assignment (set or clear), optionally
// mirroring into the other service of the same date.
func (h *Handler) AssignSlot(c *gin.Context) {
	var req struct {
		Date        string `json:"date" binding:"required"`
		Time        string `json:"time" binding:"required"`
		SlotID      int    `json:"slot_id" binding:"required"`
		VolunteerID string `json:"volunteer_id"`
		Mirror      bool   `json:"mirror"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.ParseInLocation(scheduler.DateKeyLayout, req.Date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	m, sundays, err := h.loadMonth(date.Year(), date.Month())
	if err != nil {
		h.Log.Error("load month failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load schedule"})
		return
	}

	svc := models.ServiceTime(req.Time)
	err = scheduler.Assign(m, req.Date, svc, req.SlotID-1, req.VolunteerID, req.Mirror)
	if err != nil {
		if errors.Is(err, scheduler.ErrDayNotInitialized) {
			// Only reachable for non-Sunday dates: Sundays were just
			// initialized above.
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.SaveDays(m, []string{req.Date}); err != nil {
		h.Log.Error("save day failed", zap.String("date", req.Date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save schedule"})
		return
	}

	h.Log.Info("slot assignment",
		zap.String("date", req.Date),
		zap.String("service", req.Time),
		zap.Int("slot", req.SlotID),
		zap.String("volunteer", req.VolunteerID),
		zap.Bool("mirror", req.Mirror))

	volunteers, err := h.Store.Volunteers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load volunteers"})
		return
	}

	sundayIndex := 0
	for i, sunday := range sundays {
		if scheduler.DateKey(sunday) == req.Date {
			sundayIndex = i
			break
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"day":               buildDayView(m[req.Date], sundayIndex, volunteerNames(volunteers)),
		"volunteer_count":   scheduler.CountForVolunteer(m, sundays, req.VolunteerID),
		"suggested_minimum": scheduler.SuggestedMinimum(len(sundays)),
	})
}
