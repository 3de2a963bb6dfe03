package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ipgdev/diaconia-api-go/pkg/models"
	"github.com/ipgdev/diaconia-api-go/pkg/scheduler"
)

// ExportMonthCSV renders one month of the rota as CSV, one row per
// slot, for the printable schedule.
func (h *Handler) ExportMonthCSV(c *gin.Context) {
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

	var out strings.Builder
	writer := csv.NewWriter(&out)
	writer.Write([]string{"date", "sunday", "service", "slot", "label", "volunteer"})

	for i, sunday := range sundays {
		day := m[scheduler.DateKey(sunday)]
		for _, svc := range models.ServiceTimes {
			for slotIdx, slot := range day.Services[svc] {
				label := scheduler.LabelFor(i, svc, slotIdx)
				name := ""
				if slot.Occupied() {
					var known bool
					if name, known = names[slot.VolunteerID]; !known {
						name = scheduler.UnknownVolunteerName
					}
				}
				writer.Write([]string{
					day.Date,
					fmt.Sprintf("%dº Domingo", i+1),
					string(svc),
					fmt.Sprintf("%d", slot.SlotID),
					label.Display(slot.Occupied()),
					name,
				})
			}
		}
	}
	writer.Flush()

	filename := fmt.Sprintf("escala-%04d-%02d.csv", year, int(month))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(out.String()))
}
