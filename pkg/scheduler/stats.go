package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/ipgdev/diaconia-api-go/pkg/models"
)

// UnknownVolunteerName is the display fallback for slots whose volunteer
// was deleted from the roster.
const UnknownVolunteerName = "Desconhecido"

// MonthlyCounts returns the number of assigned shifts per volunteer id
// for the given month. Every roster volunteer starts at zero; schedule
// entries outside the month are ignored. Ids no longer in the roster
// still count under their id so historical assignments stay visible.
func MonthlyCounts(m models.ScheduleMap, volunteers []models.Volunteer, year int, month time.Month) map[string]int {
	counts := make(map[string]int, len(volunteers))
	for _, v := range volunteers {
		counts[v.ID] = 0
	}

	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	for key, day := range m {
		if len(key) < len(prefix) || key[:len(prefix)] != prefix {
			continue
		}
		for _, t := range models.ServiceTimes {
			for _, slot := range day.Services[t] {
				if slot.Occupied() {
					counts[slot.VolunteerID]++
				}
			}
		}
	}
	return counts
}

// CountForVolunteer counts the shifts held by one volunteer across the
// given Sundays (both services). Used for the live count shown while
// picking an assignee.
func CountForVolunteer(m models.ScheduleMap, sundays []time.Time, volunteerID string) int {
	if volunteerID == "" {
		return 0
	}
	count := 0
	for _, sunday := range sundays {
		day, ok := m[DateKey(sunday)]
		if !ok {
			continue
		}
		for _, t := range models.ServiceTimes {
			for _, slot := range day.Services[t] {
				if slot.VolunteerID == volunteerID {
					count++
				}
			}
		}
	}
	return count
}

// VolunteerCount is one row of the fairness ranking.
type VolunteerCount struct {
	VolunteerID string `json:"volunteer_id"`
	Name        string `json:"name"`
	Count       int    `json:"count"`
}

// RankedCounts orders monthly counts for display: count descending, ties
// alphabetical by name. Ids missing from the roster are shown under the
// unknown fallback name.
func RankedCounts(counts map[string]int, volunteers []models.Volunteer) []VolunteerCount {
	names := make(map[string]string, len(volunteers))
	for _, v := range volunteers {
		names[v.ID] = v.Name
	}

	ranked := make([]VolunteerCount, 0, len(counts))
	for id, count := range counts {
		name, ok := names[id]
		if !ok {
			name = UnknownVolunteerName
		}
		ranked = append(ranked, VolunteerCount{VolunteerID: id, Name: name, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		if ranked[i].Name != ranked[j].Name {
			return ranked[i].Name < ranked[j].Name
		}
		return ranked[i].VolunteerID < ranked[j].VolunteerID
	})
	return ranked
}

// SuggestedMinimum is the advisory shift goal for a month: 3 shifts when
// the month has five Sundays, otherwise 2. Never enforced.
func SuggestedMinimum(sundayCount int) int {
	if sundayCount == 5 {
		return 3
	}
	return 2
}
