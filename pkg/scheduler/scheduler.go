// Package scheduler implements the rota engine: deriving the Sundays of
// a month, keeping the schedule map topology, applying slot assignments
// and computing per-volunteer fairness counts. Everything here is a pure
// transformation over in-memory state supplied by the caller; persistence
// and transport are the host's concern.
package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/ipgdev/diaconia-api-go/pkg/models"
)

// ErrDayNotInitialized signals an assignment into a date that has no
// schedule entry. The initializer must run before any assignment, so
// this is a contract violation rather than a user error.
var ErrDayNotInitialized = errors.New("schedule day not initialized")

// NewDaySchedule builds an empty day with the fixed topology: both
// services present, three open slots each.
func NewDaySchedule(dateKey string) *models.DaySchedule {
	services := make(map[models.ServiceTime][]models.Shift, len(models.ServiceTimes))
	for _, t := range models.ServiceTimes {
		slots := make([]models.Shift, models.SlotsPerService)
		for i := range slots {
			slots[i] = models.Shift{SlotID: i + 1}
		}
		services[t] = slots
	}
	return &models.DaySchedule{Date: dateKey, Services: services}
}

// EnsureMonth creates a schedule entry for every Sunday that does not
// have one yet and returns the keys it created. Existing entries are
// never touched, so running it again for the same month is a no-op and
// an empty result means there is nothing to persist.
func EnsureMonth(m models.ScheduleMap, sundays []time.Time) []string {
	var created []string
	for _, sunday := range sundays {
		key := DateKey(sunday)
		if _, ok := m[key]; ok {
			continue
		}
		m[key] = NewDaySchedule(key)
		created = append(created, key)
	}
	return created
}

// Assign sets or clears one slot's volunteer reference. An empty
// volunteerID clears the slot. When mirror is true and a volunteer is
// being set, the same volunteer is also placed into the first open slot
// of the other service on that date; if that service is full the mirror
// is silently skipped. Clearing never mirrors.
//
// The target day must already exist (see EnsureMonth); a missing day
// returns ErrDayNotInitialized.
func Assign(m models.ScheduleMap, dateKey string, svc models.ServiceTime, slotIndex int, volunteerID string, mirror bool) error {
	if !svc.Valid() {
		return fmt.Errorf("unknown service time %q", svc)
	}
	if slotIndex < 0 || slotIndex >= models.SlotsPerService {
		return fmt.Errorf("slot index %d out of range", slotIndex)
	}
	day, ok := m[dateKey]
	if !ok {
		return fmt.Errorf("%w: %s", ErrDayNotInitialized, dateKey)
	}

	day.Services[svc][slotIndex].VolunteerID = volunteerID

	if mirror && volunteerID != "" {
		// Mirror into the other service, reading the map state after the
		// primary update so earlier changes in the same action are seen.
		other := day.Services[svc.Other()]
		for i := range other {
			if !other[i].Occupied() {
				other[i].VolunteerID = volunteerID
				break
			}
		}
	}
	return nil
}
