package models

// ServiceTime identifies one of the two Sunday services.
type ServiceTime string

const (
	// MorningService is the 09:00 service.
	MorningService ServiceTime = "09:00"
	// EveningService is the 18:00 service.
	EveningService ServiceTime = "18:00"
)

// ServiceTimes lists both services in display order.
var ServiceTimes = []ServiceTime{MorningService, EveningService}

// Other returns the opposite service time on the same date.
func (t ServiceTime) Other() ServiceTime {
	if t == MorningService {
		return EveningService
	}
	return MorningService
}

// Valid reports whether t is one of the two known services.
func (t ServiceTime) Valid() bool {
	return t == MorningService || t == EveningService
}

// SlotsPerService is the fixed number of slots in each service.
const SlotsPerService = 3

// Volunteer represents a deacon available for scheduling
type Volunteer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Shift is one assignable slot within a service. An empty VolunteerID
// means the slot is open.
type Shift struct {
	SlotID      int    `json:"slotId"`
	VolunteerID string `json:"volunteerId"`
}

// Occupied reports whether the slot holds an assignment.
func (s Shift) Occupied() bool {
	return s.VolunteerID != ""
}

// DaySchedule holds both services for one Sunday. Once created its slot
// topology is fixed; only the volunteer references mutate.
type DaySchedule struct {
	Date     string                  `json:"date"` // YYYY-MM-DD
	Services map[ServiceTime][]Shift `json:"services"`
}

// ScheduleMap maps date keys (YYYY-MM-DD, Sundays only) to day schedules.
// It grows lazily as months are viewed and is never pruned.
type ScheduleMap map[string]*DaySchedule

// AppSettings holds the editable display texts.
type AppSettings struct {
	AppTitle           string `json:"app_title"`
	DeaconSectionTitle string `json:"deacon_section_title"`
	DashboardInfo      string `json:"dashboard_info"`
}
