package scheduler

import (
	"fmt"

	"github.com/ipgdev/diaconia-api-go/pkg/models"
)

// Arrival times per slot position. The first slot of each service
// arrives half an hour before the others.
const (
	morningEarlyArrival = "08:00"
	morningLateArrival  = "08:30"
	eveningEarlyArrival = "17:00"
	eveningLateArrival  = "17:30"
)

// SlotLabel carries the derived labeling for one slot: the expected
// arrival time and whether the slot is the Lord's Supper (Ceia) duty.
type SlotLabel struct {
	Arrival string `json:"arrival"`
	Ceia    bool   `json:"ceia"`
}

// LabelFor computes the label for a slot from the Sunday's zero-based
// position within its month, the service time and the zero-based slot
// index. The Ceia designation falls on the first slot of the evening
// service on the 1st Sunday and of the morning service on the 3rd
// Sunday; it keeps the early arrival time.
func LabelFor(sundayIndex int, svc models.ServiceTime, slotIndex int) SlotLabel {
	if svc == models.MorningService {
		if slotIndex == 0 {
			return SlotLabel{Arrival: morningEarlyArrival, Ceia: sundayIndex == 2}
		}
		return SlotLabel{Arrival: morningLateArrival}
	}
	if slotIndex == 0 {
		return SlotLabel{Arrival: eveningEarlyArrival, Ceia: sundayIndex == 0}
	}
	return SlotLabel{Arrival: eveningLateArrival}
}

// Display renders the label text shown on a slot. Occupied slots show an
// arrival framing, open slots an availability framing; the Ceia
// designation replaces the generic word in both.
func (l SlotLabel) Display(occupied bool) string {
	word := "Ceia"
	if occupied {
		if !l.Ceia {
			word = "Chegada"
		}
		return fmt.Sprintf("%s: %s", word, l.Arrival)
	}
	if !l.Ceia {
		word = "Disponível"
	}
	return fmt.Sprintf("%s (%s)", word, l.Arrival)
}
