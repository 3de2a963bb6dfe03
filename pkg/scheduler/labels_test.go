package scheduler

import (
	"testing"

	"github.com/ipgdev/diaconia-api-go/pkg/models"
)

func TestLabelFor_ArrivalTable(t *testing.T) {
	cases := []struct {
		sundayIndex int
		svc         models.ServiceTime
		slotIndex   int
		arrival     string
		ceia        bool
	}{
		// 1st Sunday: evening slot 1 is the Lord's Supper duty.
		{0, models.EveningService, 0, "17:00", true},
		{0, models.EveningService, 1, "17:30", false},
		{0, models.EveningService, 2, "17:30", false},
		{0, models.MorningService, 0, "08:00", false},
		{0, models.MorningService, 1, "08:30", false},
		// 2nd Sunday: no special slot anywhere.
		{1, models.MorningService, 0, "08:00", false},
		{1, models.EveningService, 0, "17:00", false},
		// 3rd Sunday: morning slot 1 is the Lord's Supper duty.
		{2, models.MorningService, 0, "08:00", true},
		{2, models.MorningService, 1, "08:30", false},
		{2, models.MorningService, 2, "08:30", false},
		{2, models.EveningService, 0, "17:00", false},
		// 4th and 5th Sundays: plain.
		{3, models.MorningService, 0, "08:00", false},
		{4, models.EveningService, 0, "17:00", false},
		{4, models.EveningService, 2, "17:30", false},
	}

	for _, c := range cases {
		label := LabelFor(c.sundayIndex, c.svc, c.slotIndex)
		if label.Arrival != c.arrival {
			t.Errorf("sunday %d %s slot %d: expected arrival %s, got %s",
				c.sundayIndex, c.svc, c.slotIndex, c.arrival, label.Arrival)
		}
		if label.Ceia != c.ceia {
			t.Errorf("sunday %d %s slot %d: expected ceia=%v, got %v",
				c.sundayIndex, c.svc, c.slotIndex, c.ceia, label.Ceia)
		}
	}
}

func TestSlotLabel_Display(t *testing.T) {
	plain := LabelFor(1, models.MorningService, 0)
	if got := plain.Display(true); got != "Chegada: 08:00" {
		t.Errorf("occupied plain label: got %q", got)
	}
	if got := plain.Display(false); got != "Disponível (08:00)" {
		t.Errorf("open plain label: got %q", got)
	}

	ceia := LabelFor(0, models.EveningService, 0)
	if got := ceia.Display(true); got != "Ceia: 17:00" {
		t.Errorf("occupied ceia label: got %q", got)
	}
	if got := ceia.Display(false); got != "Ceia (17:00)" {
		t.Errorf("open ceia label: got %q", got)
	}
}
