package scheduler

import (
	"testing"
	"time"

	"github.com/ipgdev/diaconia-api-go/pkg/models"
)

var testRoster = []models.Volunteer{
	{ID: "v1", Name: "João Silva"},
	{ID: "v2", Name: "Maria Oliveira"},
	{ID: "v3", Name: "Pedro Santos"},
}

func TestMonthlyCounts(t *testing.T) {
	m, sundays := initMonth(t, 2026, time.February)

	// Three shifts for v1, one for v2, none for v3.
	mustAssign := func(key string, svc models.ServiceTime, idx int, id string) {
		t.Helper()
		if err := Assign(m, key, svc, idx, id, false); err != nil {
			t.Fatalf("assign: %v", err)
		}
	}
	mustAssign(DateKey(sundays[0]), models.MorningService, 0, "v1")
	mustAssign(DateKey(sundays[0]), models.EveningService, 1, "v1")
	mustAssign(DateKey(sundays[1]), models.MorningService, 2, "v1")
	mustAssign(DateKey(sundays[2]), models.EveningService, 0, "v2")

	// An assignment in another month must not leak into the counts.
	EnsureMonth(m, SundaysInMonth(2026, time.March))
	mustAssign("2026-03-01", models.MorningService, 0, "v1")

	counts := MonthlyCounts(m, testRoster, 2026, time.February)

	if counts["v1"] != 3 {
		t.Errorf("v1: expected 3, got %d", counts["v1"])
	}
	if counts["v2"] != 1 {
		t.Errorf("v2: expected 1, got %d", counts["v2"])
	}
	if got, ok := counts["v3"]; !ok || got != 0 {
		t.Errorf("v3: expected explicit zero, got %d (present=%v)", got, ok)
	}
}

func TestMonthlyCounts_DanglingID(t *testing.T) {
	m, sundays := initMonth(t, 2026, time.February)
	if err := Assign(m, DateKey(sundays[0]), models.MorningService, 0, "gone", false); err != nil {
		t.Fatalf("assign: %v", err)
	}

	counts := MonthlyCounts(m, testRoster, 2026, time.February)
	if counts["gone"] != 1 {
		t.Errorf("expected dangling id to be counted, got %d", counts["gone"])
	}
}

func TestRankedCounts_OrderAndUnknown(t *testing.T) {
	counts := map[string]int{"v1": 2, "v2": 2, "v3": 0, "gone": 1}

	ranked := RankedCounts(counts, testRoster)
	if len(ranked) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(ranked))
	}

	// Descending by count, equal counts alphabetical by name.
	if ranked[0].VolunteerID != "v1" || ranked[1].VolunteerID != "v2" {
		t.Errorf("expected v1 (João) before v2 (Maria) on tie, got %s then %s",
			ranked[0].VolunteerID, ranked[1].VolunteerID)
	}
	if ranked[2].VolunteerID != "gone" {
		t.Errorf("expected dangling id third, got %s", ranked[2].VolunteerID)
	}
	if ranked[2].Name != UnknownVolunteerName {
		t.Errorf("expected fallback name for dangling id, got %q", ranked[2].Name)
	}
	if ranked[3].VolunteerID != "v3" || ranked[3].Count != 0 {
		t.Errorf("expected v3 last with zero, got %+v", ranked[3])
	}
}

func TestCountForVolunteer(t *testing.T) {
	m, sundays := initMonth(t, 2026, time.February)

	if err := Assign(m, DateKey(sundays[0]), models.MorningService, 0, "v2", true); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if got := CountForVolunteer(m, sundays, "v2"); got != 2 {
		t.Errorf("expected 2 shifts after mirrored assignment, got %d", got)
	}
	if got := CountForVolunteer(m, sundays, "v1"); got != 0 {
		t.Errorf("expected 0 for unassigned volunteer, got %d", got)
	}
	if got := CountForVolunteer(m, sundays, ""); got != 0 {
		t.Errorf("expected 0 for empty id, got %d", got)
	}
}

func TestSuggestedMinimum(t *testing.T) {
	if got := SuggestedMinimum(len(SundaysInMonth(2026, time.March))); got != 3 {
		t.Errorf("five-Sunday month: expected 3, got %d", got)
	}
	if got := SuggestedMinimum(len(SundaysInMonth(2026, time.February))); got != 2 {
		t.Errorf("four-Sunday month: expected 2, got %d", got)
	}
}
