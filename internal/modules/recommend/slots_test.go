// README: Unit tests for free-slot enumeration.
package recommend

import (
	"testing"
	"time"

	"fieldops/internal/modules/assignment"
)

func slotTimes(t *testing.T, day time.Time, hours ...int) []time.Time {
	t.Helper()
	out := make([]time.Time, len(hours))
	for i, h := range hours {
		out[i] = day.Add(time.Duration(h) * time.Hour)
	}
	return out
}

func assertSlots(t *testing.T, got, want []time.Time) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d slots %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("slot %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFreeSlots_NoAssignments(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	// Working 09:00-12:00 yields exactly 09:00, 10:00, 11:00.
	got := FreeSlots(day, 9*60, 12*60, nil)
	assertSlots(t, got, slotTimes(t, day, 9, 10, 11))
}

func TestFreeSlots_AssignmentRemovesSlot(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	busy := []assignment.Assignment{
		{StartAt: day.Add(10 * time.Hour), DurationHours: 1},
	}
	got := FreeSlots(day, 9*60, 12*60, busy)
	assertSlots(t, got, slotTimes(t, day, 9, 11))
}

func TestFreeSlots_PartialOverlapRemovesBothSlots(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	// A 10:30-11:30 job straddles the 10:00 and 11:00 slots.
	busy := []assignment.Assignment{
		{StartAt: day.Add(10*time.Hour + 30*time.Minute), DurationHours: 1},
	}
	got := FreeSlots(day, 9*60, 12*60, busy)
	assertSlots(t, got, slotTimes(t, day, 9))
}

func TestFreeSlots_BackToBackAssignmentKeepsSlot(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	// Job ends exactly at 10:00; the 10:00 slot survives.
	busy := []assignment.Assignment{
		{StartAt: day.Add(9 * time.Hour), DurationHours: 1},
	}
	got := FreeSlots(day, 9*60, 12*60, busy)
	assertSlots(t, got, slotTimes(t, day, 10, 11))
}

func TestFreeSlots_InvertedHoursYieldNothing(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if got := FreeSlots(day, 17*60, 9*60, nil); len(got) != 0 {
		t.Errorf("inverted working hours should yield no slots, got %v", got)
	}
	if got := FreeSlots(day, 9*60, 9*60, nil); len(got) != 0 {
		t.Errorf("zero-length working hours should yield no slots, got %v", got)
	}
}

func TestFreeSlots_ChronologicalOrder(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	got := FreeSlots(day, 8*60, 18*60, nil)
	for i := 1; i < len(got); i++ {
		if !got[i-1].Before(got[i]) {
			t.Fatalf("slots out of order at %d: %v", i, got)
		}
	}
}

func TestFreeSlots_NormalizesDayToMidnight(t *testing.T) {
	noon := time.Date(2026, 9, 1, 12, 34, 0, 0, time.UTC)
	midnight := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	assertSlots(t, FreeSlots(noon, 9*60, 12*60, nil), FreeSlots(midnight, 9*60, 12*60, nil))
}
