package services

import (
	"reflect"
	"testing"
	"time"

	"knock_server/models"
)

// fixedScheduler pins the clock to Monday 2025-06-02 noon.
func fixedScheduler() *SlotSchedulerService {
	return &SlotSchedulerService{
		Now: func() time.Time {
			return time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)
		},
	}
}

func TestSuggestSlotsStartsTomorrow(t *testing.T) {
	ss := fixedScheduler()
	everyDay := models.Availability{}
	for _, day := range models.Weekdays {
		everyDay[day] = []string{"Morning"}
	}

	got := ss.SuggestSlots(everyDay, everyDay, nil, 14, 3)
	if len(got) != 3 {
		t.Fatalf("SuggestSlots() = %d suggestions, want 3", len(got))
	}
	// Invoked on 2025-06-02: same-day is never proposed.
	if got[0].Date != "2025-06-03" {
		t.Errorf("first suggestion date = %s, want 2025-06-03", got[0].Date)
	}
	if got[0].Weekday != "Tuesday" {
		t.Errorf("first suggestion weekday = %s, want Tuesday", got[0].Weekday)
	}
}

func TestSuggestSlotsWeeklyProjection(t *testing.T) {
	ss := fixedScheduler()
	mondayMorning := models.Availability{"Monday": {"Morning"}}

	got := ss.SuggestSlots(mondayMorning, mondayMorning, nil, 14, 5)
	want := []models.SlotSuggestion{
		{Date: "2025-06-09", Weekday: "Monday", TimeBand: "Morning", RepresentativeTime: "10:00"},
		{Date: "2025-06-16", Weekday: "Monday", TimeBand: "Morning", RepresentativeTime: "10:00"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SuggestSlots() = %v, want %v", got, want)
	}
}

func TestSuggestSlotsSkipsBlackoutDates(t *testing.T) {
	ss := fixedScheduler()
	mondayMorning := models.Availability{"Monday": {"Morning"}}

	got := ss.SuggestSlots(mondayMorning, mondayMorning, []string{"2025-06-09"}, 14, 5)
	if len(got) != 1 {
		t.Fatalf("SuggestSlots() = %d suggestions, want 1", len(got))
	}
	if got[0].Date != "2025-06-16" {
		t.Errorf("suggestion date = %s, want 2025-06-16 (next Monday after blackout)", got[0].Date)
	}
	for _, suggestion := range got {
		if suggestion.Date == "2025-06-09" {
			t.Error("SuggestSlots() returned a blacked-out date")
		}
	}
}

func TestSuggestSlotsRespectsMaxResultsAndBandOrder(t *testing.T) {
	ss := fixedScheduler()
	allBands := models.Availability{}
	for _, day := range models.Weekdays {
		allBands[day] = []string{"Evening", "Morning", "Afternoon"}
	}

	got := ss.SuggestSlots(allBands, allBands, nil, 14, 5)
	want := []models.SlotSuggestion{
		{Date: "2025-06-03", Weekday: "Tuesday", TimeBand: "Morning", RepresentativeTime: "10:00"},
		{Date: "2025-06-03", Weekday: "Tuesday", TimeBand: "Afternoon", RepresentativeTime: "14:00"},
		{Date: "2025-06-03", Weekday: "Tuesday", TimeBand: "Evening", RepresentativeTime: "18:00"},
		{Date: "2025-06-04", Weekday: "Wednesday", TimeBand: "Morning", RepresentativeTime: "10:00"},
		{Date: "2025-06-04", Weekday: "Wednesday", TimeBand: "Afternoon", RepresentativeTime: "14:00"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SuggestSlots() = %v, want %v", got, want)
	}
}

func TestSuggestSlotsHorizonExhausted(t *testing.T) {
	ss := fixedScheduler()
	mondayMorning := models.Availability{"Monday": {"Morning"}}

	// Next Monday is 7 days out; a 5-day horizon never reaches it.
	if got := ss.SuggestSlots(mondayMorning, mondayMorning, nil, 5, 5); len(got) != 0 {
		t.Errorf("SuggestSlots() = %v, want empty within short horizon", got)
	}
}

func TestSuggestSlotsNoOverlap(t *testing.T) {
	ss := fixedScheduler()
	a := models.Availability{"Monday": {"Morning"}}
	b := models.Availability{"Tuesday": {"Evening"}}

	if got := ss.SuggestSlots(a, b, nil, 14, 5); len(got) != 0 {
		t.Errorf("SuggestSlots() = %v, want empty for disjoint availability", got)
	}
}

func TestSuggestSlotsDefaultsAndDeterminism(t *testing.T) {
	ss := fixedScheduler()
	daily := models.Availability{}
	for _, day := range models.Weekdays {
		daily[day] = []string{"Morning"}
	}

	// Non-positive horizon/maxResults fall back to 14 and 5.
	got := ss.SuggestSlots(daily, daily, nil, 0, 0)
	if len(got) != DefaultMaxResults {
		t.Errorf("SuggestSlots() = %d suggestions, want %d", len(got), DefaultMaxResults)
	}

	again := ss.SuggestSlots(daily, daily, nil, 0, 0)
	if !reflect.DeepEqual(got, again) {
		t.Errorf("repeated scheduling differs: %v vs %v", got, again)
	}
}
