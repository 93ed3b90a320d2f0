package services

import (
	"reflect"
	"testing"

	"knock_server/models"
)

func TestOverlapSlotsOrdering(t *testing.T) {
	a := models.Availability{
		"Sunday":  {"Evening"},
		"Monday":  {"Evening", "Morning"},
		"Tuesday": {"Afternoon"},
	}
	b := models.Availability{
		"Monday":  {"Morning", "Evening"},
		"Tuesday": {"Afternoon"},
		"Sunday":  {"Evening"},
	}

	got := OverlapSlots(a, b)
	want := []models.OverlapSlot{
		{Weekday: "Monday", TimeBand: "Morning"},
		{Weekday: "Monday", TimeBand: "Evening"},
		{Weekday: "Tuesday", TimeBand: "Afternoon"},
		{Weekday: "Sunday", TimeBand: "Evening"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OverlapSlots() = %v, want %v", got, want)
	}
}

func TestOverlapSlotsCaseInsensitive(t *testing.T) {
	a := models.Availability{"monday": {"morning"}}
	b := models.Availability{"Monday": {"Morning"}}

	got := OverlapSlots(a, b)
	want := []models.OverlapSlot{{Weekday: "Monday", TimeBand: "Morning"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OverlapSlots() = %v, want %v", got, want)
	}
}

func TestOverlapSlotsSymmetric(t *testing.T) {
	a := models.Availability{
		"Monday":   {"Morning", "Evening"},
		"Saturday": {"Afternoon"},
	}
	b := models.Availability{
		"Monday":   {"Evening"},
		"Saturday": {"Afternoon", "Evening"},
		"Friday":   {"Morning"},
	}

	if got, reversed := OverlapSlots(a, b), OverlapSlots(b, a); !reflect.DeepEqual(got, reversed) {
		t.Errorf("overlap not symmetric: %v vs %v", got, reversed)
	}
}

func TestOverlapSlotsMissingDayAndNoOverlap(t *testing.T) {
	a := models.Availability{"Monday": {"Morning"}}
	b := models.Availability{"Tuesday": {"Morning"}}
	if got := OverlapSlots(a, b); len(got) != 0 {
		t.Errorf("OverlapSlots() = %v, want empty", got)
	}
	if got := OverlapSlots(a, models.Availability{}); len(got) != 0 {
		t.Errorf("OverlapSlots() with empty side = %v, want empty", got)
	}
}

func TestOverlapSlotsSkipsUnknownBands(t *testing.T) {
	a := models.Availability{"Monday": {"Morning", "Brunch"}}
	b := models.Availability{"Monday": {"brunch", "morning"}}

	got := OverlapSlots(a, b)
	want := []models.OverlapSlot{{Weekday: "Monday", TimeBand: "Morning"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OverlapSlots() = %v, want %v (unknown bands dropped)", got, want)
	}
}
