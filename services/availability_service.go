package services

import (
	"knock_server/models"
)

// OverlapSlots returns the (weekday, time band) combinations present in both
// availability maps, iterated Monday→Sunday and Morning→Afternoon→Evening so
// output order is deterministic. Unrecognized band values are dropped rather
// than treated as errors; strict shape checks belong to Profile.Validate.
func OverlapSlots(a, b models.Availability) []models.OverlapSlot {
	var slots []models.OverlapSlot
	for _, day := range models.Weekdays {
		aBands := a.Bands(day)
		if len(aBands) == 0 {
			continue
		}
		bBands := b.Bands(day)
		for _, band := range models.TimeBands {
			if aBands[band] && bBands[band] {
				slots = append(slots, models.OverlapSlot{Weekday: day, TimeBand: band})
			}
		}
	}
	return slots
}
