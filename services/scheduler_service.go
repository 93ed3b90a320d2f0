package services

import (
	"time"

	"knock_server/models"
)

const (
	// DefaultHorizonDays bounds how far ahead the scheduler searches.
	DefaultHorizonDays = 14
	// DefaultMaxResults caps the suggestions returned per invocation.
	DefaultMaxResults = 5
)

// SlotSchedulerService turns the recurring weekly overlap between two users
// into concrete future dates. Now is injectable so tests can pin the clock.
type SlotSchedulerService struct {
	Now func() time.Time
}

// NewSlotSchedulerService creates a SlotSchedulerService on the wall clock
func NewSlotSchedulerService() *SlotSchedulerService {
	return &SlotSchedulerService{Now: time.Now}
}

// SuggestSlots walks forward from tomorrow up to horizonDays, emitting a
// suggestion for every overlapping (weekday, band) that lands on a
// non-blacked-out date, earliest first, truncated to maxResults. Same-day
// suggestions are never produced. Non-positive horizonDays or maxResults fall
// back to the defaults. An empty overlap returns an empty slice so callers
// can offer a manual time instead.
func (ss *SlotSchedulerService) SuggestSlots(subjectAvail, candidateAvail models.Availability, blackoutDates []string, horizonDays, maxResults int) []models.SlotSuggestion {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	overlap := OverlapSlots(subjectAvail, candidateAvail)
	if len(overlap) == 0 {
		return nil
	}

	// Bands keep canonical Morning→Afternoon→Evening order per weekday.
	bandsByWeekday := make(map[string][]string)
	for _, slot := range overlap {
		bandsByWeekday[slot.Weekday] = append(bandsByWeekday[slot.Weekday], slot.TimeBand)
	}

	blackout := make(map[string]bool, len(blackoutDates))
	for _, date := range blackoutDates {
		if parsed, err := models.ParseDate(date); err == nil {
			blackout[parsed.Format(models.DateLayout)] = true
		}
	}

	today := ss.Now()
	var suggestions []models.SlotSuggestion
	for offset := 1; offset <= horizonDays && len(suggestions) < maxResults; offset++ {
		day := today.AddDate(0, 0, offset)
		date := day.Format(models.DateLayout)
		if blackout[date] {
			continue
		}
		weekday := models.WeekdayName(day.Weekday())
		for _, band := range bandsByWeekday[weekday] {
			suggestions = append(suggestions, models.SlotSuggestion{
				Date:               date,
				Weekday:            weekday,
				TimeBand:           band,
				RepresentativeTime: models.RepresentativeTimes[band],
			})
			if len(suggestions) == maxResults {
				break
			}
		}
	}
	return suggestions
}
