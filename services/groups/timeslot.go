package groups

import (
	"Gamehub/models"
	"Gamehub/utils"
	"sort"
	"time"
)

// Slot boundaries as hours of the day, half-open [start, end)
const (
	morningStartHour   = 9
	afternoonStartHour = 12
	eveningStartHour   = 18
)

// SlotOf buckets an instant by its hour of day in t's location.
// Hours before 9 count as evening.
func SlotOf(t time.Time) models.TimeSlot {
	h := t.Hour()
	switch {
	case h >= morningStartHour && h < afternoonStartHour:
		return models.SlotMorning
	case h >= afternoonStartHour && h < eveningStartHour:
		return models.SlotAfternoon
	default:
		return models.SlotEvening
	}
}

// SlotBounds returns the start and end instants of slot on date's calendar
// day, in date's location. The evening ends at the following midnight.
func SlotBounds(date time.Time, slot models.TimeSlot) (time.Time, time.Time) {
	day := utils.StartOfDay(date)
	switch slot {
	case models.SlotMorning:
		return atHour(day, morningStartHour), atHour(day, afternoonStartHour)
	case models.SlotAfternoon:
		return atHour(day, afternoonStartHour), atHour(day, eveningStartHour)
	default:
		return atHour(day, eveningStartHour), day.AddDate(0, 0, 1)
	}
}

func atHour(day time.Time, h int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), h, 0, 0, 0, day.Location())
}

// GroupsForTimeSlot returns the groups starting on date's day whose start
// falls in slot and whose end is not before now, ordered by start time.
func GroupsForTimeSlot(groups []models.GameGroup, date time.Time, slot models.TimeSlot, now time.Time) []models.GameGroup {
	loc := date.Location()
	out := make([]models.GameGroup, 0)
	for _, g := range groups {
		if !utils.SameDay(g.StartTime, date, loc) {
			continue
		}
		if g.EndTime.Before(now) {
			continue
		}
		if SlotOf(g.StartTime.In(loc)) != slot {
			continue
		}
		out = append(out, g.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

// Recruiting keeps the groups that still have room
func Recruiting(groups []models.GameGroup) []models.GameGroup {
	out := make([]models.GameGroup, 0)
	for _, g := range groups {
		if g.IsRecruiting && !g.IsFull() {
			out = append(out, g)
		}
	}
	return out
}

// AvailableUsers returns the plans on date whose owners are willing to join
// others and whose window lies entirely inside slot. Informational only:
// nobody is added to a group because of it.
func AvailableUsers(plans []models.GamePlan, date time.Time, slot models.TimeSlot) []models.GamePlan {
	start, end := SlotBounds(date, slot)
	out := make([]models.GamePlan, 0)
	for _, p := range plans {
		if !p.WillingToJoinOthers {
			continue
		}
		if !utils.SameDay(p.Date, date, date.Location()) {
			continue
		}
		if p.StartTime.Before(start) || p.EndTime.After(end) {
			continue
		}
		out = append(out, p)
	}
	return out
}
