package models

// TimeSlot is a part of the day, bucketed by the start hour of an activity
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"   // 9-12
	SlotAfternoon TimeSlot = "afternoon" // 12-18
	SlotEvening   TimeSlot = "evening"   // 18-24
)

// TimeSlots lists the slots in display order
var TimeSlots = []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening}

// Label is the human readable name of the slot
func (s TimeSlot) Label() string {
	switch s {
	case SlotMorning:
		return "Morning (9:00-12:00)"
	case SlotAfternoon:
		return "Afternoon (12:00-18:00)"
	case SlotEvening:
		return "Evening (18:00-24:00)"
	default:
		return ""
	}
}

// ParseTimeSlot accepts the slot's wire name
func ParseTimeSlot(s string) (TimeSlot, bool) {
	for _, slot := range TimeSlots {
		if string(slot) == s {
			return slot, true
		}
	}
	return "", false
}
