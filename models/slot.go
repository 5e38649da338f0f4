package models

// TimeSlots is the fixed catalog of bookable times for every laboratory-exam
// pairing: 09:00-11:30 and 14:00-16:30 in 30 minute increments.
var TimeSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
}

func IsValidSlot(t string) bool {
	for _, s := range TimeSlots {
		if s == t {
			return true
		}
	}
	return false
}

// FreeSlots subtracts the booked times from the fixed slot catalog, preserving
// catalog order.
func FreeSlots(booked []string) []string {
	taken := make(map[string]bool, len(booked))
	for _, b := range booked {
		taken[b] = true
	}
	free := make([]string, 0, len(TimeSlots))
	for _, s := range TimeSlots {
		if !taken[s] {
			free = append(free, s)
		}
	}
	return free
}
