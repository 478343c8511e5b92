package routeplan

import (
	"time"

	"routeplanner/internal/entities"
)

// Batching cutoffs, hours in UTC. Orders placed after the evening cutoff roll
// into the next morning wave.
const (
	morningCutoffHour = 13
	eveningCutoffHour = 19
)

// SlotWindow returns the inclusive order-selection window for a routing run.
// The morning slot reaches back to the evening cutoff of the previous day.
func SlotWindow(date time.Time, slot entities.TimeSlot) (from, to time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	if slot == entities.SlotMorning {
		from = day.AddDate(0, 0, -1).Add(eveningCutoffHour * time.Hour)
		to = day.Add(morningCutoffHour * time.Hour)
		return from, to
	}

	from = day.Add(morningCutoffHour * time.Hour)
	to = day.Add(eveningCutoffHour * time.Hour)
	return from, to
}

// InferSlot picks the slot to generate when the caller did not ask for one.
func InferSlot(now time.Time) entities.TimeSlot {
	if now.Hour() >= morningCutoffHour {
		return entities.SlotAfternoon
	}
	return entities.SlotMorning
}

// WaveFor maps an order creation time to the (date, slot) wave that will
// deliver it. Orders created after the evening cutoff belong to the next
// morning wave.
func WaveFor(createdAt time.Time) (time.Time, entities.TimeSlot) {
	day := time.Date(createdAt.Year(), createdAt.Month(), createdAt.Day(), 0, 0, 0, 0, time.UTC)

	switch {
	case createdAt.Hour() >= eveningCutoffHour:
		return day.AddDate(0, 0, 1), entities.SlotMorning
	case createdAt.Hour() < morningCutoffHour:
		return day, entities.SlotMorning
	default:
		return day, entities.SlotAfternoon
	}
}
