package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/jmoiron/sqlx/types"
)

const slotLayout = "15:04:05"

// Availability maps weekday code to slot time ("HH:MM:SS") to an open flag.
type Availability map[string]map[string]bool

// DecodeAvailability parses the stored JSON schedule. The shape is not
// checked beyond what JSON decoding requires.
func DecodeAvailability(raw types.JSONText) (Availability, error) {
	var a Availability
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode availability: %w", err)
	}
	if a == nil {
		a = Availability{}
	}
	return a, nil
}

// Encode serialises the schedule for storage.
func (a Availability) Encode() (types.JSONText, error) {
	if a == nil {
		a = Availability{}
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode availability: %w", err)
	}
	return types.JSONText(b), nil
}

// Has reports whether the schedule offers the slot at all.
func (a Availability) Has(day, slot string) bool {
	_, ok := a[day][slot]
	return ok
}

// IsFree reports whether the slot is offered and still open.
func (a Availability) IsFree(day, slot string) bool {
	return a[day][slot]
}

// Close marks an open slot as taken. It returns false when the slot is
// unknown or already closed, leaving the schedule untouched.
func (a Availability) Close(day, slot string) bool {
	if !a.IsFree(day, slot) {
		return false
	}
	a[day][slot] = false
	return true
}

// Slot is one cell of the rendered weekly schedule.
type Slot struct {
	Time  string
	Label string
	Free  bool
}

// DaySchedule is one row of the rendered weekly schedule.
type DaySchedule struct {
	Day   Weekday
	Slots []Slot
}

// FreeCount returns how many slots are still open that day.
func (d DaySchedule) FreeCount() int {
	n := 0
	for _, s := range d.Slots {
		if s.Free {
			n++
		}
	}
	return n
}

// Schedule returns the known weekdays in calendar order with their slots
// sorted by time. Day codes outside Weekdays are skipped.
func (a Availability) Schedule() []DaySchedule {
	out := make([]DaySchedule, 0, len(Weekdays))
	for _, day := range Weekdays {
		slots, ok := a[day.Code]
		if !ok {
			continue
		}
		times := make([]string, 0, len(slots))
		for t := range slots {
			times = append(times, t)
		}
		sort.Strings(times)
		row := DaySchedule{Day: day, Slots: make([]Slot, 0, len(times))}
		for _, t := range times {
			row.Slots = append(row.Slots, Slot{Time: t, Label: SlotLabel(t), Free: slots[t]})
		}
		out = append(out, row)
	}
	return out
}

// NormalizeSlot converts a route fragment such as "8", "10:00" or
// "10:00:00" into the canonical "HH:MM:SS" key.
func NormalizeSlot(raw string) (string, bool) {
	for _, layout := range []string{slotLayout, "15:04", "15"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(slotLayout), true
		}
	}
	return "", false
}

// SlotLabel renders a canonical slot key as "HH:MM".
func SlotLabel(slot string) string {
	t, err := time.Parse(slotLayout, slot)
	if err != nil {
		return slot
	}
	return t.Format("15:04")
}
