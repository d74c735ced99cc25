// Package allocation detects resources booked above full capacity.
//
// Allocation percentages are never capped when written. Instead the peak load
// of each resource is computed over its date-overlapping task assignments and
// reported as a warning.
package allocation

import (
	"fmt"
	"sort"
	"time"
)

// Threshold is the load above which a resource is over-allocated
const Threshold = 100.0

// Booking is one task assignment of a resource with the task's dates.
// Dates are inclusive.
type Booking struct {
	ResourceID string
	TaskID     string
	StartDate  time.Time
	EndDate    time.Time
	Percentage float64
}

// Warning describes the worst overlap of one resource
type Warning struct {
	ResourceID  string    `json:"resourceId"`
	PeakPercent float64   `json:"peakPercent"`
	From        time.Time `json:"from"`
	To          time.Time `json:"to"`
	TaskIDs     []string  `json:"taskIds"`
	Message     string    `json:"message"`
}

type event struct {
	at    time.Time
	delta float64
	task  string
	start bool
}

// Peak returns the highest summed allocation over the bookings of a single
// resource, the first day range at which it occurs and the tasks active then.
func Peak(bookings []Booking) (peak float64, from, to time.Time, tasks []string) {
	events := make([]event, 0, len(bookings)*2)
	for _, b := range bookings {
		if b.EndDate.Before(b.StartDate) {
			continue
		}
		events = append(events,
			event{at: b.StartDate, delta: b.Percentage, task: b.TaskID, start: true},
			// the booking ends after its last day
			event{at: b.EndDate.AddDate(0, 0, 1), delta: -b.Percentage, task: b.TaskID},
		)
	}
	// ends sort before starts on the same day: a task ending on the 9th does
	// not overlap one starting on the 10th
	sort.Slice(events, func(i, j int) bool {
		if !events[i].at.Equal(events[j].at) {
			return events[i].at.Before(events[j].at)
		}
		return !events[i].start && events[j].start
	})

	active := map[string]int{}
	var load float64
	peakOpen := false
	for i, e := range events {
		load += e.delta
		if e.start {
			active[e.task]++
		} else if active[e.task]--; active[e.task] <= 0 {
			delete(active, e.task)
		}
		// only evaluate once every event of this instant is applied
		if i+1 < len(events) && events[i+1].at.Equal(e.at) {
			continue
		}
		if load > peak+1e-9 {
			peak = load
			from = e.at
			tasks = sortedKeys(active)
			peakOpen = true
			continue
		}
		if peakOpen {
			to = e.at.AddDate(0, 0, -1)
			peakOpen = false
		}
	}
	return peak, from, to, tasks
}

// Check groups bookings by resource and returns a warning for every resource
// in scope whose peak exceeds Threshold. An empty scope checks every resource.
// Warnings are ordered by resource id.
func Check(bookings []Booking, scope []string) []Warning {
	byResource := map[string][]Booking{}
	for _, b := range bookings {
		byResource[b.ResourceID] = append(byResource[b.ResourceID], b)
	}

	ids := scope
	if len(ids) == 0 {
		ids = sortedKeys(byResource)
	}

	var warnings []Warning
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		peak, from, to, tasks := Peak(byResource[id])
		if peak <= Threshold {
			continue
		}
		warnings = append(warnings, Warning{
			ResourceID:  id,
			PeakPercent: peak,
			From:        from,
			To:          to,
			TaskIDs:     tasks,
			Message: fmt.Sprintf("resource %s is allocated %.0f%% between %s and %s",
				id, peak, from.Format("2006-01-02"), to.Format("2006-01-02")),
		})
	}
	sort.Slice(warnings, func(i, j int) bool { return warnings[i].ResourceID < warnings[j].ResourceID })
	return warnings
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
