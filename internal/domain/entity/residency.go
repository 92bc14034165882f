package entity

import "time"

// ResidencyStatus is the derived residency state of a citizen. It is a
// view over the record and wall-clock time, never persisted.
type ResidencyStatus string

const (
	StatusResident     ResidencyStatus = "RESIDENT"
	StatusTempResident ResidencyStatus = "TEMP_RESIDENT"
	StatusTempAbsent   ResidencyStatus = "TEMP_ABSENT"
	StatusDeceased     ResidencyStatus = "DECEASED"
)

// StatusAt derives the citizen's residency status at the given moment.
// Precedence, highest first: deceased, temporary absence, temporary
// residence, resident. Window bounds are inclusive at calendar-date
// granularity; a window without an end date stays active indefinitely.
//
// This is the single place the precedence rules live. Callers must
// re-evaluate on every read since the result depends on the clock.
func (c *Citizen) StatusAt(now time.Time) ResidencyStatus {
	if c.Deceased {
		return StatusDeceased
	}
	if c.TemporaryAbsence.Contains(now) {
		return StatusTempAbsent
	}
	if c.TemporaryResidence.Contains(now) {
		return StatusTempResident
	}

	return StatusResident
}

// Contains reports whether the given day falls inside the window.
// A nil window contains nothing.
func (w *ResidencyWindow) Contains(day time.Time) bool {
	if w == nil {
		return false
	}
	if beforeDay(day, w.From) {
		return false
	}
	if w.To != nil && beforeDay(*w.To, day) {
		return false
	}

	return true
}
