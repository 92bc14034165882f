package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)

	return &t
}

func TestStatusAt_Resident(t *testing.T) {
	c := &Citizen{}

	assert.Equal(t, StatusResident, c.StatusAt(date(2026, 3, 1)))
}

func TestStatusAt_DeceasedWinsOverEverything(t *testing.T) {
	c := &Citizen{
		Deceased:           true,
		TemporaryAbsence:   &ResidencyWindow{From: date(2026, 1, 1)},
		TemporaryResidence: &ResidencyWindow{From: date(2026, 1, 1)},
	}

	assert.Equal(t, StatusDeceased, c.StatusAt(date(2026, 3, 1)))
}

func TestStatusAt_AbsenceWinsOverResidence(t *testing.T) {
	// Both windows active at the same time: absence takes precedence
	// regardless of which was registered first.
	c := &Citizen{
		TemporaryResidence: &ResidencyWindow{From: date(2026, 1, 1), To: datePtr(2026, 12, 31)},
		TemporaryAbsence:   &ResidencyWindow{From: date(2026, 2, 1), To: datePtr(2026, 6, 30)},
	}

	assert.Equal(t, StatusTempAbsent, c.StatusAt(date(2026, 3, 1)))
}

func TestStatusAt_TempResidentWithinWindow(t *testing.T) {
	c := &Citizen{
		TemporaryResidence: &ResidencyWindow{From: date(2026, 1, 1), To: datePtr(2026, 1, 31)},
	}

	assert.Equal(t, StatusTempResident, c.StatusAt(date(2026, 1, 15)))
	// Bounds are inclusive on both ends.
	assert.Equal(t, StatusTempResident, c.StatusAt(date(2026, 1, 1)))
	assert.Equal(t, StatusTempResident, c.StatusAt(date(2026, 1, 31)))
	// Outside the window the citizen is an ordinary resident again.
	assert.Equal(t, StatusResident, c.StatusAt(date(2025, 12, 31)))
	assert.Equal(t, StatusResident, c.StatusAt(date(2026, 2, 1)))
}

func TestStatusAt_OpenEndedWindowNeverExpires(t *testing.T) {
	c := &Citizen{
		TemporaryAbsence: &ResidencyWindow{From: date(2020, 1, 1)},
	}

	assert.Equal(t, StatusTempAbsent, c.StatusAt(date(2026, 3, 1)))
	assert.Equal(t, StatusTempAbsent, c.StatusAt(date(2099, 12, 31)))
}

func TestStatusAt_IgnoresTimeOfDay(t *testing.T) {
	c := &Citizen{
		TemporaryAbsence: &ResidencyWindow{From: date(2026, 1, 10), To: datePtr(2026, 1, 10)},
	}

	late := time.Date(2026, 1, 10, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, StatusTempAbsent, c.StatusAt(late))
}

func TestAgeAt_WholeYears(t *testing.T) {
	birth := date(2012, 3, 15)

	assert.Equal(t, 13, AgeAt(birth, date(2026, 3, 14)))
	assert.Equal(t, 14, AgeAt(birth, date(2026, 3, 15)))
	assert.Equal(t, 14, AgeAt(birth, date(2026, 3, 16)))
}
