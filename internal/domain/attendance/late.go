package attendance

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time without a date, used for tardiness cutoffs.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) seconds() int {
	return (t.Hour*60 + t.Minute) * 60
}

// LateDecision is derived from a check-in timestamp against a cutoff; it is
// stored on the mark but never recomputed afterwards.
type LateDecision struct {
	IsLate      bool `json:"is_late"`
	LateMinutes int  `json:"late_minutes"`
}

// ComputeLateDecision compares the check-in's local wall-clock time-of-day
// with the cutoff. Strictly after the cutoff counts as late; the late amount
// is the floor of the difference in whole minutes, so a 09:00:30 check-in
// against a 09:00 cutoff is late by zero minutes.
func ComputeLateDecision(checkIn time.Time, cutoff TimeOfDay) LateDecision {
	secondsInto := checkIn.Hour()*3600 + checkIn.Minute()*60 + checkIn.Second()
	if secondsInto <= cutoff.seconds() {
		return LateDecision{}
	}
	return LateDecision{IsLate: true, LateMinutes: (secondsInto - cutoff.seconds()) / 60}
}

// HoursWorked returns the span between check-in and check-out in hours. Both
// marks must fall on the same calendar day in the check-in's location.
func HoursWorked(checkIn, checkOut time.Time) (float64, error) {
	out := checkOut.In(checkIn.Location())
	sameDay := checkIn.Year() == out.Year() && checkIn.YearDay() == out.YearDay()
	if !sameDay {
		return 0, ErrMarksSpanDays
	}
	if out.Before(checkIn) {
		return 0, ErrCheckOutBeforeCheckIn
	}
	return out.Sub(checkIn).Hours(), nil
}

// Overtime is the portion of a day's worked hours beyond the standard eight.
func Overtime(hoursWorked float64) float64 {
	if hoursWorked <= 8 {
		return 0
	}
	return hoursWorked - 8
}
