package attendance

import "errors"

// Attendance domain errors
var (
	// Marking errors
	ErrDuplicateCheckIn  = errors.New("you have already checked in today")
	ErrMissingCheckIn    = errors.New("must check in before checking out")
	ErrDuplicateCheckOut = errors.New("you have already checked out today")
	ErrOutsideGeofence   = errors.New("mark is outside the allowed geofence")
	ErrCoordinateNeeded  = errors.New("coordinates are required to validate the geofence")

	// Derived-computation errors
	ErrMarksSpanDays         = errors.New("check-in and check-out fall on different days")
	ErrCheckOutBeforeCheckIn = errors.New("check-out precedes check-in")

	// General errors
	ErrMarkNotFound     = errors.New("attendance mark not found")
	ErrGeofenceNotFound = errors.New("geofence not found")
	ErrRuleNotFound     = errors.New("attendance rule not found")
)
