package attendance

// DayState is the per-(employee, calendar day) marking state.
type DayState int

const (
	DayStateNoMark DayState = iota
	DayStateHasCheckIn
	DayStateComplete
)

// StateOf derives the day's state from its recorded marks.
func StateOf(marks []Mark) DayState {
	var hasIn, hasOut bool
	for _, m := range marks {
		switch m.Kind {
		case MarkKindCheckIn:
			hasIn = true
		case MarkKindCheckOut:
			hasOut = true
		}
	}
	switch {
	case hasIn && hasOut:
		return DayStateComplete
	case hasIn:
		return DayStateHasCheckIn
	default:
		return DayStateNoMark
	}
}

// ValidateTransition enforces the one-entry/one-exit state machine: a
// check-in only from NoMark, a check-out only from HasCheckIn, nothing once
// the day is complete.
func ValidateTransition(state DayState, kind MarkKind) error {
	switch kind {
	case MarkKindCheckIn:
		if state != DayStateNoMark {
			return ErrDuplicateCheckIn
		}
	case MarkKindCheckOut:
		switch state {
		case DayStateNoMark:
			return ErrMissingCheckIn
		case DayStateComplete:
			return ErrDuplicateCheckOut
		}
	}
	return nil
}
