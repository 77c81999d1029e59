package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func marks(kinds ...MarkKind) []Mark {
	result := make([]Mark, 0, len(kinds))
	for _, k := range kinds {
		result = append(result, Mark{Kind: k})
	}
	return result
}

func TestStateOf(t *testing.T) {
	assert.Equal(t, DayStateNoMark, StateOf(nil))
	assert.Equal(t, DayStateHasCheckIn, StateOf(marks(MarkKindCheckIn)))
	assert.Equal(t, DayStateComplete, StateOf(marks(MarkKindCheckIn, MarkKindCheckOut)))
}

func TestValidateTransition(t *testing.T) {
	cases := []struct {
		name  string
		state DayState
		kind  MarkKind
		want  error
	}{
		{"first check-in", DayStateNoMark, MarkKindCheckIn, nil},
		{"second check-in", DayStateHasCheckIn, MarkKindCheckIn, ErrDuplicateCheckIn},
		{"check-in after complete day", DayStateComplete, MarkKindCheckIn, ErrDuplicateCheckIn},
		{"check-out before check-in", DayStateNoMark, MarkKindCheckOut, ErrMissingCheckIn},
		{"normal check-out", DayStateHasCheckIn, MarkKindCheckOut, nil},
		{"second check-out", DayStateComplete, MarkKindCheckOut, ErrDuplicateCheckOut},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateTransition(c.state, c.kind)
			if c.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, c.want)
			}
		})
	}
}

func TestValidateTransition_DuplicateCheckInIsNotMissingCheckIn(t *testing.T) {
	err := ValidateTransition(StateOf(marks(MarkKindCheckIn)), MarkKindCheckIn)
	assert.ErrorIs(t, err, ErrDuplicateCheckIn)
	assert.NotErrorIs(t, err, ErrMissingCheckIn)
}
