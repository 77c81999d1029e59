package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lima = time.FixedZone("America/Lima", -5*3600)

func at(hour, minute, second int) time.Time {
	return time.Date(2024, 3, 11, hour, minute, second, 0, lima)
}

func TestComputeLateDecision(t *testing.T) {
	cutoff := TimeOfDay{Hour: 9, Minute: 0}

	cases := []struct {
		name    string
		checkIn time.Time
		want    LateDecision
	}{
		{"quarter past", at(9, 15, 0), LateDecision{IsLate: true, LateMinutes: 15}},
		{"one minute early", at(8, 59, 0), LateDecision{}},
		{"exactly on cutoff", at(9, 0, 0), LateDecision{}},
		{"seconds past cutoff floor to zero", at(9, 0, 30), LateDecision{IsLate: true, LateMinutes: 0}},
		{"ninety seconds floor to one", at(9, 1, 30), LateDecision{IsLate: true, LateMinutes: 1}},
		{"hours late", at(13, 45, 0), LateDecision{IsLate: true, LateMinutes: 285}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ComputeLateDecision(c.checkIn, cutoff))
		})
	}
}

func TestComputeLateDecision_UsesLocalWallClock(t *testing.T) {
	cutoff := TimeOfDay{Hour: 9, Minute: 0}

	// 09:15 in Lima is 14:15 UTC; the decision must follow the wall clock of
	// the timestamp's own location.
	local := at(9, 15, 0)
	assert.Equal(t, LateDecision{IsLate: true, LateMinutes: 15}, ComputeLateDecision(local, cutoff))

	utcMorning := time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, LateDecision{}, ComputeLateDecision(utcMorning, cutoff))
}

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 9, Minute: 30}, got)
	assert.Equal(t, "09:30", got.String())

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
}

func TestHoursWorked(t *testing.T) {
	in := at(9, 0, 0)
	out := at(17, 30, 0)

	hours, err := HoursWorked(in, out)
	require.NoError(t, err)
	assert.InDelta(t, 8.5, hours, 1e-9)
}

func TestHoursWorked_RejectsDifferentDays(t *testing.T) {
	in := at(22, 0, 0)
	out := in.Add(6 * time.Hour)

	_, err := HoursWorked(in, out)
	assert.ErrorIs(t, err, ErrMarksSpanDays)
}

func TestHoursWorked_RejectsReversedMarks(t *testing.T) {
	_, err := HoursWorked(at(17, 0, 0), at(9, 0, 0))
	assert.ErrorIs(t, err, ErrCheckOutBeforeCheckIn)
}

func TestOvertime(t *testing.T) {
	assert.Zero(t, Overtime(7.5))
	assert.Zero(t, Overtime(8))
	assert.InDelta(t, 1.25, Overtime(9.25), 1e-9)
}
