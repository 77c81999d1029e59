package leave

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewRequest_InclusiveDays(t *testing.T) {
	r, err := NewRequest("emp-1", "co-1", date(2024, time.January, 10), date(2024, time.January, 12), "vacation")
	require.NoError(t, err)

	assert.True(t, r.Days.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, RequestStatusPending, r.Status)
}

func TestNewRequest_SingleDay(t *testing.T) {
	r, err := NewRequest("emp-1", "co-1", date(2024, time.March, 5), date(2024, time.March, 5), "appointment")
	require.NoError(t, err)

	assert.True(t, r.Days.Equal(decimal.NewFromInt(1)))
}

func TestNewRequest_ReversedRange(t *testing.T) {
	_, err := NewRequest("emp-1", "co-1", date(2024, time.January, 12), date(2024, time.January, 10), "oops")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestApprove_DeductsBalance(t *testing.T) {
	r, err := NewRequest("emp-1", "co-1", date(2024, time.January, 10), date(2024, time.January, 12), "vacation")
	require.NoError(t, err)

	balance := Balance{EmployeeID: "emp-1", Period: 2024, AvailableDays: decimal.NewFromInt(5)}
	now := time.Now()

	require.NoError(t, r.Approve(&balance, "admin-1", now))

	assert.Equal(t, RequestStatusApproved, r.Status)
	assert.True(t, balance.AvailableDays.Equal(decimal.NewFromInt(2)))
	require.NotNil(t, r.ReviewedBy)
	assert.Equal(t, "admin-1", *r.ReviewedBy)
	assert.NotNil(t, r.ReviewedAt)
}

func TestApprove_InsufficientBalance(t *testing.T) {
	r, err := NewRequest("emp-1", "co-1", date(2024, time.January, 10), date(2024, time.January, 12), "vacation")
	require.NoError(t, err)

	balance := Balance{EmployeeID: "emp-1", Period: 2024, AvailableDays: decimal.NewFromInt(2)}

	err = r.Approve(&balance, "admin-1", time.Now())
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// Nothing moved
	assert.Equal(t, RequestStatusPending, r.Status)
	assert.True(t, balance.AvailableDays.Equal(decimal.NewFromInt(2)))
}

func TestApprove_AlreadyProcessed(t *testing.T) {
	r, err := NewRequest("emp-1", "co-1", date(2024, time.January, 10), date(2024, time.January, 12), "vacation")
	require.NoError(t, err)

	balance := Balance{EmployeeID: "emp-1", Period: 2024, AvailableDays: decimal.NewFromInt(10)}
	require.NoError(t, r.Approve(&balance, "admin-1", time.Now()))

	err = r.Approve(&balance, "admin-1", time.Now())
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
	assert.True(t, balance.AvailableDays.Equal(decimal.NewFromInt(7)), "balance must not be spent twice")
}

func TestReject_RequiresReason(t *testing.T) {
	r, err := NewRequest("emp-1", "co-1", date(2024, time.January, 10), date(2024, time.January, 12), "vacation")
	require.NoError(t, err)

	err = r.Reject("admin-1", "", time.Now())
	assert.ErrorIs(t, err, ErrReasonRequired)
	assert.Equal(t, RequestStatusPending, r.Status)
}

func TestReject_TerminalAndBalanceUntouched(t *testing.T) {
	r, err := NewRequest("emp-1", "co-1", date(2024, time.January, 10), date(2024, time.January, 12), "vacation")
	require.NoError(t, err)

	require.NoError(t, r.Reject("admin-1", "overlapping with team offsite", time.Now()))

	assert.Equal(t, RequestStatusRejected, r.Status)
	require.NotNil(t, r.RejectionReason)
	assert.Equal(t, "overlapping with team offsite", *r.RejectionReason)

	balance := Balance{AvailableDays: decimal.NewFromInt(5)}
	err = r.Approve(&balance, "admin-1", time.Now())
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestOverlaps(t *testing.T) {
	r := Request{StartDate: date(2024, time.January, 10), EndDate: date(2024, time.January, 12)}

	assert.True(t, r.Overlaps(date(2024, time.January, 1), date(2024, time.January, 31)))
	assert.True(t, r.Overlaps(date(2024, time.January, 12), date(2024, time.January, 20)), "single shared day counts")
	assert.True(t, r.Overlaps(date(2024, time.January, 1), date(2024, time.January, 10)))
	assert.False(t, r.Overlaps(date(2024, time.January, 13), date(2024, time.January, 31)))
	assert.False(t, r.Overlaps(date(2024, time.January, 1), date(2024, time.January, 9)))
}
