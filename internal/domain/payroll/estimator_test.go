package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andes-hr/hr-backend-go/internal/domain/employee"
	"github.com/andes-hr/hr-backend-go/internal/domain/leave"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func worker(id, first, last string) employee.Employee {
	return employee.Employee{ID: id, FirstName: first, LastName: last, Status: employee.StatusActive}
}

func activeContract(id string, salary int64) employee.Contract {
	return employee.Contract{
		ID:        id,
		Kind:      employee.ContractKindPermanent,
		StartDate: date(2023, time.January, 1),
		Salary:    decimal.NewFromInt(salary),
		IsActive:  true,
	}
}

func rejectedLeave(start, end time.Time) leave.Request {
	days := int64(end.Sub(start).Hours()/24) + 1
	return leave.Request{
		StartDate: start,
		EndDate:   end,
		Days:      decimal.NewFromInt(days),
		Status:    leave.RequestStatusRejected,
	}
}

func TestCompute_FullMonth(t *testing.T) {
	est := Compute(date(2024, time.February, 1), date(2024, time.February, 29), []EmployeeInput{
		{
			Employee:      worker("emp-1", "Ana", "Quispe"),
			Contracts:     []employee.Contract{activeContract("c-1", 3000)},
			HasAttendance: true,
		},
	})

	require.Len(t, est.Lines, 1)
	assert.Empty(t, est.Issues)
	assert.Equal(t, "30", est.Lines[0].DaysWorked.String())
	assert.Equal(t, "3000.00", est.Lines[0].Payment.StringFixed(2))
	assert.Equal(t, "3000.00", est.Total.StringFixed(2))
}

func TestCompute_UnexcusedDaysReducePayment(t *testing.T) {
	est := Compute(date(2024, time.March, 1), date(2024, time.March, 31), []EmployeeInput{
		{
			Employee:      worker("emp-1", "Ana", "Quispe"),
			Contracts:     []employee.Contract{activeContract("c-1", 3000)},
			HasAttendance: true,
			RejectedLeaves: []leave.Request{
				rejectedLeave(date(2024, time.March, 10), date(2024, time.March, 14)),
			},
		},
	})

	require.Len(t, est.Lines, 1)
	line := est.Lines[0]
	assert.Equal(t, "5", line.UnexcusedDays.String())
	assert.Equal(t, "25", line.DaysWorked.String())
	// 3000 / 30 * 25
	assert.Equal(t, "2500.00", line.Payment.StringFixed(2))
}

func TestCompute_HalfDayLeavesKeepFraction(t *testing.T) {
	halfDay := leave.Request{
		StartDate: date(2024, time.March, 11),
		EndDate:   date(2024, time.March, 13),
		Days:      decimal.RequireFromString("2.5"),
		Status:    leave.RequestStatusRejected,
	}

	est := Compute(date(2024, time.March, 1), date(2024, time.March, 31), []EmployeeInput{
		{
			Employee:       worker("emp-1", "Ana", "Quispe"),
			Contracts:      []employee.Contract{activeContract("c-1", 3000)},
			HasAttendance:  true,
			RejectedLeaves: []leave.Request{halfDay},
		},
	})

	require.Len(t, est.Lines, 1)
	line := est.Lines[0]
	assert.Equal(t, "2.5", line.UnexcusedDays.String())
	assert.Equal(t, "27.5", line.DaysWorked.String())
	// 3000 / 30 * 27.5
	assert.Equal(t, "2750.00", line.Payment.StringFixed(2))
}

func TestCompute_NoContractSkipsWithErrorIssue(t *testing.T) {
	est := Compute(date(2024, time.March, 1), date(2024, time.March, 31), []EmployeeInput{
		{
			Employee:      worker("emp-1", "Ana", "Quispe"),
			HasAttendance: true,
		},
		{
			Employee:      worker("emp-2", "Luis", "Mamani"),
			Contracts:     []employee.Contract{activeContract("c-2", 1500)},
			HasAttendance: true,
		},
	})

	require.Len(t, est.Lines, 1)
	assert.Equal(t, "emp-2", est.Lines[0].EmployeeID)

	require.Len(t, est.Issues, 1)
	assert.Equal(t, "emp-1", est.Issues[0].EmployeeID)
	assert.Equal(t, IssueLevelError, est.Issues[0].Level)
	assert.Equal(t, "1500.00", est.Total.StringFixed(2))
}

func TestCompute_NoAttendanceWarnsButStillPays(t *testing.T) {
	est := Compute(date(2024, time.March, 1), date(2024, time.March, 31), []EmployeeInput{
		{
			Employee:  worker("emp-1", "Ana", "Quispe"),
			Contracts: []employee.Contract{activeContract("c-1", 3000)},
		},
	})

	require.Len(t, est.Lines, 1)
	assert.Equal(t, "3000.00", est.Lines[0].Payment.StringFixed(2))

	require.Len(t, est.Issues, 1)
	assert.Equal(t, IssueLevelWarning, est.Issues[0].Level)
}

func TestCompute_DaysWorkedFloorsAtZero(t *testing.T) {
	est := Compute(date(2024, time.March, 1), date(2024, time.March, 31), []EmployeeInput{
		{
			Employee:      worker("emp-1", "Ana", "Quispe"),
			Contracts:     []employee.Contract{activeContract("c-1", 3000)},
			HasAttendance: true,
			RejectedLeaves: []leave.Request{
				rejectedLeave(date(2024, time.March, 1), date(2024, time.March, 20)),
				rejectedLeave(date(2024, time.February, 20), date(2024, time.March, 10)),
			},
		},
	})

	require.Len(t, est.Lines, 1)
	assert.Equal(t, "40", est.Lines[0].UnexcusedDays.String())
	assert.True(t, est.Lines[0].DaysWorked.IsZero())
	assert.True(t, est.Lines[0].Payment.IsZero())
}

func TestCompute_LegacyContractFallback(t *testing.T) {
	est := Compute(date(2024, time.March, 1), date(2024, time.March, 31), []EmployeeInput{
		{
			Employee: worker("emp-1", "Ana", "Quispe"),
			LegacyContracts: []employee.LegacyContract{
				{ID: "lc-1", StartDate: date(2022, time.June, 1), Salary: decimal.NewFromInt(1200), IsActive: true},
			},
			HasAttendance: true,
		},
	})

	require.Len(t, est.Lines, 1)
	assert.True(t, est.Lines[0].LegacyContract)
	assert.Equal(t, "1200.00", est.Lines[0].Payment.StringFixed(2))
}

func TestUnexcusedDays_OverlapBoundaries(t *testing.T) {
	periodStart := date(2024, time.March, 1)
	periodEnd := date(2024, time.March, 31)

	cases := []struct {
		name  string
		leave leave.Request
		want  string
	}{
		{"fully inside", rejectedLeave(date(2024, time.March, 10), date(2024, time.March, 12)), "3"},
		{"straddles period start", rejectedLeave(date(2024, time.February, 28), date(2024, time.March, 2)), "4"},
		{"straddles period end", rejectedLeave(date(2024, time.March, 30), date(2024, time.April, 2)), "4"},
		{"ends on period start", rejectedLeave(date(2024, time.February, 25), date(2024, time.March, 1)), "6"},
		{"entirely before", rejectedLeave(date(2024, time.February, 1), date(2024, time.February, 5)), "0"},
		{"entirely after", rejectedLeave(date(2024, time.April, 1), date(2024, time.April, 5)), "0"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := UnexcusedDays(periodStart, periodEnd, []leave.Request{c.leave})
			assert.Equal(t, c.want, got.String())
		})
	}
}

func TestUnexcusedDays_IgnoresNonRejected(t *testing.T) {
	approved := rejectedLeave(date(2024, time.March, 10), date(2024, time.March, 12))
	approved.Status = leave.RequestStatusApproved

	got := UnexcusedDays(date(2024, time.March, 1), date(2024, time.March, 31), []leave.Request{approved})
	assert.True(t, got.IsZero())
}
