package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Request is a leave petition. Created pending; approval and rejection are
// both terminal.
type Request struct {
	ID              string
	EmployeeID      string
	CompanyID       string
	StartDate       time.Time
	EndDate         time.Time
	Days            decimal.Decimal
	Reason          string
	Status          RequestStatus
	RejectionReason *string
	ReviewedBy      *string
	ReviewedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
}

// Period is the balance year the request draws from.
func (r Request) Period() int {
	return r.StartDate.Year()
}

// Overlaps reports whether the request touches [from, to] (inclusive).
func (r Request) Overlaps(from, to time.Time) bool {
	return !r.StartDate.After(to) && !r.EndDate.Before(from)
}

// Balance is the remaining leave-day allowance for an employee in a period
// (year). It only ever shrinks, and never below zero.
type Balance struct {
	ID            string
	EmployeeID    string
	Period        int
	AvailableDays decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewRequest builds a pending request, deriving the inclusive day count.
func NewRequest(employeeID, companyID string, startDate, endDate time.Time, reason string) (Request, error) {
	if endDate.Before(startDate) {
		return Request{}, ErrInvalidRange
	}
	days := inclusiveDays(startDate, endDate)
	return Request{
		EmployeeID: employeeID,
		CompanyID:  companyID,
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       days,
		Reason:     reason,
		Status:     RequestStatusPending,
	}, nil
}

func inclusiveDays(start, end time.Time) decimal.Decimal {
	days := int64(end.Sub(start).Hours()/24) + 1
	return decimal.NewFromInt(days)
}

// Approve consumes days from the balance and moves the request to its
// approved terminal state. Neither value is touched when the guard fails, so
// the caller can persist both or nothing.
func (r *Request) Approve(balance *Balance, reviewerID string, now time.Time) error {
	if r.Status != RequestStatusPending {
		return ErrAlreadyProcessed
	}
	if balance.AvailableDays.LessThan(r.Days) {
		return ErrInsufficientBalance
	}

	balance.AvailableDays = balance.AvailableDays.Sub(r.Days)
	r.Status = RequestStatusApproved
	r.RejectionReason = nil
	r.ReviewedBy = &reviewerID
	r.ReviewedAt = &now
	return nil
}

// Reject moves the request to its rejected terminal state. A reason is
// mandatory; the balance is never touched.
func (r *Request) Reject(reviewerID string, reason string, now time.Time) error {
	if r.Status != RequestStatusPending {
		return ErrAlreadyProcessed
	}
	if reason == "" {
		return ErrReasonRequired
	}

	r.Status = RequestStatusRejected
	r.RejectionReason = &reason
	r.ReviewedBy = &reviewerID
	r.ReviewedAt = &now
	return nil
}
