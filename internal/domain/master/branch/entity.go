package branch

import "time"

// Branch is a company office location. Timezone is an IANA name used to
// resolve the local working day for attendance marks.
type Branch struct {
	ID        string
	CompanyID string
	Name      string
	Address   *string
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
