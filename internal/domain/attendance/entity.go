package attendance

import (
	"time"

	"github.com/andes-hr/hr-backend-go/internal/pkg/geo"
)

type MarkKind string

const (
	MarkKindCheckIn  MarkKind = "check_in"
	MarkKindCheckOut MarkKind = "check_out"
)

// Mark is a single clock event. Marks are created once and never mutated;
// the one-check-in/one-check-out-per-day rule is enforced at recording time,
// not by the entity.
type Mark struct {
	ID             string
	EmployeeID     string
	CompanyID      string
	Kind           MarkKind
	RecordedAt     time.Time // UTC instant
	DateLocal      string    // "YYYY-MM-DD" in the branch timezone; keys the per-day rule
	Latitude       *float64
	Longitude      *float64
	InsideGeofence bool
	IsLate         bool
	LateMinutes    int
	CreatedAt      time.Time

	// Joined fields
	EmployeeName *string
}

func (m Mark) Coordinate() *geo.Coordinate {
	if m.Latitude == nil || m.Longitude == nil {
		return nil
	}
	return &geo.Coordinate{Latitude: *m.Latitude, Longitude: *m.Longitude}
}

// Geofence is a named fence owned by a company. The geometry and the
// containment test live in the geo package.
type Geofence struct {
	ID        string
	CompanyID string
	Name      string
	Fence     geo.Fence
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Rule is the per-company attendance policy: the tardiness cutoff and an
// optional geofence that marks must fall inside.
type Rule struct {
	ID         string
	CompanyID  string
	Cutoff     TimeOfDay
	GeofenceID *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DefaultCutoff applies when a company has no rule row.
var DefaultCutoff = TimeOfDay{Hour: 9, Minute: 0}
