package attendance

import (
	"time"

	"github.com/andes-hr/hr-backend-go/internal/pkg/geo"
	"github.com/andes-hr/hr-backend-go/internal/pkg/validator"
)

type MarkRequest struct {
	Kind      string   `json:"kind"`
	Latitude  *float64 `json:"lat,omitempty"`
	Longitude *float64 `json:"lng,omitempty"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Kind, []string{string(MarkKindCheckIn), string(MarkKindCheckOut)}) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be check_in or check_out"})
	}
	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{Field: "lat", Message: "lat and lng must be provided together"})
	}
	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{Field: "lat", Message: "must be between -90 and 90"})
	}
	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{Field: "lng", Message: "must be between -180 and 180"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *MarkRequest) Coordinate() *geo.Coordinate {
	if r.Latitude == nil || r.Longitude == nil {
		return nil
	}
	return &geo.Coordinate{Latitude: *r.Latitude, Longitude: *r.Longitude}
}

type MarkResponse struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employee_id"`
	EmployeeName   *string  `json:"employee_name,omitempty"`
	Kind           string   `json:"kind"`
	RecordedAt     string   `json:"recorded_at"`
	Latitude       *float64 `json:"lat,omitempty"`
	Longitude      *float64 `json:"lng,omitempty"`
	InsideGeofence bool     `json:"inside_geofence"`
	IsLate         bool     `json:"is_late"`
	LateMinutes    int      `json:"late_minutes"`
}

func ToMarkResponse(m Mark) MarkResponse {
	return MarkResponse{
		ID:             m.ID,
		EmployeeID:     m.EmployeeID,
		EmployeeName:   m.EmployeeName,
		Kind:           string(m.Kind),
		RecordedAt:     m.RecordedAt.UTC().Format(time.RFC3339),
		Latitude:       m.Latitude,
		Longitude:      m.Longitude,
		InsideGeofence: m.InsideGeofence,
		IsLate:         m.IsLate,
		LateMinutes:    m.LateMinutes,
	}
}

type MarkFilter struct {
	EmployeeID *string
	Kind       *MarkKind
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

type ListMarksResponse struct {
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	Marks      []MarkResponse `json:"marks"`
}

// DaySummaryResponse reports one employee-day: the raw marks plus derived
// hours. Hours are only present once the day is complete.
type DaySummaryResponse struct {
	Date        string   `json:"date"`
	CheckIn     *string  `json:"check_in,omitempty"`
	CheckOut    *string  `json:"check_out,omitempty"`
	IsLate      bool     `json:"is_late"`
	LateMinutes int      `json:"late_minutes"`
	HoursWorked *float64 `json:"hours_worked,omitempty"`
	Overtime    *float64 `json:"overtime,omitempty"`
}

type CreateGeofenceRequest struct {
	Name         string           `json:"name"`
	Kind         string           `json:"kind"`
	Active       bool             `json:"active"`
	Center       *geo.Coordinate  `json:"center,omitempty"`
	RadiusMeters float64          `json:"radius_m,omitempty"`
	Vertices     []geo.Coordinate `json:"vertices,omitempty"`
}

func (r *CreateGeofenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	switch geo.FenceKind(r.Kind) {
	case geo.FenceKindCircle:
		if r.Center == nil {
			errs = append(errs, validator.ValidationError{Field: "center", Message: "is required for circle fences"})
		}
		if r.RadiusMeters <= 0 {
			errs = append(errs, validator.ValidationError{Field: "radius_m", Message: "must be positive"})
		}
	case geo.FenceKindPolygon:
		if len(r.Vertices) < 3 {
			errs = append(errs, validator.ValidationError{Field: "vertices", Message: "at least 3 vertices required"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be circle or polygon"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Fence builds the geometry value from a validated request.
func (r *CreateGeofenceRequest) Fence() geo.Fence {
	return geo.Fence{
		Kind:         geo.FenceKind(r.Kind),
		Active:       r.Active,
		Center:       r.Center,
		RadiusMeters: r.RadiusMeters,
		Vertices:     r.Vertices,
	}
}

type GeofenceResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Kind         string           `json:"kind"`
	Active       bool             `json:"active"`
	Center       *geo.Coordinate  `json:"center,omitempty"`
	RadiusMeters float64          `json:"radius_m,omitempty"`
	Vertices     []geo.Coordinate `json:"vertices,omitempty"`
}

func ToGeofenceResponse(g Geofence) GeofenceResponse {
	return GeofenceResponse{
		ID:           g.ID,
		Name:         g.Name,
		Kind:         string(g.Fence.Kind),
		Active:       g.Fence.Active,
		Center:       g.Fence.Center,
		RadiusMeters: g.Fence.RadiusMeters,
		Vertices:     g.Fence.Vertices,
	}
}

type UpsertRuleRequest struct {
	Cutoff     string  `json:"cutoff"`
	GeofenceID *string `json:"geofence_id,omitempty"`
}

func (r *UpsertRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidTimeOfDay(r.Cutoff) {
		errs = append(errs, validator.ValidationError{Field: "cutoff", Message: "must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RuleResponse struct {
	ID         string  `json:"id"`
	Cutoff     string  `json:"cutoff"`
	GeofenceID *string `json:"geofence_id,omitempty"`
}

func ToRuleResponse(r Rule) RuleResponse {
	return RuleResponse{
		ID:         r.ID,
		Cutoff:     r.Cutoff.String(),
		GeofenceID: r.GeofenceID,
	}
}
