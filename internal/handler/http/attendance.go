package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/andes-hr/hr-backend-go/internal/domain/attendance"
	"github.com/andes-hr/hr-backend-go/internal/handler/http/response"
	attendanceservice "github.com/andes-hr/hr-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	ListMarks(w http.ResponseWriter, r *http.Request)
	MyDaySummary(w http.ResponseWriter, r *http.Request)
	CreateGeofence(w http.ResponseWriter, r *http.Request)
	ListGeofences(w http.ResponseWriter, r *http.Request)
	DeleteGeofence(w http.ResponseWriter, r *http.Request)
	GetRule(w http.ResponseWriter, r *http.Request)
	UpsertRule(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService *attendanceservice.AttendanceServiceImpl
}

func NewAttendanceHandler(attendanceService *attendanceservice.AttendanceServiceImpl) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Mark implements AttendanceHandler. The employee is taken from the token,
// never from the body.
func (h *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if claims.EmployeeID == nil {
		response.Forbidden(w, "Account is not linked to an employee")
		return
	}

	var req attendance.MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	mark, err := h.attendanceService.Mark(r.Context(), *claims.EmployeeID, claims.CompanyID, req)
	if err != nil {
		slog.Error("Attendance mark error", "error", err, "employee_id", *claims.EmployeeID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", mark)
}

// ListMarks implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListMarks(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := attendance.MarkFilter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 20),
	}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if kind := r.URL.Query().Get("kind"); kind != "" {
		k := attendance.MarkKind(kind)
		filter.Kind = &k
	}
	if from := r.URL.Query().Get("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			filter.From = &t
		}
	}
	if to := r.URL.Query().Get("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			end := t.Add(24*time.Hour - time.Second)
			filter.To = &end
		}
	}

	marks, err := h.attendanceService.ListMarks(r.Context(), filter, claims.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, marks)
}

// MyDaySummary implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MyDaySummary(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if claims.EmployeeID == nil {
		response.Forbidden(w, "Account is not linked to an employee")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		response.BadRequest(w, "date must be YYYY-MM-DD", nil)
		return
	}

	summary, err := h.attendanceService.DaySummary(r.Context(), *claims.EmployeeID, claims.CompanyID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// CreateGeofence implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CreateGeofence(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.CreateGeofenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.attendanceService.CreateGeofence(r.Context(), claims.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Geofence created", created)
}

// ListGeofences implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListGeofences(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	fences, err := h.attendanceService.ListGeofences(r.Context(), claims.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, fences)
}

// DeleteGeofence implements AttendanceHandler.
func (h *AttendanceHandlerImpl) DeleteGeofence(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.attendanceService.DeleteGeofence(r.Context(), chi.URLParam(r, "geofenceID"), claims.CompanyID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Geofence deleted", nil)
}

// GetRule implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetRule(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rule, err := h.attendanceService.GetRule(r.Context(), claims.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rule)
}

// UpsertRule implements AttendanceHandler.
func (h *AttendanceHandlerImpl) UpsertRule(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.UpsertRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rule, err := h.attendanceService.UpsertRule(r.Context(), claims.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance rule saved", rule)
}
