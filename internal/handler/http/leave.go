package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andes-hr/hr-backend-go/internal/domain/leave"
	"github.com/andes-hr/hr-backend-go/internal/domain/user"
	"github.com/andes-hr/hr-backend-go/internal/handler/http/response"
	leaveservice "github.com/andes-hr/hr-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MyRequests(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	MyBalances(w http.ResponseWriter, r *http.Request)
	Balances(w http.ResponseWriter, r *http.Request)
	GrantDays(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService *leaveservice.LeaveServiceImpl
}

func NewLeaveHandler(leaveService *leaveservice.LeaveServiceImpl) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// CreateRequest implements LeaveHandler. Employees file for themselves.
func (h *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if claims.EmployeeID == nil {
		response.Forbidden(w, "Account is not linked to an employee")
		return
	}

	var req leave.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.CreateRequest(r.Context(), *claims.EmployeeID, claims.CompanyID, req)
	if err != nil {
		slog.Error("Leave request create error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", created)
}

// Get implements LeaveHandler.
func (h *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	request, err := h.leaveService.Get(r.Context(), chi.URLParam(r, "requestID"), claims.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Employees may only see their own requests
	if claims.Role == user.RoleEmployee && (claims.EmployeeID == nil || request.EmployeeID != *claims.EmployeeID) {
		response.NotFound(w, "Leave request not found")
		return
	}

	response.Success(w, request)
}

// List implements LeaveHandler. Reviewer view with filters.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := leave.RequestFilter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 20),
	}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := leave.RequestStatus(status)
		filter.Status = &s
	}

	requests, err := h.leaveService.List(r.Context(), filter, claims.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// MyRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) MyRequests(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if claims.EmployeeID == nil {
		response.Forbidden(w, "Account is not linked to an employee")
		return
	}

	filter := leave.RequestFilter{
		EmployeeID: claims.EmployeeID,
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 20),
	}

	requests, err := h.leaveService.List(r.Context(), filter, claims.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID := chi.URLParam(r, "requestID")
	approved, err := h.leaveService.Approve(r.Context(), requestID, claims.CompanyID, claims.UserID)
	if err != nil {
		slog.Error("Leave approve error", "error", err, "request_id", requestID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request approved", "request_id", requestID, "reviewer", claims.UserID)
	response.SuccessWithMessage(w, "Leave request approved", approved)
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.RejectRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	requestID := chi.URLParam(r, "requestID")
	rejected, err := h.leaveService.Reject(r.Context(), requestID, claims.CompanyID, claims.UserID, req)
	if err != nil {
		slog.Error("Leave reject error", "error", err, "request_id", requestID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", rejected)
}

// MyBalances implements LeaveHandler.
func (h *LeaveHandlerImpl) MyBalances(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if claims.EmployeeID == nil {
		response.Forbidden(w, "Account is not linked to an employee")
		return
	}

	balances, err := h.leaveService.Balances(r.Context(), *claims.EmployeeID, claims.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}

// Balances implements LeaveHandler. Reviewer view of any employee.
func (h *LeaveHandlerImpl) Balances(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	balances, err := h.leaveService.Balances(r.Context(), chi.URLParam(r, "employeeID"), claims.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}

// GrantDays implements LeaveHandler.
func (h *LeaveHandlerImpl) GrantDays(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.GrantDaysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	balance, err := h.leaveService.GrantDays(r.Context(), chi.URLParam(r, "employeeID"), claims.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave days granted", balance)
}
