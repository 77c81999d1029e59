package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/andes-hr/hr-backend-go/internal/domain/company"
	"github.com/andes-hr/hr-backend-go/internal/handler/http/response"
	companyservice "github.com/andes-hr/hr-backend-go/internal/service/company"
)

type CompanyHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService *companyservice.CompanyServiceImpl
}

func NewCompanyHandler(companyService *companyservice.CompanyServiceImpl) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// Get implements CompanyHandler.
func (h *CompanyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	c, err := h.companyService.Get(r.Context(), claims.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, c)
}

// Update implements CompanyHandler.
func (h *CompanyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req company.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	c, err := h.companyService.Update(r.Context(), claims.CompanyID, req)
	if err != nil {
		slog.Error("Company update error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company updated", c)
}
