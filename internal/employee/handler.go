package employee

import (
	"context"
	"net/http"

	"github.com/frahmantamala/hrms-lite/internal/transport"
)

type ServiceAPI interface {
	ListEmployees(ctx context.Context) ([]*Employee, error)
	GetEmployee(ctx context.Context, employeeID string) (*Employee, error)
	CreateEmployee(ctx context.Context, dto CreateEmployeeDTO) (*Employee, error)
	UpdateEmployee(ctx context.Context, employeeID string, dto UpdateEmployeeDTO) (*Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

// ListEmployees handles GET /employees
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.ListEmployees(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "", employees)
}

// CreateEmployee handles POST /employees
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var dto CreateEmployeeDTO
	if appErr := h.DecodeJSON(r, &dto); appErr != nil {
		h.Log(r).Warn("CreateEmployee: invalid request body", "error", appErr.Cause)
		h.HandleError(w, r, appErr)
		return
	}

	employee, err := h.Service.CreateEmployee(r.Context(), dto)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.Log(r).Info("CreateEmployee: employee created successfully", "employee_id", employee.EmployeeID)
	h.WriteSuccess(w, http.StatusCreated, "Employee created successfully", employee)
}

// GetEmployee handles GET /employees/{id}
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employee, err := h.Service.GetEmployee(r.Context(), transport.URLParam(r, "id"))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "", employee)
}

// UpdateEmployee handles PUT /employees/{id}
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := transport.URLParam(r, "id")

	var dto UpdateEmployeeDTO
	if appErr := h.DecodeJSON(r, &dto); appErr != nil {
		h.Log(r).Warn("UpdateEmployee: invalid request body", "error", appErr.Cause, "employee_id", employeeID)
		h.HandleError(w, r, appErr)
		return
	}

	employee, err := h.Service.UpdateEmployee(r.Context(), employeeID, dto)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Employee updated successfully", employee)
}

// DeleteEmployee handles DELETE /employees/{id}
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := transport.URLParam(r, "id")

	if err := h.Service.DeleteEmployee(r.Context(), employeeID); err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.Log(r).Info("DeleteEmployee: employee deleted successfully", "employee_id", employeeID)
	h.WriteSuccess(w, http.StatusOK, "Employee deleted successfully", nil)
}
