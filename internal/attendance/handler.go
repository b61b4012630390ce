package attendance

import (
	"context"
	"net/http"

	"github.com/frahmantamala/hrms-lite/internal/transport"
)

type ServiceAPI interface {
	ListAttendance(ctx context.Context, filter ListFilter) ([]*Attendance, error)
	GetAttendance(ctx context.Context, rawID string) (*Attendance, error)
	MarkAttendance(ctx context.Context, dto AttendanceDTO) (*Attendance, error)
	UpdateAttendance(ctx context.Context, rawID string, dto AttendanceDTO) (*Attendance, error)
	DeleteAttendance(ctx context.Context, rawID string) error
	GetEmployeeSummary(ctx context.Context, employeeID string) (*Summary, error)
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

// ListAttendance handles GET /attendance?employee_id=&start_date=&end_date=
func (h *Handler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter, appErr := ParseListFilter(q.Get("employee_id"), q.Get("start_date"), q.Get("end_date"))
	if appErr != nil {
		h.HandleError(w, r, appErr)
		return
	}

	records, err := h.Service.ListAttendance(r.Context(), filter)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "", records)
}

// MarkAttendance handles POST /attendance
func (h *Handler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var dto AttendanceDTO
	if appErr := h.DecodeJSON(r, &dto); appErr != nil {
		h.Log(r).Warn("MarkAttendance: invalid request body", "error", appErr.Cause)
		h.HandleError(w, r, appErr)
		return
	}

	record, err := h.Service.MarkAttendance(r.Context(), dto)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, "Attendance record created successfully", record)
}

// GetAttendance handles GET /attendance/{id}
func (h *Handler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	record, err := h.Service.GetAttendance(r.Context(), transport.URLParam(r, "id"))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "", record)
}

// UpdateAttendance handles PUT /attendance/{id}
func (h *Handler) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	var dto AttendanceDTO
	if appErr := h.DecodeJSON(r, &dto); appErr != nil {
		h.Log(r).Warn("UpdateAttendance: invalid request body", "error", appErr.Cause)
		h.HandleError(w, r, appErr)
		return
	}

	record, err := h.Service.UpdateAttendance(r.Context(), transport.URLParam(r, "id"), dto)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Attendance record updated successfully", record)
}

// DeleteAttendance handles DELETE /attendance/{id}
func (h *Handler) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteAttendance(r.Context(), transport.URLParam(r, "id")); err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Attendance record deleted successfully", nil)
}

// GetEmployeeSummary handles GET /employees/{id}/attendance-summary
func (h *Handler) GetEmployeeSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.GetEmployeeSummary(r.Context(), transport.URLParam(r, "id"))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "", summary)
}
