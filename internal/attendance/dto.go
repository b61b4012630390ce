package attendance

import (
	"errors"
	"strings"

	apperrors "github.com/frahmantamala/hrms-lite/internal"
	"github.com/frahmantamala/hrms-lite/internal/core/common/date"
	"github.com/frahmantamala/hrms-lite/internal/core/common/validation"
)

// AttendanceDTO is the payload for marking and for replacing an attendance record.
type AttendanceDTO struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (dto AttendanceDTO) Validate() *apperrors.AppError {
	v := validation.NewValidator()
	v.Field("employee_id", strings.TrimSpace(dto.EmployeeID)).Required().Identifier()
	v.Field("date", strings.TrimSpace(dto.Date)).Required().Date()
	v.Field("status", dto.Status).Required().OneOf(apperrors.ErrCodeInvalidStatus, string(StatusPresent), string(StatusAbsent))
	return v.Validate()
}

// Parsed returns the normalized fields; call it only after Validate succeeded.
func (dto AttendanceDTO) Parsed() (string, date.Date, Status) {
	day, _ := date.Parse(strings.TrimSpace(dto.Date))
	return strings.TrimSpace(dto.EmployeeID), day, Status(dto.Status)
}

// ListFilter narrows the attendance list. A date range needs both bounds.
type ListFilter struct {
	EmployeeID string
	StartDate  *date.Date
	EndDate    *date.Date
}

func (f ListFilter) HasDateRange() bool {
	return f.StartDate != nil && f.EndDate != nil
}

// ParseListFilter builds a ListFilter from raw query values.
func ParseListFilter(employeeID, startDate, endDate string) (ListFilter, *apperrors.AppError) {
	filter := ListFilter{EmployeeID: strings.TrimSpace(employeeID)}
	startDate = strings.TrimSpace(startDate)
	endDate = strings.TrimSpace(endDate)

	v := validation.NewValidator()
	v.Field("start_date", startDate).Date()
	v.Field("end_date", endDate).Date()
	if appErr := v.Validate(); appErr != nil {
		return filter, appErr
	}

	if (startDate == "") != (endDate == "") {
		return filter, apperrors.NewValidationFieldError("start_date", "start_date and end_date must be provided together", apperrors.ErrCodeInvalidDateRange)
	}

	if startDate == "" {
		return filter, nil
	}

	start, _ := date.Parse(startDate)
	end, _ := date.Parse(endDate)
	if start.After(end.Time) {
		return filter, apperrors.NewValidationFieldError("end_date", "end_date must not be before start_date", apperrors.ErrCodeInvalidDateRange)
	}

	filter.StartDate = &start
	filter.EndDate = &end
	return filter, nil
}

// Domain errors
var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrDuplicateAttendance = errors.New("attendance already marked for this employee on this date")
	ErrEmployeeReference   = errors.New("attendance references a missing employee")
)
