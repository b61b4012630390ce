package attendance

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	apperrors "github.com/frahmantamala/hrms-lite/internal"
	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
	"github.com/frahmantamala/hrms-lite/internal/employee"
	"github.com/frahmantamala/hrms-lite/pkg/logger"
)

type RepositoryAPI interface {
	List(ctx context.Context, filter ListFilter) ([]*attendanceDatamodel.AttendanceView, error)
	GetByID(ctx context.Context, id int64) (*attendanceDatamodel.AttendanceView, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) (*attendanceDatamodel.Attendance, error)
	Create(ctx context.Context, record *attendanceDatamodel.Attendance) error
	Update(ctx context.Context, record *attendanceDatamodel.Attendance) error
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context, employeeID string) (map[string]int, error)
}

// EmployeeFinder resolves the employee an attendance record points at.
type EmployeeFinder interface {
	GetEmployee(ctx context.Context, employeeID string) (*employee.Employee, error)
}

type Service struct {
	repo      RepositoryAPI
	employees EmployeeFinder
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, employees EmployeeFinder, lg *slog.Logger) *Service {
	if lg == nil {
		lg = slog.Default()
	}
	return &Service{
		repo:      repo,
		employees: employees,
		logger:    lg,
	}
}

// log prefers the request logger so lines carry the request id.
func (s *Service) log(ctx context.Context) *slog.Logger {
	return logger.FromOr(ctx, s.logger)
}

func (s *Service) ListAttendance(ctx context.Context, filter ListFilter) ([]*Attendance, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log(ctx).Error("failed to list attendance", "error", err, "employee_id", filter.EmployeeID)
		return nil, apperrors.NewInternalError("failed to list attendance", err)
	}
	return FromDataModelSlice(rows), nil
}

func (s *Service) GetAttendance(ctx context.Context, rawID string) (*Attendance, error) {
	id, appErr := ParseID(rawID)
	if appErr != nil {
		return nil, appErr
	}

	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(ctx, err, "failed to get attendance", id)
	}
	return FromDataModel(row), nil
}

// MarkAttendance records one mark for an existing employee and day.
func (s *Service) MarkAttendance(ctx context.Context, dto AttendanceDTO) (*Attendance, error) {
	if appErr := dto.Validate(); appErr != nil {
		s.log(ctx).Warn("attendance validation failed", "error", appErr.GetDetailedMessage())
		return nil, appErr
	}
	employeeID, day, status := dto.Parsed()

	emp, err := s.employees.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if err := s.ensureFree(ctx, employeeID, day.Time, 0); err != nil {
		return nil, err
	}

	record := NewAttendance(employeeID, day, status)
	row := ToDataModel(record)
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, s.mapRepoError(ctx, err, "failed to mark attendance", 0)
	}

	record.ID = row.ID
	record.EmployeeName = emp.FullName
	s.log(ctx).Info("attendance marked", "attendance_id", record.ID, "employee_id", employeeID, "date", day.String(), "status", status)
	return record, nil
}

// UpdateAttendance replaces a record; the (employee, date) pair may only collide with the record itself.
func (s *Service) UpdateAttendance(ctx context.Context, rawID string, dto AttendanceDTO) (*Attendance, error) {
	id, appErr := ParseID(rawID)
	if appErr != nil {
		return nil, appErr
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(ctx, err, "failed to get attendance", id)
	}

	if appErr := dto.Validate(); appErr != nil {
		s.log(ctx).Warn("attendance validation failed", "error", appErr.GetDetailedMessage(), "attendance_id", id)
		return nil, appErr
	}
	employeeID, day, status := dto.Parsed()

	emp, err := s.employees.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if err := s.ensureFree(ctx, employeeID, day.Time, id); err != nil {
		return nil, err
	}

	record := FromDataModel(existing)
	record.EmployeeID = employeeID
	record.EmployeeName = emp.FullName
	record.Date = day
	record.Status = status
	record.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, ToDataModel(record)); err != nil {
		return nil, s.mapRepoError(ctx, err, "failed to update attendance", id)
	}

	s.log(ctx).Info("attendance updated", "attendance_id", id, "employee_id", employeeID, "date", day.String(), "status", status)
	return record, nil
}

func (s *Service) DeleteAttendance(ctx context.Context, rawID string) error {
	id, appErr := ParseID(rawID)
	if appErr != nil {
		return appErr
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoError(ctx, err, "failed to delete attendance", id)
	}

	s.log(ctx).Info("attendance deleted", "attendance_id", id)
	return nil
}

// GetEmployeeSummary returns the employee's history, most recent first, with aggregate counts.
func (s *Service) GetEmployeeSummary(ctx context.Context, employeeID string) (*Summary, error) {
	emp, err := s.employees.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.List(ctx, ListFilter{EmployeeID: emp.EmployeeID})
	if err != nil {
		s.log(ctx).Error("failed to list attendance for summary", "error", err, "employee_id", emp.EmployeeID)
		return nil, apperrors.NewInternalError("failed to build attendance summary", err)
	}

	counts, err := s.repo.CountByStatus(ctx, emp.EmployeeID)
	if err != nil {
		s.log(ctx).Error("failed to count attendance", "error", err, "employee_id", emp.EmployeeID)
		return nil, apperrors.NewInternalError("failed to build attendance summary", err)
	}

	return &Summary{
		Employee:          emp,
		AttendanceRecords: FromDataModelSlice(rows),
		Summary:           NewSummaryStats(counts[string(StatusPresent)], counts[string(StatusAbsent)]),
	}, nil
}

func (s *Service) ensureFree(ctx context.Context, employeeID string, day time.Time, selfID int64) error {
	existing, err := s.repo.GetByEmployeeAndDate(ctx, employeeID, day)
	switch {
	case err == nil && existing.ID != selfID:
		return duplicate()
	case err != nil && !errors.Is(err, ErrAttendanceNotFound):
		s.log(ctx).Error("failed to check attendance", "error", err, "employee_id", employeeID)
		return apperrors.NewInternalError("failed to check attendance", err)
	}
	return nil
}

func (s *Service) mapRepoError(ctx context.Context, err error, message string, id int64) error {
	switch {
	case errors.Is(err, ErrAttendanceNotFound):
		return apperrors.NewNotFoundError("Attendance record not found", apperrors.ErrCodeAttendanceNotFound)
	case errors.Is(err, ErrDuplicateAttendance):
		return duplicate()
	case errors.Is(err, ErrEmployeeReference):
		return apperrors.NewNotFoundError("Employee not found", apperrors.ErrCodeEmployeeNotFound)
	}
	s.log(ctx).Error(message, "error", err, "attendance_id", id)
	return apperrors.NewInternalError(message, err)
}

func duplicate() *apperrors.AppError {
	return apperrors.NewDuplicateKeyError("date", "Attendance already marked for this employee on this date.", apperrors.ErrCodeDuplicateAttendance)
}

// ParseID accepts positive integer record identifiers only.
func ParseID(raw string) (int64, *apperrors.AppError) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewInvalidIdentifierError("id", "invalid attendance ID format")
	}
	return id, nil
}
