package employee

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	apperrors "github.com/frahmantamala/hrms-lite/internal"
	"github.com/frahmantamala/hrms-lite/internal/core/common/validation"
	employeeDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/employee"
	"github.com/frahmantamala/hrms-lite/pkg/logger"
)

type RepositoryAPI interface {
	GetAll(ctx context.Context) ([]*employeeDatamodel.Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*employeeDatamodel.Employee, error)
	GetByEmail(ctx context.Context, email string) (*employeeDatamodel.Employee, error)
	Create(ctx context.Context, employee *employeeDatamodel.Employee) error
	Update(ctx context.Context, employee *employeeDatamodel.Employee) error
	Delete(ctx context.Context, employeeID string) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, lg *slog.Logger) *Service {
	if lg == nil {
		lg = slog.Default()
	}
	return &Service{
		repo:   repo,
		logger: lg,
	}
}

// log prefers the request logger so lines carry the request id.
func (s *Service) log(ctx context.Context) *slog.Logger {
	return logger.FromOr(ctx, s.logger)
}

func (s *Service) ListEmployees(ctx context.Context) ([]*Employee, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log(ctx).Error("failed to list employees", "error", err)
		return nil, apperrors.NewInternalError("failed to list employees", err)
	}

	s.log(ctx).Debug("retrieved employees", "count", len(rows))
	return FromDataModelSlice(rows), nil
}

func (s *Service) GetEmployee(ctx context.Context, employeeID string) (*Employee, error) {
	employeeID = strings.TrimSpace(employeeID)
	if !validation.IsValidEmployeeID(employeeID) {
		return nil, apperrors.NewInvalidIdentifierError("employee_id", "invalid employee ID format")
	}

	row, err := s.repo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			return nil, notFound()
		}
		s.log(ctx).Error("failed to get employee", "error", err, "employee_id", employeeID)
		return nil, apperrors.NewInternalError("failed to get employee", err)
	}

	return FromDataModel(row), nil
}

// CreateEmployee rejects the request when either the employee_id or the email is taken.
// The pre-checks only pick the message; the unique constraints decide.
func (s *Service) CreateEmployee(ctx context.Context, dto CreateEmployeeDTO) (*Employee, error) {
	if appErr := dto.Validate(); appErr != nil {
		s.log(ctx).Warn("employee validation failed", "error", appErr.GetDetailedMessage())
		return nil, appErr
	}

	employee := NewEmployee(dto)

	if _, err := s.repo.GetByEmployeeID(ctx, employee.EmployeeID); err == nil {
		return nil, apperrors.NewDuplicateKeyError("employee_id", "An employee with this ID already exists.", apperrors.ErrCodeDuplicateEmployeeID)
	} else if !errors.Is(err, ErrEmployeeNotFound) {
		s.log(ctx).Error("failed to check employee id", "error", err, "employee_id", employee.EmployeeID)
		return nil, apperrors.NewInternalError("failed to create employee", err)
	}

	if _, err := s.repo.GetByEmail(ctx, employee.Email); err == nil {
		return nil, apperrors.NewDuplicateKeyError("email", "An employee with this email already exists.", apperrors.ErrCodeDuplicateEmail)
	} else if !errors.Is(err, ErrEmployeeNotFound) {
		s.log(ctx).Error("failed to check employee email", "error", err, "employee_id", employee.EmployeeID)
		return nil, apperrors.NewInternalError("failed to create employee", err)
	}

	row := ToDataModel(employee)
	if err := s.repo.Create(ctx, row); err != nil {
		if errors.Is(err, ErrDuplicateEmployee) {
			return nil, apperrors.NewDuplicateKeyError("", "An employee with this ID or email already exists.", apperrors.ErrCodeDuplicateEmployee)
		}
		s.log(ctx).Error("failed to create employee", "error", err, "employee_id", employee.EmployeeID)
		return nil, apperrors.NewInternalError("failed to create employee", err)
	}

	s.log(ctx).Info("employee created", "employee_id", employee.EmployeeID, "department", employee.Department)
	return FromDataModel(row), nil
}

// UpdateEmployee replaces full_name, email and department. The email may collide only with the employee itself.
func (s *Service) UpdateEmployee(ctx context.Context, employeeID string, dto UpdateEmployeeDTO) (*Employee, error) {
	existing, err := s.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if appErr := dto.Validate(existing.EmployeeID); appErr != nil {
		s.log(ctx).Warn("employee validation failed", "error", appErr.GetDetailedMessage(), "employee_id", existing.EmployeeID)
		return nil, appErr
	}

	existing.Apply(dto)

	other, err := s.repo.GetByEmail(ctx, existing.Email)
	switch {
	case err == nil && other.EmployeeID != existing.EmployeeID:
		return nil, apperrors.NewDuplicateKeyError("email", "An employee with this email already exists.", apperrors.ErrCodeDuplicateEmail)
	case err != nil && !errors.Is(err, ErrEmployeeNotFound):
		s.log(ctx).Error("failed to check employee email", "error", err, "employee_id", existing.EmployeeID)
		return nil, apperrors.NewInternalError("failed to update employee", err)
	}

	row := ToDataModel(existing)
	if err := s.repo.Update(ctx, row); err != nil {
		switch {
		case errors.Is(err, ErrEmployeeNotFound):
			return nil, notFound()
		case errors.Is(err, ErrDuplicateEmployee):
			return nil, apperrors.NewDuplicateKeyError("email", "An employee with this email already exists.", apperrors.ErrCodeDuplicateEmail)
		}
		s.log(ctx).Error("failed to update employee", "error", err, "employee_id", existing.EmployeeID)
		return nil, apperrors.NewInternalError("failed to update employee", err)
	}

	s.log(ctx).Info("employee updated", "employee_id", existing.EmployeeID)
	return existing, nil
}

// DeleteEmployee removes the employee together with its attendance records.
func (s *Service) DeleteEmployee(ctx context.Context, employeeID string) error {
	employeeID = strings.TrimSpace(employeeID)
	if !validation.IsValidEmployeeID(employeeID) {
		return apperrors.NewInvalidIdentifierError("employee_id", "invalid employee ID format")
	}

	if err := s.repo.Delete(ctx, employeeID); err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			return notFound()
		}
		s.log(ctx).Error("failed to delete employee", "error", err, "employee_id", employeeID)
		return apperrors.NewInternalError("failed to delete employee", err)
	}

	s.log(ctx).Info("employee deleted", "employee_id", employeeID)
	return nil
}

func notFound() *apperrors.AppError {
	return apperrors.NewNotFoundError("Employee not found", apperrors.ErrCodeEmployeeNotFound)
}
