package employee

import (
	"errors"
	"strings"

	apperrors "github.com/frahmantamala/hrms-lite/internal"
	"github.com/frahmantamala/hrms-lite/internal/core/common/validation"
)

// CreateEmployeeDTO represents the request payload for creating an employee
type CreateEmployeeDTO struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func (dto CreateEmployeeDTO) Validate() *apperrors.AppError {
	v := validation.NewValidator()
	v.Field("employee_id", strings.TrimSpace(dto.EmployeeID)).Required().Identifier()
	addProfileFields(v, dto.FullName, dto.Email, dto.Department)
	return v.Validate()
}

// UpdateEmployeeDTO replaces the mutable fields. EmployeeID may be echoed back but never changed.
type UpdateEmployeeDTO struct {
	EmployeeID string `json:"employee_id,omitempty"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func (dto UpdateEmployeeDTO) Validate(pathID string) *apperrors.AppError {
	v := validation.NewValidator()
	v.Field("employee_id", strings.TrimSpace(dto.EmployeeID)).Custom(func(value interface{}) *apperrors.AppError {
		if id, _ := value.(string); id != "" && id != pathID {
			return apperrors.NewValidationFieldError("employee_id", "employee_id cannot be changed", apperrors.ErrCodeImmutableField)
		}
		return nil
	})
	addProfileFields(v, dto.FullName, dto.Email, dto.Department)
	return v.Validate()
}

func addProfileFields(v *validation.ValidationBuilder, fullName, email, department string) {
	v.Field("full_name", strings.TrimSpace(fullName)).Required().MaxLength(200)
	v.Field("email", NormalizeEmail(email)).Required().MaxLength(200).Email()
	v.Field("department", strings.TrimSpace(department)).Required().MaxLength(100)
}

// Domain errors
var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrDuplicateEmployee = errors.New("employee id or email already exists")
)
