package employee

import (
	"strings"
	"time"

	employeeDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/employee"
)

// Employee is addressed by its natural key; ID mirrors EmployeeID in responses.
type Employee struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewEmployee(dto CreateEmployeeDTO) *Employee {
	now := time.Now().UTC()
	id := strings.TrimSpace(dto.EmployeeID)
	return &Employee{
		ID:         id,
		EmployeeID: id,
		FullName:   strings.TrimSpace(dto.FullName),
		Email:      NormalizeEmail(dto.Email),
		Department: strings.TrimSpace(dto.Department),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Apply replaces the mutable fields.
func (e *Employee) Apply(dto UpdateEmployeeDTO) {
	e.FullName = strings.TrimSpace(dto.FullName)
	e.Email = NormalizeEmail(dto.Email)
	e.Department = strings.TrimSpace(dto.Department)
	e.UpdatedAt = time.Now().UTC()
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:         e.EmployeeID,
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func FromDataModelSlice(employees []*employeeDatamodel.Employee) []*Employee {
	result := make([]*Employee, len(employees))
	for i, e := range employees {
		result[i] = FromDataModel(e)
	}
	return result
}
