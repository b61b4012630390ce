package postgres

import (
	"context"
	"errors"

	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
	employeeDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/employee"
	"github.com/frahmantamala/hrms-lite/internal/employee"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetAll(ctx context.Context) ([]*employeeDatamodel.Employee, error) {
	employees := make([]*employeeDatamodel.Employee, 0)
	err := r.db.WithContext(ctx).Order("full_name ASC").Order("employee_id ASC").Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*employeeDatamodel.Employee, error) {
	return r.first(ctx, "employee_id = ?", employeeID)
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*employeeDatamodel.Employee, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *EmployeeRepository) first(ctx context.Context, query string, arg interface{}) (*employeeDatamodel.Employee, error) {
	var emp employeeDatamodel.Employee
	err := r.db.WithContext(ctx).Where(query, arg).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, emp *employeeDatamodel.Employee) error {
	return translate(r.db.WithContext(ctx).Create(emp).Error)
}

// Update writes the mutable columns only; the natural key never changes.
func (r *EmployeeRepository) Update(ctx context.Context, emp *employeeDatamodel.Employee) error {
	result := r.db.WithContext(ctx).
		Model(&employeeDatamodel.Employee{}).
		Where("employee_id = ?", emp.EmployeeID).
		Updates(map[string]interface{}{
			"full_name":  emp.FullName,
			"email":      emp.Email,
			"department": emp.Department,
			"updated_at": emp.UpdatedAt,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete removes the employee and its attendance records in one transaction.
func (r *EmployeeRepository) Delete(ctx context.Context, employeeID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", employeeID).Delete(&attendanceDatamodel.Attendance{}).Error; err != nil {
			return err
		}

		result := tx.Where("employee_id = ?", employeeID).Delete(&employeeDatamodel.Employee{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return employee.ErrEmployeeNotFound
		}
		return nil
	})
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return employee.ErrDuplicateEmployee
	}
	return err
}
