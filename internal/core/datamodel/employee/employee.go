package employee

import "time"

type Employee struct {
	EmployeeID string    `gorm:"column:employee_id;primaryKey;size:50"`
	FullName   string    `gorm:"column:full_name;size:200;not null"`
	Email      string    `gorm:"column:email;size:200;uniqueIndex;not null"`
	Department string    `gorm:"column:department;size:100;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
