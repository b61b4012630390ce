package attendance

import "time"

type Attendance struct {
	ID         int64     `gorm:"primaryKey"`
	EmployeeID string    `gorm:"column:employee_id;size:50;not null;uniqueIndex:idx_attendance_employee_date,priority:1"`
	Date       time.Time `gorm:"column:date;type:date;not null;uniqueIndex:idx_attendance_employee_date,priority:2"`
	Status     string    `gorm:"column:status;size:10;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Attendance) TableName() string {
	return "attendance_records"
}

// AttendanceView is an attendance row joined with the owning employee's current name.
type AttendanceView struct {
	Attendance   `gorm:"embedded"`
	EmployeeName string `gorm:"column:employee_name"`
}
