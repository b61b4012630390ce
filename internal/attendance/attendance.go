package attendance

import (
	"time"

	"github.com/frahmantamala/hrms-lite/internal/core/common/date"
	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
	"github.com/frahmantamala/hrms-lite/internal/employee"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

func (s Status) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Attendance is one daily mark. EmployeeName is resolved from the employee at read time.
type Attendance struct {
	ID           int64     `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Date         date.Date `json:"date"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Summary struct {
	Employee          *employee.Employee `json:"employee"`
	AttendanceRecords []*Attendance      `json:"attendance_records"`
	Summary           SummaryStats       `json:"summary"`
}

type SummaryStats struct {
	TotalDays      int     `json:"total_days"`
	TotalPresent   int     `json:"total_present"`
	TotalAbsent    int     `json:"total_absent"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// NewSummaryStats derives the rate as an unrounded percentage; zero days yield a zero rate.
func NewSummaryStats(present, absent int) SummaryStats {
	stats := SummaryStats{
		TotalDays:    present + absent,
		TotalPresent: present,
		TotalAbsent:  absent,
	}
	if stats.TotalDays > 0 {
		stats.AttendanceRate = float64(present) / float64(stats.TotalDays) * 100
	}
	return stats
}

func NewAttendance(employeeID string, day date.Date, status Status) *Attendance {
	now := time.Now().UTC()
	return &Attendance{
		EmployeeID: employeeID,
		Date:       day,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func ToDataModel(a *Attendance) *attendanceDatamodel.Attendance {
	return &attendanceDatamodel.Attendance{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Time,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func FromDataModel(a *attendanceDatamodel.AttendanceView) *Attendance {
	return &Attendance{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         date.New(a.Date),
		Status:       Status(a.Status),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func FromDataModelSlice(records []*attendanceDatamodel.AttendanceView) []*Attendance {
	result := make([]*Attendance, len(records))
	for i, r := range records {
		result[i] = FromDataModel(r)
	}
	return result
}
