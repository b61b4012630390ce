package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/frahmantamala/hrms-lite/internal/attendance"
	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

const viewColumns = "a.id, a.employee_id, a.date, a.status, a.created_at, a.updated_at, e.full_name AS employee_name"

const countByStatusQuery = `SELECT status, COUNT(*) AS total
FROM attendance_records
WHERE employee_id = ?
GROUP BY status`

// AttendanceRepository uses gorm for row access and sqlx for aggregate queries over the same pool.
type AttendanceRepository struct {
	db  *gorm.DB
	sql *sqlx.DB
}

func NewAttendanceRepository(db *gorm.DB, sqlDB *sqlx.DB) attendance.RepositoryAPI {
	return &AttendanceRepository{db: db, sql: sqlDB}
}

func (r *AttendanceRepository) view(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("attendance_records AS a").
		Select(viewColumns).
		Joins("JOIN employees AS e ON e.employee_id = a.employee_id")
}

func (r *AttendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]*attendanceDatamodel.AttendanceView, error) {
	q := r.view(ctx)
	if filter.EmployeeID != "" {
		q = q.Where("a.employee_id = ?", filter.EmployeeID)
	}
	if filter.HasDateRange() {
		q = q.Where("a.date BETWEEN ? AND ?", filter.StartDate.Time, filter.EndDate.Time)
	}

	records := make([]*attendanceDatamodel.AttendanceView, 0)
	err := q.Order("a.date DESC").Order("a.id DESC").Scan(&records).Error
	return records, err
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (*attendanceDatamodel.AttendanceView, error) {
	records := make([]*attendanceDatamodel.AttendanceView, 0, 1)
	if err := r.view(ctx).Where("a.id = ?", id).Limit(1).Scan(&records).Error; err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, attendance.ErrAttendanceNotFound
	}
	return records[0], nil
}

func (r *AttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) (*attendanceDatamodel.Attendance, error) {
	var record attendanceDatamodel.Attendance
	err := r.db.WithContext(ctx).Where("employee_id = ? AND date = ?", employeeID, day).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *AttendanceRepository) Create(ctx context.Context, record *attendanceDatamodel.Attendance) error {
	return translate(r.db.WithContext(ctx).Create(record).Error)
}

func (r *AttendanceRepository) Update(ctx context.Context, record *attendanceDatamodel.Attendance) error {
	result := r.db.WithContext(ctx).
		Model(&attendanceDatamodel.Attendance{}).
		Where("id = ?", record.ID).
		Updates(map[string]interface{}{
			"employee_id": record.EmployeeID,
			"date":        record.Date,
			"status":      record.Status,
			"updated_at":  record.UpdatedAt,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

func (r *AttendanceRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&attendanceDatamodel.Attendance{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

type statusCount struct {
	Status string `db:"status"`
	Total  int    `db:"total"`
}

func (r *AttendanceRepository) CountByStatus(ctx context.Context, employeeID string) (map[string]int, error) {
	var rows []statusCount
	if err := r.sql.SelectContext(ctx, &rows, r.sql.Rebind(countByStatusQuery), employeeID); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return attendance.ErrDuplicateAttendance
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return attendance.ErrEmployeeReference
	}
	return err
}
