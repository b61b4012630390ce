package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	apperrors "github.com/frahmantamala/hrms-lite/internal"
	"github.com/frahmantamala/hrms-lite/internal/attendance"
	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
	employeeDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/employee"
	"github.com/frahmantamala/hrms-lite/internal/employee"
	"github.com/frahmantamala/hrms-lite/pkg/logger"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var seedEmployees = []employee.CreateEmployeeDTO{
	{EmployeeID: "EMP001", FullName: "Alice Johnson", Email: "alice.johnson@example.com", Department: "Engineering"},
	{EmployeeID: "EMP002", FullName: "Bima Pratama", Email: "bima.pratama@example.com", Department: "Finance"},
	{EmployeeID: "EMP003", FullName: "Chen Wei", Email: "chen.wei@example.com", Department: "Operations"},
	{EmployeeID: "EMP004", FullName: "Dewi Lestari", Email: "dewi.lestari@example.com", Department: "People"},
}

const seedDays = 7

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample employees and a week of attendance for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		logger.Init(cfg.App.Env, cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gormDB, err := initGorm(db)
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		ctx := context.Background()

		if clearData {
			if err := clearSeedData(gormDB); err != nil {
				log.Fatalf("failed to clear data: %v", err)
			}
			fmt.Println("Cleared employees and attendance records")
		}

		services := newServices(gormDB, db, logger.LoggerWrapper())

		for _, dto := range seedEmployees {
			if _, err := services.Employees.CreateEmployee(ctx, dto); err != nil {
				if apperrors.HasType(err, apperrors.ErrorTypeDuplicateKey) {
					fmt.Println("employee already exists:", dto.EmployeeID)
					continue
				}
				log.Fatalf("failed to seed employee %s: %v", dto.EmployeeID, err)
			}
			fmt.Println("Seeded employee:", dto.EmployeeID)
		}

		today := time.Now().UTC()
		marked := 0
		for i, dto := range seedEmployees {
			for d := 0; d < seedDays; d++ {
				status := attendance.StatusPresent
				if (i+d)%4 == 3 {
					status = attendance.StatusAbsent
				}

				_, err := services.Attendance.MarkAttendance(ctx, attendance.AttendanceDTO{
					EmployeeID: dto.EmployeeID,
					Date:       today.AddDate(0, 0, -d).Format("2006-01-02"),
					Status:     string(status),
				})
				if err != nil {
					if apperrors.HasType(err, apperrors.ErrorTypeDuplicateKey) {
						continue
					}
					log.Fatalf("failed to seed attendance for %s: %v", dto.EmployeeID, err)
				}
				marked++
			}
		}

		fmt.Printf("Seeded %d attendance records\n", marked)
	},
}

func clearSeedData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		session := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := session.Delete(&attendanceDatamodel.Attendance{}).Error; err != nil {
			return err
		}
		return session.Delete(&employeeDatamodel.Employee{}).Error
	})
}
