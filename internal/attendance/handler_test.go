package attendance_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/frahmantamala/hrms-lite/internal/attendance"
	attendancePostgres "github.com/frahmantamala/hrms-lite/internal/attendance/postgres"
	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
	employeeDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/employee"
	"github.com/frahmantamala/hrms-lite/internal/employee"
	employeePostgres "github.com/frahmantamala/hrms-lite/internal/employee/postgres"
	"github.com/frahmantamala/hrms-lite/internal/transport"
	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type apiError struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type attendanceResponse struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message"`
	Data    *attendance.Attendance `json:"data"`
	Error   *apiError              `json:"error"`
}

type attendanceListResponse struct {
	Status string                   `json:"status"`
	Data   []*attendance.Attendance `json:"data"`
	Error  *apiError                `json:"error"`
}

type summaryResponse struct {
	Status string              `json:"status"`
	Data   *attendance.Summary `json:"data"`
	Error  *apiError           `json:"error"`
}

var _ = Describe("Attendance Handler Integration", func() {
	var (
		db     *gorm.DB
		router *chi.Mux
	)

	do := func(method, target, body string) *httptest.ResponseRecorder {
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, target, reader)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	decode := func(w *httptest.ResponseRecorder, into interface{}) {
		ExpectWithOffset(1, json.Unmarshal(w.Body.Bytes(), into)).To(Succeed())
	}

	markBody := func(employeeID, day, status string) string {
		return fmt.Sprintf(`{"employee_id":%q,"date":%q,"status":%q}`, employeeID, day, status)
	}

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(io.Discard, nil))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)

		Expect(db.AutoMigrate(&employeeDatamodel.Employee{}, &attendanceDatamodel.Attendance{})).To(Succeed())

		employeeService := employee.NewService(employeePostgres.NewEmployeeRepository(db), slogger)
		attendanceService := attendance.NewService(
			attendancePostgres.NewAttendanceRepository(db, sqlx.NewDb(sqlDB, "sqlite3")),
			employeeService,
			slogger,
		)

		base := &transport.BaseHandler{Logger: slogger}
		employeeHandler := employee.NewHandler(base, employeeService)
		handler := attendance.NewHandler(base, attendanceService)

		router = chi.NewRouter()
		router.Route("/employees", func(r chi.Router) {
			r.Post("/", employeeHandler.CreateEmployee)
			r.Put("/{id}", employeeHandler.UpdateEmployee)
			r.Delete("/{id}", employeeHandler.DeleteEmployee)
			r.Get("/{id}/attendance-summary", handler.GetEmployeeSummary)
		})
		router.Route("/attendance", func(r chi.Router) {
			r.Get("/", handler.ListAttendance)
			r.Post("/", handler.MarkAttendance)
			r.Get("/{id}", handler.GetAttendance)
			r.Put("/{id}", handler.UpdateAttendance)
			r.Delete("/{id}", handler.DeleteAttendance)
		})

		for _, body := range []string{
			`{"employee_id":"EMP001","full_name":"Jane Doe","email":"jane@example.com","department":"Engineering"}`,
			`{"employee_id":"EMP002","full_name":"John Roe","email":"john@example.com","department":"Finance"}`,
		} {
			Expect(do(http.MethodPost, "/employees", body).Code).To(Equal(http.StatusCreated))
		}
	})

	AfterEach(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	It("marks attendance and reads it back", func() {
		w := do(http.MethodPost, "/attendance", markBody("EMP001", "2024-01-15", "Present"))
		Expect(w.Code).To(Equal(http.StatusCreated))

		var created attendanceResponse
		decode(w, &created)
		Expect(created.Message).To(Equal("Attendance record created successfully"))
		Expect(created.Data.ID).To(BeNumerically(">", 0))
		Expect(created.Data.EmployeeName).To(Equal("Jane Doe"))
		Expect(w.Body.String()).To(ContainSubstring(`"date":"2024-01-15"`))

		w = do(http.MethodGet, fmt.Sprintf("/attendance/%d", created.Data.ID), "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var fetched attendanceResponse
		decode(w, &fetched)
		Expect(fetched.Data.Status).To(Equal(attendance.StatusPresent))
		Expect(fetched.Data.Date.String()).To(Equal("2024-01-15"))
	})

	It("rejects a second mark for the same employee and day", func() {
		Expect(do(http.MethodPost, "/attendance", markBody("EMP001", "2024-01-15", "Present")).Code).To(Equal(http.StatusCreated))

		w := do(http.MethodPost, "/attendance", markBody("EMP001", "2024-01-15", "Absent"))
		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var resp attendanceResponse
		decode(w, &resp)
		Expect(resp.Error.Type).To(Equal("DUPLICATE_KEY"))
		Expect(resp.Error.Code).To(Equal("DUPLICATE_ATTENDANCE"))

		w = do(http.MethodGet, "/attendance?employee_id=EMP001", "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var list attendanceListResponse
		decode(w, &list)
		Expect(list.Data).To(HaveLen(1))
		Expect(list.Data[0].Status).To(Equal(attendance.StatusPresent))
		Expect(list.Data[0].Date.String()).To(Equal("2024-01-15"))
	})

	It("rejects a mark for an unknown employee", func() {
		w := do(http.MethodPost, "/attendance", markBody("EMP404", "2024-01-15", "Present"))
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("rejects an unknown status", func() {
		w := do(http.MethodPost, "/attendance", markBody("EMP001", "2024-01-15", "Late"))
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	Describe("listing", func() {
		BeforeEach(func() {
			for _, b := range []string{
				markBody("EMP001", "2024-01-10", "Present"),
				markBody("EMP001", "2024-01-20", "Absent"),
				markBody("EMP002", "2024-01-15", "Present"),
				markBody("EMP002", "2024-02-01", "Absent"),
			} {
				Expect(do(http.MethodPost, "/attendance", b).Code).To(Equal(http.StatusCreated))
			}
		})

		It("returns every record, most recent first", func() {
			w := do(http.MethodGet, "/attendance", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp attendanceListResponse
			decode(w, &resp)
			Expect(resp.Data).To(HaveLen(4))
			Expect(resp.Data[0].Date.String()).To(Equal("2024-02-01"))
			Expect(resp.Data[3].Date.String()).To(Equal("2024-01-10"))
		})

		It("filters by employee", func() {
			var resp attendanceListResponse
			decode(do(http.MethodGet, "/attendance?employee_id=EMP002", ""), &resp)
			Expect(resp.Data).To(HaveLen(2))
			for _, r := range resp.Data {
				Expect(r.EmployeeName).To(Equal("John Roe"))
			}
		})

		It("filters by an inclusive date range", func() {
			var resp attendanceListResponse
			decode(do(http.MethodGet, "/attendance?start_date=2024-01-15&end_date=2024-01-20", ""), &resp)
			Expect(resp.Data).To(HaveLen(2))
			Expect(resp.Data[0].Date.String()).To(Equal("2024-01-20"))
			Expect(resp.Data[1].Date.String()).To(Equal("2024-01-15"))
		})

		It("rejects a half-open range", func() {
			w := do(http.MethodGet, "/attendance?start_date=2024-01-15", "")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns an empty array when nothing matches", func() {
			w := do(http.MethodGet, "/attendance?employee_id=NOBODY", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"data":[]`))
		})
	})

	It("updates and deletes a record", func() {
		var created attendanceResponse
		decode(do(http.MethodPost, "/attendance", markBody("EMP001", "2024-01-15", "Present")), &created)
		path := fmt.Sprintf("/attendance/%d", created.Data.ID)

		w := do(http.MethodPut, path, markBody("EMP001", "2024-01-15", "Absent"))
		Expect(w.Code).To(Equal(http.StatusOK))

		var updated attendanceResponse
		decode(w, &updated)
		Expect(updated.Data.Status).To(Equal(attendance.StatusAbsent))
		Expect(updated.Data.ID).To(Equal(created.Data.ID))

		w = do(http.MethodDelete, path, "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("Attendance record deleted successfully"))

		Expect(do(http.MethodGet, path, "").Code).To(Equal(http.StatusNotFound))
	})

	It("rejects a non-numeric record id", func() {
		Expect(do(http.MethodGet, "/attendance/abc", "").Code).To(Equal(http.StatusBadRequest))
	})

	It("resolves the employee name at read time", func() {
		var created attendanceResponse
		decode(do(http.MethodPost, "/attendance", markBody("EMP001", "2024-01-15", "Present")), &created)

		Expect(do(http.MethodPut, "/employees/EMP001", `{"full_name":"Jane Smith","email":"jane@example.com","department":"Engineering"}`).Code).To(Equal(http.StatusOK))

		var fetched attendanceResponse
		decode(do(http.MethodGet, fmt.Sprintf("/attendance/%d", created.Data.ID), ""), &fetched)
		Expect(fetched.Data.EmployeeName).To(Equal("Jane Smith"))
	})

	It("drops attendance when the employee is deleted", func() {
		Expect(do(http.MethodPost, "/attendance", markBody("EMP001", "2024-01-15", "Present")).Code).To(Equal(http.StatusCreated))
		Expect(do(http.MethodDelete, "/employees/EMP001", "").Code).To(Equal(http.StatusOK))

		var resp attendanceListResponse
		decode(do(http.MethodGet, "/attendance", ""), &resp)
		Expect(resp.Data).To(BeEmpty())
	})

	Describe("summary", func() {
		It("aggregates an employee's history", func() {
			for _, b := range []string{
				markBody("EMP001", "2024-01-01", "Present"),
				markBody("EMP001", "2024-01-02", "Present"),
				markBody("EMP001", "2024-01-03", "Absent"),
				markBody("EMP001", "2024-01-04", "Present"),
				markBody("EMP002", "2024-01-01", "Absent"),
			} {
				Expect(do(http.MethodPost, "/attendance", b).Code).To(Equal(http.StatusCreated))
			}

			w := do(http.MethodGet, "/employees/EMP001/attendance-summary", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp summaryResponse
			decode(w, &resp)
			Expect(resp.Data.Employee.EmployeeID).To(Equal("EMP001"))
			Expect(resp.Data.AttendanceRecords).To(HaveLen(4))
			Expect(resp.Data.AttendanceRecords[0].Date.String()).To(Equal("2024-01-04"))
			Expect(resp.Data.Summary).To(Equal(attendance.SummaryStats{
				TotalDays:      4,
				TotalPresent:   3,
				TotalAbsent:    1,
				AttendanceRate: 75,
			}))
		})

		It("is empty for an employee without records", func() {
			var resp summaryResponse
			decode(do(http.MethodGet, "/employees/EMP002/attendance-summary", ""), &resp)
			Expect(resp.Data.AttendanceRecords).To(BeEmpty())
			Expect(resp.Data.Summary.AttendanceRate).To(BeZero())
		})

		It("returns 404 for an unknown employee", func() {
			Expect(do(http.MethodGet, "/employees/EMP404/attendance-summary", "").Code).To(Equal(http.StatusNotFound))
		})

		It("resolves an employee id the client percent-encoded", func() {
			Expect(do(http.MethodPost, "/employees", `{"employee_id":"HR+7","full_name":"Ana Lee","email":"ana@example.com","department":"HR"}`).Code).To(Equal(http.StatusCreated))
			Expect(do(http.MethodPost, "/attendance", markBody("HR+7", "2024-02-01", "Present")).Code).To(Equal(http.StatusCreated))

			w := do(http.MethodGet, "/employees/HR%2B7/attendance-summary", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp summaryResponse
			decode(w, &resp)
			Expect(resp.Data.Employee.EmployeeID).To(Equal("HR+7"))
			Expect(resp.Data.Summary.TotalPresent).To(Equal(1))
		})
	})
})
