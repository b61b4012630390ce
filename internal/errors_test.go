package internal_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	apperrors "github.com/frahmantamala/hrms-lite/internal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AppError", func() {
	It("maps each constructor to its HTTP status", func() {
		Expect(apperrors.NewValidationError("bad", apperrors.ErrCodeInvalidBody).StatusCode).To(Equal(http.StatusBadRequest))
		Expect(apperrors.NewInvalidIdentifierError("id", "bad id").StatusCode).To(Equal(http.StatusBadRequest))
		Expect(apperrors.NewNotFoundError("missing", apperrors.ErrCodeEmployeeNotFound).StatusCode).To(Equal(http.StatusNotFound))
		Expect(apperrors.NewDuplicateKeyError("email", "taken", apperrors.ErrCodeDuplicateEmail).StatusCode).To(Equal(http.StatusBadRequest))
		Expect(apperrors.NewInternalError("boom", nil).StatusCode).To(Equal(http.StatusInternalServerError))
	})

	It("uses the first field message as its error string", func() {
		appErr := apperrors.NewValidationFieldError("email", "Enter a valid email address", apperrors.ErrCodeInvalidEmail)
		Expect(appErr.Error()).To(Equal("Enter a valid email address"))
	})

	It("joins every field message in the detailed message", func() {
		appErr := apperrors.NewValidationError("Validation failed", apperrors.ErrCodeValidationFailed).
			WithDetails(apperrors.ValidationErrors{Errors: []apperrors.ValidationError{
				{Field: "full_name", Message: "full_name is required"},
				{Field: "email", Message: "email is required"},
			}})
		Expect(appErr.GetDetailedMessage()).To(Equal("full_name is required; email is required"))
	})

	It("keeps the duplicated field in the details", func() {
		appErr := apperrors.NewDuplicateKeyError("employee_id", "An employee with this ID already exists.", apperrors.ErrCodeDuplicateEmployeeID)
		details, ok := appErr.Details.(apperrors.ValidationErrors)
		Expect(ok).To(BeTrue())
		Expect(details.Errors[0].Field).To(Equal("employee_id"))

		Expect(apperrors.NewDuplicateKeyError("", "dup", apperrors.ErrCodeDuplicateEmployee).Details).To(BeNil())
	})

	It("unwraps to its cause", func() {
		cause := errors.New("connection refused")
		appErr := apperrors.NewInternalError("failed to list employees", cause)
		Expect(errors.Is(appErr, cause)).To(BeTrue())
		Expect(appErr.Error()).To(ContainSubstring("connection refused"))
	})

	It("is found through wrapping", func() {
		wrapped := fmt.Errorf("handler: %w", apperrors.NewNotFoundError("Employee not found", apperrors.ErrCodeEmployeeNotFound))
		appErr, ok := apperrors.IsAppError(wrapped)
		Expect(ok).To(BeTrue())
		Expect(appErr.Code).To(Equal(apperrors.ErrCodeEmployeeNotFound))
		Expect(apperrors.HasType(wrapped, apperrors.ErrorTypeNotFound)).To(BeTrue())
		Expect(apperrors.HasType(errors.New("plain"), apperrors.ErrorTypeNotFound)).To(BeFalse())
	})

	It("never serializes the cause", func() {
		appErr := apperrors.NewInternalError("internal server error", errors.New("password=secret"))
		b, err := json.Marshal(appErr)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).NotTo(ContainSubstring("secret"))
		Expect(string(b)).To(ContainSubstring(`"type":"INTERNAL_ERROR"`))
		Expect(string(b)).NotTo(ContainSubstring("details"))
	})
})
