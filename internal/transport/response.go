package transport

import (
	apperrors "github.com/frahmantamala/hrms-lite/internal"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the envelope shared by every API endpoint.
type Response struct {
	Status  string              `json:"status"`
	Message string              `json:"message,omitempty"`
	Data    interface{}         `json:"data,omitempty"`
	Error   *apperrors.AppError `json:"error,omitempty"`
}

func NewSuccessResponse(message string, data interface{}) Response {
	return Response{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	}
}

func NewErrorResponse(appErr *apperrors.AppError) Response {
	return Response{
		Status:  StatusError,
		Message: appErr.GetDetailedMessage(),
		Error:   appErr,
	}
}
