package response

import (
	"errors"
	"net/http"

	"github.com/folgas-app/folgas-backend-go/internal/domain/employee"
	"github.com/folgas-app/folgas-backend-go/internal/domain/leave"
	"github.com/folgas-app/folgas-backend-go/internal/pkg/imaging"
	"github.com/folgas-app/folgas-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrNotTargetWeekday):
		BadRequest(w, "Date must fall on a Friday", nil)

	// Photo upload errors
	case errors.Is(err, imaging.ErrUnsupportedImage):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
