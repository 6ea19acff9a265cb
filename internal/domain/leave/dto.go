package leave

import "github.com/folgas-app/folgas-backend-go/internal/pkg/validator"

type RegisterLeaveRequest struct {
	EmployeeID string  `json:"employee_id"`
	FridayDate string  `json:"friday_date"` // YYYY-MM-DD
	Notes      *string `json:"notes,omitempty"`
}

func (r *RegisterLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	// Employee ID
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	// Friday date
	if validator.IsEmpty(r.FridayDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "friday_date",
			Message: "friday_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.FridayDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "friday_date",
			Message: "friday_date must be a YYYY-MM-DD date",
		})
	}

	if r.Notes != nil && len(*r.Notes) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
