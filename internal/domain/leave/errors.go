package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrAlreadyProcessed     = errors.New("leave request already processed")
	ErrNotTargetWeekday     = errors.New("date is not a Friday")
)
