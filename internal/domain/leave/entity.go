package leave

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Valid reports whether s is one of the three persisted statuses. There is no
// "working" status: working is the absence of a request for the date.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Display returns the pt-BR label the UI and reports show.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pendente"
	case StatusApproved:
		return "Folga"
	case StatusRejected:
		return "Rejeitada"
	}
	return "—"
}

// DefaultPendingNotes is attached to a freshly registered request.
const DefaultPendingNotes = "Aguardando aprovação"

// LeaveRequest ties one employee to one target Friday. At most one row exists
// per (employee, friday) pair, enforced by the store's unique constraint.
type LeaveRequest struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	FridayDate time.Time `json:"friday_date"`
	Status     Status    `json:"status"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}
