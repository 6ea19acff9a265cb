package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	// ListByDateRange returns requests with from <= friday_date < to.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	// Upsert inserts keyed on (employee_id, friday_date); on conflict the new
	// status and notes win.
	Upsert(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
	// DeleteByEmployeeID clears an employee's requests ahead of roster removal.
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}
