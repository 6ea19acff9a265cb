package leave

import (
	"context"
	"time"
)

// ScheduleService reconciles the roster and the month's leave requests into a
// snapshot and mediates every status transition. Each mutation performs a
// single store write followed by a full re-sync, so callers always get
// backend truth.
type ScheduleService interface {
	Sync(ctx context.Context, year int, month time.Month) (Snapshot, error)
	// Current returns the last successfully synced snapshot, if any.
	Current() (Snapshot, bool)

	Register(ctx context.Context, req RegisterLeaveRequest) (Snapshot, error)
	Approve(ctx context.Context, id string) (Snapshot, error)
	Reject(ctx context.Context, id string) (Snapshot, error)
	Remove(ctx context.Context, id string) (Snapshot, error)
	// Toggle deletes an approved request (back to implicit working) and
	// approves anything else.
	Toggle(ctx context.Context, id string) (Snapshot, error)
}
