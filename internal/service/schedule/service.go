package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/folgas-app/folgas-backend-go/internal/domain/employee"
	"github.com/folgas-app/folgas-backend-go/internal/domain/leave"
	"github.com/folgas-app/folgas-backend-go/internal/pkg/calendar"
)

// Service owns the per-month snapshot. The old page kept fridayData and
// employeesDB as globals; here the state lives behind a lock and is only
// replaced wholesale by Sync. Concurrent syncs keep last-writer-wins
// semantics.
type Service struct {
	employeeRepo employee.EmployeeRepository
	leaveRepo    leave.LeaveRequestRepository

	mu      sync.RWMutex
	current *leave.Snapshot
}

func NewScheduleService(employeeRepo employee.EmployeeRepository, leaveRepo leave.LeaveRequestRepository) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		leaveRepo:    leaveRepo,
	}
}

// Sync implements leave.ScheduleService. Both fetches must succeed before
// anything is replaced; on error the previous snapshot stays untouched.
func (s *Service) Sync(ctx context.Context, year int, month time.Month) (leave.Snapshot, error) {
	roster, err := s.employeeRepo.List(ctx)
	if err != nil {
		return leave.Snapshot{}, fmt.Errorf("failed to fetch roster: %w", err)
	}

	from, to := calendar.MonthRange(year, month)
	requests, err := s.leaveRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return leave.Snapshot{}, fmt.Errorf("failed to fetch leave requests: %w", err)
	}

	byID := make(map[string]*employee.Employee, len(roster))
	for i := range roster {
		byID[roster[i].ID] = &roster[i]
	}

	days := make(map[string][]leave.Entry)
	for _, req := range requests {
		if !req.Status.Valid() {
			// Out-of-band writes can leave junk statuses behind; the
			// snapshot only ever carries the closed enum.
			slog.Warn("dropping leave request with unknown status",
				"request_id", req.ID, "status", string(req.Status))
			continue
		}
		key := calendar.FormatDisplay(req.FridayDate)
		days[key] = append(days[key], leave.Entry{
			RequestID:  req.ID,
			EmployeeID: req.EmployeeID,
			Status:     req.Status,
			Notes:      req.Notes,
			Employee:   byID[req.EmployeeID], // nil when the reference dangles
		})
	}

	snap := leave.Snapshot{
		Year:   year,
		Month:  month,
		Roster: roster,
		Days:   days,
	}

	s.mu.Lock()
	s.current = &snap
	s.mu.Unlock()

	return snap, nil
}

// Current implements leave.ScheduleService.
func (s *Service) Current() (leave.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return leave.Snapshot{}, false
	}
	return *s.current, true
}

// Register implements leave.ScheduleService. The upsert keeps at most one
// request per (employee, friday); registering twice leaves the second
// write's fields in place.
func (s *Service) Register(ctx context.Context, req leave.RegisterLeaveRequest) (leave.Snapshot, error) {
	if err := req.Validate(); err != nil {
		return leave.Snapshot{}, err
	}

	date, err := calendar.ParseISO(req.FridayDate)
	if err != nil {
		return leave.Snapshot{}, err
	}
	if date.Weekday() != calendar.TargetWeekday {
		return leave.Snapshot{}, leave.ErrNotTargetWeekday
	}

	// The store does not validate the reference; fail before writing.
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.Snapshot{}, err
	}

	notes := leave.DefaultPendingNotes
	if req.Notes != nil {
		notes = *req.Notes
	}

	_, err = s.leaveRepo.Upsert(ctx, leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		FridayDate: date,
		Status:     leave.StatusPending,
		Notes:      notes,
	})
	if err != nil {
		return leave.Snapshot{}, err
	}

	return s.Sync(ctx, date.Year(), date.Month())
}

// Approve implements leave.ScheduleService.
func (s *Service) Approve(ctx context.Context, id string) (leave.Snapshot, error) {
	return s.transition(ctx, id, leave.StatusApproved)
}

// Reject implements leave.ScheduleService.
func (s *Service) Reject(ctx context.Context, id string) (leave.Snapshot, error) {
	return s.transition(ctx, id, leave.StatusRejected)
}

// transition moves a pending request to its decided state, then re-syncs the
// request's month.
func (s *Service) transition(ctx context.Context, id string, to leave.Status) (leave.Snapshot, error) {
	req, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.Snapshot{}, err
	}

	if req.Status != leave.StatusPending {
		return leave.Snapshot{}, leave.ErrAlreadyProcessed
	}

	if err := s.leaveRepo.UpdateStatus(ctx, id, to); err != nil {
		return leave.Snapshot{}, err
	}

	return s.Sync(ctx, req.FridayDate.Year(), req.FridayDate.Month())
}

// Remove implements leave.ScheduleService. Works in any state.
func (s *Service) Remove(ctx context.Context, id string) (leave.Snapshot, error) {
	req, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.Snapshot{}, err
	}

	if err := s.leaveRepo.Delete(ctx, id); err != nil {
		return leave.Snapshot{}, err
	}

	return s.Sync(ctx, req.FridayDate.Year(), req.FridayDate.Month())
}

// Toggle implements leave.ScheduleService: an approved request is deleted
// (the employee reverts to the implicit working default); anything else is
// set to approved.
func (s *Service) Toggle(ctx context.Context, id string) (leave.Snapshot, error) {
	req, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.Snapshot{}, err
	}

	if req.Status == leave.StatusApproved {
		err = s.leaveRepo.Delete(ctx, id)
	} else {
		err = s.leaveRepo.UpdateStatus(ctx, id, leave.StatusApproved)
	}
	if err != nil {
		return leave.Snapshot{}, err
	}

	return s.Sync(ctx, req.FridayDate.Year(), req.FridayDate.Month())
}
