package roster

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/folgas-app/folgas-backend-go/internal/domain/employee"
	"github.com/folgas-app/folgas-backend-go/internal/domain/leave"
	"github.com/folgas-app/folgas-backend-go/internal/pkg/calendar"
	"github.com/folgas-app/folgas-backend-go/internal/pkg/database"
	"github.com/folgas-app/folgas-backend-go/internal/pkg/imaging"
	"github.com/folgas-app/folgas-backend-go/internal/pkg/storage"
	"github.com/folgas-app/folgas-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
)

type Service struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	leaveRepo    leave.LeaveRequestRepository
	files        storage.FileStorage
	runTx        func(ctx context.Context, db *database.DB, fn func(ctx context.Context) error) error
}

func NewRosterService(db *database.DB, employeeRepo employee.EmployeeRepository, leaveRepo leave.LeaveRequestRepository, files storage.FileStorage) *Service {
	return &Service{
		db:           db,
		employeeRepo: employeeRepo,
		leaveRepo:    leaveRepo,
		files:        files,
		runTx:        postgresql.WithTransaction,
	}
}

// Roster implements employee.RosterService.
func (s *Service) Roster(ctx context.Context) (employee.RosterResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.RosterResponse{}, fmt.Errorf("failed to fetch roster: %w", err)
	}

	departments := make(map[string]struct{})
	today := 0
	now := time.Now()
	for _, emp := range employees {
		if dep := strings.TrimSpace(emp.Department); dep != "" {
			departments[dep] = struct{}{}
		}
		if calendar.SameDay(emp.CreatedAt, now) {
			today++
		}
	}

	return employee.RosterResponse{
		Employees: employees,
		KPIs: employee.RosterKPIs{
			TotalEmployees:     len(employees),
			TotalDepartments:   len(departments),
			TodayRegistrations: today,
		},
	}, nil
}

// Create implements employee.RosterService.
func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	return s.employeeRepo.Create(ctx, employee.Employee{
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Department: strings.TrimSpace(req.Department),
	})
}

// Update implements employee.RosterService.
func (s *Service) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.Employee{}, err
	}

	return s.employeeRepo.GetByID(ctx, req.ID)
}

// Delete implements employee.RosterService. The store has no enforced
// cascade, so the employee's leave requests go first, in one transaction.
func (s *Service) Delete(ctx context.Context, id string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.runTx(ctx, s.db, func(txCtx context.Context) error {
		if err := s.leaveRepo.DeleteByEmployeeID(txCtx, id); err != nil {
			return err
		}
		return s.employeeRepo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	// Best effort; an orphaned avatar file is harmless.
	if emp.PhotoURL != nil {
		if err := s.files.Delete(ctx, avatarKey(id)); err != nil {
			slog.Warn("failed to delete avatar file", "employee_id", id, "error", err)
		}
	}

	return nil
}

// UploadPhoto implements employee.RosterService. The photo is normalized to
// a square avatar and stored under a stable per-employee key, so replacing
// it overwrites the old file; the URL carries a fresh version tag to defeat
// browser caches.
func (s *Service) UploadPhoto(ctx context.Context, id string, photo []byte) (employee.Employee, error) {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return employee.Employee{}, err
	}

	normalized, contentType, err := imaging.NormalizeAvatar(photo)
	if err != nil {
		return employee.Employee{}, err
	}

	key := avatarKey(id)
	if _, err := s.files.Upload(ctx, bytes.NewReader(normalized), key, contentType); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to store avatar: %w", err)
	}

	url, err := s.files.GetURL(ctx, key)
	if err != nil {
		return employee.Employee{}, err
	}
	versioned := fmt.Sprintf("%s?v=%s", url, uuid.NewString())

	if err := s.employeeRepo.UpdatePhotoURL(ctx, id, &versioned); err != nil {
		return employee.Employee{}, err
	}

	return s.employeeRepo.GetByID(ctx, id)
}

func avatarKey(employeeID string) string {
	return fmt.Sprintf("avatars/%s.png", employeeID)
}
