package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/folgas-app/folgas-backend-go/internal/domain/leave"
	"github.com/folgas-app/folgas-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// ListByDateRange implements leave.LeaveRequestRepository. The interval is
// half-open: from <= friday_date < to.
func (r *leaveRequestRepositoryImpl) ListByDateRange(ctx context.Context, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, friday_date, status, notes, created_at
		FROM leave_requests
		WHERE friday_date >= $1 AND friday_date < $2
		ORDER BY friday_date, created_at
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		err := rows.Scan(&lr.ID, &lr.EmployeeID, &lr.FridayDate, &lr.Status, &lr.Notes, &lr.CreatedAt)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, friday_date, status, notes, created_at
		FROM leave_requests
		WHERE id = $1
	`

	var lr leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(&lr.ID, &lr.EmployeeID, &lr.FridayDate, &lr.Status, &lr.Notes, &lr.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return lr, nil
}

// Upsert implements leave.LeaveRequestRepository. The unique constraint on
// (employee_id, friday_date) guarantees one row per pair; a second write for
// the same pair overwrites status and notes.
func (r *leaveRequestRepositoryImpl) Upsert(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, employee_id, friday_date, status, notes, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW())
		ON CONFLICT (employee_id, friday_date)
		DO UPDATE SET status = EXCLUDED.status, notes = EXCLUDED.notes
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, req.EmployeeID, req.FridayDate, req.Status, req.Notes).
		Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to upsert leave request: %w", err)
	}

	return req, nil
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to update status for leave request with id %s: %w", id, err)
	}
	return nil
}

// Delete implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

// DeleteByEmployeeID implements leave.LeaveRequestRepository. Zero rows is
// fine: the employee may simply have no requests.
func (r *leaveRequestRepositoryImpl) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete leave requests for employee %s: %w", employeeID, err)
	}
	return nil
}
