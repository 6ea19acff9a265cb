package employee

import "context"

// RosterService manages the employee roster and its photos.
type RosterService interface {
	Roster(ctx context.Context) (RosterResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	// Delete removes the employee together with all their leave requests.
	Delete(ctx context.Context, id string) error
	// UploadPhoto normalizes and stores a photo, returning the updated employee.
	UploadPhoto(ctx context.Context, id string, photo []byte) (Employee, error)
}
