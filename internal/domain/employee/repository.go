package employee

import "context"

type EmployeeRepository interface {
	// List returns the whole roster ordered by name.
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, emp Employee) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	UpdatePhotoURL(ctx context.Context, id string, photoURL *string) error
	Delete(ctx context.Context, id string) error
}
