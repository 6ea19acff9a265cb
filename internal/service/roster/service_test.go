package roster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/folgas-app/folgas-backend-go/internal/domain/employee"
	"github.com/folgas-app/folgas-backend-go/internal/domain/leave"
	"github.com/folgas-app/folgas-backend-go/internal/pkg/database"
	"github.com/folgas-app/folgas-backend-go/internal/pkg/imaging"
	"github.com/folgas-app/folgas-backend-go/internal/pkg/storage"
	"github.com/folgas-app/folgas-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	nextID    int
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range emps {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.nextID++
	emp.ID = fmt.Sprintf("emp-%d", r.nextID)
	emp.CreatedAt = time.Now()
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	e, ok := r.employees[req.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	r.employees[req.ID] = e
	return nil
}

func (r *fakeEmployeeRepo) UpdatePhotoURL(ctx context.Context, id string, photoURL *string) error {
	e, ok := r.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.PhotoURL = photoURL
	r.employees[id] = e
	return nil
}

func (r *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

type fakeLeaveRepo struct {
	deletedFor []string
	deleteErr  error
}

func (r *fakeLeaveRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (r *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (r *fakeLeaveRepo) Upsert(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	return req, nil
}

func (r *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.Status) error {
	return nil
}

func (r *fakeLeaveRepo) Delete(ctx context.Context, id string) error { return nil }

func (r *fakeLeaveRepo) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deletedFor = append(r.deletedFor, employeeID)
	return nil
}

func testStorage(t *testing.T) *storage.LocalStorage {
	t.Helper()
	files, err := storage.NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	return files
}

func TestRosterService_Roster_KPIs(t *testing.T) {
	ctx := context.Background()
	yesterday := time.Now().Add(-24 * time.Hour)
	employeeRepo := newFakeEmployeeRepo(
		employee.Employee{ID: "emp-1", Name: "Ana Souza", Department: "Comercial", CreatedAt: time.Now()},
		employee.Employee{ID: "emp-2", Name: "Bruno Lima", Department: "TI", CreatedAt: yesterday},
		employee.Employee{ID: "emp-3", Name: "Carla Dias", Department: "Comercial", CreatedAt: yesterday},
		employee.Employee{ID: "emp-4", Name: "Davi Rocha", Department: "  ", CreatedAt: yesterday},
	)
	svc := NewRosterService(nil, employeeRepo, &fakeLeaveRepo{}, testStorage(t))

	roster, err := svc.Roster(ctx)
	require.NoError(t, err)

	assert.Len(t, roster.Employees, 4)
	assert.Equal(t, 4, roster.KPIs.TotalEmployees)
	// Blank departments are not counted
	assert.Equal(t, 2, roster.KPIs.TotalDepartments)
	assert.Equal(t, 1, roster.KPIs.TodayRegistrations)
}

func TestRosterService_Create(t *testing.T) {
	ctx := context.Background()
	employeeRepo := newFakeEmployeeRepo()
	svc := NewRosterService(nil, employeeRepo, &fakeLeaveRepo{}, testStorage(t))

	emp, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:       "  Ana Souza  ",
		Email:      "ana@empresa.com",
		Department: "Comercial",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, emp.ID)
	assert.Equal(t, "Ana Souza", emp.Name)
}

func TestRosterService_Create_Invalid(t *testing.T) {
	ctx := context.Background()
	svc := NewRosterService(nil, newFakeEmployeeRepo(), &fakeLeaveRepo{}, testStorage(t))

	tests := []struct {
		name string
		req  employee.CreateEmployeeRequest
	}{
		{
			name: "missing name",
			req:  employee.CreateEmployeeRequest{Email: "ana@empresa.com", Department: "TI"},
		},
		{
			name: "bad email",
			req:  employee.CreateEmployeeRequest{Name: "Ana", Email: "not-an-email", Department: "TI"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestRosterService_Update(t *testing.T) {
	ctx := context.Background()
	employeeRepo := newFakeEmployeeRepo(
		employee.Employee{ID: "emp-1", Name: "Ana Souza", Email: "ana@empresa.com", Department: "Comercial"},
	)
	svc := NewRosterService(nil, employeeRepo, &fakeLeaveRepo{}, testStorage(t))

	newDep := "Financeiro"
	emp, err := svc.Update(ctx, employee.UpdateEmployeeRequest{ID: "emp-1", Department: &newDep})
	require.NoError(t, err)
	assert.Equal(t, "Financeiro", emp.Department)
	assert.Equal(t, "Ana Souza", emp.Name)
}

func TestRosterService_Update_NoFields(t *testing.T) {
	ctx := context.Background()
	employeeRepo := newFakeEmployeeRepo(
		employee.Employee{ID: "emp-1", Name: "Ana Souza", Email: "ana@empresa.com", Department: "Comercial"},
	)
	svc := NewRosterService(nil, employeeRepo, &fakeLeaveRepo{}, testStorage(t))

	_, err := svc.Update(ctx, employee.UpdateEmployeeRequest{ID: "emp-1"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "fields")
}

func TestRosterService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewRosterService(nil, newFakeEmployeeRepo(), &fakeLeaveRepo{}, testStorage(t))

	name := "Ana"
	_, err := svc.Update(ctx, employee.UpdateEmployeeRequest{ID: "c7b9c9a0-0000-0000-0000-000000000000", Name: &name})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRosterService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewRosterService(nil, newFakeEmployeeRepo(), &fakeLeaveRepo{}, testStorage(t))

	err := svc.Delete(ctx, "emp-ghost")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

// passthroughTx stands in for the transactional runner under the fakes.
func passthroughTx(ctx context.Context, db *database.DB, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestRosterService_Delete_CascadesLeaveRequests(t *testing.T) {
	ctx := context.Background()
	employeeRepo := newFakeEmployeeRepo(
		employee.Employee{ID: "emp-1", Name: "Ana Souza", Email: "ana@empresa.com", Department: "Comercial"},
	)
	leaveRepo := &fakeLeaveRepo{}
	svc := NewRosterService(nil, employeeRepo, leaveRepo, testStorage(t))
	svc.runTx = passthroughTx

	require.NoError(t, svc.Delete(ctx, "emp-1"))

	// Leave requests went first, then the employee
	assert.Equal(t, []string{"emp-1"}, leaveRepo.deletedFor)
	_, err := employeeRepo.GetByID(ctx, "emp-1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRosterService_Delete_LeaveFailureKeepsEmployee(t *testing.T) {
	ctx := context.Background()
	employeeRepo := newFakeEmployeeRepo(
		employee.Employee{ID: "emp-1", Name: "Ana Souza", Email: "ana@empresa.com", Department: "Comercial"},
	)
	leaveRepo := &fakeLeaveRepo{deleteErr: errors.New("connection refused")}
	svc := NewRosterService(nil, employeeRepo, leaveRepo, testStorage(t))
	svc.runTx = passthroughTx

	err := svc.Delete(ctx, "emp-1")
	require.Error(t, err)

	_, err = employeeRepo.GetByID(ctx, "emp-1")
	assert.NoError(t, err)
}

func mustOpen(t *testing.T, path string) *os.File {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func testPhoto(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 20), G: uint8(y * 20), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRosterService_UploadPhoto(t *testing.T) {
	ctx := context.Background()
	employeeRepo := newFakeEmployeeRepo(
		employee.Employee{ID: "emp-1", Name: "Ana Souza", Email: "ana@empresa.com", Department: "Comercial"},
	)
	dir := t.TempDir()
	files, err := storage.NewLocalStorage(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)
	svc := NewRosterService(nil, employeeRepo, &fakeLeaveRepo{}, files)

	emp, err := svc.UploadPhoto(ctx, "emp-1", testPhoto(t, 40, 30))
	require.NoError(t, err)

	require.NotNil(t, emp.PhotoURL)
	assert.True(t, strings.HasPrefix(*emp.PhotoURL, "http://localhost:8080/uploads/avatars/emp-1.png?v="))

	// The normalized avatar landed on disk
	stored, err := files.Exists(ctx, "avatars/emp-1.png")
	require.NoError(t, err)
	assert.True(t, stored)

	f, err := png.DecodeConfig(mustOpen(t, filepath.Join(dir, "avatars", "emp-1.png")))
	require.NoError(t, err)
	assert.Equal(t, imaging.AvatarSize, f.Width)
	assert.Equal(t, imaging.AvatarSize, f.Height)
}

func TestRosterService_UploadPhoto_ReplaceKeepsSingleFile(t *testing.T) {
	ctx := context.Background()
	employeeRepo := newFakeEmployeeRepo(
		employee.Employee{ID: "emp-1", Name: "Ana Souza", Email: "ana@empresa.com", Department: "Comercial"},
	)
	files := testStorage(t)
	svc := NewRosterService(nil, employeeRepo, &fakeLeaveRepo{}, files)

	first, err := svc.UploadPhoto(ctx, "emp-1", testPhoto(t, 40, 30))
	require.NoError(t, err)
	second, err := svc.UploadPhoto(ctx, "emp-1", testPhoto(t, 64, 64))
	require.NoError(t, err)

	// Same stable key, fresh cache-busting tag
	require.NotNil(t, first.PhotoURL)
	require.NotNil(t, second.PhotoURL)
	assert.NotEqual(t, *first.PhotoURL, *second.PhotoURL)
}

func TestRosterService_UploadPhoto_RejectsGarbage(t *testing.T) {
	ctx := context.Background()
	employeeRepo := newFakeEmployeeRepo(
		employee.Employee{ID: "emp-1", Name: "Ana Souza", Email: "ana@empresa.com", Department: "Comercial"},
	)
	svc := NewRosterService(nil, employeeRepo, &fakeLeaveRepo{}, testStorage(t))

	_, err := svc.UploadPhoto(ctx, "emp-1", []byte("definitely not an image"))
	assert.ErrorIs(t, err, imaging.ErrUnsupportedImage)
}
