package report

import (
	"context"
	"testing"
	"time"

	"github.com/folgas-app/folgas-backend-go/internal/domain/employee"
	"github.com/folgas-app/folgas-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type stubScheduleService struct {
	snap leave.Snapshot
	err  error
}

func (s *stubScheduleService) Sync(ctx context.Context, year int, month time.Month) (leave.Snapshot, error) {
	return s.snap, s.err
}

func (s *stubScheduleService) Current() (leave.Snapshot, bool) { return s.snap, true }

func (s *stubScheduleService) Register(ctx context.Context, req leave.RegisterLeaveRequest) (leave.Snapshot, error) {
	return s.snap, s.err
}

func (s *stubScheduleService) Approve(ctx context.Context, id string) (leave.Snapshot, error) {
	return s.snap, s.err
}

func (s *stubScheduleService) Reject(ctx context.Context, id string) (leave.Snapshot, error) {
	return s.snap, s.err
}

func (s *stubScheduleService) Remove(ctx context.Context, id string) (leave.Snapshot, error) {
	return s.snap, s.err
}

func (s *stubScheduleService) Toggle(ctx context.Context, id string) (leave.Snapshot, error) {
	return s.snap, s.err
}

func TestReportService_ExportSchedule(t *testing.T) {
	ana := employee.Employee{ID: "emp-ana", Name: "Ana Souza", Email: "ana@empresa.com", Department: "Comercial"}
	bruno := employee.Employee{ID: "emp-bruno", Name: "Bruno Lima", Email: "bruno@empresa.com", Department: "TI"}

	snap := leave.Snapshot{
		Year:   2025,
		Month:  time.September,
		Roster: []employee.Employee{ana, bruno},
		Days: map[string][]leave.Entry{
			"05/09/2025": {
				{RequestID: "req-1", EmployeeID: ana.ID, Status: leave.StatusApproved, Notes: "Viagem", Employee: &ana},
			},
			"12/09/2025": {
				{RequestID: "req-2", EmployeeID: bruno.ID, Status: leave.StatusPending, Notes: leave.DefaultPendingNotes, Employee: &bruno},
			},
		},
	}

	svc := NewReportService(&stubScheduleService{snap: snap})
	buf, filename, err := svc.ExportSchedule(context.Background(), 2025, time.September)
	require.NoError(t, err)
	assert.Equal(t, "folgas-2025-09.xlsx", filename)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	header, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Sexta-feira", header)

	// First data row: Ana's approved leave on the first Friday
	date, _ := f.GetCellValue(sheetName, "A2")
	name, _ := f.GetCellValue(sheetName, "B2")
	status, _ := f.GetCellValue(sheetName, "E2")
	notes, _ := f.GetCellValue(sheetName, "F2")
	assert.Equal(t, "05/09/2025", date)
	assert.Equal(t, "Ana Souza", name)
	assert.Equal(t, "Folga", status)
	assert.Equal(t, "Viagem", notes)

	// Second data row: Bruno's pending request on the second Friday
	status, _ = f.GetCellValue(sheetName, "E3")
	assert.Equal(t, "Pendente", status)

	// Totals block after the blank spacer row
	label, _ := f.GetCellValue(sheetName, "A5")
	total, _ := f.GetCellValue(sheetName, "B5")
	assert.Equal(t, "Colaboradores", label)
	assert.Equal(t, "2", total)

	approvedLabel, _ := f.GetCellValue(sheetName, "A6")
	approvedCount, _ := f.GetCellValue(sheetName, "B6")
	assert.Equal(t, "Folgas aprovadas", approvedLabel)
	assert.Equal(t, "1", approvedCount)

	pendingCount, _ := f.GetCellValue(sheetName, "B7")
	assert.Equal(t, "1", pendingCount)

	rejectedCount, _ := f.GetCellValue(sheetName, "B8")
	assert.Equal(t, "0", rejectedCount)
}

func TestReportService_ExportSchedule_EmptyMonth(t *testing.T) {
	snap := leave.Snapshot{Year: 2025, Month: time.October, Days: map[string][]leave.Entry{}}
	svc := NewReportService(&stubScheduleService{snap: snap})

	buf, filename, err := svc.ExportSchedule(context.Background(), 2025, time.October)
	require.NoError(t, err)
	assert.Equal(t, "folgas-2025-10.xlsx", filename)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	// Only the header and the totals survive an empty month
	label, _ := f.GetCellValue(sheetName, "A3")
	assert.Equal(t, "Colaboradores", label)
}
