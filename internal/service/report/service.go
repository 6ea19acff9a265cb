package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/folgas-app/folgas-backend-go/internal/domain/leave"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Folgas"

type Service struct {
	schedule leave.ScheduleService
}

func NewReportService(schedule leave.ScheduleService) *Service {
	return &Service{schedule: schedule}
}

// ExportSchedule renders the month's schedule as an XLSX workbook: one row
// per leave request grouped under its Friday, then the month's totals.
// Returns the workbook bytes and a suggested file name.
func (s *Service) ExportSchedule(ctx context.Context, year int, month time.Month) (*bytes.Buffer, string, error) {
	snap, err := s.schedule.Sync(ctx, year, month)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headers := []interface{}{"Sexta-feira", "Colaborador", "E-mail", "Setor", "Status", "Observações"}
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, "", err
	}

	row := 2
	pending, approved, rejected := 0, 0, 0
	for _, card := range snap.FridayCards() {
		for _, entry := range snap.Days[card.Date] {
			name, email, department := "—", "", ""
			if entry.Employee != nil {
				name = entry.Employee.Name
				email = entry.Employee.Email
				department = entry.Employee.Department
			}

			cells := []interface{}{card.Date, name, email, department, entry.Status.Display(), entry.Notes}
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
				return nil, "", err
			}
			row++

			switch entry.Status {
			case leave.StatusPending:
				pending++
			case leave.StatusApproved:
				approved++
			case leave.StatusRejected:
				rejected++
			}
		}
	}

	row++ // blank line before the totals
	totals := [][]interface{}{
		{"Colaboradores", len(snap.Roster)},
		{"Folgas aprovadas", approved},
		{"Pendentes", pending},
		{"Rejeitadas", rejected},
	}
	for _, line := range totals {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetSheetRow(sheetName, cell, &line); err != nil {
			return nil, "", err
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to serialize workbook: %w", err)
	}

	filename := fmt.Sprintf("folgas-%04d-%02d.xlsx", year, int(month))
	return buf, filename, nil
}
