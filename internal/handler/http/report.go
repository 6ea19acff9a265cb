package http

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/folgas-app/folgas-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	ExportSchedule(w http.ResponseWriter, r *http.Request)
}

// ScheduleExporter is the report service's contract.
type ScheduleExporter interface {
	ExportSchedule(ctx context.Context, year int, month time.Month) (*bytes.Buffer, string, error)
}

type ReportHandlerImpl struct {
	reportService ScheduleExporter
}

func NewReportHandler(reportService ScheduleExporter) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// ExportSchedule implements ReportHandler: streams the month's schedule as
// an XLSX download.
func (h *ReportHandlerImpl) ExportSchedule(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parsePeriod(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	buf, filename, err := h.reportService.ExportSchedule(r.Context(), year, month)
	if err != nil {
		slog.Error("schedule export failed", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write workbook", "error", err)
	}
}
