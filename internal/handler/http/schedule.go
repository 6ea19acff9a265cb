package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/folgas-app/folgas-backend-go/internal/domain/leave"
	"github.com/folgas-app/folgas-backend-go/internal/handler/http/response"
	"github.com/folgas-app/folgas-backend-go/internal/pkg/calendar"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	GetSchedule(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Toggle(w http.ResponseWriter, r *http.Request)
	DeleteRequest(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService leave.ScheduleService
}

func NewScheduleHandler(scheduleService leave.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// schedulePayload is the full month view the UI renders from.
type schedulePayload struct {
	Snapshot leave.Snapshot     `json:"snapshot"`
	Fridays  []leave.FridayCard `json:"fridays"`
	Stats    leave.Stats        `json:"stats"`
}

func buildSchedulePayload(snap leave.Snapshot, selectedKey string) schedulePayload {
	return schedulePayload{
		Snapshot: snap,
		Fridays:  snap.FridayCards(),
		Stats:    snap.Stats(selectedKey),
	}
}

// parsePeriod reads year/month query params, defaulting to the current month
// the way the original page opens on today's period.
func parsePeriod(r *http.Request) (int, time.Month, bool) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil {
			return 0, 0, false
		}
		year = y
	}

	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, false
		}
		month = time.Month(m)
	}

	return year, month, true
}

// selectedKey converts an optional ISO date query param into the display-form
// snapshot key.
func selectedKey(r *http.Request) (string, bool) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		return "", true
	}
	d, err := calendar.ParseISO(dateStr)
	if err != nil {
		return "", false
	}
	return calendar.FormatDisplay(d), true
}

// GetSchedule implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetSchedule(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parsePeriod(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	key, ok := selectedKey(r)
	if !ok {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	snap, err := h.scheduleService.Sync(r.Context(), year, month)
	if err != nil {
		slog.Error("schedule sync failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, buildSchedulePayload(snap, key))
}

// GetStats implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parsePeriod(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	key, ok := selectedKey(r)
	if !ok {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	snap, err := h.scheduleService.Sync(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, snap.Stats(key))
}

// Register implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req leave.RegisterLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	snap, err := h.scheduleService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request registered", buildSchedulePayload(snap, ""))
}

// Approve implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.scheduleService.Approve, "Leave request approved")
}

// Reject implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.scheduleService.Reject, "Leave request rejected")
}

// Toggle implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Toggle(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.scheduleService.Toggle, "Leave request toggled")
}

// DeleteRequest implements ScheduleHandler.
func (h *ScheduleHandlerImpl) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.scheduleService.Remove, "Leave request removed")
}

func (h *ScheduleHandlerImpl) transition(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id string) (leave.Snapshot, error),
	message string,
) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	snap, err := fn(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, buildSchedulePayload(snap, ""))
}
