package leave

import (
	"time"

	"github.com/folgas-app/folgas-backend-go/internal/domain/employee"
	"github.com/folgas-app/folgas-backend-go/internal/pkg/calendar"
)

// Entry is one leave request merged with its employee snapshot. Employee is
// nil when the request references someone no longer on the roster; the UI
// renders a placeholder instead of failing.
type Entry struct {
	RequestID  string             `json:"request_id"`
	EmployeeID string             `json:"employee_id"`
	Status     Status             `json:"status"`
	Notes      string             `json:"notes"`
	Employee   *employee.Employee `json:"employee,omitempty"`
}

// Snapshot is the per-month view model: the roster plus the month's entries
// grouped by display-form date key (DD/MM/YYYY). It is rebuilt wholesale on
// every sync and never patched in place.
type Snapshot struct {
	Year   int                 `json:"year"`
	Month  time.Month          `json:"month"`
	Roster []employee.Employee `json:"roster"`
	Days   map[string][]Entry  `json:"days"`
}

// Stats are the header numbers for a selected Friday (or none).
type Stats struct {
	TotalEmployees int `json:"total_employees"`
	OnLeave        int `json:"on_leave"`
	Pending        int `json:"pending"`
	Working        int `json:"working"`
	HeaderPending  int `json:"header_pending"`
}

// FridayCard is one selectable Friday of the month with its request count.
type FridayCard struct {
	Date  string `json:"date"` // DD/MM/YYYY
	Day   int    `json:"day"`
	Count int    `json:"count"`
}

// Stats derives the counters for selectedKey ("" means no selection). Working
// is a complement, floored at zero to tolerate entries whose employee has
// left the roster.
func (s Snapshot) Stats(selectedKey string) Stats {
	st := Stats{TotalEmployees: len(s.Roster)}

	if selectedKey != "" {
		for _, e := range s.Days[selectedKey] {
			switch e.Status {
			case StatusApproved:
				st.OnLeave++
			case StatusPending:
				st.Pending++
			}
		}
	}

	st.Working = st.TotalEmployees - st.OnLeave - st.Pending
	if st.Working < 0 {
		st.Working = 0
	}

	for _, entries := range s.Days {
		for _, e := range entries {
			if e.Status == StatusPending {
				st.HeaderPending++
			}
		}
	}

	return st
}

// FridayCards lists the month's Fridays with per-date counts. Only the three
// persisted statuses count; nothing else ever reaches a snapshot.
func (s Snapshot) FridayCards() []FridayCard {
	fridays := calendar.FridaysInMonth(s.Year, s.Month)
	cards := make([]FridayCard, 0, len(fridays))
	for _, d := range fridays {
		key := calendar.FormatDisplay(d)
		count := 0
		for _, e := range s.Days[key] {
			if e.Status.Valid() {
				count++
			}
		}
		cards = append(cards, FridayCard{Date: key, Day: d.Day(), Count: count})
	}
	return cards
}

// RegisteredEmployeeIDs returns the ids already holding a request on the
// given date, so the UI can exclude them from the registration select.
func (s Snapshot) RegisteredEmployeeIDs(key string) []string {
	entries := s.Days[key]
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.EmployeeID)
	}
	return ids
}
