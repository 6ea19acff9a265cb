package leave

import "testing"

func TestStatusValid(t *testing.T) {
	valid := []Status{StatusPending, StatusApproved, StatusRejected}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("Status(%q).Valid() = false, want true", s)
		}
	}
	invalid := []Status{"", "Working", "pending", "Folga"}
	for _, s := range invalid {
		if s.Valid() {
			t.Errorf("Status(%q).Valid() = true, want false", s)
		}
	}
}

func TestStatusDisplay(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{StatusPending, "Pendente"},
		{StatusApproved, "Folga"},
		{StatusRejected, "Rejeitada"},
		{Status("bogus"), "—"},
	}
	for _, c := range cases {
		if got := c.status.Display(); got != c.want {
			t.Errorf("Status(%q).Display() = %q, want %q", c.status, got, c.want)
		}
	}
}
