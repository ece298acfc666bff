package analytics

import (
	"strings"
	"time"

	"npc_garage/internal/domain/entities"
)

// AllMechanics disables the mechanic filter of a Window.
const AllMechanics = "ALL"

// Window is the reporting period plus the optional mechanic filter.
//
// End is inclusive up to the last instant of its calendar day, whatever time
// component it carries.
type Window struct {
	Start      time.Time
	End        time.Time
	MechanicID string
}

// EndOfDay returns 23:59:59.999 of End's calendar day, in End's location.
func (w Window) EndOfDay() time.Time {
	y, m, d := w.End.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), w.End.Location())
}

// Contains reports whether t lies in [Start, EndOfDay].
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.EndOfDay())
}

func (w Window) filtersMechanic() bool {
	id := strings.TrimSpace(w.MechanicID)
	return id != "" && id != AllMechanics
}

// Filter keeps the COMPLETED estimates dated inside the window and, when a
// mechanic is selected, assigned to that mechanic. Input order is preserved.
func Filter(estimates []entities.Estimate, w Window) []entities.Estimate {
	out := make([]entities.Estimate, 0, len(estimates))
	for _, e := range estimates {
		if !e.IsCompleted() {
			continue
		}
		if !w.Contains(e.Date) {
			continue
		}
		if w.filtersMechanic() && !e.HasMechanic(strings.TrimSpace(w.MechanicID)) {
			continue
		}
		out = append(out, e)
	}
	return out
}
