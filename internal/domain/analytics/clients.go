package analytics

import (
	"time"

	"npc_garage/internal/domain/entities"
)

// ClientKey resolves the identity used to recognise a returning client:
// phone, else email, else name. The comparison is exact (no trimming or case
// folding). An empty result means the record has no identity.
func ClientKey(c entities.Customer) string {
	switch {
	case c.Phone != "":
		return c.Phone
	case c.Email != "":
		return c.Email
	default:
		return c.Name
	}
}

type ClientSegments struct {
	TotalClients     int `json:"total_clients"`
	NewClients       int `json:"new_clients"`
	RecurringClients int `json:"recurring_clients"`
}

// SegmentClients classifies the clients seen in filtered as new or
// recurring.
//
// First visits are taken from all estimates, whatever their status or date,
// so a client whose first visit predates the window is recurring even when
// only one of their records falls inside it. TotalClients is global too.
func SegmentClients(all, filtered []entities.Estimate, w Window) ClientSegments {
	firstVisit := make(map[string]time.Time, len(all))
	for _, e := range all {
		key := ClientKey(e.Customer)
		if key == "" {
			continue
		}
		if seen, ok := firstVisit[key]; !ok || e.Date.Before(seen) {
			firstVisit[key] = e.Date
		}
	}

	inPeriod := make(map[string]struct{})
	for _, e := range filtered {
		key := ClientKey(e.Customer)
		if key == "" {
			continue
		}
		inPeriod[key] = struct{}{}
	}

	newClients := 0
	for key := range inPeriod {
		first, ok := firstVisit[key]
		if !ok || w.Contains(first) {
			// A client missing from the history has no visit before this period.
			newClients++
		}
	}

	return ClientSegments{
		TotalClients:     len(firstVisit),
		NewClients:       newClients,
		RecurringClients: len(inPeriod) - newClients,
	}
}
