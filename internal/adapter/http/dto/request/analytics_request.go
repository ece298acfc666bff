package request

import (
	"errors"
	"strings"
	"time"

	"npc_garage/internal/usecase"
)

var (
	ErrInvalidDate = errors.New("invalid date")
)

const dateLayout = "2006-01-02"

// AnalyticsQuery is the query string shared by the analytics endpoints.
// Dates accept YYYY-MM-DD (read in the server's local time) or RFC3339.
type AnalyticsQuery struct {
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	MechanicID string `form:"mechanic_id"`
	Limit      int    `form:"limit"`
	Months     int    `form:"months"`
}

// ToReportQuery parses the dates. Missing dates are left zero so the use case
// can reject the period.
func (q AnalyticsQuery) ToReportQuery() (usecase.ReportQuery, error) {
	start, err := parseDate(q.StartDate)
	if err != nil {
		return usecase.ReportQuery{}, err
	}
	end, err := parseDate(q.EndDate)
	if err != nil {
		return usecase.ReportQuery{}, err
	}
	return usecase.ReportQuery{
		Start:      start,
		End:        end,
		MechanicID: strings.TrimSpace(q.MechanicID),
		Limit:      q.Limit,
		Months:     q.Months,
	}, nil
}

func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation(dateLayout, v, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
