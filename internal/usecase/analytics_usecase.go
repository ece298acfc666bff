package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"npc_garage/internal/domain/analytics"
	"npc_garage/internal/domain/entities"
	"npc_garage/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

var (
	ErrInvalidPeriod = errors.New("invalid period")
	ErrInvalidLimit  = errors.New("invalid limit")
)

// ReportQuery is the dashboard filter. A zero Limit or Months falls back to
// the configured defaults.
type ReportQuery struct {
	Start      time.Time
	End        time.Time
	MechanicID string
	Limit      int
	Months     int
}

// IAnalyticsUseCase exposes the financial analytics views of the dashboard.
//
//   - Report bundles every aggregate for one period
//   - the remaining methods compute a single view and load only what it needs

//go:generate mockgen -source=analytics_usecase.go -destination=../adapter/http/handlers/mocks/analytics_usecase_mock.go -package=mocks

type IAnalyticsUseCase interface {
	Report(ctx context.Context, q ReportQuery) (analytics.Report, error)
	KPIs(ctx context.Context, q ReportQuery) (analytics.KPIs, error)
	ClientSegments(ctx context.Context, q ReportQuery) (analytics.ClientSegments, error)
	MechanicPerformance(ctx context.Context, q ReportQuery) ([]analytics.MechanicPerformance, error)
	TopServices(ctx context.Context, q ReportQuery) ([]analytics.RankedItem, error)
	TopParts(ctx context.Context, q ReportQuery) ([]analytics.RankedItem, error)
	MonthlyRevenue(ctx context.Context, months int) ([]analytics.MonthBucket, error)
}

type AnalyticsUseCase struct {
	estimates interfaces.IEstimateRepository
	stock     interfaces.IStockRepository
	mechanics interfaces.IMechanicRepository

	now    func() time.Time
	topN   int
	months int
	log    zerolog.Logger
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

type Option func(*AnalyticsUseCase)

func WithClock(now func() time.Time) Option {
	return func(u *AnalyticsUseCase) { u.now = now }
}

// WithDefaults sets the ranking size and monthly span used when a query
// leaves them at zero. Non-positive values keep the engine defaults.
func WithDefaults(topN, months int) Option {
	return func(u *AnalyticsUseCase) {
		if topN > 0 {
			u.topN = topN
		}
		if months > 0 {
			u.months = months
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(u *AnalyticsUseCase) { u.log = l }
}

func NewAnalyticsUseCase(
	estimates interfaces.IEstimateRepository,
	stock interfaces.IStockRepository,
	mechanics interfaces.IMechanicRepository,
	opts ...Option,
) *AnalyticsUseCase {
	u := &AnalyticsUseCase{
		estimates: estimates,
		stock:     stock,
		mechanics: mechanics,
		now:       time.Now,
		topN:      analytics.DefaultTopN,
		months:    analytics.DefaultMonths,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *AnalyticsUseCase) Report(ctx context.Context, q ReportQuery) (analytics.Report, error) {
	w, err := u.window(q)
	if err != nil {
		return analytics.Report{}, err
	}
	topN, months, err := u.limits(q.Limit, q.Months)
	if err != nil {
		return analytics.Report{}, err
	}

	all, err := u.listEstimates(ctx)
	if err != nil {
		return analytics.Report{}, err
	}
	stock, err := u.listStock(ctx)
	if err != nil {
		return analytics.Report{}, err
	}
	mechanics, err := u.listMechanics(ctx)
	if err != nil {
		return analytics.Report{}, err
	}

	report := analytics.BuildReport(analytics.ReportInput{
		Estimates: all,
		Stock:     stock,
		Mechanics: mechanics,
		Window:    w,
		Now:       u.now(),
		TopN:      topN,
		Months:    months,
	})
	u.log.Info().
		Time("start", w.Start).
		Time("end", w.End).
		Str("mechanic_id", w.MechanicID).
		Int("completed", report.KPIs.CompletedCount).
		Msg("[analytics][usecase] report built")
	return report, nil
}

func (u *AnalyticsUseCase) KPIs(ctx context.Context, q ReportQuery) (analytics.KPIs, error) {
	w, err := u.window(q)
	if err != nil {
		return analytics.KPIs{}, err
	}
	all, err := u.listEstimates(ctx)
	if err != nil {
		return analytics.KPIs{}, err
	}
	stock, err := u.listStock(ctx)
	if err != nil {
		return analytics.KPIs{}, err
	}
	return analytics.ComputeKPIs(analytics.Filter(all, w), analytics.NewStockCosts(stock)), nil
}

func (u *AnalyticsUseCase) ClientSegments(ctx context.Context, q ReportQuery) (analytics.ClientSegments, error) {
	w, err := u.window(q)
	if err != nil {
		return analytics.ClientSegments{}, err
	}
	all, err := u.listEstimates(ctx)
	if err != nil {
		return analytics.ClientSegments{}, err
	}
	return analytics.SegmentClients(all, analytics.Filter(all, w), w), nil
}

func (u *AnalyticsUseCase) MechanicPerformance(ctx context.Context, q ReportQuery) ([]analytics.MechanicPerformance, error) {
	w, err := u.window(q)
	if err != nil {
		return nil, err
	}
	all, err := u.listEstimates(ctx)
	if err != nil {
		return nil, err
	}
	mechanics, err := u.listMechanics(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.AttributeMechanics(analytics.Filter(all, w), mechanics), nil
}

func (u *AnalyticsUseCase) TopServices(ctx context.Context, q ReportQuery) ([]analytics.RankedItem, error) {
	w, err := u.window(q)
	if err != nil {
		return nil, err
	}
	topN, _, err := u.limits(q.Limit, 0)
	if err != nil {
		return nil, err
	}
	all, err := u.listEstimates(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.TopServices(analytics.Filter(all, w), topN), nil
}

func (u *AnalyticsUseCase) TopParts(ctx context.Context, q ReportQuery) ([]analytics.RankedItem, error) {
	w, err := u.window(q)
	if err != nil {
		return nil, err
	}
	topN, _, err := u.limits(q.Limit, 0)
	if err != nil {
		return nil, err
	}
	all, err := u.listEstimates(ctx)
	if err != nil {
		return nil, err
	}
	stock, err := u.listStock(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.TopParts(analytics.Filter(all, w), analytics.NewStockCosts(stock), topN), nil
}

func (u *AnalyticsUseCase) MonthlyRevenue(ctx context.Context, months int) ([]analytics.MonthBucket, error) {
	_, months, err := u.limits(0, months)
	if err != nil {
		return nil, err
	}
	all, err := u.listEstimates(ctx)
	if err != nil {
		return nil, err
	}
	stock, err := u.listStock(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.MonthlyRevenue(all, analytics.NewStockCosts(stock), u.now(), months), nil
}

func (u *AnalyticsUseCase) window(q ReportQuery) (analytics.Window, error) {
	if q.Start.IsZero() || q.End.IsZero() {
		return analytics.Window{}, ErrInvalidPeriod
	}
	mechanicID := q.MechanicID
	if mechanicID == "" {
		mechanicID = analytics.AllMechanics
	}
	w := analytics.Window{Start: q.Start, End: q.End, MechanicID: mechanicID}
	// End covers its whole calendar day.
	if q.Start.After(w.EndOfDay()) {
		return analytics.Window{}, ErrInvalidPeriod
	}
	return w, nil
}

func (u *AnalyticsUseCase) limits(limit, months int) (int, int, error) {
	if limit < 0 || months < 0 {
		return 0, 0, ErrInvalidLimit
	}
	if limit == 0 {
		limit = u.topN
	}
	if months == 0 {
		months = u.months
	}
	return limit, months, nil
}

func (u *AnalyticsUseCase) listEstimates(ctx context.Context) ([]entities.Estimate, error) {
	out, err := u.estimates.ListAll(ctx)
	if err != nil {
		u.log.Error().Err(err).Msg("[analytics][usecase] list estimates failed")
		return nil, fmt.Errorf("list estimates: %w", err)
	}
	return out, nil
}

func (u *AnalyticsUseCase) listStock(ctx context.Context) ([]entities.StockItem, error) {
	out, err := u.stock.ListAll(ctx)
	if err != nil {
		u.log.Error().Err(err).Msg("[analytics][usecase] list stock failed")
		return nil, fmt.Errorf("list stock: %w", err)
	}
	return out, nil
}

func (u *AnalyticsUseCase) listMechanics(ctx context.Context) ([]entities.Mechanic, error) {
	out, err := u.mechanics.ListAll(ctx)
	if err != nil {
		u.log.Error().Err(err).Msg("[analytics][usecase] list mechanics failed")
		return nil, fmt.Errorf("list mechanics: %w", err)
	}
	return out, nil
}
