package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"npc_garage/internal/adapter/http/handlers/mocks"
	"npc_garage/internal/domain/analytics"
	"npc_garage/internal/usecase"
	"npc_garage/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type fakeExporter struct {
	data []byte
	err  error
}

func (f fakeExporter) Generate(analytics.Report) ([]byte, error) {
	return f.data, f.err
}

func newTestRouter(h *AnalyticsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/analytics/report", h.GetReport)
	r.GET("/v1/analytics/report/export", h.ExportReport)
	r.GET("/v1/analytics/kpis", h.GetKPIs)
	r.GET("/v1/analytics/clients", h.GetClientSegments)
	r.GET("/v1/analytics/mechanics", h.GetMechanicPerformance)
	r.GET("/v1/analytics/rankings/services", h.GetTopServices)
	r.GET("/v1/analytics/rankings/parts", h.GetTopParts)
	r.GET("/v1/analytics/revenue/monthly", h.GetMonthlyRevenue)
	return r
}

func do(r *gin.Engine, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body
}

const marchQuery = "?start_date=2024-03-01&end_date=2024-03-31"

func TestAnalyticsHandler_GetReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc, fakeExporter{})

		uc.EXPECT().Report(gomock.Any(), gomock.AssignableToTypeOf(usecase.ReportQuery{})).DoAndReturn(
			func(_ context.Context, q usecase.ReportQuery) (analytics.Report, error) {
				if q.MechanicID != "m1" || q.Limit != 3 || q.Start.Day() != 1 || q.End.Day() != 31 {
					t.Fatalf("unexpected query: %+v", q)
				}
				return analytics.Report{
					Window: analytics.Window{Start: q.Start, End: q.End, MechanicID: q.MechanicID},
					KPIs:   analytics.KPIs{TotalRevenue: 160, CompletedCount: 1},
				}, nil
			},
		)

		w := do(newTestRouter(h), "/v1/analytics/report"+marchQuery+"&mechanic_id=m1&limit=3")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Period struct {
				StartDate  string `json:"start_date"`
				MechanicID string `json:"mechanic_id"`
			} `json:"period"`
			KPIs analytics.KPIs `json:"kpis"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Period.StartDate != "2024-03-01" || body.Period.MechanicID != "m1" || body.KPIs.TotalRevenue != 160 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAnalyticsHandler(mocks.NewMockIAnalyticsUseCase(ctrl), fakeExporter{})

		w := do(newTestRouter(h), "/v1/analytics/report?start_date=yesterday&end_date=2024-03-31")
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "INVALID_REQUEST" {
			t.Fatalf("expected INVALID_REQUEST, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("non numeric limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAnalyticsHandler(mocks.NewMockIAnalyticsUseCase(ctrl), fakeExporter{})

		w := do(newTestRouter(h), "/v1/analytics/report"+marchQuery+"&limit=abc")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc, fakeExporter{})

		uc.EXPECT().Report(gomock.Any(), gomock.Any()).Return(analytics.Report{}, usecase.ErrInvalidPeriod)

		w := do(newTestRouter(h), "/v1/analytics/report")
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "INVALID_PERIOD" {
			t.Fatalf("expected INVALID_PERIOD, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc, fakeExporter{})

		uc.EXPECT().Report(gomock.Any(), gomock.Any()).Return(analytics.Report{}, errors.New("db"))

		w := do(newTestRouter(h), "/v1/analytics/report"+marchQuery)
		if w.Code != http.StatusInternalServerError || decodeError(t, w).Code != "INTERNAL_ERROR" {
			t.Fatalf("expected INTERNAL_ERROR, got %d: %s", w.Code, w.Body.String())
		}
		if strings.Contains(w.Body.String(), "db") {
			t.Fatalf("internal cause leaked: %s", w.Body.String())
		}
	})
}

func TestAnalyticsHandler_ExportReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	report := analytics.Report{Window: analytics.Window{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc, fakeExporter{data: []byte("PK")})

		uc.EXPECT().Report(gomock.Any(), gomock.Any()).Return(report, nil)

		w := do(newTestRouter(h), "/v1/analytics/report/export"+marchQuery)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") != xlsxContentType {
			t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
		}
		if !strings.Contains(w.Header().Get("Content-Disposition"), "analytics_2024-03-01_2024-03-31.xlsx") {
			t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
		}
		if w.Body.String() != "PK" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})

	t.Run("generator failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc, fakeExporter{err: errors.New("zip")})

		uc.EXPECT().Report(gomock.Any(), gomock.Any()).Return(report, nil)

		w := do(newTestRouter(h), "/v1/analytics/report/export"+marchQuery)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestAnalyticsHandler_FocusedViews(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("kpis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc, fakeExporter{})

		uc.EXPECT().KPIs(gomock.Any(), gomock.Any()).Return(analytics.KPIs{TotalProfit: 42}, nil)

		w := do(newTestRouter(h), "/v1/analytics/kpis"+marchQuery)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"total_profit":42`) {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("clients", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc, fakeExporter{})

		uc.EXPECT().ClientSegments(gomock.Any(), gomock.Any()).Return(analytics.ClientSegments{TotalClients: 4, NewClients: 1, RecurringClients: 2}, nil)

		w := do(newTestRouter(h), "/v1/analytics/clients"+marchQuery)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"recurring_clients":2`) {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("mechanics with no data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc, fakeExporter{})

		uc.EXPECT().MechanicPerformance(gomock.Any(), gomock.Any()).Return(nil, nil)

		w := do(newTestRouter(h), "/v1/analytics/mechanics"+marchQuery)
		if w.Code != http.StatusOK || w.Body.String() != `{"items":[]}` {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("top services", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc, fakeExporter{})

		uc.EXPECT().TopServices(gomock.Any(), gomock.Any()).Return([]analytics.RankedItem{{Label: "Oil change", Profit: 100}}, nil)

		w := do(newTestRouter(h), "/v1/analytics/rankings/services"+marchQuery)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"label":"Oil change"`) {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("top parts negative limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc, fakeExporter{})

		uc.EXPECT().TopParts(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidLimit)

		w := do(newTestRouter(h), "/v1/analytics/rankings/parts"+marchQuery+"&limit=-1")
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "INVALID_REQUEST" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("monthly revenue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc, fakeExporter{})

		uc.EXPECT().MonthlyRevenue(gomock.Any(), 2).Return([]analytics.MonthBucket{
			{Year: 2024, Month: time.February},
			{Year: 2024, Month: time.March, Revenue: 160},
		}, nil)

		w := do(newTestRouter(h), "/v1/analytics/revenue/monthly?months=2")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Items []struct {
				Period  string  `json:"period"`
				Revenue float64 `json:"revenue"`
			} `json:"items"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(body.Items) != 2 || body.Items[1].Period != "2024-03" || body.Items[1].Revenue != 160 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
