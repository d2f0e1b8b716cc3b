//go:build e2e

package lounge_test

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"lounge-pos/internal/handler/dto/request"
	"lounge-pos/internal/handler/dto/response"
	"lounge-pos/tests/common/httptest"
	"lounge-pos/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

type loungeSuite struct {
	e2e.SharedSuite
	token string
}

func TestLoungeSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(loungeSuite))
}

func (s *loungeSuite) SetupTest() {
	s.SharedSuite.SetupTest()
	s.token = s.JWT.GenerateToken(s.T(), e2e.OperatorName)
}

func (s *loungeSuite) do(method, path string, body any, status int, out any) {
	s.T().Helper()
	w := httptest.PerformRequest(s.T(), s.Router, method, path, body, s.token)
	httptest.AssertSuccessResponse(s.T(), w, status, out)
}

func (s *loungeSuite) createDevice(name string, isRoom bool) uuid.UUID {
	var res response.CreatedResponse
	s.do(http.MethodPost, "/api/devices", request.CreateDeviceRequest{Name: name, IsRoom: isRoom}, http.StatusCreated, &res)
	return res.ID
}

func (s *loungeSuite) createDrink(name string, price int64, stock int) uuid.UUID {
	var res response.DrinkResponse
	s.do(http.MethodPost, "/api/drinks",
		request.CreateDrinkRequest{Name: name, Price: decimal.NewFromInt(price), Stock: stock}, http.StatusCreated, &res)
	return res.ID
}

func (s *loungeSuite) device(id uuid.UUID) response.DeviceResponse {
	var res response.DeviceResponse
	s.do(http.MethodGet, "/api/devices/"+id.String(), nil, http.StatusOK, &res)
	return res
}

func (s *loungeSuite) TestSessionLifecycle() {
	t := s.T()
	pepsi := s.createDrink("Pepsi", 10, 12)
	ps := s.createDevice("PS-1", false)

	var started response.StartSessionResponse
	s.do(http.MethodPost, "/api/devices/"+ps.String()+"/start", nil, http.StatusOK, &started)
	require.True(t, e2e.OpeningTime.Equal(started.StartedAt))

	s.Clock.Add(90 * time.Second)

	var added response.AddDrinkResponse
	s.do(http.MethodPost, "/api/devices/"+ps.String()+"/drinks", request.AddDrinkRequest{DrinkID: pepsi}, http.StatusOK, &added)
	require.True(t, added.Applied)
	require.Equal(t, 11, added.RemainingStock)

	live := s.device(ps)
	require.Equal(t, "running", live.Status)
	require.Equal(t, int64(1), live.ElapsedMinutes)
	require.Equal(t, "10.33", live.LiveTotal)
	require.Len(t, live.Basket, 1)

	var entry response.HistoryEntryResponse
	s.do(http.MethodPost, "/api/devices/"+ps.String()+"/stop", nil, http.StatusOK, &entry)
	require.Equal(t, int64(2), entry.BilledMinutes)
	require.Equal(t, "0.67", entry.PlayTotal)
	require.Equal(t, "10.00", entry.DrinksTotal)
	require.Equal(t, "10.67", entry.TotalAmount)

	idle := s.device(ps)
	require.Equal(t, "idle", idle.Status)
	require.Empty(t, idle.Basket)
	require.Equal(t, "0.00", idle.LiveTotal)

	var refused response.AddDrinkResponse
	s.do(http.MethodPost, "/api/devices/"+ps.String()+"/drinks", request.AddDrinkRequest{DrinkID: pepsi}, http.StatusOK, &refused)
	require.False(t, refused.Applied)
	require.Equal(t, "device_not_running", refused.Reason)

	var history response.HistoryPageResponse
	s.do(http.MethodGet, "/api/history", nil, http.StatusOK, &history)
	require.Len(t, history.Items, 1)
	require.Equal(t, entry.ID, history.Items[0].ID)
	require.Equal(t, "PS-1", history.Items[0].DeviceName)

	var stats response.DailyStatsResponse
	s.do(http.MethodGet, "/api/stats/daily?date=2025-03-01", nil, http.StatusOK, &stats)
	require.Equal(t, 1, stats.SessionCount)
	require.Equal(t, "10.67", stats.Revenue)
	require.Equal(t, "0.67", stats.PlayRevenue)
	require.Equal(t, "10.00", stats.DrinksRevenue)
	var evening string
	for _, h := range stats.Hourly {
		if h.Hour == 18 {
			evening = h.Revenue
		}
	}
	require.Equal(t, "10.67", evening)
}

func (s *loungeSuite) TestPricingChangeAppliesToRunningSession() {
	t := s.T()
	room := s.createDevice("VIP Room", true)
	s.do(http.MethodPost, "/api/devices/"+room.String()+"/start", nil, http.StatusOK, nil)

	sixty := decimal.NewFromInt(60)
	var pricing response.PricingResponse
	s.do(http.MethodPut, "/api/settings/pricing", request.UpdatePricingRequest{RoomPrice: &sixty}, http.StatusOK, &pricing)
	require.Equal(t, "60.00", pricing.RoomPrice)
	require.Equal(t, "20.00", pricing.SinglePrice)

	s.Clock.Add(30 * time.Minute)

	var entry response.HistoryEntryResponse
	s.do(http.MethodPost, "/api/devices/"+room.String()+"/stop", nil, http.StatusOK, &entry)
	require.Equal(t, "30.00", entry.TotalAmount)
}

func (s *loungeSuite) TestReservationAutoStart() {
	t := s.T()
	ps := s.createDevice("PS-2", false)

	s.do(http.MethodPost, "/api/devices/"+ps.String()+"/reservations",
		request.CreateReservationRequest{CustomerName: "Sara", StartTime: "18:30"}, http.StatusCreated, nil)
	s.Clock.Add(time.Minute)
	s.do(http.MethodPost, "/api/devices/"+ps.String()+"/reservations",
		request.CreateReservationRequest{CustomerName: "Omar", StartTime: "18:30", IsLoyal: true}, http.StatusCreated, nil)

	queued := s.device(ps)
	require.Len(t, queued.Reservations, 2)
	require.Equal(t, "Omar", queued.Reservations[0].CustomerName)

	s.Clock.Set(e2e.OpeningTime.Add(30*time.Minute + 5*time.Second))
	started, err := s.Starter.Tick(t.Context(), s.Clock.Now())
	require.NoError(t, err)
	require.Len(t, started, 1)

	running := s.device(ps)
	require.Equal(t, "running", running.Status)
	require.Len(t, running.Reservations, 1)
	require.Equal(t, "Sara", running.Reservations[0].CustomerName)

	// the loser's slot has passed; stopping leaves it queued
	s.do(http.MethodPost, "/api/devices/"+ps.String()+"/stop", nil, http.StatusOK, nil)
	s.Clock.Add(time.Minute)
	started, err = s.Starter.Tick(t.Context(), s.Clock.Now())
	require.NoError(t, err)
	require.Empty(t, started)
	require.Len(t, s.device(ps).Reservations, 1)
}

func (s *loungeSuite) TestStockRunsOut() {
	t := s.T()
	cola := s.createDrink("Cola", 8, 1)
	ps := s.createDevice("PS-3", false)
	s.do(http.MethodPost, "/api/devices/"+ps.String()+"/start", nil, http.StatusOK, nil)

	var first, second response.AddDrinkResponse
	s.do(http.MethodPost, "/api/devices/"+ps.String()+"/drinks", request.AddDrinkRequest{DrinkID: cola}, http.StatusOK, &first)
	s.do(http.MethodPost, "/api/devices/"+ps.String()+"/drinks", request.AddDrinkRequest{DrinkID: cola}, http.StatusOK, &second)
	require.True(t, first.Applied)
	require.False(t, second.Applied)
	require.Equal(t, "out_of_stock", second.Reason)

	var drinks []response.DrinkResponse
	s.do(http.MethodGet, "/api/drinks?lowStock=true", nil, http.StatusOK, &drinks)
	require.Len(t, drinks, 1)
	require.Equal(t, cola, drinks[0].ID)
}

func (s *loungeSuite) TestExportWorkbook() {
	t := s.T()
	ps := s.createDevice("PS-4", false)
	s.do(http.MethodPost, "/api/devices/"+ps.String()+"/start", nil, http.StatusOK, nil)
	s.Clock.Add(time.Hour)
	s.do(http.MethodPost, "/api/devices/"+ps.String()+"/stop", nil, http.StatusOK, nil)

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/history/export", nil, s.token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Disposition"), "lounge-history-20250301-1900.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("History")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "PS-4", rows[1][0])
	require.Equal(t, "20", rows[1][7])
}

func (s *loungeSuite) TestOperatorStaysSignedInAcrossLongSession() {
	t := s.T()
	ps := s.createDevice("PS-5", false)
	s.do(http.MethodPost, "/api/devices/"+ps.String()+"/start", nil, http.StatusOK, nil)
	s.Clock.Add(3 * time.Hour)

	var entry response.HistoryEntryResponse
	s.do(http.MethodPost, "/api/devices/"+ps.String()+"/stop", nil, http.StatusOK, &entry)
	require.Equal(t, int64(180), entry.BilledMinutes)
	require.Equal(t, "60.00", entry.PlayTotal)

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/history/export", nil, s.token)
	require.Equal(t, http.StatusOK, w.Code)
}
