package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/buspago/buspago_backend/internal/apperrors"
	"github.com/buspago/buspago_backend/internal/core/domain"
	portssvc "github.com/buspago/buspago_backend/internal/core/ports/services"
	"github.com/buspago/buspago_backend/internal/core/services"
	"github.com/buspago/buspago_backend/internal/dto"
	"github.com/buspago/buspago_backend/internal/handlers"
	"github.com/buspago/buspago_backend/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FleetService ---
type MockFleetService struct {
	mock.Mock
}

func (m *MockFleetService) GetRoute(ctx context.Context, routeID string) (*domain.Route, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockFleetService) GetBus(ctx context.Context, busID string) (*domain.Bus, error) {
	args := m.Called(ctx, busID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bus), args.Error(1)
}

func (m *MockFleetService) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Route), args.Error(1)
}

func (m *MockFleetService) ListBuses(ctx context.Context) ([]domain.Bus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bus), args.Error(1)
}

var _ portssvc.FleetSvcFacade = (*MockFleetService)(nil)

// --- Mock ScannerService ---
type MockScannerService struct {
	mock.Mock
}

func (m *MockScannerService) Resolve(ctx context.Context, rawPayload string) (*domain.PendingTransaction, error) {
	args := m.Called(ctx, rawPayload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PendingTransaction), args.Error(1)
}

var _ portssvc.ScannerSvcFacade = (*MockScannerService)(nil)

// --- Mock WalletService ---
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) Snapshot(ctx context.Context) domain.WalletState {
	args := m.Called(ctx)
	return args.Get(0).(domain.WalletState)
}

func (m *MockWalletService) Pending(ctx context.Context) (*domain.PendingTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PendingTransaction), args.Error(1)
}

func (m *MockWalletService) Summary(ctx context.Context) domain.TravelSummary {
	args := m.Called(ctx)
	return args.Get(0).(domain.TravelSummary)
}

func (m *MockWalletService) StagePending(ctx context.Context, pending domain.PendingTransaction) (*domain.PendingTransaction, int64) {
	args := m.Called(ctx, pending)
	return args.Get(0).(*domain.PendingTransaction), args.Get(1).(int64)
}

func (m *MockWalletService) AbandonPending(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockWalletService) Settle(ctx context.Context) (*domain.SettlementResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementResult), args.Error(1)
}

func (m *MockWalletService) Recharge(ctx context.Context, amount int64) (*domain.RechargeResult, error) {
	args := m.Called(ctx, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RechargeResult), args.Error(1)
}

var _ portssvc.WalletSvcFacade = (*MockWalletService)(nil)

// --- Mock StatementService ---
type MockStatementService struct {
	mock.Mock
}

func (m *MockStatementService) RenderStatement(ctx context.Context) ([]byte, string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

var _ portssvc.StatementSvcFacade = (*MockStatementService)(nil)

// --- Test Suite Setup ---

type HandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockFleet     *MockFleetService
	mockScanner   *MockScannerService
	mockWallet    *MockWalletService
	mockStatement *MockStatementService
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockFleet = new(MockFleetService)
	suite.mockScanner = new(MockScannerService)
	suite.mockWallet = new(MockWalletService)
	suite.mockStatement = new(MockStatementService)

	container := &portssvc.ServiceContainer{
		Fleet:     suite.mockFleet,
		Scanner:   suite.mockScanner,
		Wallet:    suite.mockWallet,
		Statement: suite.mockStatement,
	}

	cfg := &config.Config{
		IsProduction:  true, // skip swagger routes
		ScanRateLimit: config.DefaultScanRateLimit,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *HandlerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func samplePending() *domain.PendingTransaction {
	return &domain.PendingTransaction{
		BusID:     "BUS-001",
		BusNumber: "101",
		RouteName: "Ruta 1 - Centro",
		Fare:      2500,
		ScannedAt: time.Now(),
	}
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestGetHealth() {
	w := suite.performRequest(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestPostScan_Success() {
	pending := samplePending()
	suite.mockScanner.On("Resolve", mock.Anything, "BUS-001").Return(pending, nil).Once()
	suite.mockWallet.On("StagePending", mock.Anything, *pending).Return(pending, int64(10000)).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/scan", dto.ScanRequest{Payload: "BUS-001"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PendingTripResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("BUS-001", resp.BusID)
	suite.Equal(int64(2500), resp.Fare)
	suite.Equal(int64(10000), resp.Balance)
	suite.mockScanner.AssertExpectations(suite.T())
	suite.mockWallet.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestPostScan_BusIDWinsOverPayload() {
	pending := samplePending()
	suite.mockScanner.On("Resolve", mock.Anything, "BUS-001").Return(pending, nil).Once()
	suite.mockWallet.On("StagePending", mock.Anything, *pending).Return(pending, int64(10000)).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/scan", dto.ScanRequest{Payload: "garbage", BusID: "BUS-001"})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockScanner.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestPostScan_BusIDFailsBinding() {
	w := suite.performRequest(http.MethodPost, "/api/v1/scan", gin.H{"busId": "not-a-bus-code"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockScanner.AssertNotCalled(suite.T(), "Resolve", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestPostScan_EmptyRequest() {
	w := suite.performRequest(http.MethodPost, "/api/v1/scan", gin.H{})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestPostScan_Unrecognized() {
	resolveErr := fmt.Errorf("%w: payload %q (candidate %q)", apperrors.ErrUnrecognized, "garbage", "garbage")
	suite.mockScanner.On("Resolve", mock.Anything, "garbage").Return(nil, resolveErr).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/scan", dto.ScanRequest{Payload: "garbage"})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockWallet.AssertNotCalled(suite.T(), "StagePending", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetScan_NoPending() {
	suite.mockWallet.On("Pending", mock.Anything).Return(nil, apperrors.ErrNoPendingTrip).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/scan", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteScan() {
	suite.mockWallet.On("AbandonPending", mock.Anything).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/scan", nil)
	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockWallet.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetWallet() {
	suite.mockWallet.On("Snapshot", mock.Anything).Return(domain.WalletState{Balance: 7500}).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/wallet", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.WalletResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(7500), resp.Balance)
}

func (suite *HandlerTestSuite) TestSettle_Success() {
	result := &domain.SettlementResult{
		NewBalance: 7500,
		Trip:       domain.TripRecord{Date: "1 March 2026, 08:15", Bus: "101", Route: "Ruta 1 - Centro", Amount: 2500},
	}
	suite.mockWallet.On("Settle", mock.Anything).Return(result, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/wallet/settle", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SettleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(7500), resp.NewBalance)
	suite.Equal("101", resp.Trip.Bus)
}

func (suite *HandlerTestSuite) TestSettle_NoPending() {
	suite.mockWallet.On("Settle", mock.Anything).Return(nil, apperrors.ErrNoPendingTrip).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/wallet/settle", nil)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestSettle_InsufficientBalance() {
	settleErr := &services.InsufficientBalanceError{Fare: 2500, Balance: 1000}
	suite.mockWallet.On("Settle", mock.Anything).Return(nil, settleErr).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/wallet/settle", nil)

	suite.Equal(http.StatusPaymentRequired, w.Code)
	var resp map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(float64(2500), resp["fare"])
	suite.Equal(float64(1000), resp["balance"])
}

func (suite *HandlerTestSuite) TestSettle_UnknownBus() {
	settleErr := fmt.Errorf("settle bus %q: %w", "BUS-999", apperrors.ErrNotFound)
	suite.mockWallet.On("Settle", mock.Anything).Return(nil, settleErr).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/wallet/settle", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestRecharge_Success() {
	result := &domain.RechargeResult{NewBalance: 15000, Amount: 5000}
	suite.mockWallet.On("Recharge", mock.Anything, int64(5000)).Return(result, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/wallet/recharge", dto.RechargeRequest{Amount: 5000})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RechargeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(15000), resp.NewBalance)
	suite.Equal(int64(5000), resp.Amount)
}

func (suite *HandlerTestSuite) TestRecharge_InvalidAmount() {
	rechargeErr := fmt.Errorf("%w: %d", apperrors.ErrInvalidAmount, int64(-100))
	suite.mockWallet.On("Recharge", mock.Anything, int64(-100)).Return(nil, rechargeErr).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/wallet/recharge", dto.RechargeRequest{Amount: -100})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetHistory() {
	suite.mockWallet.On("Snapshot", mock.Anything).Return(domain.WalletState{
		Balance: 5000,
		History: []domain.TripRecord{
			{Date: "1 March 2026, 08:15", Bus: "205", Route: "Ruta 2 - Norte", Amount: 2500},
			{Date: "28 February 2026, 17:40", Bus: "101", Route: "Ruta 1 - Centro", Amount: 2500},
		},
	}).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/wallet/history", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.HistoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Trips, 2)
	suite.Equal("205", resp.Trips[0].Bus)
}

func (suite *HandlerTestSuite) TestGetStatement() {
	raw := []byte("%PDF-1.4 fake")
	suite.mockStatement.On("RenderStatement", mock.Anything).Return(raw, "estado-cuenta-20260301.pdf", nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/wallet/statement", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "estado-cuenta-20260301.pdf")
	suite.Equal(raw, w.Body.Bytes())
}

func (suite *HandlerTestSuite) TestListRoutes() {
	suite.mockFleet.On("ListRoutes", mock.Anything).Return([]domain.Route{
		{RouteID: "ruta-1", Name: "Ruta 1 - Centro", Color: "#000000", Fare: 2500},
	}, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/fleet/routes", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListRoutesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Routes, 1)
	suite.Equal("ruta-1", resp.Routes[0].RouteID)
}

func (suite *HandlerTestSuite) TestGetBus_NotFound() {
	suite.mockFleet.On("GetBus", mock.Anything, "BUS-999").Return(nil, fmt.Errorf("bus %q: %w", "BUS-999", apperrors.ErrNotFound)).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/fleet/buses/BUS-999", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
