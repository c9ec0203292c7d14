package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buspago/buspago_backend/internal/apperrors"
	portssvc "github.com/buspago/buspago_backend/internal/core/ports/services"
	"github.com/buspago/buspago_backend/internal/core/services"
	"github.com/buspago/buspago_backend/internal/dto"
	"github.com/buspago/buspago_backend/internal/middleware"
)

// walletHandler handles balance, settlement, recharge and history
// requests.
type walletHandler struct {
	walletService    portssvc.WalletSvcFacade
	statementService portssvc.StatementSvcFacade
}

func newWalletHandler(ws portssvc.WalletSvcFacade, ss portssvc.StatementSvcFacade) *walletHandler {
	return &walletHandler{walletService: ws, statementService: ss}
}

// registerWalletRoutes registers routes related to the wallet.
func registerWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade, statementService portssvc.StatementSvcFacade) {
	h := newWalletHandler(walletService, statementService)

	wallet := rg.Group("/wallet")
	{
		wallet.GET("", h.getWallet)
		wallet.POST("/settle", h.settle)
		wallet.POST("/recharge", h.recharge)
		wallet.GET("/history", h.getHistory)
		wallet.GET("/summary", h.getSummary)
		wallet.GET("/statement", h.getStatement)
	}
}

// getWallet godoc
// @Summary Get the current balance
// @Tags wallet
// @Produce json
// @Success 200 {object} dto.WalletResponse
// @Router /wallet [get]
func (h *walletHandler) getWallet(c *gin.Context) {
	snap := h.walletService.Snapshot(c.Request.Context())
	c.JSON(http.StatusOK, dto.WalletResponse{Balance: snap.Balance})
}

// settle godoc
// @Summary Settle the pending trip
// @Description Debits the pending trip's fare and records it in the trip history
// @Tags wallet
// @Produce json
// @Success 200 {object} dto.SettleResponse
// @Failure 402 {object} map[string]interface{} "Insufficient balance"
// @Failure 404 {object} map[string]string "Unknown bus or route"
// @Failure 409 {object} map[string]string "No pending trip"
// @Router /wallet/settle [post]
func (h *walletHandler) settle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.walletService.Settle(c.Request.Context())
	if err != nil {
		var insufficient *services.InsufficientBalanceError
		switch {
		case errors.Is(err, apperrors.ErrNoPendingTrip):
			c.JSON(http.StatusConflict, gin.H{"error": "No pending trip to settle. Scan a bus first."})
		case errors.As(err, &insufficient):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error":   "Insufficient balance. Please recharge to continue.",
				"fare":    insufficient.Fare,
				"balance": insufficient.Balance,
			})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to settle trip", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to settle trip"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSettleResponse(result))
}

// recharge godoc
// @Summary Recharge the balance
// @Tags wallet
// @Accept json
// @Produce json
// @Param recharge body dto.RechargeRequest true "Amount to credit"
// @Success 200 {object} dto.RechargeResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Router /wallet/recharge [post]
func (h *walletHandler) recharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RechargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recharge", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.walletService.Recharge(c.Request.Context(), req.Amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid recharge amount: %d. Amount must be positive.", req.Amount)})
		} else {
			logger.Error("Failed to recharge balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recharge balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.RechargeResponse{NewBalance: result.NewBalance, Amount: result.Amount})
}

// getHistory godoc
// @Summary Get the trip history
// @Description Retrieves the trip ledger, newest first
// @Tags wallet
// @Produce json
// @Success 200 {object} dto.HistoryResponse
// @Router /wallet/history [get]
func (h *walletHandler) getHistory(c *gin.Context) {
	snap := h.walletService.Snapshot(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToHistoryResponse(snap.History))
}

// getSummary godoc
// @Summary Get travel summary
// @Description Aggregates the ledger into trip count, total spent and average fare
// @Tags wallet
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Router /wallet/summary [get]
func (h *walletHandler) getSummary(c *gin.Context) {
	summary := h.walletService.Summary(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// getStatement godoc
// @Summary Download the account statement
// @Description Renders the balance and trip history as a PDF
// @Tags wallet
// @Produce application/pdf
// @Success 200 {file} file
// @Router /wallet/statement [get]
func (h *walletHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	raw, filename, err := h.statementService.RenderStatement(c.Request.Context())
	if err != nil {
		logger.Error("Failed to render statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render statement"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", raw)
}
