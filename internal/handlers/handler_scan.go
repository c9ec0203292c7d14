package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buspago/buspago_backend/internal/apperrors"
	portssvc "github.com/buspago/buspago_backend/internal/core/ports/services"
	"github.com/buspago/buspago_backend/internal/dto"
	"github.com/buspago/buspago_backend/internal/middleware"
)

// scanHandler handles QR scan events from the camera collaborator and
// the demo's fallback buttons.
type scanHandler struct {
	scannerService portssvc.ScannerSvcFacade
	walletService  portssvc.WalletSvcFacade
}

func newScanHandler(ss portssvc.ScannerSvcFacade, ws portssvc.WalletSvcFacade) *scanHandler {
	return &scanHandler{scannerService: ss, walletService: ws}
}

// registerScanRoutes registers the scan routes. The extra middleware
// (rate limiting) applies to the POST only.
func registerScanRoutes(rg *gin.RouterGroup, scannerService portssvc.ScannerSvcFacade, walletService portssvc.WalletSvcFacade, postMiddleware ...gin.HandlerFunc) {
	h := newScanHandler(scannerService, walletService)

	scan := rg.Group("/scan")
	{
		scan.POST("", append(postMiddleware, h.postScan)...)
		scan.GET("", h.getPending)
		scan.DELETE("", h.deletePending)
	}
}

// postScan godoc
// @Summary Resolve a scanned QR payload
// @Description Resolves a raw QR payload (or a direct bus id) to a bus and stages it as the pending trip
// @Tags scan
// @Accept json
// @Produce json
// @Param scan body dto.ScanRequest true "Raw payload or bus id"
// @Success 200 {object} dto.PendingTripResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 422 {object} map[string]string "Payload not recognized"
// @Router /scan [post]
func (h *scanHandler) postScan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for scan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payload := req.Payload
	if req.BusID != "" {
		payload = req.BusID
	}
	if payload == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either payload or busId is required"})
		return
	}

	pending, err := h.scannerService.Resolve(c.Request.Context(), payload)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnrecognized) || errors.Is(err, apperrors.ErrNotFound) {
			// Reported to the user, never fatal; the resolver is ready
			// for the next attempt.
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to resolve scan payload", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve payload"})
		}
		return
	}

	staged, balance := h.walletService.StagePending(c.Request.Context(), *pending)
	c.JSON(http.StatusOK, dto.ToPendingTripResponse(staged, balance))
}

// getPending godoc
// @Summary Get the pending trip
// @Tags scan
// @Produce json
// @Success 200 {object} dto.PendingTripResponse
// @Failure 404 {object} map[string]string "No pending trip"
// @Router /scan [get]
func (h *scanHandler) getPending(c *gin.Context) {
	pending, err := h.walletService.Pending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No pending trip"})
		return
	}
	snap := h.walletService.Snapshot(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToPendingTripResponse(pending, snap.Balance))
}

// deletePending godoc
// @Summary Abandon the pending trip
// @Description Discards the staged scan, mirroring the user navigating away from the payment screen
// @Tags scan
// @Success 204 "No Content"
// @Router /scan [delete]
func (h *scanHandler) deletePending(c *gin.Context) {
	h.walletService.AbandonPending(c.Request.Context())
	c.Status(http.StatusNoContent)
}
