package handler

import (
	"errors"
	"net/http"

	"signal-deck/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetSignals godoc
// @Summary      List trading signals
// @Description  Returns every stored signal, newest first
// @Tags         signals
// @Produce      json
// @Success      200  {array}   domain.Signal
// @Failure      500  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/signals [get]
func (h *Handler) GetSignals(c *gin.Context) {
	if h.signalService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "signal service unavailable"})
		return
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-signals")
	defer span.End()

	signals, err := h.signalService.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	span.SetAttributes(attribute.Int("signal_count", len(signals)))

	// The bot and dashboard contract is a bare array, not an envelope.
	c.JSON(http.StatusOK, signals)
}

// CreateSignal godoc
// @Summary      Record a trading signal
// @Description  Called by the external trading bot after each analysis run
// @Tags         signals
// @Accept       json
// @Produce      json
// @Param        signal  body  domain.SignalInput  true  "Signal to record"
// @Success      201  {object}  domain.Signal
// @Failure      400  {object}  domain.ValidationError
// @Failure      500  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/signals [post]
func (h *Handler) CreateSignal(c *gin.Context) {
	if h.signalService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "signal service unavailable"})
		return
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "handler.create-signal")
	defer span.End()

	var input domain.SignalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid JSON body", "field": ""})
		return
	}

	signal, err := h.signalService.Create(ctx, input)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, verr)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	span.SetAttributes(attribute.Int64("signal_id", signal.ID))

	c.JSON(http.StatusCreated, signal)
}

// ClearSignals godoc
// @Summary      Clear all signals
// @Description  Removes every stored signal; clearing an empty store succeeds
// @Tags         signals
// @Success      204
// @Failure      500  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/signals [delete]
func (h *Handler) ClearSignals(c *gin.Context) {
	if h.signalService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "signal service unavailable"})
		return
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "handler.clear-signals")
	defer span.End()

	if err := h.signalService.Clear(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
