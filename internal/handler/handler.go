package handler

import (
	"net/http"

	"signal-deck/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	tracer        trace.Tracer
	signalService *service.SignalService
	logService    *service.LogService
}

func New(
	tracer trace.Tracer,
	signalService *service.SignalService,
	logService *service.LogService,
) *Handler {
	return &Handler{
		tracer:        tracer,
		signalService: signalService,
		logService:    logService,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/api/signals", h.GetSignals)
	r.POST("/api/signals", h.CreateSignal)
	r.DELETE("/api/signals", h.ClearSignals)
	r.GET("/api/logs", h.GetLogs)
	r.POST("/api/logs", h.CreateLog)
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
