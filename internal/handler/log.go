package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"signal-deck/internal/domain"

	"github.com/gin-gonic/gin"
)

// GetLogs godoc
// @Summary      List bot log lines
// @Description  Returns the newest log lines, at most 50
// @Tags         logs
// @Produce      json
// @Param        limit  query  int  false  "Number of lines (default 50, max 50)"  default(50)
// @Success      200  {array}   domain.BotLog
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/logs [get]
func (h *Handler) GetLogs(c *gin.Context) {
	if h.logService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "log service unavailable"})
		return
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-logs")
	defer span.End()

	limit := 0
	if rawLimit := strings.TrimSpace(c.Query("limit")); rawLimit != "" {
		n, err := strconv.Atoi(rawLimit)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	logs, err := h.logService.List(ctx, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}

// CreateLog godoc
// @Summary      Record a bot log line
// @Tags         logs
// @Accept       json
// @Produce      json
// @Param        log  body  domain.BotLogInput  true  "Log line to record"
// @Success      201  {object}  domain.BotLog
// @Failure      400  {object}  domain.ValidationError
// @Failure      500  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/logs [post]
func (h *Handler) CreateLog(c *gin.Context) {
	if h.logService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "log service unavailable"})
		return
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "handler.create-log")
	defer span.End()

	var input domain.BotLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid JSON body", "field": ""})
		return
	}

	logLine, err := h.logService.Create(ctx, input)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, verr)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, logLine)
}
