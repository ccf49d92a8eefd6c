package web

import (
	"net/http"
	"strconv"

	"github.com/tailordesk/internal/logger"
	"github.com/tailordesk/internal/provider"
	"github.com/tailordesk/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the HTML pages and form actions.
type Handler struct {
	BookingService *service.BookingService
}

// New creates the web handler from the container.
func New(c *provider.Container) *Handler {
	return &Handler{
		BookingService: c.BookingService,
	}
}

// requestLog returns a logger carrying the request id.
func requestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// errorPage renders the generic failure view. Internal error detail goes to
// the log only, never to the page.
func errorPage(c *gin.Context, status int, message string, err error) {
	if err != nil {
		requestLog(c).Errorw("handler_error",
			"status", status,
			"message", message,
			"error", err,
		)
	}
	c.HTML(status, "error.html", gin.H{
		"Status":  status,
		"Message": message,
	})
}

// parseID validates an identifier-shaped path parameter before any store
// access. Returns 0 and renders a 400 page when the id is malformed.
func parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		errorPage(c, http.StatusBadRequest, "Invalid booking id.", nil)
		return 0, false
	}
	return uint(id), true
}

// parseCheckbox decodes form-style truthy values ("on", "1", "true") into a
// real boolean.
func parseCheckbox(value string) bool {
	switch value {
	case "", "0", "false", "off":
		return false
	default:
		return true
	}
}
