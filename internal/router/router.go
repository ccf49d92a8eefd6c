package router

import (
	"github.com/tailordesk/internal/config"
	"github.com/tailordesk/internal/http/handlers/web"
	"github.com/tailordesk/internal/logger"
	"github.com/tailordesk/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine with middleware, views, and routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))

	r.SetHTMLTemplate(web.Templates())

	handler := web.New(c)

	// Pages
	r.GET("/", handler.Dashboard)
	r.GET("/bookings", handler.Bookings)
	r.GET("/payments", handler.Payments)
	r.GET("/bin", handler.Bin)

	// Actions; each redirects back to its owning view
	r.POST("/add-booking", handler.AddBooking)
	r.POST("/record-payment/:id", handler.RecordPayment)
	r.POST("/toggle-delivery/:id", handler.ToggleDelivery)
	r.POST("/delete-booking/:id", handler.DeleteBooking)
	r.POST("/restore-booking/:id", handler.RestoreBooking)
	r.POST("/delete-permanent/:id", handler.DeletePermanent)

	return r
}
