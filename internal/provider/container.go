package provider

import (
	"github.com/tailordesk/internal/config"
	"github.com/tailordesk/internal/models"
	"github.com/tailordesk/internal/repository"
	"github.com/tailordesk/internal/service"
)

// Container holds the wired application dependencies. Handlers receive it by
// reference instead of reaching for package-level singletons.
type Container struct {
	Config *config.Config

	BookingRepo    repository.BookingRepository
	BookingService *service.BookingService
}

// NewContainer wires repositories and services on top of the shared DB.
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}
	c.BookingRepo = repository.NewBookingRepository(models.DB)
	c.BookingService = service.NewBookingService(c.BookingRepo)
	return c
}
