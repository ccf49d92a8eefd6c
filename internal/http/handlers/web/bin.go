package web

import (
	"errors"
	"net/http"

	"github.com/tailordesk/internal/service"

	"github.com/gin-gonic/gin"
)

// Bin renders the soft-deleted bookings.
func (h *Handler) Bin(c *gin.Context) {
	deleted, err := h.BookingService.Bin()
	if err != nil {
		errorPage(c, http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		return
	}
	c.HTML(http.StatusOK, "bin.html", gin.H{
		"Title":           "Bin",
		"DeletedBookings": deleted,
	})
}

// RestoreBooking brings a booking back from the bin.
func (h *Handler) RestoreBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.BookingService.Restore(id); err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			errorPage(c, http.StatusNotFound, "Booking not found.", nil)
			return
		}
		errorPage(c, http.StatusInternalServerError, "Could not restore the booking.", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/bin")
}

// DeletePermanent removes a booking from the bin irrecoverably.
func (h *Handler) DeletePermanent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.BookingService.PermanentlyDelete(id); err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			errorPage(c, http.StatusNotFound, "Booking not found.", nil)
			return
		}
		errorPage(c, http.StatusInternalServerError, "Could not delete the booking.", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/bin")
}
