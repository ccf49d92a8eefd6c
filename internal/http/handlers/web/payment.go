package web

import (
	"errors"
	"net/http"

	"github.com/tailordesk/internal/models"
	"github.com/tailordesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest mirrors the record-payment form body.
type RecordPaymentRequest struct {
	AmountNew string `form:"amount_new"`
}

// Payments renders the pending and completed payment lists.
func (h *Handler) Payments(c *gin.Context) {
	pending, err := h.BookingService.PendingPayments()
	if err != nil {
		errorPage(c, http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		return
	}
	completed, err := h.BookingService.CompletedPayments()
	if err != nil {
		errorPage(c, http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		return
	}
	c.HTML(http.StatusOK, "payments.html", gin.H{
		"Title":             "Payments",
		"PendingPayments":   pending,
		"CompletedPayments": completed,
	})
}

// RecordPayment adds a payment to a booking and returns to the payments page.
func (h *Handler) RecordPayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBind(&req); err != nil {
		errorPage(c, http.StatusBadRequest, "Invalid payment form.", err)
		return
	}
	amount, err := decimal.NewFromString(req.AmountNew)
	if err != nil {
		errorPage(c, http.StatusBadRequest, "Payment amount must be a number.", nil)
		return
	}

	if _, err := h.BookingService.RecordPayment(id, models.NewMoneyFromDecimal(amount)); err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			errorPage(c, http.StatusNotFound, "Booking not found.", nil)
			return
		}
		if service.IsValidation(err) {
			errorPage(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		errorPage(c, http.StatusInternalServerError, "Could not record the payment.", err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/payments")
}
