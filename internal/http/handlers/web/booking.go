package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/tailordesk/internal/models"
	"github.com/tailordesk/internal/repository"
	"github.com/tailordesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BookingFilterRequest mirrors the search form's query parameters.
type BookingFilterRequest struct {
	Search             string `form:"search_query"`
	BookingDate        string `form:"booking_date"`
	DeliveryDate       string `form:"delivery_date"`
	Phone              string `form:"phone_number"`
	ClothColor         string `form:"cloth_color"`
	Emergency          string `form:"emergency"` // "1" / "0", empty means no filter
	DeliveryStatus     string `form:"delivery_status"`
	DeliveryDateStatus string `form:"delivery_date_status"`
}

// toFilter converts the request into the repository's typed filter.
func (req BookingFilterRequest) toFilter() repository.BookingSearchFilter {
	filter := repository.BookingSearchFilter{
		Search:             req.Search,
		BookingDate:        req.BookingDate,
		DeliveryDate:       req.DeliveryDate,
		Phone:              req.Phone,
		ClothColor:         req.ClothColor,
		DeliveryStatus:     req.DeliveryStatus,
		DeliveryDateStatus: req.DeliveryDateStatus,
	}
	switch req.Emergency {
	case "1":
		value := true
		filter.Emergency = &value
	case "0":
		value := false
		filter.Emergency = &value
	}
	return filter
}

// AddBookingRequest mirrors the add-booking form body.
type AddBookingRequest struct {
	CustomerName string `form:"customer_name"`
	PhoneNumber  string `form:"phone_number"`
	ClothColor   string `form:"cloth_color"`
	BookingDate  string `form:"booking_date"`
	DeliveryDate string `form:"delivery_date"`
	TotalAmount  string `form:"total_amount"`
	Emergency    string `form:"emergency"` // checkbox, presence-based
}

// Dashboard renders today's deliveries with the add-booking form.
func (h *Handler) Dashboard(c *gin.Context) {
	deliveries, err := h.BookingService.TodaysDeliveries(time.Now())
	if err != nil {
		errorPage(c, http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":            "Dashboard",
		"Today":            time.Now().Format("2006-01-02"),
		"TodaysDeliveries": deliveries,
	})
}

// Bookings renders the filtered booking list. A failed search still renders
// the page, with an empty result set and an error banner.
func (h *Handler) Bookings(c *gin.Context) {
	var req BookingFilterRequest
	_ = c.ShouldBindQuery(&req)

	bookings, err := h.BookingService.SearchBookings(req.toFilter(), time.Now())
	if err != nil {
		requestLog(c).Errorw("booking_search_failed", "error", err)
		c.HTML(http.StatusInternalServerError, "bookings.html", gin.H{
			"Title":    "All Bookings",
			"Bookings": []models.Booking{},
			"Filters":  req,
			"Error":    "Database error occurred. Please try again.",
		})
		return
	}

	c.HTML(http.StatusOK, "bookings.html", gin.H{
		"Title":        "All Bookings",
		"Bookings":     bookings,
		"Filters":      req,
		"TotalResults": len(bookings),
	})
}

// AddBooking creates a booking and returns to the dashboard.
func (h *Handler) AddBooking(c *gin.Context) {
	var req AddBookingRequest
	if err := c.ShouldBind(&req); err != nil {
		errorPage(c, http.StatusBadRequest, "Invalid booking form.", err)
		return
	}

	total := decimal.Zero
	if req.TotalAmount != "" {
		parsed, err := decimal.NewFromString(req.TotalAmount)
		if err != nil {
			errorPage(c, http.StatusBadRequest, "Total amount must be a number.", nil)
			return
		}
		total = parsed
	}

	_, err := h.BookingService.CreateBooking(service.BookingInput{
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		ClothColor:   req.ClothColor,
		BookingDate:  req.BookingDate,
		DeliveryDate: req.DeliveryDate,
		TotalAmount:  models.NewMoneyFromDecimal(total),
		IsEmergency:  parseCheckbox(req.Emergency),
	})
	if err != nil {
		if service.IsValidation(err) {
			errorPage(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		errorPage(c, http.StatusInternalServerError, "Could not save the booking.", err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// ToggleDelivery flips the delivery status and returns to the booking list.
func (h *Handler) ToggleDelivery(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.BookingService.ToggleDelivery(id); err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			errorPage(c, http.StatusNotFound, "Booking not found.", nil)
			return
		}
		errorPage(c, http.StatusInternalServerError, "Could not update the booking.", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/bookings")
}

// DeleteBooking moves a booking to the bin.
func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.BookingService.SoftDelete(id); err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			errorPage(c, http.StatusNotFound, "Booking not found.", nil)
			return
		}
		errorPage(c, http.StatusInternalServerError, "Could not delete the booking.", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/bookings")
}
