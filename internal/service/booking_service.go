package service

import (
	"strings"
	"time"

	"github.com/tailordesk/internal/constants"
	"github.com/tailordesk/internal/models"
	"github.com/tailordesk/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BookingService owns the booking business rules: input validation, the
// payment-status derivation, and the transactional state changes.
type BookingService struct {
	repo repository.BookingRepository
}

// NewBookingService creates a booking service.
func NewBookingService(repo repository.BookingRepository) *BookingService {
	return &BookingService{repo: repo}
}

// BookingInput is the input for creating a booking.
type BookingInput struct {
	CustomerName string
	PhoneNumber  string
	ClothColor   string
	BookingDate  string // YYYY-MM-DD
	DeliveryDate string // YYYY-MM-DD
	TotalAmount  models.Money
	IsEmergency  bool
}

// PaymentStatusFor derives the payment status from the paid and total
// amounts: Paid when paid >= total, Partially Paid when 0 < paid < total,
// Pending otherwise.
func PaymentStatusFor(paid, total models.Money) string {
	if paid.GreaterThanOrEqual(total.Decimal) {
		return constants.PaymentStatusPaid
	}
	if paid.GreaterThan(decimal.Zero) {
		return constants.PaymentStatusPartiallyPaid
	}
	return constants.PaymentStatusPending
}

// CreateBooking validates the input and inserts a new booking with zero paid
// amount and default statuses.
func (s *BookingService) CreateBooking(input BookingInput) (*models.Booking, error) {
	name := strings.TrimSpace(input.CustomerName)
	if name == "" {
		return nil, missingField("customer_name")
	}
	phone := strings.TrimSpace(input.PhoneNumber)
	if phone == "" {
		return nil, missingField("phone_number")
	}
	if err := validateDate("booking_date", input.BookingDate); err != nil {
		return nil, err
	}
	if err := validateDate("delivery_date", input.DeliveryDate); err != nil {
		return nil, err
	}
	if input.TotalAmount.IsNegative() {
		return nil, &ValidationError{Field: "total_amount", Reason: "must not be negative"}
	}

	booking := &models.Booking{
		CustomerName:   name,
		PhoneNumber:    phone,
		ClothColor:     strings.TrimSpace(input.ClothColor),
		BookingDate:    input.BookingDate,
		DeliveryDate:   input.DeliveryDate,
		TotalAmount:    input.TotalAmount,
		AmountPaid:     models.NewMoneyFromDecimal(decimal.Zero),
		IsEmergency:    input.IsEmergency,
		DeliveryStatus: constants.DeliveryStatusNotDelivered,
		PaymentStatus:  constants.PaymentStatusPending,
		IsDeleted:      false,
	}
	if err := s.repo.Create(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// RecordPayment adds amount to the booking's paid total and recomputes the
// payment status. The read and write run in one transaction under a row lock
// so concurrent payments for the same booking cannot lose an update.
func (s *BookingService) RecordPayment(id uint, amount models.Money) (*models.Booking, error) {
	if amount.IsNegative() {
		return nil, &ValidationError{Field: "amount_new", Reason: "must not be negative"}
	}

	var updated *models.Booking
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		booking, err := repo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if booking == nil {
			return ErrBookingNotFound
		}

		newPaid := models.NewMoneyFromDecimal(booking.AmountPaid.Add(amount.Decimal))
		newStatus := PaymentStatusFor(newPaid, booking.TotalAmount)
		if err := repo.UpdatePayment(id, newPaid, newStatus); err != nil {
			return err
		}

		booking.AmountPaid = newPaid
		booking.PaymentStatus = newStatus
		updated = booking
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ToggleDelivery flips the delivery status between its two values.
func (s *BookingService) ToggleDelivery(id uint) (*models.Booking, error) {
	var updated *models.Booking
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		booking, err := repo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if booking == nil {
			return ErrBookingNotFound
		}

		newStatus := constants.DeliveryStatusDelivered
		if booking.DeliveryStatus == constants.DeliveryStatusDelivered {
			newStatus = constants.DeliveryStatusNotDelivered
		}
		if err := repo.UpdateDeliveryStatus(id, newStatus); err != nil {
			return err
		}

		booking.DeliveryStatus = newStatus
		updated = booking
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SoftDelete moves a booking to the bin.
func (s *BookingService) SoftDelete(id uint) error {
	return s.setDeleted(id, true)
}

// Restore brings a booking back from the bin.
func (s *BookingService) Restore(id uint) error {
	return s.setDeleted(id, false)
}

func (s *BookingService) setDeleted(id uint, deleted bool) error {
	booking, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}
	return s.repo.SetDeleted(id, deleted)
}

// PermanentlyDelete removes a booking irrecoverably.
func (s *BookingService) PermanentlyDelete(id uint) error {
	booking, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}
	return s.repo.Delete(id)
}

// GetByID fetches a booking or ErrBookingNotFound.
func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	booking, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// TodaysDeliveries returns the bookings due on the given day, emergencies
// first.
func (s *BookingService) TodaysDeliveries(now time.Time) ([]models.Booking, error) {
	return s.repo.ListTodaysDeliveries(now.Format(constants.DateLayout))
}

// SearchBookings runs a filtered search. The reference date for the
// past/today/upcoming bucket is fixed here, once per call.
func (s *BookingService) SearchBookings(filter repository.BookingSearchFilter, now time.Time) ([]models.Booking, error) {
	if filter.DeliveryDateStatus != "" {
		filter.Today = now.Format(constants.DateLayout)
	}
	return s.repo.Search(filter)
}

// PendingPayments lists bookings that still owe money.
func (s *BookingService) PendingPayments() ([]models.Booking, error) {
	return s.repo.ListPendingPayments()
}

// CompletedPayments lists fully paid bookings.
func (s *BookingService) CompletedPayments() ([]models.Booking, error) {
	return s.repo.ListCompletedPayments()
}

// Bin lists soft-deleted bookings.
func (s *BookingService) Bin() ([]models.Booking, error) {
	return s.repo.ListBin()
}

func validateDate(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return missingField(field)
	}
	if _, err := time.Parse(constants.DateLayout, value); err != nil {
		return &ValidationError{Field: field, Reason: "expected YYYY-MM-DD"}
	}
	return nil
}
