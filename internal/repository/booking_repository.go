package repository

import (
	"errors"
	"strings"

	"github.com/tailordesk/internal/constants"
	"github.com/tailordesk/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingRepository is the data access interface for bookings. It owns all
// query construction; callers never see SQL or gorm details.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id uint) (*models.Booking, error)
	GetByIDForUpdate(id uint) (*models.Booking, error)
	ListTodaysDeliveries(today string) ([]models.Booking, error)
	Search(filter BookingSearchFilter) ([]models.Booking, error)
	ListPendingPayments() ([]models.Booking, error)
	ListCompletedPayments() ([]models.Booking, error)
	ListBin() ([]models.Booking, error)
	UpdatePayment(id uint, amountPaid models.Money, paymentStatus string) error
	UpdateDeliveryStatus(id uint, deliveryStatus string) error
	SetDeleted(id uint, deleted bool) error
	Delete(id uint) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) *GormBookingRepository
}

// GormBookingRepository is the GORM implementation.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a booking repository.
func NewBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormBookingRepository) WithTx(tx *gorm.DB) *GormBookingRepository {
	if tx == nil {
		return r
	}
	return &GormBookingRepository{db: tx}
}

// Transaction runs fn inside a database transaction.
func (r *GormBookingRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// Create inserts a new booking.
func (r *GormBookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

// GetByID fetches a booking by id, including soft-deleted ones. Returns
// (nil, nil) when the row does not exist.
func (r *GormBookingRepository) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// GetByIDForUpdate fetches a booking by id with a row lock, for
// read-then-write sequences inside a transaction. The sqlite dialector
// drops the locking clause; there the transaction itself serializes writers.
func (r *GormBookingRepository) GetByIDForUpdate(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// ListTodaysDeliveries returns non-deleted bookings due on the given date,
// emergency bookings first.
func (r *GormBookingRepository) ListTodaysDeliveries(today string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.
		Where("delivery_date = ? AND is_deleted = ?", today, false).
		Order("is_emergency DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Search returns non-deleted bookings matching every set filter field,
// ordered by delivery date ascending.
func (r *GormBookingRepository) Search(filter BookingSearchFilter) ([]models.Booking, error) {
	query := r.db.Model(&models.Booking{}).Where("is_deleted = ?", false)

	if filter.Search != "" {
		query = query.Where("customer_name LIKE ?", "%"+filter.Search+"%")
	}
	if filter.BookingDate != "" {
		query = query.Where("booking_date = ?", filter.BookingDate)
	}
	if filter.DeliveryDate != "" {
		query = query.Where("delivery_date = ?", filter.DeliveryDate)
	}
	if hasDigits(filter.Phone) {
		query = query.Where("phone_number LIKE ?", "%"+filter.Phone+"%")
	}
	if filter.ClothColor != "" {
		query = query.Where("LOWER(cloth_color) = LOWER(?)", filter.ClothColor)
	}
	if filter.Emergency != nil {
		query = query.Where("is_emergency = ?", *filter.Emergency)
	}
	if filter.DeliveryStatus != "" {
		query = query.Where("delivery_status = ?", filter.DeliveryStatus)
	}
	switch filter.DeliveryDateStatus {
	case constants.DeliveryDateStatusPast:
		query = query.Where("delivery_date < ?", filter.Today)
	case constants.DeliveryDateStatusToday:
		query = query.Where("delivery_date = ?", filter.Today)
	case constants.DeliveryDateStatusUpcoming:
		query = query.Where("delivery_date > ?", filter.Today)
	}

	var bookings []models.Booking
	if err := query.Order("delivery_date ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListPendingPayments returns non-deleted bookings that are not fully paid,
// ordered by delivery date ascending.
func (r *GormBookingRepository) ListPendingPayments() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.
		Where("payment_status IN ? AND is_deleted = ?",
			[]string{constants.PaymentStatusPending, constants.PaymentStatusPartiallyPaid}, false).
		Order("delivery_date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListCompletedPayments returns non-deleted fully paid bookings, most recent
// delivery date first.
func (r *GormBookingRepository) ListCompletedPayments() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.
		Where("payment_status = ? AND is_deleted = ?", constants.PaymentStatusPaid, false).
		Order("delivery_date DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListBin returns soft-deleted bookings, newest id first.
func (r *GormBookingRepository) ListBin() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.
		Where("is_deleted = ?", true).
		Order("id DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdatePayment writes the accumulated amount and the recomputed status.
func (r *GormBookingRepository) UpdatePayment(id uint, amountPaid models.Money, paymentStatus string) error {
	return r.db.Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"amount_paid":    amountPaid,
			"payment_status": paymentStatus,
		}).Error
}

// UpdateDeliveryStatus writes a new delivery status.
func (r *GormBookingRepository) UpdateDeliveryStatus(id uint, deliveryStatus string) error {
	return r.db.Model(&models.Booking{}).
		Where("id = ?", id).
		Update("delivery_status", deliveryStatus).Error
}

// SetDeleted toggles the soft-delete flag.
func (r *GormBookingRepository) SetDeleted(id uint, deleted bool) error {
	return r.db.Model(&models.Booking{}).
		Where("id = ?", id).
		Update("is_deleted", deleted).Error
}

// Delete removes the row permanently.
func (r *GormBookingRepository) Delete(id uint) error {
	return r.db.Delete(&models.Booking{}, id).Error
}

func hasDigits(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
