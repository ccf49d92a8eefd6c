package constants

// Delivery status values. Stored as display strings, same as the UI shows them.
const (
	DeliveryStatusNotDelivered = "Not Delivered"
	DeliveryStatusDelivered    = "Delivered"
)

// Payment status values, derived from amount_paid vs total_amount.
const (
	PaymentStatusPending       = "Pending"
	PaymentStatusPartiallyPaid = "Partially Paid"
	PaymentStatusPaid          = "Paid"
)

// Delivery date buckets accepted by the search filter.
const (
	DeliveryDateStatusPast     = "past"
	DeliveryDateStatusToday    = "today"
	DeliveryDateStatusUpcoming = "upcoming"
)

// DateLayout is the date-only format used for booking and delivery dates.
const DateLayout = "2006-01-02"
