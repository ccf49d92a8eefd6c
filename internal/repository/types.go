package repository

// BookingSearchFilter holds the optional search criteria for the bookings
// list. Zero values impose no constraint; every set field contributes exactly
// one predicate, all combined with AND.
type BookingSearchFilter struct {
	Search             string // substring match on customer_name
	BookingDate        string // exact, YYYY-MM-DD
	DeliveryDate       string // exact, YYYY-MM-DD
	Phone              string // substring match on the raw phone string
	ClothColor         string // case-insensitive exact match
	Emergency          *bool
	DeliveryStatus     string
	DeliveryDateStatus string // past / today / upcoming, relative to Today
	Today              string // reference date for DeliveryDateStatus, fixed once per request
}
