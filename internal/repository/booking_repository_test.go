package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/tailordesk/internal/constants"
	"github.com/tailordesk/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupBookingRepositoryTest(t *testing.T) (*GormBookingRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:booking_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Booking{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewBookingRepository(db), db
}

func money(t *testing.T, s string) models.Money {
	t.Helper()
	return models.NewMoneyFromDecimal(decimal.RequireFromString(s))
}

func seedSearchBookings(t *testing.T, db *gorm.DB) {
	t.Helper()
	bookings := []models.Booking{
		{
			CustomerName:   "Amina Yusuf",
			PhoneNumber:    "0301-1111111",
			ClothColor:     "Navy Blue",
			BookingDate:    "2026-08-01",
			DeliveryDate:   "2026-08-27",
			TotalAmount:    money(t, "4500"),
			AmountPaid:     money(t, "2000"),
			IsEmergency:    true,
			DeliveryStatus: constants.DeliveryStatusDelivered,
			PaymentStatus:  constants.PaymentStatusPartiallyPaid,
		},
		{
			CustomerName:   "Hassan Raza",
			PhoneNumber:    "0333-2222222",
			ClothColor:     "white",
			BookingDate:    "2026-08-10",
			DeliveryDate:   "2026-08-28",
			TotalAmount:    money(t, "3000"),
			AmountPaid:     money(t, "3000"),
			DeliveryStatus: constants.DeliveryStatusNotDelivered,
			PaymentStatus:  constants.PaymentStatusPaid,
		},
		{
			CustomerName:   "Sana Malik",
			PhoneNumber:    "0345-3333333",
			ClothColor:     "Maroon",
			BookingDate:    "2026-08-20",
			DeliveryDate:   "2026-08-29",
			TotalAmount:    money(t, "6200"),
			AmountPaid:     money(t, "0"),
			DeliveryStatus: constants.DeliveryStatusNotDelivered,
			PaymentStatus:  constants.PaymentStatusPending,
		},
		{
			CustomerName:   "Deleted Customer",
			PhoneNumber:    "0399-9999999",
			ClothColor:     "Black",
			BookingDate:    "2026-08-05",
			DeliveryDate:   "2026-08-26",
			TotalAmount:    money(t, "1000"),
			AmountPaid:     money(t, "0"),
			IsDeleted:      true,
			DeliveryStatus: constants.DeliveryStatusNotDelivered,
			PaymentStatus:  constants.PaymentStatusPending,
		},
	}
	if err := db.Create(&bookings).Error; err != nil {
		t.Fatalf("seed bookings failed: %v", err)
	}
}

func TestBookingRepositorySearch(t *testing.T) {
	repo, db := setupBookingRepositoryTest(t)
	seedSearchBookings(t, db)

	t.Run("no filters returns all non-deleted ordered by delivery date", func(t *testing.T) {
		results, err := repo.Search(BookingSearchFilter{})
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(results) != 3 {
			t.Fatalf("expected 3 results, got %d", len(results))
		}
		for i := 1; i < len(results); i++ {
			if results[i-1].DeliveryDate > results[i].DeliveryDate {
				t.Fatalf("results not ordered by delivery date: %q before %q",
					results[i-1].DeliveryDate, results[i].DeliveryDate)
			}
		}
		for _, b := range results {
			if b.IsDeleted {
				t.Fatalf("deleted booking %d returned by search", b.ID)
			}
		}
	})

	t.Run("name substring", func(t *testing.T) {
		results, err := repo.Search(BookingSearchFilter{Search: "assan"})
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(results) != 1 || results[0].CustomerName != "Hassan Raza" {
			t.Fatalf("expected only Hassan Raza, got %+v", results)
		}
	})

	t.Run("booking date exact", func(t *testing.T) {
		results, err := repo.Search(BookingSearchFilter{BookingDate: "2026-08-10"})
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(results) != 1 || results[0].CustomerName != "Hassan Raza" {
			t.Fatalf("expected only Hassan Raza, got %+v", results)
		}
	})

	t.Run("phone substring", func(t *testing.T) {
		results, err := repo.Search(BookingSearchFilter{Phone: "3333"})
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(results) != 1 || results[0].CustomerName != "Sana Malik" {
			t.Fatalf("expected only Sana Malik, got %+v", results)
		}
	})

	t.Run("phone without digits is ignored", func(t *testing.T) {
		results, err := repo.Search(BookingSearchFilter{Phone: "n/a"})
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(results) != 3 {
			t.Fatalf("expected filter to be skipped, got %d results", len(results))
		}
	})

	t.Run("cloth color case-insensitive exact", func(t *testing.T) {
		results, err := repo.Search(BookingSearchFilter{ClothColor: "WHITE"})
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(results) != 1 || results[0].CustomerName != "Hassan Raza" {
			t.Fatalf("expected only Hassan Raza, got %+v", results)
		}
	})

	t.Run("emergency filter", func(t *testing.T) {
		yes := true
		results, err := repo.Search(BookingSearchFilter{Emergency: &yes})
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(results) != 1 || results[0].CustomerName != "Amina Yusuf" {
			t.Fatalf("expected only Amina Yusuf, got %+v", results)
		}

		no := false
		results, err = repo.Search(BookingSearchFilter{Emergency: &no})
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("expected 2 non-emergency results, got %d", len(results))
		}
	})

	t.Run("delivery status filter", func(t *testing.T) {
		results, err := repo.Search(BookingSearchFilter{DeliveryStatus: constants.DeliveryStatusDelivered})
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(results) != 1 || results[0].CustomerName != "Amina Yusuf" {
			t.Fatalf("expected only Amina Yusuf, got %+v", results)
		}
	})

	t.Run("delivery date status buckets", func(t *testing.T) {
		cases := []struct {
			bucket string
			want   string
		}{
			{constants.DeliveryDateStatusPast, "Amina Yusuf"},
			{constants.DeliveryDateStatusToday, "Hassan Raza"},
			{constants.DeliveryDateStatusUpcoming, "Sana Malik"},
		}
		for _, tc := range cases {
			results, err := repo.Search(BookingSearchFilter{
				DeliveryDateStatus: tc.bucket,
				Today:              "2026-08-28",
			})
			if err != nil {
				t.Fatalf("search %s failed: %v", tc.bucket, err)
			}
			if len(results) != 1 || results[0].CustomerName != tc.want {
				t.Fatalf("bucket %s: expected only %s, got %+v", tc.bucket, tc.want, results)
			}
		}
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		yes := true
		results, err := repo.Search(BookingSearchFilter{
			Search:    "Amina",
			Emergency: &yes,
		})
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("expected 1 result, got %d", len(results))
		}

		results, err = repo.Search(BookingSearchFilter{
			Search:    "Hassan",
			Emergency: &yes,
		})
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(results) != 0 {
			t.Fatalf("expected no results, got %d", len(results))
		}
	})
}

func TestBookingRepositoryListTodaysDeliveries(t *testing.T) {
	repo, db := setupBookingRepositoryTest(t)

	bookings := []models.Booking{
		{
			CustomerName: "Normal First", PhoneNumber: "1", BookingDate: "2026-08-20",
			DeliveryDate: "2026-08-28", DeliveryStatus: constants.DeliveryStatusNotDelivered,
			PaymentStatus: constants.PaymentStatusPending,
		},
		{
			CustomerName: "Emergency Later", PhoneNumber: "2", BookingDate: "2026-08-21",
			DeliveryDate: "2026-08-28", IsEmergency: true,
			DeliveryStatus: constants.DeliveryStatusNotDelivered,
			PaymentStatus:  constants.PaymentStatusPending,
		},
		{
			CustomerName: "Other Day", PhoneNumber: "3", BookingDate: "2026-08-21",
			DeliveryDate: "2026-08-29", DeliveryStatus: constants.DeliveryStatusNotDelivered,
			PaymentStatus: constants.PaymentStatusPending,
		},
		{
			CustomerName: "Deleted Today", PhoneNumber: "4", BookingDate: "2026-08-21",
			DeliveryDate: "2026-08-28", IsDeleted: true,
			DeliveryStatus: constants.DeliveryStatusNotDelivered,
			PaymentStatus:  constants.PaymentStatusPending,
		},
	}
	if err := db.Create(&bookings).Error; err != nil {
		t.Fatalf("seed bookings failed: %v", err)
	}

	results, err := repo.ListTodaysDeliveries("2026-08-28")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(results))
	}
	if !results[0].IsEmergency {
		t.Fatalf("expected emergency booking first, got %q", results[0].CustomerName)
	}
}

func TestBookingRepositoryPaymentLists(t *testing.T) {
	repo, db := setupBookingRepositoryTest(t)
	seedSearchBookings(t, db)

	pending, err := repo.ListPendingPayments()
	if err != nil {
		t.Fatalf("pending failed: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(pending))
	}
	if pending[0].DeliveryDate > pending[1].DeliveryDate {
		t.Fatalf("pending not ordered ascending")
	}

	completed, err := repo.ListCompletedPayments()
	if err != nil {
		t.Fatalf("completed failed: %v", err)
	}
	if len(completed) != 1 || completed[0].PaymentStatus != constants.PaymentStatusPaid {
		t.Fatalf("unexpected completed list: %+v", completed)
	}
}

func TestBookingRepositoryListBin(t *testing.T) {
	repo, db := setupBookingRepositoryTest(t)
	seedSearchBookings(t, db)

	extra := models.Booking{
		CustomerName: "Second Deleted", PhoneNumber: "5", BookingDate: "2026-08-22",
		DeliveryDate: "2026-08-30", IsDeleted: true,
		DeliveryStatus: constants.DeliveryStatusNotDelivered,
		PaymentStatus:  constants.PaymentStatusPending,
	}
	if err := db.Create(&extra).Error; err != nil {
		t.Fatalf("seed extra failed: %v", err)
	}

	bin, err := repo.ListBin()
	if err != nil {
		t.Fatalf("bin failed: %v", err)
	}
	if len(bin) != 2 {
		t.Fatalf("expected 2 deleted bookings, got %d", len(bin))
	}
	if bin[0].ID < bin[1].ID {
		t.Fatalf("bin not ordered by id descending")
	}
	for _, b := range bin {
		if !b.IsDeleted {
			t.Fatalf("non-deleted booking %d in bin", b.ID)
		}
	}
}
