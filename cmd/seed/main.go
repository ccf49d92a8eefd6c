package main

import (
	"time"

	"github.com/tailordesk/internal/config"
	"github.com/tailordesk/internal/constants"
	"github.com/tailordesk/internal/logger"
	"github.com/tailordesk/internal/models"

	"github.com/shopspring/decimal"
)

// Seeds a handful of demo bookings so a fresh install has something to show.
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	var count int64
	if err := models.DB.Model(&models.Booking{}).Count(&count).Error; err != nil {
		stdLog.Fatalf("Failed to count bookings: %v", err)
	}
	if count > 0 {
		stdLog.Printf("Bookings already present (%d), skipping seed", count)
		return
	}

	today := time.Now()
	date := func(days int) string {
		return today.AddDate(0, 0, days).Format(constants.DateLayout)
	}

	bookings := []models.Booking{
		{
			CustomerName:   "Amina Yusuf",
			PhoneNumber:    "0301-5550123",
			ClothColor:     "Navy Blue",
			BookingDate:    date(-7),
			DeliveryDate:   date(0),
			TotalAmount:    models.NewMoneyFromDecimal(decimal.RequireFromString("4500")),
			AmountPaid:     models.NewMoneyFromDecimal(decimal.RequireFromString("2000")),
			IsEmergency:    true,
			DeliveryStatus: constants.DeliveryStatusNotDelivered,
			PaymentStatus:  constants.PaymentStatusPartiallyPaid,
		},
		{
			CustomerName:   "Hassan Raza",
			PhoneNumber:    "0333-5550456",
			ClothColor:     "White",
			BookingDate:    date(-10),
			DeliveryDate:   date(-2),
			TotalAmount:    models.NewMoneyFromDecimal(decimal.RequireFromString("3000")),
			AmountPaid:     models.NewMoneyFromDecimal(decimal.RequireFromString("3000")),
			DeliveryStatus: constants.DeliveryStatusDelivered,
			PaymentStatus:  constants.PaymentStatusPaid,
		},
		{
			CustomerName:   "Sana Malik",
			PhoneNumber:    "0345-5550789",
			ClothColor:     "Maroon",
			BookingDate:    date(-3),
			DeliveryDate:   date(4),
			TotalAmount:    models.NewMoneyFromDecimal(decimal.RequireFromString("6200")),
			AmountPaid:     models.NewMoneyFromDecimal(decimal.Zero),
			DeliveryStatus: constants.DeliveryStatusNotDelivered,
			PaymentStatus:  constants.PaymentStatusPending,
		},
	}

	if err := models.DB.Create(&bookings).Error; err != nil {
		stdLog.Fatalf("Failed to seed bookings: %v", err)
	}
	stdLog.Printf("Seeded %d bookings", len(bookings))
}
