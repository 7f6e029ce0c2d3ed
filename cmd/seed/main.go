package main

import (
	"context"
	"log"
	"time"

	"villaniva/internal/config"
	"villaniva/internal/database"
	"villaniva/internal/domain"
	"villaniva/internal/repository"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		log.Fatal("bad date:", s)
	}
	return t
}

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM villa_settings")
	db.Exec("DELETE FROM gallery_images")

	ctx := context.Background()

	log.Println("Creating settings...")
	settingsRepo := repository.NewSettingsRepository(db)
	if _, err := settingsRepo.Update(ctx, &domain.VillaSettings{
		PricePerNight: 275,
		MaxGuests:     8,
		CleaningFee:   75,
		TaxRate:       0.125,
		MinStayNights: 2,
		UnavailableDates: []time.Time{
			day("2025-12-24"),
			day("2025-12-25"),
		},
		SeasonalPricing: []domain.SeasonalRate{
			{
				StartDate:     day("2025-11-15"),
				EndDate:       day("2026-01-15"),
				PricePerNight: 350,
				Description:   "Holiday Season",
			},
		},
	}); err != nil {
		log.Fatal("seed settings:", err)
	}

	log.Println("Creating gallery...")
	galleryRepo := repository.NewGalleryRepository(db)
	images := []domain.GalleryImage{
		{Title: "Villa Exterior", Description: "Stone villa in mountains", ImageURL: "/images/exterior-1.jpg", Category: domain.CategoryExterior, Order: 1, IsActive: true, CreatedAt: time.Now().UTC()},
		{Title: "Mountain View", Description: "Vistas from terrace", ImageURL: "/images/view-1.jpg", Category: domain.CategoryView, Order: 2, IsActive: true, CreatedAt: time.Now().UTC()},
		{Title: "Master Bedroom", Description: "Rustic beams", ImageURL: "/images/bedroom-1.jpg", Category: domain.CategoryBedroom, Order: 3, IsActive: true, CreatedAt: time.Now().UTC()},
	}
	for i := range images {
		if err := galleryRepo.Create(ctx, &images[i]); err != nil {
			log.Fatal("seed gallery:", err)
		}
	}

	log.Println("Creating bookings...")
	bookingRepo := repository.NewBookingRepository(db)
	now := time.Now().UTC()
	if err := bookingRepo.Create(ctx, &domain.Booking{
		GuestName:     "John Smith",
		Email:         "john@example.com",
		Phone:         "+1-555-0123",
		CheckIn:       day("2025-09-15"),
		CheckOut:      day("2025-09-18"),
		Guests:        4,
		TotalPrice:    950,
		Status:        domain.BookingConfirmed,
		PaymentStatus: domain.PaymentPaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}); err != nil {
		log.Fatal("seed bookings:", err)
	}

	log.Println("Database seeded.")
}
