package repository

import "gorm.io/gorm"

// AutoMigrate creates the schema. On PostgreSQL it additionally installs an
// exclusion constraint so two active bookings can never hold overlapping
// date ranges, closing the check-then-insert race at the store level.
// SQLite cannot express the constraint; there the booking service's
// serialized create path is the only guard.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&bookingModel{}, &settingsModel{}, &galleryModel{}); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if tx := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`); tx.Error != nil {
		return tx.Error
	}

	var count int64
	if tx := db.Raw(`SELECT COUNT(*) FROM pg_constraint WHERE conname = 'bookings_no_overlap'`).Scan(&count); tx.Error != nil {
		return tx.Error
	}
	if count > 0 {
		return nil
	}

	tx := db.Exec(`
ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
EXCLUDE USING gist (daterange(check_in::date, check_out::date) WITH &&)
WHERE (status IN ('pending', 'confirmed'))`)
	return tx.Error
}
