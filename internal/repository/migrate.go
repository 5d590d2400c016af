package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates all tables, including the unique indexes
// the booking, review and favorite invariants depend on. Used by cmd/seed
// and the test suites; production schemas are expected to be managed the
// same way at deploy time.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&masterModel{},
		&catalogServiceModel{},
		&appointmentModel{},
		&reviewModel{},
		&favoriteModel{},
		&cardModel{},
		&paymentModel{},
	)
}
