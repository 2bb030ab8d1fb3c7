package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds database constraints AutoMigrate cannot express
func MigrateConstraints(db *gorm.DB) error {
	// One like per user per ticket
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_like_per_ticket_user
		ON ticket_likes (ticket_id, user_id);
	`).Error
	if err != nil {
		return err
	}

	// Index for the grouped report queries (per-user, per-year scans)
	err = db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_tickets_user_view_date
		ON tickets (user_id, view_date);
	`).Error
	if err != nil {
		return err
	}

	// Index for like counts by ticket
	err = db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_ticket_likes_ticket_id
		ON ticket_likes (ticket_id);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
