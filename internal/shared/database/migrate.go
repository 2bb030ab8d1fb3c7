package database

import (
	"ticketlog/internal/likes"
	"ticketlog/internal/prompts"
	"ticketlog/internal/tickets"
	"ticketlog/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&tickets.Ticket{},
		&likes.TicketLike{},
		&prompts.MusicalShow{},
		&prompts.MusicalCharacter{},
		&prompts.BandProfile{},
	)
}
