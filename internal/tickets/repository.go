package tickets

import (
	"fmt"
	"strings"
	"time"

	"ticketlog/internal/likes"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ticket *Ticket) error
	GetByID(id uint) (*Ticket, error)
	GetByUser(userID string) ([]Ticket, error)
	GetPublicByUser(userID string) ([]Ticket, error)
	Update(id uint, updates map[string]interface{}) (*Ticket, error)
	Delete(id uint) error
	Search(userID string, query SearchTicketsRequest) ([]Ticket, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ticket *Ticket) error {
	return r.db.Create(ticket).Error
}

func (r *repository) GetByID(id uint) (*Ticket, error) {
	var ticket Ticket
	err := r.db.Where("id = ?", id).First(&ticket).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *repository) GetByUser(userID string) ([]Ticket, error) {
	var tickets []Ticket
	err := r.db.Where("user_id = ?", userID).
		Order("view_date DESC, created_at DESC").
		Find(&tickets).Error
	return tickets, err
}

func (r *repository) GetPublicByUser(userID string) ([]Ticket, error) {
	var tickets []Ticket
	err := r.db.Where("user_id = ? AND is_public = ?", userID, true).
		Order("view_date DESC, created_at DESC").
		Find(&tickets).Error
	return tickets, err
}

func (r *repository) Update(id uint, updates map[string]interface{}) (*Ticket, error) {
	var ticket Ticket

	if err := r.db.Where("id = ?", id).First(&ticket).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&ticket).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := r.db.Where("id = ?", id).First(&ticket).Error; err != nil {
		return nil, err
	}

	return &ticket, nil
}

func (r *repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Likes reference the ticket, so they go first
		if err := tx.Where("ticket_id = ?", id).Delete(&likes.TicketLike{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket likes: %w", err)
		}

		if err := tx.Where("id = ?", id).Delete(&Ticket{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket: %w", err)
		}

		return nil
	})
}

func (r *repository) Search(userID string, query SearchTicketsRequest) ([]Ticket, error) {
	var tickets []Ticket

	db := r.db.Model(&Ticket{}).Where("user_id = ?", userID)

	if query.StartDate != "" {
		if startDate, err := time.Parse("2006-01-02", query.StartDate); err == nil {
			db = db.Where("view_date >= ?", startDate)
		}
	}

	if query.EndDate != "" {
		if endDate, err := time.Parse("2006-01-02", query.EndDate); err == nil {
			db = db.Where("view_date <= ?", endDate)
		}
	}

	if query.Genre != "" {
		db = db.Where("genre = ?", query.Genre)
	}

	if query.Venue != "" {
		db = db.Where("LOWER(venue) LIKE ?", "%"+strings.ToLower(query.Venue)+"%")
	}

	if query.Artist != "" {
		db = db.Where("LOWER(artist) LIKE ?", "%"+strings.ToLower(query.Artist)+"%")
	}

	if query.PerformanceTitle != "" {
		db = db.Where("LOWER(performance_title) LIKE ?", "%"+strings.ToLower(query.PerformanceTitle)+"%")
	}

	err := db.Order(buildSearchOrder(query)).Find(&tickets).Error
	return tickets, err
}

func buildSearchOrder(query SearchTicketsRequest) string {
	column := "created_at"
	if query.SortBy == "viewDate" {
		column = "view_date"
	}

	direction := "DESC"
	if strings.EqualFold(query.Direction, "ASC") {
		direction = "ASC"
	}

	return column + " " + direction
}
