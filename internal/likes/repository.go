package likes

import (
	"gorm.io/gorm"
)

type Repository interface {
	Create(like *TicketLike) error
	DeleteByTicketAndUser(ticketID uint, userID string) error
	GetByTicketAndUser(ticketID uint, userID string) (*TicketLike, error)
	CountByTicket(ticketID uint) (int64, error)
	CountByTickets(ticketIDs []uint) (map[uint]int64, error)
	LikedSet(userID string, ticketIDs []uint) (map[uint]bool, error)
	GetUserIDsByTicket(ticketID uint) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(like *TicketLike) error {
	return r.db.Create(like).Error
}

func (r *repository) DeleteByTicketAndUser(ticketID uint, userID string) error {
	return r.db.Where("ticket_id = ? AND user_id = ?", ticketID, userID).
		Delete(&TicketLike{}).Error
}

func (r *repository) GetByTicketAndUser(ticketID uint, userID string) (*TicketLike, error) {
	var like TicketLike
	err := r.db.Where("ticket_id = ? AND user_id = ?", ticketID, userID).
		First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *repository) CountByTicket(ticketID uint) (int64, error) {
	var count int64
	err := r.db.Model(&TicketLike{}).Where("ticket_id = ?", ticketID).Count(&count).Error
	return count, err
}

func (r *repository) CountByTickets(ticketIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(ticketIDs))
	if len(ticketIDs) == 0 {
		return counts, nil
	}

	type countRow struct {
		TicketID uint  `json:"ticket_id"`
		Count    int64 `json:"count"`
	}

	var rows []countRow
	err := r.db.Model(&TicketLike{}).
		Select("ticket_id, COUNT(*) as count").
		Where("ticket_id IN ?", ticketIDs).
		Group("ticket_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.TicketID] = row.Count
	}
	return counts, nil
}

func (r *repository) LikedSet(userID string, ticketIDs []uint) (map[uint]bool, error) {
	liked := make(map[uint]bool, len(ticketIDs))
	if len(ticketIDs) == 0 {
		return liked, nil
	}

	var ids []uint
	err := r.db.Model(&TicketLike{}).
		Where("user_id = ? AND ticket_id IN ?", userID, ticketIDs).
		Pluck("ticket_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

func (r *repository) GetUserIDsByTicket(ticketID uint) ([]string, error) {
	var userIDs []string
	err := r.db.Model(&TicketLike{}).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Pluck("user_id", &userIDs).Error
	return userIDs, err
}
