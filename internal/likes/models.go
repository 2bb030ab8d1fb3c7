package likes

import (
	"time"

	"github.com/google/uuid"
)

type TicketLike struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TicketID  uint      `json:"ticket_id" gorm:"not null;index;uniqueIndex:idx_ticket_user_like"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_ticket_user_like"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (TicketLike) TableName() string {
	return "ticket_likes"
}
