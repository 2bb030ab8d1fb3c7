package tickets

import (
	"time"
)

// Ticket is one recorded performance visit. ViewDate carries date-only
// semantics and is authoritative for all report bucketing; CreatedAt only
// breaks ordering ties.
type Ticket struct {
	ID               uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID           string    `json:"user_id" gorm:"type:uuid;not null;index"`
	PerformanceTitle string    `json:"performance_title" gorm:"not null;size:255"`
	Venue            *string   `json:"venue" gorm:"size:255"`
	Seat             string    `json:"seat" gorm:"size:100"`
	Artist           *string   `json:"artist" gorm:"size:255"`
	PosterURL        string    `json:"poster_url" gorm:"size:500"`
	Genre            *string   `json:"genre" gorm:"size:100"`
	ReviewText       *string   `json:"review_text" gorm:"type:text"`
	IsPublic         bool      `json:"is_public" gorm:"default:false"`
	ViewDate         time.Time `json:"view_date" gorm:"type:date;not null"`
	ImageURL         string    `json:"image_url" gorm:"size:500"`
	ImagePrompt      string    `json:"image_prompt" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Ticket) TableName() string {
	return "tickets"
}

// ToResponse converts a Ticket to its API representation
func (t *Ticket) ToResponse() TicketResponse {
	return TicketResponse{
		ID:               t.ID,
		UserID:           t.UserID,
		PerformanceTitle: t.PerformanceTitle,
		Venue:            t.Venue,
		Seat:             t.Seat,
		Artist:           t.Artist,
		PosterURL:        t.PosterURL,
		Genre:            t.Genre,
		ReviewText:       t.ReviewText,
		IsPublic:         t.IsPublic,
		ViewDate:         t.ViewDate.Format("2006-01-02"),
		ImageURL:         t.ImageURL,
		ImagePrompt:      t.ImagePrompt,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}
