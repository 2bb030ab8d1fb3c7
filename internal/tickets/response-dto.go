package tickets

import "time"

type TicketResponse struct {
	ID               uint      `json:"id"`
	UserID           string    `json:"user_id"`
	PerformanceTitle string    `json:"performance_title"`
	Venue            *string   `json:"venue"`
	Seat             string    `json:"seat"`
	Artist           *string   `json:"artist"`
	PosterURL        string    `json:"poster_url"`
	Genre            *string   `json:"genre"`
	ReviewText       *string   `json:"review_text"`
	IsPublic         bool      `json:"is_public"`
	ViewDate         string    `json:"view_date"`
	ImageURL         string    `json:"image_url"`
	ImagePrompt      string    `json:"image_prompt"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// PublicTicketResponse decorates a ticket with like information for the
// public feed. LikedByViewer is only meaningful when the request carried an
// X-User-Id header.
type PublicTicketResponse struct {
	TicketResponse
	LikeCount     int64 `json:"like_count"`
	LikedByViewer bool  `json:"liked_by_viewer"`
}
