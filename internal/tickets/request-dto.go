package tickets

type CreateTicketRequest struct {
	PerformanceTitle string  `json:"performance_title" binding:"required,min=1,max=255"`
	Venue            *string `json:"venue" binding:"omitempty,max=255"`
	Seat             string  `json:"seat" binding:"omitempty,max=100"`
	Artist           *string `json:"artist" binding:"omitempty,max=255"`
	PosterURL        string  `json:"poster_url" binding:"omitempty,url"`
	Genre            *string `json:"genre" binding:"omitempty,max=100"`
	ReviewText       *string `json:"review_text"`
	IsPublic         *bool   `json:"is_public"`
	ViewDate         string  `json:"view_date" binding:"required"` // yyyy-mm-dd
	ImageURL         string  `json:"image_url" binding:"omitempty,url"`
	ImagePrompt      string  `json:"image_prompt"`
}

type UpdateTicketRequest struct {
	PerformanceTitle *string `json:"performance_title" binding:"omitempty,min=1,max=255"`
	Venue            *string `json:"venue" binding:"omitempty,max=255"`
	Seat             *string `json:"seat" binding:"omitempty,max=100"`
	Artist           *string `json:"artist" binding:"omitempty,max=255"`
	PosterURL        *string `json:"poster_url" binding:"omitempty,url"`
	Genre            *string `json:"genre" binding:"omitempty,max=100"`
	ReviewText       *string `json:"review_text"`
	IsPublic         *bool   `json:"is_public"`
	ViewDate         *string `json:"view_date"` // yyyy-mm-dd
	ImageURL         *string `json:"image_url" binding:"omitempty,url"`
	ImagePrompt      *string `json:"image_prompt"`
}

type SearchTicketsRequest struct {
	StartDate        string `json:"start_date"` // yyyy-mm-dd, inclusive
	EndDate          string `json:"end_date"`   // yyyy-mm-dd, inclusive
	Genre            string `json:"genre"`      // exact match
	Venue            string `json:"venue"`      // substring match
	Artist           string `json:"artist"`     // substring match
	PerformanceTitle string `json:"performance_title"`
	SortBy           string `json:"sort_by" binding:"omitempty,oneof=viewDate createdAt"`
	Direction        string `json:"direction" binding:"omitempty,oneof=ASC DESC"`
}
