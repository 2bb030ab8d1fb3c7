package analytics

// StatisticsReport is the numeric breakdown of one user's viewing year.
// Computed fresh on every request; never cached or persisted.
type StatisticsReport struct {
	TotalCountThisYear int64                `json:"total_count_this_year"`
	TotalCountLastYear int64                `json:"total_count_last_year"`
	YearOverYearChange int64                `json:"year_over_year_change"`
	MonthlyTrend       map[string]int64     `json:"monthly_trend"`
	GenreStatistics    []GenreStatistics    `json:"genre_statistics"`
	TopVenues          []VenueStatistics    `json:"top_venues"`
	TopPerformances    []PerformanceStatistics `json:"top_performances"`
	TopArtists         []ArtistStatistics   `json:"top_artists"`
	DayOfWeekStatistics map[string]int64    `json:"day_of_week_statistics"`
	WeekdayWeekendRatio WeekdayWeekendRatio `json:"weekday_weekend_ratio"`
	HalfYearComparison  HalfYearComparison  `json:"half_year_comparison"`
}

type GenreStatistics struct {
	Genre      string  `json:"genre"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type VenueStatistics struct {
	Venue string `json:"venue"`
	Count int64  `json:"count"`
}

type PerformanceStatistics struct {
	PerformanceTitle string `json:"performance_title"`
	Count            int64  `json:"count"`
}

type ArtistStatistics struct {
	Artist string `json:"artist"`
	Count  int64  `json:"count"`
}

type WeekdayWeekendRatio struct {
	WeekdayCount      int64   `json:"weekday_count"`
	WeekendCount      int64   `json:"weekend_count"`
	WeekdayPercentage float64 `json:"weekday_percentage"`
	WeekendPercentage float64 `json:"weekend_percentage"`
}

type HalfYearComparison struct {
	FirstHalfCount       int64   `json:"first_half_count"`
	SecondHalfCount      int64   `json:"second_half_count"`
	FirstHalfPercentage  float64 `json:"first_half_percentage"`
	SecondHalfPercentage float64 `json:"second_half_percentage"`
}

// YearInReviewReport is the narrative end-of-year summary.
type YearInReviewReport struct {
	Year                   int                  `json:"year"`
	TotalCount             int64                `json:"total_count"`
	YearComparison         YearComparison       `json:"year_comparison"`
	TopGenres              []GenreRanking       `json:"top_genres"`
	MostVisitedVenue       *string              `json:"most_visited_venue"`
	MostWatchedPerformance *string              `json:"most_watched_performance"`
	MostWatchedArtist      *string              `json:"most_watched_artist"`
	DayOfWeekStatistics    DayOfWeekStatistics  `json:"day_of_week_statistics"`
	HalfYearPattern        HalfYearPattern      `json:"half_year_pattern"`
	SpecialPoints          SpecialPoints        `json:"special_points"`
	ConsumptionType        ConsumptionType      `json:"consumption_type"`
	FavoriteArtists        []FavoriteArtist     `json:"favorite_artists"`
	CollectionMetrics      CollectionMetrics    `json:"collection_metrics"`
}

type YearComparison struct {
	LastYearCount    int64   `json:"last_year_count"`
	Change           int64   `json:"change"`
	ChangePercentage float64 `json:"change_percentage"`
	Trend            string  `json:"trend"` // "increase" / "decrease" / "unchanged"
}

type GenreRanking struct {
	Genre      string  `json:"genre"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type DayOfWeekStatistics struct {
	CountByDay       map[string]int64 `json:"count_by_day"`
	WeekdayCount     int64            `json:"weekday_count"`
	WeekendCount     int64            `json:"weekend_count"`
	PreferredDayType string           `json:"preferred_day_type"` // "weekday" / "weekend" / "balanced"
}

type HalfYearPattern struct {
	FirstHalfCount  int64  `json:"first_half_count"`
	SecondHalfCount int64  `json:"second_half_count"`
	Pattern         string `json:"pattern"` // "first-half-concentrated" / "second-half-concentrated" / "balanced"
}

type SpecialPoints struct {
	FirstTicket         *TicketHighlight `json:"first_ticket"`
	LastTicket          *TicketHighlight `json:"last_ticket"`
	MostMemorableTicket *TicketHighlight `json:"most_memorable_ticket"`
}

type TicketHighlight struct {
	TicketID         uint    `json:"ticket_id"`
	PerformanceTitle string  `json:"performance_title"`
	ViewDate         string  `json:"view_date"`
	Venue            *string `json:"venue"`
	ReviewPreview    *string `json:"review_preview"`
}

type ConsumptionType struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

type FavoriteArtist struct {
	Artist     string  `json:"artist"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type CollectionMetrics struct {
	TotalImageGenerations int64   `json:"total_image_generations"`
	TicketsWithImages     int64   `json:"tickets_with_images"`
	ImageGenerationRate   float64 `json:"image_generation_rate"`
}
