package analytics

import (
	"context"

	"ticketlog/internal/tickets"

	"gorm.io/gorm"
)

// FieldCount is one row of a grouped count query, ordered count descending
// by the database. Equal counts keep the database result order; the service
// never re-sorts rows it received from here.
type FieldCount struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

type MonthCount struct {
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

type DayOfWeekCount struct {
	DayOfWeek int   `json:"day_of_week"` // 0=Sunday .. 6=Saturday (EXTRACT(DOW))
	Count     int64 `json:"count"`
}

// ReportInputs carries everything a single report computation needs, read
// inside one transaction so target-year, prior-year, and grouped counts are
// mutually consistent.
type ReportInputs struct {
	TotalThisYear int64
	TotalLastYear int64

	MonthlyCounts   []MonthCount
	GenreCounts     []FieldCount
	VenueCounts     []FieldCount
	TitleCounts     []FieldCount
	ArtistCounts    []FieldCount
	DayOfWeekCounts []DayOfWeekCount

	// YearTickets is sorted ascending by view date (created_at breaks ties).
	YearTickets     []tickets.Ticket
	LastYearTickets []tickets.Ticket
}

type Repository interface {
	GetReportInputs(ctx context.Context, userID string, year int) (*ReportInputs, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetReportInputs(ctx context.Context, userID string, year int) (*ReportInputs, error) {
	inputs := &ReportInputs{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		yearScope := func() *gorm.DB {
			return tx.Model(&tickets.Ticket{}).
				Where("user_id = ? AND EXTRACT(YEAR FROM view_date) = ?", userID, year)
		}

		if err := yearScope().Count(&inputs.TotalThisYear).Error; err != nil {
			return err
		}

		if err := tx.Model(&tickets.Ticket{}).
			Where("user_id = ? AND EXTRACT(YEAR FROM view_date) = ?", userID, year-1).
			Count(&inputs.TotalLastYear).Error; err != nil {
			return err
		}

		if err := yearScope().
			Select("EXTRACT(MONTH FROM view_date)::int AS month, COUNT(*) AS count").
			Group("EXTRACT(MONTH FROM view_date)").
			Order("month ASC").
			Scan(&inputs.MonthlyCounts).Error; err != nil {
			return err
		}

		if err := yearScope().
			Where("genre IS NOT NULL").
			Select("genre AS value, COUNT(*) AS count").
			Group("genre").
			Order("count DESC").
			Scan(&inputs.GenreCounts).Error; err != nil {
			return err
		}

		if err := yearScope().
			Where("venue IS NOT NULL").
			Select("venue AS value, COUNT(*) AS count").
			Group("venue").
			Order("count DESC").
			Scan(&inputs.VenueCounts).Error; err != nil {
			return err
		}

		// Titles carry no null filter: the column is NOT NULL by model
		if err := yearScope().
			Select("performance_title AS value, COUNT(*) AS count").
			Group("performance_title").
			Order("count DESC").
			Scan(&inputs.TitleCounts).Error; err != nil {
			return err
		}

		if err := yearScope().
			Where("artist IS NOT NULL").
			Select("artist AS value, COUNT(*) AS count").
			Group("artist").
			Order("count DESC").
			Scan(&inputs.ArtistCounts).Error; err != nil {
			return err
		}

		if err := yearScope().
			Select("EXTRACT(DOW FROM view_date)::int AS day_of_week, COUNT(*) AS count").
			Group("EXTRACT(DOW FROM view_date)").
			Order("day_of_week ASC").
			Scan(&inputs.DayOfWeekCounts).Error; err != nil {
			return err
		}

		if err := yearScope().
			Order("view_date ASC, created_at ASC").
			Find(&inputs.YearTickets).Error; err != nil {
			return err
		}

		if err := tx.Model(&tickets.Ticket{}).
			Where("user_id = ? AND EXTRACT(YEAR FROM view_date) = ?", userID, year-1).
			Find(&inputs.LastYearTickets).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return inputs, nil
}
