package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"ticketlog/internal/tickets"
	"ticketlog/pkg/logger"
)

// dayNames is Sunday-first, matching Postgres EXTRACT(DOW) numbering.
var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

const (
	TrendIncrease  = "increase"
	TrendDecrease  = "decrease"
	TrendUnchanged = "unchanged"

	DayTypeWeekday  = "weekday"
	DayTypeWeekend  = "weekend"
	DayTypeBalanced = "balanced"

	PatternFirstHalf  = "first-half-concentrated"
	PatternSecondHalf = "second-half-concentrated"
	PatternBalanced   = "balanced"

	ConsumptionVenueLoyalist    = "venue-loyalist"
	ConsumptionArtistDevotee    = "artist-devotee"
	ConsumptionNoveltySeeker    = "novelty-seeker"
	ConsumptionBalancedAttendee = "balanced-attendee"
)

const reviewPreviewLimit = 50

type Service interface {
	GetStatistics(ctx context.Context, userID string, year *int) (*StatisticsReport, error)
	GetYearInReview(ctx context.Context, userID string, year *int) (*YearInReviewReport, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetStatistics(ctx context.Context, userID string, year *int) (*StatisticsReport, error) {
	targetYear := resolveYear(year)
	start := time.Now()

	inputs, err := s.repo.GetReportInputs(ctx, userID, targetYear)
	if err != nil {
		return nil, fmt.Errorf("failed to load report inputs: %w", err)
	}

	report := computeStatistics(inputs)

	logger.GetDefault().LogReportComputed(ctx, "statistics", userID, targetYear, time.Since(start))
	return report, nil
}

func (s *service) GetYearInReview(ctx context.Context, userID string, year *int) (*YearInReviewReport, error) {
	targetYear := resolveYear(year)
	start := time.Now()

	inputs, err := s.repo.GetReportInputs(ctx, userID, targetYear)
	if err != nil {
		return nil, fmt.Errorf("failed to load report inputs: %w", err)
	}

	report := computeYearInReview(targetYear, inputs)

	logger.GetDefault().LogReportComputed(ctx, "year-in-review", userID, targetYear, time.Since(start))
	return report, nil
}

func resolveYear(year *int) int {
	if year != nil {
		return *year
	}
	return time.Now().Year()
}

// computeStatistics builds the numeric breakdown from one consistent input
// snapshot. Pure function; identical inputs yield identical reports.
func computeStatistics(inputs *ReportInputs) *StatisticsReport {
	report := &StatisticsReport{
		TotalCountThisYear: inputs.TotalThisYear,
		TotalCountLastYear: inputs.TotalLastYear,
		YearOverYearChange: inputs.TotalThisYear - inputs.TotalLastYear,
	}

	// Monthly trend: always exactly 12 zero-filled keys "01".."12"
	report.MonthlyTrend = make(map[string]int64, 12)
	for month := 1; month <= 12; month++ {
		report.MonthlyTrend[fmt.Sprintf("%02d", month)] = 0
	}
	for _, row := range inputs.MonthlyCounts {
		report.MonthlyTrend[fmt.Sprintf("%02d", row.Month)] = row.Count
	}

	// Genre percentages are over the sum of genre-group counts, so tickets
	// without a genre fall out of both sides and the shares sum to 100.
	var totalForGenre int64
	for _, row := range inputs.GenreCounts {
		totalForGenre += row.Count
	}
	report.GenreStatistics = make([]GenreStatistics, 0, len(inputs.GenreCounts))
	for _, row := range inputs.GenreCounts {
		report.GenreStatistics = append(report.GenreStatistics, GenreStatistics{
			Genre:      row.Value,
			Count:      row.Count,
			Percentage: percentage(row.Count, totalForGenre),
		})
	}

	for _, row := range limitCounts(inputs.VenueCounts, 10) {
		report.TopVenues = append(report.TopVenues, VenueStatistics{Venue: row.Value, Count: row.Count})
	}
	for _, row := range limitCounts(inputs.TitleCounts, 10) {
		report.TopPerformances = append(report.TopPerformances, PerformanceStatistics{PerformanceTitle: row.Value, Count: row.Count})
	}
	for _, row := range limitCounts(inputs.ArtistCounts, 10) {
		report.TopArtists = append(report.TopArtists, ArtistStatistics{Artist: row.Value, Count: row.Count})
	}

	// Only days with at least one ticket appear; no zero fill here
	report.DayOfWeekStatistics = make(map[string]int64, len(inputs.DayOfWeekCounts))
	for _, row := range inputs.DayOfWeekCounts {
		if row.DayOfWeek >= 0 && row.DayOfWeek < 7 {
			report.DayOfWeekStatistics[dayNames[row.DayOfWeek]] = row.Count
		}
	}

	var weekdayCount, weekendCount int64
	for _, ticket := range inputs.YearTickets {
		if isWeekend(ticket.ViewDate) {
			weekendCount++
		} else {
			weekdayCount++
		}
	}
	totalDayCount := weekdayCount + weekendCount
	report.WeekdayWeekendRatio = WeekdayWeekendRatio{
		WeekdayCount:      weekdayCount,
		WeekendCount:      weekendCount,
		WeekdayPercentage: percentage(weekdayCount, totalDayCount),
		WeekendPercentage: percentage(weekendCount, totalDayCount),
	}

	var firstHalfCount, secondHalfCount int64
	for _, ticket := range inputs.YearTickets {
		if int(ticket.ViewDate.Month()) <= 6 {
			firstHalfCount++
		} else {
			secondHalfCount++
		}
	}
	totalHalfYearCount := firstHalfCount + secondHalfCount
	report.HalfYearComparison = HalfYearComparison{
		FirstHalfCount:       firstHalfCount,
		SecondHalfCount:      secondHalfCount,
		FirstHalfPercentage:  percentage(firstHalfCount, totalHalfYearCount),
		SecondHalfPercentage: percentage(secondHalfCount, totalHalfYearCount),
	}

	return report
}

// computeYearInReview builds the narrative summary. It regroups the raw
// ticket list in memory rather than reusing the statistics groupings, and a
// few conventions deliberately differ from computeStatistics (percentage
// denominators, day-of-week indexing).
func computeYearInReview(year int, inputs *ReportInputs) *YearInReviewReport {
	yearTickets := inputs.YearTickets
	totalCount := int64(len(yearTickets))
	lastYearCount := int64(len(inputs.LastYearTickets))

	change := totalCount - lastYearCount
	changePercentage := 0.0
	if lastYearCount > 0 {
		changePercentage = float64(change) * 100.0 / float64(lastYearCount)
	}
	trend := TrendUnchanged
	if change > 0 {
		trend = TrendIncrease
	} else if change < 0 {
		trend = TrendDecrease
	}

	report := &YearInReviewReport{
		Year:       year,
		TotalCount: totalCount,
		YearComparison: YearComparison{
			LastYearCount:    lastYearCount,
			Change:           change,
			ChangePercentage: changePercentage,
			Trend:            trend,
		},
	}

	// Genre shares here are over the FULL year total, null genres included
	// in the denominator. This is a different convention than the
	// statistics report and is kept that way.
	genreCounts := groupCounts(yearTickets, func(t *tickets.Ticket) (string, bool) {
		if t.Genre == nil {
			return "", false
		}
		return *t.Genre, true
	})
	report.TopGenres = make([]GenreRanking, 0, 3)
	for _, row := range limitCounts(sortByCountDesc(genreCounts), 3) {
		report.TopGenres = append(report.TopGenres, GenreRanking{
			Genre:      row.Value,
			Count:      row.Count,
			Percentage: percentage(row.Count, totalCount),
		})
	}

	venueCounts := groupCounts(yearTickets, func(t *tickets.Ticket) (string, bool) {
		if t.Venue == nil {
			return "", false
		}
		return *t.Venue, true
	})
	titleCounts := groupCounts(yearTickets, func(t *tickets.Ticket) (string, bool) {
		return t.PerformanceTitle, true
	})
	artistCounts := groupCounts(yearTickets, func(t *tickets.Ticket) (string, bool) {
		if t.Artist == nil {
			return "", false
		}
		return *t.Artist, true
	})

	report.MostVisitedVenue = maxByCount(venueCounts)
	report.MostWatchedPerformance = maxByCount(titleCounts)
	report.MostWatchedArtist = maxByCount(artistCounts)

	// ISO day value mod 7 lands on the same Sunday-first name table as the
	// statistics report, through a different index path. Kept distinct.
	countByDay := make(map[string]int64)
	var weekdayCount, weekendCount int64
	for _, ticket := range yearTickets {
		countByDay[dayNames[isoWeekdayMod7(ticket.ViewDate)]]++
		if isWeekend(ticket.ViewDate) {
			weekendCount++
		} else {
			weekdayCount++
		}
	}
	preferredDayType := DayTypeBalanced
	if weekdayCount > weekendCount {
		preferredDayType = DayTypeWeekday
	} else if weekendCount > weekdayCount {
		preferredDayType = DayTypeWeekend
	}
	report.DayOfWeekStatistics = DayOfWeekStatistics{
		CountByDay:       countByDay,
		WeekdayCount:     weekdayCount,
		WeekendCount:     weekendCount,
		PreferredDayType: preferredDayType,
	}

	var firstHalfCount int64
	for _, ticket := range yearTickets {
		if int(ticket.ViewDate.Month()) <= 6 {
			firstHalfCount++
		}
	}
	secondHalfCount := totalCount - firstHalfCount
	pattern := PatternBalanced
	if firstHalfCount > secondHalfCount {
		pattern = PatternFirstHalf
	} else if secondHalfCount > firstHalfCount {
		pattern = PatternSecondHalf
	}
	report.HalfYearPattern = HalfYearPattern{
		FirstHalfCount:  firstHalfCount,
		SecondHalfCount: secondHalfCount,
		Pattern:         pattern,
	}

	report.SpecialPoints = computeSpecialPoints(yearTickets)
	report.ConsumptionType = classifyConsumption(yearTickets, venueCounts, artistCounts, titleCounts, report.MostVisitedVenue)

	report.FavoriteArtists = make([]FavoriteArtist, 0, 5)
	for _, row := range limitCounts(sortByCountDesc(artistCounts), 5) {
		report.FavoriteArtists = append(report.FavoriteArtists, FavoriteArtist{
			Artist:     row.Value,
			Count:      row.Count,
			Percentage: percentage(row.Count, totalCount),
		})
	}

	var ticketsWithImages int64
	for _, ticket := range yearTickets {
		if ticket.ImageURL != "" {
			ticketsWithImages++
		}
	}
	report.CollectionMetrics = CollectionMetrics{
		TotalImageGenerations: ticketsWithImages,
		TicketsWithImages:     ticketsWithImages,
		ImageGenerationRate:   percentage(ticketsWithImages, totalCount),
	}

	return report
}

// computeSpecialPoints expects the ascending view-date order provided by the
// repository: first and last are simply the ends of the slice.
func computeSpecialPoints(yearTickets []tickets.Ticket) SpecialPoints {
	var points SpecialPoints
	if len(yearTickets) == 0 {
		return points
	}

	first := yearTickets[0]
	last := yearTickets[len(yearTickets)-1]
	points.FirstTicket = toHighlight(&first)
	points.LastTicket = toHighlight(&last)

	// Longest review wins; a strict > keeps the earliest ticket on ties
	var memorable *tickets.Ticket
	for i := range yearTickets {
		t := &yearTickets[i]
		if t.ReviewText == nil {
			continue
		}
		if memorable == nil || len([]rune(*t.ReviewText)) > len([]rune(*memorable.ReviewText)) {
			memorable = t
		}
	}
	if memorable != nil {
		points.MostMemorableTicket = toHighlight(memorable)
	}

	return points
}

func toHighlight(t *tickets.Ticket) *TicketHighlight {
	return &TicketHighlight{
		TicketID:         t.ID,
		PerformanceTitle: t.PerformanceTitle,
		ViewDate:         t.ViewDate.Format("2006-01-02"),
		Venue:            t.Venue,
		ReviewPreview:    previewReview(t.ReviewText),
	}
}

func previewReview(review *string) *string {
	if review == nil {
		return nil
	}
	runes := []rune(*review)
	if len(runes) <= reviewPreviewLimit {
		return review
	}
	preview := string(runes[:reviewPreviewLimit]) + "..."
	return &preview
}

// classifyConsumption applies the fixed-priority rules: venue concentration,
// then artist concentration, then title uniqueness, then the balanced
// fallback. Confidence is a constant, not data-derived.
func classifyConsumption(yearTickets []tickets.Ticket, venueCounts, artistCounts, titleCounts []FieldCount, mostVisitedVenue *string) ConsumptionType {
	total := int64(len(yearTickets))

	if mostVisitedVenue != nil {
		var sameVenueCount int64
		for _, ticket := range yearTickets {
			if ticket.Venue != nil && *ticket.Venue == *mostVisitedVenue {
				sameVenueCount++
			}
		}
		if percentage(sameVenueCount, total) > 40 {
			return describeConsumption(ConsumptionVenueLoyalist)
		}
	}

	if len(artistCounts) > 0 {
		var maxArtistCount int64
		for _, row := range artistCounts {
			if row.Count > maxArtistCount {
				maxArtistCount = row.Count
			}
		}
		if percentage(maxArtistCount, total) > 30 {
			return describeConsumption(ConsumptionArtistDevotee)
		}
	}

	uniqueTitles := int64(len(titleCounts))
	if percentage(uniqueTitles, total) > 80 {
		return describeConsumption(ConsumptionNoveltySeeker)
	}

	return describeConsumption(ConsumptionBalancedAttendee)
}

func describeConsumption(consumptionType string) ConsumptionType {
	description := "You show a balanced viewing pattern and enjoy a wide variety of performances."
	switch consumptionType {
	case ConsumptionVenueLoyalist:
		description = "You keep returning to the same venue and clearly love its atmosphere and stage."
	case ConsumptionArtistDevotee:
		description = "You follow particular artists closely and savor their performances in depth."
	case ConsumptionNoveltySeeker:
		description = "You explore new shows constantly and chase fresh experiences."
	}
	return ConsumptionType{
		Type:        consumptionType,
		Description: description,
		Confidence:  0.8,
	}
}

// groupCounts groups tickets by a key in first-occurrence order. The order
// is the tie-break for every downstream top-N and max pick.
func groupCounts(yearTickets []tickets.Ticket, key func(*tickets.Ticket) (string, bool)) []FieldCount {
	index := make(map[string]int)
	var counts []FieldCount
	for i := range yearTickets {
		value, ok := key(&yearTickets[i])
		if !ok {
			continue
		}
		if pos, seen := index[value]; seen {
			counts[pos].Count++
		} else {
			index[value] = len(counts)
			counts = append(counts, FieldCount{Value: value, Count: 1})
		}
	}
	return counts
}

// sortByCountDesc sorts stably so equal counts keep first-occurrence order.
func sortByCountDesc(counts []FieldCount) []FieldCount {
	sorted := make([]FieldCount, len(counts))
	copy(sorted, counts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	return sorted
}

func limitCounts(counts []FieldCount, n int) []FieldCount {
	if len(counts) > n {
		return counts[:n]
	}
	return counts
}

// maxByCount returns the highest-count value, first occurrence winning ties.
func maxByCount(counts []FieldCount) *string {
	if len(counts) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(counts); i++ {
		if counts[i].Count > counts[best].Count {
			best = i
		}
	}
	value := counts[best].Value
	return &value
}

func percentage(count, total int64) float64 {
	if total <= 0 {
		return 0.0
	}
	return float64(count) * 100.0 / float64(total)
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// isoWeekdayMod7 maps a date through the ISO numbering (1=Monday..7=Sunday)
// and folds it into the Sunday-first name table with a mod 7.
func isoWeekdayMod7(date time.Time) int {
	iso := int(date.Weekday())
	if iso == 0 {
		iso = 7
	}
	return iso % 7
}
