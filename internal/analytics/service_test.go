package analytics

import (
	"strings"
	"testing"
	"time"

	"ticketlog/internal/tickets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }

func mustDate(t *testing.T, v string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", v)
	require.NoError(t, err)
	return d
}

// threeTicketInputs builds a small but full 2024 year: two musicals at the
// same venue bracketing the year and one band show in July.
func threeTicketInputs(t *testing.T) *ReportInputs {
	t.Helper()

	longReview := "An absolutely unforgettable night from the first chord to the very final encore bow."

	yearTickets := []tickets.Ticket{
		{
			ID:               1,
			PerformanceTitle: "The Phantom of the Opera",
			Venue:            strPtr("Blue Square"),
			Artist:           strPtr("Kim Junsu"),
			Genre:            strPtr("MUSICAL"),
			ReviewText:       strPtr("Short note."),
			ViewDate:         mustDate(t, "2024-01-06"), // Saturday
			ImageURL:         "https://img.example.com/1.png",
		},
		{
			ID:               2,
			PerformanceTitle: "Jannabi Live",
			Venue:            strPtr("Olympic Hall"),
			Artist:           strPtr("Jannabi"),
			Genre:            strPtr("BAND"),
			ReviewText:       &longReview,
			ViewDate:         mustDate(t, "2024-07-13"), // Saturday
		},
		{
			ID:               3,
			PerformanceTitle: "The Phantom of the Opera",
			Venue:            strPtr("Blue Square"),
			Artist:           strPtr("Kim Junsu"),
			Genre:            strPtr("MUSICAL"),
			ViewDate:         mustDate(t, "2024-12-02"), // Monday
		},
	}

	return &ReportInputs{
		TotalThisYear: 3,
		TotalLastYear: 2,
		MonthlyCounts: []MonthCount{{Month: 1, Count: 1}, {Month: 7, Count: 1}, {Month: 12, Count: 1}},
		GenreCounts:   []FieldCount{{Value: "MUSICAL", Count: 2}, {Value: "BAND", Count: 1}},
		VenueCounts:   []FieldCount{{Value: "Blue Square", Count: 2}, {Value: "Olympic Hall", Count: 1}},
		TitleCounts:   []FieldCount{{Value: "The Phantom of the Opera", Count: 2}, {Value: "Jannabi Live", Count: 1}},
		ArtistCounts:  []FieldCount{{Value: "Kim Junsu", Count: 2}, {Value: "Jannabi", Count: 1}},
		DayOfWeekCounts: []DayOfWeekCount{
			{DayOfWeek: 6, Count: 2}, // Saturday
			{DayOfWeek: 1, Count: 1}, // Monday
		},
		YearTickets:     yearTickets,
		LastYearTickets: []tickets.Ticket{{ID: 10}, {ID: 11}},
	}
}

func TestComputeStatistics(t *testing.T) {
	report := computeStatistics(threeTicketInputs(t))

	assert.Equal(t, int64(3), report.TotalCountThisYear)
	assert.Equal(t, int64(2), report.TotalCountLastYear)
	assert.Equal(t, int64(1), report.YearOverYearChange)

	// Monthly trend always carries all 12 keys, zero-filled
	assert.Len(t, report.MonthlyTrend, 12)
	assert.Equal(t, int64(1), report.MonthlyTrend["01"])
	assert.Equal(t, int64(0), report.MonthlyTrend["02"])
	assert.Equal(t, int64(1), report.MonthlyTrend["07"])
	assert.Equal(t, int64(1), report.MonthlyTrend["12"])

	require.Len(t, report.GenreStatistics, 2)
	assert.Equal(t, "MUSICAL", report.GenreStatistics[0].Genre)
	assert.InDelta(t, 66.67, report.GenreStatistics[0].Percentage, 0.01)
	assert.InDelta(t, 33.33, report.GenreStatistics[1].Percentage, 0.01)

	require.Len(t, report.TopVenues, 2)
	assert.Equal(t, "Blue Square", report.TopVenues[0].Venue)
	assert.Equal(t, int64(2), report.TopVenues[0].Count)

	require.Len(t, report.TopPerformances, 2)
	assert.Equal(t, "The Phantom of the Opera", report.TopPerformances[0].PerformanceTitle)

	require.Len(t, report.TopArtists, 2)
	assert.Equal(t, "Kim Junsu", report.TopArtists[0].Artist)

	// Only days with tickets appear; no zero fill
	assert.Len(t, report.DayOfWeekStatistics, 2)
	assert.Equal(t, int64(2), report.DayOfWeekStatistics["Sat"])
	assert.Equal(t, int64(1), report.DayOfWeekStatistics["Mon"])

	assert.Equal(t, int64(1), report.WeekdayWeekendRatio.WeekdayCount)
	assert.Equal(t, int64(2), report.WeekdayWeekendRatio.WeekendCount)
	assert.InDelta(t, 66.67, report.WeekdayWeekendRatio.WeekendPercentage, 0.01)

	assert.Equal(t, int64(1), report.HalfYearComparison.FirstHalfCount)
	assert.Equal(t, int64(2), report.HalfYearComparison.SecondHalfCount)
	assert.InDelta(t, 33.33, report.HalfYearComparison.FirstHalfPercentage, 0.01)
	assert.InDelta(t, 66.67, report.HalfYearComparison.SecondHalfPercentage, 0.01)
}

// June belongs to the first half, July to the second.
func TestHalfYearBoundary(t *testing.T) {
	inputs := &ReportInputs{
		TotalThisYear: 2,
		YearTickets: []tickets.Ticket{
			{ID: 1, ViewDate: mustDate(t, "2024-06-30")},
			{ID: 2, ViewDate: mustDate(t, "2024-07-01")},
		},
	}

	stats := computeStatistics(inputs)
	assert.Equal(t, int64(1), stats.HalfYearComparison.FirstHalfCount)
	assert.Equal(t, int64(1), stats.HalfYearComparison.SecondHalfCount)

	review := computeYearInReview(2024, inputs)
	assert.Equal(t, int64(1), review.HalfYearPattern.FirstHalfCount)
	assert.Equal(t, int64(1), review.HalfYearPattern.SecondHalfCount)
	assert.Equal(t, PatternBalanced, review.HalfYearPattern.Pattern)
}

func TestComputeStatisticsEmptyYear(t *testing.T) {
	report := computeStatistics(&ReportInputs{})

	assert.Equal(t, int64(0), report.TotalCountThisYear)
	assert.Equal(t, int64(0), report.YearOverYearChange)
	assert.Len(t, report.MonthlyTrend, 12)
	for month, count := range report.MonthlyTrend {
		assert.Equal(t, int64(0), count, "month %s", month)
	}
	assert.Empty(t, report.GenreStatistics)
	assert.Empty(t, report.TopVenues)
	assert.Empty(t, report.DayOfWeekStatistics)
	assert.Equal(t, 0.0, report.WeekdayWeekendRatio.WeekdayPercentage)
	assert.Equal(t, 0.0, report.HalfYearComparison.FirstHalfPercentage)
}

func TestComputeYearInReview(t *testing.T) {
	report := computeYearInReview(2024, threeTicketInputs(t))

	assert.Equal(t, 2024, report.Year)
	assert.Equal(t, int64(3), report.TotalCount)
	assert.Equal(t, int64(2), report.YearComparison.LastYearCount)
	assert.Equal(t, int64(1), report.YearComparison.Change)
	assert.InDelta(t, 50.0, report.YearComparison.ChangePercentage, 0.01)
	assert.Equal(t, TrendIncrease, report.YearComparison.Trend)

	// Genre shares use the full year total as denominator here
	require.Len(t, report.TopGenres, 2)
	assert.Equal(t, "MUSICAL", report.TopGenres[0].Genre)
	assert.InDelta(t, 66.67, report.TopGenres[0].Percentage, 0.01)

	require.NotNil(t, report.MostVisitedVenue)
	assert.Equal(t, "Blue Square", *report.MostVisitedVenue)
	require.NotNil(t, report.MostWatchedPerformance)
	assert.Equal(t, "The Phantom of the Opera", *report.MostWatchedPerformance)
	require.NotNil(t, report.MostWatchedArtist)
	assert.Equal(t, "Kim Junsu", *report.MostWatchedArtist)

	assert.Equal(t, int64(2), report.DayOfWeekStatistics.CountByDay["Sat"])
	assert.Equal(t, int64(1), report.DayOfWeekStatistics.CountByDay["Mon"])
	assert.Equal(t, DayTypeWeekend, report.DayOfWeekStatistics.PreferredDayType)

	assert.Equal(t, int64(1), report.HalfYearPattern.FirstHalfCount)
	assert.Equal(t, int64(2), report.HalfYearPattern.SecondHalfCount)
	assert.Equal(t, PatternSecondHalf, report.HalfYearPattern.Pattern)

	require.NotNil(t, report.SpecialPoints.FirstTicket)
	assert.Equal(t, uint(1), report.SpecialPoints.FirstTicket.TicketID)
	assert.Equal(t, "2024-01-06", report.SpecialPoints.FirstTicket.ViewDate)
	require.NotNil(t, report.SpecialPoints.LastTicket)
	assert.Equal(t, uint(3), report.SpecialPoints.LastTicket.TicketID)

	// Longest review wins most memorable
	require.NotNil(t, report.SpecialPoints.MostMemorableTicket)
	assert.Equal(t, uint(2), report.SpecialPoints.MostMemorableTicket.TicketID)

	// Blue Square holds 2 of 3 visits, above the 40% loyalty threshold
	assert.Equal(t, ConsumptionVenueLoyalist, report.ConsumptionType.Type)
	assert.Equal(t, 0.8, report.ConsumptionType.Confidence)
	assert.NotEmpty(t, report.ConsumptionType.Description)

	require.Len(t, report.FavoriteArtists, 2)
	assert.Equal(t, "Kim Junsu", report.FavoriteArtists[0].Artist)
	assert.InDelta(t, 66.67, report.FavoriteArtists[0].Percentage, 0.01)

	assert.Equal(t, int64(1), report.CollectionMetrics.TicketsWithImages)
	assert.Equal(t, report.CollectionMetrics.TicketsWithImages, report.CollectionMetrics.TotalImageGenerations)
	assert.InDelta(t, 33.33, report.CollectionMetrics.ImageGenerationRate, 0.01)
}

func TestComputeYearInReviewEmptyYear(t *testing.T) {
	report := computeYearInReview(2025, &ReportInputs{})

	assert.Equal(t, int64(0), report.TotalCount)
	assert.Equal(t, 0.0, report.YearComparison.ChangePercentage)
	assert.Equal(t, TrendUnchanged, report.YearComparison.Trend)
	assert.Nil(t, report.MostVisitedVenue)
	assert.Nil(t, report.SpecialPoints.FirstTicket)
	assert.Nil(t, report.SpecialPoints.MostMemorableTicket)
	assert.Equal(t, DayTypeBalanced, report.DayOfWeekStatistics.PreferredDayType)
	assert.Equal(t, PatternBalanced, report.HalfYearPattern.Pattern)
	assert.Equal(t, ConsumptionBalancedAttendee, report.ConsumptionType.Type)
	assert.Equal(t, 0.0, report.CollectionMetrics.ImageGenerationRate)
}

func TestChangePercentageZeroPriorYear(t *testing.T) {
	inputs := &ReportInputs{
		YearTickets: []tickets.Ticket{
			{ID: 1, PerformanceTitle: "Solo Show", ViewDate: mustDate(t, "2024-03-01")},
		},
	}
	report := computeYearInReview(2024, inputs)

	assert.Equal(t, int64(1), report.YearComparison.Change)
	assert.Equal(t, 0.0, report.YearComparison.ChangePercentage)
	assert.Equal(t, TrendIncrease, report.YearComparison.Trend)
}

func TestClassifyConsumption(t *testing.T) {
	t.Run("artist devotee when one artist dominates", func(t *testing.T) {
		yearTickets := []tickets.Ticket{
			{PerformanceTitle: "A", Venue: strPtr("V1"), Artist: strPtr("Jannabi"), ViewDate: mustDate(t, "2024-01-10")},
			{PerformanceTitle: "B", Venue: strPtr("V2"), Artist: strPtr("Jannabi"), ViewDate: mustDate(t, "2024-02-10")},
			{PerformanceTitle: "C", Venue: strPtr("V3"), Artist: strPtr("Other"), ViewDate: mustDate(t, "2024-03-10")},
		}
		inputs := &ReportInputs{YearTickets: yearTickets}
		report := computeYearInReview(2024, inputs)
		assert.Equal(t, ConsumptionArtistDevotee, report.ConsumptionType.Type)
	})

	t.Run("novelty seeker when almost every title is unique", func(t *testing.T) {
		yearTickets := make([]tickets.Ticket, 0, 5)
		for i, title := range []string{"A", "B", "C", "D", "E"} {
			yearTickets = append(yearTickets, tickets.Ticket{
				PerformanceTitle: title,
				Venue:            strPtr("V" + title),
				Artist:           strPtr("Artist" + title),
				ViewDate:         mustDate(t, "2024-02-01").AddDate(0, i, 0),
			})
		}
		inputs := &ReportInputs{YearTickets: yearTickets}
		report := computeYearInReview(2024, inputs)
		assert.Equal(t, ConsumptionNoveltySeeker, report.ConsumptionType.Type)
	})

	t.Run("balanced attendee as fallback", func(t *testing.T) {
		yearTickets := []tickets.Ticket{
			{PerformanceTitle: "A", Venue: strPtr("V1"), ViewDate: mustDate(t, "2024-01-10")},
			{PerformanceTitle: "A", Venue: strPtr("V2"), ViewDate: mustDate(t, "2024-02-10")},
			{PerformanceTitle: "B", Venue: strPtr("V3"), ViewDate: mustDate(t, "2024-03-10")},
		}
		inputs := &ReportInputs{YearTickets: yearTickets}
		report := computeYearInReview(2024, inputs)
		assert.Equal(t, ConsumptionBalancedAttendee, report.ConsumptionType.Type)
	})
}

func TestMaxByCountFirstOccurrenceWinsTies(t *testing.T) {
	counts := []FieldCount{{Value: "A", Count: 2}, {Value: "B", Count: 2}, {Value: "C", Count: 1}}
	winner := maxByCount(counts)
	require.NotNil(t, winner)
	assert.Equal(t, "A", *winner)

	assert.Nil(t, maxByCount(nil))
}

func TestSortByCountDescIsStable(t *testing.T) {
	counts := []FieldCount{{Value: "A", Count: 1}, {Value: "B", Count: 2}, {Value: "C", Count: 1}}
	sorted := sortByCountDesc(counts)

	assert.Equal(t, "B", sorted[0].Value)
	assert.Equal(t, "A", sorted[1].Value)
	assert.Equal(t, "C", sorted[2].Value)

	// Input slice is untouched
	assert.Equal(t, "A", counts[0].Value)
}

func TestGroupCountsKeepsFirstOccurrenceOrder(t *testing.T) {
	yearTickets := []tickets.Ticket{
		{Venue: strPtr("Olympic Hall")},
		{Venue: strPtr("Blue Square")},
		{Venue: nil},
		{Venue: strPtr("Olympic Hall")},
	}
	counts := groupCounts(yearTickets, func(t *tickets.Ticket) (string, bool) {
		if t.Venue == nil {
			return "", false
		}
		return *t.Venue, true
	})

	require.Len(t, counts, 2)
	assert.Equal(t, FieldCount{Value: "Olympic Hall", Count: 2}, counts[0])
	assert.Equal(t, FieldCount{Value: "Blue Square", Count: 1}, counts[1])
}

func TestMostMemorableTieKeepsEarliestTicket(t *testing.T) {
	yearTickets := []tickets.Ticket{
		{ID: 1, PerformanceTitle: "A", ReviewText: strPtr("same length"), ViewDate: mustDate(t, "2024-01-01")},
		{ID: 2, PerformanceTitle: "B", ReviewText: strPtr("SAME LENGTH"), ViewDate: mustDate(t, "2024-06-01")},
	}
	points := computeSpecialPoints(yearTickets)

	require.NotNil(t, points.MostMemorableTicket)
	assert.Equal(t, uint(1), points.MostMemorableTicket.TicketID)
}

func TestPreviewReview(t *testing.T) {
	assert.Nil(t, previewReview(nil))

	short := "fits entirely"
	assert.Equal(t, &short, previewReview(&short))

	long := strings.Repeat("가", 60)
	preview := previewReview(&long)
	require.NotNil(t, preview)
	assert.Equal(t, strings.Repeat("가", 50)+"...", *preview)
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, percentage(0, 0))
	assert.Equal(t, 0.0, percentage(5, 0))
	assert.InDelta(t, 50.0, percentage(1, 2), 0.0001)
}

func TestIsoWeekdayMod7(t *testing.T) {
	assert.Equal(t, 0, isoWeekdayMod7(mustDate(t, "2024-01-07"))) // Sunday
	assert.Equal(t, 1, isoWeekdayMod7(mustDate(t, "2024-01-01"))) // Monday
	assert.Equal(t, 6, isoWeekdayMod7(mustDate(t, "2024-01-06"))) // Saturday
}

func TestResolveYear(t *testing.T) {
	year := 2023
	assert.Equal(t, 2023, resolveYear(&year))
	assert.Equal(t, time.Now().Year(), resolveYear(nil))
}
