package tickets

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ticketlog/internal/likes"
)

// The likes controller maps missing tickets to 404 through the provider
// seam, so both packages have to agree on the sentinel.
func TestTicketNotFoundMatchesProviderSentinel(t *testing.T) {
	assert.True(t, errors.Is(ErrTicketNotFound, likes.ErrTicketNotFound))
}

func TestStripQueryParams(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty stays empty", "", ""},
		{"plain url untouched", "https://cdn.example.com/posters/1.png", "https://cdn.example.com/posters/1.png"},
		{"signed token stripped", "https://cdn.example.com/posters/1.png?X-Amz-Expires=3600&X-Amz-Signature=abc", "https://cdn.example.com/posters/1.png"},
		{"fragment stripped", "https://cdn.example.com/posters/1.png#preview", "https://cdn.example.com/posters/1.png"},
		{"unparseable url returned as-is", "https://cdn.example.com/%zz", "https://cdn.example.com/%zz"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, stripQueryParams(tc.input))
		})
	}
}

func TestBuildSearchOrder(t *testing.T) {
	testCases := []struct {
		name     string
		query    SearchTicketsRequest
		expected string
	}{
		{"defaults to created_at desc", SearchTicketsRequest{}, "created_at DESC"},
		{"view date maps to column name", SearchTicketsRequest{SortBy: "viewDate"}, "view_date DESC"},
		{"ascending direction honored", SearchTicketsRequest{SortBy: "viewDate", Direction: "ASC"}, "view_date ASC"},
		{"lowercase asc accepted", SearchTicketsRequest{Direction: "asc"}, "created_at ASC"},
		{"created at explicit", SearchTicketsRequest{SortBy: "createdAt", Direction: "DESC"}, "created_at DESC"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, buildSearchOrder(tc.query))
		})
	}
}

func TestTicketToResponseFormatsViewDate(t *testing.T) {
	viewDate, err := time.Parse("2006-01-02", "2025-07-12")
	assert.NoError(t, err)

	venue := "Olympic Hall"
	ticket := Ticket{
		ID:               42,
		UserID:           "user-1",
		PerformanceTitle: "Jannabi Live Tour",
		Venue:            &venue,
		ViewDate:         viewDate,
	}

	resp := ticket.ToResponse()
	assert.Equal(t, uint(42), resp.ID)
	assert.Equal(t, "2025-07-12", resp.ViewDate)
	assert.Equal(t, &venue, resp.Venue)
}
