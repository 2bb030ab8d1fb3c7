package notifications

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLikeNotification(t *testing.T) {
	n := NewLikeNotification("owner-1", "owner@example.com", "theatergoer",
		"liker-1", "bandfan", "Jannabi Live Tour", 42)

	assert.Equal(t, NotificationTypeTicketLiked, n.Type)
	assert.Equal(t, NotificationStatusPending, n.Status)
	assert.Equal(t, 3, n.MaxRetries)
	assert.Equal(t, uint(42), n.TicketID)
	assert.Equal(t, "owner-1", n.GetPartitionKey())
}

func TestLikeNotificationJSONRoundTrip(t *testing.T) {
	n := NewLikeNotification("owner-1", "owner@example.com", "theatergoer",
		"liker-1", "bandfan", "Jannabi Live Tour", 42)

	data, err := n.ToJSON()
	require.NoError(t, err)

	var decoded LikeNotification
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, n.ID, decoded.ID)
	assert.Equal(t, "Jannabi Live Tour", decoded.PerformanceTitle)
	assert.Equal(t, "bandfan", decoded.LikerNickname)
}

func TestLikeNotificationRetryBookkeeping(t *testing.T) {
	n := NewLikeNotification("owner-1", "owner@example.com", "theatergoer",
		"liker-1", "bandfan", "Jannabi Live Tour", 42)

	n.MarkFailed(errors.New("smtp timeout"))
	assert.Equal(t, NotificationStatusFailed, n.Status)
	require.NotNil(t, n.LastError)
	assert.Equal(t, "smtp timeout", *n.LastError)
	assert.True(t, n.ShouldRetry())

	n.IncrementRetry()
	assert.Equal(t, NotificationStatusRetrying, n.Status)

	// Exhaust the retry budget
	n.Status = NotificationStatusFailed
	n.RetryCount = n.MaxRetries
	assert.False(t, n.ShouldRetry())
	n.IncrementRetry()
	assert.Equal(t, NotificationStatusExpired, n.Status)

	n.MarkSent()
	assert.Equal(t, NotificationStatusSent, n.Status)
	require.NotNil(t, n.SentAt)
}

func TestLikeNotificationIsExpired(t *testing.T) {
	n := NewLikeNotification("owner-1", "owner@example.com", "theatergoer",
		"liker-1", "bandfan", "Jannabi Live Tour", 42)
	assert.False(t, n.IsExpired())

	past := time.Now().Add(-time.Minute)
	n.ExpiresAt = &past
	assert.True(t, n.IsExpired())
}

func TestLikeSubjectAndContent(t *testing.T) {
	n := NewLikeNotification("owner-1", "owner@example.com", "theatergoer",
		"liker-1", "bandfan", "Jannabi Live Tour", 42)

	assert.Equal(t, "❤️ bandfan liked your ticket for Jannabi Live Tour", likeSubject(n))

	htmlBody, textBody := likeContent(n)
	assert.Contains(t, htmlBody, "bandfan")
	assert.Contains(t, htmlBody, "Jannabi Live Tour")
	assert.Contains(t, textBody, "Hi theatergoer,")

	n.LikerNickname = ""
	assert.Equal(t, "❤️ Someone liked your ticket for Jannabi Live Tour", likeSubject(n))
}
