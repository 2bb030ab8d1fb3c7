package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeTicketLiked NotificationType = "TICKET_LIKED"
)

type NotificationStatus string

const (
	NotificationStatusPending  NotificationStatus = "PENDING"
	NotificationStatusQueued   NotificationStatus = "QUEUED"
	NotificationStatusSending  NotificationStatus = "SENDING"
	NotificationStatusSent     NotificationStatus = "SENT"
	NotificationStatusFailed   NotificationStatus = "FAILED"
	NotificationStatusRetrying NotificationStatus = "RETRYING"
	NotificationStatusExpired  NotificationStatus = "EXPIRED"
)

// LikeNotification is the event published when someone likes a public
// ticket. It carries everything the email worker needs so the consumer
// never has to hit the database.
type LikeNotification struct {
	ID   uuid.UUID        `json:"id"`
	Type NotificationType `json:"type"`

	RecipientID    string `json:"recipient_id"`
	RecipientEmail string `json:"recipient_email"`
	RecipientName  string `json:"recipient_name"`

	LikerID       string `json:"liker_id"`
	LikerNickname string `json:"liker_nickname"`

	TicketID         uint   `json:"ticket_id"`
	PerformanceTitle string `json:"performance_title"`

	Subject string `json:"subject"`

	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	Status     NotificationStatus `json:"status"`
	RetryCount int                `json:"retry_count"`
	MaxRetries int                `json:"max_retries"`
	LastError  *string            `json:"last_error,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	SentAt     *time.Time         `json:"sent_at,omitempty"`
}

func NewLikeNotification(recipientID, recipientEmail, recipientName, likerID, likerNickname, performanceTitle string, ticketID uint) *LikeNotification {
	now := time.Now()
	return &LikeNotification{
		ID:               uuid.New(),
		Type:             NotificationTypeTicketLiked,
		RecipientID:      recipientID,
		RecipientEmail:   recipientEmail,
		RecipientName:    recipientName,
		LikerID:          likerID,
		LikerNickname:    likerNickname,
		TicketID:         ticketID,
		PerformanceTitle: performanceTitle,
		Status:           NotificationStatusPending,
		MaxRetries:       3,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// GetPartitionKey routes all notifications for one recipient to the same
// partition so their emails arrive in order.
func (ln *LikeNotification) GetPartitionKey() string {
	return ln.RecipientID
}

func (ln *LikeNotification) ToJSON() ([]byte, error) {
	return json.Marshal(ln)
}

func (ln *LikeNotification) IsExpired() bool {
	return ln.ExpiresAt != nil && time.Now().After(*ln.ExpiresAt)
}

func (ln *LikeNotification) ShouldRetry() bool {
	return ln.RetryCount < ln.MaxRetries &&
		ln.Status == NotificationStatusFailed &&
		!ln.IsExpired()
}

func (ln *LikeNotification) MarkSent() {
	now := time.Now()
	ln.Status = NotificationStatusSent
	ln.SentAt = &now
	ln.UpdatedAt = now
}

func (ln *LikeNotification) MarkFailed(err error) {
	ln.Status = NotificationStatusFailed
	ln.UpdatedAt = time.Now()

	errorStr := err.Error()
	ln.LastError = &errorStr
}

func (ln *LikeNotification) IncrementRetry() {
	ln.RetryCount++
	ln.UpdatedAt = time.Now()
	if ln.ShouldRetry() {
		ln.Status = NotificationStatusRetrying
	} else {
		ln.Status = NotificationStatusExpired
	}
}
