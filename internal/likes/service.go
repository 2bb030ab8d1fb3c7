package likes

import (
	"context"
	"errors"
	"fmt"

	"ticketlog/internal/shared/constants"
	"ticketlog/pkg/cache"
	"ticketlog/pkg/logger"

	"gorm.io/gorm"
)

var ErrNotTicketOwner = errors.New("only the ticket owner can view who liked it")

// ErrTicketNotFound is declared beside the TicketProvider seam so both
// sides of it can match the error without a package cycle.
var ErrTicketNotFound = errors.New("ticket not found")

// TicketProvider resolves ticket ownership without importing the tickets
// package. The tickets service satisfies it and returns ErrTicketNotFound
// for unknown tickets.
type TicketProvider interface {
	GetTicketOwner(ctx context.Context, ticketID uint) (ownerID, title string, err error)
}

// NotificationPublisher pushes a like event toward the ticket owner. The
// notifications service satisfies it; publish failures are never fatal to
// the toggle itself.
type NotificationPublisher interface {
	PublishLike(ctx context.Context, recipientID, likerID, performanceTitle string, ticketID uint) error
}

type ToggleLikeResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

type LikeCountResponse struct {
	TicketID  uint  `json:"ticket_id"`
	LikeCount int64 `json:"like_count"`
}

type LikeStatusResponse struct {
	TicketID uint `json:"ticket_id"`
	Liked    bool `json:"liked"`
}

type Service interface {
	SetCacheService(cacheService cache.Service)
	SetNotificationPublisher(publisher NotificationPublisher)
	ToggleLike(ctx context.Context, ticketID uint, userID string) (*ToggleLikeResponse, error)
	GetLikeCount(ctx context.Context, ticketID uint) (*LikeCountResponse, error)
	GetLikeStatus(ctx context.Context, ticketID uint, userID string) (*LikeStatusResponse, error)
	GetLikedUsers(ctx context.Context, ticketID uint, requesterID string) ([]string, error)
}

type service struct {
	repo           Repository
	ticketProvider TicketProvider
	cacheService   cache.Service
	publisher      NotificationPublisher
}

func NewService(repo Repository, ticketProvider TicketProvider) Service {
	return &service{
		repo:           repo,
		ticketProvider: ticketProvider,
	}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) SetNotificationPublisher(publisher NotificationPublisher) {
	s.publisher = publisher
}

func (s *service) ToggleLike(ctx context.Context, ticketID uint, userID string) (*ToggleLikeResponse, error) {
	ownerID, title, err := s.ticketProvider.GetTicketOwner(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	liked := false
	_, err = s.repo.GetByTicketAndUser(ticketID, userID)
	switch {
	case err == nil:
		if err := s.repo.DeleteByTicketAndUser(ticketID, userID); err != nil {
			return nil, fmt.Errorf("failed to remove like: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		like := &TicketLike{TicketID: ticketID, UserID: userID}
		if err := s.repo.Create(like); err != nil {
			return nil, fmt.Errorf("failed to create like: %w", err)
		}
		liked = true
	default:
		return nil, fmt.Errorf("failed to check like: %w", err)
	}

	s.invalidateCache(ctx, ticketID)
	logger.GetDefault().LogLikeToggled(ctx, ticketID, userID, liked)

	// Owners don't get notified about their own likes
	if liked && s.publisher != nil && ownerID != userID {
		if err := s.publisher.PublishLike(ctx, ownerID, userID, title, ticketID); err != nil {
			logger.GetDefault().Warn("failed to publish like notification",
				"ticket_id", ticketID, "recipient", ownerID, "error", err)
		}
	}

	count, err := s.repo.CountByTicket(ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	return &ToggleLikeResponse{Liked: liked, LikeCount: count}, nil
}

func (s *service) GetLikeCount(ctx context.Context, ticketID uint) (*LikeCountResponse, error) {
	if s.cacheService != nil {
		var count int64
		key := constants.BuildLikeCountKey(ticketID)
		err := s.cacheService.GetOrSet(ctx, key, constants.TTL_LIKE_COUNT, func() (interface{}, error) {
			return s.repo.CountByTicket(ticketID)
		}, &count)
		if err == nil {
			return &LikeCountResponse{TicketID: ticketID, LikeCount: count}, nil
		}
		logger.GetDefault().Warn("like count cache read failed", "ticket_id", ticketID, "error", err)
	}

	count, err := s.repo.CountByTicket(ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}
	return &LikeCountResponse{TicketID: ticketID, LikeCount: count}, nil
}

func (s *service) GetLikeStatus(ctx context.Context, ticketID uint, userID string) (*LikeStatusResponse, error) {
	fetch := func() (bool, error) {
		_, err := s.repo.GetByTicketAndUser(ticketID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, fmt.Errorf("failed to check like: %w", err)
		}
		return true, nil
	}

	if s.cacheService != nil {
		var liked bool
		key := constants.BuildLikeStatusKey(ticketID, userID)
		err := s.cacheService.GetOrSet(ctx, key, constants.TTL_LIKE_STATUS, func() (interface{}, error) {
			return fetch()
		}, &liked)
		if err == nil {
			return &LikeStatusResponse{TicketID: ticketID, Liked: liked}, nil
		}
		logger.GetDefault().Warn("like status cache read failed", "ticket_id", ticketID, "error", err)
	}

	liked, err := fetch()
	if err != nil {
		return nil, err
	}
	return &LikeStatusResponse{TicketID: ticketID, Liked: liked}, nil
}

func (s *service) GetLikedUsers(ctx context.Context, ticketID uint, requesterID string) ([]string, error) {
	ownerID, _, err := s.ticketProvider.GetTicketOwner(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ownerID != requesterID {
		return nil, ErrNotTicketOwner
	}

	userIDs, err := s.repo.GetUserIDsByTicket(ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to list liked users: %w", err)
	}
	return userIDs, nil
}

func (s *service) invalidateCache(ctx context.Context, ticketID uint) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeletePattern(ctx, constants.BuildInvalidateTicketLikesPattern(ticketID)); err != nil {
		logger.GetDefault().Warn("failed to invalidate like cache", "ticket_id", ticketID, "error", err)
	}
}
