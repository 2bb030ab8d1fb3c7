package tickets

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"ticketlog/internal/likes"
	"ticketlog/internal/shared/constants"
	"ticketlog/internal/users"
	"ticketlog/pkg/cache"
	"ticketlog/pkg/logger"

	"gorm.io/gorm"
)

var (
	ErrTicketNotFound = likes.ErrTicketNotFound
	ErrNotOwner       = errors.New("only the ticket owner can perform this action")
	ErrUserNotFound   = errors.New("user not found")
)

type Service interface {
	SetCacheService(cacheService cache.Service)
	CreateTicket(ctx context.Context, userID string, req CreateTicketRequest) (*TicketResponse, error)
	GetTicketsByUser(ctx context.Context, userID string) ([]TicketResponse, error)
	GetPublicTicketsByUser(ctx context.Context, userID, viewerID string) ([]PublicTicketResponse, error)
	UpdateTicket(ctx context.Context, ticketID uint, userID string, req UpdateTicketRequest) (*TicketResponse, error)
	DeleteTicket(ctx context.Context, ticketID uint, userID string) error
	SearchTickets(ctx context.Context, userID string, req SearchTicketsRequest) ([]TicketResponse, error)

	// GetTicketOwner is consumed by the likes service to resolve the
	// notification recipient without an import cycle.
	GetTicketOwner(ctx context.Context, ticketID uint) (ownerID, title string, err error)
}

type service struct {
	repo         Repository
	userRepo     users.Repository
	likeRepo     likes.Repository
	cacheService cache.Service
}

func NewService(repo Repository, userRepo users.Repository, likeRepo likes.Repository) Service {
	return &service{
		repo:     repo,
		userRepo: userRepo,
		likeRepo: likeRepo,
	}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) CreateTicket(ctx context.Context, userID string, req CreateTicketRequest) (*TicketResponse, error) {
	exists, err := s.userRepo.Exists(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	viewDate, err := time.Parse("2006-01-02", req.ViewDate)
	if err != nil {
		return nil, fmt.Errorf("invalid view_date, expected yyyy-mm-dd: %w", err)
	}

	isPublic := false
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	ticket := &Ticket{
		UserID:           userID,
		PerformanceTitle: req.PerformanceTitle,
		Venue:            req.Venue,
		Seat:             req.Seat,
		Artist:           req.Artist,
		PosterURL:        req.PosterURL,
		Genre:            req.Genre,
		ReviewText:       req.ReviewText,
		IsPublic:         isPublic,
		ViewDate:         viewDate,
		ImageURL:         stripQueryParams(req.ImageURL),
		ImagePrompt:      req.ImagePrompt,
	}

	if err := s.repo.Create(ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	logger.GetDefault().LogTicketCreated(ctx, ticket.ID, userID)
	s.invalidateUserCache(ctx, userID)

	response := ticket.ToResponse()
	return &response, nil
}

func (s *service) GetTicketsByUser(ctx context.Context, userID string) ([]TicketResponse, error) {
	fetch := func() ([]TicketResponse, error) {
		tickets, err := s.repo.GetByUser(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list tickets: %w", err)
		}
		responses := make([]TicketResponse, len(tickets))
		for i, ticket := range tickets {
			responses[i] = ticket.ToResponse()
		}
		return responses, nil
	}

	if s.cacheService == nil {
		return fetch()
	}

	var responses []TicketResponse
	err := s.cacheService.GetOrSet(ctx, constants.BuildUserTicketsKey(userID), constants.TTL_TICKETS_BY_USER,
		func() (interface{}, error) { return fetch() }, &responses)
	if err != nil {
		return nil, err
	}
	return responses, nil
}

func (s *service) GetPublicTicketsByUser(ctx context.Context, userID, viewerID string) ([]PublicTicketResponse, error) {
	// The base rows are cacheable; like counts and the viewer flag are
	// decorated fresh on every request.
	tickets, err := s.publicTickets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list public tickets: %w", err)
	}

	ids := make([]uint, len(tickets))
	for i, ticket := range tickets {
		ids[i] = ticket.ID
	}

	counts, err := s.likeCounts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load like counts: %w", err)
	}

	liked := map[uint]bool{}
	if viewerID != "" {
		liked, err = s.likeRepo.LikedSet(viewerID, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load like status: %w", err)
		}
	}

	responses := make([]PublicTicketResponse, len(tickets))
	for i, ticket := range tickets {
		responses[i] = PublicTicketResponse{
			TicketResponse: ticket.ToResponse(),
			LikeCount:      counts[ticket.ID],
			LikedByViewer:  liked[ticket.ID],
		}
	}
	return responses, nil
}

func (s *service) UpdateTicket(ctx context.Context, ticketID uint, userID string, req UpdateTicketRequest) (*TicketResponse, error) {
	current, err := s.repo.GetByID(ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	if current.UserID != userID {
		return nil, ErrNotOwner
	}

	// Nil fields stay untouched
	updates := make(map[string]interface{})

	if req.PerformanceTitle != nil {
		updates["performance_title"] = *req.PerformanceTitle
	}
	if req.Venue != nil {
		updates["venue"] = *req.Venue
	}
	if req.Seat != nil {
		updates["seat"] = *req.Seat
	}
	if req.Artist != nil {
		updates["artist"] = *req.Artist
	}
	if req.PosterURL != nil {
		updates["poster_url"] = *req.PosterURL
	}
	if req.Genre != nil {
		updates["genre"] = *req.Genre
	}
	if req.ReviewText != nil {
		updates["review_text"] = *req.ReviewText
	}
	if req.IsPublic != nil {
		updates["is_public"] = *req.IsPublic
	}
	if req.ViewDate != nil {
		viewDate, err := time.Parse("2006-01-02", *req.ViewDate)
		if err != nil {
			return nil, fmt.Errorf("invalid view_date, expected yyyy-mm-dd: %w", err)
		}
		updates["view_date"] = viewDate
	}
	if req.ImageURL != nil {
		updates["image_url"] = stripQueryParams(*req.ImageURL)
	}
	if req.ImagePrompt != nil {
		updates["image_prompt"] = *req.ImagePrompt
	}

	updates["updated_at"] = time.Now()

	updated, err := s.repo.Update(ticketID, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	s.invalidateUserCache(ctx, userID)

	response := updated.ToResponse()
	return &response, nil
}

func (s *service) DeleteTicket(ctx context.Context, ticketID uint, userID string) error {
	current, err := s.repo.GetByID(ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTicketNotFound
		}
		return fmt.Errorf("failed to get ticket: %w", err)
	}

	if current.UserID != userID {
		return ErrNotOwner
	}

	if err := s.repo.Delete(ticketID); err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	logger.GetDefault().LogTicketDeleted(ctx, ticketID, userID)
	s.invalidateUserCache(ctx, userID)
	s.invalidateLikeCache(ctx, ticketID)

	return nil
}

func (s *service) SearchTickets(ctx context.Context, userID string, req SearchTicketsRequest) ([]TicketResponse, error) {
	tickets, err := s.repo.Search(userID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to search tickets: %w", err)
	}

	responses := make([]TicketResponse, len(tickets))
	for i, ticket := range tickets {
		responses[i] = ticket.ToResponse()
	}
	return responses, nil
}

func (s *service) GetTicketOwner(ctx context.Context, ticketID uint) (string, string, error) {
	ticket, err := s.repo.GetByID(ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrTicketNotFound
		}
		return "", "", fmt.Errorf("failed to get ticket: %w", err)
	}
	return ticket.UserID, ticket.PerformanceTitle, nil
}

func (s *service) publicTickets(ctx context.Context, userID string) ([]Ticket, error) {
	if s.cacheService == nil {
		return s.repo.GetPublicByUser(userID)
	}

	var tickets []Ticket
	err := s.cacheService.GetOrSet(ctx, constants.BuildPublicTicketsKey(userID), constants.TTL_TICKETS_PUBLIC,
		func() (interface{}, error) { return s.repo.GetPublicByUser(userID) }, &tickets)
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

// likeCounts loads like counts, preferring cached values per ticket.
func (s *service) likeCounts(ctx context.Context, ids []uint) (map[uint]int64, error) {
	if s.cacheService == nil {
		return s.likeRepo.CountByTickets(ids)
	}

	counts := make(map[uint]int64, len(ids))
	var misses []uint
	for _, id := range ids {
		var count int64
		if err := s.cacheService.Get(ctx, constants.BuildLikeCountKey(id), &count); err == nil {
			counts[id] = count
		} else {
			misses = append(misses, id)
		}
	}

	if len(misses) == 0 {
		return counts, nil
	}

	fresh, err := s.likeRepo.CountByTickets(misses)
	if err != nil {
		return nil, err
	}
	for _, id := range misses {
		counts[id] = fresh[id]
		if err := s.cacheService.Set(ctx, constants.BuildLikeCountKey(id), fresh[id], constants.TTL_LIKE_COUNT); err != nil {
			logger.GetDefault().Warn("failed to cache like count", "ticket_id", id, "error", err)
		}
	}
	return counts, nil
}

func (s *service) invalidateUserCache(ctx context.Context, userID string) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeletePattern(ctx, constants.BuildInvalidateUserTicketsPattern(userID)); err != nil {
		logger.GetDefault().Warn("failed to invalidate ticket cache", "user_id", userID, "error", err)
	}
}

func (s *service) invalidateLikeCache(ctx context.Context, ticketID uint) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeletePattern(ctx, constants.BuildInvalidateTicketLikesPattern(ticketID)); err != nil {
		logger.GetDefault().Warn("failed to invalidate like cache", "ticket_id", ticketID, "error", err)
	}
}

// stripQueryParams removes the query string and fragment from a URL. The
// image host signs its URLs with expiring query tokens; persisting them
// would leave dead links.
func stripQueryParams(rawURL string) string {
	if rawURL == "" {
		return rawURL
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return parsed.String()
}
