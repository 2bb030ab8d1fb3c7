package constants

import (
	"fmt"
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the Ticketlog application
// Pattern: ticketlog:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Static Data (Long TTL: rarely changes)
const (
	TTL_STATIC_LONG  = 24 * time.Hour // 24 hours - for reference data (shows, bands)
	TTL_STATIC_SHORT = 6 * time.Hour  // 6 hours - for user profiles
)

// Semi-Static Data (Medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_SHORT = 1 * time.Hour    // 1 hour - for per-user ticket listings
	TTL_SEMI_STATIC_QUICK = 15 * time.Minute // 15 minutes - for search results
)

// Dynamic Data (Short TTL: changes frequently)
const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute // 10 minutes - for public feeds
	TTL_DYNAMIC_SHORT  = 5 * time.Minute  // 5 minutes - for like counts
	TTL_DYNAMIC_QUICK  = 2 * time.Minute  // 2 minutes - for public ticket pages
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "ticketlog"
)

// ================== TICKETS MODULE ==================

// Ticket Cache Keys. Both listings live under the per-user prefix so a
// single pattern invalidates them together on any ticket mutation.
const (
	CACHE_KEY_TICKETS_BY_USER = CACHE_PREFIX + ":tickets:user:uuid:" // + user-id
)

// Ticket Cache TTLs
const (
	TTL_TICKETS_PUBLIC  = TTL_DYNAMIC_QUICK     // 2 minutes
	TTL_TICKETS_BY_USER = TTL_SEMI_STATIC_SHORT // 1 hour
)

// ================== LIKES MODULE ==================

// Like Cache Keys
const (
	CACHE_KEY_LIKE_COUNT  = CACHE_PREFIX + ":likes:count:ticket:"  // + ticket-id
	CACHE_KEY_LIKE_STATUS = CACHE_PREFIX + ":likes:status:ticket:" // + ticket-id:user:user-id
)

// Like Cache TTLs
const (
	TTL_LIKE_COUNT  = TTL_DYNAMIC_SHORT // 5 minutes
	TTL_LIKE_STATUS = TTL_DYNAMIC_SHORT // 5 minutes
)

// ================== PROMPTS MODULE ==================

// Prompt reference data keys (musical shows, band profiles)
const (
	CACHE_KEY_MUSICAL_SHOW = CACHE_PREFIX + ":prompts:musical:title:" // + normalized-title
	CACHE_KEY_BAND_PROFILE = CACHE_PREFIX + ":prompts:band:artist:"   // + normalized-artist
)

// Prompt Cache TTLs
const (
	TTL_PROMPT_REFERENCE = TTL_STATIC_LONG // 24 hours
)

// ================== CACHE INVALIDATION PATTERNS ==================

// Patterns for cache invalidation (used with pattern-based deletion)
const (
	PATTERN_INVALIDATE_TICKETS_ALL  = CACHE_PREFIX + ":tickets:*"
	PATTERN_INVALIDATE_TICKETS_USER = CACHE_PREFIX + ":tickets:user:uuid:" // + user-id + *
	PATTERN_INVALIDATE_LIKES_TICKET = CACHE_PREFIX + ":likes:*:ticket:"    // + ticket-id + *
)

// ================== HELPER FUNCTIONS ==================

func BuildPublicTicketsKey(userID string) string {
	return CACHE_KEY_TICKETS_BY_USER + userID + ":public"
}

func BuildUserTicketsKey(userID string) string {
	return CACHE_KEY_TICKETS_BY_USER + userID
}

func BuildLikeCountKey(ticketID uint) string {
	return CACHE_KEY_LIKE_COUNT + fmt.Sprintf("%d", ticketID)
}

func BuildLikeStatusKey(ticketID uint, userID string) string {
	return CACHE_KEY_LIKE_STATUS + fmt.Sprintf("%d", ticketID) + ":user:" + userID
}

func BuildMusicalShowKey(normalizedTitle string) string {
	return CACHE_KEY_MUSICAL_SHOW + normalizedTitle
}

func BuildBandProfileKey(normalizedArtist string) string {
	return CACHE_KEY_BAND_PROFILE + normalizedArtist
}

func BuildInvalidateUserTicketsPattern(userID string) string {
	return PATTERN_INVALIDATE_TICKETS_USER + userID + "*"
}

func BuildInvalidateTicketLikesPattern(ticketID uint) string {
	return PATTERN_INVALIDATE_LIKES_TICKET + fmt.Sprintf("%d", ticketID) + "*"
}
