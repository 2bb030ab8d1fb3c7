package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger wraps slog.Logger with additional functionality
type Logger struct {
	*slog.Logger
}

// New creates a new logger instance
func New() *Logger {
	// Get log level from environment
	level := getLogLevel(os.Getenv("LOG_LEVEL"))

	// Create handler options
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	// Create handler based on environment
	var handler slog.Handler
	if gin.Mode() == gin.DebugMode {
		// Use text handler for development (more readable)
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		// Use JSON handler for production (structured)
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// getLogLevel converts string to slog.Level
func getLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID adds request ID to logger context
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("request_id", requestID)),
	}
}

// WithUserID adds user ID to logger context
func (l *Logger) WithUserID(userID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("user_id", userID)),
	}
}

// WithError adds error to logger context
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("error", err.Error())),
	}
}

// HTTP logging methods

// LogHTTPRequest logs an HTTP request
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.Logger.InfoContext(c.Request.Context(),
		"HTTP Request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("query", c.Request.URL.RawQuery),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", duration),
		slog.String("ip", c.ClientIP()),
		slog.String("user_agent", c.Request.UserAgent()),
		slog.Int("size", c.Writer.Size()),
	)
}

// LogHTTPError logs an HTTP error
func (l *Logger) LogHTTPError(c *gin.Context, err error, statusCode int) {
	l.Logger.ErrorContext(c.Request.Context(),
		"HTTP Error",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", statusCode),
		slog.String("error", err.Error()),
		slog.String("ip", c.ClientIP()),
	)
}

// Business logic logging methods

// LogTicketCreated logs when a ticket is created
func (l *Logger) LogTicketCreated(ctx context.Context, ticketID uint, userID string) {
	l.Logger.InfoContext(ctx,
		"Ticket Created",
		slog.Uint64("ticket_id", uint64(ticketID)),
		slog.String("user_id", userID),
	)
}

// LogTicketDeleted logs when a ticket is deleted
func (l *Logger) LogTicketDeleted(ctx context.Context, ticketID uint, userID string) {
	l.Logger.InfoContext(ctx,
		"Ticket Deleted",
		slog.Uint64("ticket_id", uint64(ticketID)),
		slog.String("user_id", userID),
	)
}

// LogReportComputed logs a statistics or year-in-review computation
func (l *Logger) LogReportComputed(ctx context.Context, reportType, userID string, year int, duration time.Duration) {
	l.Logger.InfoContext(ctx,
		"Report Computed",
		slog.String("report_type", reportType),
		slog.String("user_id", userID),
		slog.Int("year", year),
		slog.Duration("duration", duration),
	)
}

// LogLikeToggled logs a like toggle
func (l *Logger) LogLikeToggled(ctx context.Context, ticketID uint, userID string, liked bool) {
	l.Logger.InfoContext(ctx,
		"Like Toggled",
		slog.Uint64("ticket_id", uint64(ticketID)),
		slog.String("user_id", userID),
		slog.Bool("liked", liked),
	)
}

// LogImageGenerated logs a successful image generation call
func (l *Logger) LogImageGenerated(ctx context.Context, userID string, promptLen int, duration time.Duration) {
	l.Logger.InfoContext(ctx,
		"Image Generated",
		slog.String("user_id", userID),
		slog.Int("prompt_length", promptLen),
		slog.Duration("duration", duration),
	)
}

// Security logging methods

// LogAPIKeyRejected logs a rejected API key
func (l *Logger) LogAPIKeyRejected(ctx context.Context, ip, endpoint string) {
	l.Logger.WarnContext(ctx,
		"API Key Rejected",
		slog.String("ip", ip),
		slog.String("endpoint", endpoint),
	)
}

// LogRateLimitExceeded logs rate limit exceeded
func (l *Logger) LogRateLimitExceeded(ctx context.Context, ip, endpoint string) {
	l.Logger.WarnContext(ctx,
		"Rate Limit Exceeded",
		slog.String("ip", ip),
		slog.String("endpoint", endpoint),
	)
}

// Helper methods for common patterns

// InfoWithContext logs an info message with context
func (l *Logger) InfoWithContext(ctx context.Context, msg string, fields map[string]interface{}) {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	l.Logger.InfoContext(ctx, msg, args...)
}

// ErrorWithContext logs an error message with context
func (l *Logger) ErrorWithContext(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	args := make([]interface{}, 0, len(fields)*2+2)
	args = append(args, slog.String("error", err.Error()))
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	l.Logger.ErrorContext(ctx, msg, args...)
}

// Global logger instance (can be replaced with dependency injection)
var defaultLogger = New()

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	return defaultLogger
}
