package notifications

import (
	"context"
	"fmt"
	"log"
	"sync"

	"ticketlog/internal/shared/config"
	"ticketlog/internal/users"
)

// Service is the top-level notification pipeline. It publishes like
// events to Kafka and runs the consumer workers that turn them into
// emails. The likes service talks to it through its
// NotificationPublisher interface.
type Service interface {
	PublishLike(ctx context.Context, recipientID, likerID, performanceTitle string, ticketID uint) error

	Start(ctx context.Context) error
	Stop() error
	HealthCheck(ctx context.Context) error
}

type likeNotificationService struct {
	cfg      *config.Config
	producer NotificationProducer
	consumer NotificationConsumer
	users    users.Repository

	isRunning bool
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewService wires the producer, consumer and email sender from config.
// When SMTP is not configured the pipeline still runs but emails are
// only logged.
func NewService(cfg *config.Config, userRepo users.Repository) (Service, error) {
	var emailService EmailService
	if cfg.Email.SMTPHost != "" && cfg.Email.SMTPUsername != "" {
		smtpService, err := NewSMTPEmailService(&SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
			UseTLS:    true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create SMTP email service: %w", err)
		}
		emailService = smtpService
	} else {
		log.Printf("📧 SMTP not configured, like notification emails will be logged only")
		emailService = NewMockEmailService()
	}

	producerConfig := DefaultKafkaProducerConfig()
	producerConfig.Brokers = cfg.Kafka.Brokers
	producerConfig.NotificationTopic = cfg.Kafka.NotificationTopic

	producer, err := NewKafkaNotificationProducer(producerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification producer: %w", err)
	}

	consumerConfig := DefaultConsumerConfig()
	consumerConfig.Brokers = cfg.Kafka.Brokers
	consumerConfig.Topics = []string{cfg.Kafka.NotificationTopic}
	consumerConfig.GroupID = cfg.Kafka.ConsumerGroupID

	consumer, err := NewKafkaNotificationConsumer(consumerConfig, emailService)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification consumer: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	log.Printf("📧 Like notification service initialized (topic: %s)", cfg.Kafka.NotificationTopic)

	return &likeNotificationService{
		cfg:      cfg,
		producer: producer,
		consumer: consumer,
		users:    userRepo,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// PublishLike resolves both users and queues a notification for the
// ticket owner.
func (s *likeNotificationService) PublishLike(ctx context.Context, recipientID, likerID, performanceTitle string, ticketID uint) error {
	recipient, err := s.users.GetByID(recipientID)
	if err != nil {
		return fmt.Errorf("failed to resolve notification recipient: %w", err)
	}

	likerNickname := ""
	if liker, err := s.users.GetByID(likerID); err == nil {
		likerNickname = liker.Nickname
	}

	notification := NewLikeNotification(
		recipient.ID, recipient.Email, recipient.Nickname,
		likerID, likerNickname,
		performanceTitle, ticketID,
	)

	return s.producer.PublishNotification(ctx, notification)
}

func (s *likeNotificationService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("notification service is already running")
	}

	log.Printf("🚀 Starting like notification service...")

	err := s.consumer.StartConsumers(s.ctx, s.cfg.Kafka.NumWorkers)
	if err != nil {
		return fmt.Errorf("failed to start consumers: %w", err)
	}

	s.isRunning = true
	log.Printf("✅ Like notification service started successfully")

	return nil
}

func (s *likeNotificationService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return fmt.Errorf("notification service is not running")
	}

	log.Printf("🛑 Stopping like notification service...")

	s.cancel()

	if err := s.consumer.Stop(); err != nil {
		log.Printf("Error stopping consumer: %v", err)
	}

	if err := s.producer.Close(); err != nil {
		log.Printf("Error closing producer: %v", err)
	}

	s.isRunning = false
	log.Printf("✅ Like notification service stopped")

	return nil
}

func (s *likeNotificationService) HealthCheck(ctx context.Context) error {
	s.mu.RLock()
	isRunning := s.isRunning
	s.mu.RUnlock()

	if !isRunning {
		return fmt.Errorf("notification service is not running")
	}

	if err := s.producer.HealthCheck(ctx); err != nil {
		return fmt.Errorf("producer health check failed: %w", err)
	}

	if err := s.consumer.HealthCheck(ctx); err != nil {
		return fmt.Errorf("consumer health check failed: %w", err)
	}

	return nil
}
