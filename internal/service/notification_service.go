package service

import (
	"context"
	"encoding/json"
	"time"

	"smartmess-be/internal/pkg/logger"
	"smartmess-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// INotificationService enqueues transactional mail. Dispatch is decoupled
// from the triggering request: failures are logged by the consumer, never
// surfaced to the caller, never retried.
type INotificationService interface {
	EnqueueEmail(ctx context.Context, to, subject, htmlBody string)
}

type notificationService struct {
	publisher message.Publisher
	topic     string
	log       logger.ILogger
}

func NewNotificationService(publisher message.Publisher, topic string, log logger.ILogger) INotificationService {
	return &notificationService{
		publisher: publisher,
		topic:     topic,
		log:       log,
	}
}

func (s *notificationService) EnqueueEmail(ctx context.Context, to, subject, htmlBody string) {
	evt := events.EmailRequested{
		To:         to,
		Subject:    subject,
		HTMLBody:   htmlBody,
		OccurredAt: time.Now(),
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		s.log.Warn("notification", "failed to encode email event", map[string]interface{}{
			"error": err.Error(),
			"to":    to,
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.publisher.Publish(s.topic, msg); err != nil {
		s.log.Warn("notification", "failed to publish email event", map[string]interface{}{
			"error": err.Error(),
			"to":    to,
		})
	}
}
