package service

import (
	"context"
	"encoding/json"

	"smartmess-be/internal/pkg/logger"
	"smartmess-be/internal/pkg/mailer"
	"smartmess-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// IConsumerService drains the email topic in the background. Best effort
// only: a failed send is logged and acked, there is no redelivery.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber   message.Subscriber
	topic        string
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewConsumerService(subscriber message.Subscriber, topic string, emailService mailer.IEmailService, log logger.ILogger) IConsumerService {
	return &consumerService{
		subscriber:   subscriber,
		topic:        topic,
		emailService: emailService,
		log:          log,
	}
}

func (s *consumerService) Consume(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topic)
	if err != nil {
		return err
	}

	for msg := range messages {
		var evt events.EmailRequested
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			s.log.Warn("consumer", "dropping malformed email event", map[string]interface{}{
				"error": err.Error(),
			})
			msg.Ack()
			continue
		}

		if err := s.emailService.Send(evt.To, evt.Subject, evt.HTMLBody); err != nil {
			s.log.Error("consumer", "email dispatch failed", map[string]interface{}{
				"error":   err.Error(),
				"to":      evt.To,
				"subject": evt.Subject,
			})
		}
		msg.Ack()
	}

	return nil
}
