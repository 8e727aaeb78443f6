package service

import (
	"context"
	"encoding/json"
	"time"

	"legal-advisor-be/internal/pkg/logger"
	"legal-advisor-be/pkg/events"
	pktNats "legal-advisor-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IAuditService tails resolved-query events and records them for ops:
// a structured audit log line, and a NATS event when a bus is configured.
type IAuditService interface {
	Consume(ctx context.Context) error
}

type auditService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	natsPub   *pktNats.Publisher
	logger    logger.ILogger
}

func NewAuditService(
	pubSub *gochannel.GoChannel,
	topicName string,
	natsPub *pktNats.Publisher,
	sysLogger logger.ILogger,
) IAuditService {
	return &auditService{
		pubSub:    pubSub,
		topicName: topicName,
		natsPub:   natsPub,
		logger:    sysLogger,
	}
}

func (a *auditService) Consume(ctx context.Context) error {
	messages, err := a.pubSub.Subscribe(ctx, a.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			a.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (a *auditService) processMessage(ctx context.Context, msg *message.Message) {
	var payload map[string]interface{}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		a.logger.Warn("audit", "failed to decode event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // ack invalid messages to prevent infinite retry
		return
	}

	a.logger.Info("audit", "query resolved", payload)

	if a.natsPub != nil {
		event := events.BaseEvent{
			Type:       events.TypeQueryResolved,
			Data:       payload,
			OccurredAt: time.Now(),
		}
		pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := a.natsPub.Publish(pubCtx, event); err != nil {
			a.logger.Warn("audit", "nats publish failed", map[string]interface{}{"error": err.Error()})
		}
		cancel()
	}

	msg.Ack()
}
