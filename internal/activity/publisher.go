package activity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Miki0195/delavnice-backend/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

// Publisher delivers transition events to a RabbitMQ topic exchange, one
// message per committed transition, routed as "<resource>.<new_state>"
// (listing.published, reservation.cancelled, ...). With no URL configured it
// degrades to a no-op so local setups run without a broker.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   logger.Logger
}

func NewPublisher(url, exchange string, log logger.Logger) (*Publisher, error) {
	if url == "" {
		log.Warn("rabbitmq url is empty, activity events disabled")
		return &Publisher{logger: log}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Publisher{conn: conn, ch: ch, exchange: exchange, logger: log}, nil
}

func (p *Publisher) PublishTransition(ctx context.Context, e domain.TransitionEvent) error {
	if p.ch == nil {
		p.logger.Debug("activity event skipped (publisher disabled)",
			logger.String("resource_id", e.ResourceID),
			logger.String("new_state", e.NewState),
		)
		return nil
	}

	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal transition event: %w", err)
	}

	key := fmt.Sprintf("%s.%s", e.Resource, e.NewState)
	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
