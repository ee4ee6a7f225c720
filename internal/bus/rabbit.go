package bus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const ordersExchange = "orders.events"

// RabbitBus fans order events out through a durable RabbitMQ fanout
// exchange, so every service instance sees transitions made by any other.
type RabbitBus struct {
	conn   *amqp.Connection
	pubCh  *amqp.Channel
	acks   <-chan amqp.Confirmation
	pubMu  sync.Mutex // publisher confirms require serialized publishes
	logger *slog.Logger

	*dispatcher
	cancel context.CancelFunc
	done   chan struct{}
}

// DialRabbit connects to the broker, declares the exchange, and starts the
// consumer loop feeding local subscribers.
func DialRabbit(ctx context.Context, url string, logger *slog.Logger) (*RabbitBus, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	pubCh, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open publish channel: %w", err)
	}

	if err := pubCh.ExchangeDeclare(ordersExchange, "fanout", true, false, false, false, nil); err != nil {
		_ = pubCh.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	if err := pubCh.Confirm(false); err != nil {
		_ = pubCh.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}
	acks := pubCh.NotifyPublish(make(chan amqp.Confirmation, 1))

	runCtx, cancel := context.WithCancel(context.Background())
	b := &RabbitBus{
		conn:       conn,
		pubCh:      pubCh,
		acks:       acks,
		logger:     logger,
		dispatcher: newDispatcher(),
		cancel:     cancel,
		done:       make(chan struct{}),
	}

	if err := b.startConsumer(runCtx); err != nil {
		cancel()
		_ = pubCh.Close()
		_ = conn.Close()
		return nil, err
	}

	return b, nil
}

func (b *RabbitBus) startConsumer(ctx context.Context) error {
	ch, err := b.conn.Channel()
	if err != nil {
		return fmt.Errorf("open consume channel: %w", err)
	}

	// Exclusive auto-delete queue per instance: every instance gets its own
	// copy of the fanout.
	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		_ = ch.Close()
		return fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(q.Name, "", ordersExchange, false, nil); err != nil {
		_ = ch.Close()
		return fmt.Errorf("bind queue: %w", err)
	}

	msgs, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	if err != nil {
		_ = ch.Close()
		return fmt.Errorf("consume: %w", err)
	}

	go func() {
		defer close(b.done)
		defer ch.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-msgs:
				if !ok {
					return
				}
				var ev Event
				if err := json.Unmarshal(d.Body, &ev); err != nil {
					b.logger.Error("discarding undecodable order event", slog.String("error", err.Error()))
					continue
				}
				b.dispatch(ctx, ev)
			}
		}
	}()

	return nil
}

// Publish sends the event and waits for the broker confirm.
func (b *RabbitBus) Publish(ctx context.Context, ev Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	b.pubMu.Lock()
	defer b.pubMu.Unlock()

	err = b.pubCh.PublishWithContext(ctx, ordersExchange, "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	select {
	case conf := <-b.acks:
		if conf.Ack {
			return nil
		}
		return errors.New("publish nack from broker")
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *RabbitBus) Subscribe(h Handler) func() {
	return b.subscribe(h)
}

// Close stops the consumer loop and tears down the connection.
func (b *RabbitBus) Close() {
	b.cancel()
	<-b.done
	_ = b.pubCh.Close()
	_ = b.conn.Close()
}
