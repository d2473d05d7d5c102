package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhammadheryan/snackstore/model"
	"github.com/muhammadheryan/snackstore/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	attemptHeader       = "x-attempt"
	maxDeliveryAttempts = 5
	retryBaseDelay      = 10 * time.Second
)

// Handler processes one due notification. A returned error schedules a delayed retry.
type Handler func(ctx context.Context, msg model.NotificationMessage) error

type retryFunc func(d amqp091.Delivery, attempt int, delay time.Duration) error

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	handler Handler
	retry   retryFunc
}

func NewConsumer(host string, port int, user, password string, handler Handler) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	c := &Consumer{conn: conn, channel: channel, handler: handler}
	c.retry = c.republish
	return c, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		notificationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) handle(ctx context.Context, d amqp091.Delivery) {
	var msg model.NotificationMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		logger.Error("[NotificationConsumer] unmarshal message", zap.String("error", err.Error()))
		d.Ack(false)
		return
	}

	if err := c.handler(ctx, msg); err != nil {
		attempt := attemptOf(d)
		logger.Error("[NotificationConsumer] deliver notification",
			zap.String("notification_id", msg.ID),
			zap.Int("attempt", attempt),
			zap.String("error", err.Error()))

		if attempt >= maxDeliveryAttempts {
			logger.Error("[NotificationConsumer] giving up", zap.String("notification_id", msg.ID))
			d.Ack(false)
			return
		}

		// retry through the delayed exchange instead of an immediate requeue
		if err := c.retry(d, attempt+1, retryDelay(attempt)); err != nil {
			logger.Error("[NotificationConsumer] err republish", zap.String("notification_id", msg.ID), zap.String("error", err.Error()))
			d.Nack(false, !d.Redelivered)
			return
		}
		d.Ack(false)
		return
	}

	d.Ack(false)
	logger.Debug("[NotificationConsumer] notification delivered", zap.String("notification_id", msg.ID))
}

// republish puts a copy of d back on the delayed exchange.
func (c *Consumer) republish(d amqp091.Delivery, attempt int, delay time.Duration) error {
	return c.channel.Publish(
		notificationExchange,   // exchange
		notificationRoutingKey, // routing key
		false,                  // mandatory
		false,                  // immediate
		amqp091.Publishing{
			ContentType: d.ContentType,
			MessageId:   d.MessageId,
			Body:        d.Body,
			Headers: amqp091.Table{
				"x-delay":     delay.Milliseconds(),
				attemptHeader: int32(attempt),
			},
		},
	)
}

// retryDelay doubles per failed attempt: 10s, 20s, 40s, 80s.
func retryDelay(attempt int) time.Duration {
	return retryBaseDelay << (attempt - 1)
}

// attemptOf reads the delivery attempt carried in the headers; first deliveries have none.
func attemptOf(d amqp091.Delivery) int {
	switch v := d.Headers[attemptHeader].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	}
	return 1
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
