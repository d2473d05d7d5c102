package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadheryan/snackstore/model"
	"github.com/rabbitmq/amqp091-go"
)

const (
	notificationExchange   = "notification_exchange"
	notificationQueue      = "notification_queue"
	notificationRoutingKey = "notification"
)

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	now     func() time.Time
}

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

// declareTopology sets up the delayed exchange (rabbitmq_delayed_message_exchange
// plugin) and binds the notification queue to it.
func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		notificationExchange, // name
		"x-delayed-message",  // type
		true,                 // durable
		false,                // auto-delete
		false,                // internal
		false,                // no-wait
		amqp091.Table{"x-delayed-type": "direct"}, // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		notificationQueue, // name
		true,              // durable
		false,             // auto-delete
		false,             // exclusive
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		notificationQueue,      // queue name
		notificationRoutingKey, // routing key
		notificationExchange,   // exchange
		false,                  // no-wait
		nil,                    // arguments
	)
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel, now: time.Now}, nil
}

// PublishNotification enqueues msg so that it is delivered at msg.DeliverAt.
func (p *Publisher) PublishNotification(msg model.NotificationMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	delayMs := max(msg.DeliverAt.Sub(p.now()).Milliseconds(), 0)

	return p.channel.Publish(
		notificationExchange,   // exchange
		notificationRoutingKey, // routing key
		false,                  // mandatory
		false,                  // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			MessageId:   msg.ID,
			Body:        body,
			Headers: amqp091.Table{
				"x-delay": delayMs,
			},
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
