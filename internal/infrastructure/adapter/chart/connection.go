package chart

import (
	"context"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
)

// Channel is the subset of *amqp091.Channel used by the client and the worker
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error)
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp091.Table) (<-chan amqp091.Delivery, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// Connection owns a broker connection and its single channel
type Connection struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// Dial opens a connection and a channel to the broker
func Dial(url string) (*Connection, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	return &Connection{conn: conn, channel: channel}, nil
}

// Channel returns the AMQP channel
func (c *Connection) Channel() Channel {
	return c.channel
}

// Close closes the channel and the connection
func (c *Connection) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
