package chart

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
)

// Client renders charts by calling the chart worker over AMQP request/reply
// Replies arrive on an exclusive queue and are matched by correlation id
type Client struct {
	channel Channel
	queue   string
	replyTo string
	timeout time.Duration
	logger  coreport.Logger

	mu      sync.Mutex
	pending map[string]chan amqp091.Delivery
	closed  bool
}

// NewClient declares the reply queue and starts dispatching replies
func NewClient(channel Channel, queue string, timeout time.Duration, logger coreport.Logger) (*Client, error) {
	replyQueue, err := channel.QueueDeclare(
		"",    // name
		false, // durable
		true,  // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("declare reply queue: %w", err)
	}

	deliveries, err := channel.Consume(
		replyQueue.Name, // queue
		"",              // consumer
		true,            // auto-ack
		true,            // exclusive
		false,           // no-local
		false,           // no-wait
		nil,             // args
	)
	if err != nil {
		return nil, fmt.Errorf("consume reply queue: %w", err)
	}

	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := &Client{
		channel: channel,
		queue:   queue,
		replyTo: replyQueue.Name,
		timeout: timeout,
		logger:  logger.With(map[string]any{"component": "chart_client"}),
		pending: make(map[string]chan amqp091.Delivery),
	}
	go c.dispatch(deliveries)

	return c, nil
}

// Render sends the request and waits for the PNG reply
func (c *Client) Render(ctx context.Context, req entity.ChartRequest) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body, err := NewRequest(req).ToJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: marshal chart request: %s", errs.ErrChartUnavailable, err.Error())
	}

	correlationID := uuid.NewString()
	reply, err := c.register(correlationID)
	if err != nil {
		return nil, err
	}
	defer c.unregister(correlationID)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err = c.channel.PublishWithContext(
		ctx,
		"",      // default exchange
		c.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp091.Publishing{
			ContentType:   ContentTypeJSON,
			CorrelationId: correlationID,
			ReplyTo:       c.replyTo,
			Expiration:    fmt.Sprintf("%d", c.timeout.Milliseconds()),
			Timestamp:     time.Now(),
			Body:          body,
		},
	)
	if err != nil {
		c.logger.Error("Failed to publish chart request", map[string]any{
			"correlation_id": correlationID,
			"error":          err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrChartUnavailable, err.Error())
	}

	select {
	case delivery, ok := <-reply:
		if !ok {
			return nil, fmt.Errorf("%w: reply channel closed", errs.ErrChartUnavailable)
		}
		if delivery.ContentType == ContentTypePNG {
			return delivery.Body, nil
		}
		return nil, replyError(delivery.Body)
	case <-ctx.Done():
		c.logger.Warn("Chart request timed out", map[string]any{
			"correlation_id": correlationID,
			"method":         req.Method,
			"timeout":        c.timeout.String(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrChartUnavailable, ctx.Err().Error())
	}
}

func (c *Client) register(correlationID string) (chan amqp091.Delivery, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, fmt.Errorf("%w: reply queue closed", errs.ErrChartUnavailable)
	}
	reply := make(chan amqp091.Delivery, 1)
	c.pending[correlationID] = reply
	return reply, nil
}

func (c *Client) unregister(correlationID string) {
	c.mu.Lock()
	delete(c.pending, correlationID)
	c.mu.Unlock()
}

// dispatch routes replies to waiting callers until the delivery channel closes
func (c *Client) dispatch(deliveries <-chan amqp091.Delivery) {
	for delivery := range deliveries {
		c.mu.Lock()
		reply, ok := c.pending[delivery.CorrelationId]
		delete(c.pending, delivery.CorrelationId)
		c.mu.Unlock()

		if !ok {
			c.logger.Debug("Dropping late chart reply", map[string]any{
				"correlation_id": delivery.CorrelationId,
			})
			continue
		}
		reply <- delivery
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	for id, reply := range c.pending {
		close(reply)
		delete(c.pending, id)
	}
	c.logger.Warn("Chart reply queue closed", nil)
}
