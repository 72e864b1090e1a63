package chart

import (
	"context"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"golang.org/x/sync/errgroup"

	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"github.com/csmqbusy/personal-finances/internal/domain/port/service"
)

// Server is the chart worker: it consumes requests and replies with PNG bytes or an error envelope
type Server struct {
	channel  Channel
	queue    string
	renderer service.ChartRenderer
	prefetch int
	logger   coreport.Logger
}

// NewServer creates a worker serving the given queue
func NewServer(channel Channel, queue string, renderer service.ChartRenderer, prefetch int, logger coreport.Logger) *Server {
	if prefetch <= 0 {
		prefetch = 1
	}
	return &Server{
		channel:  channel,
		queue:    queue,
		renderer: renderer,
		prefetch: prefetch,
		logger:   logger.With(map[string]any{"component": "chart_worker", "queue": queue}),
	}
}

// Serve consumes until ctx is cancelled or the delivery channel closes
// At most prefetch requests are rendered concurrently
func (s *Server) Serve(ctx context.Context) error {
	if _, err := s.channel.QueueDeclare(
		s.queue, // name
		false,   // durable
		false,   // delete when unused
		false,   // exclusive
		false,   // no-wait
		nil,     // arguments
	); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := s.channel.Qos(s.prefetch, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := s.channel.Consume(
		s.queue, // queue
		"",      // consumer
		false,   // auto-ack (we want manual ack)
		false,   // exclusive
		false,   // no-local
		false,   // no-wait
		nil,     // args
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	s.logger.Info("Chart worker started", map[string]any{"prefetch": s.prefetch})

	group := new(errgroup.Group)
	group.SetLimit(s.prefetch)

	var serveErr error
loop:
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Stopping chart worker", map[string]any{"reason": ctx.Err().Error()})
			break loop
		case delivery, ok := <-deliveries:
			if !ok {
				serveErr = fmt.Errorf("delivery channel closed")
				break loop
			}
			group.Go(func() error {
				s.handle(ctx, delivery)
				return nil
			})
		}
	}

	if err := group.Wait(); err != nil {
		return err
	}
	return serveErr
}

func (s *Server) handle(ctx context.Context, delivery amqp091.Delivery) {
	start := time.Now()
	fields := map[string]any{"correlation_id": delivery.CorrelationId}

	if delivery.ReplyTo == "" {
		s.logger.Warn("Chart request without reply queue", fields)
		delivery.Nack(false, false)
		return
	}

	reply := amqp091.Publishing{
		ContentType:   ContentTypePNG,
		CorrelationId: delivery.CorrelationId,
	}

	req, err := RequestFromJSON(delivery.Body)
	if err == nil {
		fields["method"] = req.Method
		fields["chart_type"] = string(req.ChartType)
		reply.Body, err = s.renderer.Render(ctx, req)
	}
	if err != nil {
		fields["error"] = err.Error()
		s.logger.Warn("Chart request failed", fields)
		reply.ContentType = ContentTypeJSON
		reply.Body = newErrorReply(err)
	}

	// in-flight replies are still sent after ctx is cancelled
	publishCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.channel.PublishWithContext(publishCtx, "", delivery.ReplyTo, false, false, reply); err != nil {
		fields["error"] = err.Error()
		s.logger.Error("Failed to publish chart reply", fields)
		delivery.Nack(false, false)
		return
	}

	delivery.Ack(false)
	fields["duration_ms"] = time.Since(start).Milliseconds()
	s.logger.Debug("Chart request served", fields)
}
