package chart_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/chart"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/logger"
)

var pngMagic = []byte("\x89PNG")

// memoryBroker routes publishes on the default exchange to in-memory queues
type memoryBroker struct {
	mu      sync.Mutex
	queues  map[string]chan amqp091.Delivery
	seq     int
	acks    int
	nacks   int
	publish func(key string, msg amqp091.Publishing) error
}

func newMemoryBroker() *memoryBroker {
	return &memoryBroker{queues: make(map[string]chan amqp091.Delivery)}
}

func (b *memoryBroker) queue(name string) chan amqp091.Delivery {
	b.mu.Lock()
	defer b.mu.Unlock()
	q, ok := b.queues[name]
	if !ok {
		q = make(chan amqp091.Delivery, 16)
		b.queues[name] = q
	}
	return q
}

func (b *memoryBroker) QueueDeclare(name string, _, _, _, _ bool, _ amqp091.Table) (amqp091.Queue, error) {
	if name == "" {
		b.mu.Lock()
		b.seq++
		name = fmt.Sprintf("amq.gen-%d", b.seq)
		b.mu.Unlock()
	}
	b.queue(name)
	return amqp091.Queue{Name: name}, nil
}

func (b *memoryBroker) Qos(int, int, bool) error { return nil }

func (b *memoryBroker) Consume(queue, _ string, _, _, _, _ bool, _ amqp091.Table) (<-chan amqp091.Delivery, error) {
	return b.queue(queue), nil
}

func (b *memoryBroker) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp091.Publishing) error {
	if b.publish != nil {
		if err := b.publish(key, msg); err != nil {
			return err
		}
	}
	b.queue(key) <- amqp091.Delivery{
		Acknowledger:  b,
		ContentType:   msg.ContentType,
		CorrelationId: msg.CorrelationId,
		ReplyTo:       msg.ReplyTo,
		Body:          msg.Body,
	}
	return nil
}

func (b *memoryBroker) Ack(uint64, bool) error {
	b.mu.Lock()
	b.acks++
	b.mu.Unlock()
	return nil
}

func (b *memoryBroker) Nack(uint64, bool, bool) error {
	b.mu.Lock()
	b.nacks++
	b.mu.Unlock()
	return nil
}

func (b *memoryBroker) Reject(tag uint64, requeue bool) error {
	return b.Nack(tag, false, requeue)
}

func startWorker(t *testing.T, broker *memoryBroker) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	server := chart.NewServer(broker, "rpc_queue", chart.NewRenderer(400, 300), 2, logger.NewNoopLogger())

	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func TestClientServerRoundTrip(t *testing.T) {
	broker := newMemoryBroker()
	startWorker(t, broker)

	client, err := chart.NewClient(broker, "rpc_queue", 5*time.Second, logger.NewNoopLogger())
	require.NoError(t, err)

	t.Run("pie", func(t *testing.T) {
		png, err := client.Render(context.Background(), entity.ChartRequest{
			Method:    entity.ChartMethodCategory,
			Values:    []int64{500, 300, 200},
			Labels:    []string{"Food", "Rent", "Other"},
			ChartType: entity.ChartPie,
			Title:     "Spendings 2024",
		})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(png, pngMagic))
	})

	t.Run("period barplot", func(t *testing.T) {
		summaries := []entity.PeriodSummary{{PeriodNumber: 3, TotalAmount: 900}}
		png, err := client.Render(context.Background(), entity.NewPeriodChartRequest(summaries, 12, "Spendings 2024"))
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(png, pngMagic))
	})

	t.Run("all zero values", func(t *testing.T) {
		_, err := client.Render(context.Background(), entity.NewPeriodChartRequest(nil, 12, "Incomes 2024"))
		assert.ErrorIs(t, err, errs.ErrEmptyChart)
	})

	t.Run("mismatched labels rejected locally", func(t *testing.T) {
		_, err := client.Render(context.Background(), entity.ChartRequest{
			Method: entity.ChartMethodCategory,
			Values: []int64{1, 2},
			Labels: []string{"a"},
		})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("concurrent callers get their own replies", func(t *testing.T) {
		var wg sync.WaitGroup
		errCh := make(chan error, 6)
		for i := 0; i < 6; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := client.Render(context.Background(), entity.ChartRequest{
					Method:    entity.ChartMethodCategory,
					Values:    []int64{int64(i + 1)},
					Labels:    []string{"Food"},
					ChartType: entity.ChartBarplot,
				})
				errCh <- err
			}()
		}
		wg.Wait()
		close(errCh)
		for err := range errCh {
			assert.NoError(t, err)
		}
	})
}

func TestClientTimeout(t *testing.T) {
	// nobody consumes rpc_queue
	broker := newMemoryBroker()
	client, err := chart.NewClient(broker, "rpc_queue", 50*time.Millisecond, logger.NewNoopLogger())
	require.NoError(t, err)

	_, err = client.Render(context.Background(), entity.ChartRequest{
		Method: entity.ChartMethodCategory,
		Values: []int64{10},
		Labels: []string{"Food"},
	})
	assert.ErrorIs(t, err, errs.ErrChartUnavailable)
}

func TestClientPublishFailure(t *testing.T) {
	broker := newMemoryBroker()
	broker.publish = func(key string, _ amqp091.Publishing) error {
		if key == "rpc_queue" {
			return amqp091.ErrClosed
		}
		return nil
	}
	client, err := chart.NewClient(broker, "rpc_queue", time.Second, logger.NewNoopLogger())
	require.NoError(t, err)

	_, err = client.Render(context.Background(), entity.ChartRequest{
		Method: entity.ChartMethodCategory,
		Values: []int64{10},
		Labels: []string{"Food"},
	})
	assert.ErrorIs(t, err, errs.ErrChartUnavailable)
}

func TestServerRepliesWithErrorEnvelope(t *testing.T) {
	broker := newMemoryBroker()
	startWorker(t, broker)

	replies := broker.queue("replies")
	require.NoError(t, broker.PublishWithContext(context.Background(), "", "rpc_queue", false, false, amqp091.Publishing{
		CorrelationId: "abc",
		ReplyTo:       "replies",
		Body:          []byte(`{"method":"nope","params":{"values":[1],"labels":["x"]}}`),
	}))

	select {
	case reply := <-replies:
		assert.Equal(t, "abc", reply.CorrelationId)
		assert.Equal(t, chart.ContentTypeJSON, reply.ContentType)

		var envelope chart.ErrorReply
		require.NoError(t, json.Unmarshal(reply.Body, &envelope))
		assert.Equal(t, "invalid", envelope.Code)
		assert.NotEmpty(t, envelope.Error)
	case <-time.After(5 * time.Second):
		t.Fatal("no reply from worker")
	}

	assert.Eventually(t, func() bool {
		broker.mu.Lock()
		defer broker.mu.Unlock()
		return broker.acks == 1
	}, time.Second, 10*time.Millisecond)
}

func TestRequestFromJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    entity.ChartType
		wantErr error
	}{
		{
			name: "category defaults to pie",
			body: `{"method":"category_chart","params":{"values":[1,2],"labels":["a","b"]}}`,
			want: entity.ChartPie,
		},
		{
			name: "period is always a barplot",
			body: `{"method":"period_chart","params":{"values":[1,2],"labels":["1","2"],"chart_type":"pie"}}`,
			want: entity.ChartBarplot,
		},
		{
			name:    "unknown chart type",
			body:    `{"method":"category_chart","params":{"values":[1],"labels":["a"],"chart_type":"donut"}}`,
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name:    "empty series",
			body:    `{"method":"category_chart","params":{"values":[],"labels":[]}}`,
			wantErr: errs.ErrEmptyChart,
		},
		{
			name:    "malformed",
			body:    `{`,
			wantErr: errs.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := chart.RequestFromJSON([]byte(tt.body))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.ChartType)
		})
	}
}

func TestRenderer(t *testing.T) {
	renderer := chart.NewRenderer(0, 0)

	t.Run("negative values", func(t *testing.T) {
		_, err := renderer.Render(context.Background(), entity.ChartRequest{
			Method: entity.ChartMethodCategory,
			Values: []int64{-1},
			Labels: []string{"a"},
		})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("single bar", func(t *testing.T) {
		png, err := renderer.Render(context.Background(), entity.ChartRequest{
			Method:    entity.ChartMethodCategory,
			Values:    []int64{42},
			Labels:    []string{"Food"},
			ChartType: entity.ChartBarplot,
		})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(png, pngMagic))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := renderer.Render(context.Background(), entity.ChartRequest{Method: entity.ChartMethodCategory})
		assert.ErrorIs(t, err, errs.ErrEmptyChart)
	})
}
