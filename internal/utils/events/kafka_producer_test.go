package events

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func TestKafkaPublisher_FlushesOnClose(t *testing.T) {
	w := &recordingWriter{}
	p := NewKafkaPublisherWithWriter(w, 8)
	p.Start(context.Background())

	require.NoError(t, p.Publish(context.Background(), EventFoodRequestCompleted, "foodrequest:7", FoodRequestCompletedPayload{FoodRequestID: 7}))
	require.NoError(t, p.Publish(context.Background(), EventFoodRequestDonated, "foodrequest:7", DonationPayload{FoodRequestID: 7, RestaurantID: 2}))
	p.Close()
	p.WaitClosed()

	w.mu.Lock()
	defer w.mu.Unlock()
	require.Len(t, w.msgs, 2)
	assert.True(t, w.closed)
	assert.Equal(t, "foodrequest:7", string(w.msgs[0].Key))

	var env Envelope
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &env))
	assert.Equal(t, EventFoodRequestCompleted, env.EventType)
	assert.NotEmpty(t, env.EventID)

	payload, err := UnwrapPayload[FoodRequestCompletedPayload](env.Payload)
	require.NoError(t, err)
	assert.Equal(t, uint(7), payload.FoodRequestID)
}

func TestKafkaPublisher_FlushesOnCancel(t *testing.T) {
	w := &recordingWriter{}
	p := NewKafkaPublisherWithWriter(w, 8)

	require.NoError(t, p.Publish(context.Background(), EventPaymentPaid, "order-1", PaymentPayload{OrderID: "order-1"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.Start(ctx)
	p.WaitClosed()

	w.mu.Lock()
	defer w.mu.Unlock()
	assert.Len(t, w.msgs, 1)
	assert.True(t, w.closed)
}

func TestKafkaPublisher_FullBuffer(t *testing.T) {
	p := NewKafkaPublisherWithWriter(&recordingWriter{}, 1)

	require.NoError(t, p.Publish(context.Background(), EventPaymentPaid, "a", nil))
	assert.ErrorIs(t, p.Publish(context.Background(), EventPaymentPaid, "b", nil), ErrPublisherFull)
}
