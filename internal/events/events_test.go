package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewEvent(t *testing.T) {
	event := NewEvent(PaymentCompleted, PaymentCompletedData{PaymentID: 1})

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, PaymentCompleted, event.Type)
	assert.Equal(t, EventSource, event.Source)
	assert.Equal(t, EventVersion, event.Version)
	assert.False(t, event.Timestamp.IsZero())
}

func TestWatermillPublisher_InProcess(t *testing.T) {
	publisher, pubSub := NewInProcessEventPublisher("cms", discardLogger())
	defer publisher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := pubSub.Subscribe(ctx, "cms.certificate.issued")
	require.NoError(t, err)

	event := NewEvent(CertificateIssued, CertificateIssuedData{CertificateID: 7, UserID: 1, CourseID: 2})
	require.NoError(t, publisher.Publish(ctx, event))

	select {
	case msg := <-messages:
		msg.Ack()
		assert.Equal(t, event.ID, msg.UUID)
		assert.Equal(t, string(CertificateIssued), msg.Metadata.Get("event_type"))

		var decoded struct {
			ID   string                `json:"id"`
			Data CertificateIssuedData `json:"data"`
		}
		require.NoError(t, json.Unmarshal(msg.Payload, &decoded))
		assert.Equal(t, uint(7), decoded.Data.CertificateID)
	case <-ctx.Done():
		t.Fatal("event was not delivered")
	}
}

func TestWatermillPublisher_Topic(t *testing.T) {
	p := NewWatermillPublisher(nil, "", discardLogger())
	assert.Equal(t, "user.registered", p.Topic(UserRegistered))

	p = NewWatermillPublisher(nil, "cms", discardLogger())
	assert.Equal(t, "cms.user.registered", p.Topic(UserRegistered))
}

func TestMockEventPublisher(t *testing.T) {
	mock := NewMockEventPublisher(discardLogger())
	ctx := context.Background()

	require.NoError(t, mock.Publish(ctx, NewEvent(UserRegistered, nil)))
	require.NoError(t, mock.Publish(ctx, NewEvent(PaymentCompleted, nil)))
	assert.Len(t, mock.GetPublishedEvents(), 2)
	assert.Len(t, mock.EventsOfType(UserRegistered), 1)

	mock.ClearEvents()
	assert.Empty(t, mock.GetPublishedEvents())

	mock.FailWith(errors.New("broker down"))
	assert.Error(t, mock.Publish(ctx, NewEvent(UserRegistered, nil)))
	assert.Empty(t, mock.GetPublishedEvents())
}

func TestConsume(t *testing.T) {
	publisher, pubSub := NewInProcessEventPublisher("cms", discardLogger())
	defer publisher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	received := make(chan *Event, 2)
	err := Consume(ctx, pubSub, publisher.Topics(AllEventTypes...), discardLogger(), func(_ context.Context, e *Event) error {
		received <- e
		return nil
	})
	require.NoError(t, err)

	sent := NewEvent(PaymentCompleted, PaymentCompletedData{PaymentID: 3, Currency: "USD"})
	require.NoError(t, publisher.Publish(ctx, sent))

	select {
	case got := <-received:
		assert.Equal(t, sent.ID, got.ID)
		assert.Equal(t, PaymentCompleted, got.Type)
		data, ok := got.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "USD", data["currency"])
	case <-ctx.Done():
		t.Fatal("event was not consumed")
	}
}

func TestAuditLog(t *testing.T) {
	assert.NoError(t, AuditLog(discardLogger())(context.Background(), NewEvent(UserRegistered, nil)))
}
