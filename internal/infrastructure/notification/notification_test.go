package notification

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"billing_insurance/internal/domain/entities"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

func sampleNotification() entities.Notification {
	return entities.Notification{
		Type:        entities.NotificationPaymentSuccessful,
		RecipientID: "42",
		Data:        map[string]string{"invoice_number": "INV-20240315-0001", "amount_paid": "40.00"},
		AuthToken:   "tok",
	}
}

func TestHTTPNotifier_Send(t *testing.T) {
	t.Run("posts the payload with the caller token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/notifications/send/" {
				t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			if r.Header.Get("Authorization") != "Bearer tok" {
				t.Fatalf("unexpected authorization %q", r.Header.Get("Authorization"))
			}
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["notification_type"] != "PAYMENT_SUCCESSFUL" || body["recipient_id"] != "42" {
				t.Fatalf("unexpected body %+v", body)
			}
			if _, leaked := body["AuthToken"]; leaked {
				t.Fatalf("token must not be serialized")
			}
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		if err := NewHTTPNotifier(srv.URL, srv.Client()).Send(context.Background(), sampleNotification()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		if err := NewHTTPNotifier(srv.URL, srv.Client()).Send(context.Background(), sampleNotification()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

type fakeChannel struct {
	published []amqp.Publishing
	confirms  chan amqp.Confirmation
	ack       bool
	err       error
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, _ string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	f.confirms <- amqp.Confirmation{DeliveryTag: uint64(len(f.published)), Ack: f.ack}
	return nil
}

func (f *fakeChannel) Close() error { return nil }

func TestAMQPNotifier_Send(t *testing.T) {
	t.Run("acked publish", func(t *testing.T) {
		ch := &fakeChannel{confirms: make(chan amqp.Confirmation, 1), ack: true}
		n := newAMQPNotifier(ch, ch.confirms, "notifications", zap.NewNop())

		if err := n.Send(context.Background(), sampleNotification()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		msg := ch.published[0]
		if msg.DeliveryMode != amqp.Persistent || msg.Type != "PAYMENT_SUCCESSFUL" || msg.ContentType != "application/json" {
			t.Fatalf("unexpected publishing %+v", msg)
		}
	})

	t.Run("nacked publish", func(t *testing.T) {
		ch := &fakeChannel{confirms: make(chan amqp.Confirmation, 1)}
		n := newAMQPNotifier(ch, ch.confirms, "notifications", zap.NewNop())

		if err := n.Send(context.Background(), sampleNotification()); !errors.Is(err, ErrPublishNacked) {
			t.Fatalf("expected ErrPublishNacked, got %v", err)
		}
	})

	t.Run("publish failure", func(t *testing.T) {
		ch := &fakeChannel{confirms: make(chan amqp.Confirmation, 1), err: amqp.ErrClosed}
		n := newAMQPNotifier(ch, ch.confirms, "notifications", zap.NewNop())

		if err := n.Send(context.Background(), sampleNotification()); !errors.Is(err, amqp.ErrClosed) {
			t.Fatalf("expected ErrClosed, got %v", err)
		}
	})
}

type recordingNotifier struct {
	mu      sync.Mutex
	sent    []entities.Notification
	release chan struct{}
	ctxErr  error
}

func (r *recordingNotifier) Send(ctx context.Context, n entities.Notification) error {
	if r.release != nil {
		<-r.release
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	r.ctxErr = ctx.Err()
	return nil
}

func TestDispatcher(t *testing.T) {
	t.Run("delivers after the request context ends", func(t *testing.T) {
		next := &recordingNotifier{}
		d := NewDispatcher(next, 4, zap.NewNop())

		ctx, cancel := context.WithCancel(context.Background())
		if err := d.Send(ctx, sampleNotification()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cancel()
		d.Close()

		if len(next.sent) != 1 {
			t.Fatalf("expected 1 delivery, got %d", len(next.sent))
		}
		if next.ctxErr != nil {
			t.Fatalf("send context must survive request cancellation, got %v", next.ctxErr)
		}
	})

	t.Run("drops when the buffer is full", func(t *testing.T) {
		next := &recordingNotifier{release: make(chan struct{})}
		d := NewDispatcher(next, 1, zap.NewNop())

		// The worker blocks on the first notification, the second fills the buffer.
		_ = d.Send(context.Background(), sampleNotification())
		deadline := time.Now().Add(time.Second)
		var err error
		for time.Now().Before(deadline) {
			err = d.Send(context.Background(), sampleNotification())
			if errors.Is(err, ErrQueueFull) {
				break
			}
			time.Sleep(time.Millisecond)
		}
		if !errors.Is(err, ErrQueueFull) {
			t.Fatalf("expected ErrQueueFull, got %v", err)
		}
		close(next.release)
		d.Close()
	})

	t.Run("closed dispatcher rejects sends", func(t *testing.T) {
		d := NewDispatcher(&recordingNotifier{}, 1, zap.NewNop())
		d.Close()
		if err := d.Send(context.Background(), sampleNotification()); !errors.Is(err, ErrDispatcherClosed) {
			t.Fatalf("expected ErrDispatcherClosed, got %v", err)
		}
	})
}
