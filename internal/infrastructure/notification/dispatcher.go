package notification

import (
	"context"
	"errors"
	"sync"
	"time"

	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const sendTimeout = 10 * time.Second

var (
	ErrQueueFull        = errors.New("notification queue is full")
	ErrDispatcherClosed = errors.New("notification dispatcher is closed")
)

type job struct {
	ctx context.Context
	msg entities.Notification
}

// Dispatcher hands notifications to a background worker so request handling never
// waits on the notification transport. Notifications are dropped when the buffer is
// full or the dispatcher is closed.
type Dispatcher struct {
	next interfaces.INotifier
	log  *zap.Logger
	jobs chan job
	wg   sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

var _ interfaces.INotifier = (*Dispatcher)(nil)

func NewDispatcher(next interfaces.INotifier, buffer int, log *zap.Logger) *Dispatcher {
	if buffer <= 0 {
		buffer = 1
	}
	d := &Dispatcher{next: next, log: log, jobs: make(chan job, buffer)}
	d.wg.Add(1)
	go d.run()
	return d
}

// Send enqueues the notification. It only fails when the buffer is full or the
// dispatcher has been closed.
func (d *Dispatcher) Send(ctx context.Context, msg entities.Notification) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrDispatcherClosed
	}

	// The request context ends with the response; the send must outlive it.
	select {
	case d.jobs <- job{ctx: context.WithoutCancel(ctx), msg: msg}:
		return nil
	default:
		return ErrQueueFull
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for j := range d.jobs {
		ctx, cancel := context.WithTimeout(j.ctx, sendTimeout)
		if err := d.next.Send(ctx, j.msg); err != nil {
			d.log.Warn("[notification][dispatcher] send failed",
				zap.String("notification_type", string(j.msg.Type)),
				zap.String("recipient_id", j.msg.RecipientID),
				zap.Error(err),
			)
		}
		cancel()
	}
}

// Close stops accepting notifications and waits for the queued ones to be sent.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.jobs)
	d.mu.Unlock()
	d.wg.Wait()
}
