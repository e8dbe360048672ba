package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	"github.com/clinicwave/usermgmt/pkg/slogx"
)

// AsyncDispatcher hands notifications to a Sender from a background worker
// so callers never wait on delivery. Delivery is best effort: requests are
// dropped with a warning when the queue is full or the dispatcher stopped.
type AsyncDispatcher struct {
	Sender  Sender
	Logger  *slog.Logger
	Timeout time.Duration // per delivery

	mu      sync.RWMutex
	queue   chan domain.NotificationRequest
	started bool
	stopped bool
	doneCh  chan struct{}
}

// NewAsyncDispatcher creates a dispatcher with a queue of size entries.
// Size defaults to 100 and timeout to 10 seconds.
func NewAsyncDispatcher(sender Sender, logger *slog.Logger, size int, timeout time.Duration) *AsyncDispatcher {
	if size <= 0 {
		size = 100
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &AsyncDispatcher{
		Sender:  sender,
		Logger:  logger,
		Timeout: timeout,
		queue:   make(chan domain.NotificationRequest, size),
		doneCh:  make(chan struct{}),
	}
}

// Start launches the worker. It is non-blocking.
func (d *AsyncDispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started || d.stopped {
		return
	}
	d.started = true

	go d.run()
	d.Logger.Info("notification dispatcher started", "queue_size", cap(d.queue))
}

// Stop refuses new requests and blocks until queued ones are delivered.
func (d *AsyncDispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.queue)
	started := d.started
	d.mu.Unlock()

	if started {
		<-d.doneCh
	}
	d.Logger.Info("notification dispatcher stopped")
}

// Dispatch queues req for delivery and returns immediately.
func (d *AsyncDispatcher) Dispatch(ctx context.Context, req domain.NotificationRequest) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		slogx.FromContext(ctx).Warn("notification dropped, dispatcher stopped",
			slog.String("notification_id", req.ID),
		)
		return
	}

	select {
	case d.queue <- req:
	default:
		slogx.FromContext(ctx).Warn("notification dropped, queue full",
			slog.String("notification_id", req.ID),
			slog.Int("queue_size", cap(d.queue)),
		)
	}
}

func (d *AsyncDispatcher) run() {
	defer close(d.doneCh)

	for req := range d.queue {
		d.deliver(req)
	}
}

func (d *AsyncDispatcher) deliver(req domain.NotificationRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), d.Timeout)
	defer cancel()

	if err := d.Sender.Send(ctx, req); err != nil {
		d.Logger.Error("failed to send notification",
			"notification_id", req.ID,
			"channel", string(req.Channel),
			"error", err,
		)
		return
	}

	d.Logger.Debug("notification sent",
		"notification_id", req.ID,
		"channel", string(req.Channel),
	)
}
