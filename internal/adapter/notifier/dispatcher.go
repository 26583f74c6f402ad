package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/MikeRez0/techxchange/internal/adapter/config"
	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/MikeRez0/techxchange/internal/core/port"
	"go.uber.org/zap"
)

const (
	ResultDelivered = "delivered"
	ResultDropped   = "dropped"
	ResultFailed    = "failed"
)

const (
	defaultWorkers   = 2
	defaultQueueSize = 256
	maxAttempts      = 3
	insertTimeout    = 5 * time.Second
)

// Observer is told the outcome of every notification handed to the dispatcher.
type Observer interface {
	NotificationResult(result string)
}

// Dispatcher delivers notifications to the store from a bounded queue so that
// order operations never wait on, or fail because of, the notification store.
type Dispatcher struct {
	logger     *zap.Logger
	store      port.NotificationStore
	observer   Observer
	queue      chan *domain.Notification
	retryDelay time.Duration
	workers    int
	wg         sync.WaitGroup
}

func NewDispatcher(cfg *config.Notify, store port.NotificationStore, observer Observer,
	log *zap.Logger) (*Dispatcher, error) {
	workers := cfg.Workers
	if workers < 1 {
		workers = defaultWorkers
	}
	size := cfg.QueueSize
	if size < 1 {
		size = defaultQueueSize
	}
	return &Dispatcher{
		logger:     log,
		store:      store,
		observer:   observer,
		queue:      make(chan *domain.Notification, size),
		retryDelay: 500 * time.Millisecond,
		workers:    workers,
	}, nil
}

// Notify enqueues n without blocking. A full queue drops the notification.
func (d *Dispatcher) Notify(_ context.Context, n *domain.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	n.Fit()
	select {
	case d.queue <- n:
		d.logger.Debug("Notification queued",
			zap.String("user", n.UserID), zap.String("type", string(n.Type)))
	default:
		d.logger.Warn("Notification queue is full, dropping",
			zap.String("user", n.UserID), zap.String("type", string(n.Type)),
			zap.String("related", n.RelatedID))
		d.report(ResultDropped)
	}
}

// Start runs the workers until ctx is done. Queued notifications are flushed before they exit.
func (d *Dispatcher) Start(ctx context.Context) {
	for range d.workers {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			for {
				select {
				case n := <-d.queue:
					d.deliver(n)
				case <-ctx.Done():
					d.drain()
					d.logger.Debug("Finished notification worker")
					return
				}
			}
		}()
	}
}

// Wait blocks until every worker started by Start has exited.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) drain() {
	for {
		select {
		case n := <-d.queue:
			d.deliver(n)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(n *domain.Notification) {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), insertTimeout)
		err = d.store.InsertNotification(ctx, n)
		cancel()
		if err == nil {
			d.report(ResultDelivered)
			return
		}

		d.logger.Debug("Notification insert failed",
			zap.String("user", n.UserID), zap.Int("attempt", attempt), zap.Error(err))
		if attempt < maxAttempts {
			time.Sleep(d.retryDelay * time.Duration(attempt))
		}
	}

	d.logger.Error("Notification lost",
		zap.String("user", n.UserID), zap.String("type", string(n.Type)), zap.Error(err))
	d.report(ResultFailed)
}

func (d *Dispatcher) report(result string) {
	if d.observer != nil {
		d.observer.NotificationResult(result)
	}
}
