package notifier

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MikeRez0/techxchange/internal/adapter/config"
	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/MikeRez0/techxchange/internal/core/port/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recorder struct {
	mu      sync.Mutex
	results []string
}

func (r *recorder) NotificationResult(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
}

func (r *recorder) get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.results...)
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	store := mock.NewMockNotificationStore(mockCtrl)
	obs := &recorder{}

	d, err := NewDispatcher(&config.Notify{Workers: 1, QueueSize: 1}, store, obs, zap.NewNop())
	require.NoError(t, err)

	d.Notify(context.Background(), &domain.Notification{UserID: "u-1"})
	d.Notify(context.Background(), &domain.Notification{UserID: "u-2"})

	assert.Equal(t, []string{ResultDropped}, obs.get())
	assert.Len(t, d.queue, 1)
}

func TestDispatcher_DeliversAndRetries(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	store := mock.NewMockNotificationStore(mockCtrl)
	obs := &recorder{}

	first := &domain.Notification{UserID: "u-1", Type: domain.NotificationOrderCreated}
	second := &domain.Notification{UserID: "u-2", Type: domain.NotificationOrderShipped}

	gomock.InOrder(
		store.EXPECT().InsertNotification(gomock.Any(), first).Return(errors.New("mongo down")),
		store.EXPECT().InsertNotification(gomock.Any(), first).Return(nil),
	)
	store.EXPECT().InsertNotification(gomock.Any(), second).Return(nil)

	d, err := NewDispatcher(&config.Notify{Workers: 1, QueueSize: 4}, store, obs, zap.NewNop())
	require.NoError(t, err)
	d.retryDelay = 0

	d.Notify(context.Background(), first)
	d.Notify(context.Background(), second)
	assert.False(t, first.CreatedAt.IsZero())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	cancel()
	d.Wait()

	assert.Equal(t, []string{ResultDelivered, ResultDelivered}, obs.get())
}

func TestDispatcher_GivesUp(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	store := mock.NewMockNotificationStore(mockCtrl)
	obs := &recorder{}

	store.EXPECT().InsertNotification(gomock.Any(), gomock.Any()).
		Return(errors.New("mongo down")).Times(maxAttempts)

	d, err := NewDispatcher(&config.Notify{}, store, obs, zap.NewNop())
	require.NoError(t, err)
	d.retryDelay = 0
	assert.Equal(t, defaultWorkers, d.workers)

	d.deliver(&domain.Notification{UserID: "u-1"})
	assert.Equal(t, []string{ResultFailed}, obs.get())
}
