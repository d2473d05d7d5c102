package notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/snackstore/cmd/config"
	"github.com/muhammadheryan/snackstore/constant"
	"github.com/muhammadheryan/snackstore/model"
	redisrepo "github.com/muhammadheryan/snackstore/repository/redis"
	"github.com/muhammadheryan/snackstore/utils/logger"
	"go.uber.org/zap"
)

// cancelMarkerTTL bounds how long a cancellation is remembered.
const cancelMarkerTTL = 7 * 24 * time.Hour

// Dispatcher sends notifications to a merchant now or after a delay.
// Schedule returns a handle accepted by Cancel.
type Dispatcher interface {
	Show(ctx context.Context, userID uint64, n model.Notification) error
	Schedule(ctx context.Context, userID uint64, n model.Notification, delay time.Duration) (string, error)
	Cancel(ctx context.Context, handle string) error
}

type Publisher interface {
	PublishNotification(msg model.NotificationMessage) error
}

type dispatcher struct {
	publisher Publisher
	deliverer Deliverer
	redisRepo redisrepo.Repository
	storage   config.StorageConfig
	now       func() time.Time

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewDispatcher queues through publisher when it is non-nil. Otherwise delivery
// happens in-process and scheduled notifications live on local timers.
func NewDispatcher(publisher Publisher, deliverer Deliverer, redisRepo redisrepo.Repository, storage config.StorageConfig) Dispatcher {
	return &dispatcher{
		publisher: publisher,
		deliverer: deliverer,
		redisRepo: redisRepo,
		storage:   storage,
		now:       time.Now,
		timers:    make(map[string]*time.Timer),
	}
}

func (d *dispatcher) Show(ctx context.Context, userID uint64, n model.Notification) error {
	msg := model.NotificationMessage{
		ID:           uuid.NewString(),
		UserID:       userID,
		Notification: n,
		DeliverAt:    d.now(),
	}
	if d.publisher != nil {
		return d.publisher.PublishNotification(msg)
	}
	return d.deliverer.Deliver(ctx, msg)
}

func (d *dispatcher) Schedule(ctx context.Context, userID uint64, n model.Notification, delay time.Duration) (string, error) {
	msg := model.NotificationMessage{
		ID:           uuid.NewString(),
		UserID:       userID,
		Notification: n,
		DeliverAt:    d.now().Add(delay),
	}

	if d.publisher != nil {
		if err := d.publisher.PublishNotification(msg); err != nil {
			return "", err
		}
		return msg.ID, nil
	}

	d.mu.Lock()
	d.timers[msg.ID] = time.AfterFunc(delay, func() {
		d.mu.Lock()
		delete(d.timers, msg.ID)
		d.mu.Unlock()
		if err := d.deliverer.Deliver(context.Background(), msg); err != nil {
			logger.Error("[NotificationSchedule] err deliverer.Deliver",
				zap.String("notification_id", msg.ID),
				zap.String("error", err.Error()))
		}
	})
	d.mu.Unlock()
	return msg.ID, nil
}

// Cancel stops a local timer if one is pending and records a marker the
// deliverer checks, which covers messages already sitting in the queue.
func (d *dispatcher) Cancel(ctx context.Context, handle string) error {
	d.mu.Lock()
	if t, ok := d.timers[handle]; ok {
		t.Stop()
		delete(d.timers, handle)
	}
	d.mu.Unlock()

	return d.redisRepo.SetWithTTL(ctx, cancelMarkerKey(d.storage, handle), "1", cancelMarkerTTL)
}

func cancelMarkerKey(storage config.StorageConfig, handle string) string {
	return storage.Key(constant.StorageKeyCancelledNotif + ":" + handle)
}
