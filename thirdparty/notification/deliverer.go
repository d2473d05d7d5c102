package notification

import (
	"context"
	"errors"

	"github.com/muhammadheryan/snackstore/cmd/config"
	"github.com/muhammadheryan/snackstore/model"
	redisrepo "github.com/muhammadheryan/snackstore/repository/redis"
	userrepo "github.com/muhammadheryan/snackstore/repository/user"
	"github.com/muhammadheryan/snackstore/thirdparty/firebase"
	"github.com/muhammadheryan/snackstore/utils/logger"
	"go.uber.org/zap"
)

// Deliverer performs the final hop of a due notification.
type Deliverer interface {
	Deliver(ctx context.Context, msg model.NotificationMessage) error
}

type deliverer struct {
	redisRepo redisrepo.Repository
	userRepo  userrepo.UserRepository
	pusher    firebase.Pusher
	storage   config.StorageConfig
}

// NewDeliverer pushes through FCM when pusher is set and the user has a device
// token. Everything else is written to the log.
func NewDeliverer(redisRepo redisrepo.Repository, userRepo userrepo.UserRepository, pusher firebase.Pusher, storage config.StorageConfig) Deliverer {
	return &deliverer{
		redisRepo: redisRepo,
		userRepo:  userRepo,
		pusher:    pusher,
		storage:   storage,
	}
}

func (d *deliverer) Deliver(ctx context.Context, msg model.NotificationMessage) error {
	cancelled, err := d.redisRepo.Exists(ctx, cancelMarkerKey(d.storage, msg.ID))
	if err != nil {
		logger.Error("[Deliver] err redisRepo.Exists", zap.String("error", err.Error()))
		return err
	}
	if cancelled {
		logger.Info("[Deliver] notification cancelled", zap.String("notification_id", msg.ID))
		return nil
	}

	token := ""
	if d.pusher != nil && msg.UserID != 0 {
		user, err := d.userRepo.Get(ctx, &model.UserFilter{ID: msg.UserID})
		if err != nil {
			logger.Error("[Deliver] err userRepo.Get", zap.String("error", err.Error()))
			return err
		}
		if user != nil && user.DeviceToken != nil {
			token = *user.DeviceToken
		}
	}

	if token == "" {
		logger.Info("[Deliver] notification",
			zap.String("notification_id", msg.ID),
			zap.Uint64("user_id", msg.UserID),
			zap.String("title", msg.Notification.Title),
			zap.String("body", msg.Notification.Body))
		return nil
	}

	if err := d.pusher.Push(ctx, token, msg.Notification); err != nil {
		if errors.Is(err, firebase.ErrInvalidToken) {
			// retrying will not help
			logger.Warn("[Deliver] device token rejected", zap.Uint64("user_id", msg.UserID), zap.String("error", err.Error()))
			return nil
		}
		return err
	}
	return nil
}
