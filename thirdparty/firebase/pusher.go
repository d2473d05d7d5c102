package firebase

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/muhammadheryan/snackstore/model"
	"google.golang.org/api/option"
)

// ErrInvalidToken is returned when FCM rejects the device token as unknown or malformed.
var ErrInvalidToken = errors.New("firebase: invalid or unregistered device token")

type Pusher interface {
	Push(ctx context.Context, token string, n model.Notification) error
}

type pusher struct {
	client *messaging.Client
}

// NewPusher initializes a messaging client from a service account file.
func NewPusher(ctx context.Context, credentialsPath string) (Pusher, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &pusher{client: client}, nil
}

func (p *pusher) Push(ctx context.Context, token string, n model.Notification) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: n.Data,
	}

	if _, err := p.client.Send(ctx, message); err != nil {
		if messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err) {
			return fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}
