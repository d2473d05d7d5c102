package context

import (
	"context"

	"github.com/muhammadheryan/snackstore/constant"
)

// WithUserID stores the authenticated merchant id.
func WithUserID(ctx context.Context, userID uint64) context.Context {
	return context.WithValue(ctx, constant.UserIDKey, userID)
}

// GetUserID returns the merchant id set by the auth middleware.
func GetUserID(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(constant.UserIDKey).(uint64)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constant.RequestIDKey, requestID)
}

// GetRequestID returns "" outside an HTTP request.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(constant.RequestIDKey).(string)
	return id
}
