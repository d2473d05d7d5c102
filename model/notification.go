package model

import "time"

type Notification struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// NotificationMessage is the queued envelope; ID doubles as the cancellation handle.
type NotificationMessage struct {
	ID           string       `json:"id"`
	UserID       uint64       `json:"user_id"`
	Notification Notification `json:"notification"`
	DeliverAt    time.Time    `json:"deliver_at"`
}
