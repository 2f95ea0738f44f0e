package services

import "context"

// NotificationInput describes one outbound notification. Either Phone or
// UserID identifies the target; Phone is resolved to a user at dispatch time.
type NotificationInput struct {
	Type        string
	Title       string
	Message     string
	Phone       string
	UserID      string
	ReferenceID string
}

// Notifier is the dispatch surface the domain services depend on. Dispatch
// never fails the caller: delivery problems are logged and swallowed so the
// triggering write always succeeds.
type Notifier interface {
	Dispatch(ctx context.Context, n NotificationInput)
}
