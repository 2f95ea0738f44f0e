package services

import (
	"context"
	"errors"

	"vetportal/internal/logging"
	"vetportal/internal/observability"
	"vetportal/internal/repository"
	"vetportal/pkg/models"
)

// NotificationService persists in-app notifications and stubs out delivery.
// Production delivery (SMS gateway, push) would hang off Dispatch; today the
// delivery channel is a log line.
type NotificationService struct {
	store   repository.NotificationStore
	logger  *logging.Logger
	metrics *observability.Metrics
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(store repository.NotificationStore, logger *logging.Logger, metrics *observability.Metrics) *NotificationService {
	return &NotificationService{store: store, logger: logger, metrics: metrics}
}

// Dispatch resolves the target user, persists a notification row if one is
// found, and logs the delivery. An unresolvable phone number is not an
// error: no row is stored and the dispatch still counts as sent.
func (s *NotificationService) Dispatch(ctx context.Context, n NotificationInput) {
	userID := n.UserID
	if userID == "" && n.Phone != "" {
		id, err := s.store.FindUserIDByPhone(ctx, n.Phone)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			s.logger.Debug("notification target has no portal account", "phone", n.Phone, "type", n.Type)
		case err != nil:
			s.logger.Error("failed to resolve notification target", "phone", n.Phone, "error", err)
		default:
			userID = id
		}
	}

	if userID != "" {
		notification := &models.Notification{
			UserID:  userID,
			Title:   n.Title,
			Message: n.Message,
			Type:    n.Type,
		}
		if n.ReferenceID != "" {
			notification.ReferenceID = &n.ReferenceID
		}
		if err := s.store.Save(ctx, notification); err != nil {
			s.logger.Error("failed to persist notification", "type", n.Type, "user_id", userID, "error", err)
		}
	}

	s.metrics.NotificationsDispatched.Add(ctx, 1)
	s.logger.Info("notification dispatched",
		"type", n.Type, "title", n.Title, "phone", n.Phone, "user_id", userID)
}

// List returns a user's notifications localized to lang.
func (s *NotificationService) List(ctx context.Context, userID, lang string, limit int) ([]*models.Notification, error) {
	return s.store.ListForUser(ctx, userID, lang, limit)
}

// MarkRead flips the read flag on one of the user's notifications.
func (s *NotificationService) MarkRead(ctx context.Context, id, userID string) error {
	return s.store.MarkRead(ctx, id, userID)
}

// UnreadCount returns the user's unread notification count.
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.store.UnreadCount(ctx, userID)
}
