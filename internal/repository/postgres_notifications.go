package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vetportal/pkg/models"
)

// PostgresNotificationStore is the PostgreSQL implementation of NotificationStore.
type PostgresNotificationStore struct {
	db *pgxpool.Pool
}

// NewPostgresNotificationStore creates a new PostgresNotificationStore.
func NewPostgresNotificationStore(db *pgxpool.Pool) *PostgresNotificationStore {
	return &PostgresNotificationStore{db: db}
}

// FindUserIDByPhone resolves a phone number to the first matching user.
func (s *PostgresNotificationStore) FindUserIDByPhone(ctx context.Context, phone string) (string, error) {
	var id string
	err := s.db.QueryRow(ctx,
		`SELECT id FROM users WHERE phone = $1 LIMIT 1`, phone,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("resolve user by phone: %w", err)
	}
	return id, nil
}

// Save persists one notification row. Titles and messages are stored in the
// English columns; translated copies are optional.
func (s *PostgresNotificationStore) Save(ctx context.Context, n *models.Notification) error {
	err := s.db.QueryRow(ctx, `
		INSERT INTO notifications (user_id, title_en, message_en, type, reference_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_read, created_at`,
		n.UserID, n.Title, n.Message, n.Type, n.ReferenceID,
	).Scan(&n.ID, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListForUser returns a user's notifications localized to lang, newest first.
func (s *PostgresNotificationStore) ListForUser(ctx context.Context, userID, lang string, limit int) ([]*models.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(`
		SELECT id, user_id, %s, %s, type, reference_id, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		langColumn("title", lang),
		langColumn("message", lang),
	)

	rows, err := s.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type,
			&n.ReferenceID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, &n)
	}
	return notifications, rows.Err()
}

// MarkRead flips the read flag; the row must belong to the user.
func (s *PostgresNotificationStore) MarkRead(ctx context.Context, id, userID string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UnreadCount returns the number of unread notifications for a user.
func (s *PostgresNotificationStore) UnreadCount(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT is_read`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}
