package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vetportal/pkg/models"
)

// PostgresLocalizationStore is the PostgreSQL implementation of LocalizationStore.
type PostgresLocalizationStore struct {
	db *pgxpool.Pool
}

// NewPostgresLocalizationStore creates a new PostgresLocalizationStore.
func NewPostgresLocalizationStore(db *pgxpool.Pool) *PostgresLocalizationStore {
	return &PostgresLocalizationStore{db: db}
}

// SystemSettings returns all settings as a key → localized value map.
func (s *PostgresLocalizationStore) SystemSettings(ctx context.Context, lang string) (map[string]string, error) {
	query := fmt.Sprintf(`SELECT key, %s FROM system_settings`, langColumn("value", lang))

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch system settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		settings[key] = value
	}
	return settings, rows.Err()
}

// LocalizedAnimalTypes returns the animal-type catalog localized to lang.
func (s *PostgresLocalizationStore) LocalizedAnimalTypes(ctx context.Context, lang string) ([]*models.AnimalType, error) {
	query := fmt.Sprintf(`
		SELECT id, %s, icon
		FROM animal_types
		ORDER BY name_en`,
		langColumn("name", lang),
	)

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch animal types: %w", err)
	}
	defer rows.Close()

	var types []*models.AnimalType
	for rows.Next() {
		var at models.AnimalType
		if err := rows.Scan(&at.ID, &at.Name, &at.Icon); err != nil {
			return nil, err
		}
		types = append(types, &at)
	}
	return types, rows.Err()
}

// UserLanguage returns a user's language preference, defaulting to English
// for unknown users.
func (s *PostgresLocalizationStore) UserLanguage(ctx context.Context, userID string) (string, error) {
	var lang string
	err := s.db.QueryRow(ctx,
		`SELECT language_preference FROM users WHERE id = $1`, userID,
	).Scan(&lang)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.LangEnglish, nil
	}
	if err != nil {
		return "", fmt.Errorf("fetch user language: %w", err)
	}
	if lang == "" {
		return models.LangEnglish, nil
	}
	return lang, nil
}

// UpdateUserLanguage stores a user's language preference.
func (s *PostgresLocalizationStore) UpdateUserLanguage(ctx context.Context, userID, lang string) (string, error) {
	var stored string
	err := s.db.QueryRow(ctx, `
		UPDATE users
		SET language_preference = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING language_preference`,
		lang, userID,
	).Scan(&stored)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("update user language: %w", err)
	}
	return stored, nil
}
