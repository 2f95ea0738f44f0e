package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vetportal/internal/database"
	"vetportal/pkg/models"
)

// PostgresWildlifeStore is the PostgreSQL implementation of WildlifeStore.
type PostgresWildlifeStore struct {
	db *pgxpool.Pool
}

// NewPostgresWildlifeStore creates a new PostgresWildlifeStore.
func NewPostgresWildlifeStore(db *pgxpool.Pool) *PostgresWildlifeStore {
	return &PostgresWildlifeStore{db: db}
}

// CreateSighting inserts the sighting and its photos in one transaction.
func (s *PostgresWildlifeStore) CreateSighting(ctx context.Context, sighting *models.WildlifeSighting, photos []models.WildlifePhoto) error {
	return database.WithTx(ctx, s.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO wildlife_sightings (
				report_id, reporter_name, phone, village, animal_type, number_of_animals,
				behavior_description, threat_level, exact_location, gps_coordinates,
				sighting_date, sighting_time, witness_count, previous_sightings,
				damage_reported, damage_description, people_at_risk, evacuation_needed,
				immediate_help
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			          $11::date, $12::time, $13, $14, $15, $16, $17, $18, $19)
			RETURNING id, status, created_at, updated_at`,
			sighting.ReportID, sighting.ReporterName, sighting.Phone, sighting.Village,
			sighting.AnimalType, sighting.NumberOfAnimals, sighting.BehaviorDescription,
			sighting.ThreatLevel, sighting.ExactLocation, sighting.GPSCoordinates,
			sighting.SightingDate, sighting.SightingTime, sighting.WitnessCount,
			sighting.PreviousSightings, sighting.DamageReported, sighting.DamageDescription,
			sighting.PeopleAtRisk, sighting.EvacuationNeeded, sighting.ImmediateHelp,
		).Scan(&sighting.ID, &sighting.Status, &sighting.CreatedAt, &sighting.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert wildlife sighting: %w", err)
		}

		for _, photo := range photos {
			if _, err := tx.Exec(ctx, `
				INSERT INTO wildlife_photos (sighting_id, photo_url, photo_name)
				VALUES ($1, $2, $3)`,
				sighting.ID, photo.PhotoURL, photo.PhotoName,
			); err != nil {
				return fmt.Errorf("insert wildlife photo: %w", err)
			}
		}
		return nil
	})
}

const sightingColumns = `
	ws.id, ws.report_id, ws.reporter_name, ws.phone, ws.village, ws.animal_type,
	ws.number_of_animals, ws.behavior_description, ws.threat_level,
	ws.exact_location, ws.gps_coordinates,
	to_char(ws.sighting_date, 'YYYY-MM-DD'), to_char(ws.sighting_time, 'HH24:MI'),
	ws.witness_count, ws.previous_sightings, ws.damage_reported,
	ws.damage_description, ws.people_at_risk, ws.evacuation_needed,
	ws.immediate_help, ws.status, ws.assigned_officer_id, ws.response_notes,
	ws.created_at, ws.updated_at`

func scanSighting(row pgx.Row, w *models.WildlifeSighting, joined bool) error {
	dest := []interface{}{
		&w.ID, &w.ReportID, &w.ReporterName, &w.Phone, &w.Village, &w.AnimalType,
		&w.NumberOfAnimals, &w.BehaviorDescription, &w.ThreatLevel,
		&w.ExactLocation, &w.GPSCoordinates, &w.SightingDate, &w.SightingTime,
		&w.WitnessCount, &w.PreviousSightings, &w.DamageReported,
		&w.DamageDescription, &w.PeopleAtRisk, &w.EvacuationNeeded,
		&w.ImmediateHelp, &w.Status, &w.AssignedOfficerID, &w.ResponseNotes,
		&w.CreatedAt, &w.UpdatedAt,
	}
	if joined {
		dest = append(dest, &w.AssignedOfficerName, &w.OfficerPhone)
	}
	return row.Scan(dest...)
}

// threatRankSQL mirrors models.ThreatLevel.Rank; the two must stay in sync.
const threatRankSQL = `
	CASE ws.threat_level
		WHEN 'immediate' THEN 1
		WHEN 'high' THEN 2
		WHEN 'medium' THEN 3
		ELSE 4
	END`

// List returns sightings matching the filter, most urgent first.
func (s *PostgresWildlifeStore) List(ctx context.Context, filter models.WildlifeSightingFilter) ([]*models.WildlifeSighting, error) {
	var b strings.Builder
	b.WriteString(`SELECT ` + sightingColumns + `,
		       u.name AS assigned_officer_name, u.phone AS officer_phone
		FROM wildlife_sightings ws
		LEFT JOIN users u ON ws.assigned_officer_id = u.id
		WHERE 1=1`)

	var params []interface{}
	if filter.ThreatLevel != "" {
		params = append(params, filter.ThreatLevel)
		fmt.Fprintf(&b, " AND ws.threat_level = $%d", len(params))
	}
	if filter.Status != "" {
		params = append(params, filter.Status)
		fmt.Fprintf(&b, " AND ws.status = $%d", len(params))
	}
	if filter.Phone != "" {
		params = append(params, filter.Phone)
		fmt.Fprintf(&b, " AND ws.phone = $%d", len(params))
	}
	if filter.Village != "" {
		params = append(params, "%"+filter.Village+"%")
		fmt.Fprintf(&b, " AND ws.village ILIKE $%d", len(params))
	}
	if filter.AnimalType != "" {
		params = append(params, filter.AnimalType)
		fmt.Fprintf(&b, " AND ws.animal_type = $%d", len(params))
	}
	b.WriteString(" ORDER BY " + threatRankSQL + ", ws.created_at DESC")
	if filter.Limit > 0 {
		params = append(params, filter.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(params))
	}

	rows, err := s.db.Query(ctx, b.String(), params...)
	if err != nil {
		return nil, fmt.Errorf("list wildlife sightings: %w", err)
	}
	defer rows.Close()

	var sightings []*models.WildlifeSighting
	for rows.Next() {
		var w models.WildlifeSighting
		if err := scanSighting(rows, &w, true); err != nil {
			return nil, err
		}
		sightings = append(sightings, &w)
	}
	return sightings, rows.Err()
}

// UpdateStatus updates a sighting addressed by its human-readable ID.
func (s *PostgresWildlifeStore) UpdateStatus(ctx context.Context, reportID, status string, officerID, notes *string) (*models.WildlifeSighting, error) {
	var w models.WildlifeSighting
	err := scanSighting(s.db.QueryRow(ctx, `
		UPDATE wildlife_sightings ws
		SET status = $1, assigned_officer_id = $2, response_notes = $3, updated_at = NOW()
		WHERE report_id = $4
		RETURNING `+sightingColumns,
		status, officerID, notes, reportID,
	), &w, false)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update wildlife sighting: %w", err)
	}
	return &w, nil
}

// AssignOfficer binds the longest-serving forest officer for the village in
// a single conditional update.
func (s *PostgresWildlifeStore) AssignOfficer(ctx context.Context, id, village string) (string, error) {
	var officerID string
	err := s.db.QueryRow(ctx, `
		UPDATE wildlife_sightings ws
		SET assigned_officer_id = c.id, status = 'investigating', updated_at = NOW()
		FROM (
			SELECT u.id
			FROM users u
			WHERE u.role = 'forest_officer' AND u.village = $2
			ORDER BY u.created_at
			LIMIT 1
		) c
		WHERE ws.id = $1 AND ws.assigned_officer_id IS NULL
		RETURNING c.id`,
		id, village,
	).Scan(&officerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNoCandidate
	}
	if err != nil {
		return "", fmt.Errorf("assign forest officer: %w", err)
	}
	return officerID, nil
}

// ListForestOfficers returns every forest officer on file.
func (s *PostgresWildlifeStore) ListForestOfficers(ctx context.Context) ([]*models.User, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, phone, village, role, language_preference, created_at, updated_at
		FROM users
		WHERE role = 'forest_officer'`)
	if err != nil {
		return nil, fmt.Errorf("list forest officers: %w", err)
	}
	defer rows.Close()

	var officers []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Phone, &u.Village, &u.Role,
			&u.LanguagePreference, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		officers = append(officers, &u)
	}
	return officers, rows.Err()
}

// Statistics aggregates the 30-day threat and animal dashboards plus the ten
// most recent high-priority sightings from the last week.
func (s *PostgresWildlifeStore) Statistics(ctx context.Context) (*models.WildlifeStatistics, error) {
	stats := &models.WildlifeStatistics{
		ThreatLevelStats:   []models.ThreatLevelCount{},
		AnimalTypeStats:    []models.AnimalTypeCount{},
		RecentHighPriority: []*models.WildlifeSighting{},
	}

	rows, err := s.db.Query(ctx, `
		SELECT threat_level, COUNT(*)
		FROM wildlife_sightings
		WHERE created_at >= CURRENT_DATE - INTERVAL '30 days'
		GROUP BY threat_level`)
	if err != nil {
		return nil, fmt.Errorf("threat level stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c models.ThreatLevelCount
		if err := rows.Scan(&c.ThreatLevel, &c.Count); err != nil {
			return nil, err
		}
		stats.ThreatLevelStats = append(stats.ThreatLevelStats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.Query(ctx, `
		SELECT animal_type, COUNT(*)
		FROM wildlife_sightings
		WHERE created_at >= CURRENT_DATE - INTERVAL '30 days'
		GROUP BY animal_type
		ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("animal type stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c models.AnimalTypeCount
		if err := rows.Scan(&c.AnimalType, &c.Count); err != nil {
			return nil, err
		}
		stats.AnimalTypeStats = append(stats.AnimalTypeStats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.Query(ctx, `
		SELECT `+sightingColumns+`
		FROM wildlife_sightings ws
		WHERE ws.threat_level IN ('immediate', 'high')
		  AND ws.created_at >= CURRENT_DATE - INTERVAL '7 days'
		ORDER BY ws.created_at DESC
		LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("recent high priority sightings: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var w models.WildlifeSighting
		if err := scanSighting(rows, &w, false); err != nil {
			return nil, err
		}
		stats.RecentHighPriority = append(stats.RecentHighPriority, &w)
	}
	return stats, rows.Err()
}
