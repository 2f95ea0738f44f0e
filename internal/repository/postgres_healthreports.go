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

// PostgresHealthReportStore is the PostgreSQL implementation of HealthReportStore.
type PostgresHealthReportStore struct {
	db *pgxpool.Pool
}

// NewPostgresHealthReportStore creates a new PostgresHealthReportStore.
func NewPostgresHealthReportStore(db *pgxpool.Pool) *PostgresHealthReportStore {
	return &PostgresHealthReportStore{db: db}
}

// Create inserts the report and its photos in one transaction.
func (s *PostgresHealthReportStore) Create(ctx context.Context, report *models.HealthReport, photos []models.HealthReportPhoto) error {
	return database.WithTx(ctx, s.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO health_reports (
				report_id, farmer_name, phone, village, animal_type, animal_count,
				symptoms, severity, duration, location_coordinates, priority_score
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, status, created_at, updated_at`,
			report.ReportID, report.FarmerName, report.Phone, report.Village,
			report.AnimalType, report.AnimalCount, report.Symptoms, report.Severity,
			report.Duration, report.LocationCoordinates, report.PriorityScore,
		).Scan(&report.ID, &report.Status, &report.CreatedAt, &report.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert health report: %w", err)
		}

		for _, photo := range photos {
			if _, err := tx.Exec(ctx, `
				INSERT INTO health_report_photos (report_id, photo_url, photo_name)
				VALUES ($1, $2, $3)`,
				report.ID, photo.PhotoURL, photo.PhotoName,
			); err != nil {
				return fmt.Errorf("insert health report photo: %w", err)
			}
		}
		return nil
	})
}

// List returns reports matching the filter, highest priority first.
func (s *PostgresHealthReportStore) List(ctx context.Context, filter models.HealthReportFilter) ([]*models.HealthReport, error) {
	var b strings.Builder
	b.WriteString(`
		SELECT hr.id, hr.report_id, hr.farmer_name, hr.phone, hr.village,
		       hr.animal_type, hr.animal_count, hr.symptoms, hr.severity,
		       hr.duration, hr.location_coordinates, hr.priority_score,
		       hr.status, hr.assigned_doctor_id, hr.notes, hr.created_at, hr.updated_at,
		       at.name_en AS animal_name, at.icon AS animal_icon,
		       u.name AS assigned_doctor_name
		FROM health_reports hr
		LEFT JOIN animal_types at ON hr.animal_type = at.id
		LEFT JOIN users u ON hr.assigned_doctor_id = u.id
		WHERE 1=1`)

	var params []interface{}
	if filter.Status != "" {
		params = append(params, filter.Status)
		fmt.Fprintf(&b, " AND hr.status = $%d", len(params))
	}
	if filter.Severity != "" {
		params = append(params, filter.Severity)
		fmt.Fprintf(&b, " AND hr.severity = $%d", len(params))
	}
	if filter.Phone != "" {
		params = append(params, filter.Phone)
		fmt.Fprintf(&b, " AND hr.phone = $%d", len(params))
	}
	if filter.Village != "" {
		params = append(params, "%"+filter.Village+"%")
		fmt.Fprintf(&b, " AND hr.village ILIKE $%d", len(params))
	}
	b.WriteString(" ORDER BY hr.priority_score DESC, hr.created_at DESC")
	if filter.Limit > 0 {
		params = append(params, filter.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(params))
	}

	rows, err := s.db.Query(ctx, b.String(), params...)
	if err != nil {
		return nil, fmt.Errorf("list health reports: %w", err)
	}
	defer rows.Close()

	var reports []*models.HealthReport
	for rows.Next() {
		var r models.HealthReport
		if err := rows.Scan(
			&r.ID, &r.ReportID, &r.FarmerName, &r.Phone, &r.Village,
			&r.AnimalType, &r.AnimalCount, &r.Symptoms, &r.Severity,
			&r.Duration, &r.LocationCoordinates, &r.PriorityScore,
			&r.Status, &r.AssignedDoctorID, &r.Notes, &r.CreatedAt, &r.UpdatedAt,
			&r.AnimalName, &r.AnimalIcon, &r.AssignedDoctorName,
		); err != nil {
			return nil, err
		}
		reports = append(reports, &r)
	}
	return reports, rows.Err()
}

// UpdateStatus updates a report addressed by its human-readable ID.
func (s *PostgresHealthReportStore) UpdateStatus(ctx context.Context, reportID, status string, doctorID, notes *string) (*models.HealthReport, error) {
	var r models.HealthReport
	err := s.db.QueryRow(ctx, `
		UPDATE health_reports
		SET status = $1, assigned_doctor_id = $2, notes = COALESCE($3, notes), updated_at = NOW()
		WHERE report_id = $4
		RETURNING id, report_id, farmer_name, phone, village, animal_type,
		          animal_count, symptoms, severity, duration, location_coordinates,
		          priority_score, status, assigned_doctor_id, notes, created_at, updated_at`,
		status, doctorID, notes, reportID,
	).Scan(
		&r.ID, &r.ReportID, &r.FarmerName, &r.Phone, &r.Village, &r.AnimalType,
		&r.AnimalCount, &r.Symptoms, &r.Severity, &r.Duration, &r.LocationCoordinates,
		&r.PriorityScore, &r.Status, &r.AssignedDoctorID, &r.Notes, &r.CreatedAt, &r.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update health report: %w", err)
	}
	return &r, nil
}

// AssignDoctor folds candidate selection and binding into one conditional
// update so two concurrent submissions cannot both take the top candidate
// and a crash cannot separate selection from assignment.
func (s *PostgresHealthReportStore) AssignDoctor(ctx context.Context, id, village string) (string, error) {
	var userID string
	err := s.db.QueryRow(ctx, `
		UPDATE health_reports hr
		SET assigned_doctor_id = c.user_id, status = 'assigned', updated_at = NOW()
		FROM (
			SELECT d.user_id
			FROM doctors d
			JOIN users u ON d.user_id = u.id
			WHERE d.is_active
			  AND (d.available_districts IS NULL OR $2 = ANY(d.available_districts))
			ORDER BY d.rating DESC, d.total_reviews DESC
			LIMIT 1
		) c
		WHERE hr.id = $1 AND hr.assigned_doctor_id IS NULL
		RETURNING c.user_id`,
		id, village,
	).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNoCandidate
	}
	if err != nil {
		return "", fmt.Errorf("assign doctor: %w", err)
	}
	return userID, nil
}
