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

// PostgresSchemeStore is the PostgreSQL implementation of SchemeStore.
type PostgresSchemeStore struct {
	db *pgxpool.Pool
}

// NewPostgresSchemeStore creates a new PostgresSchemeStore.
func NewPostgresSchemeStore(db *pgxpool.Pool) *PostgresSchemeStore {
	return &PostgresSchemeStore{db: db}
}

// CreateApplication inserts the application and its document rows in one
// transaction.
func (s *PostgresSchemeStore) CreateApplication(ctx context.Context, app *models.SchemeApplication, docs []models.SchemeDocument) error {
	return database.WithTx(ctx, s.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO scheme_applications (
				application_id, scheme_id, applicant_name, father_name, aadhaar_number,
				phone, email, village, block, district, pincode, project_cost,
				requested_amount, animal_type, current_animals, proposed_animals,
				experience, bank_name, account_number, ifsc_code, has_land,
				land_area, previous_scheme, category
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			          $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
			RETURNING id, status, created_at, updated_at`,
			app.ApplicationID, app.SchemeID, app.ApplicantName, app.FatherName,
			app.AadhaarNumber, app.Phone, app.Email, app.Village, app.Block,
			app.District, app.Pincode, app.ProjectCost, app.RequestedAmount,
			app.AnimalType, app.CurrentAnimals, app.ProposedAnimals, app.Experience,
			app.BankName, app.AccountNumber, app.IFSCCode, app.HasLand,
			app.LandArea, app.PreviousScheme, app.Category,
		).Scan(&app.ID, &app.Status, &app.CreatedAt, &app.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert scheme application: %w", err)
		}

		for _, doc := range docs {
			if _, err := tx.Exec(ctx, `
				INSERT INTO scheme_documents (application_id, document_type, document_url, document_name)
				VALUES ($1, $2, $3, $4)`,
				app.ID, doc.DocumentType, doc.DocumentURL, doc.DocumentName,
			); err != nil {
				return fmt.Errorf("insert scheme document: %w", err)
			}
		}
		return nil
	})
}

// ListSchemes returns active schemes localized to lang, English fallback per
// column.
func (s *PostgresSchemeStore) ListSchemes(ctx context.Context, lang string) ([]*models.Scheme, error) {
	query := fmt.Sprintf(`
		SELECT id, %s, %s, category, subsidy_amount, %s, %s, is_active
		FROM schemes
		WHERE is_active
		ORDER BY category, name_en`,
		langColumn("name", lang),
		langColumn("description", lang),
		langColumn("eligibility_criteria", lang),
		langColumn("required_documents", lang),
	)

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list schemes: %w", err)
	}
	defer rows.Close()

	var schemes []*models.Scheme
	for rows.Next() {
		var sc models.Scheme
		if err := rows.Scan(
			&sc.ID, &sc.Name, &sc.Description, &sc.Category, &sc.SubsidyAmount,
			&sc.EligibilityCriteria, &sc.RequiredDocuments, &sc.IsActive,
		); err != nil {
			return nil, err
		}
		schemes = append(schemes, &sc)
	}
	return schemes, rows.Err()
}

const applicationColumns = `
	sa.id, sa.application_id, sa.scheme_id, sa.applicant_name, sa.father_name,
	sa.aadhaar_number, sa.phone, sa.email, sa.village, sa.block, sa.district,
	sa.pincode, sa.project_cost, sa.requested_amount, sa.animal_type,
	sa.current_animals, sa.proposed_animals, sa.experience, sa.bank_name,
	sa.account_number, sa.ifsc_code, sa.has_land, sa.land_area,
	sa.previous_scheme, sa.category, sa.status, sa.reviewed_by, sa.review_notes,
	sa.approved_amount, sa.created_at, sa.updated_at`

func scanApplication(row pgx.Row, a *models.SchemeApplication, joined bool) error {
	dest := []interface{}{
		&a.ID, &a.ApplicationID, &a.SchemeID, &a.ApplicantName, &a.FatherName,
		&a.AadhaarNumber, &a.Phone, &a.Email, &a.Village, &a.Block, &a.District,
		&a.Pincode, &a.ProjectCost, &a.RequestedAmount, &a.AnimalType,
		&a.CurrentAnimals, &a.ProposedAnimals, &a.Experience, &a.BankName,
		&a.AccountNumber, &a.IFSCCode, &a.HasLand, &a.LandArea,
		&a.PreviousScheme, &a.Category, &a.Status, &a.ReviewedBy, &a.ReviewNotes,
		&a.ApprovedAmount, &a.CreatedAt, &a.UpdatedAt,
	}
	if joined {
		dest = append(dest, &a.SchemeName, &a.AnimalName, &a.ReviewerName)
	}
	return row.Scan(dest...)
}

// ListApplications returns applications matching the filter, newest first.
func (s *PostgresSchemeStore) ListApplications(ctx context.Context, filter models.SchemeApplicationFilter) ([]*models.SchemeApplication, error) {
	var b strings.Builder
	b.WriteString(`SELECT ` + applicationColumns + `,
		       sch.name_en AS scheme_name, at.name_en AS animal_name,
		       u.name AS reviewer_name
		FROM scheme_applications sa
		LEFT JOIN schemes sch ON sa.scheme_id = sch.id
		LEFT JOIN animal_types at ON sa.animal_type = at.id
		LEFT JOIN users u ON sa.reviewed_by = u.id
		WHERE 1=1`)

	var params []interface{}
	if filter.Status != "" {
		params = append(params, filter.Status)
		fmt.Fprintf(&b, " AND sa.status = $%d", len(params))
	}
	if filter.Phone != "" {
		params = append(params, filter.Phone)
		fmt.Fprintf(&b, " AND sa.phone = $%d", len(params))
	}
	if filter.District != "" {
		params = append(params, filter.District)
		fmt.Fprintf(&b, " AND sa.district = $%d", len(params))
	}
	if filter.SchemeID != "" {
		params = append(params, filter.SchemeID)
		fmt.Fprintf(&b, " AND sa.scheme_id = $%d", len(params))
	}
	b.WriteString(" ORDER BY sa.created_at DESC")
	if filter.Limit > 0 {
		params = append(params, filter.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(params))
	}

	rows, err := s.db.Query(ctx, b.String(), params...)
	if err != nil {
		return nil, fmt.Errorf("list scheme applications: %w", err)
	}
	defer rows.Close()

	var apps []*models.SchemeApplication
	for rows.Next() {
		var a models.SchemeApplication
		if err := scanApplication(rows, &a, true); err != nil {
			return nil, err
		}
		apps = append(apps, &a)
	}
	return apps, rows.Err()
}

// UpdateApplicationStatus records a review decision.
func (s *PostgresSchemeStore) UpdateApplicationStatus(ctx context.Context, applicationID, status, reviewerID string, notes *string, approvedAmount *float64) (*models.SchemeApplication, error) {
	var a models.SchemeApplication
	err := scanApplication(s.db.QueryRow(ctx, `
		UPDATE scheme_applications sa
		SET status = $1, reviewed_by = $2, review_notes = $3,
		    approved_amount = $4, updated_at = NOW()
		WHERE application_id = $5
		RETURNING `+applicationColumns,
		status, reviewerID, notes, approvedAmount, applicationID,
	), &a, false)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update scheme application: %w", err)
	}
	return &a, nil
}

// TrackApplication looks up an application; both credentials must match.
func (s *PostgresSchemeStore) TrackApplication(ctx context.Context, applicationID, aadhaarNumber string) (*models.SchemeApplication, error) {
	var a models.SchemeApplication
	err := scanApplication(s.db.QueryRow(ctx, `
		SELECT `+applicationColumns+`,
		       sch.name_en AS scheme_name, at.name_en AS animal_name,
		       u.name AS reviewer_name
		FROM scheme_applications sa
		LEFT JOIN schemes sch ON sa.scheme_id = sch.id
		LEFT JOIN animal_types at ON sa.animal_type = at.id
		LEFT JOIN users u ON sa.reviewed_by = u.id
		WHERE sa.application_id = $1 AND sa.aadhaar_number = $2`,
		applicationID, aadhaarNumber,
	), &a, true)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("track scheme application: %w", err)
	}
	return &a, nil
}
