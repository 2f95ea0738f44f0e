package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"vetportal/internal/config"
	"vetportal/internal/database"
	"vetportal/internal/logging"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load reference data and sample staff accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewLogger(debug)
			defer logger.Sync()

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			pool, err := database.Connect(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer pool.Close()

			return runSeed(cmd.Context(), pool, logger)
		},
	}
}

func runSeed(ctx context.Context, pool *pgxpool.Pool, logger *logging.Logger) error {
	if err := seedAnimalTypes(ctx, pool, logger); err != nil {
		return err
	}
	if err := seedSchemes(ctx, pool, logger); err != nil {
		return err
	}
	if err := seedSystemSettings(ctx, pool, logger); err != nil {
		return err
	}
	if err := seedStaff(ctx, pool, logger); err != nil {
		return err
	}
	logger.Info("seeding complete")
	return nil
}

func seedAnimalTypes(ctx context.Context, pool *pgxpool.Pool, logger *logging.Logger) error {
	types := []struct {
		ID, NameEn, NameHi, Icon string
	}{
		{"cow", "Cow", "गाय", "🐄"},
		{"buffalo", "Buffalo", "भैंस", "🐃"},
		{"goat", "Goat", "बकरी", "🐐"},
		{"pig", "Pig", "सूअर", "🐖"},
		{"poultry", "Poultry", "मुर्गी", "🐔"},
		{"elephant", "Elephant", "हाथी", "🐘"},
		{"leopard", "Leopard", "तेंदुआ", "🐆"},
	}

	for _, t := range types {
		tag, err := pool.Exec(ctx, `
			INSERT INTO animal_types (id, name_en, name_hi, icon)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			t.ID, t.NameEn, t.NameHi, t.Icon)
		if err != nil {
			return fmt.Errorf("failed to seed animal type %s: %w", t.ID, err)
		}
		if tag.RowsAffected() > 0 {
			logger.Info("seeded animal type", "id", t.ID)
		}
	}
	return nil
}

func seedSchemes(ctx context.Context, pool *pgxpool.Pool, logger *logging.Logger) error {
	schemes := []struct {
		ID, NameEn, NameHi, DescEn, DescHi, Category string
		SubsidyAmount                                float64
		EligibilityEn, DocumentsEn                   string
	}{
		{
			ID:            "dairy-development",
			NameEn:        "Dairy Development Scheme",
			NameHi:        "डेयरी विकास योजना",
			DescEn:        "Subsidy for setting up dairy units with 2-10 milch animals.",
			DescHi:        "2-10 दुधारू पशुओं के साथ डेयरी इकाई स्थापित करने के लिए अनुदान।",
			Category:      "dairy",
			SubsidyAmount: 200000,
			EligibilityEn: "Resident farmer with land or shed access; age 18-60.",
			DocumentsEn:   "Aadhaar card, bank passbook, land record or lease deed",
		},
		{
			ID:            "goat-rearing",
			NameEn:        "Goat Rearing Support",
			NameHi:        "बकरी पालन सहायता",
			DescEn:        "Financial assistance for goat units of 10 plus 1 composition.",
			DescHi:        "10+1 संरचना की बकरी इकाइयों के लिए वित्तीय सहायता।",
			Category:      "livestock",
			SubsidyAmount: 75000,
			EligibilityEn: "Small and marginal farmers; priority to SC/ST applicants.",
			DocumentsEn:   "Aadhaar card, bank passbook, caste certificate if applicable",
		},
		{
			ID:            "poultry-layer",
			NameEn:        "Backyard Poultry Scheme",
			NameHi:        "बैकयार्ड मुर्गी पालन योजना",
			DescEn:        "One-time grant for backyard poultry units of up to 50 birds.",
			DescHi:        "50 पक्षियों तक की बैकयार्ड मुर्गी इकाइयों के लिए एकमुश्त अनुदान।",
			Category:      "poultry",
			SubsidyAmount: 25000,
			EligibilityEn: "Rural households; one unit per family.",
			DocumentsEn:   "Aadhaar card, bank passbook",
		},
	}

	for _, s := range schemes {
		tag, err := pool.Exec(ctx, `
			INSERT INTO schemes (id, name_en, name_hi, description_en, description_hi,
				category, subsidy_amount, eligibility_criteria_en, required_documents_en)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO NOTHING`,
			s.ID, s.NameEn, s.NameHi, s.DescEn, s.DescHi,
			s.Category, s.SubsidyAmount, s.EligibilityEn, s.DocumentsEn)
		if err != nil {
			return fmt.Errorf("failed to seed scheme %s: %w", s.ID, err)
		}
		if tag.RowsAffected() > 0 {
			logger.Info("seeded scheme", "id", s.ID)
		}
	}
	return nil
}

func seedSystemSettings(ctx context.Context, pool *pgxpool.Pool, logger *logging.Logger) error {
	settings := []struct {
		Key, ValueEn, ValueHi string
	}{
		{"helpline_number", "1800-425-1660", "1800-425-1660"},
		{"office_hours", "Mon-Sat 9:00-17:00", "सोम-शनि 9:00-17:00"},
		{"emergency_response_time", "Within 2 hours for high threats", "उच्च खतरों के लिए 2 घंटे के भीतर"},
	}

	for _, s := range settings {
		tag, err := pool.Exec(ctx, `
			INSERT INTO system_settings (key, value_en, value_hi)
			VALUES ($1, $2, $3)
			ON CONFLICT (key) DO NOTHING`,
			s.Key, s.ValueEn, s.ValueHi)
		if err != nil {
			return fmt.Errorf("failed to seed setting %s: %w", s.Key, err)
		}
		if tag.RowsAffected() > 0 {
			logger.Info("seeded system setting", "key", s.Key)
		}
	}
	return nil
}

// seedStaff creates sample veterinary doctors with availability windows and
// forest officers. Staff are keyed by phone number so re-running the command
// does not duplicate them.
func seedStaff(ctx context.Context, pool *pgxpool.Pool, logger *logging.Logger) error {
	doctors := []struct {
		Name, Phone, Village, Specialization string
		Districts                            []string
		Rating                               float64
		Reviews                              int
	}{
		{"Dr. Anjali Kumari", "9431000001", "Ranchi", "Large animal medicine", []string{"Ranchi", "Khunti"}, 4.6, 112},
		{"Dr. Prakash Oraon", "9431000002", "Khunti", "General veterinary practice", []string{"Khunti"}, 4.2, 64},
		{"Dr. Sunil Mahto", "9431000003", "Gumla", "Poultry and small ruminants", nil, 4.8, 201},
	}

	for _, d := range doctors {
		var exists bool
		if err := pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM users WHERE phone = $1)`, d.Phone).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check for doctor %s: %w", d.Name, err)
		}
		if exists {
			logger.Info("skipping existing doctor", "phone", d.Phone)
			continue
		}

		userID := uuid.New()
		if _, err := pool.Exec(ctx, `
			INSERT INTO users (id, name, phone, village, role)
			VALUES ($1, $2, $3, $4, 'doctor')`,
			userID, d.Name, d.Phone, d.Village); err != nil {
			return fmt.Errorf("failed to seed doctor user %s: %w", d.Name, err)
		}

		var doctorID uuid.UUID
		if err := pool.QueryRow(ctx, `
			INSERT INTO doctors (user_id, specialization, available_districts, rating, total_reviews)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			userID, d.Specialization, d.Districts, d.Rating, d.Reviews).Scan(&doctorID); err != nil {
			return fmt.Errorf("failed to seed doctor record %s: %w", d.Name, err)
		}

		// Weekday mornings and afternoons.
		for day := 1; day <= 5; day++ {
			if _, err := pool.Exec(ctx, `
				INSERT INTO doctor_availability (doctor_id, day_of_week, start_time, end_time)
				VALUES ($1, $2, '09:00', '13:00'), ($1, $2, '14:00', '17:00')`,
				doctorID, day); err != nil {
				return fmt.Errorf("failed to seed availability for %s: %w", d.Name, err)
			}
		}
		logger.Info("seeded doctor", "name", d.Name)
	}

	officers := []struct {
		Name, Phone, Village string
	}{
		{"Ramesh Munda", "9431000011", "Khunti"},
		{"Sita Devi", "9431000012", "Gumla"},
	}

	for _, o := range officers {
		var exists bool
		if err := pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM users WHERE phone = $1)`, o.Phone).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check for officer %s: %w", o.Name, err)
		}
		if exists {
			logger.Info("skipping existing forest officer", "phone", o.Phone)
			continue
		}

		if _, err := pool.Exec(ctx, `
			INSERT INTO users (id, name, phone, village, role)
			VALUES ($1, $2, $3, $4, 'forest_officer')`,
			uuid.New(), o.Name, o.Phone, o.Village); err != nil {
			return fmt.Errorf("failed to seed forest officer %s: %w", o.Name, err)
		}
		logger.Info("seeded forest officer", "name", o.Name)
	}

	return nil
}
