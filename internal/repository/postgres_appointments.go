package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vetportal/pkg/models"
)

// PostgresAppointmentStore is the PostgreSQL implementation of AppointmentStore.
type PostgresAppointmentStore struct {
	db *pgxpool.Pool
}

// NewPostgresAppointmentStore creates a new PostgresAppointmentStore.
func NewPostgresAppointmentStore(db *pgxpool.Pool) *PostgresAppointmentStore {
	return &PostgresAppointmentStore{db: db}
}

// Create inserts a booking. Dates and times arrive as strings and are cast
// at the SQL boundary.
func (s *PostgresAppointmentStore) Create(ctx context.Context, appt *models.Appointment) error {
	err := s.db.QueryRow(ctx, `
		INSERT INTO appointments (
			booking_id, farmer_name, phone, village, address, service_type,
			visit_type, animal_type, animal_count, description, preferred_date,
			preferred_time, alternate_date, alternate_time, urgency
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		          $11::date, $12::time, $13::date, $14::time, $15)
		RETURNING id, status, created_at, updated_at`,
		appt.BookingID, appt.FarmerName, appt.Phone, appt.Village, appt.Address,
		appt.ServiceType, appt.VisitType, appt.AnimalType, appt.AnimalCount,
		appt.Description, appt.PreferredDate, appt.PreferredTime,
		appt.AlternateDate, appt.AlternateTime, appt.Urgency,
	).Scan(&appt.ID, &appt.Status, &appt.CreatedAt, &appt.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

const appointmentColumns = `
	a.id, a.booking_id, a.farmer_name, a.phone, a.village, a.address,
	a.service_type, a.visit_type, a.animal_type, a.animal_count, a.description,
	to_char(a.preferred_date, 'YYYY-MM-DD'), to_char(a.preferred_time, 'HH24:MI'),
	to_char(a.alternate_date, 'YYYY-MM-DD'), to_char(a.alternate_time, 'HH24:MI'),
	a.urgency, a.status, a.assigned_doctor_id, a.notes, a.created_at, a.updated_at`

func scanAppointment(row pgx.Row, a *models.Appointment) error {
	return row.Scan(
		&a.ID, &a.BookingID, &a.FarmerName, &a.Phone, &a.Village, &a.Address,
		&a.ServiceType, &a.VisitType, &a.AnimalType, &a.AnimalCount, &a.Description,
		&a.PreferredDate, &a.PreferredTime, &a.AlternateDate, &a.AlternateTime,
		&a.Urgency, &a.Status, &a.AssignedDoctorID, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
}

// List returns bookings matching the filter, earliest slot first.
func (s *PostgresAppointmentStore) List(ctx context.Context, filter models.AppointmentFilter) ([]*models.Appointment, error) {
	var b strings.Builder
	b.WriteString(`SELECT ` + appointmentColumns + `,
		       at.name_en AS animal_name, at.icon AS animal_icon,
		       u.name AS assigned_doctor_name, u.phone AS doctor_phone
		FROM appointments a
		LEFT JOIN animal_types at ON a.animal_type = at.id
		LEFT JOIN users u ON a.assigned_doctor_id = u.id
		WHERE 1=1`)

	var params []interface{}
	if filter.Status != "" {
		params = append(params, filter.Status)
		fmt.Fprintf(&b, " AND a.status = $%d", len(params))
	}
	if filter.Phone != "" {
		params = append(params, filter.Phone)
		fmt.Fprintf(&b, " AND a.phone = $%d", len(params))
	}
	if filter.DoctorID != "" {
		params = append(params, filter.DoctorID)
		fmt.Fprintf(&b, " AND a.assigned_doctor_id = $%d", len(params))
	}
	if filter.Date != "" {
		params = append(params, filter.Date)
		fmt.Fprintf(&b, " AND a.preferred_date = $%d::date", len(params))
	}
	b.WriteString(" ORDER BY a.preferred_date ASC, a.preferred_time ASC")

	rows, err := s.db.Query(ctx, b.String(), params...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var appts []*models.Appointment
	for rows.Next() {
		var a models.Appointment
		if err := rows.Scan(
			&a.ID, &a.BookingID, &a.FarmerName, &a.Phone, &a.Village, &a.Address,
			&a.ServiceType, &a.VisitType, &a.AnimalType, &a.AnimalCount, &a.Description,
			&a.PreferredDate, &a.PreferredTime, &a.AlternateDate, &a.AlternateTime,
			&a.Urgency, &a.Status, &a.AssignedDoctorID, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
			&a.AnimalName, &a.AnimalIcon, &a.AssignedDoctorName, &a.DoctorPhone,
		); err != nil {
			return nil, err
		}
		appts = append(appts, &a)
	}
	return appts, rows.Err()
}

// UpdateStatus updates a booking addressed by its human-readable ID.
func (s *PostgresAppointmentStore) UpdateStatus(ctx context.Context, bookingID, status string, doctorID, notes *string) (*models.Appointment, error) {
	var a models.Appointment
	err := scanAppointment(s.db.QueryRow(ctx, `
		UPDATE appointments a
		SET status = $1, assigned_doctor_id = $2, notes = $3, updated_at = NOW()
		WHERE booking_id = $4
		RETURNING `+appointmentColumns,
		status, doctorID, notes, bookingID,
	), &a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return &a, nil
}

// AssignDoctor binds a doctor whose availability window covers the slot and
// who has no overlapping non-terminal appointment. Selection and binding are
// one statement; the candidate's doctor row is locked with SKIP LOCKED so
// two emergency bookings for the same slot cannot bind the same doctor.
func (s *PostgresAppointmentStore) AssignDoctor(ctx context.Context, id, village, date, timeOfDay string) (string, error) {
	var userID string
	err := s.db.QueryRow(ctx, `
		UPDATE appointments a
		SET assigned_doctor_id = c.user_id, status = 'confirmed', updated_at = NOW()
		FROM (
			SELECT d.user_id
			FROM doctors d
			JOIN users u ON d.user_id = u.id
			JOIN doctor_availability da ON da.doctor_id = d.id
			WHERE d.is_active
			  AND (d.available_districts IS NULL OR $2 = ANY(d.available_districts))
			  AND da.is_available
			  AND da.start_time <= $3::time
			  AND da.end_time >= $3::time
			  AND da.day_of_week = EXTRACT(DOW FROM $4::date)
			  AND NOT EXISTS (
				SELECT 1 FROM appointments b
				WHERE b.assigned_doctor_id = d.user_id
				  AND b.preferred_date = $4::date
				  AND b.preferred_time = $3::time
				  AND b.status NOT IN ('cancelled', 'completed')
			  )
			ORDER BY d.rating DESC, d.total_reviews DESC
			LIMIT 1
			FOR UPDATE OF d SKIP LOCKED
		) c
		WHERE a.id = $1 AND a.assigned_doctor_id IS NULL
		RETURNING c.user_id`,
		id, village, timeOfDay, date,
	).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNoCandidate
	}
	if err != nil {
		return "", fmt.Errorf("assign doctor for appointment: %w", err)
	}
	return userID, nil
}

// Availability returns a doctor's weekly windows plus booked slots for a date.
func (s *PostgresAppointmentStore) Availability(ctx context.Context, doctorID, date string) (*models.DoctorAvailability, error) {
	rows, err := s.db.Query(ctx, `
		SELECT da.day_of_week, to_char(da.start_time, 'HH24:MI'),
		       to_char(da.end_time, 'HH24:MI'), da.is_available
		FROM doctor_availability da
		WHERE da.doctor_id = $1 AND da.is_available`,
		doctorID,
	)
	if err != nil {
		return nil, fmt.Errorf("fetch doctor availability: %w", err)
	}
	defer rows.Close()

	result := &models.DoctorAvailability{
		Availability: []models.AvailabilityWindow{},
		BookedSlots:  []models.BookedSlot{},
	}
	for rows.Next() {
		var w models.AvailabilityWindow
		if err := rows.Scan(&w.DayOfWeek, &w.StartTime, &w.EndTime, &w.IsAvailable); err != nil {
			return nil, err
		}
		result.Availability = append(result.Availability, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	booked, err := s.db.Query(ctx, `
		SELECT to_char(preferred_time, 'HH24:MI'), to_char(actual_time, 'HH24:MI')
		FROM appointments a
		JOIN doctors d ON a.assigned_doctor_id = d.user_id
		WHERE d.id = $1 AND (a.preferred_date = $2::date OR a.actual_date = $2::date)
		  AND a.status NOT IN ('cancelled', 'completed')`,
		doctorID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("fetch booked slots: %w", err)
	}
	defer booked.Close()

	for booked.Next() {
		var slot models.BookedSlot
		if err := booked.Scan(&slot.PreferredTime, &slot.ActualTime); err != nil {
			return nil, err
		}
		result.BookedSlots = append(result.BookedSlots, slot)
	}
	return result, booked.Err()
}
