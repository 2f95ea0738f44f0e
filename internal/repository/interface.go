// Package repository holds the persistence interfaces and their PostgreSQL
// implementations. All SQL is parameterized; the only dynamic fragments are
// allow-listed language column names.
package repository

import (
	"context"
	"errors"

	"vetportal/pkg/models"
)

// ErrNotFound is returned when a path-identified record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrNoCandidate is returned by assignment calls when no staff member
// matches, or the record was already assigned by a concurrent request.
var ErrNoCandidate = errors.New("no assignable candidate")

// HealthReportStore persists farmer health reports.
type HealthReportStore interface {
	// Create inserts the report and its photo rows in one transaction,
	// filling in the generated surrogate key and timestamps.
	Create(ctx context.Context, report *models.HealthReport, photos []models.HealthReportPhoto) error
	// List returns reports matching the filter, most urgent first.
	List(ctx context.Context, filter models.HealthReportFilter) ([]*models.HealthReport, error)
	// UpdateStatus updates a report addressed by its human-readable ID.
	UpdateStatus(ctx context.Context, reportID, status string, doctorID, notes *string) (*models.HealthReport, error)
	// AssignDoctor binds the top-ranked available doctor to the report in a
	// single conditional update and returns the assignee's user ID.
	AssignDoctor(ctx context.Context, id, village string) (string, error)
}

// AppointmentStore persists veterinary visit bookings.
type AppointmentStore interface {
	Create(ctx context.Context, appt *models.Appointment) error
	List(ctx context.Context, filter models.AppointmentFilter) ([]*models.Appointment, error)
	UpdateStatus(ctx context.Context, bookingID, status string, doctorID, notes *string) (*models.Appointment, error)
	// AssignDoctor binds a doctor whose weekly availability covers the
	// requested slot and who has no overlapping non-terminal appointment.
	AssignDoctor(ctx context.Context, id, village, date, timeOfDay string) (string, error)
	// Availability returns a doctor's weekly windows plus booked slots for a date.
	Availability(ctx context.Context, doctorID, date string) (*models.DoctorAvailability, error)
}

// SchemeStore persists scheme applications and serves the scheme catalog.
type SchemeStore interface {
	CreateApplication(ctx context.Context, app *models.SchemeApplication, docs []models.SchemeDocument) error
	ListSchemes(ctx context.Context, lang string) ([]*models.Scheme, error)
	ListApplications(ctx context.Context, filter models.SchemeApplicationFilter) ([]*models.SchemeApplication, error)
	UpdateApplicationStatus(ctx context.Context, applicationID, status, reviewerID string, notes *string, approvedAmount *float64) (*models.SchemeApplication, error)
	// TrackApplication requires both the application ID and the Aadhaar
	// number to match; ErrNotFound otherwise.
	TrackApplication(ctx context.Context, applicationID, aadhaarNumber string) (*models.SchemeApplication, error)
}

// WildlifeStore persists wildlife sightings.
type WildlifeStore interface {
	CreateSighting(ctx context.Context, sighting *models.WildlifeSighting, photos []models.WildlifePhoto) error
	List(ctx context.Context, filter models.WildlifeSightingFilter) ([]*models.WildlifeSighting, error)
	UpdateStatus(ctx context.Context, reportID, status string, officerID, notes *string) (*models.WildlifeSighting, error)
	AssignOfficer(ctx context.Context, id, village string) (string, error)
	// ListForestOfficers returns every forest officer on file, for
	// emergency broadcast fan-out.
	ListForestOfficers(ctx context.Context) ([]*models.User, error)
	Statistics(ctx context.Context) (*models.WildlifeStatistics, error)
}

// NotificationStore persists and reads in-app notifications.
type NotificationStore interface {
	// FindUserIDByPhone resolves a phone number to the first matching user.
	FindUserIDByPhone(ctx context.Context, phone string) (string, error)
	Save(ctx context.Context, n *models.Notification) error
	ListForUser(ctx context.Context, userID, lang string, limit int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
	UnreadCount(ctx context.Context, userID string) (int, error)
}

// LocalizationStore serves table-backed localized content.
type LocalizationStore interface {
	SystemSettings(ctx context.Context, lang string) (map[string]string, error)
	LocalizedAnimalTypes(ctx context.Context, lang string) ([]*models.AnimalType, error)
	UserLanguage(ctx context.Context, userID string) (string, error)
	UpdateUserLanguage(ctx context.Context, userID, lang string) (string, error)
}
