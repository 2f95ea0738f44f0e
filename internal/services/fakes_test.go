package services

import (
	"context"

	"vetportal/internal/repository"
	"vetportal/pkg/models"
)

// recordingNotifier captures every dispatch for assertions.
type recordingNotifier struct {
	dispatched []NotificationInput
}

func (r *recordingNotifier) Dispatch(_ context.Context, n NotificationInput) {
	r.dispatched = append(r.dispatched, n)
}

func (r *recordingNotifier) byType(notificationType string) []NotificationInput {
	var matched []NotificationInput
	for _, n := range r.dispatched {
		if n.Type == notificationType {
			matched = append(matched, n)
		}
	}
	return matched
}

type fakeHealthReportStore struct {
	created     *models.HealthReport
	photos      []models.HealthReportPhoto
	assignID    string
	assignErr   error
	assignCalls int
}

func (f *fakeHealthReportStore) Create(_ context.Context, report *models.HealthReport, photos []models.HealthReportPhoto) error {
	report.ID = "hr-1"
	f.created = report
	f.photos = photos
	return nil
}

func (f *fakeHealthReportStore) List(_ context.Context, _ models.HealthReportFilter) ([]*models.HealthReport, error) {
	if f.created == nil {
		return nil, nil
	}
	return []*models.HealthReport{f.created}, nil
}

func (f *fakeHealthReportStore) UpdateStatus(_ context.Context, reportID, status string, doctorID, notes *string) (*models.HealthReport, error) {
	if f.created == nil || f.created.ReportID != reportID {
		return nil, repository.ErrNotFound
	}
	f.created.Status = models.HealthReportStatus(status)
	return f.created, nil
}

func (f *fakeHealthReportStore) AssignDoctor(_ context.Context, id, village string) (string, error) {
	f.assignCalls++
	if f.assignErr != nil {
		return "", f.assignErr
	}
	return f.assignID, nil
}

type fakeAppointmentStore struct {
	created     *models.Appointment
	assignID    string
	assignErr   error
	assignCalls int
}

func (f *fakeAppointmentStore) Create(_ context.Context, appt *models.Appointment) error {
	appt.ID = "appt-1"
	f.created = appt
	return nil
}

func (f *fakeAppointmentStore) List(_ context.Context, _ models.AppointmentFilter) ([]*models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentStore) UpdateStatus(_ context.Context, bookingID, status string, doctorID, notes *string) (*models.Appointment, error) {
	if f.created == nil || f.created.BookingID != bookingID {
		return nil, repository.ErrNotFound
	}
	f.created.Status = models.AppointmentStatus(status)
	return f.created, nil
}

func (f *fakeAppointmentStore) AssignDoctor(_ context.Context, id, village, date, timeOfDay string) (string, error) {
	f.assignCalls++
	if f.assignErr != nil {
		return "", f.assignErr
	}
	return f.assignID, nil
}

func (f *fakeAppointmentStore) Availability(_ context.Context, doctorID, date string) (*models.DoctorAvailability, error) {
	return &models.DoctorAvailability{}, nil
}

type fakeWildlifeStore struct {
	created     *models.WildlifeSighting
	officers    []*models.User
	assignID    string
	assignErr   error
	assignCalls int
}

func (f *fakeWildlifeStore) CreateSighting(_ context.Context, sighting *models.WildlifeSighting, photos []models.WildlifePhoto) error {
	sighting.ID = "ws-1"
	f.created = sighting
	return nil
}

func (f *fakeWildlifeStore) List(_ context.Context, _ models.WildlifeSightingFilter) ([]*models.WildlifeSighting, error) {
	return nil, nil
}

func (f *fakeWildlifeStore) UpdateStatus(_ context.Context, reportID, status string, officerID, notes *string) (*models.WildlifeSighting, error) {
	if f.created == nil || f.created.ReportID != reportID {
		return nil, repository.ErrNotFound
	}
	f.created.Status = models.SightingStatus(status)
	return f.created, nil
}

func (f *fakeWildlifeStore) AssignOfficer(_ context.Context, id, village string) (string, error) {
	f.assignCalls++
	if f.assignErr != nil {
		return "", f.assignErr
	}
	return f.assignID, nil
}

func (f *fakeWildlifeStore) ListForestOfficers(_ context.Context) ([]*models.User, error) {
	return f.officers, nil
}

func (f *fakeWildlifeStore) Statistics(_ context.Context) (*models.WildlifeStatistics, error) {
	return &models.WildlifeStatistics{}, nil
}

type fakeSchemeStore struct {
	created *models.SchemeApplication
	docs    []models.SchemeDocument
}

func (f *fakeSchemeStore) CreateApplication(_ context.Context, app *models.SchemeApplication, docs []models.SchemeDocument) error {
	app.ID = "sa-1"
	f.created = app
	f.docs = docs
	return nil
}

func (f *fakeSchemeStore) ListSchemes(_ context.Context, lang string) ([]*models.Scheme, error) {
	return nil, nil
}

func (f *fakeSchemeStore) ListApplications(_ context.Context, _ models.SchemeApplicationFilter) ([]*models.SchemeApplication, error) {
	return nil, nil
}

func (f *fakeSchemeStore) UpdateApplicationStatus(_ context.Context, applicationID, status, reviewerID string, notes *string, approvedAmount *float64) (*models.SchemeApplication, error) {
	if f.created == nil || f.created.ApplicationID != applicationID {
		return nil, repository.ErrNotFound
	}
	f.created.Status = models.ApplicationStatus(status)
	f.created.ApprovedAmount = approvedAmount
	return f.created, nil
}

func (f *fakeSchemeStore) TrackApplication(_ context.Context, applicationID, aadhaarNumber string) (*models.SchemeApplication, error) {
	if f.created == nil || f.created.ApplicationID != applicationID || f.created.AadhaarNumber != aadhaarNumber {
		return nil, repository.ErrNotFound
	}
	return f.created, nil
}

type fakeNotificationStore struct {
	usersByPhone map[string]string
	saved        []*models.Notification
}

func (f *fakeNotificationStore) FindUserIDByPhone(_ context.Context, phone string) (string, error) {
	id, ok := f.usersByPhone[phone]
	if !ok {
		return "", repository.ErrNotFound
	}
	return id, nil
}

func (f *fakeNotificationStore) Save(_ context.Context, n *models.Notification) error {
	f.saved = append(f.saved, n)
	return nil
}

func (f *fakeNotificationStore) ListForUser(_ context.Context, userID, lang string, limit int) ([]*models.Notification, error) {
	return f.saved, nil
}

func (f *fakeNotificationStore) MarkRead(_ context.Context, id, userID string) error {
	return repository.ErrNotFound
}

func (f *fakeNotificationStore) UnreadCount(_ context.Context, userID string) (int, error) {
	return len(f.saved), nil
}

type fakeLocalizationStore struct {
	languages map[string]string
}

func (f *fakeLocalizationStore) SystemSettings(_ context.Context, lang string) (map[string]string, error) {
	return map[string]string{}, nil
}

func (f *fakeLocalizationStore) LocalizedAnimalTypes(_ context.Context, lang string) ([]*models.AnimalType, error) {
	return nil, nil
}

func (f *fakeLocalizationStore) UserLanguage(_ context.Context, userID string) (string, error) {
	if lang, ok := f.languages[userID]; ok {
		return lang, nil
	}
	return "en", nil
}

func (f *fakeLocalizationStore) UpdateUserLanguage(_ context.Context, userID, lang string) (string, error) {
	if f.languages == nil {
		f.languages = map[string]string{}
	}
	f.languages[userID] = lang
	return lang, nil
}
