package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"vetportal/internal/idgen"
	"vetportal/internal/logging"
	"vetportal/internal/observability"
	"vetportal/internal/repository"
	"vetportal/pkg/models"
)

// HealthReportInput is the submission payload for an animal health report.
type HealthReportInput struct {
	FarmerName  string   `json:"farmerName"`
	Phone       string   `json:"phone"`
	Village     string   `json:"village"`
	AnimalType  string   `json:"animalType"`
	AnimalCount int      `json:"animalCount"`
	Symptoms    string   `json:"symptoms"`
	Severity    string   `json:"severity"`
	Duration    *string  `json:"duration,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Photos      []string `json:"photos,omitempty"`
}

// HealthReportService owns the health-report lifecycle: creation with
// priority scoring, doctor auto-assignment for severe cases, and status
// updates with farmer notifications.
type HealthReportService struct {
	store    repository.HealthReportStore
	notifier Notifier
	logger   *logging.Logger
	metrics  *observability.Metrics
}

// NewHealthReportService creates a new HealthReportService.
func NewHealthReportService(store repository.HealthReportStore, notifier Notifier, logger *logging.Logger, metrics *observability.Metrics) *HealthReportService {
	return &HealthReportService{store: store, notifier: notifier, logger: logger, metrics: metrics}
}

// PriorityScore computes the routing score for a report: the severity base
// score scaled by a capped animal-count multiplier (1 + min(count/10, 2)).
// Bounds: round(25*1) for a single low-severity animal up to round(100*3)
// for a large critical outbreak.
func PriorityScore(severity models.Severity, animalCount int) int {
	multiplier := math.Min(float64(animalCount)/10.0, 2.0)
	return int(math.Round(float64(severity.BaseScore()) * (1 + multiplier)))
}

// Create submits a new health report. Photos are persisted in the same
// transaction as the report; auto-assignment and notifications run after the
// commit and never fail the submission.
func (s *HealthReportService) Create(ctx context.Context, input HealthReportInput) (string, error) {
	severity := models.Severity(input.Severity)
	report := &models.HealthReport{
		ReportID:            idgen.NewReportID(idgen.PrefixVeterinary),
		FarmerName:          input.FarmerName,
		Phone:               input.Phone,
		Village:             input.Village,
		AnimalType:          input.AnimalType,
		AnimalCount:         input.AnimalCount,
		Symptoms:            input.Symptoms,
		Severity:            severity,
		Duration:            input.Duration,
		LocationCoordinates: input.Location,
		PriorityScore:       PriorityScore(severity, input.AnimalCount),
	}

	var photos []models.HealthReportPhoto
	for _, url := range input.Photos {
		photos = append(photos, models.HealthReportPhoto{
			PhotoURL:  url,
			PhotoName: fmt.Sprintf("photo_%d.jpg", time.Now().UnixMilli()),
		})
	}

	if err := s.store.Create(ctx, report, photos); err != nil {
		return "", fmt.Errorf("failed to create health report: %w", err)
	}
	s.metrics.ReportsSubmitted.Add(ctx, 1,
		metric.WithAttributes(attribute.String("severity", string(severity))))

	if severity.RequiresAssignment() {
		s.autoAssignDoctor(ctx, report)
	}

	s.notifier.Dispatch(ctx, NotificationInput{
		Type:        "health_report_created",
		Title:       "Health Report Submitted",
		Message:     fmt.Sprintf("Your health report %s has been submitted successfully.", report.ReportID),
		Phone:       input.Phone,
		ReferenceID: report.ReportID,
	})

	return report.ReportID, nil
}

// List returns reports matching the filter, highest priority first.
func (s *HealthReportService) List(ctx context.Context, filter models.HealthReportFilter) ([]*models.HealthReport, error) {
	reports, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch health reports: %w", err)
	}
	return reports, nil
}

// Update changes a report's status, assignee, and notes, then notifies the
// farmer.
func (s *HealthReportService) Update(ctx context.Context, reportID, status string, doctorID, notes *string) (*models.HealthReport, error) {
	report, err := s.store.UpdateStatus(ctx, reportID, status, doctorID, notes)
	if err != nil {
		return nil, err
	}

	s.notifier.Dispatch(ctx, NotificationInput{
		Type:        "health_report_updated",
		Title:       "Health Report Update",
		Message:     fmt.Sprintf("Your health report %s status has been updated to %s.", reportID, status),
		Phone:       report.Phone,
		ReferenceID: reportID,
	})

	return report, nil
}

// autoAssignDoctor binds the top-ranked available doctor and notifies them.
// A miss leaves the report unassigned; the submission has already succeeded.
func (s *HealthReportService) autoAssignDoctor(ctx context.Context, report *models.HealthReport) {
	doctorID, err := s.store.AssignDoctor(ctx, report.ID, report.Village)
	if errors.Is(err, repository.ErrNoCandidate) {
		s.metrics.AssignmentMisses.Add(ctx, 1,
			metric.WithAttributes(attribute.String("domain", "health_report")))
		s.logger.Warn("no doctor available for health report",
			"report_id", report.ReportID, "village", report.Village, "severity", report.Severity)
		return
	}
	if err != nil {
		s.logger.Error("doctor auto-assignment failed",
			"report_id", report.ReportID, "error", err)
		return
	}

	s.metrics.AssignmentsMade.Add(ctx, 1,
		metric.WithAttributes(attribute.String("domain", "health_report")))
	s.notifier.Dispatch(ctx, NotificationInput{
		Type:        "report_assigned",
		Title:       "New Health Report Assigned",
		Message:     fmt.Sprintf("A %s priority health report has been assigned to you.", report.Severity),
		UserID:      doctorID,
		ReferenceID: report.ReportID,
	})
}
