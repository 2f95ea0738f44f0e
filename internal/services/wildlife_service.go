package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"vetportal/internal/idgen"
	"vetportal/internal/logging"
	"vetportal/internal/observability"
	"vetportal/internal/repository"
	"vetportal/pkg/models"
)

// WildlifeSightingInput is the submission payload for a wildlife sighting.
type WildlifeSightingInput struct {
	ReporterName        string   `json:"reporterName"`
	Phone               string   `json:"phone"`
	Village             string   `json:"village"`
	AnimalType          string   `json:"animalType"`
	NumberOfAnimals     int      `json:"numberOfAnimals"`
	BehaviorDescription string   `json:"behaviorDescription"`
	ThreatLevel         string   `json:"threatLevel"`
	ExactLocation       string   `json:"exactLocation"`
	GPSCoordinates      *string  `json:"gpsCoordinates,omitempty"`
	SightingDate        string   `json:"sightingDate"`
	SightingTime        string   `json:"sightingTime"`
	WitnessCount        int      `json:"witnessCount"`
	PreviousSightings   bool     `json:"previousSightings"`
	DamageReported      bool     `json:"damageReported"`
	DamageDescription   *string  `json:"damageDescription,omitempty"`
	PeopleAtRisk        int      `json:"peopleAtRisk"`
	EvacuationNeeded    bool     `json:"evacuationNeeded"`
	ImmediateHelp       bool     `json:"immediateHelp"`
	Photos              []string `json:"photos,omitempty"`
}

// WildlifeService owns the sighting lifecycle: officer auto-assignment for
// high and immediate threats, and the all-officer broadcast for immediate
// ones.
type WildlifeService struct {
	store    repository.WildlifeStore
	notifier Notifier
	logger   *logging.Logger
	metrics  *observability.Metrics
}

// NewWildlifeService creates a new WildlifeService.
func NewWildlifeService(store repository.WildlifeStore, notifier Notifier, logger *logging.Logger, metrics *observability.Metrics) *WildlifeService {
	return &WildlifeService{store: store, notifier: notifier, logger: logger, metrics: metrics}
}

// responseMessage is the per-threat-level line appended to the reporter's
// confirmation.
func responseMessage(level models.ThreatLevel) string {
	switch level {
	case models.ThreatImmediate:
		return "Emergency response team has been notified and is en route."
	case models.ThreatHigh:
		return "Response team will be dispatched within 2 hours."
	case models.ThreatMedium:
		return "Forest team will monitor the area."
	default:
		return "Your report has been logged for wildlife tracking."
	}
}

// Create submits a new sighting. Photos are persisted in the same
// transaction; assignment and alerts run after the commit and never fail
// the submission.
func (s *WildlifeService) Create(ctx context.Context, input WildlifeSightingInput) (string, error) {
	level := models.ThreatLevel(input.ThreatLevel)
	sighting := &models.WildlifeSighting{
		ReportID:            idgen.NewReportID(idgen.PrefixWildlife),
		ReporterName:        input.ReporterName,
		Phone:               input.Phone,
		Village:             input.Village,
		AnimalType:          input.AnimalType,
		NumberOfAnimals:     input.NumberOfAnimals,
		BehaviorDescription: input.BehaviorDescription,
		ThreatLevel:         level,
		ExactLocation:       input.ExactLocation,
		GPSCoordinates:      input.GPSCoordinates,
		SightingDate:        input.SightingDate,
		SightingTime:        input.SightingTime,
		WitnessCount:        input.WitnessCount,
		PreviousSightings:   input.PreviousSightings,
		DamageReported:      input.DamageReported,
		DamageDescription:   input.DamageDescription,
		PeopleAtRisk:        input.PeopleAtRisk,
		EvacuationNeeded:    input.EvacuationNeeded,
		ImmediateHelp:       input.ImmediateHelp,
	}

	var photos []models.WildlifePhoto
	for _, url := range input.Photos {
		photos = append(photos, models.WildlifePhoto{
			PhotoURL:  url,
			PhotoName: fmt.Sprintf("wildlife_%d.jpg", time.Now().UnixMilli()),
		})
	}

	if err := s.store.CreateSighting(ctx, sighting, photos); err != nil {
		return "", fmt.Errorf("failed to create wildlife sighting: %w", err)
	}
	s.metrics.SightingsReported.Add(ctx, 1,
		metric.WithAttributes(attribute.String("threat_level", string(level))))

	if level.RequiresDispatch() {
		s.autoAssignOfficer(ctx, sighting)
	}
	if level == models.ThreatImmediate {
		s.broadcastEmergencyAlert(ctx, sighting)
	}

	s.notifier.Dispatch(ctx, NotificationInput{
		Type:        "wildlife_sighting_created",
		Title:       "Wildlife Sighting Reported",
		Message:     fmt.Sprintf("Your wildlife sighting report %s has been submitted. %s", sighting.ReportID, responseMessage(level)),
		Phone:       input.Phone,
		ReferenceID: sighting.ReportID,
	})

	return sighting.ReportID, nil
}

// List returns sightings matching the filter, most urgent first.
func (s *WildlifeService) List(ctx context.Context, filter models.WildlifeSightingFilter) ([]*models.WildlifeSighting, error) {
	sightings, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wildlife sightings: %w", err)
	}
	return sightings, nil
}

// Update changes a sighting's status, assignee, and response notes, then
// notifies the reporter.
func (s *WildlifeService) Update(ctx context.Context, reportID, status string, officerID, notes *string) (*models.WildlifeSighting, error) {
	sighting, err := s.store.UpdateStatus(ctx, reportID, status, officerID, notes)
	if err != nil {
		return nil, err
	}

	s.notifier.Dispatch(ctx, NotificationInput{
		Type:        "wildlife_sighting_updated",
		Title:       "Wildlife Report Update",
		Message:     fmt.Sprintf("Your wildlife report %s status has been updated to %s.", reportID, status),
		Phone:       sighting.Phone,
		ReferenceID: reportID,
	})

	return sighting, nil
}

// Statistics returns the 30-day dashboards.
func (s *WildlifeService) Statistics(ctx context.Context) (*models.WildlifeStatistics, error) {
	stats, err := s.store.Statistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wildlife statistics: %w", err)
	}
	return stats, nil
}

func (s *WildlifeService) autoAssignOfficer(ctx context.Context, sighting *models.WildlifeSighting) {
	officerID, err := s.store.AssignOfficer(ctx, sighting.ID, sighting.Village)
	if errors.Is(err, repository.ErrNoCandidate) {
		s.metrics.AssignmentMisses.Add(ctx, 1,
			metric.WithAttributes(attribute.String("domain", "wildlife_sighting")))
		s.logger.Warn("no forest officer available for sighting",
			"report_id", sighting.ReportID, "village", sighting.Village,
			"threat_level", sighting.ThreatLevel)
		return
	}
	if err != nil {
		s.logger.Error("forest officer auto-assignment failed",
			"report_id", sighting.ReportID, "error", err)
		return
	}

	s.metrics.AssignmentsMade.Add(ctx, 1,
		metric.WithAttributes(attribute.String("domain", "wildlife_sighting")))
	s.notifier.Dispatch(ctx, NotificationInput{
		Type:        "wildlife_sighting_assigned",
		Title:       "Wildlife Sighting Assigned",
		Message:     fmt.Sprintf("A %s priority wildlife sighting has been assigned to you in %s.", sighting.ThreatLevel, sighting.Village),
		UserID:      officerID,
		ReferenceID: sighting.ReportID,
	})
}

// broadcastEmergencyAlert sends one alert to every forest officer on file.
func (s *WildlifeService) broadcastEmergencyAlert(ctx context.Context, sighting *models.WildlifeSighting) {
	officers, err := s.store.ListForestOfficers(ctx)
	if err != nil {
		s.logger.Error("failed to list forest officers for emergency alert",
			"report_id", sighting.ReportID, "error", err)
		return
	}

	for _, officer := range officers {
		s.notifier.Dispatch(ctx, NotificationInput{
			Type:        "emergency_wildlife_alert",
			Title:       "EMERGENCY: Wildlife Threat",
			Message:     fmt.Sprintf("IMMEDIATE THREAT: %s sighted in %s. %d animals. Location: %s", sighting.AnimalType, sighting.Village, sighting.NumberOfAnimals, sighting.ExactLocation),
			UserID:      officer.ID,
			ReferenceID: sighting.ReportID,
		})
	}

	s.metrics.EmergencyBroadcasts.Add(ctx, 1)
	s.logger.Info("emergency wildlife alert broadcast",
		"report_id", sighting.ReportID, "officers", len(officers))
}
