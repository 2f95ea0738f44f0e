package services

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"vetportal/internal/idgen"
	"vetportal/internal/logging"
	"vetportal/internal/observability"
	"vetportal/internal/repository"
	"vetportal/pkg/models"
)

// AppointmentInput is the booking payload for a veterinary visit.
type AppointmentInput struct {
	FarmerName    string  `json:"farmerName"`
	Phone         string  `json:"phone"`
	Village       string  `json:"village"`
	Address       string  `json:"address"`
	ServiceType   string  `json:"serviceType"`
	VisitType     string  `json:"visitType"`
	AnimalType    string  `json:"animalType"`
	AnimalCount   int     `json:"animalCount"`
	Description   *string `json:"description,omitempty"`
	PreferredDate string  `json:"preferredDate"`
	PreferredTime string  `json:"preferredTime"`
	AlternateDate *string `json:"alternateDate,omitempty"`
	AlternateTime *string `json:"alternateTime,omitempty"`
	Urgency       string  `json:"urgency"`
}

// AppointmentService owns the booking lifecycle, including emergency
// auto-assignment against doctor availability windows.
type AppointmentService struct {
	store    repository.AppointmentStore
	notifier Notifier
	logger   *logging.Logger
	metrics  *observability.Metrics
}

// NewAppointmentService creates a new AppointmentService.
func NewAppointmentService(store repository.AppointmentStore, notifier Notifier, logger *logging.Logger, metrics *observability.Metrics) *AppointmentService {
	return &AppointmentService{store: store, notifier: notifier, logger: logger, metrics: metrics}
}

// Create books a new appointment. Emergency bookings attempt immediate
// doctor assignment; the farmer is notified either way.
func (s *AppointmentService) Create(ctx context.Context, input AppointmentInput) (string, error) {
	appt := &models.Appointment{
		BookingID:     idgen.NewReportID(idgen.PrefixVeterinary),
		FarmerName:    input.FarmerName,
		Phone:         input.Phone,
		Village:       input.Village,
		Address:       input.Address,
		ServiceType:   input.ServiceType,
		VisitType:     input.VisitType,
		AnimalType:    input.AnimalType,
		AnimalCount:   input.AnimalCount,
		Description:   input.Description,
		PreferredDate: input.PreferredDate,
		PreferredTime: input.PreferredTime,
		AlternateDate: input.AlternateDate,
		AlternateTime: input.AlternateTime,
		Urgency:       models.Urgency(input.Urgency),
	}

	if err := s.store.Create(ctx, appt); err != nil {
		return "", fmt.Errorf("failed to create appointment: %w", err)
	}
	s.metrics.AppointmentsBooked.Add(ctx, 1,
		metric.WithAttributes(attribute.String("urgency", string(appt.Urgency))))

	if appt.Urgency == models.UrgencyEmergency {
		s.autoAssignDoctor(ctx, appt)
	}

	s.notifier.Dispatch(ctx, NotificationInput{
		Type:        "appointment_created",
		Title:       "Appointment Booked",
		Message:     fmt.Sprintf("Your veterinary appointment %s has been scheduled for %s at %s.", appt.BookingID, appt.PreferredDate, appt.PreferredTime),
		Phone:       input.Phone,
		ReferenceID: appt.BookingID,
	})

	return appt.BookingID, nil
}

// List returns bookings matching the filter, earliest slot first.
func (s *AppointmentService) List(ctx context.Context, filter models.AppointmentFilter) ([]*models.Appointment, error) {
	appts, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	return appts, nil
}

// Update changes a booking's status, assignee, and notes, then notifies the
// farmer.
func (s *AppointmentService) Update(ctx context.Context, bookingID, status string, doctorID, notes *string) (*models.Appointment, error) {
	appt, err := s.store.UpdateStatus(ctx, bookingID, status, doctorID, notes)
	if err != nil {
		return nil, err
	}

	s.notifier.Dispatch(ctx, NotificationInput{
		Type:        "appointment_updated",
		Title:       "Appointment Update",
		Message:     fmt.Sprintf("Your appointment %s status has been updated to %s.", bookingID, status),
		Phone:       appt.Phone,
		ReferenceID: bookingID,
	})

	return appt, nil
}

// Availability returns a doctor's weekly windows plus booked slots for a date.
func (s *AppointmentService) Availability(ctx context.Context, doctorID, date string) (*models.DoctorAvailability, error) {
	availability, err := s.store.Availability(ctx, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctor availability: %w", err)
	}
	return availability, nil
}

func (s *AppointmentService) autoAssignDoctor(ctx context.Context, appt *models.Appointment) {
	doctorID, err := s.store.AssignDoctor(ctx, appt.ID, appt.Village, appt.PreferredDate, appt.PreferredTime)
	if errors.Is(err, repository.ErrNoCandidate) {
		s.metrics.AssignmentMisses.Add(ctx, 1,
			metric.WithAttributes(attribute.String("domain", "appointment")))
		s.logger.Warn("no doctor available for emergency appointment",
			"booking_id", appt.BookingID, "village", appt.Village,
			"date", appt.PreferredDate, "time", appt.PreferredTime)
		return
	}
	if err != nil {
		s.logger.Error("appointment auto-assignment failed",
			"booking_id", appt.BookingID, "error", err)
		return
	}

	s.metrics.AssignmentsMade.Add(ctx, 1,
		metric.WithAttributes(attribute.String("domain", "appointment")))
	s.notifier.Dispatch(ctx, NotificationInput{
		Type:        "appointment_assigned",
		Title:       "New Appointment Assigned",
		Message:     fmt.Sprintf("A new veterinary appointment has been assigned to you for %s at %s.", appt.PreferredDate, appt.PreferredTime),
		UserID:      doctorID,
		ReferenceID: appt.BookingID,
	})
}
