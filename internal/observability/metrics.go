// Package observability wires OpenTelemetry instruments for the portal's
// side-effecting paths: submissions, auto-assignment outcomes, and
// notification dispatches.
package observability

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the counters incremented by the service layer.
type Metrics struct {
	ReportsSubmitted        metric.Int64Counter
	AppointmentsBooked      metric.Int64Counter
	ApplicationsSubmitted   metric.Int64Counter
	SightingsReported       metric.Int64Counter
	AssignmentsMade         metric.Int64Counter
	AssignmentMisses        metric.Int64Counter
	NotificationsDispatched metric.Int64Counter
	EmergencyBroadcasts     metric.Int64Counter
}

// NewMetrics registers the portal counters on the global meter provider.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter("vetportal")

	m := &Metrics{}
	var err error

	if m.ReportsSubmitted, err = meter.Int64Counter("portal.health_reports.submitted",
		metric.WithDescription("Health reports submitted")); err != nil {
		return nil, err
	}
	if m.AppointmentsBooked, err = meter.Int64Counter("portal.appointments.booked",
		metric.WithDescription("Appointments booked")); err != nil {
		return nil, err
	}
	if m.ApplicationsSubmitted, err = meter.Int64Counter("portal.scheme_applications.submitted",
		metric.WithDescription("Scheme applications submitted")); err != nil {
		return nil, err
	}
	if m.SightingsReported, err = meter.Int64Counter("portal.wildlife_sightings.reported",
		metric.WithDescription("Wildlife sightings reported")); err != nil {
		return nil, err
	}
	if m.AssignmentsMade, err = meter.Int64Counter("portal.assignments.made",
		metric.WithDescription("Successful staff auto-assignments")); err != nil {
		return nil, err
	}
	if m.AssignmentMisses, err = meter.Int64Counter("portal.assignments.missed",
		metric.WithDescription("Auto-assignment attempts with no candidate")); err != nil {
		return nil, err
	}
	if m.NotificationsDispatched, err = meter.Int64Counter("portal.notifications.dispatched",
		metric.WithDescription("Notifications dispatched")); err != nil {
		return nil, err
	}
	if m.EmergencyBroadcasts, err = meter.Int64Counter("portal.wildlife.emergency_broadcasts",
		metric.WithDescription("Immediate-threat alerts fanned out to forest officers")); err != nil {
		return nil, err
	}

	return m, nil
}
