// Package models defines the domain models for the veterinary services portal.
package models

// Severity is the categorical urgency tag on a health report.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// BaseScore returns the base priority score for the severity tier.
// Unknown severities score the same as low.
func (s Severity) BaseScore() int {
	switch s {
	case SeverityCritical:
		return 100
	case SeverityHigh:
		return 75
	case SeverityMedium:
		return 50
	default:
		return 25
	}
}

// RequiresAssignment reports whether a report at this severity should trigger
// doctor auto-assignment on submission.
func (s Severity) RequiresAssignment() bool {
	return s == SeverityCritical || s == SeverityHigh
}

// Urgency is the categorical urgency tag on an appointment booking.
type Urgency string

const (
	UrgencyNormal    Urgency = "normal"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyEmergency Urgency = "emergency"
)

// ThreatLevel is the categorical severity tag on a wildlife sighting.
type ThreatLevel string

const (
	ThreatLow       ThreatLevel = "low"
	ThreatMedium    ThreatLevel = "medium"
	ThreatHigh      ThreatLevel = "high"
	ThreatImmediate ThreatLevel = "immediate"
)

// Rank is the canonical response ordering: lower rank means more urgent.
// Every query and comparison in the system uses this single ordering.
func (t ThreatLevel) Rank() int {
	switch t {
	case ThreatImmediate:
		return 1
	case ThreatHigh:
		return 2
	case ThreatMedium:
		return 3
	default:
		return 4
	}
}

// RequiresDispatch reports whether a sighting at this threat level should
// trigger forest-officer auto-assignment.
func (t ThreatLevel) RequiresDispatch() bool {
	return t == ThreatImmediate || t == ThreatHigh
}

// HealthReportStatus values for the report lifecycle. Transitions are not
// validated; any string written by an update call is stored as-is.
type HealthReportStatus string

const (
	ReportStatusSubmitted      HealthReportStatus = "submitted"
	ReportStatusAssigned       HealthReportStatus = "assigned"
	ReportStatusUnderTreatment HealthReportStatus = "under_treatment"
	ReportStatusCompleted      HealthReportStatus = "completed"
	ReportStatusCancelled      HealthReportStatus = "cancelled"
)

// AppointmentStatus values for the booking lifecycle.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// ApplicationStatus values for the scheme-application lifecycle.
type ApplicationStatus string

const (
	ApplicationStatusSubmitted   ApplicationStatus = "submitted"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusApproved    ApplicationStatus = "approved"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// SightingStatus values for the wildlife-sighting lifecycle.
type SightingStatus string

const (
	SightingStatusReported      SightingStatus = "reported"
	SightingStatusInvestigating SightingStatus = "investigating"
	SightingStatusResolved      SightingStatus = "resolved"
)

// Role values for portal users.
type Role string

const (
	RoleFarmer        Role = "farmer"
	RoleDoctor        Role = "doctor"
	RoleForestOfficer Role = "forest_officer"
	RoleAdmin         Role = "admin"
)

// Languages supported by the portal. Localized queries validate against this
// set before a language code is ever interpolated into a column name.
const (
	LangEnglish  = "en"
	LangHindi    = "hi"
	LangSanthali = "sat"
	LangMundari  = "mun"
)

// SupportedLanguage reports whether lang is one of the portal languages.
func SupportedLanguage(lang string) bool {
	switch lang {
	case LangEnglish, LangHindi, LangSanthali, LangMundari:
		return true
	}
	return false
}
