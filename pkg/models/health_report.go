package models

import "time"

// HealthReport is a farmer-submitted animal health report.
type HealthReport struct {
	ID                  string             `json:"id" db:"id"`
	ReportID            string             `json:"report_id" db:"report_id"`
	FarmerName          string             `json:"farmer_name" db:"farmer_name"`
	Phone               string             `json:"phone" db:"phone"`
	Village             string             `json:"village" db:"village"`
	AnimalType          string             `json:"animal_type" db:"animal_type"`
	AnimalCount         int                `json:"animal_count" db:"animal_count"`
	Symptoms            string             `json:"symptoms" db:"symptoms"`
	Severity            Severity           `json:"severity" db:"severity"`
	Duration            *string            `json:"duration,omitempty" db:"duration"`
	LocationCoordinates *string            `json:"location_coordinates,omitempty" db:"location_coordinates"`
	PriorityScore       int                `json:"priority_score" db:"priority_score"`
	Status              HealthReportStatus `json:"status" db:"status"`
	AssignedDoctorID    *string            `json:"assigned_doctor_id,omitempty" db:"assigned_doctor_id"`
	Notes               *string            `json:"notes,omitempty" db:"notes"`
	CreatedAt           time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at" db:"updated_at"`

	// Joined columns, populated by list queries.
	AnimalName         *string `json:"animal_name,omitempty" db:"animal_name"`
	AnimalIcon         *string `json:"animal_icon,omitempty" db:"animal_icon"`
	AssignedDoctorName *string `json:"assigned_doctor_name,omitempty" db:"assigned_doctor_name"`
}

// HealthReportPhoto is an attachment row written in the same transaction as
// its parent report.
type HealthReportPhoto struct {
	ID        string    `json:"id" db:"id"`
	ReportID  string    `json:"report_id" db:"report_id"`
	PhotoURL  string    `json:"photo_url" db:"photo_url"`
	PhotoName string    `json:"photo_name" db:"photo_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// HealthReportFilter narrows list queries. Zero values mean "no filter".
type HealthReportFilter struct {
	Status   string
	Severity string
	Phone    string
	Village  string
	Limit    int
}
