package models

import "time"

// WildlifeSighting is a citizen-reported wildlife encounter.
type WildlifeSighting struct {
	ID                  string         `json:"id" db:"id"`
	ReportID            string         `json:"report_id" db:"report_id"`
	ReporterName        string         `json:"reporter_name" db:"reporter_name"`
	Phone               string         `json:"phone" db:"phone"`
	Village             string         `json:"village" db:"village"`
	AnimalType          string         `json:"animal_type" db:"animal_type"`
	NumberOfAnimals     int            `json:"number_of_animals" db:"number_of_animals"`
	BehaviorDescription string         `json:"behavior_description" db:"behavior_description"`
	ThreatLevel         ThreatLevel    `json:"threat_level" db:"threat_level"`
	ExactLocation       string         `json:"exact_location" db:"exact_location"`
	GPSCoordinates      *string        `json:"gps_coordinates,omitempty" db:"gps_coordinates"`
	SightingDate        string         `json:"sighting_date" db:"sighting_date"`
	SightingTime        string         `json:"sighting_time" db:"sighting_time"`
	WitnessCount        int            `json:"witness_count" db:"witness_count"`
	PreviousSightings   bool           `json:"previous_sightings" db:"previous_sightings"`
	DamageReported      bool           `json:"damage_reported" db:"damage_reported"`
	DamageDescription   *string        `json:"damage_description,omitempty" db:"damage_description"`
	PeopleAtRisk        int            `json:"people_at_risk" db:"people_at_risk"`
	EvacuationNeeded    bool           `json:"evacuation_needed" db:"evacuation_needed"`
	ImmediateHelp       bool           `json:"immediate_help" db:"immediate_help"`
	Status              SightingStatus `json:"status" db:"status"`
	AssignedOfficerID   *string        `json:"assigned_officer_id,omitempty" db:"assigned_officer_id"`
	ResponseNotes       *string        `json:"response_notes,omitempty" db:"response_notes"`
	CreatedAt           time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at" db:"updated_at"`

	// Joined columns, populated by list queries.
	AssignedOfficerName *string `json:"assigned_officer_name,omitempty" db:"assigned_officer_name"`
	OfficerPhone        *string `json:"officer_phone,omitempty" db:"officer_phone"`
}

// WildlifePhoto is an attachment row written in the same transaction as its
// parent sighting.
type WildlifePhoto struct {
	ID         string    `json:"id" db:"id"`
	SightingID string    `json:"sighting_id" db:"sighting_id"`
	PhotoURL   string    `json:"photo_url" db:"photo_url"`
	PhotoName  string    `json:"photo_name" db:"photo_name"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// WildlifeSightingFilter narrows list queries. Zero values mean "no filter".
type WildlifeSightingFilter struct {
	ThreatLevel string
	Status      string
	Phone       string
	Village     string
	AnimalType  string
	Limit       int
}

// ThreatLevelCount is one bucket of the 30-day threat-level statistics.
type ThreatLevelCount struct {
	ThreatLevel ThreatLevel `json:"threat_level" db:"threat_level"`
	Count       int         `json:"count" db:"count"`
}

// AnimalTypeCount is one bucket of the 30-day animal-type statistics.
type AnimalTypeCount struct {
	AnimalType string `json:"animal_type" db:"animal_type"`
	Count      int    `json:"count" db:"count"`
}

// WildlifeStatistics aggregates the sighting dashboards.
type WildlifeStatistics struct {
	ThreatLevelStats   []ThreatLevelCount  `json:"threat_level_stats"`
	AnimalTypeStats    []AnimalTypeCount   `json:"animal_type_stats"`
	RecentHighPriority []*WildlifeSighting `json:"recent_high_priority"`
}
