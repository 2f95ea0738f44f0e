package models

import "time"

// Appointment is a veterinary visit booking. Dates and times travel as
// "YYYY-MM-DD" / "HH:MM" strings and are cast at the SQL boundary.
type Appointment struct {
	ID               string            `json:"id" db:"id"`
	BookingID        string            `json:"booking_id" db:"booking_id"`
	FarmerName       string            `json:"farmer_name" db:"farmer_name"`
	Phone            string            `json:"phone" db:"phone"`
	Village          string            `json:"village" db:"village"`
	Address          string            `json:"address" db:"address"`
	ServiceType      string            `json:"service_type" db:"service_type"`
	VisitType        string            `json:"visit_type" db:"visit_type"`
	AnimalType       string            `json:"animal_type" db:"animal_type"`
	AnimalCount      int               `json:"animal_count" db:"animal_count"`
	Description      *string           `json:"description,omitempty" db:"description"`
	PreferredDate    string            `json:"preferred_date" db:"preferred_date"`
	PreferredTime    string            `json:"preferred_time" db:"preferred_time"`
	AlternateDate    *string           `json:"alternate_date,omitempty" db:"alternate_date"`
	AlternateTime    *string           `json:"alternate_time,omitempty" db:"alternate_time"`
	Urgency          Urgency           `json:"urgency" db:"urgency"`
	Status           AppointmentStatus `json:"status" db:"status"`
	AssignedDoctorID *string           `json:"assigned_doctor_id,omitempty" db:"assigned_doctor_id"`
	Notes            *string           `json:"notes,omitempty" db:"notes"`
	CreatedAt        time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at" db:"updated_at"`

	// Joined columns, populated by list queries.
	AnimalName         *string `json:"animal_name,omitempty" db:"animal_name"`
	AnimalIcon         *string `json:"animal_icon,omitempty" db:"animal_icon"`
	AssignedDoctorName *string `json:"assigned_doctor_name,omitempty" db:"assigned_doctor_name"`
	DoctorPhone        *string `json:"doctor_phone,omitempty" db:"doctor_phone"`
}

// AppointmentFilter narrows list queries. Zero values mean "no filter".
type AppointmentFilter struct {
	Status   string
	Phone    string
	DoctorID string
	Date     string
}

// AvailabilityWindow is one weekly availability slot for a doctor.
type AvailabilityWindow struct {
	DayOfWeek   int    `json:"day_of_week" db:"day_of_week"`
	StartTime   string `json:"start_time" db:"start_time"`
	EndTime     string `json:"end_time" db:"end_time"`
	IsAvailable bool   `json:"is_available" db:"is_available"`
}

// BookedSlot is an occupied time on a doctor's calendar for a given date.
type BookedSlot struct {
	PreferredTime string  `json:"preferred_time" db:"preferred_time"`
	ActualTime    *string `json:"actual_time,omitempty" db:"actual_time"`
}

// DoctorAvailability is the weekly windows plus booked slots for one date.
type DoctorAvailability struct {
	Availability []AvailabilityWindow `json:"availability"`
	BookedSlots  []BookedSlot         `json:"booked_slots"`
}
