package models

import "time"

// User is any portal participant: farmers, doctors, forest officers, admins.
type User struct {
	ID                 string    `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	Phone              string    `json:"phone" db:"phone"`
	Village            *string   `json:"village,omitempty" db:"village"`
	Role               Role      `json:"role" db:"role"`
	LanguagePreference string    `json:"language_preference" db:"language_preference"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// Doctor is the veterinary-staff profile attached to a doctor user.
// AvailableDistricts is NULL when the doctor serves every district.
type Doctor struct {
	ID                 string    `json:"id" db:"id"`
	UserID             string    `json:"user_id" db:"user_id"`
	Specialization     *string   `json:"specialization,omitempty" db:"specialization"`
	AvailableDistricts []string  `json:"available_districts,omitempty" db:"available_districts"`
	Rating             float64   `json:"rating" db:"rating"`
	TotalReviews       int       `json:"total_reviews" db:"total_reviews"`
	IsActive           bool      `json:"is_active" db:"is_active"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}

// AnimalType is a reference-catalog row, localized at query time.
type AnimalType struct {
	ID   string  `json:"id" db:"id"`
	Name string  `json:"name" db:"name"`
	Icon *string `json:"icon,omitempty" db:"icon"`
}
