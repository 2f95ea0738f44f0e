package models

import "time"

// Scheme is a government livestock subsidy scheme, localized at query time.
type Scheme struct {
	ID                  string  `json:"id" db:"id"`
	Name                string  `json:"name" db:"name"`
	Description         *string `json:"description,omitempty" db:"description"`
	Category            string  `json:"category" db:"category"`
	SubsidyAmount       float64 `json:"subsidy_amount" db:"subsidy_amount"`
	EligibilityCriteria *string `json:"eligibility_criteria,omitempty" db:"eligibility_criteria"`
	RequiredDocuments   *string `json:"required_documents,omitempty" db:"required_documents"`
	IsActive            bool    `json:"is_active" db:"is_active"`
}

// SchemeApplication is a farmer's application for a scheme.
type SchemeApplication struct {
	ID              string            `json:"id" db:"id"`
	ApplicationID   string            `json:"application_id" db:"application_id"`
	SchemeID        string            `json:"scheme_id" db:"scheme_id"`
	ApplicantName   string            `json:"applicant_name" db:"applicant_name"`
	FatherName      string            `json:"father_name" db:"father_name"`
	AadhaarNumber   string            `json:"aadhaar_number" db:"aadhaar_number"`
	Phone           string            `json:"phone" db:"phone"`
	Email           *string           `json:"email,omitempty" db:"email"`
	Village         string            `json:"village" db:"village"`
	Block           string            `json:"block" db:"block"`
	District        string            `json:"district" db:"district"`
	Pincode         string            `json:"pincode" db:"pincode"`
	ProjectCost     float64           `json:"project_cost" db:"project_cost"`
	RequestedAmount float64           `json:"requested_amount" db:"requested_amount"`
	AnimalType      string            `json:"animal_type" db:"animal_type"`
	CurrentAnimals  int               `json:"current_animals" db:"current_animals"`
	ProposedAnimals int               `json:"proposed_animals" db:"proposed_animals"`
	Experience      string            `json:"experience" db:"experience"`
	BankName        string            `json:"bank_name" db:"bank_name"`
	AccountNumber   string            `json:"account_number" db:"account_number"`
	IFSCCode        string            `json:"ifsc_code" db:"ifsc_code"`
	HasLand         bool              `json:"has_land" db:"has_land"`
	LandArea        *float64          `json:"land_area,omitempty" db:"land_area"`
	PreviousScheme  bool              `json:"previous_scheme" db:"previous_scheme"`
	Category        string            `json:"category" db:"category"`
	Status          ApplicationStatus `json:"status" db:"status"`
	ReviewedBy      *string           `json:"reviewed_by,omitempty" db:"reviewed_by"`
	ReviewNotes     *string           `json:"review_notes,omitempty" db:"review_notes"`
	ApprovedAmount  *float64          `json:"approved_amount,omitempty" db:"approved_amount"`
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at" db:"updated_at"`

	// Joined columns, populated by list queries.
	SchemeName   *string `json:"scheme_name,omitempty" db:"scheme_name"`
	AnimalName   *string `json:"animal_name,omitempty" db:"animal_name"`
	ReviewerName *string `json:"reviewer_name,omitempty" db:"reviewer_name"`
}

// SchemeDocument is an uploaded supporting document for an application.
type SchemeDocument struct {
	ID            string    `json:"id" db:"id"`
	ApplicationID string    `json:"application_id" db:"application_id"`
	DocumentType  string    `json:"document_type" db:"document_type"`
	DocumentURL   string    `json:"document_url" db:"document_url"`
	DocumentName  string    `json:"document_name" db:"document_name"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// SchemeApplicationFilter narrows list queries. Zero values mean "no filter".
type SchemeApplicationFilter struct {
	Status   string
	Phone    string
	District string
	SchemeID string
	Limit    int
}
