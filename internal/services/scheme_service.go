package services

import (
	"context"
	"fmt"

	"vetportal/internal/idgen"
	"vetportal/internal/logging"
	"vetportal/internal/observability"
	"vetportal/internal/repository"
	"vetportal/pkg/models"
)

// SchemeDocumentInput is one uploaded supporting document.
type SchemeDocumentInput struct {
	Type string `json:"type"`
	URL  string `json:"url"`
	Name string `json:"name"`
}

// SchemeApplicationInput is the submission payload for a scheme application.
type SchemeApplicationInput struct {
	ApplicantName   string                `json:"applicantName"`
	FatherName      string                `json:"fatherName"`
	AadhaarNumber   string                `json:"aadhaarNumber"`
	Phone           string                `json:"phone"`
	Email           *string               `json:"email,omitempty"`
	Village         string                `json:"village"`
	Block           string                `json:"block"`
	District        string                `json:"district"`
	Pincode         string                `json:"pincode"`
	SchemeID        string                `json:"schemeId"`
	ProjectCost     float64               `json:"projectCost"`
	RequestedAmount float64               `json:"requestedAmount"`
	AnimalType      string                `json:"animalType"`
	CurrentAnimals  int                   `json:"currentAnimals"`
	ProposedAnimals int                   `json:"proposedAnimals"`
	Experience      string                `json:"experience"`
	BankName        string                `json:"bankName"`
	AccountNumber   string                `json:"accountNumber"`
	IFSCCode        string                `json:"ifscCode"`
	HasLand         bool                  `json:"hasLand"`
	LandArea        *float64              `json:"landArea,omitempty"`
	PreviousScheme  bool                  `json:"previousScheme"`
	Category        string                `json:"category"`
	Documents       []SchemeDocumentInput `json:"documents,omitempty"`
}

// SchemeService owns the scheme catalog and application lifecycle.
type SchemeService struct {
	store    repository.SchemeStore
	notifier Notifier
	logger   *logging.Logger
	metrics  *observability.Metrics
}

// NewSchemeService creates a new SchemeService.
func NewSchemeService(store repository.SchemeStore, notifier Notifier, logger *logging.Logger, metrics *observability.Metrics) *SchemeService {
	return &SchemeService{store: store, notifier: notifier, logger: logger, metrics: metrics}
}

// CreateApplication submits a new scheme application with its documents in
// one transaction, then notifies the applicant.
func (s *SchemeService) CreateApplication(ctx context.Context, input SchemeApplicationInput) (string, error) {
	app := &models.SchemeApplication{
		ApplicationID:   idgen.NewReportID(idgen.PrefixScheme),
		SchemeID:        input.SchemeID,
		ApplicantName:   input.ApplicantName,
		FatherName:      input.FatherName,
		AadhaarNumber:   input.AadhaarNumber,
		Phone:           input.Phone,
		Email:           input.Email,
		Village:         input.Village,
		Block:           input.Block,
		District:        input.District,
		Pincode:         input.Pincode,
		ProjectCost:     input.ProjectCost,
		RequestedAmount: input.RequestedAmount,
		AnimalType:      input.AnimalType,
		CurrentAnimals:  input.CurrentAnimals,
		ProposedAnimals: input.ProposedAnimals,
		Experience:      input.Experience,
		BankName:        input.BankName,
		AccountNumber:   input.AccountNumber,
		IFSCCode:        input.IFSCCode,
		HasLand:         input.HasLand,
		LandArea:        input.LandArea,
		PreviousScheme:  input.PreviousScheme,
		Category:        input.Category,
	}

	var docs []models.SchemeDocument
	for _, d := range input.Documents {
		docs = append(docs, models.SchemeDocument{
			DocumentType: d.Type,
			DocumentURL:  d.URL,
			DocumentName: d.Name,
		})
	}

	if err := s.store.CreateApplication(ctx, app, docs); err != nil {
		return "", fmt.Errorf("failed to create scheme application: %w", err)
	}
	s.metrics.ApplicationsSubmitted.Add(ctx, 1)

	s.notifier.Dispatch(ctx, NotificationInput{
		Type:        "scheme_application_created",
		Title:       "Scheme Application Submitted",
		Message:     fmt.Sprintf("Your scheme application %s has been submitted successfully. Processing time: 15-30 working days.", app.ApplicationID),
		Phone:       input.Phone,
		ReferenceID: app.ApplicationID,
	})

	return app.ApplicationID, nil
}

// Schemes returns the active scheme catalog localized to lang.
func (s *SchemeService) Schemes(ctx context.Context, lang string) ([]*models.Scheme, error) {
	schemes, err := s.store.ListSchemes(ctx, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schemes: %w", err)
	}
	return schemes, nil
}

// ListApplications returns applications matching the filter, newest first.
func (s *SchemeService) ListApplications(ctx context.Context, filter models.SchemeApplicationFilter) ([]*models.SchemeApplication, error) {
	apps, err := s.store.ListApplications(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scheme applications: %w", err)
	}
	return apps, nil
}

// UpdateApplication records a review decision and notifies the applicant.
// Approved applications with an amount include it in the message.
func (s *SchemeService) UpdateApplication(ctx context.Context, applicationID, status, reviewerID string, notes *string, approvedAmount *float64) (*models.SchemeApplication, error) {
	app, err := s.store.UpdateApplicationStatus(ctx, applicationID, status, reviewerID, notes, approvedAmount)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Your scheme application %s has been %s.", applicationID, status)
	if models.ApplicationStatus(status) == models.ApplicationStatusApproved && approvedAmount != nil {
		message += fmt.Sprintf(" Approved amount: ₹%.0f", *approvedAmount)
	}

	s.notifier.Dispatch(ctx, NotificationInput{
		Type:        "scheme_application_updated",
		Title:       "Scheme Application Update",
		Message:     message,
		Phone:       app.Phone,
		ReferenceID: applicationID,
	})

	return app, nil
}

// Track looks up an application; the ID and Aadhaar number must both match.
func (s *SchemeService) Track(ctx context.Context, applicationID, aadhaarNumber string) (*models.SchemeApplication, error) {
	return s.store.TrackApplication(ctx, applicationID, aadhaarNumber)
}
