package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetportal/internal/logging"
	"vetportal/internal/repository"
)

func applicationInput() SchemeApplicationInput {
	return SchemeApplicationInput{
		ApplicantName:   "Phulmani Kumari",
		FatherName:      "Lakhan Kumar",
		AadhaarNumber:   "123456789012",
		Phone:           "9431000600",
		Village:         "Simdega",
		Block:           "Simdega",
		District:        "Simdega",
		Pincode:         "835223",
		SchemeID:        "goat-rearing",
		ProjectCost:     100000,
		RequestedAmount: 75000,
		AnimalType:      "goat",
		CurrentAnimals:  2,
		ProposedAnimals: 11,
		Experience:      "3 years",
		BankName:        "State Bank",
		AccountNumber:   "12345678901",
		IFSCCode:        "SBIN0000001",
		Category:        "general",
		Documents: []SchemeDocumentInput{
			{Type: "aadhaar", URL: "https://cdn.example/a.pdf", Name: "aadhaar.pdf"},
		},
	}
}

func TestSchemeApplicationCreate(t *testing.T) {
	store := &fakeSchemeStore{}
	notifier := &recordingNotifier{}
	svc := NewSchemeService(store, notifier, logging.NewNop(), testMetrics(t))

	applicationID, err := svc.CreateApplication(context.Background(), applicationInput())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(applicationID, "SCH-"))
	assert.Len(t, store.docs, 1)

	confirmations := notifier.byType("scheme_application_created")
	require.Len(t, confirmations, 1)
	assert.Contains(t, confirmations[0].Message, "15-30 working days")
}

func TestSchemeApprovalMentionsAmount(t *testing.T) {
	store := &fakeSchemeStore{}
	notifier := &recordingNotifier{}
	svc := NewSchemeService(store, notifier, logging.NewNop(), testMetrics(t))

	applicationID, err := svc.CreateApplication(context.Background(), applicationInput())
	require.NoError(t, err)

	amount := 60000.0
	app, err := svc.UpdateApplication(context.Background(), applicationID, "approved", "reviewer-1", nil, &amount)
	require.NoError(t, err)
	require.NotNil(t, app.ApprovedAmount)

	updates := notifier.byType("scheme_application_updated")
	require.Len(t, updates, 1)
	assert.Contains(t, updates[0].Message, "₹60000")
}

func TestSchemeRejectionOmitsAmount(t *testing.T) {
	store := &fakeSchemeStore{}
	notifier := &recordingNotifier{}
	svc := NewSchemeService(store, notifier, logging.NewNop(), testMetrics(t))

	applicationID, err := svc.CreateApplication(context.Background(), applicationInput())
	require.NoError(t, err)

	_, err = svc.UpdateApplication(context.Background(), applicationID, "rejected", "reviewer-1", nil, nil)
	require.NoError(t, err)

	updates := notifier.byType("scheme_application_updated")
	require.Len(t, updates, 1)
	assert.NotContains(t, updates[0].Message, "₹")
}

func TestSchemeTrackRequiresBothCredentials(t *testing.T) {
	store := &fakeSchemeStore{}
	svc := NewSchemeService(store, &recordingNotifier{}, logging.NewNop(), testMetrics(t))

	applicationID, err := svc.CreateApplication(context.Background(), applicationInput())
	require.NoError(t, err)

	app, err := svc.Track(context.Background(), applicationID, "123456789012")
	require.NoError(t, err)
	assert.Equal(t, applicationID, app.ApplicationID)

	_, err = svc.Track(context.Background(), applicationID, "999999999999")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
