package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetportal/internal/logging"
)

func TestDispatchPersistsForKnownPhone(t *testing.T) {
	store := &fakeNotificationStore{usersByPhone: map[string]string{"9431000400": "user-1"}}
	svc := NewNotificationService(store, logging.NewNop(), testMetrics(t))

	svc.Dispatch(context.Background(), NotificationInput{
		Type:        "health_report_created",
		Title:       "Health Report Submitted",
		Message:     "Your report has been submitted.",
		Phone:       "9431000400",
		ReferenceID: "VET-1234567890123456",
	})

	require.Len(t, store.saved, 1)
	assert.Equal(t, "user-1", store.saved[0].UserID)
	require.NotNil(t, store.saved[0].ReferenceID)
	assert.Equal(t, "VET-1234567890123456", *store.saved[0].ReferenceID)
}

func TestDispatchUnknownPhoneStoresNothing(t *testing.T) {
	store := &fakeNotificationStore{}
	svc := NewNotificationService(store, logging.NewNop(), testMetrics(t))

	// No account for this phone: no row, no panic, dispatch still counts.
	svc.Dispatch(context.Background(), NotificationInput{
		Type:    "appointment_created",
		Title:   "Appointment Booked",
		Message: "Your appointment has been scheduled.",
		Phone:   "0000000000",
	})

	assert.Empty(t, store.saved)
}

func TestDispatchDirectUserIDSkipsPhoneLookup(t *testing.T) {
	store := &fakeNotificationStore{}
	svc := NewNotificationService(store, logging.NewNop(), testMetrics(t))

	svc.Dispatch(context.Background(), NotificationInput{
		Type:    "report_assigned",
		Title:   "New Health Report Assigned",
		Message: "A report has been assigned to you.",
		UserID:  "doctor-1",
	})

	require.Len(t, store.saved, 1)
	assert.Equal(t, "doctor-1", store.saved[0].UserID)
	assert.Nil(t, store.saved[0].ReferenceID)
}
