package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vetportal/internal/logging"
)

func newLocalizationService() *LocalizationService {
	return NewLocalizationService(&fakeLocalizationStore{}, logging.NewNop())
}

func TestGetTranslation(t *testing.T) {
	svc := newLocalizationService()

	assert.Equal(t, "Health Reports", svc.Get("nav.health_reports", "en", nil))
	assert.Equal(t, "स्वास्थ्य रिपोर्ट", svc.Get("nav.health_reports", "hi", nil))
	assert.Equal(t, "ᱦᱚᱲᱢᱚ ᱨᱤᱯᱚᱴ", svc.Get("nav.health_reports", "sat", nil))
}

func TestGetFallsBackToEnglish(t *testing.T) {
	svc := newLocalizationService()

	// Key present in en but not in the smaller sat table.
	assert.Equal(t, svc.Get("severity.critical", "en", nil), svc.Get("severity.critical", "sat", nil))

	// Unknown language falls back to the English table.
	assert.Equal(t, "Schemes", svc.Get("nav.schemes", "fr", nil))
}

func TestGetUnknownKeyReturnsKey(t *testing.T) {
	svc := newLocalizationService()

	assert.Equal(t, "no.such.key", svc.Get("no.such.key", "en", nil))
	assert.Equal(t, "no.such.key", svc.Get("no.such.key", "hi", nil))
}

func TestGetSubstitutesParams(t *testing.T) {
	svc := newLocalizationService()

	got := svc.Get("message.report_submitted", "en", map[string]string{"reportId": "VET-123"})
	assert.Equal(t, "Your report VET-123 has been submitted.", got)

	got = svc.Get("message.appointment_booked", "hi", map[string]string{
		"bookingId": "VET-456",
		"date":      "2026-09-01",
	})
	assert.Contains(t, got, "VET-456")
	assert.Contains(t, got, "2026-09-01")
}

func TestGetBulk(t *testing.T) {
	svc := newLocalizationService()

	got := svc.GetBulk([]string{"form.submit", "form.village", "missing.key"}, "hi")
	assert.Equal(t, map[string]string{
		"form.submit":  "जमा करें",
		"form.village": "गांव",
		"missing.key":  "missing.key",
	}, got)
}
