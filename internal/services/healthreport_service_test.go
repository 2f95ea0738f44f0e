package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetportal/internal/logging"
	"vetportal/internal/observability"
	"vetportal/internal/repository"
	"vetportal/pkg/models"
)

func testMetrics(t *testing.T) *observability.Metrics {
	t.Helper()
	metrics, err := observability.NewMetrics()
	require.NoError(t, err)
	return metrics
}

func TestPriorityScore(t *testing.T) {
	tests := []struct {
		name     string
		severity models.Severity
		count    int
		want     int
	}{
		{"single low animal", models.SeverityLow, 1, 28},
		{"medium herd at cap boundary", models.SeverityMedium, 10, 100},
		{"high half multiplier", models.SeverityHigh, 5, 113},
		{"critical large outbreak hits cap", models.SeverityCritical, 20, 300},
		{"multiplier capped beyond twenty animals", models.SeverityCritical, 500, 300},
		{"zero count keeps base score", models.SeverityLow, 0, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriorityScore(tt.severity, tt.count))
		})
	}
}

func TestPriorityScoreMonotonic(t *testing.T) {
	// More animals never lowers the score.
	prev := 0
	for count := 0; count <= 30; count++ {
		score := PriorityScore(models.SeverityHigh, count)
		assert.GreaterOrEqual(t, score, prev, "count %d", count)
		prev = score
	}
}

func TestHealthReportCreateAssignsOnHighSeverity(t *testing.T) {
	store := &fakeHealthReportStore{assignID: "doctor-1"}
	notifier := &recordingNotifier{}
	svc := NewHealthReportService(store, notifier, logging.NewNop(), testMetrics(t))

	reportID, err := svc.Create(context.Background(), HealthReportInput{
		FarmerName:  "Birsa Oraon",
		Phone:       "9431000100",
		Village:     "Khunti",
		AnimalType:  "cow",
		AnimalCount: 4,
		Symptoms:    "fever, refusing feed",
		Severity:    "critical",
		Photos:      []string{"https://cdn.example/photo1.jpg"},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(reportID, "VET-"))

	assert.Equal(t, 1, store.assignCalls)
	assert.Len(t, store.photos, 1)
	assert.Equal(t, PriorityScore(models.SeverityCritical, 4), store.created.PriorityScore)

	// The farmer confirmation and the doctor alert both went out.
	assert.Len(t, notifier.byType("health_report_created"), 1)
	assert.Len(t, notifier.byType("report_assigned"), 1)
}

func TestHealthReportCreateSkipsAssignmentOnLowSeverity(t *testing.T) {
	store := &fakeHealthReportStore{}
	notifier := &recordingNotifier{}
	svc := NewHealthReportService(store, notifier, logging.NewNop(), testMetrics(t))

	_, err := svc.Create(context.Background(), HealthReportInput{
		FarmerName:  "Mangal Munda",
		Phone:       "9431000101",
		Village:     "Gumla",
		AnimalType:  "goat",
		AnimalCount: 1,
		Symptoms:    "mild limp",
		Severity:    "low",
	})
	require.NoError(t, err)

	assert.Zero(t, store.assignCalls)
	assert.Empty(t, notifier.byType("report_assigned"))
}

func TestHealthReportCreateSurvivesAssignmentMiss(t *testing.T) {
	store := &fakeHealthReportStore{assignErr: repository.ErrNoCandidate}
	notifier := &recordingNotifier{}
	svc := NewHealthReportService(store, notifier, logging.NewNop(), testMetrics(t))

	reportID, err := svc.Create(context.Background(), HealthReportInput{
		FarmerName:  "Somra Ho",
		Phone:       "9431000102",
		Village:     "Remote Village",
		AnimalType:  "buffalo",
		AnimalCount: 2,
		Symptoms:    "bloat",
		Severity:    "high",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reportID)

	// Submission succeeded and the farmer was still notified.
	assert.Equal(t, 1, store.assignCalls)
	assert.Len(t, notifier.byType("health_report_created"), 1)
	assert.Empty(t, notifier.byType("report_assigned"))
}

func TestHealthReportUpdateNotifiesFarmer(t *testing.T) {
	store := &fakeHealthReportStore{}
	notifier := &recordingNotifier{}
	svc := NewHealthReportService(store, notifier, logging.NewNop(), testMetrics(t))

	reportID, err := svc.Create(context.Background(), HealthReportInput{
		FarmerName: "Etwa Oraon", Phone: "9431000103", Village: "Ranchi",
		AnimalType: "cow", AnimalCount: 1, Symptoms: "cough", Severity: "medium",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), reportID, "under_treatment", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusUnderTreatment, updated.Status)
	assert.Len(t, notifier.byType("health_report_updated"), 1)
}

func TestHealthReportUpdateUnknownID(t *testing.T) {
	svc := NewHealthReportService(&fakeHealthReportStore{}, &recordingNotifier{}, logging.NewNop(), testMetrics(t))

	_, err := svc.Update(context.Background(), "VET-0000000000000000", "completed", nil, nil)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
