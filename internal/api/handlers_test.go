package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetportal/internal/logging"
	"vetportal/internal/observability"
	"vetportal/internal/repository"
	"vetportal/internal/services"
	"vetportal/pkg/models"
)

type stubHealthReportStore struct {
	reports []*models.HealthReport
}

func (s *stubHealthReportStore) Create(_ context.Context, report *models.HealthReport, _ []models.HealthReportPhoto) error {
	report.ID = "hr-1"
	s.reports = append(s.reports, report)
	return nil
}

func (s *stubHealthReportStore) List(_ context.Context, _ models.HealthReportFilter) ([]*models.HealthReport, error) {
	return s.reports, nil
}

func (s *stubHealthReportStore) UpdateStatus(_ context.Context, reportID, status string, _, _ *string) (*models.HealthReport, error) {
	for _, r := range s.reports {
		if r.ReportID == reportID {
			r.Status = models.HealthReportStatus(status)
			return r, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubHealthReportStore) AssignDoctor(_ context.Context, _, _ string) (string, error) {
	return "", repository.ErrNoCandidate
}

type stubNotificationStore struct{}

func (stubNotificationStore) FindUserIDByPhone(_ context.Context, _ string) (string, error) {
	return "", repository.ErrNotFound
}
func (stubNotificationStore) Save(_ context.Context, _ *models.Notification) error { return nil }
func (stubNotificationStore) ListForUser(_ context.Context, _, _ string, _ int) ([]*models.Notification, error) {
	return nil, nil
}
func (stubNotificationStore) MarkRead(_ context.Context, _, _ string) error {
	return repository.ErrNotFound
}
func (stubNotificationStore) UnreadCount(_ context.Context, _ string) (int, error) { return 0, nil }

type stubLocalizationStore struct{}

func (stubLocalizationStore) SystemSettings(_ context.Context, _ string) (map[string]string, error) {
	return map[string]string{"helpline_number": "1800-425-1660"}, nil
}
func (stubLocalizationStore) LocalizedAnimalTypes(_ context.Context, _ string) ([]*models.AnimalType, error) {
	return nil, nil
}
func (stubLocalizationStore) UserLanguage(_ context.Context, _ string) (string, error) {
	return "en", nil
}
func (stubLocalizationStore) UpdateUserLanguage(_ context.Context, _, lang string) (string, error) {
	return lang, nil
}

func newTestServer(t *testing.T) (*echo.Echo, *stubHealthReportStore) {
	t.Helper()

	logger := logging.NewNop()
	metrics, err := observability.NewMetrics()
	require.NoError(t, err)

	healthStore := &stubHealthReportStore{}
	notifier := services.NewNotificationService(stubNotificationStore{}, logger, metrics)
	handler := NewHandler(
		services.NewHealthReportService(healthStore, notifier, logger, metrics),
		nil,
		nil,
		nil,
		notifier,
		services.NewLocalizationService(stubLocalizationStore{}, logger),
		logger,
	)

	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(logger)
	handler.RegisterRoutes(e)
	return e, healthStore
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPingAndHealth(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/ping", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ping")

	rec = doRequest(e, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestCreateHealthReportEnvelope(t *testing.T) {
	e, store := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/health-reports", `{
		"farmerName": "Birsa Oraon",
		"phone": "9431000100",
		"village": "Khunti",
		"animalType": "cow",
		"animalCount": 2,
		"symptoms": "fever",
		"severity": "low"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success  bool   `json:"success"`
		ReportID string `json:"reportId"`
		Message  string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.ReportID, "VET-"))
	assert.Equal(t, "Health report submitted successfully", resp.Message)

	require.Len(t, store.reports, 1)
}

func TestListHealthReportsEnvelope(t *testing.T) {
	e, _ := newTestServer(t)

	doRequest(e, http.MethodPost, "/api/health-reports", `{
		"farmerName": "Mangal Munda", "phone": "9431000101", "village": "Gumla",
		"animalType": "goat", "animalCount": 1, "symptoms": "limp", "severity": "low"
	}`)

	rec := doRequest(e, http.MethodGet, "/api/health-reports?village=Gumla", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 1)
}

func TestUpdateUnknownReportReturnsErrorEnvelope(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPut, "/api/health-reports/VET-0000000000000000",
		`{"status": "completed"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
}

func TestTranslationsEndpoint(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/translations?language=hi&keys=form.submit,form.village", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "जमा करें", resp.Data["form.submit"])

	// No keys param yields an empty table, not an error.
	rec = doRequest(e, http.MethodGet, "/api/translations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp.Data = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)
}

func TestUpdateUserLanguageValidation(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPut, "/api/user-language", `{"userId": "user-1"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "required")

	rec = doRequest(e, http.MethodPut, "/api/user-language", `{"userId": "user-1", "language": "hi"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"language":"hi"`)
}
