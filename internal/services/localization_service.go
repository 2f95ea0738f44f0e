package services

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"vetportal/internal/logging"
	"vetportal/internal/repository"
	"vetportal/pkg/models"
)

//go:embed translations/*.json
var translationFiles embed.FS

// LocalizationService serves UI translations from the embedded per-language
// JSON files and localized table-backed content through the store.
type LocalizationService struct {
	store        repository.LocalizationStore
	logger       *logging.Logger
	translations map[string]map[string]string
}

// NewLocalizationService loads the translation cache and wires the store.
// A missing or malformed language file logs a warning and leaves that
// language empty; lookups then fall back to English.
func NewLocalizationService(store repository.LocalizationStore, logger *logging.Logger) *LocalizationService {
	s := &LocalizationService{
		store:        store,
		logger:       logger,
		translations: make(map[string]map[string]string),
	}

	for _, lang := range []string{models.LangEnglish, models.LangHindi, models.LangSanthali, models.LangMundari} {
		data, err := translationFiles.ReadFile("translations/" + lang + ".json")
		if err != nil {
			logger.Warn("translation file missing", "language", lang, "error", err)
			s.translations[lang] = map[string]string{}
			continue
		}
		table := make(map[string]string)
		if err := json.Unmarshal(data, &table); err != nil {
			logger.Warn("translation file malformed", "language", lang, "error", err)
			table = map[string]string{}
		}
		s.translations[lang] = table
	}

	return s
}

// Get returns the translation for key in lang, falling back to English and
// then to the key itself. {{param}} placeholders are substituted from params.
func (s *LocalizationService) Get(key, lang string, params map[string]string) string {
	table, ok := s.translations[lang]
	if !ok {
		table = s.translations[models.LangEnglish]
	}

	translation, ok := table[key]
	if !ok {
		if english, found := s.translations[models.LangEnglish][key]; found {
			translation = english
		} else {
			translation = key
		}
	}

	for param, value := range params {
		translation = strings.ReplaceAll(translation, "{{"+param+"}}", value)
	}
	return translation
}

// GetBulk resolves a set of keys at once, for the translations endpoint.
func (s *LocalizationService) GetBulk(keys []string, lang string) map[string]string {
	result := make(map[string]string, len(keys))
	for _, key := range keys {
		result[key] = s.Get(key, lang, nil)
	}
	return result
}

// SystemSettings returns all settings localized to lang.
func (s *LocalizationService) SystemSettings(ctx context.Context, lang string) (map[string]string, error) {
	settings, err := s.store.SystemSettings(ctx, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch system settings: %w", err)
	}
	return settings, nil
}

// AnimalTypes returns the animal-type catalog localized to lang.
func (s *LocalizationService) AnimalTypes(ctx context.Context, lang string) ([]*models.AnimalType, error) {
	types, err := s.store.LocalizedAnimalTypes(ctx, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch animal types: %w", err)
	}
	return types, nil
}

// UserLanguage returns a user's stored preference, defaulting to English.
func (s *LocalizationService) UserLanguage(ctx context.Context, userID string) (string, error) {
	return s.store.UserLanguage(ctx, userID)
}

// UpdateUserLanguage stores a user's language preference.
func (s *LocalizationService) UpdateUserLanguage(ctx context.Context, userID, lang string) (string, error) {
	return s.store.UpdateUserLanguage(ctx, userID, lang)
}
