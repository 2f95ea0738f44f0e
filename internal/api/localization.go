package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// UpdateUserLanguageRequest sets a user's preferred language.
type UpdateUserLanguageRequest struct {
	UserID   string `json:"userId"`
	Language string `json:"language"`
}

// languageParam reads the ?language= query param, defaulting to English.
func languageParam(c echo.Context) string {
	if lang := c.QueryParam("language"); lang != "" {
		return lang
	}
	return "en"
}

// HandleTranslations resolves a comma-separated key list to UI strings.
// An absent keys param yields an empty table.
// (GET /api/translations)
func (h *Handler) HandleTranslations(c echo.Context) error {
	keys := c.QueryParam("keys")
	if keys == "" {
		return dataResponse(c, map[string]string{})
	}
	return dataResponse(c, h.localization.GetBulk(strings.Split(keys, ","), languageParam(c)))
}

// HandleSystemSettings returns localized system settings.
// (GET /api/system-settings)
func (h *Handler) HandleSystemSettings(c echo.Context) error {
	settings, err := h.localization.SystemSettings(c.Request().Context(), languageParam(c))
	if err != nil {
		return serviceError(err)
	}
	return dataResponse(c, settings)
}

// HandleUpdateUserLanguage stores a user's language preference.
// (PUT /api/user-language)
func (h *Handler) HandleUpdateUserLanguage(c echo.Context) error {
	var req UpdateUserLanguageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.UserID == "" || req.Language == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "User ID and language are required")
	}

	lang, err := h.localization.UpdateUserLanguage(c.Request().Context(), req.UserID, req.Language)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"language": lang,
		"message":  "Language preference updated successfully",
	})
}

// HandleUserLanguage returns a user's stored language preference.
// (GET /api/users/:userId/language)
func (h *Handler) HandleUserLanguage(c echo.Context) error {
	lang, err := h.localization.UserLanguage(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return serviceError(err)
	}
	return dataResponse(c, echo.Map{"language": lang})
}

// HandleLocalizedSchemes returns the scheme catalog localized via the
// database columns.
// (GET /api/localized/schemes)
func (h *Handler) HandleLocalizedSchemes(c echo.Context) error {
	schemes, err := h.schemes.Schemes(c.Request().Context(), languageParam(c))
	if err != nil {
		return serviceError(err)
	}
	return dataResponse(c, schemes)
}

// HandleLocalizedAnimalTypes returns the animal-type catalog.
// (GET /api/localized/animal-types)
func (h *Handler) HandleLocalizedAnimalTypes(c echo.Context) error {
	types, err := h.localization.AnimalTypes(c.Request().Context(), languageParam(c))
	if err != nil {
		return serviceError(err)
	}
	return dataResponse(c, types)
}
