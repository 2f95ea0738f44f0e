package repository

import (
	"fmt"

	"vetportal/pkg/models"
)

// langColumn builds a "COALESCE(col_<lang>, col_en)" fragment for localized
// tables. The language code is validated against the closed language set
// before it ever reaches the query text; anything else falls back to English.
func langColumn(col, lang string) string {
	if !models.SupportedLanguage(lang) {
		lang = models.LangEnglish
	}
	if lang == models.LangEnglish {
		return col + "_en"
	}
	return fmt.Sprintf("COALESCE(%s_%s, %s_en)", col, lang, col)
}
