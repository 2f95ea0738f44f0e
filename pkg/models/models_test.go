package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityBaseScore(t *testing.T) {
	assert.Equal(t, 100, SeverityCritical.BaseScore())
	assert.Equal(t, 75, SeverityHigh.BaseScore())
	assert.Equal(t, 50, SeverityMedium.BaseScore())
	assert.Equal(t, 25, SeverityLow.BaseScore())

	// Unknown severities score like low.
	assert.Equal(t, 25, Severity("bogus").BaseScore())
}

func TestSeverityRequiresAssignment(t *testing.T) {
	assert.True(t, SeverityCritical.RequiresAssignment())
	assert.True(t, SeverityHigh.RequiresAssignment())
	assert.False(t, SeverityMedium.RequiresAssignment())
	assert.False(t, SeverityLow.RequiresAssignment())
}

func TestThreatLevelRank(t *testing.T) {
	// Lower rank means more urgent, everywhere in the system.
	assert.Less(t, ThreatImmediate.Rank(), ThreatHigh.Rank())
	assert.Less(t, ThreatHigh.Rank(), ThreatMedium.Rank())
	assert.Less(t, ThreatMedium.Rank(), ThreatLow.Rank())

	// Unknown levels sort last, alongside low.
	assert.Equal(t, ThreatLow.Rank(), ThreatLevel("bogus").Rank())
}

func TestThreatLevelRequiresDispatch(t *testing.T) {
	assert.True(t, ThreatImmediate.RequiresDispatch())
	assert.True(t, ThreatHigh.RequiresDispatch())
	assert.False(t, ThreatMedium.RequiresDispatch())
	assert.False(t, ThreatLow.RequiresDispatch())
}

func TestSupportedLanguage(t *testing.T) {
	for _, lang := range []string{"en", "hi", "sat", "mun"} {
		assert.True(t, SupportedLanguage(lang), lang)
	}
	assert.False(t, SupportedLanguage("fr"))
	assert.False(t, SupportedLanguage(""))
	assert.False(t, SupportedLanguage("en; DROP TABLE users"))
}
