package idgen

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReportID(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z]+-\d+$`)

	for _, prefix := range []string{PrefixVeterinary, PrefixWildlife, PrefixScheme} {
		id := NewReportID(prefix)
		assert.True(t, strings.HasPrefix(id, prefix+"-"), id)
		assert.Regexp(t, pattern, id)
	}
}
