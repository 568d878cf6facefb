package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 10, ParseInt("", 10))
	assert.Equal(t, 10, ParseInt("abc", 10))
	assert.Equal(t, 10, ParseInt("-5", 10))
	assert.Equal(t, 25, ParseInt("25", 10))
	assert.Equal(t, 0, ParseInt("0", 10))
}

func TestGenerateAccountRef(t *testing.T) {
	pattern := regexp.MustCompile(`^KIKAO-\d{8}-\d{6}-\d{4}$`)

	ref := GenerateAccountRef()
	assert.Regexp(t, pattern, ref)
}
