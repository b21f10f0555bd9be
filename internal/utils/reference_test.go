package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReferenceFormat(t *testing.T) {
	ref := GenerateReference()

	assert.NotEmpty(t, ref)
	assert.Equal(t, strings.ToUpper(ref), ref)
	// base-30 digits are 0-9 then a-t, upper-cased
	assert.Regexp(t, "^[0-9A-T]+$", ref)
}

func TestGenerateReferenceVaries(t *testing.T) {
	assert.NotEqual(t, GenerateReference(), GenerateReference())
}
