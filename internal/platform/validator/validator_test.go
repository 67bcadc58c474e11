package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldError_Error(t *testing.T) {
	assert.Equal(t, "field label: too long", FieldError{Field: "label", Message: "too long"}.Error())
	assert.Equal(t, "field : ", FieldError{}.Error())
}

func TestValidationError(t *testing.T) {
	err := ValidationError{Errors: []FieldError{
		{Field: "iterations", Message: "This field must be at least 1"},
		{Field: "slow_threshold", Message: "This field must be greater than FastThreshold"},
	}}

	assert.Equal(t,
		"validation failed: field iterations: This field must be at least 1, field slow_threshold: This field must be greater than FastThreshold",
		err.Error())
	assert.Equal(t, []string{"iterations", "slow_threshold"}, err.Fields())
}

func TestValidationError_Empty(t *testing.T) {
	err := ValidationError{}

	assert.Equal(t, "validation failed: ", err.Error())
	assert.Empty(t, err.Fields())
}
