package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEndpoint(t *testing.T) {
	tests := []struct {
		endpoint string
		valid    bool
	}{
		{"http://localhost:9890", true},
		{"https://nfvo.example.com", true},
		{"", false},
		{"   ", false},
		{"localhost:9890", false},
		{"https://", false},
		{"://bad", false},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			err := ValidateEndpoint(tt.endpoint)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	var errs ValidationErrors
	assert.Equal(t, "no validation errors", errs.Error())

	errs.Add("output", "unsupported")
	assert.Equal(t, "field 'output': unsupported", errs.Error())

	errs.Add("", "general problem")
	assert.Equal(t, "validation failed: field 'output': unsupported; general problem", errs.Error())
}

func TestTackerConfig_Validate(t *testing.T) {
	cfg := GetDefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Timeout = -1
	assert.ErrorContains(t, cfg.Validate(), "timeout")
}
