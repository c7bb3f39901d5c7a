package config

import (
	"strings"
	"testing"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		env         map[string]string
		expected    string
		expectError string
	}{
		{
			name:     "set variable",
			input:    "endpoint: ${env://RAIN_HOST}/api/translate",
			env:      map[string]string{"RAIN_HOST": "http://rain:5001"},
			expected: "endpoint: http://rain:5001/api/translate",
		},
		{
			name:     "default used when unset",
			input:    "locale: ${env://RAIN_LOCALE:-zh}",
			expected: "locale: zh",
		},
		{
			name:     "empty default",
			input:    "log-file: \"${env://RAIN_LOG:-}\"",
			expected: "log-file: \"\"",
		},
		{
			name:     "default containing colons",
			input:    "endpoint: ${env://RAIN_URL:-http://localhost:5001/api/translate}",
			expected: "endpoint: http://localhost:5001/api/translate",
		},
		{
			name:     "set variable wins over default",
			input:    "locale: ${env://RAIN_LOCALE:-zh}",
			env:      map[string]string{"RAIN_LOCALE": "en"},
			expected: "locale: en",
		},
		{
			name:     "no references",
			input:    "hint: true",
			expected: "hint: true",
		},
		{
			name:        "missing required variables are all reported",
			input:       "a: ${env://RAIN_A}\nb: ${env://RAIN_B}",
			expectError: "RAIN_A, RAIN_B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, name := range []string{"RAIN_HOST", "RAIN_LOCALE", "RAIN_LOG", "RAIN_URL", "RAIN_A", "RAIN_B"} {
				t.Setenv(name, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := ExpandEnv(tt.input)
			if tt.expectError != "" {
				if err == nil {
					t.Fatalf("expected error containing %q", tt.expectError)
				}
				if !strings.Contains(err.Error(), tt.expectError) {
					t.Errorf("expected error containing %q, got %v", tt.expectError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestHasEnvRefs(t *testing.T) {
	if !HasEnvRefs("x: ${env://HOME}") {
		t.Error("expected a reference to be detected")
	}
	if HasEnvRefs("x: ${HOME}") {
		t.Error("plain shell references are not config references")
	}
}
