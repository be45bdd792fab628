package services

import "testing"

func TestSanitizeProjectName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already clean", input: "my-app", expected: "my-app"},
		{name: "uppercase lowered", input: "MyApp", expected: "myapp"},
		{name: "spaces become dashes", input: "My Cool App", expected: "my-cool-app"},
		{name: "dots and underscores kept", input: "app_v2.0", expected: "app_v2.0"},
		{name: "unicode mapped to dashes", input: "appé", expected: "app"},
		{name: "empty falls back", input: "", expected: "converted-project"},
		{name: "all separators falls back", input: "///", expected: "converted-project"},
		{name: "surrounding dashes trimmed", input: " (scratch) ", expected: "scratch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeProjectName(tt.input); got != tt.expected {
				t.Errorf("SanitizeProjectName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
