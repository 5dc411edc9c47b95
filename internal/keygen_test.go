package internal

import "testing"

func TestComposeKey(t *testing.T) {
	tests := []struct {
		name         string
		resourceType string
		key          string
		expected     string
	}{
		{
			name:         "simple composition",
			resourceType: "session",
			key:          "abc123",
			expected:     "session:abc123",
		},
		{
			name:         "empty resource type",
			resourceType: "",
			key:          "abc123",
			expected:     ":abc123",
		},
		{
			name:         "empty key",
			resourceType: "session",
			key:          "",
			expected:     "session:",
		},
		{
			name:         "separator in resource type is not escaped",
			resourceType: "a:b",
			key:          "c",
			expected:     "a:b:c",
		},
		{
			name:         "separator in key is not escaped",
			resourceType: "a",
			key:          "b:c",
			expected:     "a:b:c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComposeKey(tt.resourceType, tt.key)
			if got != tt.expected {
				t.Errorf("ComposeKey(%q, %q) = %q, want %q", tt.resourceType, tt.key, got, tt.expected)
			}
		})
	}
}

// The two ambiguous compositions above collapse to the same wire key. That
// collision is deterministic and accepted; this test pins the behavior.
func TestComposeKeyAmbiguityIsDeterministic(t *testing.T) {
	if ComposeKey("a:b", "c") != ComposeKey("a", "b:c") {
		t.Error("expected identical composed keys for ambiguous inputs")
	}
}

func TestKeyPattern(t *testing.T) {
	if got := KeyPattern("session"); got != "session:*" {
		t.Errorf("KeyPattern(\"session\") = %q, want %q", got, "session:*")
	}
}
