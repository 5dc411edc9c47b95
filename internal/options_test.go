package internal

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestStartOptionKindString(t *testing.T) {
	tests := []struct {
		kind     StartOptionKind
		expected string
	}{
		{StartOptionAuth, "AUTH"},
		{StartOptionAuthWithUsername, "AUTH_WITH_USERNAME"},
		{StartOptionTimeout, "TIMEOUT"},
		{StartOptionKind(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("StartOptionKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestApplyStartOptions(t *testing.T) {
	tests := []struct {
		name     string
		opts     []StartOption
		expected redis.Options
	}{
		{
			name: "timeout only",
			opts: []StartOption{TimeoutOption(3 * time.Second)},
			expected: redis.Options{
				DialTimeout:  3 * time.Second,
				ReadTimeout:  3 * time.Second,
				WriteTimeout: 3 * time.Second,
			},
		},
		{
			name: "password auth before timeout",
			opts: []StartOption{AuthOption("secret"), TimeoutOption(time.Second)},
			expected: redis.Options{
				Password:     "secret",
				DialTimeout:  time.Second,
				ReadTimeout:  time.Second,
				WriteTimeout: time.Second,
			},
		},
		{
			name: "username auth before timeout",
			opts: []StartOption{AuthWithUsernameOption("admin", "secret"), TimeoutOption(time.Second)},
			expected: redis.Options{
				Username:     "admin",
				Password:     "secret",
				DialTimeout:  time.Second,
				ReadTimeout:  time.Second,
				WriteTimeout: time.Second,
			},
		},
		{
			name: "later option of the same kind wins",
			opts: []StartOption{AuthOption("first"), AuthOption("second")},
			expected: redis.Options{
				Password: "second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target redis.Options
			ApplyStartOptions(tt.opts, &target)

			if target.Username != tt.expected.Username {
				t.Errorf("Username = %q, want %q", target.Username, tt.expected.Username)
			}
			if target.Password != tt.expected.Password {
				t.Errorf("Password = %q, want %q", target.Password, tt.expected.Password)
			}
			if target.DialTimeout != tt.expected.DialTimeout {
				t.Errorf("DialTimeout = %v, want %v", target.DialTimeout, tt.expected.DialTimeout)
			}
			if target.ReadTimeout != tt.expected.ReadTimeout {
				t.Errorf("ReadTimeout = %v, want %v", target.ReadTimeout, tt.expected.ReadTimeout)
			}
			if target.WriteTimeout != tt.expected.WriteTimeout {
				t.Errorf("WriteTimeout = %v, want %v", target.WriteTimeout, tt.expected.WriteTimeout)
			}
		})
	}
}
