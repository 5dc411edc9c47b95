package internal

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// StartOptionKind identifies the kind of a client startup option.
type StartOptionKind int

const (
	// StartOptionAuth authenticates with a password only.
	StartOptionAuth StartOptionKind = iota
	// StartOptionAuthWithUsername authenticates with a username and password.
	StartOptionAuthWithUsername
	// StartOptionTimeout bounds every command issued on the connection.
	StartOptionTimeout
)

// String returns the string representation of StartOptionKind.
func (k StartOptionKind) String() string {
	switch k {
	case StartOptionAuth:
		return "AUTH"
	case StartOptionAuthWithUsername:
		return "AUTH_WITH_USERNAME"
	case StartOptionTimeout:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// StartOption is one startup option for the underlying Redis client. Only the
// fields relevant to Kind are set.
type StartOption struct {
	Kind     StartOptionKind
	Username string
	Password string
	Timeout  time.Duration
}

// AuthOption returns a password-only authentication option.
func AuthOption(password string) StartOption {
	return StartOption{Kind: StartOptionAuth, Password: password}
}

// AuthWithUsernameOption returns a username/password authentication option.
func AuthWithUsernameOption(username, password string) StartOption {
	return StartOption{Kind: StartOptionAuthWithUsername, Username: username, Password: password}
}

// TimeoutOption returns a command timeout option.
func TimeoutOption(timeout time.Duration) StartOption {
	return StartOption{Kind: StartOptionTimeout, Timeout: timeout}
}

// ApplyStartOptions folds an ordered option list into go-redis client options.
// Options are applied first to last, so a later option of the same kind wins.
func ApplyStartOptions(opts []StartOption, target *redis.Options) {
	for _, opt := range opts {
		switch opt.Kind {
		case StartOptionAuth:
			target.Password = opt.Password
		case StartOptionAuthWithUsername:
			target.Username = opt.Username
			target.Password = opt.Password
		case StartOptionTimeout:
			target.DialTimeout = opt.Timeout
			target.ReadTimeout = opt.Timeout
			target.WriteTimeout = opt.Timeout
		}
	}
}
