package cache

import (
	"github.com/kengibson1111/go-cachedriver-redis/internal"
)

// startOptions translates a Config into the ordered list of startup options
// the underlying client understands. The timeout option is always present; at
// most one auth option is produced, by this precedence:
//
//  1. username and password set: auth-with-username carrying both
//  2. username set only: auth-with-username with an empty password
//  3. password set only: password-only auth
//  4. neither set: no auth option
//
// The auth option, when present, precedes the timeout option. The order is
// preserved for compatibility with order-sensitive clients.
func startOptions(cfg Config) []internal.StartOption {
	var opts []internal.StartOption

	switch {
	case cfg.Username != "" && cfg.Password != "":
		opts = append(opts, internal.AuthWithUsernameOption(cfg.Username, cfg.Password))
	case cfg.Username != "":
		opts = append(opts, internal.AuthWithUsernameOption(cfg.Username, ""))
	case cfg.Password != "":
		opts = append(opts, internal.AuthOption(cfg.Password))
	}

	return append(opts, internal.TimeoutOption(cfg.Timeout))
}
