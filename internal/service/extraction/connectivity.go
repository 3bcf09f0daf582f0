package extraction

import "context"

// ConnectivityChecker reports whether the network is reachable before any
// attempt is made. An offline result fails fast with zero attempts.
type ConnectivityChecker interface {
	Online(ctx context.Context) bool
}

// AlwaysOnline is the ConnectivityChecker used when no probe is configured.
type AlwaysOnline struct{}

// Online always returns true.
func (AlwaysOnline) Online(context.Context) bool { return true }
