package httpapi

import "context"

// ReadyChecker reports whether a dependency can serve requests.
type ReadyChecker interface {
	Ready(ctx context.Context) error
}
