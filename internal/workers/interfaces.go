package workers

import "context"

// Worker is a long-running background process tied to the lifetime of the
// given context.
type Worker interface {
	// Run blocks until ctx is cancelled.
	Run(ctx context.Context)
}
