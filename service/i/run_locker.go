package i

import "context"

// RunLocker guards algorithm starts against concurrent runs on the same
// maze across service replicas. Acquire returns a release function.
type RunLocker interface {
	Acquire(ctx context.Context, key string) (func() error, error)
}
