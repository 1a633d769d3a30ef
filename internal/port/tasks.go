package port

import "context"

// TaskRunner runs a unit of work that outlives the triggering request.
// Implementations bound the number of in-flight tasks; the record store is
// the only synchronization point between a task and its observers.
type TaskRunner interface {
	Go(name string, fn func(ctx context.Context))
}
