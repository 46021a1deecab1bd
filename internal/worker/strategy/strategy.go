package strategy

import "context"

// TaskExecutionStrategy defines the interface for the recurring worker tasks.
// Execute returns a JSON summary of what the run did.
type TaskExecutionStrategy interface {
	Execute(ctx context.Context) (string, error)
	GetType() string
}
