package interfaces

import "context"

// HealthChecker reports whether a dependency the service needs is reachable.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthCheckerFunc adapts a function to HealthChecker.
type HealthCheckerFunc func(ctx context.Context) error

func (f HealthCheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}
