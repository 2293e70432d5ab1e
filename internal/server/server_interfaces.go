package server

import (
	"context"
)

// DBHealthChecker reports whether the store is reachable.
// *database.Pool satisfies it.
type DBHealthChecker interface {
	// HealthCheck verifies the database connection is working properly
	//
	// Parameters:
	//   - ctx: Context for the health check operation
	//
	// Returns:
	//   - An error if the database is unreachable or unhealthy
	HealthCheck(ctx context.Context) error
}
