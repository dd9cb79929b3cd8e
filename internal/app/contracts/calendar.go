package contracts

import (
	"context"

	"svitlo-service/internal/pkg/dto/responses"
)

// CalendarUsecase is the cache-fronted calendar pipeline: read-through per
// group, bulk regeneration, and the bookkeeping around both.
type CalendarUsecase interface {
	// GetOrGenerate returns the ICS document for group, serving the cached
	// copy when present and compiling on demand otherwise.
	GetOrGenerate(ctx context.Context, group string) (string, error)
	// RegenerateAll fetches upstream once and recompiles every discovered
	// group. It never fails; failures are reported inside the result.
	RegenerateAll(ctx context.Context) *responses.RegenerationResult
	CacheStatus(ctx context.Context) (*responses.CacheStatus, error)
	KnownGroups(ctx context.Context) ([]string, error)
}
