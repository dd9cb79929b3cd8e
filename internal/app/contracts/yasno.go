package contracts

import (
	"context"

	"svitlo-service/internal/app/models"
)

// YasnoClient fetches the planned-outages dataset from the upstream API.
// One call returns the schedules for every known group.
type YasnoClient interface {
	FetchPlannedOutages(ctx context.Context) (models.PlannedOutagesResponse, error)
}
