package yasno

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"svitlo-service/internal/app/config"
	"svitlo-service/internal/app/contracts"
	"svitlo-service/internal/app/models"
	"svitlo-service/internal/pkg/constvars"
	"svitlo-service/internal/pkg/exceptions"
	"svitlo-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

type yasnoClient struct {
	plannedOutagesUrl string
	httpClient        *http.Client
	// limiter caps outbound calls so a burst of concurrent cache misses
	// cannot hammer the upstream API.
	limiter *rate.Limiter
}

func NewYasnoClient(internalConfig *config.InternalConfig) contracts.YasnoClient {
	yasnoConfig := internalConfig.Yasno
	return &yasnoClient{
		plannedOutagesUrl: fmt.Sprintf("%s/regions/%s/dsos/%s/planned-outages",
			yasnoConfig.BaseUrl, yasnoConfig.RegionID, yasnoConfig.DsoID),
		httpClient: &http.Client{
			Timeout: time.Duration(yasnoConfig.TimeoutInSecond) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(yasnoConfig.RequestsPerSecond), yasnoConfig.RequestBurst),
	}
}

func (c *yasnoClient) FetchPlannedOutages(ctx context.Context) (models.PlannedOutagesResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrUpstreamRequestSend(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.plannedOutagesUrl, nil)
	if err != nil {
		return nil, exceptions.ErrUpstreamRequestBuild(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrUpstreamRequestSend(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, exceptions.ErrUpstreamBadStatus(resp.StatusCode)
	}

	outages := make(models.PlannedOutagesResponse)
	err = json.NewDecoder(resp.Body).Decode(&outages)
	if err != nil {
		return nil, exceptions.ErrUpstreamDecode(err)
	}

	for group, schedule := range outages {
		if err := validateGroupSchedule(group, schedule); err != nil {
			return nil, exceptions.ErrUpstreamInvalidSchedule(err)
		}
	}

	return outages, nil
}

// validateGroupSchedule rejects payloads the decoder alone cannot catch:
// out-of-range minutes, inverted slots, unparseable date anchors.
func validateGroupSchedule(group string, schedule models.GroupSchedule) error {
	if err := utils.ValidateStruct(&schedule); err != nil {
		return fmt.Errorf("group %s: %w", group, err)
	}
	if _, err := schedule.Today.Anchor(); err != nil {
		return fmt.Errorf("group %s: today: %w", group, err)
	}
	if _, err := schedule.Tomorrow.Anchor(); err != nil {
		return fmt.Errorf("group %s: tomorrow: %w", group, err)
	}
	return nil
}
