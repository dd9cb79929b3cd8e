package calendars

import (
	"context"
	"fmt"
	"time"

	"svitlo-service/internal/app/config"
	"svitlo-service/internal/app/contracts"
	"svitlo-service/internal/pkg/constvars"
	"svitlo-service/internal/pkg/dto/responses"
	"svitlo-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type calendarUsecase struct {
	redisRepo      contracts.RedisRepository
	yasnoClient    contracts.YasnoClient
	internalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewCalendarUsecase(
	redisRepo contracts.RedisRepository,
	yasnoClient contracts.YasnoClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CalendarUsecase {
	return &calendarUsecase{
		redisRepo:      redisRepo,
		yasnoClient:    yasnoClient,
		internalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *calendarUsecase) cacheTTL() time.Duration {
	return time.Duration(uc.internalConfig.App.CacheTTLInHour) * time.Hour
}

func (uc *calendarUsecase) GetOrGenerate(ctx context.Context, group string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	cacheKey := constvars.RedisKeyCalendarPrefix + group

	content, found, err := uc.redisRepo.Get(ctx, cacheKey)
	if err != nil {
		return "", err
	}
	if found {
		uc.Log.Debug("calendarUsecase.GetOrGenerate cache hit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingGroupKey, group),
		)
		return content, nil
	}

	outages, err := uc.yasnoClient.FetchPlannedOutages(ctx)
	if err != nil {
		return "", err
	}

	schedule, ok := outages[group]
	if !ok {
		return "", exceptions.ErrGroupNotFound(group)
	}

	content, err = GenerateICS(group, &schedule, time.Now())
	if err != nil {
		return "", exceptions.ErrCompileCalendar(err)
	}

	// Concurrent misses are not deduplicated: compilation is cheap and
	// idempotent, the last writer wins on the cache key.
	if err := uc.redisRepo.Set(ctx, cacheKey, content, uc.cacheTTL()); err != nil {
		uc.Log.Warn("calendarUsecase.GetOrGenerate failed to cache document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingGroupKey, group),
			zap.Error(err),
		)
	}

	return content, nil
}

func (uc *calendarUsecase) RegenerateAll(ctx context.Context) *responses.RegenerationResult {
	result := &responses.RegenerationResult{Errors: []string{}}

	outages, err := uc.yasnoClient.FetchPlannedOutages(ctx)
	if err != nil {
		// Prior cached documents, the known-groups list and the last-update
		// stamp stay untouched: stale data beats wiped state on a transient
		// upstream outage.
		uc.Log.Error("calendarUsecase.RegenerateAll upstream fetch failed", zap.Error(err))
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to fetch schedules: %v", err))
		return result
	}

	groups := make([]string, 0, len(outages))
	for group := range outages {
		groups = append(groups, group)
	}
	sortGroupsNaturally(groups)

	if err := uc.storeKnownGroups(ctx, groups); err != nil {
		uc.Log.Error("calendarUsecase.RegenerateAll failed to persist known groups", zap.Error(err))
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to store known groups: %v", err))
	}

	for _, group := range groups {
		schedule := outages[group]

		content, err := GenerateICS(group, &schedule, time.Now())
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Group %s: %v", group, err))
			continue
		}

		if err := uc.redisRepo.Set(ctx, constvars.RedisKeyCalendarPrefix+group, content, uc.cacheTTL()); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Group %s: %v", group, err))
			continue
		}

		result.Success++
	}

	if err := uc.redisRepo.Set(ctx, constvars.RedisKeyLastUpdate, time.Now().UTC().Format(time.RFC3339), 0); err != nil {
		uc.Log.Error("calendarUsecase.RegenerateAll failed to store last update", zap.Error(err))
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to store last update: %v", err))
	}

	uc.Log.Info("calendarUsecase.RegenerateAll completed",
		zap.Int("success", result.Success),
		zap.Int("failed", result.Failed),
		zap.Int("errors", len(result.Errors)),
	)

	return result
}

func (uc *calendarUsecase) CacheStatus(ctx context.Context) (*responses.CacheStatus, error) {
	lastUpdate, found, err := uc.redisRepo.Get(ctx, constvars.RedisKeyLastUpdate)
	if err != nil {
		return nil, err
	}
	if !found {
		lastUpdate = constvars.CacheStatusNever
	}

	return &responses.CacheStatus{
		LastUpdate:   lastUpdate,
		CacheEnabled: true,
		CronSchedule: uc.internalConfig.App.RegenerationCronSpec,
	}, nil
}

func (uc *calendarUsecase) KnownGroups(ctx context.Context) ([]string, error) {
	raw, found, err := uc.redisRepo.Get(ctx, constvars.RedisKeyKnownGroups)
	if err != nil {
		return nil, err
	}
	if !found {
		return []string{}, nil
	}

	var groups []string
	if err := json.Unmarshal([]byte(raw), &groups); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return groups, nil
}

func (uc *calendarUsecase) storeKnownGroups(ctx context.Context, groups []string) error {
	encoded, err := json.Marshal(groups)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	// Overwritten wholesale every batch: groups that disappear upstream are
	// dropped, never retained stale.
	return uc.redisRepo.Set(ctx, constvars.RedisKeyKnownGroups, string(encoded), 0)
}
