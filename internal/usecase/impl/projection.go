package impl

import (
	"context"
	"log/slog"

	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/domain/repository"
	"hokhau/internal/infra/metrics"

	"github.com/google/uuid"
)

// syncHeadName refreshes a household's denormalized head name. The
// household record is only a display cache of the head citizen's name,
// so this projection is best-effort: a failure is logged, counted and
// appended to warnings, never returned as an error.
func syncHeadName(
	ctx context.Context,
	householdRepo repository.HouseholdRepository,
	engineMetrics *metrics.Engine,
	logger *slog.Logger,
	householdID uuid.UUID,
	headName string,
	warnings []string,
) []string {
	household, err := householdRepo.FindByID(ctx, householdID)
	if err == nil {
		household.HeadName = headName
		err = householdRepo.Update(ctx, household)
	}
	if err != nil {
		engineMetrics.HeadNameSyncFailures.Inc()
		logger.Warn("Head-name sync failed",
			slog.String("step", domainerrors.StepSyncHeadName),
			slog.Any("householdID", householdID), slog.Any("error", err))

		return append(warnings, "household head name was not refreshed: "+err.Error())
	}

	return warnings
}
