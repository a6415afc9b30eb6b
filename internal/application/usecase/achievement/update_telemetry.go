// Package achievement contains the gamification engine: the static definition
// catalog, the progress rules, and the use cases that evaluate and persist
// achievement state.
package achievement

import (
	"context"
	"fmt"
	"time"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// telemetryDefinitions are the achievements driven by external usage counters
// that the evaluation snapshot cannot see. Only these may be updated through
// the telemetry endpoint; everything else is recomputed from records.
var telemetryDefinitions = map[string]struct{}{
	AchievementAIAdopter:         {},
	AchievementAnalyticsExplorer: {},
}

// UpdateTelemetryInput contains the input for a telemetry progress update.
type UpdateTelemetryInput struct {
	DefinitionID string
	Progress     int
	Reference    time.Time // zero value means the current instant
}

// UpdateTelemetryOutput contains the updated achievement.
type UpdateTelemetryOutput struct {
	Achievement   entity.Achievement
	NewlyUnlocked bool
}

// UpdateTelemetryUseCase applies an externally reported progress value to one
// of the telemetry-driven achievements. Progress never decreases and the
// unlock flag never reverts.
type UpdateTelemetryUseCase struct {
	achievementRepo adapter.AchievementRepository
}

// NewUpdateTelemetryUseCase creates a new UpdateTelemetryUseCase.
func NewUpdateTelemetryUseCase(achievementRepo adapter.AchievementRepository) *UpdateTelemetryUseCase {
	return &UpdateTelemetryUseCase{achievementRepo: achievementRepo}
}

// Execute validates and applies the reported progress.
func (uc *UpdateTelemetryUseCase) Execute(ctx context.Context, input UpdateTelemetryInput) (*UpdateTelemetryOutput, error) {
	def, ok := definitionByID(input.DefinitionID)
	if !ok {
		return nil, domainerror.NewAchievementError(
			domainerror.ErrCodeUnknownAchievement,
			"achievement not found in the catalog",
			domainerror.ErrUnknownAchievement,
		)
	}
	if _, ok := telemetryDefinitions[input.DefinitionID]; !ok {
		return nil, domainerror.NewAchievementError(
			domainerror.ErrCodeInvalidTelemetryMetric,
			"achievement is not telemetry-driven",
			domainerror.ErrInvalidTelemetryMetric,
		)
	}
	if input.Progress < 0 || input.Progress > 100 {
		return nil, domainerror.NewAchievementError(
			domainerror.ErrCodeInvalidProgressValue,
			"progress must be between 0 and 100",
			domainerror.ErrInvalidProgressValue,
		)
	}

	reference := input.Reference
	if reference.IsZero() {
		reference = time.Now().UTC()
	}

	state, err := uc.achievementRepo.Get(ctx, input.DefinitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load achievement state: %w", err)
	}
	if state == nil {
		state = entity.NewAchievementState(input.DefinitionID)
	}

	if input.Progress > state.Progress {
		state.Progress = input.Progress
	}

	newlyUnlocked := false
	if state.Progress >= 100 && !state.IsUnlocked {
		state.IsUnlocked = true
		at := reference
		state.UnlockedAt = &at
		newlyUnlocked = true
	}
	state.UpdatedAt = reference

	if err := uc.achievementRepo.SaveAll(ctx, []*entity.AchievementState{state}); err != nil {
		return nil, fmt.Errorf("failed to save achievement state: %w", err)
	}

	return &UpdateTelemetryOutput{
		Achievement: entity.Achievement{
			Definition: def,
			Progress:   state.Progress,
			IsUnlocked: state.IsUnlocked,
			UnlockedAt: state.UnlockedAt,
		},
		NewlyUnlocked: newlyUnlocked,
	}, nil
}
