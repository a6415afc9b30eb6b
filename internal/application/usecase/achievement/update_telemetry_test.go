// Package achievement contains the gamification engine tests.
package achievement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

type fakeAchievementRepo struct {
	states map[string]*entity.AchievementState
}

func newFakeAchievementRepo() *fakeAchievementRepo {
	return &fakeAchievementRepo{states: make(map[string]*entity.AchievementState)}
}

func (f *fakeAchievementRepo) GetAll(_ context.Context) ([]*entity.AchievementState, error) {
	out := make([]*entity.AchievementState, 0, len(f.states))
	for _, s := range f.states {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeAchievementRepo) Get(_ context.Context, definitionID string) (*entity.AchievementState, error) {
	return f.states[definitionID], nil
}

func (f *fakeAchievementRepo) SaveAll(_ context.Context, states []*entity.AchievementState) error {
	for _, s := range states {
		f.states[s.DefinitionID] = s
	}
	return nil
}

func TestUpdateTelemetry_RejectsUnknownAchievement(t *testing.T) {
	uc := NewUpdateTelemetryUseCase(newFakeAchievementRepo())

	_, err := uc.Execute(context.Background(), UpdateTelemetryInput{
		DefinitionID: "no_such_achievement",
		Progress:     10,
	})

	if !errors.Is(err, domainerror.ErrUnknownAchievement) {
		t.Errorf("expected unknown achievement error, got %v", err)
	}
}

func TestUpdateTelemetry_RejectsDerivedAchievements(t *testing.T) {
	uc := NewUpdateTelemetryUseCase(newFakeAchievementRepo())

	_, err := uc.Execute(context.Background(), UpdateTelemetryInput{
		DefinitionID: AchievementFirstExpense,
		Progress:     10,
	})

	if !errors.Is(err, domainerror.ErrInvalidTelemetryMetric) {
		t.Errorf("expected invalid telemetry metric error, got %v", err)
	}
}

func TestUpdateTelemetry_RejectsOutOfRangeProgress(t *testing.T) {
	uc := NewUpdateTelemetryUseCase(newFakeAchievementRepo())

	for _, progress := range []int{-1, 101} {
		_, err := uc.Execute(context.Background(), UpdateTelemetryInput{
			DefinitionID: AchievementAIAdopter,
			Progress:     progress,
		})

		if !errors.Is(err, domainerror.ErrInvalidProgressValue) {
			t.Errorf("expected invalid progress error for %d, got %v", progress, err)
		}
	}
}

func TestUpdateTelemetry_PersistsProgress(t *testing.T) {
	repo := newFakeAchievementRepo()
	uc := NewUpdateTelemetryUseCase(repo)
	reference := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	output, err := uc.Execute(context.Background(), UpdateTelemetryInput{
		DefinitionID: AchievementAIAdopter,
		Progress:     40,
		Reference:    reference,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output.Achievement.Progress != 40 {
		t.Errorf("expected progress 40, got %d", output.Achievement.Progress)
	}
	if output.Achievement.IsUnlocked || output.NewlyUnlocked {
		t.Error("expected achievement to stay locked at 40")
	}

	saved := repo.states[AchievementAIAdopter]
	if saved == nil || saved.Progress != 40 {
		t.Fatalf("expected saved progress 40, got %+v", saved)
	}
	if !saved.UpdatedAt.Equal(reference) {
		t.Errorf("expected updated at %v, got %v", reference, saved.UpdatedAt)
	}
}

func TestUpdateTelemetry_ProgressNeverDecreases(t *testing.T) {
	repo := newFakeAchievementRepo()
	repo.states[AchievementAIAdopter] = &entity.AchievementState{
		DefinitionID: AchievementAIAdopter,
		Progress:     60,
	}
	uc := NewUpdateTelemetryUseCase(repo)

	output, err := uc.Execute(context.Background(), UpdateTelemetryInput{
		DefinitionID: AchievementAIAdopter,
		Progress:     40,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output.Achievement.Progress != 60 {
		t.Errorf("expected progress to hold at 60, got %d", output.Achievement.Progress)
	}
}

func TestUpdateTelemetry_UnlocksOnceAtFullProgress(t *testing.T) {
	repo := newFakeAchievementRepo()
	uc := NewUpdateTelemetryUseCase(repo)
	first := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	second := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

	output, err := uc.Execute(context.Background(), UpdateTelemetryInput{
		DefinitionID: AchievementAnalyticsExplorer,
		Progress:     100,
		Reference:    first,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !output.Achievement.IsUnlocked || !output.NewlyUnlocked {
		t.Fatal("expected the achievement to unlock")
	}
	if output.Achievement.UnlockedAt == nil || !output.Achievement.UnlockedAt.Equal(first) {
		t.Errorf("expected unlock timestamp %v, got %v", first, output.Achievement.UnlockedAt)
	}

	output, err = uc.Execute(context.Background(), UpdateTelemetryInput{
		DefinitionID: AchievementAnalyticsExplorer,
		Progress:     100,
		Reference:    second,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output.NewlyUnlocked {
		t.Error("expected no repeat unlock")
	}
	if output.Achievement.UnlockedAt == nil || !output.Achievement.UnlockedAt.Equal(first) {
		t.Errorf("expected original unlock timestamp %v, got %v", first, output.Achievement.UnlockedAt)
	}
}
