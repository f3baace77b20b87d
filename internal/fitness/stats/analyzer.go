package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/traintrack/internal/fitness/sections"
	"github.com/2beens/traintrack/internal/fitness/workouts"
	"github.com/2beens/traintrack/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=stats_test

type sectionsRepo interface {
	ListAll(ctx context.Context, params sections.SectionParams) ([]sections.Section, error)
}

type workoutsRepo interface {
	ListAll(ctx context.Context, params workouts.WorkoutParams) ([]workouts.Workout, error)
}

// Analyzer joins sections and workouts through their repos and reduces
// them to the dashboard views.
type Analyzer struct {
	sections sectionsRepo
	workouts workoutsRepo
}

func NewAnalyzer(sectionsRepo sectionsRepo, workoutsRepo workoutsRepo) *Analyzer {
	return &Analyzer{
		sections: sectionsRepo,
		workouts: workoutsRepo,
	}
}

func (a *Analyzer) SectionProgress(
	ctx context.Context,
	userID int,
	from, to time.Time,
) (_ []SectionProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.sectionProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))
	span.SetAttributes(attribute.String("from", from.String()))
	span.SetAttributes(attribute.String("to", to.String()))

	allSections, err := a.sections.ListAll(ctx, sections.SectionParams{
		UserID: userID,
	})
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}

	// the last workout timestamp is taken over all records, not just the
	// windowed ones, so all of the user's workouts are needed here
	allWorkouts, err := a.workouts.ListAll(ctx, workouts.WorkoutParams{
		UserID: userID,
	})
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	return SectionProgressForWindow(allSections, allWorkouts, from, to), nil
}

func (a *Analyzer) WeeklyTrend(
	ctx context.Context,
	userID int,
	startWeek, endWeek time.Time,
) (_ []TrendEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.weeklyTrend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	startWeek = StartOfWeek(startWeek)
	endWeek = StartOfWeek(endWeek)
	windowEnd := EndOfDay(endWeek.AddDate(0, 0, 6))

	found, err := a.workouts.ListAll(ctx, workouts.WorkoutParams{
		UserID: userID,
		From:   &startWeek,
		To:     &windowEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	return WeeklyTrend(found, startWeek, endWeek), nil
}
