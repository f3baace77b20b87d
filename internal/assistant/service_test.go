package assistant_test

import (
	"context"
	"strings"
	"testing"

	"github.com/2beens/traintrack/internal/assistant"
	"github.com/2beens/traintrack/internal/fitness/stats"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ParseWorkoutText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := NewMockaiClient(ctrl)
	service := assistant.NewService(client, NewMocktrendAnalyzer(ctrl))

	ctx := context.Background()
	input := "did 3 sets of 8 bench presses at 80 kilos"
	client.
		EXPECT().
		Complete(gomock.Any(), gomock.Any(), input).
		Return("```json\n[{\"exercise\": \"bench press\", \"sets\": 3, \"reps\": 8, \"weight\": 80, \"unit\": \"kg\"}]\n```", nil)

	parsed, err := service.ParseWorkoutText(ctx, input)
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, assistant.ParsedWorkout{
		Exercise: "bench press",
		Sets:     3,
		Reps:     8,
		Weight:   80,
		Unit:     "kg",
	}, parsed[0])
}

func TestService_ParseWorkoutText_UnparsableOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := NewMockaiClient(ctrl)
	service := assistant.NewService(client, NewMocktrendAnalyzer(ctrl))

	client.
		EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("sorry, I could not make sense of that", nil)

	parsed, err := service.ParseWorkoutText(context.Background(), "mumble mumble")
	assert.ErrorIs(t, err, assistant.ErrUnparsableOutput)
	assert.Nil(t, parsed)
}

func TestService_ParseWorkoutText_WrongShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := NewMockaiClient(ctrl)
	service := assistant.NewService(client, NewMocktrendAnalyzer(ctrl))

	// valid json, but an object where an array is expected
	client.
		EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`{"exercise": "squat"}`, nil)

	_, err := service.ParseWorkoutText(context.Background(), "squats")
	assert.ErrorIs(t, err, assistant.ErrUnparsableOutput)
}

func TestService_ParseWorkoutVoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := NewMockaiClient(ctrl)
	service := assistant.NewService(client, NewMocktrendAnalyzer(ctrl))

	audio := strings.NewReader("fake audio bytes")
	client.
		EXPECT().
		Transcribe(gomock.Any(), audio, "memo.m4a").
		Return("5 sets of 5 squats at 100 kilos", nil)
	client.
		EXPECT().
		Complete(gomock.Any(), gomock.Any(), "5 sets of 5 squats at 100 kilos").
		Return(`[{"exercise": "squat", "sets": 5, "reps": 5, "weight": 100, "unit": "kg"}]`, nil)

	parsed, transcript, err := service.ParseWorkoutVoice(context.Background(), audio, "memo.m4a")
	require.NoError(t, err)
	assert.Equal(t, "5 sets of 5 squats at 100 kilos", transcript)
	require.Len(t, parsed, 1)
	assert.Equal(t, "squat", parsed[0].Exercise)
}

func TestService_ParseWorkoutVoice_TranscriptSurvivesParseFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := NewMockaiClient(ctrl)
	service := assistant.NewService(client, NewMocktrendAnalyzer(ctrl))

	client.
		EXPECT().
		Transcribe(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("something something gym", nil)
	client.
		EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("no json in sight", nil)

	parsed, transcript, err := service.ParseWorkoutVoice(
		context.Background(), strings.NewReader("audio"), "memo.m4a",
	)
	assert.ErrorIs(t, err, assistant.ErrUnparsableOutput)
	assert.Nil(t, parsed)
	// the transcript is still returned so the client can fall back to manual entry
	assert.Equal(t, "something something gym", transcript)
}

func TestService_SuggestWorkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := NewMockaiClient(ctrl)
	service := assistant.NewService(client, NewMocktrendAnalyzer(ctrl))

	client.
		EXPECT().
		Complete(gomock.Any(), gomock.Any(), "build upper body strength").
		Return(`[
			{"exercise": "bench press", "sets": 4, "reps": 6, "weight": 0, "unit": "kg"},
			{"exercise": "overhead press", "sets": 3, "reps": 8, "weight": 0, "unit": "kg"}
		]`, nil)

	suggested, err := service.SuggestWorkout(context.Background(), "build upper body strength")
	require.NoError(t, err)
	require.Len(t, suggested, 2)
	assert.Equal(t, "overhead press", suggested[1].Exercise)
}

func TestService_SuggestHabits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := NewMockaiClient(ctrl)
	service := assistant.NewService(client, NewMocktrendAnalyzer(ctrl))

	client.
		EXPECT().
		Complete(gomock.Any(), gomock.Any(), "sleep better").
		Return(`[{"name": "no screens after 22h", "frequency": "daily"}]`, nil)

	suggested, err := service.SuggestHabits(context.Background(), "sleep better")
	require.NoError(t, err)
	require.Len(t, suggested, 1)
	assert.Equal(t, "no screens after 22h", suggested[0].Name)
	assert.Equal(t, "daily", suggested[0].Frequency)
}

func TestService_WeeklyInsights_Cached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := NewMockaiClient(ctrl)
	analyzer := NewMocktrendAnalyzer(ctrl)
	service := assistant.NewService(client, analyzer)

	trend := []stats.TrendEntry{
		{Week: "Week of Mar 3", Total: 9},
	}

	// trend fetch and completion are expected exactly once, the second
	// call comes out of the cache
	analyzer.
		EXPECT().
		WeeklyTrend(gomock.Any(), 42, gomock.Any(), gomock.Any()).
		Return(trend, nil).
		Times(1)
	client.
		EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("Training volume is up, keep squatting.", nil).
		Times(1)

	ctx := context.Background()
	insights, err := service.WeeklyInsights(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "Training volume is up, keep squatting.", insights)

	insightsAgain, err := service.WeeklyInsights(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, insights, insightsAgain)
}

func TestService_WeeklyInsights_TrendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := NewMockaiClient(ctrl)
	analyzer := NewMocktrendAnalyzer(ctrl)
	service := assistant.NewService(client, analyzer)

	analyzer.
		EXPECT().
		WeeklyTrend(gomock.Any(), 42, gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	_, err := service.WeeklyInsights(context.Background(), 42)
	assert.ErrorIs(t, err, assert.AnError)
}
