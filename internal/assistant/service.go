package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/2beens/traintrack/internal/fitness/stats"
	"github.com/2beens/traintrack/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=assistant_test

const (
	oneHour             = 60 * 60
	insightsCacheExpire = oneHour * 6

	insightsTrendWeeks = 4
)

type aiClient interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}

type trendAnalyzer interface {
	WeeklyTrend(ctx context.Context, userID int, startWeek, endWeek time.Time) ([]stats.TrendEntry, error)
}

type Service struct {
	client   aiClient
	analyzer trendAnalyzer
	cache    *freecache.Cache
	now      func() time.Time
}

func NewService(client aiClient, analyzer trendAnalyzer) *Service {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte
	return &Service{
		client:   client,
		analyzer: analyzer,
		cache:    freecache.NewCache(cacheSize),
		now:      time.Now,
	}
}

// ParsedWorkout is one workout entry extracted from voice or text by
// the model, before it gets attached to a section and persisted.
type ParsedWorkout struct {
	Exercise string  `json:"exercise"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
	Unit     string  `json:"unit"`
}

const parseWorkoutSystemPrompt = `You extract workout data from gym session descriptions.
Respond ONLY with a JSON array of objects with keys:
"exercise" (string), "sets" (int), "reps" (int), "weight" (number), "unit" ("kg" or "lbs").
Use 0 for any value not mentioned. No prose, no markdown.`

// ParseWorkoutVoice transcribes the audio payload and asks the model
// to turn the transcript into structured workout entries.
func (s *Service) ParseWorkoutVoice(ctx context.Context, audio io.Reader, filename string) (_ []ParsedWorkout, transcript string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "assistant.service.parseWorkoutVoice")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	transcript, err = s.client.Transcribe(ctx, audio, filename)
	if err != nil {
		return nil, "", fmt.Errorf("transcribe: %w", err)
	}
	span.SetAttributes(attribute.Int("transcript_len", len(transcript)))

	parsed, err := s.ParseWorkoutText(ctx, transcript)
	if err != nil {
		return nil, transcript, err
	}
	return parsed, transcript, nil
}

func (s *Service) ParseWorkoutText(ctx context.Context, text string) (_ []ParsedWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "assistant.service.parseWorkoutText")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	output, err := s.client.Complete(ctx, parseWorkoutSystemPrompt, text)
	if err != nil {
		return nil, fmt.Errorf("complete: %w", err)
	}

	rawJSON, err := ExtractJSON(output)
	if err != nil {
		log.Errorf("parse workout text, unparsable model output: %q", output)
		return nil, err
	}

	var parsed []ParsedWorkout
	if err := json.Unmarshal([]byte(rawJSON), &parsed); err != nil {
		log.Errorf("parse workout text, unmarshal model output: %s", err)
		return nil, ErrUnparsableOutput
	}

	return parsed, nil
}

const suggestWorkoutSystemPrompt = `You are a strength training coach.
Given a training goal, respond ONLY with a JSON array of objects with keys:
"exercise" (string), "sets" (int), "reps" (int), "weight" (number), "unit" ("kg" or "lbs").
Suggest 4 to 6 exercises. No prose, no markdown.`

func (s *Service) SuggestWorkout(ctx context.Context, goal string) (_ []ParsedWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "assistant.service.suggestWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	output, err := s.client.Complete(ctx, suggestWorkoutSystemPrompt, goal)
	if err != nil {
		return nil, fmt.Errorf("complete: %w", err)
	}

	rawJSON, err := ExtractJSON(output)
	if err != nil {
		return nil, err
	}

	var suggested []ParsedWorkout
	if err := json.Unmarshal([]byte(rawJSON), &suggested); err != nil {
		return nil, ErrUnparsableOutput
	}
	return suggested, nil
}

// SuggestedHabit mirrors the habit shape without ids, since nothing
// is persisted until the user accepts a suggestion.
type SuggestedHabit struct {
	Name      string `json:"name"`
	Frequency string `json:"frequency"`
}

const suggestHabitsSystemPrompt = `You are a habit coach.
Given a personal goal, respond ONLY with a JSON array of objects with keys:
"name" (string), "frequency" ("daily" or "weekly").
Suggest 3 to 5 habits. No prose, no markdown.`

func (s *Service) SuggestHabits(ctx context.Context, goal string) (_ []SuggestedHabit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "assistant.service.suggestHabits")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	output, err := s.client.Complete(ctx, suggestHabitsSystemPrompt, goal)
	if err != nil {
		return nil, fmt.Errorf("complete: %w", err)
	}

	rawJSON, err := ExtractJSON(output)
	if err != nil {
		return nil, err
	}

	var suggested []SuggestedHabit
	if err := json.Unmarshal([]byte(rawJSON), &suggested); err != nil {
		return nil, ErrUnparsableOutput
	}
	return suggested, nil
}

const weeklyInsightsSystemPrompt = `You are a training analyst. Given weekly workout volume data as JSON,
write a short plain-text summary (3-4 sentences) of trends and one concrete suggestion.`

// WeeklyInsights prompts the model with the recent training trend. The
// result is cached per user since the underlying data only changes a
// few times a day at most.
func (s *Service) WeeklyInsights(ctx context.Context, userID int) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "assistant.service.weeklyInsights")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	cacheKey := []byte("insights::" + strconv.Itoa(userID))
	if cached, err := s.cache.Get(cacheKey); err == nil {
		log.Tracef("weekly insights for user %d served from cache", userID)
		return string(cached), nil
	}

	startWeek, endWeek := stats.LastNWeeks(s.now(), insightsTrendWeeks)
	trend, err := s.analyzer.WeeklyTrend(ctx, userID, startWeek, endWeek)
	if err != nil {
		return "", fmt.Errorf("weekly trend: %w", err)
	}

	trendJSON, err := json.Marshal(trend)
	if err != nil {
		return "", fmt.Errorf("marshal trend: %w", err)
	}

	insights, err := s.client.Complete(ctx, weeklyInsightsSystemPrompt, string(trendJSON))
	if err != nil {
		return "", fmt.Errorf("complete: %w", err)
	}

	if err := s.cache.Set(cacheKey, []byte(insights), insightsCacheExpire); err != nil {
		log.Errorf("failed to cache weekly insights for user %d: %s", userID, err)
	}

	return insights, nil
}
