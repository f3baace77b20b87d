package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/2beens/traintrack/internal/auth"
	"github.com/2beens/traintrack/internal/telemetry/metrics"
	"github.com/2beens/traintrack/internal/telemetry/tracing"
	"github.com/2beens/traintrack/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// 10 MB is plenty for a one-minute voice memo
const maxVoiceUploadBytes = 10 << 20

type assistantService interface {
	ParseWorkoutVoice(ctx context.Context, audio io.Reader, filename string) ([]ParsedWorkout, string, error)
	ParseWorkoutText(ctx context.Context, text string) ([]ParsedWorkout, error)
	SuggestWorkout(ctx context.Context, goal string) ([]ParsedWorkout, error)
	SuggestHabits(ctx context.Context, goal string) ([]SuggestedHabit, error)
	WeeklyInsights(ctx context.Context, userID int) (string, error)
}

type Handler struct {
	service assistantService
	metrics *metrics.Manager
}

func NewHandler(service assistantService, metrics *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metrics,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/assistant/voice", handler.HandleParseVoice).Methods("POST", "OPTIONS").Name("assistant-voice")
	router.HandleFunc("/assistant/parse", handler.HandleParseText).Methods("POST", "OPTIONS").Name("assistant-parse")
	router.HandleFunc("/assistant/workout", handler.HandleSuggestWorkout).Methods("POST", "OPTIONS").Name("assistant-workout")
	router.HandleFunc("/assistant/habits", handler.HandleSuggestHabits).Methods("POST", "OPTIONS").Name("assistant-habits")
	router.HandleFunc("/assistant/insights", handler.HandleWeeklyInsights).Methods("GET", "OPTIONS").Name("assistant-insights")
}

type parseVoiceResponse struct {
	Transcript string          `json:"transcript"`
	Workouts   []ParsedWorkout `json:"workouts"`
}

func (handler *Handler) HandleParseVoice(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "assistant.handler.parseVoice")
	defer span.End()

	if _, ok := auth.UserIDFromContext(ctx); !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	handler.metrics.CounterAssistantRequests.Inc()

	if err := r.ParseMultipartForm(maxVoiceUploadBytes); err != nil {
		log.Errorf("parse voice, parse multipart form: %s", err)
		http.Error(w, "error, invalid multipart form", http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("audio")
	if err != nil {
		http.Error(w, "error, audio file missing", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// some clients send the blob without a filename, the transcription
	// api still wants one with a recognizable extension
	filename := fileHeader.Filename
	if filename == "" {
		filename = uuid.NewString() + ".m4a"
	}

	started := time.Now()
	parsed, transcript, err := handler.service.ParseWorkoutVoice(ctx, file, filename)
	if err != nil {
		handler.writeServiceError(w, "parse workout voice", err)
		return
	}
	log.Debugf("voice workout parsed in %s, %d entries", time.Since(started), len(parsed))

	handler.writeJSON(w, parseVoiceResponse{
		Transcript: transcript,
		Workouts:   parsed,
	})
}

type parseTextRequest struct {
	Text string `json:"text"`
}

func (handler *Handler) HandleParseText(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "assistant.handler.parseText")
	defer span.End()

	if _, ok := auth.UserIDFromContext(ctx); !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	handler.metrics.CounterAssistantRequests.Inc()

	var req parseTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		http.Error(w, "error, text empty", http.StatusBadRequest)
		return
	}

	parsed, err := handler.service.ParseWorkoutText(ctx, req.Text)
	if err != nil {
		handler.writeServiceError(w, "parse workout text", err)
		return
	}

	handler.writeJSON(w, parsed)
}

type suggestRequest struct {
	Goal string `json:"goal"`
}

func (handler *Handler) HandleSuggestWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "assistant.handler.suggestWorkout")
	defer span.End()

	if _, ok := auth.UserIDFromContext(ctx); !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	handler.metrics.CounterAssistantRequests.Inc()

	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Goal == "" {
		http.Error(w, "error, goal empty", http.StatusBadRequest)
		return
	}

	suggested, err := handler.service.SuggestWorkout(ctx, req.Goal)
	if err != nil {
		handler.writeServiceError(w, "suggest workout", err)
		return
	}

	handler.writeJSON(w, suggested)
}

func (handler *Handler) HandleSuggestHabits(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "assistant.handler.suggestHabits")
	defer span.End()

	if _, ok := auth.UserIDFromContext(ctx); !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	handler.metrics.CounterAssistantRequests.Inc()

	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Goal == "" {
		http.Error(w, "error, goal empty", http.StatusBadRequest)
		return
	}

	suggested, err := handler.service.SuggestHabits(ctx, req.Goal)
	if err != nil {
		handler.writeServiceError(w, "suggest habits", err)
		return
	}

	handler.writeJSON(w, suggested)
}

type insightsResponse struct {
	Insights string `json:"insights"`
}

func (handler *Handler) HandleWeeklyInsights(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "assistant.handler.weeklyInsights")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	handler.metrics.CounterAssistantRequests.Inc()

	insights, err := handler.service.WeeklyInsights(ctx, userID)
	if err != nil {
		handler.writeServiceError(w, "weekly insights", err)
		return
	}

	handler.writeJSON(w, insightsResponse{Insights: insights})
}

func (handler *Handler) writeServiceError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, ErrUnparsableOutput) {
		handler.metrics.CounterAssistantParseFailures.Inc()
		log.Errorf("%s: %s", op, err)
		http.Error(w, "could not parse model output", http.StatusBadGateway)
		return
	}
	log.Errorf("%s: %s", op, err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func (handler *Handler) writeJSON(w http.ResponseWriter, payload any) {
	respBytes, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal assistant response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}
