package stats

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/traintrack/internal/auth"
	"github.com/2beens/traintrack/internal/telemetry/tracing"
	"github.com/2beens/traintrack/pkg"
)

const defaultTrendWeeks = 8

type Handler struct {
	analyzer *Analyzer
	now      func() time.Time
}

func NewHandler(analyzer *Analyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
		now:      time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/stats/progress", handler.HandleSectionProgress).Methods("GET", "OPTIONS").Name("section-progress")
	r.HandleFunc("/stats/trend", handler.HandleWeeklyTrend).Methods("GET", "OPTIONS").Name("weekly-trend")
}

// HandleSectionProgress returns the completed-vs-target view per section
// for the requested window, defaulting to the current week.
func (handler *Handler) HandleSectionProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.sectionProgress")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	from, to := CurrentWeekWindow(handler.now())
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "failed to parse from param", http.StatusBadRequest)
			return
		}
		from = parsed
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		parsed, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "failed to parse to param", http.StatusBadRequest)
			return
		}
		to = parsed
	}

	progress, err := handler.analyzer.SectionProgress(ctx, userID, from, to)
	if err != nil {
		log.Errorf("failed to get section progress: %s", err)
		http.Error(w, "failed to get section progress", http.StatusInternalServerError)
		return
	}

	progressJson, err := json.Marshal(progress)
	if err != nil {
		log.Errorf("failed to marshal section progress: %s", err)
		http.Error(w, "failed to marshal section progress", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, progressJson)
}

// HandleWeeklyTrend returns the chronological weekly trend series for
// the last N weeks (default 8).
func (handler *Handler) HandleWeeklyTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.weeklyTrend")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	weeks := defaultTrendWeeks
	if weeksStr := r.URL.Query().Get("weeks"); weeksStr != "" {
		parsed, err := strconv.Atoi(weeksStr)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid weeks param", http.StatusBadRequest)
			return
		}
		weeks = parsed
	}

	startWeek, endWeek := LastNWeeks(handler.now(), weeks)
	series, err := handler.analyzer.WeeklyTrend(ctx, userID, startWeek, endWeek)
	if err != nil {
		log.Errorf("failed to get weekly trend: %s", err)
		http.Error(w, "failed to get weekly trend", http.StatusInternalServerError)
		return
	}

	seriesJson, err := json.Marshal(series)
	if err != nil {
		log.Errorf("failed to marshal weekly trend: %s", err)
		http.Error(w, "failed to marshal weekly trend", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, seriesJson)
}
