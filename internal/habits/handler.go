package habits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/traintrack/internal/auth"
	"github.com/2beens/traintrack/internal/telemetry/metrics"
	"github.com/2beens/traintrack/internal/telemetry/tracing"
	"github.com/2beens/traintrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=habits_test

type habitsRepo interface {
	Add(ctx context.Context, habit Habit) (*Habit, error)
	Get(ctx context.Context, id, userID int) (*Habit, error)
	ListAll(ctx context.Context, userID int) ([]Habit, error)
	Delete(ctx context.Context, id, userID int) error
	AddCompletion(ctx context.Context, habitID, userID int, at time.Time) error
	RemoveCompletion(ctx context.Context, habitID, userID int, at time.Time) error
	ListCompletions(ctx context.Context, habitID, userID int) ([]Completion, error)
}

type StreakResponse struct {
	HabitID int `json:"habitId,omitempty"`
	Streak  int `json:"streak"`
}

type DeleteHabitResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo    habitsRepo
	metrics *metrics.Manager
	now     func() time.Time
}

func NewHandler(repo habitsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
		now:     time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/habits", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-habit")
	r.HandleFunc("/habits", handler.HandleList).Methods("GET", "OPTIONS").Name("list-habits")
	r.HandleFunc("/habits/streak", handler.HandleDashboardStreak).Methods("GET", "OPTIONS").Name("dashboard-streak")
	r.HandleFunc("/habits/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-habit")
	r.HandleFunc("/habits/{id}/streak", handler.HandleStreak).Methods("GET", "OPTIONS").Name("habit-streak")
	r.HandleFunc("/habits/{id}/complete", handler.HandleComplete).Methods("POST", "OPTIONS").Name("complete-habit")
	r.HandleFunc("/habits/{id}/complete", handler.HandleUncomplete).Methods("DELETE", "OPTIONS").Name("uncomplete-habit")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habits.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var habit Habit
	if err := json.NewDecoder(r.Body).Decode(&habit); err != nil {
		log.Tracef("new habit, unmarshal json params: %s", err)
		http.Error(w, "add habit failed", http.StatusBadRequest)
		return
	}

	if habit.Name == "" {
		http.Error(w, "error, habit name empty", http.StatusBadRequest)
		return
	}
	if habit.Frequency == "" {
		habit.Frequency = FrequencyDaily
	}
	if !habit.Frequency.IsValid() {
		http.Error(w, "error, invalid habit frequency", http.StatusBadRequest)
		return
	}
	if habit.CreatedAt.IsZero() {
		habit.CreatedAt = handler.now()
	}
	habit.UserID = userID

	addedHabit, err := handler.repo.Add(ctx, habit)
	if err != nil {
		log.Errorf("failed to add new habit [%s]: %s", habit.Name, err)
		http.Error(w, "error, failed to add new habit", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(addedHabit)
	if err != nil {
		log.Errorf("failed to marshal new habit: %s", err)
		http.Error(w, "error, failed to add new habit", http.StatusInternalServerError)
		return
	}

	log.Debugf("new habit added: %s", addedJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habits.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	found, err := handler.repo.ListAll(ctx, userID)
	if err != nil {
		log.Errorf("list habits error: %s", err)
		http.Error(w, "failed to get habits", http.StatusInternalServerError)
		return
	}

	foundJson, err := json.Marshal(found)
	if err != nil {
		log.Errorf("marshal habits error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, foundJson)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habits.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, ErrHabitNotFound) {
			log.Debugf("habit %d not found", id)
			http.Error(w, "habit not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete habit %d: %s", id, err)
		http.Error(w, "habit not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteHabitResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

// HandleComplete marks the habit done for today (or the day given via
// the <at> query param). Completing an already completed day is a no-op.
func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habits.complete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	at := handler.now()
	if atStr := r.URL.Query().Get("at"); atStr != "" {
		at, err = time.Parse(time.RFC3339, atStr)
		if err != nil {
			http.Error(w, "failed to parse at param", http.StatusBadRequest)
			return
		}
	}

	// reject completions for unknown habits at the boundary
	if _, err := handler.repo.Get(ctx, id, userID); err != nil {
		if errors.Is(err, ErrHabitNotFound) {
			http.Error(w, "habit not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get habit %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := handler.repo.AddCompletion(ctx, id, userID, at); err != nil {
		log.Errorf("failed to complete habit %d: %s", id, err)
		http.Error(w, "failed to complete habit", http.StatusInternalServerError)
		return
	}
	handler.metrics.CounterHabitCompletions.Inc()

	handler.writeStreak(ctx, w, id, userID)
}

// HandleUncomplete undoes a completion, the rollback path of the
// optimistic completion toggle in the client.
func (handler *Handler) HandleUncomplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habits.uncomplete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	at := handler.now()
	if atStr := r.URL.Query().Get("at"); atStr != "" {
		at, err = time.Parse(time.RFC3339, atStr)
		if err != nil {
			http.Error(w, "failed to parse at param", http.StatusBadRequest)
			return
		}
	}

	if err := handler.repo.RemoveCompletion(ctx, id, userID, at); err != nil {
		log.Errorf("failed to uncomplete habit %d: %s", id, err)
		http.Error(w, "failed to uncomplete habit", http.StatusInternalServerError)
		return
	}

	handler.writeStreak(ctx, w, id, userID)
}

func (handler *Handler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habits.streak")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if _, err := handler.repo.Get(ctx, id, userID); err != nil {
		if errors.Is(err, ErrHabitNotFound) {
			http.Error(w, "habit not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get habit %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	handler.writeStreak(ctx, w, id, userID)
}

// HandleDashboardStreak merges the completions of all of the user's
// habits into a single streak.
func (handler *Handler) HandleDashboardStreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habits.dashboardStreak")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	handler.writeStreak(ctx, w, 0, userID)
}

func (handler *Handler) writeStreak(ctx context.Context, w http.ResponseWriter, habitID, userID int) {
	completions, err := handler.repo.ListCompletions(ctx, habitID, userID)
	if err != nil {
		log.Errorf("failed to list completions for habit %d: %s", habitID, err)
		http.Error(w, "failed to get streak", http.StatusInternalServerError)
		return
	}

	streakRespJson, err := json.Marshal(StreakResponse{
		HabitID: habitID,
		Streak:  CurrentStreak(CompletionDays(completions), handler.now()),
	})
	if err != nil {
		log.Errorf("failed to marshal streak response: %s", err)
		http.Error(w, "failed to marshal streak response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(streakRespJson))
}
