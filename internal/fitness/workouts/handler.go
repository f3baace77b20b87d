package workouts

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, workout Workout) (*Workout, error)
	Get(ctx context.Context, id, userID int) (*Workout, error)
	List(ctx context.Context, params ListParams) (_ []Workout, total int, err error)
	Update(ctx context.Context, workout *Workout) error
	Delete(ctx context.Context, id, userID int) error
	Count(ctx context.Context, params WorkoutParams) (int, error)
}

type AddWorkoutResponse struct {
	Workout
	CountToday int `json:"countToday"`
}

type UpdateWorkoutResponse struct {
	UpdatedID int `json:"updatedId"`
}

type DeleteWorkoutResponse struct {
	DeletedID int `json:"deletedId"`
}

type ListResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type Handler struct {
	repo    workoutsRepo
	metrics *metrics.Manager
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/workouts", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	r.HandleFunc("/workouts/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
	r.HandleFunc("/workouts/list/page/{page}/size/{size}", handler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new")
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

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	if workout.SectionID == 0 || workout.Exercise == "" {
		http.Error(w, "error, section id or exercise empty", http.StatusBadRequest)
		return
	}
	if workout.Sets < 0 || workout.Reps < 0 || workout.Weight < 0 {
		http.Error(w, "error, negative sets, reps or weight", http.StatusBadRequest)
		return
	}
	if workout.Unit == "" {
		workout.Unit = WeightUnitKilos
	}
	if !workout.Unit.IsValid() {
		http.Error(w, "error, invalid weight unit", http.StatusBadRequest)
		return
	}

	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = time.Now()
	}
	workout.UserID = userID

	addedWorkout, err := handler.repo.Add(ctx, workout)
	if err != nil {
		log.Errorf("failed to add new workout [section %d], [%s]: %s", workout.SectionID, workout.Exercise, err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}
	handler.metrics.CounterWorkoutsLogged.Inc()

	todayMidnight := time.Now().Truncate(24 * time.Hour)
	tomorrowMidnight := todayMidnight.Add(24 * time.Hour)
	countToday, err := handler.repo.Count(ctx, WorkoutParams{
		UserID: userID,
		From:   &todayMidnight,
		To:     &tomorrowMidnight,
	})
	if err != nil {
		// just log the error, no need to return error to the client
		log.Errorf("failed to count workouts today for user %d: %s", userID, err)
		countToday = 0
	}

	addWorkoutResponse := AddWorkoutResponse{
		Workout:    *addedWorkout,
		CountToday: countToday,
	}

	addedJson, err := json.Marshal(addWorkoutResponse)
	if err != nil {
		log.Errorf("failed to marshal new workout: %s", err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout added: %s", addedJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
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

	workout, err := handler.repo.Get(ctx, id, userID)
	if err != nil && !errors.Is(err, ErrWorkoutNotFound) {
		log.Errorf("failed to get workout %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal workout: %s", err)
		http.Error(w, "failed to marshal workout", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, workoutJson)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Tracef("handle list workouts, <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Tracef("handle list workouts, <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	sectionID := 0
	if sectionIDStr := r.URL.Query().Get("section_id"); sectionIDStr != "" {
		sectionID, err = strconv.Atoi(sectionIDStr)
		if err != nil {
			http.Error(w, "failed to parse section_id param", http.StatusBadRequest)
			return
		}
	}

	listParams := ListParams{
		WorkoutParams: WorkoutParams{
			UserID:    userID,
			SectionID: sectionID,
			Exercise:  r.URL.Query().Get("exercise"),
		},
		Page: page,
		Size: size,
	}

	found, total, err := handler.repo.List(ctx, listParams)
	if err != nil {
		log.Errorf("list workouts error: %s", err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Workouts: found,
		Total:    total,
	})
	if err != nil {
		log.Errorf("marshal workouts error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, listResponseJson)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
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

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Errorf("update workout, unmarshal json params: %s", err)
		http.Error(w, "update workout failed", http.StatusBadRequest)
		return
	}

	if workout.Sets < 0 || workout.Reps < 0 || workout.Weight < 0 {
		http.Error(w, "error, negative sets, reps or weight", http.StatusBadRequest)
		return
	}
	workout.UserID = userID

	if err := handler.repo.Update(ctx, &workout); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update workout [%d]: %s", workout.ID, err)
		http.Error(w, "error, failed to update workout", http.StatusInternalServerError)
		return
	}

	updateRespJson, err := json.Marshal(UpdateWorkoutResponse{
		UpdatedID: workout.ID,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout updated: [section %d]: %d", workout.SectionID, workout.ID)
	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
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
		if errors.Is(err, ErrWorkoutNotFound) {
			log.Debugf("workout %d not found", id)
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete workout %d: %s", id, err)
		http.Error(w, "workout not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteWorkoutResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
