package sections

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
	"github.com/2beens/traintrack/internal/telemetry/tracing"
	"github.com/2beens/traintrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sections_test

type sectionsRepo interface {
	Add(ctx context.Context, section Section) (*Section, error)
	Get(ctx context.Context, id, userID int) (*Section, error)
	ListAll(ctx context.Context, params SectionParams) ([]Section, error)
	Update(ctx context.Context, section *Section) error
	Delete(ctx context.Context, id, userID int) error
}

// workoutsCleaner removes the workouts of a deleted section. The section
// to workout link is an application level contract, not a db constraint,
// so the cascade has to happen here.
type workoutsCleaner interface {
	DeleteForSection(ctx context.Context, sectionID, userID int) (int, error)
}

type DeleteSectionResponse struct {
	DeletedID       int `json:"deletedId"`
	DeletedWorkouts int `json:"deletedWorkouts"`
}

type UpdateSectionResponse struct {
	UpdatedID int `json:"updatedId"`
}

type Handler struct {
	repo     sectionsRepo
	workouts workoutsCleaner
}

func NewHandler(repo sectionsRepo, workouts workoutsCleaner) *Handler {
	return &Handler{
		repo:     repo,
		workouts: workouts,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/sections", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-section")
	r.HandleFunc("/sections", handler.HandleList).Methods("GET", "OPTIONS").Name("list-sections")
	r.HandleFunc("/sections", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-section")
	r.HandleFunc("/sections/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-section")
	r.HandleFunc("/sections/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-section")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sections.new")
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

	var section Section
	if err := json.NewDecoder(r.Body).Decode(&section); err != nil {
		log.Tracef("new section, unmarshal json params: %s", err)
		http.Error(w, "add section failed", http.StatusBadRequest)
		return
	}

	if section.Name == "" {
		http.Error(w, "error, section name empty", http.StatusBadRequest)
		return
	}
	if section.TargetSets < 0 {
		http.Error(w, "error, negative target sets", http.StatusBadRequest)
		return
	}
	if section.WeekStart.IsZero() {
		section.WeekStart = time.Now()
	}
	section.UserID = userID

	addedSection, err := handler.repo.Add(ctx, section)
	if err != nil {
		log.Errorf("failed to add new section [%s]: %s", section.Name, err)
		http.Error(w, "error, failed to add new section", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(addedSection)
	if err != nil {
		log.Errorf("failed to marshal new section: %s", err)
		http.Error(w, "error, failed to add new section", http.StatusInternalServerError)
		return
	}

	log.Debugf("new section added: %s", addedJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sections.get")
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

	section, err := handler.repo.Get(ctx, id, userID)
	if err != nil && !errors.Is(err, ErrSectionNotFound) {
		log.Errorf("failed to get section %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, ErrSectionNotFound) {
		http.Error(w, "section not found", http.StatusNotFound)
		return
	}

	sectionJson, err := json.Marshal(section)
	if err != nil {
		log.Errorf("failed to marshal section: %s", err)
		http.Error(w, "failed to marshal section", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, sectionJson)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sections.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	params := SectionParams{
		UserID: userID,
		Name:   r.URL.Query().Get("name"),
	}
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "failed to parse from param", http.StatusBadRequest)
			return
		}
		params.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "failed to parse to param", http.StatusBadRequest)
			return
		}
		params.To = &to
	}
	if r.URL.Query().Get("only_archived") == "true" {
		params.OnlyArchived = true
	}

	found, err := handler.repo.ListAll(ctx, params)
	if err != nil {
		log.Errorf("list sections error: %s", err)
		http.Error(w, "failed to get sections", http.StatusInternalServerError)
		return
	}

	foundJson, err := json.Marshal(found)
	if err != nil {
		log.Errorf("marshal sections error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, foundJson)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sections.update")
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

	var section Section
	if err := json.NewDecoder(r.Body).Decode(&section); err != nil {
		log.Errorf("update section, unmarshal json params: %s", err)
		http.Error(w, "update section failed", http.StatusBadRequest)
		return
	}

	if section.Name == "" {
		http.Error(w, "error, section name empty", http.StatusBadRequest)
		return
	}
	if section.TargetSets < 0 {
		http.Error(w, "error, negative target sets", http.StatusBadRequest)
		return
	}
	section.UserID = userID

	if err := handler.repo.Update(ctx, &section); err != nil {
		if errors.Is(err, ErrSectionNotFound) {
			http.Error(w, "section not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update section [%d] [%s]: %s", section.ID, section.Name, err)
		http.Error(w, "error, failed to update section", http.StatusInternalServerError)
		return
	}

	updateRespJson, err := json.Marshal(UpdateSectionResponse{
		UpdatedID: section.ID,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sections.delete")
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
		if errors.Is(err, ErrSectionNotFound) {
			log.Debugf("section %d not found", id)
			http.Error(w, "section not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete section %d: %s", id, err)
		http.Error(w, "section not deleted", http.StatusInternalServerError)
		return
	}

	deletedWorkouts, err := handler.workouts.DeleteForSection(ctx, id, userID)
	if err != nil {
		// section is gone, report the cascade failure but do not fail the request
		log.Errorf("failed to delete workouts of section %d: %s", id, err)
	}

	deleteRespJson, err := json.Marshal(DeleteSectionResponse{
		DeletedID:       id,
		DeletedWorkouts: deletedWorkouts,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
