package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/traintrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type WorkoutParams struct {
	UserID    int
	SectionID int
	Exercise  string
	From      *time.Time
	To        *time.Time
}

type ListParams struct {
	WorkoutParams
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout
				(section_id, exercise, sets, reps, weight, unit, done, created_at, user_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id;`,
		workout.SectionID, workout.Exercise, workout.Sets, workout.Reps,
		workout.Weight, workout.Unit, workout.Done, workout.CreatedAt, workout.UserID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("workout.id", id))

	workout.ID = id
	return &workout, nil
}

func (r *Repo) Update(ctx context.Context, workout *Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", workout.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout SET sets = $1, reps = $2, weight = $3, unit = $4, done = $5 WHERE id = $6 AND user_id = $7;`,
		workout.Sets, workout.Reps, workout.Weight, workout.Unit, workout.Done, workout.ID, workout.UserID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// DeleteForSection removes all workouts of a section. Used when a section
// is deleted, so that no workout is left pointing to a missing section.
func (r *Repo) DeleteForSection(ctx context.Context, sectionID, userID int) (deleted int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteForSection")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("section.id", sectionID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout WHERE section_id = $1 AND user_id = $2`,
		sectionID, userID,
	)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repo) Get(ctx context.Context, id, userID int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, section_id, exercise, sets, reps, weight, unit, done, created_at, user_id
			FROM workout
			WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	found, err := r.rows2workouts(rows)
	if err != nil {
		return nil, err
	}

	if len(found) != 1 {
		return nil, ErrWorkoutNotFound
	}

	return &found[0], nil
}

// ListAll returns all workouts matching the given params, newest first.
func (r *Repo) ListAll(ctx context.Context, params WorkoutParams) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", params.UserID))
	span.SetAttributes(attribute.Int("section_id", params.SectionID))
	span.SetAttributes(attribute.String("exercise", params.Exercise))
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, section_id, exercise, sets, reps, weight, unit, done, created_at, user_id
			FROM workout
				WHERE user_id = $1
				AND ($2::int = 0 OR section_id = $2)
				AND ($3::text = '' OR exercise = $3)
				AND ($4::timestamp IS NULL OR created_at >= $4)
				AND ($5::timestamp IS NULL OR created_at <= $5)
			ORDER BY created_at DESC;`,
		params.UserID, params.SectionID, params.Exercise,
		params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	found, err := r.rows2workouts(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2workouts: %w", err)
	}
	return found, nil
}

// List is like ListAll, but returns the specific PAGE of workouts,
// i.e. is used for pagination.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Workout, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	countAll, err := r.Count(ctx, params.WorkoutParams)
	if err != nil {
		return nil, -1, err
	}

	if countAll <= limit {
		limit = countAll
		offset = 0
	}

	if countAll-offset < limit {
		offset = countAll - limit
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, section_id, exercise, sets, reps, weight, unit, done, created_at, user_id
			FROM workout
				WHERE user_id = $1
				AND ($2::int = 0 OR section_id = $2)
				AND ($3::text = '' OR exercise = $3)
			ORDER BY created_at DESC
			LIMIT $4
			OFFSET $5;`,
		params.UserID, params.SectionID, params.Exercise,
		limit, offset,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	found, err := r.rows2workouts(rows)
	if err != nil {
		return nil, -1, err
	}
	return found, countAll, nil
}

func (r *Repo) Count(ctx context.Context, params WorkoutParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT COUNT(*) FROM workout
			WHERE user_id = $1
			AND ($2::int = 0 OR section_id = $2)
			AND ($3::text = '' OR exercise = $3)
			AND ($4::timestamp IS NULL OR created_at >= $4)
			AND ($5::timestamp IS NULL OR created_at <= $5);
	`,
		params.UserID, params.SectionID, params.Exercise,
		params.From, params.To,
	)
	if err != nil {
		return -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return -1, err
	}

	if rows.Next() {
		var count int
		if err := rows.Scan(&count); err == nil {
			return count, nil
		}
	}

	return -1, errors.New("unexpected error, failed to get workouts count")
}

func (r *Repo) rows2workouts(rows pgx.Rows) ([]Workout, error) {
	var found []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(
			&w.ID, &w.SectionID, &w.Exercise, &w.Sets, &w.Reps,
			&w.Weight, &w.Unit, &w.Done, &w.CreatedAt, &w.UserID,
		); err != nil {
			return nil, err
		}
		found = append(found, w)
	}

	if found == nil {
		found = make([]Workout, 0)
	}

	return found, nil
}
