package habits

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

var ErrHabitNotFound = errors.New("habit not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, habit Habit) (_ *Habit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habits.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO habit (name, frequency, created_at, user_id)
				VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		habit.Name, habit.Frequency, habit.CreatedAt, habit.UserID,
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

	span.SetAttributes(attribute.Int("habit.id", id))

	habit.ID = id
	return &habit, nil
}

func (r *Repo) Get(ctx context.Context, id, userID int) (_ *Habit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habits.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, frequency, created_at, user_id
			FROM habit WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	found, err := r.rows2habits(rows)
	if err != nil {
		return nil, err
	}

	if len(found) != 1 {
		return nil, ErrHabitNotFound
	}

	return &found[0], nil
}

func (r *Repo) ListAll(ctx context.Context, userID int) (_ []Habit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habits.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, frequency, created_at, user_id
			FROM habit WHERE user_id = $1 ORDER BY created_at;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	found, err := r.rows2habits(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2habits: %w", err)
	}
	return found, nil
}

func (r *Repo) Delete(ctx context.Context, id, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habits.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	if _, err := r.db.Exec(
		ctx,
		`DELETE FROM habit_completion WHERE habit_id = $1 AND user_id = $2`,
		id, userID,
	); err != nil {
		return fmt.Errorf("delete habit completions: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM habit WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrHabitNotFound
	}
	return nil
}

// AddCompletion marks the habit done for the calendar day of the given
// timestamp. The day is normalized to midnight, and a repeated
// completion for the same habit and day is a no-op.
func (r *Repo) AddCompletion(ctx context.Context, habitID, userID int, at time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habits.addCompletion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("habit.id", habitID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO habit_completion (habit_id, day, user_id)
				VALUES ($1, $2, $3)
			ON CONFLICT (habit_id, day) DO NOTHING;`,
		habitID, StartOfDay(at), userID,
	)
	return err
}

// RemoveCompletion undoes a completion for the calendar day of the
// given timestamp.
func (r *Repo) RemoveCompletion(ctx context.Context, habitID, userID int, at time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habits.removeCompletion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("habit.id", habitID))

	_, err = r.db.Exec(
		ctx,
		`DELETE FROM habit_completion WHERE habit_id = $1 AND user_id = $2 AND day = $3`,
		habitID, userID, StartOfDay(at),
	)
	return err
}

// ListCompletions returns the completions of a habit, newest day first.
// A zero habitID returns the completions of all of the user's habits,
// used for the dashboard level streak.
func (r *Repo) ListCompletions(ctx context.Context, habitID, userID int) (_ []Completion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habits.listCompletions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("habit.id", habitID))
	span.SetAttributes(attribute.Int("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, habit_id, day, user_id FROM habit_completion
			WHERE user_id = $1
			AND ($2::int = 0 OR habit_id = $2)
			ORDER BY day DESC;`,
		userID, habitID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	completions := make([]Completion, 0)
	for rows.Next() {
		var c Completion
		if err := rows.Scan(&c.ID, &c.HabitID, &c.Day, &c.UserID); err != nil {
			return nil, err
		}
		completions = append(completions, c)
	}

	return completions, nil
}

func (r *Repo) rows2habits(rows pgx.Rows) ([]Habit, error) {
	var found []Habit
	for rows.Next() {
		var h Habit
		if err := rows.Scan(&h.ID, &h.Name, &h.Frequency, &h.CreatedAt, &h.UserID); err != nil {
			return nil, err
		}
		found = append(found, h)
	}

	if found == nil {
		found = make([]Habit, 0)
	}

	return found, nil
}
