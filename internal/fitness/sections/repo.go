package sections

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

var ErrSectionNotFound = errors.New("section not found")

type SectionParams struct {
	UserID       int
	Name         string
	From         *time.Time
	To           *time.Time
	OnlyArchived bool
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, section Section) (_ *Section, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sections.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO section
				(name, target_sets, week_start, archived, user_id)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		section.Name, section.TargetSets, section.WeekStart, section.Archived, section.UserID,
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

	span.SetAttributes(attribute.Int("section.id", id))

	section.ID = id
	return &section, nil
}

func (r *Repo) Get(ctx context.Context, id, userID int) (_ *Section, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sections.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, target_sets, week_start, archived, user_id
			FROM section WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	found, err := r.rows2sections(rows)
	if err != nil {
		return nil, err
	}

	if len(found) != 1 {
		return nil, ErrSectionNotFound
	}

	return &found[0], nil
}

func (r *Repo) ListAll(ctx context.Context, params SectionParams) (_ []Section, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sections.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", params.UserID))
	span.SetAttributes(attribute.String("name", params.Name))
	span.SetAttributes(attribute.Bool("only-archived", params.OnlyArchived))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, target_sets, week_start, archived, user_id
			FROM section
				WHERE user_id = $1
				AND ($2::text = '' OR name = $2)
				AND ($3::timestamp IS NULL OR week_start >= $3)
				AND ($4::timestamp IS NULL OR week_start <= $4)
				AND ($5::boolean IS FALSE OR archived IS TRUE)
			ORDER BY week_start DESC, name;`,
		params.UserID, params.Name, params.From, params.To, params.OnlyArchived,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	found, err := r.rows2sections(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2sections: %w", err)
	}
	return found, nil
}

func (r *Repo) Update(ctx context.Context, section *Section) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sections.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", section.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE section SET name = $1, target_sets = $2, week_start = $3, archived = $4
			WHERE id = $5 AND user_id = $6;`,
		section.Name, section.TargetSets, section.WeekStart, section.Archived,
		section.ID, section.UserID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrSectionNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sections.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM section WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSectionNotFound
	}
	return nil
}

func (r *Repo) rows2sections(rows pgx.Rows) ([]Section, error) {
	var found []Section
	for rows.Next() {
		var s Section
		if err := rows.Scan(
			&s.ID, &s.Name, &s.TargetSets, &s.WeekStart, &s.Archived, &s.UserID,
		); err != nil {
			return nil, err
		}
		found = append(found, s)
	}

	if found == nil {
		found = make([]Section, 0)
	}

	return found, nil
}
