package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"

	"github.com/2beens/fitplanner/internal/telemetry/tracing"
)

// LatestLimit caps the "latest schedule" read to one week of days.
const LatestLimit = len(Weekdays)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const selectColumns = `
	schedule_id, user_id, goal, available_days, available_time, day, exercises, notes, created_date
`

// Add stores a single day outside of a regeneration. The service writes whole plans through Replace.
func (r *Repo) Add(ctx context.Context, userID int, meta PlanMeta, plan DayPlan) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", userID))

	id, err := insertDayPlan(ctx, r.db, userID, meta, plan)
	if err != nil {
		return 0, fmt.Errorf("create schedule: %w", err)
	}
	return id, nil
}

// ListByUser returns every stored row of the user, newest first.
// Routes serve the latest week through ListLatest instead.
func (r *Repo) ListByUser(ctx context.Context, userID int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.listbyuser")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", userID))

	entries, err := r.query(ctx, `
		SELECT `+selectColumns+`
		FROM schedules
		WHERE user_id = $1
		ORDER BY created_date DESC, schedule_id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list schedules by user: %w", err)
	}
	return entries, nil
}

// ListLatest returns at most one week of the newest schedule rows.
// Rows written by one Replace share created_date and come back in plan order.
func (r *Repo) ListLatest(ctx context.Context, userID int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.listlatest")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", userID))

	entries, err := r.query(ctx, `
		SELECT `+selectColumns+`
		FROM schedules
		WHERE user_id = $1
		ORDER BY created_date DESC, schedule_id ASC
		LIMIT $2
	`, userID, LatestLimit)
	if err != nil {
		return nil, fmt.Errorf("get latest schedule: %w", err)
	}
	return entries, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("schedule.id", id))

	row := r.db.QueryRow(ctx, `
		SELECT `+selectColumns+`
		FROM schedules
		WHERE schedule_id = $1
	`, id)
	entry, err := scanEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}
	return entry, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("schedule.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM schedules WHERE schedule_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrScheduleNotFound
	}
	return nil
}

// DeleteAllForUser returns the number of removed rows.
func (r *Repo) DeleteAllForUser(ctx context.Context, userID int) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.deleteallforuser")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", userID))

	tag, err := r.db.Exec(ctx, `DELETE FROM schedules WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("delete user schedules: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) Count(ctx context.Context, userID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.count")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", userID))

	var count int
	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM schedules WHERE user_id = $1
	`, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count schedules: %w", err)
	}
	return count, nil
}

// Replace swaps all schedule rows of the user for the given plan in one transaction.
// On any failure the previous schedule stays in place.
func (r *Repo) Replace(ctx context.Context, userID int, meta PlanMeta, plan []DayPlan) (_ []int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.replace")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("goal", meta.Goal.String()),
		attribute.Int("plan.days", len(plan)),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("replace schedule, begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = multierr.Append(err, fmt.Errorf("rollback: %w", rollbackErr))
			}
			return
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			err = fmt.Errorf("replace schedule, commit: %w", commitErr)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM schedules WHERE user_id = $1`, userID); err != nil {
		return nil, fmt.Errorf("replace schedule, delete previous: %w", err)
	}

	ids := make([]int, 0, len(plan))
	for _, dp := range plan {
		id, insertErr := insertDayPlan(ctx, tx, userID, meta, dp)
		if insertErr != nil {
			err = fmt.Errorf("replace schedule, insert %s: %w", dp.Day, insertErr)
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// rowQuerier is satisfied by both the pool and a transaction.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertDayPlan(ctx context.Context, q rowQuerier, userID int, meta PlanMeta, plan DayPlan) (int, error) {
	exercisesJson, err := encodeExercises(plan.Exercises)
	if err != nil {
		return 0, err
	}

	var id int
	err = q.QueryRow(ctx, `
		INSERT INTO schedules (user_id, goal, available_days, available_time, day, exercises, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING schedule_id
	`,
		userID,
		meta.Goal.String(),
		meta.AvailableDays,
		meta.AvailableTime,
		plan.Day.String(),
		exercisesJson,
		plan.Notes,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repo) query(ctx context.Context, sql string, args ...any) ([]Entry, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func scanEntry(row pgx.Row) (*Entry, error) {
	var (
		entry         Entry
		goal, day     string
		exercisesJson []byte
	)
	if err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&goal,
		&entry.AvailableDays,
		&entry.AvailableTime,
		&day,
		&exercisesJson,
		&entry.Notes,
		&entry.CreatedDate,
	); err != nil {
		return nil, err
	}

	exercises, err := decodeExercises(exercisesJson)
	if err != nil {
		return nil, fmt.Errorf("schedule %d: %w", entry.ID, err)
	}
	entry.Goal = Goal(goal)
	entry.Day = Weekday(day)
	entry.Exercises = exercises

	return &entry, nil
}

// exercises are stored as a JSONB array
func encodeExercises(exercises []Exercise) ([]byte, error) {
	if exercises == nil {
		exercises = []Exercise{}
	}
	exercisesJson, err := json.Marshal(exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises: %w", err)
	}
	return exercisesJson, nil
}

func decodeExercises(data []byte) ([]Exercise, error) {
	exercises := make([]Exercise, 0)
	if len(data) == 0 {
		return exercises, nil
	}
	if err := json.Unmarshal(data, &exercises); err != nil {
		return nil, fmt.Errorf("unmarshal exercises: %w", err)
	}
	return exercises, nil
}
