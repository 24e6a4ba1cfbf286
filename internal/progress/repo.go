package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitplanner/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, entry Entry) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", entry.UserID))

	liftDataJson, err := encodeLiftData(entry.LiftData)
	if err != nil {
		return 0, fmt.Errorf("create progress: %w", err)
	}

	var id int
	err = r.db.QueryRow(ctx, `
		INSERT INTO progress (user_id, date, weight, lift_data, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING progress_id
	`,
		entry.UserID,
		entry.Date,
		entry.Weight,
		nullableJSON(liftDataJson),
		entry.Notes,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create progress: %w", err)
	}
	return id, nil
}

// ListByUser returns the user's entries, newest date first.
func (r *Repo) ListByUser(ctx context.Context, userID int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.listbyuser")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", userID))

	entries, err := r.query(ctx, `
		SELECT progress_id, user_id, date, weight, lift_data, notes
		FROM progress
		WHERE user_id = $1
		ORDER BY date DESC, progress_id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list progress by user: %w", err)
	}
	return entries, nil
}

// ListByDateRange returns entries with start <= date <= end, oldest first.
func (r *Repo) ListByDateRange(ctx context.Context, userID int, start, end time.Time) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.listbydaterange")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("start", start.Format(DateLayout)),
		attribute.String("end", end.Format(DateLayout)),
	)

	entries, err := r.query(ctx, `
		SELECT progress_id, user_id, date, weight, lift_data, notes
		FROM progress
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC, progress_id ASC
	`, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list progress by date range: %w", err)
	}
	return entries, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("progress.id", id))

	row := r.db.QueryRow(ctx, `
		SELECT progress_id, user_id, date, weight, lift_data, notes
		FROM progress
		WHERE progress_id = $1
	`, id)
	entry, err := scanEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProgressNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return entry, nil
}

func (r *Repo) Update(ctx context.Context, id int, update Update) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("progress.id", id))

	liftDataJson, err := encodeLiftData(update.LiftData)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE progress
		SET weight = $1, lift_data = $2, notes = $3
		WHERE progress_id = $4
	`, update.Weight, nullableJSON(liftDataJson), update.Notes, id)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProgressNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("progress.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM progress WHERE progress_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProgressNotFound
	}
	return nil
}

// LatestWeight returns the most recent non-null weight, nil if the user never logged one.
func (r *Repo) LatestWeight(ctx context.Context, userID int) (_ *float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.latestweight")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", userID))

	var weight float64
	err = r.db.QueryRow(ctx, `
		SELECT weight FROM progress
		WHERE user_id = $1 AND weight IS NOT NULL
		ORDER BY date DESC, progress_id DESC
		LIMIT 1
	`, userID).Scan(&weight)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get latest weight: %w", err)
	}
	return &weight, nil
}

func (r *Repo) Count(ctx context.Context, userID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.count")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", userID))

	var count int
	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM progress WHERE user_id = $1
	`, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("get progress count: %w", err)
	}
	return count, nil
}

// nullableJSON makes absent JSON an untyped nil, which is always sent as NULL
func nullableJSON(data []byte) any {
	if data == nil {
		return nil
	}
	return data
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
		entry        Entry
		liftDataJson []byte
	)
	if err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Date,
		&entry.Weight,
		&liftDataJson,
		&entry.Notes,
	); err != nil {
		return nil, err
	}

	liftData, err := decodeLiftData(liftDataJson)
	if err != nil {
		return nil, fmt.Errorf("progress %d: %w", entry.ID, err)
	}
	entry.LiftData = liftData

	return &entry, nil
}
