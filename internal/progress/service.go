package progress

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitplanner/internal/telemetry/metrics"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=progress_test

type progressRepo interface {
	Add(ctx context.Context, entry Entry) (int, error)
	ListByUser(ctx context.Context, userID int) ([]Entry, error)
	ListByDateRange(ctx context.Context, userID int, start, end time.Time) ([]Entry, error)
	Get(ctx context.Context, id int) (*Entry, error)
	Update(ctx context.Context, id int, update Update) error
	Delete(ctx context.Context, id int) error
	LatestWeight(ctx context.Context, userID int) (*float64, error)
	Count(ctx context.Context, userID int) (int, error)
}

type WeightPoint struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
}

// LiftPoint is the best set of a lift on a given date.
type LiftPoint struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
	Reps   int       `json:"reps"`
}

// ChartData holds time series ordered by date ascending.
type ChartData struct {
	Weight []WeightPoint           `json:"weight"`
	Lifts  map[string][]LiftPoint `json:"lifts"`
}

type Stats struct {
	TotalEntries   int        `json:"totalEntries"`
	LatestWeight   *float64   `json:"latestWeight"`
	StartingWeight *float64   `json:"startingWeight"`
	WeightChange   *float64   `json:"weightChange"`
	FirstEntryDate *time.Time `json:"firstEntryDate"`
	LastEntryDate  *time.Time `json:"lastEntryDate"`
	LiftsLogged    []string   `json:"liftsLogged"`
}

type Service struct {
	repo           progressRepo
	metricsManager *metrics.Manager
}

func NewService(repo progressRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (s *Service) LogProgress(ctx context.Context, entry Entry) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.log")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", entry.UserID))

	if entry.UserID <= 0 || entry.Date.IsZero() {
		return 0, fmt.Errorf("%w: userId and date are required", ErrInvalidProgress)
	}
	if err := entry.LiftData.Validate(); err != nil {
		return 0, err
	}
	if err := validateNotes(entry.Notes); err != nil {
		return 0, err
	}

	id, err := s.repo.Add(ctx, entry)
	if err != nil {
		return 0, fmt.Errorf("log progress: %w", err)
	}

	s.metricsManager.CounterProgressLogged.Inc()
	return id, nil
}

func (s *Service) GetProgress(ctx context.Context, id int) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	entry, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return entry, nil
}

func (s *Service) GetUserProgress(ctx context.Context, userID int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.getuserprogress")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user progress: %w", err)
	}
	return entries, nil
}

func (s *Service) GetProgressByDateRange(ctx context.Context, userID int, start, end time.Time) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.getbydaterange")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if start.After(end) {
		return nil, fmt.Errorf("%w: start date must not be after end date", ErrInvalidProgress)
	}

	entries, err := s.repo.ListByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("get progress by date range: %w", err)
	}
	return entries, nil
}

func (s *Service) UpdateProgress(ctx context.Context, id int, update Update) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := update.LiftData.Validate(); err != nil {
		return err
	}
	if err := validateNotes(update.Notes); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, update); err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	return nil
}

func (s *Service) DeleteProgress(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}

// GetProgressForCharts builds the weight series and, per lift, the series of best sets.
func (s *Service) GetProgressForCharts(ctx context.Context, userID int) (_ *ChartData, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.charts")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get progress for charts: %w", err)
	}

	return buildChartData(entries), nil
}

func buildChartData(entries []Entry) *ChartData {
	chart := &ChartData{
		Weight: make([]WeightPoint, 0, len(entries)),
		Lifts:  make(map[string][]LiftPoint),
	}

	// entries come newest first
	for _, entry := range slices.Backward(entries) {
		if entry.Weight != nil {
			chart.Weight = append(chart.Weight, WeightPoint{
				Date:   entry.Date,
				Weight: *entry.Weight,
			})
		}
		for lift := range entry.LiftData {
			best, ok := entry.LiftData.BestSet(lift)
			if !ok {
				continue
			}
			chart.Lifts[lift] = append(chart.Lifts[lift], LiftPoint{
				Date:   entry.Date,
				Weight: best.Weight,
				Reps:   best.Reps,
			})
		}
	}

	return chart
}

func (s *Service) GetProgressStats(ctx context.Context, userID int) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.stats")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	count, err := s.repo.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get progress stats: %w", err)
	}
	latestWeight, err := s.repo.LatestWeight(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get progress stats: %w", err)
	}
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get progress stats: %w", err)
	}

	stats := &Stats{
		TotalEntries: count,
		LatestWeight: latestWeight,
		LiftsLogged:  make([]string, 0),
	}
	if len(entries) == 0 {
		return stats, nil
	}

	last := entries[0].Date
	first := entries[len(entries)-1].Date
	stats.LastEntryDate = &last
	stats.FirstEntryDate = &first

	lifts := make(map[string]struct{})
	for _, entry := range entries {
		if entry.Weight != nil {
			// iterating newest to oldest, the last seen weight is the starting one
			w := *entry.Weight
			stats.StartingWeight = &w
		}
		for lift := range entry.LiftData {
			lifts[lift] = struct{}{}
		}
	}
	for lift := range lifts {
		stats.LiftsLogged = append(stats.LiftsLogged, lift)
	}
	sort.Strings(stats.LiftsLogged)

	if stats.LatestWeight != nil && stats.StartingWeight != nil {
		change := *stats.LatestWeight - *stats.StartingWeight
		stats.WeightChange = &change
	}

	return stats, nil
}
