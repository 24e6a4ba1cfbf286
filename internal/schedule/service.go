package schedule

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitplanner/internal/telemetry/metrics"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=schedule_test

type scheduleRepo interface {
	Replace(ctx context.Context, userID int, meta PlanMeta, plan []DayPlan) ([]int, error)
	ListLatest(ctx context.Context, userID int) ([]Entry, error)
	Get(ctx context.Context, id int) (*Entry, error)
	Delete(ctx context.Context, id int) error
	DeleteAllForUser(ctx context.Context, userID int) (int64, error)
	Count(ctx context.Context, userID int) (int, error)
}

type Service struct {
	repo           scheduleRepo
	metricsManager *metrics.Manager
}

func NewService(repo scheduleRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

// GenerateSchedule computes the plan first, so an invalid goal never touches stored rows,
// and then atomically replaces the user's schedule with it.
// The returned plan is the computed one, not a re-read.
func (s *Service) GenerateSchedule(ctx context.Context, params GenerateParams) (_ []DayPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.generate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.Int("user.id", params.UserID),
		attribute.String("goal", params.Goal),
		attribute.Int("available.days", params.AvailableDays),
	)

	if err := params.Validate(); err != nil {
		return nil, err
	}

	goal, err := ParseGoal(params.Goal)
	if err != nil {
		return nil, err
	}
	level := ParseExperienceLevel(params.ExperienceLevel)

	plan := GeneratePlan(goal, params.AvailableDays, level)

	meta := PlanMeta{
		Goal:          goal,
		AvailableDays: params.AvailableDays,
		AvailableTime: params.AvailableTime,
	}
	ids, err := s.repo.Replace(ctx, params.UserID, meta, plan)
	if err != nil {
		return nil, fmt.Errorf("generate schedule: %w", err)
	}

	s.metricsManager.CounterSchedulesGenerated.With(prometheus.Labels{
		"goal":  goal.String(),
		"level": level.String(),
	}).Inc()
	log.Debugf("schedule generated for user %d: goal [%s], level [%s], %d days stored", params.UserID, goal, level, len(ids))

	return plan, nil
}

// GetUserSchedules returns the user's latest week of schedule rows.
func (s *Service) GetUserSchedules(ctx context.Context, userID int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.getuserschedules")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	entries, err := s.repo.ListLatest(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user schedules: %w", err)
	}
	return entries, nil
}

func (s *Service) GetSchedule(ctx context.Context, id int) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	entry, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}
	return entry, nil
}

func (s *Service) DeleteSchedule(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	return nil
}

func (s *Service) DeleteUserSchedules(ctx context.Context, userID int) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.deleteuserschedules")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	deleted, err := s.repo.DeleteAllForUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("delete user schedules: %w", err)
	}
	return deleted, nil
}

func (s *Service) CountUserSchedules(ctx context.Context, userID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.count")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	count, err := s.repo.Count(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count user schedules: %w", err)
	}
	return count, nil
}
