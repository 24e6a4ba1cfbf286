package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidGoal      = errors.New("invalid fitness goal")
	ErrInvalidSchedule  = errors.New("invalid schedule request")
	ErrScheduleNotFound = errors.New("schedule not found")
)

// Goal can be one of:
//   - muscle gain
//   - fat loss
//   - strength
//   - endurance
type Goal string

const (
	GoalMuscleGain Goal = "muscle gain"
	GoalFatLoss    Goal = "fat loss"
	GoalStrength   Goal = "strength"
	GoalEndurance  Goal = "endurance"
)

var Goals = []Goal{
	GoalMuscleGain,
	GoalFatLoss,
	GoalStrength,
	GoalEndurance,
}

func (g Goal) String() string {
	return string(g)
}

func (g Goal) IsValid() bool {
	switch g {
	case GoalMuscleGain,
		GoalFatLoss,
		GoalStrength,
		GoalEndurance:
		return true
	default:
		return false
	}
}

// ParseGoal matches s case-insensitively against the supported goals.
func ParseGoal(s string) (Goal, error) {
	g := Goal(strings.ToLower(s))
	if !g.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidGoal, s)
	}
	return g, nil
}

type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelAdvanced     ExperienceLevel = "advanced"
)

var ExperienceLevels = []ExperienceLevel{
	LevelBeginner,
	LevelIntermediate,
	LevelAdvanced,
}

func (l ExperienceLevel) String() string {
	return string(l)
}

func (l ExperienceLevel) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}

// ParseExperienceLevel never fails: an unrecognized level resolves to beginner.
func ParseExperienceLevel(s string) ExperienceLevel {
	l := ExperienceLevel(strings.ToLower(s))
	if !l.IsValid() {
		return LevelBeginner
	}
	return l
}

// Category selects one exercise list inside a goal/level template.
type Category string

const (
	CategoryPush    Category = "push"
	CategoryPull    Category = "pull"
	CategoryLegs    Category = "legs"
	CategoryCircuit Category = "circuit"
	CategoryDay1    Category = "day1"
	CategoryDay2    Category = "day2"
	CategoryDay3    Category = "day3"
	CategoryWorkout Category = "workout"
)

type Weekday string

// Weekdays are the schedule slots, indexed from 0.
var Weekdays = [7]Weekday{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

func (d Weekday) String() string {
	return string(d)
}

// Exercise reps and rest are display strings, e.g. "10-12", "30s", "20 min" or "-".
type Exercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"`
	Rest string `json:"rest"`
}

type DayPlan struct {
	Day       Weekday    `json:"day"`
	Exercises []Exercise `json:"exercises"`
	Notes     string     `json:"notes"`
}

// Entry is one persisted day of a user's weekly schedule.
type Entry struct {
	ID            int        `json:"scheduleId"`
	UserID        int        `json:"userId"`
	Goal          Goal       `json:"goal"`
	AvailableDays int        `json:"availableDays"`
	AvailableTime int        `json:"availableTime"`
	Day           Weekday    `json:"day"`
	Exercises     []Exercise `json:"exercises"`
	Notes         string     `json:"notes"`
	CreatedDate   time.Time  `json:"createdDate"`
}

// GenerateParams are the inputs of a schedule generation request.
type GenerateParams struct {
	UserID          int
	Goal            string
	AvailableDays   int
	AvailableTime   int
	ExperienceLevel string
}

func (p GenerateParams) Validate() error {
	if p.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidSchedule)
	}
	if p.Goal == "" || p.ExperienceLevel == "" {
		return fmt.Errorf("%w: goal and experience level are required", ErrInvalidSchedule)
	}
	if p.AvailableDays < 1 || p.AvailableDays > len(Weekdays) {
		return fmt.Errorf("%w: available days must be between 1 and %d", ErrInvalidSchedule, len(Weekdays))
	}
	if p.AvailableTime < 0 {
		return fmt.Errorf("%w: available time cannot be negative", ErrInvalidSchedule)
	}
	return nil
}

// PlanMeta is stored next to every day of a generated plan.
type PlanMeta struct {
	Goal          Goal
	AvailableDays int
	AvailableTime int
}
