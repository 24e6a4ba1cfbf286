package schedule

import "slices"

// Generate builds the weekly plan for a goal, day count and experience level.
// Only an unknown goal fails. An unknown level resolves to beginner, and day counts
// outside 1..7 produce a degenerate plan instead of an error.
// availableTime does not alter plan content.
func Generate(goal string, availableDays int, experienceLevel string, availableTime int) ([]DayPlan, error) {
	g, err := ParseGoal(goal)
	if err != nil {
		return nil, err
	}
	return GeneratePlan(g, availableDays, ParseExperienceLevel(experienceLevel)), nil
}

// GeneratePlan is Generate with already resolved inputs.
func GeneratePlan(goal Goal, availableDays int, level ExperienceLevel) []DayPlan {
	switch goal {
	case GoalMuscleGain:
		return muscleGainPlan(availableDays, level)
	case GoalFatLoss:
		return repeatedPlan(availableDays, mustLookup(GoalFatLoss, level, CategoryCircuit), noteHIIT)
	case GoalStrength:
		return strengthPlan(availableDays, level)
	case GoalEndurance:
		return repeatedPlan(availableDays, mustLookup(GoalEndurance, level, CategoryWorkout), noteEndurance)
	default:
		return nil
	}
}

func dayPlan(slot int, exercises []Exercise, notes string) DayPlan {
	return DayPlan{
		Day:       Weekdays[slot],
		Exercises: slices.Clone(exercises),
		Notes:     notes,
	}
}

// push/pull/legs split
func muscleGainPlan(days int, level ExperienceLevel) []DayPlan {
	push := mustLookup(GoalMuscleGain, level, CategoryPush)
	pull := mustLookup(GoalMuscleGain, level, CategoryPull)
	legs := mustLookup(GoalMuscleGain, level, CategoryLegs)

	switch {
	case days >= 6:
		return []DayPlan{
			dayPlan(0, push, notePush),
			dayPlan(1, pull, notePull),
			dayPlan(2, legs, noteLegs),
			dayPlan(3, push, notePush),
			dayPlan(4, pull, notePull),
			dayPlan(5, legs, noteLegs),
		}
	case days >= 3:
		return []DayPlan{
			dayPlan(0, push, notePush),
			dayPlan(2, pull, notePull),
			dayPlan(4, legs, noteLegs),
		}
	default:
		fullBody := make([]Exercise, 0, 6)
		fullBody = append(fullBody, push[:2]...)
		fullBody = append(fullBody, pull[:2]...)
		fullBody = append(fullBody, legs[:2]...)

		plan := []DayPlan{dayPlan(0, fullBody, noteFullBody)}
		if days == 2 {
			plan = append(plan, dayPlan(3, fullBody, noteFullBody))
		}
		return plan
	}
}

func strengthPlan(days int, level ExperienceLevel) []DayPlan {
	day1 := mustLookup(GoalStrength, level, CategoryDay1)
	day2 := mustLookup(GoalStrength, level, CategoryDay2)
	day3, ok := lookup(GoalStrength, level, CategoryDay3)
	if !ok {
		day3 = day1
	}

	switch {
	case days >= 3:
		plan := []DayPlan{
			dayPlan(0, day1, noteSquatBench),
			dayPlan(2, day2, noteDeadPress),
			dayPlan(4, day3, noteVolume),
		}
		if days >= 5 {
			plan = append(plan, dayPlan(5, day2, noteAccessory))
		}
		return plan
	default:
		plan := []DayPlan{dayPlan(0, day1, noteSquatBench)}
		if days == 2 {
			plan = append(plan, dayPlan(3, day2, noteDeadPress))
		}
		return plan
	}
}

// repeatedPlan puts the same workout on the first n weekday slots, n capped at a week.
func repeatedPlan(days int, exercises []Exercise, notes string) []DayPlan {
	days = min(days, len(Weekdays))
	plan := make([]DayPlan, 0, max(days, 0))
	for slot := 0; slot < days; slot++ {
		plan = append(plan, dayPlan(slot, exercises, notes))
	}
	return plan
}
