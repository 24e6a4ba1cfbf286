package schedule

import "slices"

const (
	notePush       = "Push Day - Chest, Shoulders, Triceps"
	notePull       = "Pull Day - Back, Biceps"
	noteLegs       = "Leg Day"
	noteFullBody   = "Full Body Workout"
	noteHIIT       = "HIIT Circuit - Complete all exercises, repeat circuit 3-4 times"
	noteSquatBench = "Squat & Bench Focus"
	noteDeadPress  = "Deadlift & Press Focus"
	noteVolume     = "Volume Day"
	noteAccessory  = "Accessory Work"
	noteEndurance  = "Endurance Training - Focus on sustained effort with minimal rest"
)

type template map[Category][]Exercise

// catalog is read-only; use lookup to get a copy of an exercise list.
var catalog = map[Goal]map[ExperienceLevel]template{
	GoalMuscleGain: {
		LevelBeginner: {
			CategoryPush: {
				{Name: "Bench Press", Sets: 3, Reps: "10-12", Rest: "90s"},
				{Name: "Overhead Press", Sets: 3, Reps: "10-12", Rest: "90s"},
				{Name: "Dumbbell Flyes", Sets: 3, Reps: "12-15", Rest: "60s"},
				{Name: "Tricep Dips", Sets: 3, Reps: "10-12", Rest: "60s"},
			},
			CategoryPull: {
				{Name: "Pull-ups/Lat Pulldown", Sets: 3, Reps: "10-12", Rest: "90s"},
				{Name: "Barbell Row", Sets: 3, Reps: "10-12", Rest: "90s"},
				{Name: "Face Pulls", Sets: 3, Reps: "12-15", Rest: "60s"},
				{Name: "Bicep Curls", Sets: 3, Reps: "12-15", Rest: "60s"},
			},
			CategoryLegs: {
				{Name: "Squats", Sets: 3, Reps: "10-12", Rest: "120s"},
				{Name: "Leg Press", Sets: 3, Reps: "12-15", Rest: "90s"},
				{Name: "Leg Curls", Sets: 3, Reps: "12-15", Rest: "60s"},
				{Name: "Calf Raises", Sets: 3, Reps: "15-20", Rest: "60s"},
			},
		},
		LevelIntermediate: {
			CategoryPush: {
				{Name: "Bench Press", Sets: 4, Reps: "8-10", Rest: "120s"},
				{Name: "Incline Dumbbell Press", Sets: 4, Reps: "8-10", Rest: "90s"},
				{Name: "Overhead Press", Sets: 3, Reps: "8-10", Rest: "90s"},
				{Name: "Cable Flyes", Sets: 3, Reps: "12-15", Rest: "60s"},
				{Name: "Tricep Pushdowns", Sets: 3, Reps: "12-15", Rest: "60s"},
			},
			CategoryPull: {
				{Name: "Deadlift", Sets: 4, Reps: "6-8", Rest: "180s"},
				{Name: "Pull-ups", Sets: 4, Reps: "8-10", Rest: "90s"},
				{Name: "Barbell Row", Sets: 4, Reps: "8-10", Rest: "90s"},
				{Name: "Face Pulls", Sets: 3, Reps: "12-15", Rest: "60s"},
				{Name: "Hammer Curls", Sets: 3, Reps: "12-15", Rest: "60s"},
			},
			CategoryLegs: {
				{Name: "Squats", Sets: 4, Reps: "8-10", Rest: "150s"},
				{Name: "Romanian Deadlift", Sets: 4, Reps: "8-10", Rest: "120s"},
				{Name: "Leg Press", Sets: 3, Reps: "12-15", Rest: "90s"},
				{Name: "Leg Curls", Sets: 3, Reps: "12-15", Rest: "60s"},
				{Name: "Calf Raises", Sets: 4, Reps: "15-20", Rest: "60s"},
			},
		},
		LevelAdvanced: {
			CategoryPush: {
				{Name: "Bench Press", Sets: 5, Reps: "5-8", Rest: "180s"},
				{Name: "Incline Bench Press", Sets: 4, Reps: "8-10", Rest: "120s"},
				{Name: "Overhead Press", Sets: 4, Reps: "6-8", Rest: "120s"},
				{Name: "Dumbbell Flyes", Sets: 4, Reps: "10-12", Rest: "60s"},
				{Name: "Tricep Dips (Weighted)", Sets: 4, Reps: "8-10", Rest: "90s"},
				{Name: "Lateral Raises", Sets: 3, Reps: "12-15", Rest: "60s"},
			},
			CategoryPull: {
				{Name: "Deadlift", Sets: 5, Reps: "5-8", Rest: "240s"},
				{Name: "Weighted Pull-ups", Sets: 4, Reps: "6-8", Rest: "120s"},
				{Name: "Barbell Row", Sets: 4, Reps: "8-10", Rest: "90s"},
				{Name: "T-Bar Row", Sets: 4, Reps: "10-12", Rest: "90s"},
				{Name: "Face Pulls", Sets: 4, Reps: "15-20", Rest: "60s"},
				{Name: "Barbell Curls", Sets: 4, Reps: "8-10", Rest: "60s"},
			},
			CategoryLegs: {
				{Name: "Squats", Sets: 5, Reps: "5-8", Rest: "180s"},
				{Name: "Front Squats", Sets: 4, Reps: "8-10", Rest: "120s"},
				{Name: "Romanian Deadlift", Sets: 4, Reps: "8-10", Rest: "120s"},
				{Name: "Bulgarian Split Squats", Sets: 4, Reps: "10-12", Rest: "90s"},
				{Name: "Leg Curls", Sets: 4, Reps: "12-15", Rest: "60s"},
				{Name: "Calf Raises", Sets: 5, Reps: "15-20", Rest: "60s"},
			},
		},
	},
	GoalFatLoss: {
		LevelBeginner: {
			CategoryCircuit: {
				{Name: "Jumping Jacks", Sets: 3, Reps: "30s", Rest: "30s"},
				{Name: "Bodyweight Squats", Sets: 3, Reps: "15", Rest: "30s"},
				{Name: "Push-ups", Sets: 3, Reps: "10", Rest: "30s"},
				{Name: "Mountain Climbers", Sets: 3, Reps: "20s", Rest: "30s"},
				{Name: "Plank", Sets: 3, Reps: "30s", Rest: "60s"},
			},
		},
		LevelIntermediate: {
			CategoryCircuit: {
				{Name: "Burpees", Sets: 4, Reps: "15", Rest: "30s"},
				{Name: "Jump Squats", Sets: 4, Reps: "15", Rest: "30s"},
				{Name: "Push-ups", Sets: 4, Reps: "20", Rest: "30s"},
				{Name: "Mountain Climbers", Sets: 4, Reps: "40s", Rest: "30s"},
				{Name: "Russian Twists", Sets: 4, Reps: "30", Rest: "30s"},
				{Name: "High Knees", Sets: 4, Reps: "30s", Rest: "60s"},
			},
		},
		LevelAdvanced: {
			CategoryCircuit: {
				{Name: "Burpee Box Jumps", Sets: 5, Reps: "12", Rest: "20s"},
				{Name: "Kettlebell Swings", Sets: 5, Reps: "20", Rest: "20s"},
				{Name: "Plyometric Push-ups", Sets: 5, Reps: "15", Rest: "20s"},
				{Name: "Sprints", Sets: 5, Reps: "30s", Rest: "30s"},
				{Name: "Battle Ropes", Sets: 5, Reps: "40s", Rest: "20s"},
				{Name: "Box Jumps", Sets: 5, Reps: "15", Rest: "60s"},
			},
		},
	},
	GoalStrength: {
		// beginners get no third day, volume day falls back to day1
		LevelBeginner: {
			CategoryDay1: {
				{Name: "Squat", Sets: 5, Reps: "5", Rest: "180s"},
				{Name: "Bench Press", Sets: 5, Reps: "5", Rest: "180s"},
				{Name: "Barbell Row", Sets: 3, Reps: "8", Rest: "120s"},
			},
			CategoryDay2: {
				{Name: "Deadlift", Sets: 3, Reps: "5", Rest: "240s"},
				{Name: "Overhead Press", Sets: 5, Reps: "5", Rest: "180s"},
				{Name: "Pull-ups", Sets: 3, Reps: "8", Rest: "120s"},
			},
		},
		LevelIntermediate: {
			CategoryDay1: {
				{Name: "Squat", Sets: 5, Reps: "5", Rest: "240s"},
				{Name: "Bench Press", Sets: 5, Reps: "5", Rest: "180s"},
				{Name: "Barbell Row", Sets: 4, Reps: "6", Rest: "120s"},
				{Name: "Dips", Sets: 3, Reps: "8", Rest: "90s"},
			},
			CategoryDay2: {
				{Name: "Deadlift", Sets: 5, Reps: "3", Rest: "300s"},
				{Name: "Overhead Press", Sets: 5, Reps: "5", Rest: "180s"},
				{Name: "Weighted Pull-ups", Sets: 4, Reps: "6", Rest: "120s"},
				{Name: "Face Pulls", Sets: 3, Reps: "15", Rest: "60s"},
			},
			CategoryDay3: {
				{Name: "Front Squat", Sets: 4, Reps: "6", Rest: "180s"},
				{Name: "Incline Bench Press", Sets: 4, Reps: "6", Rest: "180s"},
				{Name: "Romanian Deadlift", Sets: 4, Reps: "8", Rest: "120s"},
			},
		},
		LevelAdvanced: {
			CategoryDay1: {
				{Name: "Squat", Sets: 6, Reps: "3-5", Rest: "300s"},
				{Name: "Bench Press", Sets: 6, Reps: "3-5", Rest: "240s"},
				{Name: "Barbell Row", Sets: 5, Reps: "5", Rest: "180s"},
				{Name: "Close Grip Bench", Sets: 4, Reps: "6", Rest: "120s"},
			},
			CategoryDay2: {
				{Name: "Deadlift", Sets: 6, Reps: "2-4", Rest: "360s"},
				{Name: "Overhead Press", Sets: 5, Reps: "5", Rest: "240s"},
				{Name: "Weighted Pull-ups", Sets: 5, Reps: "5", Rest: "180s"},
				{Name: "Barbell Curls", Sets: 4, Reps: "6", Rest: "90s"},
			},
			CategoryDay3: {
				{Name: "Front Squat", Sets: 5, Reps: "5", Rest: "240s"},
				{Name: "Incline Bench Press", Sets: 5, Reps: "5", Rest: "240s"},
				{Name: "Romanian Deadlift", Sets: 5, Reps: "6", Rest: "180s"},
				{Name: "T-Bar Row", Sets: 4, Reps: "8", Rest: "120s"},
			},
		},
	},
	GoalEndurance: {
		LevelBeginner: {
			CategoryWorkout: {
				{Name: "Cardio (Running/Cycling)", Sets: 1, Reps: "20 min", Rest: "-"},
				{Name: "Bodyweight Squats", Sets: 3, Reps: "20", Rest: "45s"},
				{Name: "Push-ups", Sets: 3, Reps: "15", Rest: "45s"},
				{Name: "Lunges", Sets: 3, Reps: "15 each", Rest: "45s"},
				{Name: "Plank", Sets: 3, Reps: "45s", Rest: "60s"},
			},
		},
		LevelIntermediate: {
			CategoryWorkout: {
				{Name: "Cardio (Running/Cycling)", Sets: 1, Reps: "30 min", Rest: "-"},
				{Name: "Goblet Squats", Sets: 4, Reps: "25", Rest: "45s"},
				{Name: "Push-ups", Sets: 4, Reps: "25", Rest: "45s"},
				{Name: "Walking Lunges", Sets: 4, Reps: "20 each", Rest: "45s"},
				{Name: "Jump Rope", Sets: 4, Reps: "2 min", Rest: "60s"},
				{Name: "Mountain Climbers", Sets: 4, Reps: "60s", Rest: "60s"},
			},
		},
		LevelAdvanced: {
			CategoryWorkout: {
				{Name: "Interval Running", Sets: 1, Reps: "45 min", Rest: "-"},
				{Name: "High Rep Squats", Sets: 5, Reps: "30-50", Rest: "60s"},
				{Name: "High Rep Push-ups", Sets: 5, Reps: "30-50", Rest: "60s"},
				{Name: "Burpees", Sets: 5, Reps: "20", Rest: "45s"},
				{Name: "Kettlebell Swings", Sets: 5, Reps: "30", Rest: "45s"},
				{Name: "Battle Ropes", Sets: 5, Reps: "90s", Rest: "60s"},
			},
		},
	},
}

// lookup returns a copy of the exercise list, ok is false when the template has no such category.
func lookup(goal Goal, level ExperienceLevel, category Category) ([]Exercise, bool) {
	exercises, ok := catalog[goal][level][category]
	if !ok {
		return nil, false
	}
	return slices.Clone(exercises), true
}

// mustLookup is for categories every template of the goal carries.
func mustLookup(goal Goal, level ExperienceLevel, category Category) []Exercise {
	exercises, ok := lookup(goal, level, category)
	if !ok {
		panic("schedule catalog: missing " + goal.String() + "/" + level.String() + "/" + string(category))
	}
	return exercises
}
