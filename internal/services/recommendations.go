package services

import (
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/bmi"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/dto"
)

var programCatalog = map[bmi.Status][]dto.RecommendedProgram{
	bmi.Underweight: {
		{
			ID: 1, Type: "Nutrition", Title: "Healthy Weight Gain",
			Description: "Gain weight healthily through a balanced diet",
			Duration:    "12 weeks", Difficulty: "Beginner",
			Exercises: []string{
				"Higher calorie intake from healthy fats",
				"Regular meals (5-6 per day)",
				"Protein-rich snacks",
				"Strength training 3x per week",
			},
		},
		{
			ID: 2, Type: "Sport", Title: "Muscle Building",
			Description: "Targeted training to build muscle mass",
			Duration:    "16 weeks", Difficulty: "Intermediate",
			Exercises: []string{
				"Strength training 3-4x per week",
				"Focus on compound lifts (squat, bench press)",
				"Progressive overload",
				"Enough recovery",
			},
		},
	},
	bmi.NormalWeight: {
		{
			ID: 3, Type: "Fitness", Title: "Maintenance",
			Description: "Keep a healthy weight and improve fitness",
			Duration:    "Ongoing", Difficulty: "All levels",
			Exercises: []string{
				"Keep a balanced diet",
				"Cardio: 150 minutes per week",
				"Strength training 2x per week",
				"Flexibility training",
			},
		},
		{
			ID: 4, Type: "Sport", Title: "Full-Body Fitness",
			Description: "Varied training for body and mind",
			Duration:    "12 weeks", Difficulty: "Intermediate",
			Exercises: []string{
				"HIIT 2x per week",
				"Yoga or pilates 2x per week",
				"Endurance training 1x per week",
				"Active recovery",
			},
		},
	},
	bmi.Overweight: {
		{
			ID: 5, Type: "Weight loss", Title: "Weight Reduction",
			Description: "Healthy and sustainable weight loss",
			Duration:    "16 weeks", Difficulty: "Beginner",
			Exercises: []string{
				"Calorie deficit of 500-750 kcal per day",
				"Cardio: 200-300 minutes per week",
				"Strength training 2-3x per week",
				"Diet change",
			},
		},
		{
			ID: 6, Type: "Sport", Title: "Fat Burning",
			Description: "Intense training to burn fat",
			Duration:    "12 weeks", Difficulty: "Intermediate",
			Exercises: []string{
				"HIIT 3x per week",
				"Running or walking 3x per week",
				"Strength training 2x per week",
				"Intermittent fasting (optional)",
			},
		},
	},
	bmi.Obese: {
		{
			ID: 7, Type: "Weight loss", Title: "Intensive Weight Loss",
			Description: "Structured program for lasting weight loss",
			Duration:    "24 weeks", Difficulty: "Beginner",
			Exercises: []string{
				"Medical supervision recommended",
				"Gradually increase activity",
				"Nutrition counselling",
				"Low-intensity cardio: 150-200 minutes per week",
			},
		},
		{
			ID: 8, Type: "Movement", Title: "Gentle Movement",
			Description: "Low-impact training to get started",
			Duration:    "16 weeks", Difficulty: "Beginner",
			Exercises: []string{
				"Walks: 30-45 minutes daily",
				"Aqua gym 2x per week",
				"Daily stretching",
				"Step-by-step progression",
			},
		},
	},
}

// recommendedFor returns the catalog for a status. Severely underweight users
// get the underweight programs.
func recommendedFor(status bmi.Status) []dto.RecommendedProgram {
	if status == bmi.SeverelyUnderweight {
		status = bmi.Underweight
	}
	programs, ok := programCatalog[status]
	if !ok {
		return []dto.RecommendedProgram{}
	}
	return programs
}
