package dto

import (
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/bmi"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/models"
)

type StartProgramRequest struct {
	ProgramType string  `json:"programType"`
	ProgramName string  `json:"programName"`
	Description *string `json:"description"`
	Duration    string  `json:"duration"`
}

type ProgramResponse struct {
	ID          uint                 `json:"id"`
	ProgramType string               `json:"programType"`
	ProgramName string               `json:"programName"`
	Description *string              `json:"description"`
	StartDate   string               `json:"startDate"`
	EndDate     *string              `json:"endDate"`
	Status      models.ProgramStatus `json:"status"`
}

type StartProgramResponse struct {
	ID      uint            `json:"id"`
	Message string          `json:"message"`
	Program ProgramResponse `json:"program"`
}

type RecommendedProgram struct {
	ID          int      `json:"id"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Difficulty  string   `json:"difficulty"`
	Exercises   []string `json:"exercises"`
}

type RecommendationResponse struct {
	BMI      *float64             `json:"bmi"`
	Status   *bmi.Status          `json:"status"`
	Programs []RecommendedProgram `json:"programs"`
}
