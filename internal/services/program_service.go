package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/owner"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var firstNumber = regexp.MustCompile(`\d+`)

type ProgramService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewProgramService(db *gorm.DB) *ProgramService {
	return &ProgramService{db: db, now: time.Now}
}

func (s *ProgramService) Start(userID uint, req *dto.StartProgramRequest) (*dto.ProgramResponse, error) {
	programType := strings.TrimSpace(req.ProgramType)
	programName := strings.TrimSpace(req.ProgramName)
	if programType == "" || programName == "" {
		return nil, invalid("", "programType and programName are required")
	}

	y, m, d := s.now().UTC().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	program := models.UserProgram{
		UserID:      userID,
		ProgramType: programType,
		ProgramName: programName,
		Description: optionalText(req.Description),
		StartDate:   datatypes.Date(start),
		Status:      models.ProgramActive,
	}
	if weeks, ok := DurationWeeks(req.Duration); ok {
		end := datatypes.Date(start.AddDate(0, 0, 7*weeks))
		program.EndDate = &end
	}

	if err := s.db.Create(&program).Error; err != nil {
		return nil, fmt.Errorf("failed to start program: %w", err)
	}

	resp := programResponse(&program)
	return &resp, nil
}

func (s *ProgramService) List(userID uint) ([]dto.ProgramResponse, error) {
	var programs []models.UserProgram
	err := s.db.Scopes(owner.Scope(userID)).
		Order("created_at DESC, id DESC").
		Find(&programs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load programs: %w", err)
	}

	resp := make([]dto.ProgramResponse, 0, len(programs))
	for i := range programs {
		resp = append(resp, programResponse(&programs[i]))
	}
	return resp, nil
}

// Recommendations picks catalog programs for the user's latest BMI status.
func (s *ProgramService) Recommendations(userID uint) (*dto.RecommendationResponse, error) {
	var latest models.BmiRecord
	err := s.db.Scopes(owner.Scope(userID)).
		Order("created_at DESC, id DESC").
		First(&latest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &dto.RecommendationResponse{Programs: []dto.RecommendedProgram{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load latest record: %w", err)
	}

	return &dto.RecommendationResponse{
		BMI:      &latest.BMI,
		Status:   &latest.Status,
		Programs: recommendedFor(latest.Status),
	}, nil
}

// optionalText trims s and maps blank text to nil.
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// DurationWeeks reads the first integer in a free-text duration such as
// "12 weeks" or "12 Wochen". Text without a positive integer yields false.
func DurationWeeks(text string) (int, bool) {
	match := firstNumber.FindString(text)
	if match == "" {
		return 0, false
	}
	weeks, err := strconv.Atoi(match)
	if err != nil || weeks <= 0 {
		return 0, false
	}
	return weeks, true
}

func programResponse(p *models.UserProgram) dto.ProgramResponse {
	resp := dto.ProgramResponse{
		ID:          p.ID,
		ProgramType: p.ProgramType,
		ProgramName: p.ProgramName,
		Description: p.Description,
		StartDate:   time.Time(p.StartDate).Format(time.DateOnly),
		Status:      p.Status,
	}
	if p.EndDate != nil {
		end := time.Time(*p.EndDate).Format(time.DateOnly)
		resp.EndDate = &end
	}
	return resp
}
