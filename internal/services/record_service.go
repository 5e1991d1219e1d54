package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/bmi"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/owner"
	"gorm.io/gorm"
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100
	maxAge              = 150
)

type RecordService struct {
	db *gorm.DB
}

func NewRecordService(db *gorm.DB) *RecordService {
	return &RecordService{db: db}
}

type measurement struct {
	name, email string
	result      bmi.Result
	height      float64
	weight      float64
}

func (s *RecordService) Create(userID uint, req *dto.BmiRequest) (*dto.RecordResponse, error) {
	m, err := validateMeasurement(req)
	if err != nil {
		return nil, err
	}
	if req.Age != nil && (*req.Age < 0 || *req.Age > maxAge) {
		return nil, invalid("age", "age must be between 0 and 150")
	}

	record := models.BmiRecord{
		UserID: &userID,
		Name:   m.name,
		Email:  m.email,
		Age:    req.Age,
		Height: m.height,
		Weight: m.weight,
		BMI:    m.result.BMI,
		Status: m.result.Status,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	return recordResponse(&record), nil
}

// History returns the newest records first. Out-of-range limits fall back to
// DefaultHistoryLimit or are capped at MaxHistoryLimit.
func (s *RecordService) History(userID uint, limit int) ([]models.BmiRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	records := []models.BmiRecord{}
	err := s.db.Scopes(owner.Scope(userID)).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return records, nil
}

// Update overwrites name, email, measurements and the derived BMI of a record
// owned by userID. Records of other users are reported as not found.
func (s *RecordService) Update(userID, recordID uint, req *dto.BmiRequest) (*dto.RecordResponse, error) {
	m, err := validateMeasurement(req)
	if err != nil {
		return nil, err
	}

	var record models.BmiRecord
	if err := s.db.Scopes(owner.Scope(userID)).First(&record, recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to load record: %w", err)
	}

	err = s.db.Model(&record).Updates(map[string]interface{}{
		"name":   m.name,
		"email":  m.email,
		"height": m.height,
		"weight": m.weight,
		"bmi":    m.result.BMI,
		"status": m.result.Status,
	}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	record.Name, record.Email = m.name, m.email
	record.Height, record.Weight = m.height, m.weight
	record.BMI, record.Status = m.result.BMI, m.result.Status
	return recordResponse(&record), nil
}

func (s *RecordService) Delete(userID, recordID uint) error {
	result := s.db.Scopes(owner.Scope(userID)).Delete(&models.BmiRecord{}, recordID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func validateMeasurement(req *dto.BmiRequest) (*measurement, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.Height == nil || req.Weight == nil {
		return nil, invalid("", "name, email, height and weight are required")
	}

	if err := bmi.CheckRange(*req.Height, *req.Weight); err != nil {
		var rerr *bmi.RangeError
		if errors.As(err, &rerr) {
			return nil, invalid(rerr.Field, rerr.Error())
		}
		return nil, err
	}

	result, err := bmi.Compute(*req.Height, *req.Weight)
	if err != nil {
		return nil, invalid("", err.Error())
	}

	return &measurement{
		name:   name,
		email:  email,
		result: result,
		height: *req.Height,
		weight: *req.Weight,
	}, nil
}

// recordResponse formats the display BMI from the measurements, so it is
// rounded once rather than from the stored two-decimal value.
func recordResponse(record *models.BmiRecord) *dto.RecordResponse {
	return &dto.RecordResponse{
		ID:     record.ID,
		Name:   record.Name,
		Email:  record.Email,
		BMI:    strconv.FormatFloat(bmi.Value(record.Height, record.Weight), 'f', 1, 64),
		Status: record.Status,
	}
}
