package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/bmi"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/owner"
	"gorm.io/gorm"
)

// StatsService derives statistics from the full record set on every call.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

func (s *StatsService) Summary(userID uint) (*dto.SummaryResponse, error) {
	var records []models.BmiRecord
	err := s.db.Scopes(owner.Scope(userID)).
		Order("created_at DESC, id DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return summarize(records), nil
}

// summarize expects records newest first.
func summarize(records []models.BmiRecord) *dto.SummaryResponse {
	summary := &dto.SummaryResponse{TotalRecords: len(records)}
	if len(records) == 0 {
		return summary
	}

	var total float64
	for _, r := range records {
		total += r.BMI
	}
	average := bmi.Round(total/float64(len(records)), 2)

	latest := records[0]
	summary.AverageBMI = &average
	summary.LatestBMI = &latest.BMI
	summary.LatestWeight = &latest.Weight
	summary.LatestStatus = &latest.Status

	if len(records) > 1 {
		oldest := records[len(records)-1]
		change := bmi.Round(latest.Weight-oldest.Weight, 2)
		summary.WeightChange = &change
	}
	return summary
}

// Detailed returns records oldest first, optionally bounded by startDate and
// endDate (inclusive). A date-only endDate covers the whole day.
func (s *StatsService) Detailed(userID uint, startDate, endDate string) ([]models.BmiRecord, error) {
	q := s.db.Scopes(owner.Scope(userID))

	if startDate = strings.TrimSpace(startDate); startDate != "" {
		start, _, err := parseBound(startDate)
		if err != nil {
			return nil, invalid("startDate", "startDate must be YYYY-MM-DD or an RFC 3339 timestamp")
		}
		q = q.Where("created_at >= ?", start)
	}

	if endDate = strings.TrimSpace(endDate); endDate != "" {
		end, dateOnly, err := parseBound(endDate)
		if err != nil {
			return nil, invalid("endDate", "endDate must be YYYY-MM-DD or an RFC 3339 timestamp")
		}
		if dateOnly {
			q = q.Where("created_at < ?", end.AddDate(0, 0, 1))
		} else {
			q = q.Where("created_at <= ?", end)
		}
	}

	records := []models.BmiRecord{}
	if err := q.Order("created_at ASC, id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return records, nil
}

func parseBound(s string) (time.Time, bool, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false, err
	}
	return t.UTC(), false, nil
}
