package dto

import "github.com/ahmetcoskunkizilkaya/bmi-backend/internal/bmi"

// BmiRequest is the body of POST /bmi and PUT /bmi/:id. Age is ignored on update.
type BmiRequest struct {
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Age    *int     `json:"age"`
	Height *float64 `json:"height"`
	Weight *float64 `json:"weight"`
}

// RecordResponse carries the BMI formatted with one decimal.
type RecordResponse struct {
	ID     uint       `json:"id"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	BMI    string     `json:"bmi"`
	Status bmi.Status `json:"status"`
}

type SummaryResponse struct {
	TotalRecords int         `json:"totalRecords"`
	AverageBMI   *float64    `json:"averageBMI"`
	LatestBMI    *float64    `json:"latestBMI"`
	LatestWeight *float64    `json:"latestWeight"`
	WeightChange *float64    `json:"weightChange"`
	LatestStatus *bmi.Status `json:"latestStatus"`
}
