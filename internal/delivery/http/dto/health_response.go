package dto

import "time"

type HealthResponse struct {
	Status     string          `json:"status"`
	Service    string          `json:"service"`
	Extractors map[string]bool `json:"extractors"`
	Cache      bool            `json:"cache"`
	Timestamp  time.Time       `json:"timestamp"`
}
