package models

import "time"

// DistributionCenter is a facility drones fly between. MaxDroneRange bounds
// the leg length the platform will route through this center.
type DistributionCenter struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	MaxDroneRange float64   `json:"max_drone_range"`
	IsMain        bool      `json:"is_main,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// DistributionCenterPage is one page of the distribution center listing.
type DistributionCenterPage struct {
	Centers []DistributionCenter `json:"distribution_centers"`
	Total   int                  `json:"total"`
}
