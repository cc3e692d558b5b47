package model

import "time"

// Destination is a travel destination record managed by the dashboard.
type Destination struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	HeroImage string    `json:"heroImage"`
	CreatedAt time.Time `json:"createdAt"`
}
