package domain

import "time"

// DistrictRecord is the database row behind a District.
type DistrictRecord struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Population   float64   `db:"population"`
	Density      float64   `db:"density"`
	Income       float64   `db:"income"`
	TrafficIndex float64   `db:"traffic_index"`
	Type         string    `db:"type"`
	Lon          float64   `db:"lon"`
	Lat          float64   `db:"lat"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r *DistrictRecord) ToDistrict() *District {
	return &District{
		ID:           r.ID,
		Name:         r.Name,
		Population:   r.Population,
		Density:      r.Density,
		Income:       r.Income,
		TrafficIndex: r.TrafficIndex,
		Type:         r.Type,
		Coords:       Coords{Lon: r.Lon, Lat: r.Lat},
	}
}

// AreaMetrics are raw counts around a point, keyed by subcategory name.
type AreaMetrics map[string]float64
