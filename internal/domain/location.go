package domain

import "time"

type Coords struct {
	Lon float64 `json:"lon" yaml:"lon"`
	Lat float64 `json:"lat" yaml:"lat"`
}

// District is a reference entity. Instances are loaded once and never mutated.
type District struct {
	ID           int64   `json:"id" yaml:"id"`
	Name         string  `json:"name" yaml:"name"`
	Population   float64 `json:"population" yaml:"population"`
	Density      float64 `json:"density" yaml:"density"`
	Income       float64 `json:"income" yaml:"income"`
	TrafficIndex float64 `json:"traffic_index" yaml:"traffic_index"`
	Type         string  `json:"type" yaml:"type"`
	Coords       Coords  `json:"coords" yaml:"coords"`
}

type ScoredDistrict struct {
	District   *District `json:"district"`
	MatchScore int       `json:"match_score"`
}

type LocationStatus string

const (
	StatusLoading LocationStatus = "loading"
	StatusScored  LocationStatus = "scored"
	StatusFailed  LocationStatus = "failed"
)

// CategoryScores is the four dimensional breakdown returned by the analysis service.
type CategoryScores struct {
	PublicAmenities int `json:"public_amenities"`
	Transport       int `json:"transport"`
	Residents       int `json:"residents"`
	Competition     int `json:"competition"`
}

// CandidateLocation is a user submitted point. Values held in a snapshot are
// never modified; updates replace the whole record.
type CandidateLocation struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Coords       Coords          `json:"coords"`
	BusinessType string          `json:"business_type"`
	Status       LocationStatus  `json:"status"`
	Score        *int            `json:"score,omitempty"`
	Details      *CategoryScores `json:"category_details,omitempty"`
	Failure      string          `json:"failure,omitempty"`
	SubmittedAt  time.Time       `json:"submitted_at"`
	ResolvedAt   *time.Time      `json:"resolved_at,omitempty"`
}

// RankScore is the value used for ordering: absent scores count as 0.
func (l CandidateLocation) RankScore() int {
	if l.Score == nil {
		return 0
	}
	return *l.Score
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
