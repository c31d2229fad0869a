package dto

import "github.com/Ram-Pam-Pam/Projekt/internal/domain"

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	Lat    float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon    float64 `json:"lon" validate:"gte=-180,lte=180"`
	Type   string  `json:"type"`
	Radius int     `json:"radius" validate:"gte=0,lte=5000"`
}

// AnalyzeResponse fields are pointers so that a missing field fails validation
// instead of decoding as 0.
type AnalyzeResponse struct {
	TotalScore     *int               `json:"total_score" validate:"required,gte=0,lte=100"`
	CategoryScores *CategoryScoresDto `json:"category_scores" validate:"required"`
}

type CategoryScoresDto struct {
	PublicAmenities *int `json:"public_amenities" validate:"required,gte=0,lte=100"`
	Transport       *int `json:"transport" validate:"required,gte=0,lte=100"`
	Residents       *int `json:"residents" validate:"required,gte=0,lte=100"`
	Competition     *int `json:"competition" validate:"required,gte=0,lte=100"`
}

// Complete reports whether the total and all four category scores are present.
func (r *AnalyzeResponse) Complete() bool {
	if r == nil || r.TotalScore == nil || r.CategoryScores == nil {
		return false
	}
	c := r.CategoryScores
	return c.PublicAmenities != nil && c.Transport != nil && c.Residents != nil && c.Competition != nil
}

// ToDomain expects a complete response.
func (d *CategoryScoresDto) ToDomain() *domain.CategoryScores {
	return &domain.CategoryScores{
		PublicAmenities: *d.PublicAmenities,
		Transport:       *d.Transport,
		Residents:       *d.Residents,
		Competition:     *d.Competition,
	}
}

func NewAnalyzeResponse(total int, scores domain.CategoryScores) *AnalyzeResponse {
	return &AnalyzeResponse{
		TotalScore: &total,
		CategoryScores: &CategoryScoresDto{
			PublicAmenities: &scores.PublicAmenities,
			Transport:       &scores.Transport,
			Residents:       &scores.Residents,
			Competition:     &scores.Competition,
		},
	}
}
