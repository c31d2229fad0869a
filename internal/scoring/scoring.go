// Package scoring implements the reference match score of a district under a
// weight hierarchy. Everything here is pure and deterministic.
package scoring

import (
	"math"

	"github.com/Ram-Pam-Pam/Projekt/internal/domain"
	"github.com/Ram-Pam-Pam/Projekt/internal/reference"
	"github.com/Ram-Pam-Pam/Projekt/internal/weights"
)

// CategoryScore is ((c.Value + avg(sub values)) / 10) * 100, with avg of no
// subcategories equal to 0. The result is in [0,100] for in-range weights.
func CategoryScore(c *weights.MainCategory) float64 {
	var avg float64
	if n := len(c.Subcategories); n > 0 {
		sum := 0
		for _, sub := range c.Subcategories {
			sum += sub.Value
		}
		avg = float64(sum) / float64(n)
	}
	return (float64(c.Value) + avg) / 10 * 100
}

// CategoryWeights are the per category scores of a hierarchy.
type CategoryWeights struct {
	Competition     float64 `json:"competition"`
	Population      float64 `json:"population"`
	PublicAmenities float64 `json:"public_amenities"`
	Transport       float64 `json:"transport"`
}

func WeightsOf(h *weights.Hierarchy) CategoryWeights {
	return CategoryWeights{
		Competition:     CategoryScore(h.Category(weights.Competition)),
		Population:      CategoryScore(h.Category(weights.Population)),
		PublicAmenities: CategoryScore(h.Category(weights.PublicAmenities)),
		Transport:       CategoryScore(h.Category(weights.Transport)),
	}
}

func (w CategoryWeights) Total() float64 {
	return w.Competition + w.Population + w.PublicAmenities + w.Transport
}

func normalize(v, maximum float64) float64 {
	if maximum == 0 {
		return 0
	}
	return v / maximum * 100
}

// MatchScore combines the normalized district metrics with the category weights.
// The metric to weight pairing is fixed: population->population,
// density->competition, income->public amenities, traffic->transport.
func MatchScore(d *domain.District, m reference.Maxima, w CategoryWeights) int {
	normPop := normalize(d.Population, m.Population)
	normDensity := normalize(d.Density, m.Density)
	normIncome := normalize(d.Income, m.Income)
	normTraffic := d.TrafficIndex * 100

	total := w.Total()
	if total == 0 {
		total = 1
	}

	score := (normPop*w.Population +
		normDensity*w.Competition +
		normIncome*w.PublicAmenities +
		normTraffic*w.Transport) / total

	return int(math.Round(score))
}

// ScoreDistricts scores every district of ds under h, preserving dataset order.
// The canonical district records are shared, never copied or modified.
func ScoreDistricts(ds *reference.Dataset, h *weights.Hierarchy) []domain.ScoredDistrict {
	w := WeightsOf(h)
	m := ds.Maxima()

	res := make([]domain.ScoredDistrict, 0, ds.Len())
	for _, d := range ds.Districts() {
		res = append(res, domain.ScoredDistrict{District: d, MatchScore: MatchScore(d, m, w)})
	}
	return res
}
