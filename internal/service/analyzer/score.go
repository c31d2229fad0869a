package analyzer

import (
	"github.com/Ram-Pam-Pam/Projekt/internal/domain"
	"github.com/Ram-Pam-Pam/Projekt/internal/weights"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// subcategoryScore maps a raw metric onto 0..100 against its saturation
// target. Competitor counts score inversely.
func subcategoryScore(category weights.CategoryID, metric, target float64) decimal.Decimal {
	ratio := decimal.Zero
	if target > 0 {
		ratio = decimal.Min(decimal.NewFromFloat(metric).Div(decimal.NewFromFloat(target)), decimal.NewFromInt(1))
	}
	if ratio.IsNegative() {
		ratio = decimal.Zero
	}

	if category == weights.Competition {
		return decimal.NewFromInt(1).Sub(ratio).Mul(hundred)
	}
	return ratio.Mul(hundred)
}

func weightedMean(values, weights []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}

	sum, total := decimal.Zero, decimal.Zero
	for i, v := range values {
		sum = sum.Add(v.Mul(weights[i]))
		total = total.Add(weights[i])
	}
	if total.IsZero() {
		return decimal.Avg(values[0], values[1:]...)
	}
	return sum.Div(total)
}

// HierarchicalScore scores an area for template t. Each category is the
// subcategory weighted mean of its subcategory scores; the total is the main
// weighted mean of the categories (0 when every main weight is 0).
func HierarchicalScore(t *weights.Template, m domain.AreaMetrics) (int, domain.CategoryScores) {
	categoryScores := make(map[weights.CategoryID]decimal.Decimal, weights.NumCategories)

	totalSum, totalWeight := decimal.Zero, decimal.Zero
	for _, id := range weights.CategoryOrder {
		subs := weights.Shape[id]
		values := make([]decimal.Decimal, 0, len(subs))
		subWeights := make([]decimal.Decimal, 0, len(subs))
		for _, sub := range subs {
			values = append(values, subcategoryScore(id, m[sub], t.Target(sub)))
			subWeights = append(subWeights, decimal.NewFromInt(int64(t.Subs[sub])))
		}

		score := weightedMean(values, subWeights)
		categoryScores[id] = score

		w := decimal.NewFromInt(int64(t.Main[string(id)]))
		totalSum = totalSum.Add(score.Mul(w))
		totalWeight = totalWeight.Add(w)
	}

	total := decimal.Zero
	if !totalWeight.IsZero() {
		total = totalSum.Div(totalWeight)
	}

	return round(total), domain.CategoryScores{
		PublicAmenities: round(categoryScores[weights.PublicAmenities]),
		Transport:       round(categoryScores[weights.Transport]),
		Residents:       round(categoryScores[weights.Population]),
		Competition:     round(categoryScores[weights.Competition]),
	}
}

func round(d decimal.Decimal) int {
	return int(d.Round(0).IntPart())
}
