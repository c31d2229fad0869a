package scoring

import (
	"testing"

	"github.com/Ram-Pam-Pam/Projekt/internal/domain"
	"github.com/Ram-Pam-Pam/Projekt/internal/reference"
	"github.com/Ram-Pam-Pam/Projekt/internal/weights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatHierarchy(values map[weights.CategoryID]int) *weights.Hierarchy {
	h := &weights.Hierarchy{}
	for i, id := range weights.CategoryOrder {
		h.Categories[i] = &weights.MainCategory{ID: id, Value: values[id]}
	}
	return h
}

func TestCategoryScore(t *testing.T) {
	tests := []struct {
		name string
		cat  weights.MainCategory
		want float64
	}{
		{"no subcategories", weights.MainCategory{Value: 3}, 30},
		{"max", weights.MainCategory{Value: 5, Subcategories: []*weights.Subcategory{{Value: 5}, {Value: 5}}}, 100},
		{"zero", weights.MainCategory{Value: 0, Subcategories: []*weights.Subcategory{{Value: 0}}}, 0},
		{"average", weights.MainCategory{Value: 5, Subcategories: []*weights.Subcategory{{Value: 5}, {Value: 3}, {Value: 1}}}, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CategoryScore(&tt.cat), 1e-9)
		})
	}
}

func TestCategoryScore_Bounded(t *testing.T) {
	for v := weights.MinWeight; v <= weights.MaxWeight; v++ {
		for a := weights.MinWeight; a <= weights.MaxWeight; a++ {
			for b := weights.MinWeight; b <= weights.MaxWeight; b++ {
				c := &weights.MainCategory{Value: v, Subcategories: []*weights.Subcategory{{Value: a}, {Value: b}}}
				s := CategoryScore(c)
				assert.GreaterOrEqual(t, s, 0.0)
				assert.LessOrEqual(t, s, 100.0)
			}
		}
	}
}

func TestScoreDistricts_CafeTemplate(t *testing.T) {
	ds, err := reference.DefaultDataset()
	require.NoError(t, err)
	catalog, err := weights.DefaultCatalog()
	require.NoError(t, err)
	h, err := catalog.ResetToTemplate("cafe")
	require.NoError(t, err)

	w := WeightsOf(h)
	assert.InDelta(t, 80, w.Competition, 1e-9)
	assert.InDelta(t, 80, w.Population, 1e-9)
	assert.InDelta(t, 80, w.PublicAmenities, 1e-9)
	assert.InDelta(t, 50, w.Transport, 1e-9)

	scored := ScoreDistricts(ds, h)
	require.Len(t, scored, ds.Len())

	byID := make(map[int64]int)
	for i, s := range scored {
		assert.Same(t, ds.Districts()[i], s.District, "dataset order and identity preserved")
		byID[s.District.ID] = s.MatchScore
	}

	assert.Equal(t, 77, byID[1])
	assert.Equal(t, 75, byID[4])
	assert.Equal(t, 52, byID[18])
}

func TestMatchScore_FixedPairing(t *testing.T) {
	ds, err := reference.DefaultDataset()
	require.NoError(t, err)

	// only competition carries weight, so the score is the normalized density
	h := flatHierarchy(map[weights.CategoryID]int{weights.Competition: 5})
	w := WeightsOf(h)

	d3, _ := ds.District(3)
	d1, _ := ds.District(1)
	assert.Equal(t, 100, MatchScore(d3, ds.Maxima(), w))
	assert.Equal(t, 74, MatchScore(d1, ds.Maxima(), w))

	// only transport: the raw traffic index
	h = flatHierarchy(map[weights.CategoryID]int{weights.Transport: 2})
	assert.Equal(t, 100, MatchScore(d1, ds.Maxima(), WeightsOf(h)))
	assert.Equal(t, 60, MatchScore(d3, ds.Maxima(), WeightsOf(h)))
}

func TestMatchScore_AllZeroWeights(t *testing.T) {
	ds, err := reference.DefaultDataset()
	require.NoError(t, err)

	h := flatHierarchy(nil)
	w := WeightsOf(h)
	require.Zero(t, w.Total())

	first := ScoreDistricts(ds, h)
	second := ScoreDistricts(ds, h)
	assert.Equal(t, first, second)
	for _, s := range first {
		assert.Equal(t, 0, s.MatchScore)
	}
}

func TestMatchScore_ZeroMaximum(t *testing.T) {
	ds, err := reference.NewDataset([]*domain.District{{ID: 1, TrafficIndex: 0.5}})
	require.NoError(t, err)

	h := flatHierarchy(map[weights.CategoryID]int{weights.Population: 5, weights.Transport: 5})
	scored := ScoreDistricts(ds, h)
	assert.Equal(t, 25, scored[0].MatchScore)
}

func TestMatchScore_BoundedForAllTemplates(t *testing.T) {
	ds, err := reference.DefaultDataset()
	require.NoError(t, err)
	catalog, err := weights.DefaultCatalog()
	require.NoError(t, err)

	for _, tpl := range catalog.Templates() {
		h := tpl.Hierarchy()
		for v := weights.MinWeight; v <= weights.MaxWeight; v++ {
			for _, id := range weights.CategoryOrder {
				next, err := h.SetCategoryWeight(string(id), v)
				require.NoError(t, err)
				for _, s := range ScoreDistricts(ds, next) {
					assert.GreaterOrEqual(t, s.MatchScore, 0)
					assert.LessOrEqual(t, s.MatchScore, 100)
				}
			}
		}
	}
}
