package weights

import (
	"testing"

	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cafeHierarchy(t *testing.T) *Hierarchy {
	t.Helper()
	c, err := DefaultCatalog()
	require.NoError(t, err)
	h, err := c.ResetToTemplate("cafe")
	require.NoError(t, err)
	return h
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in      int
		want    int
		clamped bool
	}{
		{-3, 0, true},
		{0, 0, false},
		{3, 3, false},
		{5, 5, false},
		{6, 5, true},
		{100, 5, true},
	}
	for _, tt := range tests {
		got, clamped := Clamp(tt.in)
		assert.Equal(t, tt.want, got, "Clamp(%d)", tt.in)
		assert.Equal(t, tt.clamped, clamped, "Clamp(%d)", tt.in)
	}
}

func TestSetCategoryWeight_ReplacesOnlyTarget(t *testing.T) {
	h := cafeHierarchy(t)

	next, err := h.SetCategoryWeight("transport", 4)
	require.NoError(t, err)
	require.NotSame(t, h, next)

	assert.Equal(t, 4, next.Category(Transport).Value)
	assert.Equal(t, 2, h.Category(Transport).Value, "prior snapshot must stay intact")

	for _, id := range []CategoryID{Competition, Population, PublicAmenities} {
		assert.Same(t, h.Category(id), next.Category(id), "category %s should be shared", id)
	}
	for i, sub := range h.Category(Transport).Subcategories {
		assert.Same(t, sub, next.Category(Transport).Subcategories[i])
	}
}

func TestSetCategoryWeight_Clamps(t *testing.T) {
	h := cafeHierarchy(t)

	next, err := h.SetCategoryWeight("population", 42)
	require.NoError(t, err)
	assert.Equal(t, MaxWeight, next.Category(Population).Value)

	next, err = next.SetCategoryWeight("population", -1)
	require.NoError(t, err)
	assert.Equal(t, MinWeight, next.Category(Population).Value)
}

func TestSetCategoryWeight_NoChangeReturnsReceiver(t *testing.T) {
	h := cafeHierarchy(t)

	next, err := h.SetCategoryWeight("competition", h.Category(Competition).Value)
	require.NoError(t, err)
	assert.Same(t, h, next)
}

func TestSetCategoryWeight_UnknownCategory(t *testing.T) {
	h := cafeHierarchy(t)

	_, err := h.SetCategoryWeight("parking", 3)
	require.ErrorIs(t, err, constants.ErrUnknownCategory)
}

func TestSetSubcategoryWeight_ReplacesOnlyLeaf(t *testing.T) {
	h := cafeHierarchy(t)

	next, err := h.SetSubcategoryWeight("public_amenities", "schools", 5)
	require.NoError(t, err)

	before := h.Category(PublicAmenities)
	after := next.Category(PublicAmenities)
	require.NotSame(t, before, after)
	assert.Equal(t, before.Value, after.Value)

	for i, sub := range after.Subcategories {
		if sub.Name == "schools" {
			assert.Equal(t, 5, sub.Value)
			assert.Equal(t, 2, before.Subcategories[i].Value)
			continue
		}
		assert.Same(t, before.Subcategories[i], sub, "sibling %s should be shared", sub.Name)
	}

	for _, id := range []CategoryID{Competition, Population, Transport} {
		assert.Same(t, h.Category(id), next.Category(id))
	}
}

func TestSetSubcategoryWeight_Errors(t *testing.T) {
	h := cafeHierarchy(t)

	_, err := h.SetSubcategoryWeight("nope", "cafes", 1)
	require.ErrorIs(t, err, constants.ErrUnknownCategory)

	_, err = h.SetSubcategoryWeight("competition", "schools", 1)
	require.ErrorIs(t, err, constants.ErrUnknownSubcategory)
}

func TestSetSubcategoryWeight_Clamps(t *testing.T) {
	h := cafeHierarchy(t)

	next, err := h.SetSubcategoryWeight("transport", "stops", 9)
	require.NoError(t, err)
	assert.Equal(t, 5, next.Category(Transport).Subcategories[0].Value)
}
