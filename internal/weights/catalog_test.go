package weights

import (
	"testing"

	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	ids := make([]string, 0)
	for _, tpl := range c.Templates() {
		ids = append(ids, tpl.ID)
	}
	assert.Equal(t, []string{"cafe", "restaurant", "shop", "gym", "pub"}, ids)

	for _, tpl := range c.Templates() {
		h := tpl.Hierarchy()
		for i, id := range CategoryOrder {
			cat := h.Categories[i]
			require.NotNil(t, cat)
			assert.Equal(t, id, cat.ID)
			assert.Len(t, cat.Subcategories, len(Shape[id]))
			assert.GreaterOrEqual(t, cat.Value, MinWeight)
			assert.LessOrEqual(t, cat.Value, MaxWeight)
		}
	}
}

func TestCatalog_CafeMatchesProfile(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	tpl, err := c.ByBusinessType("kawiarnia")
	require.NoError(t, err)
	assert.Equal(t, "cafe", tpl.ID)

	h := tpl.Hierarchy()
	assert.Equal(t, 5, h.Category(Competition).Value)
	assert.Equal(t, 4, h.Category(Population).Value)
	assert.Equal(t, 5, h.Category(PublicAmenities).Value)
	assert.Equal(t, 2, h.Category(Transport).Value)
	assert.Equal(t, "cafes", h.Category(Competition).Subcategories[0].Name)
	assert.Equal(t, 5, h.Category(Competition).Subcategories[0].Value)
}

func TestCatalog_TargetsFallBackToDefaults(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	shop, err := c.Template("shop")
	require.NoError(t, err)

	assert.Equal(t, 3000.0, shop.Target("housing"))
	assert.Equal(t, 2.0, shop.Target("universities"), "missing target comes from default_targets")
	assert.Equal(t, 0.0, shop.Target("unknown"))
}

func TestCatalog_ResetToTemplateReturnsFreshSnapshot(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	a, err := c.ResetToTemplate("gym")
	require.NoError(t, err)
	b, err := c.ResetToTemplate("gym")
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Equal(t, a, b)
	assert.Equal(t, "gym", a.TemplateID)

	_, err = c.ResetToTemplate("bakery")
	require.ErrorIs(t, err, constants.ErrUnknownTemplate)

	_, err = c.ByBusinessType("piekarnia")
	require.ErrorIs(t, err, constants.ErrUnknownBusinessType)
}

func TestLoadCatalog_Invalid(t *testing.T) {
	tests := map[string]string{
		"empty":        "templates: []",
		"missing id":   "templates:\n  - name: x\n    business_type: x\n",
		"bad category": "templates:\n  - id: a\n    business_type: a\n    main: {parking: 1}\n",
		"bad sub":      "templates:\n  - id: a\n    business_type: a\n    subs: {lasers: 1}\n",
		"out of range": "templates:\n  - id: a\n    business_type: a\n    main: {transport: 7}\n",
		"duplicate":    "templates:\n  - id: a\n    business_type: a\n  - id: a\n    business_type: b\n",
		"not yaml":     "templates: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadCatalog([]byte(doc))
			require.Error(t, err)
		})
	}
}
