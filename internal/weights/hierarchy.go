// Package weights holds the two level category/subcategory weight hierarchy.
//
// A Hierarchy is an immutable snapshot. Mutators return a new snapshot in which
// only the touched path is reallocated; every other category and subcategory is
// the same pointer as in the receiver, so callers can detect changes by
// comparing pointers.
package weights

import (
	"fmt"

	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/constants"
)

const (
	MinWeight = 0
	MaxWeight = 5
)

type CategoryID string

const (
	Competition     CategoryID = "competition"
	Population      CategoryID = "population"
	PublicAmenities CategoryID = "public_amenities"
	Transport       CategoryID = "transport"
)

const NumCategories = 4

// CategoryOrder is the fixed position of each category inside a Hierarchy.
var CategoryOrder = [NumCategories]CategoryID{Competition, Population, PublicAmenities, Transport}

var categoryNames = map[CategoryID]string{
	Competition:     "Competition",
	Population:      "Population",
	PublicAmenities: "Public amenities",
	Transport:       "Transport",
}

// Shape lists the subcategories of every category, in display order.
var Shape = map[CategoryID][]string{
	Competition:     {"cafes", "restaurants", "bars"},
	Population:      {"housing"},
	PublicAmenities: {"universities", "malls", "shops", "schools", "sport"},
	Transport:       {"stops", "traffic"},
}

type Subcategory struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type MainCategory struct {
	ID            CategoryID     `json:"id"`
	Name          string         `json:"name"`
	Value         int            `json:"value"`
	Subcategories []*Subcategory `json:"subcategories"`
}

type Hierarchy struct {
	TemplateID string                       `json:"template_id"`
	Categories [NumCategories]*MainCategory `json:"categories"`
}

// Clamp bounds v to [MinWeight, MaxWeight]. The second result reports whether
// v was out of range.
func Clamp(v int) (int, bool) {
	switch {
	case v < MinWeight:
		return MinWeight, true
	case v > MaxWeight:
		return MaxWeight, true
	}
	return v, false
}

func categoryIndex(id CategoryID) (int, bool) {
	for i, c := range CategoryOrder {
		if c == id {
			return i, true
		}
	}
	return 0, false
}

// Category returns the category with the given id or nil.
func (h *Hierarchy) Category(id CategoryID) *MainCategory {
	i, ok := categoryIndex(id)
	if !ok {
		return nil
	}
	return h.Categories[i]
}

// SetCategoryWeight returns a snapshot with the main weight of category id set to
// v clamped into range. The receiver itself is returned when nothing changes.
func (h *Hierarchy) SetCategoryWeight(id string, v int) (*Hierarchy, error) {
	i, ok := categoryIndex(CategoryID(id))
	if !ok {
		return nil, fmt.Errorf("%w: %s", constants.ErrUnknownCategory, id)
	}

	v, _ = Clamp(v)
	cur := h.Categories[i]
	if cur.Value == v {
		return h, nil
	}

	next := *h
	updated := *cur
	updated.Value = v
	next.Categories[i] = &updated
	return &next, nil
}

// SetSubcategoryWeight replaces a single subcategory leaf. The owning category is
// reallocated because its subcategory slice changes; its siblings are shared.
func (h *Hierarchy) SetSubcategoryWeight(categoryID, subName string, v int) (*Hierarchy, error) {
	i, ok := categoryIndex(CategoryID(categoryID))
	if !ok {
		return nil, fmt.Errorf("%w: %s", constants.ErrUnknownCategory, categoryID)
	}

	cur := h.Categories[i]
	j := -1
	for k, sub := range cur.Subcategories {
		if sub.Name == subName {
			j = k
			break
		}
	}
	if j < 0 {
		return nil, fmt.Errorf("%w: %s/%s", constants.ErrUnknownSubcategory, categoryID, subName)
	}

	v, _ = Clamp(v)
	if cur.Subcategories[j].Value == v {
		return h, nil
	}

	subs := make([]*Subcategory, len(cur.Subcategories))
	copy(subs, cur.Subcategories)
	subs[j] = &Subcategory{Name: subName, Value: v}

	updated := *cur
	updated.Subcategories = subs

	next := *h
	next.Categories[i] = &updated
	return &next, nil
}
