package weights

import (
	_ "embed"
	"fmt"

	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/constants"
	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var defaultTemplates []byte

type Template struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	BusinessType string             `json:"business_type"`
	Main         map[string]int     `json:"-"`
	Subs         map[string]int     `json:"-"`
	Targets      map[string]float64 `json:"-"`
}

type catalogFile struct {
	DefaultTargets map[string]float64 `yaml:"default_targets"`
	Templates      []struct {
		ID           string             `yaml:"id"`
		Name         string             `yaml:"name"`
		BusinessType string             `yaml:"business_type"`
		Main         map[string]int     `yaml:"main"`
		Subs         map[string]int     `yaml:"subs"`
		Targets      map[string]float64 `yaml:"targets"`
	} `yaml:"templates"`
}

// Catalog is the fixed set of business templates known at startup.
type Catalog struct {
	templates      []*Template
	byID           map[string]*Template
	byBusinessType map[string]*Template
}

// DefaultCatalog parses the embedded template document.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(defaultTemplates)
}

func LoadCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}
	if len(f.Templates) == 0 {
		return nil, fmt.Errorf("template catalog is empty")
	}

	c := &Catalog{
		byID:           make(map[string]*Template, len(f.Templates)),
		byBusinessType: make(map[string]*Template, len(f.Templates)),
	}

	for _, raw := range f.Templates {
		if raw.ID == "" || raw.BusinessType == "" {
			return nil, fmt.Errorf("template %q: id and business_type are required", raw.Name)
		}
		if _, dup := c.byID[raw.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %s", raw.ID)
		}

		t := &Template{
			ID:           raw.ID,
			Name:         raw.Name,
			BusinessType: raw.BusinessType,
			Main:         raw.Main,
			Subs:         raw.Subs,
			Targets:      make(map[string]float64, len(f.DefaultTargets)),
		}
		if err := t.check(); err != nil {
			return nil, fmt.Errorf("template %s: %w", raw.ID, err)
		}

		for k, v := range f.DefaultTargets {
			t.Targets[k] = v
		}
		for k, v := range raw.Targets {
			t.Targets[k] = v
		}

		c.templates = append(c.templates, t)
		c.byID[t.ID] = t
		c.byBusinessType[t.BusinessType] = t
	}

	return c, nil
}

func (t *Template) check() error {
	known := make(map[string]bool)
	for _, id := range CategoryOrder {
		for _, sub := range Shape[id] {
			known[sub] = true
		}
	}

	for k, v := range t.Main {
		if _, ok := categoryIndex(CategoryID(k)); !ok {
			return fmt.Errorf("%w: %s", constants.ErrUnknownCategory, k)
		}
		if _, clamped := Clamp(v); clamped {
			return fmt.Errorf("main weight %s=%d out of range", k, v)
		}
	}
	for k, v := range t.Subs {
		if !known[k] {
			return fmt.Errorf("%w: %s", constants.ErrUnknownSubcategory, k)
		}
		if _, clamped := Clamp(v); clamped {
			return fmt.Errorf("subcategory weight %s=%d out of range", k, v)
		}
	}
	return nil
}

// Hierarchy builds a fresh weight hierarchy from the template. Weights missing
// from the template are 0.
func (t *Template) Hierarchy() *Hierarchy {
	h := &Hierarchy{TemplateID: t.ID}
	for i, id := range CategoryOrder {
		names := Shape[id]
		subs := make([]*Subcategory, 0, len(names))
		for _, name := range names {
			subs = append(subs, &Subcategory{Name: name, Value: t.Subs[name]})
		}
		h.Categories[i] = &MainCategory{
			ID:            id,
			Name:          categoryNames[id],
			Value:         t.Main[string(id)],
			Subcategories: subs,
		}
	}
	return h
}

// Target returns the saturation target for a subcategory, 0 when unknown.
func (t *Template) Target(sub string) float64 {
	return t.Targets[sub]
}

func (c *Catalog) Templates() []*Template {
	return c.templates
}

func (c *Catalog) Template(id string) (*Template, error) {
	t, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", constants.ErrUnknownTemplate, id)
	}
	return t, nil
}

func (c *Catalog) ByBusinessType(key string) (*Template, error) {
	t, ok := c.byBusinessType[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", constants.ErrUnknownBusinessType, key)
	}
	return t, nil
}

// ResetToTemplate replaces the whole hierarchy with the named preset.
func (c *Catalog) ResetToTemplate(templateID string) (*Hierarchy, error) {
	t, err := c.Template(templateID)
	if err != nil {
		return nil, err
	}
	return t.Hierarchy(), nil
}
