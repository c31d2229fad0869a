// Package reference holds the static district dataset used for reference scoring.
package reference

import (
	_ "embed"
	"fmt"

	"github.com/Ram-Pam-Pam/Projekt/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed districts.yaml
var defaultDistricts []byte

// MaxTrafficIndex bounds the already normalized traffic index, the one metric
// not scaled by a dataset maximum.
const MaxTrafficIndex = 1.0

// Maxima are the normalization denominators, derived from the dataset itself so
// that every normalized metric stays within [0,100].
type Maxima struct {
	Population float64 `json:"population"`
	Density    float64 `json:"density"`
	Income     float64 `json:"income"`
}

// Dataset is immutable after construction and safe for concurrent readers.
type Dataset struct {
	districts []*domain.District
	byID      map[int64]*domain.District
	maxima    Maxima
}

func NewDataset(districts []*domain.District) (*Dataset, error) {
	if len(districts) == 0 {
		return nil, fmt.Errorf("reference dataset is empty")
	}

	ds := &Dataset{
		districts: make([]*domain.District, 0, len(districts)),
		byID:      make(map[int64]*domain.District, len(districts)),
	}

	for _, d := range districts {
		if _, dup := ds.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate district id %d", d.ID)
		}
		if d.Population < 0 || d.Density < 0 || d.Income < 0 || d.TrafficIndex < 0 {
			return nil, fmt.Errorf("district %d has negative metrics", d.ID)
		}
		if d.TrafficIndex > MaxTrafficIndex {
			return nil, fmt.Errorf("district %d: traffic index %g above %g", d.ID, d.TrafficIndex, MaxTrafficIndex)
		}

		cp := *d
		ds.districts = append(ds.districts, &cp)
		ds.byID[cp.ID] = &cp

		ds.maxima.Population = max(ds.maxima.Population, cp.Population)
		ds.maxima.Density = max(ds.maxima.Density, cp.Density)
		ds.maxima.Income = max(ds.maxima.Income, cp.Income)
	}

	return ds, nil
}

// DefaultDataset returns the embedded Krakow districts.
func DefaultDataset() (*Dataset, error) {
	var f struct {
		Districts []*domain.District `yaml:"districts"`
	}
	if err := yaml.Unmarshal(defaultDistricts, &f); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}
	return NewDataset(f.Districts)
}

// Districts returns the entities in load order. The slice must not be modified.
func (ds *Dataset) Districts() []*domain.District {
	return ds.districts
}

func (ds *Dataset) District(id int64) (*domain.District, bool) {
	d, ok := ds.byID[id]
	return d, ok
}

func (ds *Dataset) Maxima() Maxima {
	return ds.maxima
}

func (ds *Dataset) Len() int {
	return len(ds.districts)
}
