package candidates

import (
	"github.com/Ram-Pam-Pam/Projekt/internal/domain"
	"github.com/Ram-Pam-Pam/Projekt/internal/selection"
)

// Snapshot is an immutable view of the candidate locations and the selection.
// Every mutation publishes a new Snapshot with a higher Version.
type Snapshot struct {
	Version   uint64                     `json:"version"`
	Locations []domain.CandidateLocation `json:"locations"`
	Selection selection.Ref              `json:"selection"`
}

func (s *Snapshot) index(id string) int {
	for i := range s.Locations {
		if s.Locations[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Snapshot) Location(id string) (domain.CandidateLocation, bool) {
	i := s.index(id)
	if i < 0 {
		return domain.CandidateLocation{}, false
	}
	return s.Locations[i], true
}

// selectedLocation returns the current record of the selected location, if the
// selection points at one.
func (s *Snapshot) selectedLocation() (domain.CandidateLocation, bool) {
	if s.Selection.Kind != selection.KindLocation {
		return domain.CandidateLocation{}, false
	}
	return s.Location(s.Selection.ID)
}

// next copies the header and the location slice; records are values so the
// copy never aliases the previous snapshot.
func (s *Snapshot) next() *Snapshot {
	locs := make([]domain.CandidateLocation, len(s.Locations), len(s.Locations)+1)
	copy(locs, s.Locations)
	return &Snapshot{
		Version:   s.Version + 1,
		Locations: locs,
		Selection: s.Selection,
	}
}
